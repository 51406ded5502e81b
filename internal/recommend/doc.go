// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

// Package recommend ranks careers for a user and relates careers to each
// other.
//
// # Scoring
//
// Two heuristic scorers with fixed weights are provided.
//
// ScorePreference (the feed score) rates one career against a user's
// Snapshot:
//
//	+100  career is directly liked
//	 +20  per career skill the user liked
//	 +50  career field is a liked field
//	 +15  per responsibility containing a liked responsibility as a substring
//	 +40  career work setting is a liked work setting
//
// ScoreSimilarity rates two careers against each other:
//
//	+100  same field
//	 +20  per shared skill
//	 +30  average salaries differ by less than 10k
//	 +20  ... by at least 10k and less than 20k
//	 +10  ... by at least 20k and less than 30k
//
// ScoreSimilarity is symmetric.
//
// # Assembly
//
// The Assembler loads a user's liked elements through a PreferenceSource,
// projects them into a Snapshot (optionally cached), scores the whole
// catalog and sorts it with a stable descending sort so ties keep catalog
// order. A user with no likes gets the catalog unchanged.
//
// Related careers, advancement steps and previous steps are derived from
// similarity scores:
//
//	related, err := a.Related(ctx, careerID, 3)
//	path, err := a.CareerPath(ctx, careerID)
//
// # Errors
//
// Failures are reported with ErrNotFound, ErrUnavailable and
// ErrInvalidInput, which the HTTP layer maps to 404, 503 and 400.
package recommend
