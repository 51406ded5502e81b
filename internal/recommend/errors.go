// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package recommend

import "errors"

var (
	// ErrNotFound means a referenced career id is not in the catalog.
	ErrNotFound = errors.New("career not found")

	// ErrUnavailable means a collaborator could not return data.
	ErrUnavailable = errors.New("recommendation data unavailable")

	// ErrInvalidInput covers bad limits and missing careers.
	ErrInvalidInput = errors.New("invalid recommendation input")
)
