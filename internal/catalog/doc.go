// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

// Package catalog holds the in-memory career catalog.
//
// The catalog opens with six hand-written careers (ids 1-6). When
// Config.IncludeGenerated is set, templated careers for twenty fields
// follow, numbered from FirstGeneratedID. Their descriptive attributes
// (work setting, schedule, locations, soft skills and so on) are drawn from
// a PCG source seeded by Config.Seed, so a given seed always produces the
// same catalog.
//
// A Catalog is never modified after construction and needs no locking.
package catalog
