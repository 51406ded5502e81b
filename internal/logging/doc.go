// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

// Package logging provides zerolog-based structured logging for CareerCanvas.
//
// A single process-wide logger is configured once from main and then used
// through the package-level helpers:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("careers", n).Msg("Catalog built")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Snapshot cache unavailable")
//
// Components that want their own fields derive a child logger:
//
//	log := logging.WithComponent("recommend")
//
// # Request correlation
//
// The HTTP request ID middleware stores a request ID and a short
// correlation ID in the request context. Ctx(ctx) attaches both to every
// event logged through it.
//
// # slog bridge
//
// Some libraries (the suture supervisor event hook in particular) only
// accept a *slog.Logger. NewSlogLogger returns one whose records are
// written through zerolog so the output format stays uniform.
//
// # Configuration
//
//	LOG_LEVEL   trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  json, console (default: json)
//	LOG_CALLER  include caller file:line (default: false)
package logging
