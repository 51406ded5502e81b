// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

/*
Package api provides the HTTP REST API layer for CareerCanvas.

Key Components:

  - Router: chi route tree and middleware stack (chi_router.go)
  - ChiMiddleware: go-chi/cors and go-chi/httprate factories
  - Handler: request handlers, one file per resource
  - ResponseWriter: the JSON envelope shared by every endpoint

# Response Format

Every response uses the same envelope:

	{
	  "success": true,
	  "data": {...},
	  "meta": {"requestId": "...", "timestamp": "...", "queryTimeMs": 3}
	}

Errors set success to false and carry error.code, error.message and,
for validation failures, error.details keyed by JSON field name.

# Error Mapping

Sentinel errors from the domain packages map to statuses in errors.go:
recommend.ErrNotFound to 404, recommend.ErrUnavailable to 503 and
recommend.ErrInvalidInput to 400. Store, auth and chat sentinels follow
the same table.

# Route Groups

  - /api/v1/health: no rate limit
  - /api/v1/auth: register and login share the strict auth limit
  - everything else: the general API limit, with the write limit added to
    state-changing routes
  - /api/v1/users/{id}/..., /quiz-results/{id}, /conversations/{id}: the
    caller must own {id} or be an admin (authz.Middleware.RequireOwner)

/metrics serves the Prometheus registry outside /api/v1.
*/
package api
