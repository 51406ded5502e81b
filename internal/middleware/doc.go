// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

/*
Package middleware provides the HTTP middleware shared by every route.

Key Components:

  - RequestID: reuses or generates X-Request-ID and seeds the logging
    context with request and correlation ids
  - AccessLog: one structured log line per request
  - PrometheusMetrics: request count, duration and in-flight gauge labelled
    by chi route pattern
  - PerformanceMonitor: sliding window of recent latencies, reported by the
    health endpoint, with slow request warnings

All middleware has the chi signature func(http.Handler) http.Handler and is
safe for concurrent use. RequestID must run before the others so their log
lines carry the ids.

See Also:

  - internal/auth: authentication middleware
  - internal/authz: ownership checks
  - internal/metrics: collector definitions
*/
package middleware
