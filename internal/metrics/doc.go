// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

// Package metrics defines the Prometheus collectors for CareerCanvas.
//
// Collectors are registered on the default registry through promauto when
// the package is loaded and are exposed by the /metrics endpoint. Most
// callers use the Record* helpers rather than the collectors directly:
//
//	start := time.Now()
//	feed, err := assembler.PersonalizedFeed(ctx, userID)
//	metrics.RecordRecommendation("preference", time.Since(start), "")
//
// # Families
//
//   - api_*: request counts, latency, in-flight requests, rate-limit rejections
//   - recommendation_*: scoring latency by mode and failures by reason
//   - snapshot_cache_*: preference snapshot cache hits, misses and errors
//   - store_*: storage backend latency and errors
//   - chat_*: chat replies by source and LLM latency
//   - circuit_breaker_*: state, per-request results and transitions
package metrics
