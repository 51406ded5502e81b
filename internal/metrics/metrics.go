// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent scoring and ranking careers",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
		[]string{"mode"}, // "preference", "similarity", "career_path"
	)

	RecommendationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_errors_total",
			Help: "Total number of failed recommendation requests",
		},
		[]string{"mode", "reason"},
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_careers",
			Help: "Number of careers in the catalog",
		},
	)

	// Snapshot Cache Metrics
	SnapshotCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_cache_hits_total",
			Help: "Total number of preference snapshot cache hits",
		},
		[]string{"backend"},
	)

	SnapshotCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_cache_misses_total",
			Help: "Total number of preference snapshot cache misses",
		},
		[]string{"backend"},
	)

	SnapshotCacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_cache_errors_total",
			Help: "Total number of snapshot cache backend errors",
		},
		[]string{"backend", "operation"},
	)

	// Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Duration of store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)

	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operation_errors_total",
			Help: "Total number of store operation errors",
		},
		[]string{"backend", "operation"},
	)

	LikedElementsChanged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "liked_elements_changed_total",
			Help: "Liked element mutations by action and element type",
		},
		[]string{"action", "element_type"},
	)

	// Chat Metrics
	ChatRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_requests_total",
			Help: "Total number of chat replies by source",
		},
		[]string{"source"}, // "llm", "fallback", "rate_limited"
	)

	ChatLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chat_llm_duration_seconds",
			Help:    "Duration of LLM completion calls",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Auth Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Login and registration attempts by outcome",
		},
		[]string{"operation", "outcome"},
	)

	AuthzDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_decisions_total",
			Help: "Authorization decisions by result",
		},
		[]string{"result"},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation observes one scoring pass. A non-empty reason marks
// it as failed.
func RecordRecommendation(mode string, duration time.Duration, reason string) {
	RecommendationDuration.WithLabelValues(mode).Observe(duration.Seconds())
	if reason != "" {
		RecommendationErrors.WithLabelValues(mode, reason).Inc()
	}
}

// RecordSnapshotCache counts a cache lookup.
func RecordSnapshotCache(backend string, hit bool) {
	if hit {
		SnapshotCacheHits.WithLabelValues(backend).Inc()
		return
	}
	SnapshotCacheMisses.WithLabelValues(backend).Inc()
}

// RecordStoreOperation records a store call and counts it as an error when
// err is non-nil.
func RecordStoreOperation(backend, operation string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
	if err != nil {
		StoreOperationErrors.WithLabelValues(backend, operation).Inc()
	}
}

// RecordCircuitBreakerTransition updates the state gauge and transition
// counter. States are "closed", "half-open" and "open".
func RecordCircuitBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
}

func stateValue(state string) float64 {
	switch state {
	case "half-open":
		return 1
	case "open":
		return 2
	default:
		return 0
	}
}

// SetAppInfo publishes the build version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}
