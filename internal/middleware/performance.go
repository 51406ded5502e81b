// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package middleware

import (
	"cmp"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/tomtom215/careercanvas/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which a request is
// logged as slow.
const DefaultSlowRequestThreshold = time.Second

// RequestSample is one observed request.
type RequestSample struct {
	Route      string
	Method     string
	Duration   time.Duration
	StatusCode int
}

// EndpointStats aggregates the samples of one route.
type EndpointStats struct {
	Endpoint     string  `json:"endpoint"`
	RequestCount int     `json:"requestCount"`
	AvgMs        float64 `json:"avgMs"`
	P50Ms        int64   `json:"p50Ms"`
	P95Ms        int64   `json:"p95Ms"`
	P99Ms        int64   `json:"p99Ms"`
	MaxMs        int64   `json:"maxMs"`
	ErrorCount   int     `json:"errorCount"`
}

// PerformanceMonitor keeps a sliding window of recent requests for the
// health endpoint.
type PerformanceMonitor struct {
	mu         sync.RWMutex
	samples    []RequestSample
	maxSamples int
	slow       time.Duration
}

// NewPerformanceMonitor keeps at most maxSamples requests.
func NewPerformanceMonitor(maxSamples int, slow time.Duration) *PerformanceMonitor {
	if maxSamples <= 0 {
		maxSamples = 1000
	}
	if slow <= 0 {
		slow = DefaultSlowRequestThreshold
	}
	return &PerformanceMonitor{
		samples:    make([]RequestSample, 0, maxSamples),
		maxSamples: maxSamples,
		slow:       slow,
	}
}

// Record adds a sample, evicting the oldest when full.
func (pm *PerformanceMonitor) Record(s RequestSample) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if len(pm.samples) == pm.maxSamples {
		copy(pm.samples, pm.samples[1:])
		pm.samples = pm.samples[:len(pm.samples)-1]
	}
	pm.samples = append(pm.samples, s)
}

// Stats aggregates the window per endpoint, busiest first.
func (pm *PerformanceMonitor) Stats() []EndpointStats {
	pm.mu.RLock()
	byEndpoint := make(map[string][]RequestSample)
	for _, s := range pm.samples {
		key := s.Method + " " + s.Route
		byEndpoint[key] = append(byEndpoint[key], s)
	}
	pm.mu.RUnlock()

	stats := make([]EndpointStats, 0, len(byEndpoint))
	for endpoint, samples := range byEndpoint {
		ms := make([]int64, len(samples))
		var sum int64
		errCount := 0
		for i, s := range samples {
			ms[i] = s.Duration.Milliseconds()
			sum += ms[i]
			if s.StatusCode >= http.StatusInternalServerError {
				errCount++
			}
		}
		slices.Sort(ms)

		stats = append(stats, EndpointStats{
			Endpoint:     endpoint,
			RequestCount: len(ms),
			AvgMs:        float64(sum) / float64(len(ms)),
			P50Ms:        percentile(ms, 0.50),
			P95Ms:        percentile(ms, 0.95),
			P99Ms:        percentile(ms, 0.99),
			MaxMs:        ms[len(ms)-1],
			ErrorCount:   errCount,
		})
	}

	slices.SortFunc(stats, func(a, b EndpointStats) int {
		if c := cmp.Compare(b.RequestCount, a.RequestCount); c != 0 {
			return c
		}
		return cmp.Compare(a.Endpoint, b.Endpoint)
	})
	return stats
}

// Middleware records every request and logs slow ones.
func (pm *PerformanceMonitor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		sample := RequestSample{
			Route:      RoutePattern(r),
			Method:     r.Method,
			Duration:   time.Since(start),
			StatusCode: wrapper.statusCode,
		}
		pm.Record(sample)

		if sample.Duration > pm.slow {
			logging.Ctx(r.Context()).Warn().
				Str("method", sample.Method).
				Str("route", sample.Route).
				Int64("duration_ms", sample.Duration.Milliseconds()).
				Msg("Slow request detected")
		}
	})
}

// percentile reads the p-th percentile from sorted values.
func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[int(float64(len(sorted)-1)*p)]
}
