// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/careercanvas/internal/logging"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{"generated", "", false},
		{"propagated", "abc-123", true},
		{"oversized replaced", strings.Repeat("x", maxRequestIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctxID, correlation string
			h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				ctxID = logging.RequestIDFromContext(r.Context())
				correlation = logging.CorrelationIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if got == "" || got != ctxID {
				t.Fatalf("header id %q, context id %q", got, ctxID)
			}
			if (got == tt.incoming) != tt.wantSame {
				t.Errorf("id = %q, incoming %q, wantSame %v", got, tt.incoming, tt.wantSame)
			}
			if correlation == "" {
				t.Error("correlation id not set")
			}
		})
	}
}

func TestRoutePatternAndMetrics(t *testing.T) {
	var pattern string
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/careers/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.With(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			pattern = RoutePattern(r)
		})
	}).Get("/users/{id}/feed", func(http.ResponseWriter, *http.Request) {})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/careers/7", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/3/feed", nil))
	if pattern != "/users/{id}/feed" {
		t.Errorf("RoutePattern() = %q", pattern)
	}

	if got := RoutePattern(httptest.NewRequest(http.MethodGet, "/", nil)); got != "unmatched" {
		t.Errorf("RoutePattern() without chi = %q, want unmatched", got)
	}
}

func TestPerformanceMonitor(t *testing.T) {
	pm := NewPerformanceMonitor(3, time.Second)

	pm.Record(RequestSample{Route: "/a", Method: "GET", Duration: 10 * time.Millisecond, StatusCode: 200})
	pm.Record(RequestSample{Route: "/a", Method: "GET", Duration: 30 * time.Millisecond, StatusCode: 500})
	pm.Record(RequestSample{Route: "/b", Method: "GET", Duration: 5 * time.Millisecond, StatusCode: 200})
	pm.Record(RequestSample{Route: "/b", Method: "GET", Duration: 7 * time.Millisecond, StatusCode: 200})

	// The first /a sample was evicted.
	stats := pm.Stats()
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}
	if stats[0].Endpoint != "GET /b" || stats[0].RequestCount != 2 || stats[0].MaxMs != 7 {
		t.Errorf("stats[0] = %+v", stats[0])
	}
	if stats[1].Endpoint != "GET /a" || stats[1].RequestCount != 1 || stats[1].ErrorCount != 1 {
		t.Errorf("stats[1] = %+v", stats[1])
	}
}

func TestPerformanceMonitorMiddleware(t *testing.T) {
	pm := NewPerformanceMonitor(10, time.Hour)
	r := chi.NewRouter()
	r.Use(pm.Middleware)
	r.Use(AccessLog)
	r.Get("/careers", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/careers", nil))
	}

	stats := pm.Stats()
	if len(stats) != 1 || stats[0].Endpoint != "GET /careers" || stats[0].RequestCount != 3 {
		t.Errorf("stats = %+v", stats)
	}
}
