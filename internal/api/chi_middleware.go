// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/careercanvas/internal/logging"
	"github.com/tomtom215/careercanvas/internal/metrics"
	"github.com/tomtom215/careercanvas/internal/middleware"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	// CORS configuration
	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSExposedHeaders   []string
	CORSAllowCredentials bool
	CORSMaxAge           int // seconds

	// Rate limiting configuration. Each route group gets its own budget
	// per client IP within RateLimitWindow.
	RateLimitRequests      int
	AuthRateLimitRequests  int
	WriteRateLimitRequests int
	RateLimitWindow        time.Duration
	RateLimitDisabled      bool
	RateLimitKeyFunc       httprate.KeyFunc
}

// DefaultChiMiddlewareConfig returns a secure default configuration.
// CORS origins default to empty, requiring explicit configuration.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins:   []string{},
		CORSAllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		CORSAllowedHeaders:   []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		CORSExposedHeaders:   []string{middleware.RequestIDHeader},
		CORSAllowCredentials: true,
		CORSMaxAge:           86400,

		RateLimitRequests:      100,
		AuthRateLimitRequests:  5,
		WriteRateLimitRequests: 30,
		RateLimitWindow:        time.Minute,
	}
}

// ChiMiddleware provides Chi-compatible middleware factories.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}

	// Browsers reject credentialed responses to a wildcard origin.
	allowCredentials := config.CORSAllowCredentials
	for _, origin := range config.CORSAllowedOrigins {
		if origin == "*" {
			allowCredentials = false
		}
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   config.CORSAllowedOrigins,
		AllowedMethods:   config.CORSAllowedMethods,
		AllowedHeaders:   config.CORSAllowedHeaders,
		ExposedHeaders:   config.CORSExposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           config.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: config,
		cors:   corsHandler,
	}
}

// CORS returns the go-chi/cors middleware.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit limits the general API group.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.limit("api", m.config.RateLimitRequests)
}

// RateLimitAuth limits sign-up and sign-in attempts.
func (m *ChiMiddleware) RateLimitAuth() func(http.Handler) http.Handler {
	return m.limit("auth", m.config.AuthRateLimitRequests)
}

// RateLimitWrite limits state-changing requests.
func (m *ChiMiddleware) RateLimitWrite() func(http.Handler) http.Handler {
	return m.limit("write", m.config.WriteRateLimitRequests)
}

func (m *ChiMiddleware) limit(group string, requests int) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled || requests <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	keyFunc := m.config.RateLimitKeyFunc
	if keyFunc == nil {
		keyFunc = httprate.KeyByIP
	}

	return httprate.Limit(
		requests,
		m.config.RateLimitWindow,
		httprate.WithKeyFuncs(keyFunc),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.APIRateLimitHits.WithLabelValues(group).Inc()
			logging.Ctx(r.Context()).Warn().Str("group", group).Str("path", r.URL.Path).Msg("Rate limit exceeded")
			NewResponseWriter(w, r).TooManyRequests("Too many requests, please try again later")
		}),
	)
}

// NewChiMiddlewareFromSecurity builds the factory from the security settings.
func NewChiMiddlewareFromSecurity(corsOrigins []string, apiReqs, authReqs, writeReqs int, window time.Duration, disabled bool) *ChiMiddleware {
	config := DefaultChiMiddlewareConfig()
	config.CORSAllowedOrigins = corsOrigins
	config.RateLimitRequests = apiReqs
	config.AuthRateLimitRequests = authReqs
	config.WriteRateLimitRequests = writeReqs
	config.RateLimitWindow = window
	config.RateLimitDisabled = disabled
	return NewChiMiddleware(config)
}
