// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/careercanvas/internal/logging"
)

// healthCheckTimeout bounds the store ping.
const healthCheckTimeout = 2 * time.Second

// Health handles GET /api/v1/health. It answers 503 when the store does
// not respond so load balancers stop routing to the instance.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()
	storeErr := h.store.Ping(ctx)

	resp := HealthResponse{
		Status:        "healthy",
		Version:       h.version,
		Uptime:        time.Since(h.startTime).Round(time.Second).String(),
		StoreOK:       storeErr == nil,
		CatalogSize:   h.catalog.Len(),
		AuthMode:      h.authn.Mode(),
		ChatLLMActive: h.chat.LLMActive(),
	}
	if storeErr != nil {
		logging.Ctx(r.Context()).Warn().Err(storeErr).Msg("Health check: store ping failed")
		resp.Status = "unhealthy"
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Store unavailable", resp)
		return
	}
	rw.Success(resp)
}

// HealthLive handles GET /api/v1/health/live. It never touches
// dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "alive"})
}

// Performance handles GET /api/v1/health/performance with per-route
// latency percentiles.
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.perfMon.Stats())
}
