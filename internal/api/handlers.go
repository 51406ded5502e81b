// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package api

import (
	"time"

	"github.com/tomtom215/careercanvas/internal/auth"
	"github.com/tomtom215/careercanvas/internal/authz"
	"github.com/tomtom215/careercanvas/internal/catalog"
	"github.com/tomtom215/careercanvas/internal/chat"
	"github.com/tomtom215/careercanvas/internal/middleware"
	"github.com/tomtom215/careercanvas/internal/recommend"
	"github.com/tomtom215/careercanvas/internal/store"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files by resource:
//   - handlers_careers.go: catalog, related careers, career path
//   - handlers_preferences.go: feed, element likes, saved and liked careers
//   - handlers_quiz.go: quiz results
//   - handlers_chat.go: assistant chat and conversations
//   - handlers_auth.go: register, login, logout, current user
//   - handlers_health.go: health and performance
type Handler struct {
	catalog   *catalog.Catalog
	assembler *recommend.Assembler
	store     store.Store
	accounts  *auth.Service
	authn     auth.Authenticator
	enforcer  *authz.Enforcer
	chat      *chat.Service
	perfMon   *middleware.PerformanceMonitor
	version   string
	startTime time.Time
}

// Dependencies are the collaborators NewHandler wires together. All fields
// are required except PerfMon and Version.
type Dependencies struct {
	Catalog   *catalog.Catalog
	Assembler *recommend.Assembler
	Store     store.Store
	Accounts  *auth.Service
	Authn     auth.Authenticator
	Enforcer  *authz.Enforcer
	Chat      *chat.Service
	PerfMon   *middleware.PerformanceMonitor
	Version   string
}

// NewHandler creates a new API handler.
func NewHandler(deps Dependencies) *Handler {
	perfMon := deps.PerfMon
	if perfMon == nil {
		perfMon = middleware.NewPerformanceMonitor(1000, middleware.DefaultSlowRequestThreshold)
	}
	return &Handler{
		catalog:   deps.Catalog,
		assembler: deps.Assembler,
		store:     deps.Store,
		accounts:  deps.Accounts,
		authn:     deps.Authn,
		enforcer:  deps.Enforcer,
		chat:      deps.Chat,
		perfMon:   perfMon,
		version:   deps.Version,
		startTime: time.Now(),
	}
}

// PerformanceMonitor returns the monitor the router records requests into.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}
