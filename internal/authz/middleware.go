// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package authz

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/careercanvas/internal/auth"
	"github.com/tomtom215/careercanvas/internal/logging"
)

// ErrorResponder writes an error response in the caller's envelope format.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, status int, code, message string)

// Middleware guards routes whose URL names the owning user.
type Middleware struct {
	enforcer *Enforcer
	respond  ErrorResponder
}

// NewMiddleware creates a new authorization middleware.
func NewMiddleware(enforcer *Enforcer, respond ErrorResponder) *Middleware {
	return &Middleware{enforcer: enforcer, respond: respond}
}

// RequireOwner authorizes the request path against the user id in the chi
// URL parameter param. Anonymous callers get 401, denied callers 403.
func (m *Middleware) RequireOwner(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := auth.PrincipalFromContext(r.Context())
			if p == nil {
				m.respond(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}

			ownerID, err := strconv.Atoi(chi.URLParam(r, param))
			if err != nil || ownerID <= 0 {
				m.respond(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid user id")
				return
			}

			allowed, err := m.enforcer.Authorize(p, r.URL.Path, MethodToAction(r.Method), ownerID)
			if err != nil {
				logging.Ctx(r.Context()).Error().Err(err).Msg("Authorization error")
				m.respond(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
				return
			}
			if !allowed {
				logging.Ctx(r.Context()).Debug().
					Int("caller", p.UserID).
					Int("owner", ownerID).
					Str("path", r.URL.Path).
					Msg("Access denied")
				m.respond(w, r, http.StatusForbidden, "FORBIDDEN", "Access denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MethodToAction maps an HTTP method to a policy action.
func MethodToAction(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return ActionRead
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return ActionWrite
	case http.MethodDelete:
		return ActionDelete
	default:
		return ActionRead
	}
}
