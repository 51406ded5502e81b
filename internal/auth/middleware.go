// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package auth

import (
	"errors"
	"net/http"

	"github.com/tomtom215/careercanvas/internal/logging"
)

// Middleware resolves the caller of every request. It never rejects a
// request itself: routes that need a caller check PrincipalFromContext.
type Middleware struct {
	authn Authenticator
}

// NewMiddleware creates the middleware.
func NewMiddleware(authn Authenticator) *Middleware {
	return &Middleware{authn: authn}
}

// Authenticate attaches the principal, if any, to the request context.
// Invalid or expired credentials leave the request anonymous.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := m.authn.Authenticate(r)
		if err != nil {
			if !errors.Is(err, ErrNoCredentials) {
				logging.Ctx(r.Context()).Debug().Err(err).Str("mode", m.authn.Mode()).
					Msg("Ignoring invalid credentials")
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := ContextWithPrincipal(r.Context(), p)
		ctx = logging.ContextWithUserID(ctx, p.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
