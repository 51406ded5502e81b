// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package auth

import (
	"context"

	"github.com/tomtom215/careercanvas/internal/models"
)

type contextKey string

const principalContextKey contextKey = "principal"

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID   int
	Username string
	Role     string

	// SessionID is set in session mode and used by logout.
	SessionID string
}

// IsAdmin reports whether the principal has the admin role.
func (p *Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// PrincipalFor builds a principal for u.
func PrincipalFor(u *models.User) *Principal {
	return &Principal{UserID: u.ID, Username: u.Username, Role: u.Role}
}

// ContextWithPrincipal attaches p to ctx.
func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// PrincipalFromContext returns the principal attached by the middleware, or
// nil for anonymous requests.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalContextKey).(*Principal)
	return p
}
