// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tomtom215/careercanvas/internal/auth"
	"github.com/tomtom215/careercanvas/internal/logging"
	"github.com/tomtom215/careercanvas/internal/models"
	"github.com/tomtom215/careercanvas/internal/store"
)

// Register handles POST /api/v1/auth/register. The new user is signed in.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.accounts.Register(r.Context(), auth.Registration{
		Username: req.Username,
		Password: req.Password,
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp, err := h.signIn(w, r, user)
	if err != nil {
		respondError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().Int("user_id", user.ID).Msg("User registered")
	NewResponseWriter(w, r).Created(resp)
}

// Login handles POST /api/v1/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp, err := h.signIn(w, r, user)
	if err != nil {
		respondError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(resp)
}

// Logout handles POST /api/v1/auth/logout. It succeeds for anonymous
// callers too, so a client can always clear a stale cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	p := auth.PrincipalFromContext(r.Context())
	if err := h.authn.Revoke(r.Context(), w, p); err != nil && !errors.Is(err, auth.ErrSessionNotFound) {
		respondError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(map[string]string{"message": "Logged out"})
}

// CurrentUser handles GET /api/v1/auth/user and GET /api/v1/users/me
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	p := auth.PrincipalFromContext(r.Context())
	if p == nil {
		rw.Unauthorized("Authentication required")
		return
	}
	user, err := h.store.GetUser(r.Context(), p.UserID)
	if errors.Is(err, store.ErrNotFound) {
		// The account was removed after the credentials were issued.
		rw.Unauthorized("Authentication required")
		return
	}
	if err != nil {
		respondError(w, r, err)
		return
	}
	rw.Success(user)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request, user *models.User) (*AuthResponse, error) {
	creds, err := h.authn.Issue(r.Context(), w, auth.PrincipalFor(user))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: user, Token: creds.Token, ExpiresAt: creds.ExpiresAt}, nil
}
