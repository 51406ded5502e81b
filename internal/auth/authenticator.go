// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Cookie names.
const (
	TokenCookieName   = "token"
	SessionCookieName = "careercanvas_session"
)

// ErrNoCredentials is returned when a request carries no token or session.
var ErrNoCredentials = errors.New("no credentials")

// Credentials is what a successful sign-in hands back to the client.
type Credentials struct {
	// Token is set in JWT mode so API clients can use a Bearer header.
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Authenticator turns requests into principals and issues and revokes
// credentials. Issue and Revoke also manage the cookie on w.
type Authenticator interface {
	Authenticate(r *http.Request) (*Principal, error)
	Issue(ctx context.Context, w http.ResponseWriter, p *Principal) (*Credentials, error)
	Revoke(ctx context.Context, w http.ResponseWriter, p *Principal) error
	Mode() string
}

// CookieConfig controls the credential cookie attributes.
type CookieConfig struct {
	Secure   bool
	SameSite http.SameSite
}

func (c CookieConfig) set(w http.ResponseWriter, name, value string, expires time.Time) {
	sameSite := c.SameSite
	if sameSite == 0 {
		sameSite = http.SameSiteLaxMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		Secure:   c.Secure,
		HttpOnly: true,
		SameSite: sameSite,
	})
}

func (c CookieConfig) clear(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   c.Secure,
		HttpOnly: true,
	})
}

// JWTAuthenticator reads a Bearer header or the token cookie.
type JWTAuthenticator struct {
	jwt    *JWTManager
	cookie CookieConfig
}

// NewJWTAuthenticator creates a stateless authenticator.
func NewJWTAuthenticator(m *JWTManager, cookie CookieConfig) *JWTAuthenticator {
	return &JWTAuthenticator{jwt: m, cookie: cookie}
}

// Mode implements Authenticator.
func (a *JWTAuthenticator) Mode() string { return ModeJWT }

// Authenticate implements Authenticator.
func (a *JWTAuthenticator) Authenticate(r *http.Request) (*Principal, error) {
	token, err := extractToken(r)
	if err != nil {
		return nil, err
	}
	claims, err := a.jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	id, err := claims.UserID()
	if err != nil {
		return nil, err
	}
	return &Principal{UserID: id, Username: claims.Username, Role: claims.Role}, nil
}

// Issue implements Authenticator.
func (a *JWTAuthenticator) Issue(_ context.Context, w http.ResponseWriter, p *Principal) (*Credentials, error) {
	token, expires, err := a.jwt.GenerateToken(p)
	if err != nil {
		return nil, err
	}
	a.cookie.set(w, TokenCookieName, token, expires)
	return &Credentials{Token: token, ExpiresAt: expires}, nil
}

// Revoke clears the cookie. Tokens are stateless and stay valid until they
// expire.
func (a *JWTAuthenticator) Revoke(_ context.Context, w http.ResponseWriter, _ *Principal) error {
	a.cookie.clear(w, TokenCookieName)
	return nil
}

func extractToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		cookie, err := r.Cookie(TokenCookieName)
		if err != nil || cookie.Value == "" {
			return "", ErrNoCredentials
		}
		return cookie.Value, nil
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// SessionAuthenticator keeps logins server side and hands out an opaque
// session id cookie. Each authenticated request slides the expiry.
type SessionAuthenticator struct {
	store  SessionStore
	ttl    time.Duration
	cookie CookieConfig
	now    func() time.Time
}

// NewSessionAuthenticator creates a session-backed authenticator.
func NewSessionAuthenticator(store SessionStore, ttl time.Duration, cookie CookieConfig) *SessionAuthenticator {
	return &SessionAuthenticator{store: store, ttl: ttl, cookie: cookie, now: time.Now}
}

// Mode implements Authenticator.
func (a *SessionAuthenticator) Mode() string { return ModeSession }

// Authenticate implements Authenticator.
func (a *SessionAuthenticator) Authenticate(r *http.Request) (*Principal, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoCredentials
	}
	session, err := a.store.Get(r.Context(), cookie.Value)
	if err != nil {
		return nil, err
	}
	if err := a.store.Touch(r.Context(), session.ID, a.now().Add(a.ttl)); err != nil {
		return nil, fmt.Errorf("touch session: %w", err)
	}
	return session.Principal(), nil
}

// Issue implements Authenticator.
func (a *SessionAuthenticator) Issue(ctx context.Context, w http.ResponseWriter, p *Principal) (*Credentials, error) {
	session := NewSession(p, a.ttl, a.now())
	if err := a.store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	a.cookie.set(w, SessionCookieName, session.ID, session.ExpiresAt)
	return &Credentials{ExpiresAt: session.ExpiresAt}, nil
}

// Revoke deletes the principal's session and clears the cookie.
func (a *SessionAuthenticator) Revoke(ctx context.Context, w http.ResponseWriter, p *Principal) error {
	a.cookie.clear(w, SessionCookieName)
	if p == nil || p.SessionID == "" {
		return nil
	}
	return a.store.Delete(ctx, p.SessionID)
}
