// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package auth

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tomtom215/careercanvas/internal/logging"
)

// Authentication modes.
const (
	ModeJWT     = "jwt"
	ModeSession = "session"
)

// Session store types.
const (
	SessionStoreMemory = "memory"
	SessionStoreBadger = "badger"
)

// Config configures authentication.
type Config struct {
	Mode           string        `koanf:"mode"`
	JWTSecret      string        `koanf:"jwt_secret"`
	SessionTimeout time.Duration `koanf:"session_timeout"`
	SessionStore   string        `koanf:"session_store"`
	SessionPath    string        `koanf:"session_path"`
	CookieSecure   bool          `koanf:"cookie_secure"`
}

// Validate checks the mode and the settings it depends on.
func (c *Config) Validate() error {
	if c.SessionTimeout <= 0 {
		return fmt.Errorf("security.session_timeout must be positive")
	}
	switch c.Mode {
	case ModeJWT:
		if len(c.JWTSecret) < MinJWTSecretLength {
			return fmt.Errorf("security.jwt_secret must be at least %d characters in jwt mode", MinJWTSecretLength)
		}
	case ModeSession:
		switch c.SessionStore {
		case SessionStoreMemory, SessionStoreBadger:
		default:
			return fmt.Errorf("security.session_store must be memory or badger (got %q)", c.SessionStore)
		}
	default:
		return fmt.Errorf("security.auth_mode must be jwt or session (got %q)", c.Mode)
	}
	return nil
}

// Setup is the authenticator built from Config plus whatever must be closed
// on shutdown.
type Setup struct {
	Authenticator Authenticator

	// Sessions is nil in JWT mode.
	Sessions SessionStore

	closer io.Closer
}

// Close releases the session store.
func (s *Setup) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// New builds the authenticator for cfg.
func New(cfg Config) (*Setup, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cookie := CookieConfig{Secure: cfg.CookieSecure}

	if cfg.Mode == ModeJWT {
		m, err := NewJWTManager(cfg.JWTSecret, cfg.SessionTimeout)
		if err != nil {
			return nil, err
		}
		return &Setup{Authenticator: NewJWTAuthenticator(m, cookie)}, nil
	}

	var (
		sessions SessionStore
		closer   io.Closer
	)
	if cfg.SessionStore == SessionStoreBadger {
		bs, err := OpenBadgerSessionStore(cfg.SessionPath)
		if err != nil {
			return nil, err
		}
		sessions, closer = bs, bs
	} else {
		ms := NewMemorySessionStore()
		sessions, closer = ms, ms
	}
	return &Setup{
		Authenticator: NewSessionAuthenticator(sessions, cfg.SessionTimeout, cookie),
		Sessions:      sessions,
		closer:        closer,
	}, nil
}

// SessionCleanupService periodically removes expired sessions. It
// implements suture.Service.
type SessionCleanupService struct {
	store    SessionStore
	interval time.Duration
}

// NewSessionCleanupService creates the service.
func NewSessionCleanupService(store SessionStore, interval time.Duration) *SessionCleanupService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &SessionCleanupService{store: store, interval: interval}
}

// Serve runs until ctx is cancelled.
func (s *SessionCleanupService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n, err := s.store.CleanupExpired(ctx)
			if err != nil {
				logging.Warn().Err(err).Msg("Session cleanup failed")
				continue
			}
			if n > 0 {
				logging.Debug().Int("removed", n).Msg("Expired sessions removed")
			}
		}
	}
}

// String names the service for supervisor logs.
func (s *SessionCleanupService) String() string { return "session-cleanup" }
