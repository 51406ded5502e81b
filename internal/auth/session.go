// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound is returned when a session does not exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when a session exists but has expired.
	ErrSessionExpired = errors.New("session expired")
)

// Session is a server-side login.
type Session struct {
	ID             string    `json:"id"`
	UserID         int       `json:"userId"`
	Username       string    `json:"username"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
	ExpiresAt      time.Time `json:"expiresAt"`
	LastAccessedAt time.Time `json:"lastAccessedAt"`
}

// IsExpired reports whether the session has expired at now.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Principal returns the caller identity the session represents.
func (s *Session) Principal() *Principal {
	return &Principal{UserID: s.UserID, Username: s.Username, Role: s.Role, SessionID: s.ID}
}

// NewSession creates a session for p lasting duration.
func NewSession(p *Principal, duration time.Duration, now time.Time) *Session {
	return &Session{
		ID:             uuid.NewString(),
		UserID:         p.UserID,
		Username:       p.Username,
		Role:           p.Role,
		CreatedAt:      now,
		ExpiresAt:      now.Add(duration),
		LastAccessedAt: now,
	}
}

// SessionStore persists sessions.
type SessionStore interface {
	Create(ctx context.Context, session *Session) error

	// Get returns ErrSessionNotFound or ErrSessionExpired when the session
	// cannot be used.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete is a no-op for unknown ids.
	Delete(ctx context.Context, id string) error

	DeleteByUserID(ctx context.Context, userID int) (int, error)

	// Touch records access and moves the expiry.
	Touch(ctx context.Context, id string, newExpiry time.Time) error

	CleanupExpired(ctx context.Context) (int, error)
}

// MemorySessionStore keeps sessions in process memory.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

// NewMemorySessionStore creates an empty store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Create implements SessionStore.
func (s *MemorySessionStore) Create(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

// Get implements SessionStore.
func (s *MemorySessionStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.IsExpired(s.now()) {
		return nil, ErrSessionExpired
	}
	return &session, nil
}

// Delete implements SessionStore.
func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// DeleteByUserID implements SessionStore.
func (s *MemorySessionStore) DeleteByUserID(_ context.Context, userID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for id, session := range s.sessions {
		if session.UserID == userID {
			delete(s.sessions, id)
			count++
		}
	}
	return count, nil
}

// Touch implements SessionStore.
func (s *MemorySessionStore) Touch(_ context.Context, id string, newExpiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	session.LastAccessedAt = s.now()
	session.ExpiresAt = newExpiry
	s.sessions[id] = session
	return nil
}

// CleanupExpired implements SessionStore.
func (s *MemorySessionStore) CleanupExpired(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	count := 0
	for id, session := range s.sessions {
		if session.IsExpired(now) {
			delete(s.sessions, id)
			count++
		}
	}
	return count, nil
}

// Close is a no-op.
func (s *MemorySessionStore) Close() error { return nil }
