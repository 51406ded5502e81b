// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const (
	sessionKeyPrefix     = "session:"
	sessionUserKeyPrefix = "session_user:"
)

// BadgerSessionStore persists sessions in BadgerDB so that logins survive a
// restart. Entries carry a Badger TTL matching the session expiry, so the
// value log reclaims them even if CleanupExpired never runs.
type BadgerSessionStore struct {
	db     *badger.DB
	ownsDB bool
	now    func() time.Time
}

// OpenBadgerSessionStore opens a dedicated database at path. An empty path
// keeps everything in memory.
func OpenBadgerSessionStore(path string) (*BadgerSessionStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for sessions: %w", err)
	}
	s := NewBadgerSessionStore(db)
	s.ownsDB = true
	return s, nil
}

// NewBadgerSessionStore uses an already open database.
func NewBadgerSessionStore(db *badger.DB) *BadgerSessionStore {
	return &BadgerSessionStore{db: db, now: time.Now}
}

func sessionKey(id string) []byte { return []byte(sessionKeyPrefix + id) }

func sessionUserPrefix(userID int) []byte {
	return []byte(sessionUserKeyPrefix + strconv.Itoa(userID) + ":")
}

func sessionUserKey(userID int, id string) []byte {
	return append(sessionUserPrefix(userID), id...)
}

func (s *BadgerSessionStore) put(txn *badger.Txn, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		ttl = time.Second
	}
	if err := txn.SetEntry(badger.NewEntry(sessionKey(session.ID), data).WithTTL(ttl)); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	idx := badger.NewEntry(sessionUserKey(session.UserID, session.ID), []byte(session.ID)).WithTTL(ttl)
	if err := txn.SetEntry(idx); err != nil {
		return fmt.Errorf("set user mapping: %w", err)
	}
	return nil
}

func getSession(txn *badger.Txn, id string) (*Session, error) {
	item, err := txn.Get(sessionKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	var session Session
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &session)
	}); err != nil {
		return nil, err
	}
	return &session, nil
}

func deleteSession(txn *badger.Txn, session *Session) error {
	if err := txn.Delete(sessionKey(session.ID)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if err := txn.Delete(sessionUserKey(session.UserID, session.ID)); err != nil {
		return fmt.Errorf("delete user mapping: %w", err)
	}
	return nil
}

// Create implements SessionStore.
func (s *BadgerSessionStore) Create(_ context.Context, session *Session) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return s.put(txn, session)
	})
}

// Get implements SessionStore.
func (s *BadgerSessionStore) Get(_ context.Context, id string) (*Session, error) {
	var session *Session
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		session, err = getSession(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if session.IsExpired(s.now()) {
		return nil, ErrSessionExpired
	}
	return session, nil
}

// Delete implements SessionStore.
func (s *BadgerSessionStore) Delete(_ context.Context, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		session, err := getSession(txn, id)
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return deleteSession(txn, session)
	})
}

// DeleteByUserID implements SessionStore.
func (s *BadgerSessionStore) DeleteByUserID(_ context.Context, userID int) (int, error) {
	count := 0
	err := s.db.Update(func(txn *badger.Txn) error {
		var ids []string
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		prefix := sessionUserPrefix(userID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				it.Close()
				return err
			}
			ids = append(ids, string(val))
		}
		it.Close()

		for _, id := range ids {
			session, err := getSession(txn, id)
			if errors.Is(err, ErrSessionNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if err := deleteSession(txn, session); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("delete user sessions: %w", err)
	}
	return count, nil
}

// Touch implements SessionStore.
func (s *BadgerSessionStore) Touch(_ context.Context, id string, newExpiry time.Time) error {
	return s.db.Update(func(txn *badger.Txn) error {
		session, err := getSession(txn, id)
		if err != nil {
			return err
		}
		session.LastAccessedAt = s.now()
		session.ExpiresAt = newExpiry
		return s.put(txn, session)
	})
}

// CleanupExpired implements SessionStore.
func (s *BadgerSessionStore) CleanupExpired(_ context.Context) (int, error) {
	now := s.now()
	var expired []*Session
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(sessionKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var session Session
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &session)
			}); err != nil {
				return err
			}
			if session.IsExpired(now) {
				expired = append(expired, &session)
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan sessions: %w", err)
	}
	if len(expired) == 0 {
		return 0, nil
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		for _, session := range expired {
			if err := deleteSession(txn, session); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(expired), nil
}

// Close closes the database when the store opened it.
func (s *BadgerSessionStore) Close() error {
	if s.ownsDB {
		return s.db.Close()
	}
	return nil
}
