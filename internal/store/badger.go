// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/careercanvas/internal/models"
)

// Key prefixes for BadgerDB storage. Numeric ids are zero padded so that
// prefix iteration visits them in id order.
const (
	userKeyPrefix         = "user:"
	usernameKeyPrefix     = "username:"
	elementKeyPrefix      = "like:"
	elementIndexKeyPrefix = "like_key:"
	quizKeyPrefix         = "quiz:"
	convKeyPrefix         = "conv:"
	convUserKeyPrefix     = "conv_user:"

	seqUsers    = "seq:users"
	seqElements = "seq:likes"
	seqQuizzes  = "seq:quizzes"
	seqConvs    = "seq:conversations"

	sequenceBandwidth = 100
)

// userRecord carries the password hash, which models.User hides from JSON.
type userRecord struct {
	models.User
	PasswordHash string `json:"passwordHash"`
}

// BadgerStore persists everything in an embedded BadgerDB. Ids come from
// badger sequences, which survive restarts.
type BadgerStore struct {
	db     *badger.DB
	ownsDB bool
	now    func() time.Time

	users    *badger.Sequence
	elements *badger.Sequence
	quizzes  *badger.Sequence
	convs    *badger.Sequence
}

// OpenBadgerStore opens (or creates) a database at path. An empty path
// opens an in-memory database.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", path, err)
	}
	s, err := NewBadgerStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	s.ownsDB = true
	return s, nil
}

// NewBadgerStore uses an already open database. Close releases the
// sequences but leaves db open.
func NewBadgerStore(db *badger.DB) (*BadgerStore, error) {
	s := &BadgerStore{db: db, now: time.Now}
	var err error
	for _, seq := range []struct {
		key string
		dst **badger.Sequence
	}{
		{seqUsers, &s.users},
		{seqElements, &s.elements},
		{seqQuizzes, &s.quizzes},
		{seqConvs, &s.convs},
	} {
		if *seq.dst, err = db.GetSequence([]byte(seq.key), sequenceBandwidth); err != nil {
			_ = s.releaseSequences()
			return nil, fmt.Errorf("get sequence %s: %w", seq.key, err)
		}
	}
	return s, nil
}

// nextID returns the next value of seq, starting at 1.
func nextID(seq *badger.Sequence) (uint64, error) {
	n, err := seq.Next()
	if err != nil {
		return 0, fmt.Errorf("next id: %w", err)
	}
	return n + 1, nil
}

func padInt(n int64) string {
	return fmt.Sprintf("%019d", n)
}

func userKey(id int) []byte { return []byte(userKeyPrefix + padInt(int64(id))) }

func usernameKey(name string) []byte { return []byte(usernameKeyPrefix + name) }

func elementKey(userID int, id int64) []byte {
	return []byte(elementKeyPrefix + padInt(int64(userID)) + ":" + padInt(id))
}

func elementIndexKey(k models.ElementKey) []byte {
	return []byte(elementIndexKeyPrefix + padInt(int64(k.UserID)) + ":" + padInt(int64(k.CareerID)) + ":" +
		strconv.Itoa(int(k.ElementType)) + ":" + k.ElementValue)
}

func quizKey(userID int, id int64) []byte {
	return []byte(quizKeyPrefix + padInt(int64(userID)) + ":" + padInt(id))
}

func convKey(id int64) []byte { return []byte(convKeyPrefix + padInt(id)) }

func convUserKey(userID int, id int64) []byte {
	return []byte(convUserKeyPrefix + padInt(int64(userID)) + ":" + padInt(id))
}

func getJSON(txn *badger.Txn, key []byte, dst any) error {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, dst)
	})
}

func setJSON(txn *badger.Txn, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return txn.Set(key, data)
}

// scanPrefix calls fn with the value of every key under prefix.
func scanPrefix(txn *badger.Txn, prefix []byte, fn func(val []byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		if err := it.Item().Value(fn); err != nil {
			return err
		}
	}
	return nil
}

func (r *userRecord) toUser() *models.User {
	u := r.User.Clone()
	u.PasswordHash = r.PasswordHash
	return u
}

// CreateUser implements UserStore.
func (s *BadgerStore) CreateUser(_ context.Context, nu models.NewUser) (*models.User, error) {
	id, err := nextID(s.users)
	if err != nil {
		return nil, err
	}
	rec := userRecord{
		User: models.User{
			ID:           int(id),
			Username:     nu.Username,
			Name:         nu.Name,
			Email:        nu.Email,
			Role:         roleOrDefault(nu.Role),
			SavedCareers: []int{},
			LikedCareers: []int{},
			CreatedAt:    s.now().UTC(),
		},
		PasswordHash: nu.PasswordHash,
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(usernameKey(nu.Username)); err == nil {
			return fmt.Errorf("%w: username %q", ErrConflict, nu.Username)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set(usernameKey(nu.Username), []byte(strconv.Itoa(rec.ID))); err != nil {
			return err
		}
		return setJSON(txn, userKey(rec.ID), &rec)
	})
	if err != nil {
		return nil, err
	}
	return rec.toUser(), nil
}

// GetUser implements UserStore.
func (s *BadgerStore) GetUser(_ context.Context, id int) (*models.User, error) {
	var rec userRecord
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, userKey(id), &rec)
	})
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", id, err)
	}
	return rec.toUser(), nil
}

// GetUserByUsername implements UserStore.
func (s *BadgerStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	var rec userRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(usernameKey(username))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(string(raw))
		if err != nil {
			return fmt.Errorf("corrupt username index for %q: %w", username, err)
		}
		return getJSON(txn, userKey(id), &rec)
	})
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", username, err)
	}
	return rec.toUser(), nil
}

// UpdateCareerList implements UserStore.
func (s *BadgerStore) UpdateCareerList(_ context.Context, userID int, list models.CareerList, careerID int, add bool) (*models.User, bool, error) {
	var rec userRecord
	var changed bool
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := getJSON(txn, userKey(userID), &rec); err != nil {
			return err
		}
		if add {
			changed = rec.AddToList(list, careerID)
		} else {
			changed = rec.RemoveFromList(list, careerID)
		}
		if !changed {
			return nil
		}
		return setJSON(txn, userKey(userID), &rec)
	})
	if err != nil {
		return nil, false, fmt.Errorf("user %d: %w", userID, err)
	}
	return rec.toUser(), changed, nil
}

// LikeElement implements PreferenceStore. The index key makes the check and
// insert atomic: a concurrent duplicate fails with a conflict and is retried
// as a read.
func (s *BadgerStore) LikeElement(ctx context.Context, key models.ElementKey) (*models.LikedElement, bool, error) {
	if err := key.Validate(); err != nil {
		return nil, false, err
	}
	if existing, err := s.GetLikedElement(ctx, key); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	id, err := nextID(s.elements)
	if err != nil {
		return nil, false, err
	}
	e := &models.LikedElement{
		ID:           int64(id),
		UserID:       key.UserID,
		CareerID:     key.CareerID,
		ElementType:  key.ElementType,
		ElementValue: key.ElementValue,
		Timestamp:    s.now().UTC(),
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(elementIndexKey(key)); err == nil {
			return badger.ErrConflict
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set(elementIndexKey(key), []byte(padInt(e.ID))); err != nil {
			return err
		}
		return setJSON(txn, elementKey(e.UserID, e.ID), e)
	})
	if errors.Is(err, badger.ErrConflict) {
		existing, getErr := s.GetLikedElement(ctx, key)
		if getErr != nil {
			return nil, false, getErr
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("like element: %w", err)
	}
	return e, true, nil
}

// lookupElementID resolves the index entry for key.
func lookupElementID(txn *badger.Txn, key models.ElementKey) (int64, error) {
	item, err := txn.Get(elementIndexKey(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	raw, err := item.ValueCopy(nil)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(string(raw), 10, 64)
}

// UnlikeElement implements PreferenceStore.
func (s *BadgerStore) UnlikeElement(_ context.Context, key models.ElementKey) (bool, error) {
	deleted := false
	err := s.db.Update(func(txn *badger.Txn) error {
		id, err := lookupElementID(txn, key)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := txn.Delete(elementIndexKey(key)); err != nil {
			return err
		}
		if err := txn.Delete(elementKey(key.UserID, id)); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("unlike element: %w", err)
	}
	return deleted, nil
}

// GetLikedElement implements PreferenceStore.
func (s *BadgerStore) GetLikedElement(_ context.Context, key models.ElementKey) (*models.LikedElement, error) {
	var e models.LikedElement
	err := s.db.View(func(txn *badger.Txn) error {
		id, err := lookupElementID(txn, key)
		if err != nil {
			return err
		}
		return getJSON(txn, elementKey(key.UserID, id), &e)
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListLikedElements implements PreferenceStore.
func (s *BadgerStore) ListLikedElements(_ context.Context, userID int) ([]models.LikedElement, error) {
	out := []models.LikedElement{}
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(elementKeyPrefix + padInt(int64(userID)) + ":")
		return scanPrefix(txn, prefix, func(val []byte) error {
			var e models.LikedElement
			if err := json.Unmarshal(val, &e); err != nil {
				return err
			}
			out = append(out, e)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list liked elements: %w", err)
	}
	sortElementsNewestFirst(out)
	return out, nil
}

// ListDirectlyLikedCareerIDs implements PreferenceStore.
func (s *BadgerStore) ListDirectlyLikedCareerIDs(ctx context.Context, userID int) ([]int, error) {
	elements, err := s.ListLikedElements(ctx, userID)
	if err != nil {
		return nil, err
	}
	var liked []int
	u, err := s.GetUser(ctx, userID)
	switch {
	case err == nil:
		liked = u.LikedCareers
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}
	return mergeCareerIDs(elements, liked), nil
}

// SaveQuizResult implements QuizStore.
func (s *BadgerStore) SaveQuizResult(_ context.Context, userID int, answers models.QuizAnswers) (*models.QuizResult, error) {
	id, err := nextID(s.quizzes)
	if err != nil {
		return nil, err
	}
	r := &models.QuizResult{
		ID:        int64(id),
		UserID:    userID,
		Answers:   cloneAnswers(answers),
		Timestamp: s.now().UTC(),
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		var rec userRecord
		if err := getJSON(txn, userKey(userID), &rec); err != nil {
			return err
		}
		if !rec.QuizCompleted {
			rec.QuizCompleted = true
			if err := setJSON(txn, userKey(userID), &rec); err != nil {
				return err
			}
		}
		return setJSON(txn, quizKey(userID, r.ID), r)
	})
	if err != nil {
		return nil, fmt.Errorf("save quiz result for user %d: %w", userID, err)
	}
	return r, nil
}

// ListQuizResults implements QuizStore.
func (s *BadgerStore) ListQuizResults(_ context.Context, userID int) ([]models.QuizResult, error) {
	out := []models.QuizResult{}
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(quizKeyPrefix + padInt(int64(userID)) + ":")
		return scanPrefix(txn, prefix, func(val []byte) error {
			var r models.QuizResult
			if err := json.Unmarshal(val, &r); err != nil {
				return err
			}
			out = append(out, r)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}
	sortQuizNewestFirst(out)
	return out, nil
}

// LatestQuizResult implements QuizStore.
func (s *BadgerStore) LatestQuizResult(ctx context.Context, userID int) (*models.QuizResult, error) {
	results, err := s.ListQuizResults(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no quiz results for user %d", ErrNotFound, userID)
	}
	return &results[0], nil
}

// CreateConversation implements ConversationStore.
func (s *BadgerStore) CreateConversation(_ context.Context, userID int, messages []models.Message) (*models.Conversation, error) {
	id, err := nextID(s.convs)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	c := &models.Conversation{
		ID:        int64(id),
		UserID:    userID,
		Messages:  append([]models.Message{}, messages...),
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(convUserKey(userID, c.ID), []byte(padInt(c.ID))); err != nil {
			return err
		}
		return setJSON(txn, convKey(c.ID), c)
	})
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return c, nil
}

// AppendMessages implements ConversationStore.
func (s *BadgerStore) AppendMessages(_ context.Context, conversationID int64, messages ...models.Message) (*models.Conversation, error) {
	var c models.Conversation
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := getJSON(txn, convKey(conversationID), &c); err != nil {
			return err
		}
		c.Messages = append(c.Messages, messages...)
		c.UpdatedAt = s.now().UTC()
		return setJSON(txn, convKey(conversationID), &c)
	})
	if err != nil {
		return nil, fmt.Errorf("conversation %d: %w", conversationID, err)
	}
	return &c, nil
}

// GetConversation implements ConversationStore.
func (s *BadgerStore) GetConversation(_ context.Context, id int64) (*models.Conversation, error) {
	var c models.Conversation
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, convKey(id), &c)
	})
	if err != nil {
		return nil, fmt.Errorf("conversation %d: %w", id, err)
	}
	return cloneConversation(&c), nil
}

// ListConversations implements ConversationStore.
func (s *BadgerStore) ListConversations(_ context.Context, userID int) ([]models.Conversation, error) {
	out := []models.Conversation{}
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(convUserKeyPrefix + padInt(int64(userID)) + ":")
		return scanPrefix(txn, prefix, func(val []byte) error {
			id, err := strconv.ParseInt(string(val), 10, 64)
			if err != nil {
				return err
			}
			var c models.Conversation
			if err := getJSON(txn, convKey(id), &c); err != nil {
				return err
			}
			out = append(out, *cloneConversation(&c))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	sortConversationsRecentFirst(out)
	return out, nil
}

// Ping checks that the database is open.
func (s *BadgerStore) Ping(context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger database is closed")
	}
	return nil
}

// Close releases the id sequences and, for stores opened with
// OpenBadgerStore, the database.
func (s *BadgerStore) Close() error {
	err := s.releaseSequences()
	if s.ownsDB {
		err = errors.Join(err, s.db.Close())
	}
	return err
}

func (s *BadgerStore) releaseSequences() error {
	var err error
	for _, seq := range []*badger.Sequence{s.users, s.elements, s.quizzes, s.convs} {
		if seq != nil {
			err = errors.Join(err, seq.Release())
		}
	}
	return err
}
