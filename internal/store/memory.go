// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/careercanvas/internal/models"
)

// MemoryStore keeps everything in process memory. Ids come from counters
// owned by the store instance.
type MemoryStore struct {
	mu  sync.RWMutex
	now func() time.Time

	users      map[int]*models.User
	hashes     map[int]string
	byUsername map[string]int
	elements   map[models.ElementKey]*models.LikedElement
	quizzes    map[int][]models.QuizResult
	convs      map[int64]*models.Conversation

	nextUserID    int
	nextElementID int64
	nextQuizID    int64
	nextConvID    int64
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:        time.Now,
		users:      make(map[int]*models.User),
		hashes:     make(map[int]string),
		byUsername: make(map[string]int),
		elements:   make(map[models.ElementKey]*models.LikedElement),
		quizzes:    make(map[int][]models.QuizResult),
		convs:      make(map[int64]*models.Conversation),
	}
}

// CreateUser implements UserStore.
func (s *MemoryStore) CreateUser(_ context.Context, nu models.NewUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byUsername[nu.Username]; ok {
		return nil, fmt.Errorf("%w: username %q", ErrConflict, nu.Username)
	}
	s.nextUserID++
	u := &models.User{
		ID:           s.nextUserID,
		Username:     nu.Username,
		Name:         nu.Name,
		Email:        nu.Email,
		Role:         roleOrDefault(nu.Role),
		SavedCareers: []int{},
		LikedCareers: []int{},
		CreatedAt:    s.now().UTC(),
	}
	s.users[u.ID] = u
	s.hashes[u.ID] = nu.PasswordHash
	s.byUsername[u.Username] = u.ID
	return s.userLocked(u.ID), nil
}

// userLocked returns a copy with the password hash attached. Callers hold mu.
func (s *MemoryStore) userLocked(id int) *models.User {
	out := s.users[id].Clone()
	out.PasswordHash = s.hashes[id]
	return out
}

// GetUser implements UserStore.
func (s *MemoryStore) GetUser(_ context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.users[id]; !ok {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	return s.userLocked(id), nil
}

// GetUserByUsername implements UserStore.
func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("%w: user %q", ErrNotFound, username)
	}
	return s.userLocked(id), nil
}

// UpdateCareerList implements UserStore.
func (s *MemoryStore) UpdateCareerList(_ context.Context, userID int, list models.CareerList, careerID int, add bool) (*models.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, false, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	var changed bool
	if add {
		changed = u.AddToList(list, careerID)
	} else {
		changed = u.RemoveFromList(list, careerID)
	}
	return s.userLocked(userID), changed, nil
}

// LikeElement implements PreferenceStore.
func (s *MemoryStore) LikeElement(_ context.Context, key models.ElementKey) (*models.LikedElement, bool, error) {
	if err := key.Validate(); err != nil {
		return nil, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.elements[key]; ok {
		e := *existing
		return &e, false, nil
	}
	s.nextElementID++
	e := &models.LikedElement{
		ID:           s.nextElementID,
		UserID:       key.UserID,
		CareerID:     key.CareerID,
		ElementType:  key.ElementType,
		ElementValue: key.ElementValue,
		Timestamp:    s.now().UTC(),
	}
	s.elements[key] = e
	out := *e
	return &out, true, nil
}

// UnlikeElement implements PreferenceStore.
func (s *MemoryStore) UnlikeElement(_ context.Context, key models.ElementKey) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elements[key]; !ok {
		return false, nil
	}
	delete(s.elements, key)
	return true, nil
}

// GetLikedElement implements PreferenceStore.
func (s *MemoryStore) GetLikedElement(_ context.Context, key models.ElementKey) (*models.LikedElement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.elements[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := *e
	return &out, nil
}

// ListLikedElements implements PreferenceStore.
func (s *MemoryStore) ListLikedElements(_ context.Context, userID int) ([]models.LikedElement, error) {
	s.mu.RLock()
	out := s.elementsLocked(userID)
	s.mu.RUnlock()
	sortElementsNewestFirst(out)
	return out, nil
}

func (s *MemoryStore) elementsLocked(userID int) []models.LikedElement {
	out := []models.LikedElement{}
	for _, e := range s.elements {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out
}

// ListDirectlyLikedCareerIDs implements PreferenceStore.
func (s *MemoryStore) ListDirectlyLikedCareerIDs(_ context.Context, userID int) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var liked []int
	if u, ok := s.users[userID]; ok {
		liked = u.LikedCareers
	}
	return mergeCareerIDs(s.elementsLocked(userID), liked), nil
}

// SaveQuizResult implements QuizStore.
func (s *MemoryStore) SaveQuizResult(_ context.Context, userID int, answers models.QuizAnswers) (*models.QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	s.nextQuizID++
	r := models.QuizResult{
		ID:        s.nextQuizID,
		UserID:    userID,
		Answers:   cloneAnswers(answers),
		Timestamp: s.now().UTC(),
	}
	s.quizzes[userID] = append(s.quizzes[userID], r)
	u.QuizCompleted = true
	r.Answers = cloneAnswers(r.Answers)
	return &r, nil
}

// ListQuizResults implements QuizStore.
func (s *MemoryStore) ListQuizResults(_ context.Context, userID int) ([]models.QuizResult, error) {
	s.mu.RLock()
	out := make([]models.QuizResult, 0, len(s.quizzes[userID]))
	for _, r := range s.quizzes[userID] {
		r.Answers = cloneAnswers(r.Answers)
		out = append(out, r)
	}
	s.mu.RUnlock()
	sortQuizNewestFirst(out)
	return out, nil
}

// LatestQuizResult implements QuizStore.
func (s *MemoryStore) LatestQuizResult(ctx context.Context, userID int) (*models.QuizResult, error) {
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
func (s *MemoryStore) CreateConversation(_ context.Context, userID int, messages []models.Message) (*models.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextConvID++
	now := s.now().UTC()
	c := &models.Conversation{
		ID:        s.nextConvID,
		UserID:    userID,
		Messages:  append([]models.Message{}, messages...),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.convs[c.ID] = c
	return cloneConversation(c), nil
}

// AppendMessages implements ConversationStore.
func (s *MemoryStore) AppendMessages(_ context.Context, conversationID int64, messages ...models.Message) (*models.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.convs[conversationID]
	if !ok {
		return nil, fmt.Errorf("%w: conversation %d", ErrNotFound, conversationID)
	}
	c.Messages = append(c.Messages, messages...)
	c.UpdatedAt = s.now().UTC()
	return cloneConversation(c), nil
}

// GetConversation implements ConversationStore.
func (s *MemoryStore) GetConversation(_ context.Context, id int64) (*models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.convs[id]
	if !ok {
		return nil, fmt.Errorf("%w: conversation %d", ErrNotFound, id)
	}
	return cloneConversation(c), nil
}

// ListConversations implements ConversationStore.
func (s *MemoryStore) ListConversations(_ context.Context, userID int) ([]models.Conversation, error) {
	s.mu.RLock()
	out := []models.Conversation{}
	for _, c := range s.convs {
		if c.UserID == userID {
			out = append(out, *cloneConversation(c))
		}
	}
	s.mu.RUnlock()
	sortConversationsRecentFirst(out)
	return out, nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }

func roleOrDefault(role string) string {
	if role == "" {
		return models.RoleUser
	}
	return role
}
