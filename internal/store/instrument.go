// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package store

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/careercanvas/internal/metrics"
	"github.com/tomtom215/careercanvas/internal/models"
)

// Instrumented wraps a Store and records per-operation latency and error
// counts. ErrNotFound is an expected outcome and is not counted as an error.
type Instrumented struct {
	next    Store
	backend string
}

// Instrument wraps s, labelling metrics with backend.
func Instrument(s Store, backend string) *Instrumented {
	return &Instrumented{next: s, backend: backend}
}

// Unwrap returns the wrapped store.
func (i *Instrumented) Unwrap() Store { return i.next }

func (i *Instrumented) observe(op string, start time.Time, err error) {
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	metrics.RecordStoreOperation(i.backend, op, time.Since(start), err)
}

func (i *Instrumented) CreateUser(ctx context.Context, nu models.NewUser) (*models.User, error) {
	start := time.Now()
	u, err := i.next.CreateUser(ctx, nu)
	i.observe("create_user", start, err)
	return u, err
}

func (i *Instrumented) GetUser(ctx context.Context, id int) (*models.User, error) {
	start := time.Now()
	u, err := i.next.GetUser(ctx, id)
	i.observe("get_user", start, err)
	return u, err
}

func (i *Instrumented) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	start := time.Now()
	u, err := i.next.GetUserByUsername(ctx, username)
	i.observe("get_user_by_username", start, err)
	return u, err
}

func (i *Instrumented) UpdateCareerList(ctx context.Context, userID int, list models.CareerList, careerID int, add bool) (*models.User, bool, error) {
	start := time.Now()
	u, changed, err := i.next.UpdateCareerList(ctx, userID, list, careerID, add)
	i.observe("update_career_list", start, err)
	return u, changed, err
}

func (i *Instrumented) LikeElement(ctx context.Context, key models.ElementKey) (*models.LikedElement, bool, error) {
	start := time.Now()
	e, created, err := i.next.LikeElement(ctx, key)
	i.observe("like_element", start, err)
	if err == nil && created {
		metrics.LikedElementsChanged.WithLabelValues("like", key.ElementType.String()).Inc()
	}
	return e, created, err
}

func (i *Instrumented) UnlikeElement(ctx context.Context, key models.ElementKey) (bool, error) {
	start := time.Now()
	removed, err := i.next.UnlikeElement(ctx, key)
	i.observe("unlike_element", start, err)
	if err == nil && removed {
		metrics.LikedElementsChanged.WithLabelValues("unlike", key.ElementType.String()).Inc()
	}
	return removed, err
}

func (i *Instrumented) GetLikedElement(ctx context.Context, key models.ElementKey) (*models.LikedElement, error) {
	start := time.Now()
	e, err := i.next.GetLikedElement(ctx, key)
	i.observe("get_liked_element", start, err)
	return e, err
}

func (i *Instrumented) ListLikedElements(ctx context.Context, userID int) ([]models.LikedElement, error) {
	start := time.Now()
	out, err := i.next.ListLikedElements(ctx, userID)
	i.observe("list_liked_elements", start, err)
	return out, err
}

func (i *Instrumented) ListDirectlyLikedCareerIDs(ctx context.Context, userID int) ([]int, error) {
	start := time.Now()
	out, err := i.next.ListDirectlyLikedCareerIDs(ctx, userID)
	i.observe("list_liked_career_ids", start, err)
	return out, err
}

func (i *Instrumented) SaveQuizResult(ctx context.Context, userID int, answers models.QuizAnswers) (*models.QuizResult, error) {
	start := time.Now()
	r, err := i.next.SaveQuizResult(ctx, userID, answers)
	i.observe("save_quiz_result", start, err)
	return r, err
}

func (i *Instrumented) ListQuizResults(ctx context.Context, userID int) ([]models.QuizResult, error) {
	start := time.Now()
	out, err := i.next.ListQuizResults(ctx, userID)
	i.observe("list_quiz_results", start, err)
	return out, err
}

func (i *Instrumented) LatestQuizResult(ctx context.Context, userID int) (*models.QuizResult, error) {
	start := time.Now()
	r, err := i.next.LatestQuizResult(ctx, userID)
	i.observe("latest_quiz_result", start, err)
	return r, err
}

func (i *Instrumented) CreateConversation(ctx context.Context, userID int, messages []models.Message) (*models.Conversation, error) {
	start := time.Now()
	c, err := i.next.CreateConversation(ctx, userID, messages)
	i.observe("create_conversation", start, err)
	return c, err
}

func (i *Instrumented) AppendMessages(ctx context.Context, conversationID int64, messages ...models.Message) (*models.Conversation, error) {
	start := time.Now()
	c, err := i.next.AppendMessages(ctx, conversationID, messages...)
	i.observe("append_messages", start, err)
	return c, err
}

func (i *Instrumented) GetConversation(ctx context.Context, id int64) (*models.Conversation, error) {
	start := time.Now()
	c, err := i.next.GetConversation(ctx, id)
	i.observe("get_conversation", start, err)
	return c, err
}

func (i *Instrumented) ListConversations(ctx context.Context, userID int) ([]models.Conversation, error) {
	start := time.Now()
	out, err := i.next.ListConversations(ctx, userID)
	i.observe("list_conversations", start, err)
	return out, err
}

func (i *Instrumented) Ping(ctx context.Context) error {
	start := time.Now()
	err := i.next.Ping(ctx)
	i.observe("ping", start, err)
	return err
}

func (i *Instrumented) Close() error { return i.next.Close() }
