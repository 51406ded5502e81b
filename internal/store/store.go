// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package store

import (
	"context"
	"errors"
	"slices"
	"sort"

	"github.com/tomtom215/careercanvas/internal/models"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a uniqueness constraint would be violated,
	// such as registering a taken username.
	ErrConflict = errors.New("record already exists")
)

// UserStore manages accounts and their saved and liked career lists.
type UserStore interface {
	// CreateUser returns ErrConflict when the username is taken.
	CreateUser(ctx context.Context, u models.NewUser) (*models.User, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// UpdateCareerList adds or removes careerID on one of the user's lists.
	// The returned flag reports whether the list changed.
	UpdateCareerList(ctx context.Context, userID int, list models.CareerList, careerID int, add bool) (*models.User, bool, error)
}

// PreferenceStore holds liked elements.
type PreferenceStore interface {
	// LikeElement inserts the element unless an identical row exists, in
	// which case the existing row is returned and created is false.
	LikeElement(ctx context.Context, key models.ElementKey) (elem *models.LikedElement, created bool, err error)

	// UnlikeElement reports whether a row was deleted.
	UnlikeElement(ctx context.Context, key models.ElementKey) (bool, error)

	// GetLikedElement returns ErrNotFound when the element is not liked.
	GetLikedElement(ctx context.Context, key models.ElementKey) (*models.LikedElement, error)

	// ListLikedElements returns the user's rows, newest first.
	ListLikedElements(ctx context.Context, userID int) ([]models.LikedElement, error)

	// ListDirectlyLikedCareerIDs returns, ascending and without duplicates,
	// the careers the user liked an element of plus the careers on the
	// user's liked list. It feeds the chat prompt, not the feed ranking.
	ListDirectlyLikedCareerIDs(ctx context.Context, userID int) ([]int, error)
}

// QuizStore holds quiz answer sets.
type QuizStore interface {
	// SaveQuizResult stores a new answer set and marks the user as having
	// completed the quiz.
	SaveQuizResult(ctx context.Context, userID int, answers models.QuizAnswers) (*models.QuizResult, error)

	// ListQuizResults returns the user's sets, newest first.
	ListQuizResults(ctx context.Context, userID int) ([]models.QuizResult, error)

	// LatestQuizResult returns ErrNotFound when the user has none.
	LatestQuizResult(ctx context.Context, userID int) (*models.QuizResult, error)
}

// ConversationStore holds chat transcripts.
type ConversationStore interface {
	CreateConversation(ctx context.Context, userID int, messages []models.Message) (*models.Conversation, error)
	AppendMessages(ctx context.Context, conversationID int64, messages ...models.Message) (*models.Conversation, error)
	GetConversation(ctx context.Context, id int64) (*models.Conversation, error)

	// ListConversations returns the user's conversations, most recently
	// updated first.
	ListConversations(ctx context.Context, userID int) ([]models.Conversation, error)
}

// Store is the complete persistence surface.
type Store interface {
	UserStore
	PreferenceStore
	QuizStore
	ConversationStore

	Ping(ctx context.Context) error
	Close() error
}

// mergeCareerIDs returns the union of element career ids and ids, sorted.
func mergeCareerIDs(elements []models.LikedElement, ids []int) []int {
	out := make([]int, 0, len(elements)+len(ids))
	for i := range elements {
		out = append(out, elements[i].CareerID)
	}
	out = append(out, ids...)
	slices.Sort(out)
	return slices.Compact(out)
}

// sortElementsNewestFirst orders by timestamp, then id, both descending.
func sortElementsNewestFirst(elements []models.LikedElement) {
	sort.SliceStable(elements, func(i, j int) bool {
		if !elements[i].Timestamp.Equal(elements[j].Timestamp) {
			return elements[i].Timestamp.After(elements[j].Timestamp)
		}
		return elements[i].ID > elements[j].ID
	})
}

func sortQuizNewestFirst(results []models.QuizResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if !results[i].Timestamp.Equal(results[j].Timestamp) {
			return results[i].Timestamp.After(results[j].Timestamp)
		}
		return results[i].ID > results[j].ID
	})
}

func sortConversationsRecentFirst(convs []models.Conversation) {
	sort.SliceStable(convs, func(i, j int) bool {
		if !convs[i].UpdatedAt.Equal(convs[j].UpdatedAt) {
			return convs[i].UpdatedAt.After(convs[j].UpdatedAt)
		}
		return convs[i].ID > convs[j].ID
	})
}

func cloneConversation(c *models.Conversation) *models.Conversation {
	out := *c
	out.Messages = slices.Clone(c.Messages)
	if out.Messages == nil {
		out.Messages = []models.Message{}
	}
	return &out
}

func cloneAnswers(a models.QuizAnswers) models.QuizAnswers {
	out := make(models.QuizAnswers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
