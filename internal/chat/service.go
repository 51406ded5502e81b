// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/careercanvas/internal/cache"
	"github.com/tomtom215/careercanvas/internal/metrics"
	"github.com/tomtom215/careercanvas/internal/models"
	"github.com/tomtom215/careercanvas/internal/store"
)

var (
	// ErrConversationNotFound is returned for an unknown conversation id.
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrForbidden is returned when the caller may not use a conversation.
	ErrForbidden = errors.New("conversation belongs to another user")

	// ErrEmptyMessage is returned for a blank message.
	ErrEmptyMessage = errors.New("message must not be empty")
)

// limiterIdleTTL bounds how long an idle user's bucket is remembered.
const limiterIdleTTL = time.Hour

// limiterSweepInterval is how often idle buckets are dropped.
const limiterSweepInterval = 10 * time.Minute

// Conversations is the conversation part of the store.
type Conversations interface {
	CreateConversation(ctx context.Context, userID int, messages []models.Message) (*models.Conversation, error)
	AppendMessages(ctx context.Context, conversationID int64, messages ...models.Message) (*models.Conversation, error)
	GetConversation(ctx context.Context, id int64) (*models.Conversation, error)
	ListConversations(ctx context.Context, userID int) ([]models.Conversation, error)
}

// Profiles supplies what the prompt says about the user.
type Profiles interface {
	LatestQuizResult(ctx context.Context, userID int) (*models.QuizResult, error)
	ListDirectlyLikedCareerIDs(ctx context.Context, userID int) ([]int, error)
}

// Request is one user message.
type Request struct {
	UserID  int
	Message string

	// ConversationID continues an existing conversation; zero starts one.
	ConversationID int64

	Career *models.CareerContext

	// CanAccess decides whether the caller may use a conversation owned by
	// ownerID. Nil means only the owner may.
	CanAccess func(ownerID int) (bool, error)
}

// Reply is the assistant's answer.
type Reply struct {
	Response       string `json:"response"`
	ConversationID int64  `json:"conversationId"`

	// Source is "llm", "fallback" or "rate_limited".
	Source string `json:"-"`
}

// Service runs chat turns and stores the conversation.
type Service struct {
	completer     Completer
	conversations Conversations
	profiles      Profiles
	logger        zerolog.Logger

	ratePerMinute float64
	burst         int

	mu         sync.Mutex
	limiters   *cache.TTL[int, *rate.Limiter]
	sweepEvery time.Duration

	now func() time.Time
}

// NewService creates the service. A nil completer makes every reply a
// fallback reply.
func NewService(cfg Config, completer Completer, conversations Conversations, profiles Profiles, logger zerolog.Logger) *Service {
	return &Service{
		completer:     completer,
		conversations: conversations,
		profiles:      profiles,
		logger:        logger.With().Str("component", "chat").Logger(),
		ratePerMinute: cfg.RatePerMinute,
		burst:         cfg.Burst,
		limiters:      cache.NewTTL[int, *rate.Limiter](limiterIdleTTL),
		sweepEvery:    limiterSweepInterval,
		now:           time.Now,
	}
}

// LimiterJanitor returns the maintenance service that drops the rate
// limit buckets of users who stopped chatting.
func (s *Service) LimiterJanitor() *cache.Janitor {
	return cache.NewJanitor("chat-limiter-janitor", s.limiters, s.sweepEvery)
}

// NewCompleter builds the LLM client chain for cfg, or nil when LLM calls
// are disabled.
func NewCompleter(cfg Config) Completer {
	if !cfg.LLMEnabled() {
		return nil
	}
	return NewBreakerClient(NewOpenAIClient(cfg), cfg.Breaker)
}

// Send answers req.Message and records both messages.
func (s *Service) Send(ctx context.Context, req Request) (*Reply, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	var conv *models.Conversation
	if req.ConversationID != 0 {
		c, err := s.conversations.GetConversation(ctx, req.ConversationID)
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrConversationNotFound, req.ConversationID)
		}
		if err != nil {
			return nil, fmt.Errorf("load conversation: %w", err)
		}
		if err := s.checkAccess(req, c.UserID); err != nil {
			return nil, err
		}
		conv = c
	}

	var history []models.Message
	if conv != nil {
		history = conv.Messages
	}
	system := BuildSystemPrompt(s.promptContext(ctx, req))
	response, source := s.generate(ctx, req.UserID, BuildTurns(system, history, message), message)
	metrics.ChatRequests.WithLabelValues(source).Inc()

	now := s.now().UTC()
	userMsg := models.Message{ID: uuid.NewString(), Role: models.RoleUserMessage, Content: message, Timestamp: now}
	botMsg := models.Message{ID: uuid.NewString(), Role: models.RoleAssistantMessage, Content: response, Timestamp: now}

	var err error
	if conv == nil {
		conv, err = s.conversations.CreateConversation(ctx, req.UserID, []models.Message{userMsg, botMsg})
	} else {
		conv, err = s.conversations.AppendMessages(ctx, conv.ID, userMsg, botMsg)
	}
	if err != nil {
		return nil, fmt.Errorf("save conversation: %w", err)
	}

	return &Reply{Response: response, ConversationID: conv.ID, Source: source}, nil
}

// Conversations lists the conversations of userID.
func (s *Service) Conversations(ctx context.Context, userID int) ([]models.Conversation, error) {
	return s.conversations.ListConversations(ctx, userID)
}

// LLMActive reports whether replies are requested from the model.
func (s *Service) LLMActive() bool {
	return s.completer != nil
}

func (s *Service) checkAccess(req Request, ownerID int) error {
	if req.CanAccess == nil {
		if ownerID != req.UserID {
			return ErrForbidden
		}
		return nil
	}
	ok, err := req.CanAccess(ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

// promptContext gathers quiz answers and likes. Failures only narrow the
// prompt.
func (s *Service) promptContext(ctx context.Context, req Request) PromptContext {
	pc := PromptContext{Career: req.Career}

	quiz, err := s.profiles.LatestQuizResult(ctx, req.UserID)
	switch {
	case err == nil:
		pc.Quiz = quiz
	case !errors.Is(err, store.ErrNotFound):
		s.logger.Warn().Err(err).Int("user_id", req.UserID).Msg("Failed to load quiz result for chat")
	}

	liked, err := s.profiles.ListDirectlyLikedCareerIDs(ctx, req.UserID)
	if err != nil {
		s.logger.Warn().Err(err).Int("user_id", req.UserID).Msg("Failed to load liked careers for chat")
	} else {
		pc.LikedCareerIDs = liked
	}
	return pc
}

func (s *Service) generate(ctx context.Context, userID int, turns []Turn, message string) (string, string) {
	if s.completer == nil {
		return FallbackReply(message), "fallback"
	}
	if !s.limiter(userID).AllowN(s.now(), 1) {
		s.logger.Debug().Int("user_id", userID).Msg("Chat rate limit reached, using fallback")
		return FallbackReply(message), "rate_limited"
	}

	reply, err := s.completer.Complete(ctx, turns)
	if err != nil {
		s.logger.Warn().Err(err).Msg("LLM call failed, using fallback")
		return FallbackReply(message), "fallback"
	}
	return reply, "llm"
}

func (s *Service) limiter(userID int) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.limiters.Get(userID); ok {
		// Touch so the bucket expires an hour after the last message.
		s.limiters.Set(userID, l)
		return l
	}
	l := rate.NewLimiter(rate.Limit(s.ratePerMinute/60), s.burst)
	s.limiters.Set(userID, l)
	return l
}
