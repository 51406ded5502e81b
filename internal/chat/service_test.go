// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package chat

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/careercanvas/internal/cache"
	"github.com/tomtom215/careercanvas/internal/logging"
	"github.com/tomtom215/careercanvas/internal/models"
	"github.com/tomtom215/careercanvas/internal/store"
)

// fakeCompleter records the turns it is given.
type fakeCompleter struct {
	mu    sync.Mutex
	reply string
	err   error
	calls [][]Turn
}

func (f *fakeCompleter) Complete(_ context.Context, turns []Turn) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, turns)
	return f.reply, f.err
}

func (f *fakeCompleter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.RatePerMinute = 600
	cfg.Burst = 100
	return cfg
}

func newTestService(t *testing.T, cfg Config, completer Completer) (*Service, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return NewService(cfg, completer, st, st, logging.NewTestLogger(io.Discard)), st
}

func createUser(t *testing.T, st *store.MemoryStore, name string) *models.User {
	t.Helper()
	u, err := st.CreateUser(context.Background(), models.NewUser{Username: name, PasswordHash: "x"})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	return u
}

func TestSend_FallbackWithoutCompleter(t *testing.T) {
	svc, st := newTestService(t, testConfig(), nil)
	u := createUser(t, st, "amy")

	reply, err := svc.Send(context.Background(), Request{UserID: u.ID, Message: "What does a developer salary look like?"})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if reply.Source != "fallback" {
		t.Errorf("Source = %q, want fallback", reply.Source)
	}
	if !strings.Contains(reply.Response, "software developer salaries") {
		t.Errorf("Response = %q, want salary fallback", reply.Response)
	}

	conv, err := st.GetConversation(context.Background(), reply.ConversationID)
	if err != nil {
		t.Fatalf("GetConversation() error = %v", err)
	}
	if len(conv.Messages) != 2 {
		t.Fatalf("len(Messages) = %d, want 2", len(conv.Messages))
	}
	if conv.Messages[0].Role != models.RoleUserMessage || conv.Messages[1].Role != models.RoleAssistantMessage {
		t.Errorf("roles = %q, %q", conv.Messages[0].Role, conv.Messages[1].Role)
	}
	if conv.Messages[0].ID == "" || conv.Messages[0].ID == conv.Messages[1].ID {
		t.Error("messages should carry distinct ids")
	}
}

func TestSend_UsesModelWithContext(t *testing.T) {
	fc := &fakeCompleter{reply: "Try data engineering."}
	svc, st := newTestService(t, testConfig(), fc)
	u := createUser(t, st, "amy")
	ctx := context.Background()

	if _, err := st.SaveQuizResult(ctx, u.ID, models.QuizAnswers{1: "b", 2: "a"}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := st.LikeElement(ctx, models.ElementKey{UserID: u.ID, CareerID: 4, ElementType: models.ElementSkill, ElementValue: "SQL"}); err != nil {
		t.Fatal(err)
	}

	reply, err := svc.Send(ctx, Request{
		UserID:  u.ID,
		Message: "  What next?  ",
		Career:  &models.CareerContext{ID: 4, Title: "Data Analyst", Field: "Technology"},
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if reply.Source != "llm" || reply.Response != "Try data engineering." {
		t.Errorf("reply = %+v", reply)
	}

	turns := fc.calls[0]
	if len(turns) != 2 {
		t.Fatalf("len(turns) = %d, want 2", len(turns))
	}
	for _, want := range []string{"Remote Work", "Analytical Thinking", "these IDs: 4.", "Data Analyst"} {
		if !strings.Contains(turns[0].Content, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
	if turns[1] != (Turn{RoleUser, "What next?"}) {
		t.Errorf("last turn = %+v", turns[1])
	}
}

func TestSend_ContinuesConversation(t *testing.T) {
	fc := &fakeCompleter{reply: "ok"}
	svc, st := newTestService(t, testConfig(), fc)
	u := createUser(t, st, "amy")
	ctx := context.Background()

	first, err := svc.Send(ctx, Request{UserID: u.ID, Message: "one"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Send(ctx, Request{UserID: u.ID, Message: "two", ConversationID: first.ConversationID})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if second.ConversationID != first.ConversationID {
		t.Errorf("ConversationID = %d, want %d", second.ConversationID, first.ConversationID)
	}

	// system + one + ok + two
	if got := len(fc.calls[1]); got != 4 {
		t.Errorf("second call turns = %d, want 4", got)
	}

	convs, err := svc.Conversations(ctx, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(convs) != 1 || len(convs[0].Messages) != 4 {
		t.Errorf("conversations = %+v, want one with 4 messages", convs)
	}
}

func TestSend_Errors(t *testing.T) {
	svc, st := newTestService(t, testConfig(), nil)
	owner := createUser(t, st, "amy")
	other := createUser(t, st, "bob")
	ctx := context.Background()

	conv, err := svc.Send(ctx, Request{UserID: owner.ID, Message: "hi"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"empty message", Request{UserID: owner.ID, Message: "   "}, ErrEmptyMessage},
		{"unknown conversation", Request{UserID: owner.ID, Message: "hi", ConversationID: 999}, ErrConversationNotFound},
		{"other user", Request{UserID: other.ID, Message: "hi", ConversationID: conv.ConversationID}, ErrForbidden},
		{
			"access check denies",
			Request{UserID: other.ID, Message: "hi", ConversationID: conv.ConversationID,
				CanAccess: func(int) (bool, error) { return false, nil }},
			ErrForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Send(ctx, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Send() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("access check allows", func(t *testing.T) {
		_, err := svc.Send(ctx, Request{
			UserID: other.ID, Message: "hi", ConversationID: conv.ConversationID,
			CanAccess: func(ownerID int) (bool, error) { return ownerID == owner.ID, nil },
		})
		if err != nil {
			t.Errorf("Send() error = %v", err)
		}
	})
}

func TestSend_ModelErrorFallsBack(t *testing.T) {
	fc := &fakeCompleter{err: errors.New("boom")}
	svc, st := newTestService(t, testConfig(), fc)
	u := createUser(t, st, "amy")

	reply, err := svc.Send(context.Background(), Request{UserID: u.ID, Message: "which degree should I get"})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if reply.Source != "fallback" {
		t.Errorf("Source = %q, want fallback", reply.Source)
	}
	if !strings.Contains(reply.Response, "education pathways") {
		t.Errorf("Response = %q, want education fallback", reply.Response)
	}
}

func TestSend_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RatePerMinute = 0.001
	cfg.Burst = 1
	fc := &fakeCompleter{reply: "ok"}
	svc, st := newTestService(t, cfg, fc)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	u := createUser(t, st, "amy")
	other := createUser(t, st, "bob")
	ctx := context.Background()

	first, _ := svc.Send(ctx, Request{UserID: u.ID, Message: "hello"})
	second, _ := svc.Send(ctx, Request{UserID: u.ID, Message: "hello"})
	third, _ := svc.Send(ctx, Request{UserID: other.ID, Message: "hello"})

	if first.Source != "llm" || second.Source != "rate_limited" || third.Source != "llm" {
		t.Errorf("sources = %q, %q, %q; want llm, rate_limited, llm", first.Source, second.Source, third.Source)
	}
	if fc.callCount() != 2 {
		t.Errorf("model calls = %d, want 2", fc.callCount())
	}
}

func TestLimiterJanitor_DropsIdleBuckets(t *testing.T) {
	svc, _ := newTestService(t, testConfig(), &fakeCompleter{reply: "ok"})
	svc.limiters = cache.NewTTL[int, *rate.Limiter](time.Millisecond)
	svc.sweepEvery = 5 * time.Millisecond

	svc.limiter(1)
	svc.limiter(2)

	janitor := svc.LimiterJanitor()
	if janitor.String() != "chat-limiter-janitor" {
		t.Errorf("String() = %q", janitor.String())
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- janitor.Serve(ctx) }()

	deadline := time.After(2 * time.Second)
	for svc.limiters.Len() != 0 {
		select {
		case <-deadline:
			t.Fatalf("%d idle buckets never swept", svc.limiters.Len())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() error = %v, want context.Canceled", err)
	}
}

func TestBreakerClient_Opens(t *testing.T) {
	fc := &fakeCompleter{err: errors.New("unavailable")}
	b := NewBreakerClient(fc, BreakerConfig{
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Hour,
		MinRequests:  2,
		FailureRatio: 0.5,
	})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := b.Complete(ctx, nil); err == nil {
			t.Fatal("expected failure")
		}
	}
	if b.State() != gobreaker.StateOpen {
		t.Fatalf("State() = %v, want open", b.State())
	}
	_, err := b.Complete(ctx, nil)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Complete() error = %v, want ErrOpenState", err)
	}
	if fc.callCount() != 2 {
		t.Errorf("calls = %d, want 2", fc.callCount())
	}
}

func TestConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if cfg.LLMEnabled() {
		t.Error("LLMEnabled() without an API key should be false")
	}
	if NewCompleter(cfg) != nil {
		t.Error("NewCompleter() without an API key should be nil")
	}

	cfg.APIKey = "sk-test"
	if !cfg.LLMEnabled() {
		t.Error("LLMEnabled() with an API key should be true")
	}
	if _, ok := NewCompleter(cfg).(*BreakerClient); !ok {
		t.Error("NewCompleter() should wrap the client in a breaker")
	}

	bad := DefaultConfig()
	bad.Temperature = 3
	if err := bad.Validate(); err == nil {
		t.Error("Validate() should reject temperature 3")
	}
}
