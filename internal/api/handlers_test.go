// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/careercanvas/internal/auth"
	"github.com/tomtom215/careercanvas/internal/authz"
	"github.com/tomtom215/careercanvas/internal/catalog"
	"github.com/tomtom215/careercanvas/internal/chat"
	"github.com/tomtom215/careercanvas/internal/logging"
	"github.com/tomtom215/careercanvas/internal/models"
	"github.com/tomtom215/careercanvas/internal/recommend"
	"github.com/tomtom215/careercanvas/internal/store"
)

const testJWTSecret = "test-secret-that-is-at-least-32-characters"

func testCareers() []models.Career {
	return []models.Career{
		{ID: 1, Title: "Software Engineer", Field: "Technology", SalaryMin: 80, SalaryMax: 150,
			Skills: []string{"Python", "SQL"}, Responsibilities: []string{"Write code", "Review designs"}, WorkSetting: "Remote"},
		{ID: 2, Title: "Data Analyst", Field: "Technology", SalaryMin: 85, SalaryMax: 160,
			Skills: []string{"Python", "Excel"}, Responsibilities: []string{"Build dashboards"}},
		{ID: 3, Title: "Registered Nurse", Field: "Healthcare", SalaryMin: 50, SalaryMax: 70,
			Skills: []string{"Patient care"}, Responsibilities: []string{"Care for patients"}},
		{ID: 4, Title: "Engineering Manager", Field: "Technology", SalaryMin: 150, SalaryMax: 220,
			Skills: []string{"Python", "Leadership"}, Responsibilities: []string{"Lead teams"}},
	}
}

type testServer struct {
	handler http.Handler
	store   *store.MemoryStore
	jwt     *auth.JWTManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := logging.NewTestLogger(io.Discard)

	cat, err := catalog.New(testCareers())
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	st := store.NewMemoryStore()
	assembler, err := recommend.NewAssembler(recommend.DefaultConfig(), cat, st, nil, logger)
	if err != nil {
		t.Fatalf("NewAssembler: %v", err)
	}
	accounts, err := auth.NewService(st)
	if err != nil {
		t.Fatalf("auth.NewService: %v", err)
	}
	jwtManager, err := auth.NewJWTManager(testJWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}
	authn := auth.NewJWTAuthenticator(jwtManager, auth.CookieConfig{})
	enforcer, err := authz.NewEnforcer(authz.Config{})
	if err != nil {
		t.Fatalf("NewEnforcer: %v", err)
	}

	h := NewHandler(Dependencies{
		Catalog:   cat,
		Assembler: assembler,
		Store:     st,
		Accounts:  accounts,
		Authn:     authn,
		Enforcer:  enforcer,
		Chat:      chat.NewService(chat.DefaultConfig(), nil, st, st, logger),
		Version:   "test",
	})
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	router := NewRouter(h, auth.NewMiddleware(authn), authz.NewMiddleware(enforcer, WriteError), NewChiMiddleware(cfg))

	return &testServer{handler: router.SetupChi(), store: st, jwt: jwtManager}
}

// createUser adds a user directly to the store and returns a bearer token.
func (s *testServer) createUser(t *testing.T, username, role string) (*models.User, string) {
	t.Helper()
	u, err := s.store.CreateUser(context.Background(), models.NewUser{
		Username:     username,
		PasswordHash: "unused",
		Role:         role,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	token, _, err := s.jwt.GenerateToken(auth.PrincipalFor(u))
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return u, token
}

func (s *testServer) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
}

// decode checks the status and unmarshals data into dst (when non-nil).
func decode(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, dst interface{}) *envelope {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, wantStatus, rec.Body.String())
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v; body: %s", err, rec.Body.String())
	}
	if dst != nil {
		if err := json.Unmarshal(env.Data, dst); err != nil {
			t.Fatalf("decode data: %v; data: %s", err, env.Data)
		}
	}
	return &env
}

type scored struct {
	ID    int `json:"id"`
	Score int `json:"score"`
}

func TestListCareers(t *testing.T) {
	s := newTestServer(t)

	var careers []scored
	decode(t, s.do(t, http.MethodGet, "/api/v1/careers", "", ""), http.StatusOK, &careers)

	if len(careers) != 4 {
		t.Fatalf("got %d careers, want 4", len(careers))
	}
	for i, c := range careers {
		if c.ID != i+1 {
			t.Errorf("careers[%d].ID = %d, want catalog order", i, c.ID)
		}
	}
}

func TestGetCareer(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   string
	}{
		{"found", "/api/v1/careers/2", http.StatusOK, ""},
		{"unknown", "/api/v1/careers/99", http.StatusNotFound, ErrCodeNotFound},
		{"non numeric", "/api/v1/careers/abc", http.StatusBadRequest, ErrCodeBadRequest},
		{"zero", "/api/v1/careers/0", http.StatusBadRequest, ErrCodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := decode(t, s.do(t, http.MethodGet, tt.path, "", ""), tt.wantStatus, nil)
			if tt.wantCode != "" && (env.Error == nil || env.Error.Code != tt.wantCode) {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestRelatedCareers(t *testing.T) {
	s := newTestServer(t)

	var related []scored
	decode(t, s.do(t, http.MethodGet, "/api/v1/careers/1/related", "", ""), http.StatusOK, &related)
	if len(related) == 0 || len(related) > 3 {
		t.Fatalf("got %d related careers, want 1..3", len(related))
	}
	if related[0].ID != 2 || related[0].Score != 150 {
		t.Errorf("top related = %+v, want career 2 with score 150", related[0])
	}
	for _, c := range related {
		if c.ID == 1 {
			t.Error("related careers must not include the career itself")
		}
	}

	decode(t, s.do(t, http.MethodGet, "/api/v1/careers/1/related?limit=1", "", ""), http.StatusOK, &related)
	if len(related) != 1 {
		t.Errorf("limit=1 returned %d careers", len(related))
	}

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/api/v1/careers/1/related?limit=-1", http.StatusBadRequest},
		{"/api/v1/careers/1/related?limit=many", http.StatusBadRequest},
		{"/api/v1/careers/99/related", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := s.do(t, http.MethodGet, tt.path, "", "")
		if rec.Code != tt.wantStatus {
			t.Errorf("GET %s = %d, want %d", tt.path, rec.Code, tt.wantStatus)
		}
	}
}

func TestCareerPath(t *testing.T) {
	s := newTestServer(t)

	var path struct {
		Career      scored   `json:"career"`
		Advancement []scored `json:"advancement"`
		Previous    []scored `json:"previous"`
	}
	decode(t, s.do(t, http.MethodGet, "/api/v1/careers/1/career-path", "", ""), http.StatusOK, &path)

	if path.Career.ID != 1 {
		t.Errorf("career = %d, want 1", path.Career.ID)
	}
	found := false
	for _, c := range path.Advancement {
		if c.ID == 4 {
			found = true
		}
	}
	if !found {
		t.Errorf("advancement %v should include career 4", path.Advancement)
	}

	if rec := s.do(t, http.MethodGet, "/api/v1/careers/99/career-path", "", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown career = %d, want 404", rec.Code)
	}
}

func TestPersonalizedFeed_Authorization(t *testing.T) {
	s := newTestServer(t)
	alice, aliceToken := s.createUser(t, "alice", models.RoleUser)
	_, bobToken := s.createUser(t, "bob", models.RoleUser)
	_, adminToken := s.createUser(t, "root", models.RoleAdmin)

	path := "/api/v1/users/" + itoa(alice.ID) + "/personalized-feed"
	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"owner", aliceToken, http.StatusOK},
		{"other user", bobToken, http.StatusForbidden},
		{"admin", adminToken, http.StatusOK},
		{"garbage token", "not-a-token", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodGet, path, "", tt.token)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestPersonalizedFeed_NoPreferencesKeepsCatalogOrder(t *testing.T) {
	s := newTestServer(t)
	alice, token := s.createUser(t, "alice", models.RoleUser)

	var feed []scored
	decode(t, s.do(t, http.MethodGet, "/api/v1/users/"+itoa(alice.ID)+"/personalized-feed", "", token), http.StatusOK, &feed)
	for i, c := range feed {
		if c.ID != i+1 {
			t.Fatalf("feed = %v, want catalog order", feed)
		}
	}
}

func TestLikeElement_Flow(t *testing.T) {
	s := newTestServer(t)
	alice, token := s.createUser(t, "alice", models.RoleUser)
	userPath := "/api/v1/users/" + itoa(alice.ID)
	body := `{"careerId":3,"elementType":"skill","elementValue":"Patient care"}`
	check := userPath + "/check-liked-element?careerId=3&elementType=skill&elementValue=Patient+care"

	// Toggle on.
	var liked LikeElementResponse
	decode(t, s.do(t, http.MethodPost, "/api/v1/career-elements/like", body, token), http.StatusCreated, &liked)
	if liked.Action != "liked" || liked.Element == nil || liked.Element.CareerID != 3 {
		t.Fatalf("like response = %+v", liked)
	}

	var isLiked CheckLikedResponse
	decode(t, s.do(t, http.MethodGet, check, "", token), http.StatusOK, &isLiked)
	if !isLiked.IsLiked {
		t.Error("element should be liked")
	}

	// The directly liked career now leads the feed.
	var feed []scored
	decode(t, s.do(t, http.MethodGet, userPath+"/personalized-feed", "", token), http.StatusOK, &feed)
	if len(feed) == 0 || feed[0].ID != 3 {
		t.Errorf("feed = %v, want career 3 first", feed)
	}

	// Toggle off.
	var unliked LikeElementResponse
	decode(t, s.do(t, http.MethodPost, "/api/v1/career-elements/like", body, token), http.StatusOK, &unliked)
	if unliked.Action != "unliked" {
		t.Errorf("second toggle action = %q, want unliked", unliked.Action)
	}
	decode(t, s.do(t, http.MethodGet, check, "", token), http.StatusOK, &isLiked)
	if isLiked.IsLiked {
		t.Error("element should no longer be liked")
	}
}

func TestLikeElement_Idempotent(t *testing.T) {
	s := newTestServer(t)
	alice, token := s.createUser(t, "alice", models.RoleUser)
	body := `{"careerId":1,"elementType":"technicalSkill","elementValue":"SQL","action":"like"}`

	for i := 0; i < 2; i++ {
		decode(t, s.do(t, http.MethodPost, "/api/v1/career-elements/like", body, token), http.StatusCreated, nil)
	}

	var elements []models.LikedElement
	decode(t, s.do(t, http.MethodGet, "/api/v1/users/"+itoa(alice.ID)+"/liked-elements", "", token), http.StatusOK, &elements)
	if len(elements) != 1 {
		t.Errorf("got %d liked elements after two likes, want 1", len(elements))
	}

	decode(t, s.do(t, http.MethodGet, "/api/v1/users/"+itoa(alice.ID)+"/liked-elements?type=field", "", token), http.StatusOK, &elements)
	if len(elements) != 0 {
		t.Errorf("type filter returned %d elements, want 0", len(elements))
	}
	if rec := s.do(t, http.MethodGet, "/api/v1/users/"+itoa(alice.ID)+"/liked-elements?type=hobby", "", token); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown type filter = %d, want 400", rec.Code)
	}
}

func TestLikeElement_Invalid(t *testing.T) {
	s := newTestServer(t)
	_, token := s.createUser(t, "alice", models.RoleUser)

	tests := []struct {
		name       string
		body       string
		token      string
		wantStatus int
		wantCode   string
	}{
		{"anonymous", `{"careerId":1,"elementType":"skill","elementValue":"SQL"}`, "", http.StatusUnauthorized, ErrCodeUnauthorized},
		{"invalid action", `{"careerId":1,"elementType":"skill","elementValue":"SQL","action":"love"}`, token, http.StatusBadRequest, ErrCodeBadRequest},
		{"unknown element type", `{"careerId":1,"elementType":"hobby","elementValue":"SQL"}`, token, http.StatusBadRequest, ErrCodeValidationFailed},
		{"blank value", `{"careerId":1,"elementType":"skill","elementValue":"   "}`, token, http.StatusBadRequest, ErrCodeValidationFailed},
		{"missing career", `{"elementType":"skill","elementValue":"SQL"}`, token, http.StatusBadRequest, ErrCodeValidationFailed},
		{"unknown career", `{"careerId":99,"elementType":"skill","elementValue":"SQL"}`, token, http.StatusNotFound, ErrCodeNotFound},
		{"malformed json", `{"careerId":`, token, http.StatusBadRequest, ErrCodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := decode(t, s.do(t, http.MethodPost, "/api/v1/career-elements/like", tt.body, tt.token), tt.wantStatus, nil)
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestCheckLikedElement_BadParams(t *testing.T) {
	s := newTestServer(t)
	alice, token := s.createUser(t, "alice", models.RoleUser)
	base := "/api/v1/users/" + itoa(alice.ID) + "/check-liked-element"

	for _, query := range []string{
		"",
		"?careerId=1&elementType=skill",
		"?careerId=x&elementType=skill&elementValue=SQL",
		"?careerId=1&elementType=hobby&elementValue=SQL",
	} {
		if rec := s.do(t, http.MethodGet, base+query, "", token); rec.Code != http.StatusBadRequest {
			t.Errorf("query %q = %d, want 400", query, rec.Code)
		}
	}
}

func TestCareerLists(t *testing.T) {
	s := newTestServer(t)
	alice, token := s.createUser(t, "alice", models.RoleUser)
	saved := "/api/v1/users/" + itoa(alice.ID) + "/saved-careers"

	var careers []scored
	decode(t, s.do(t, http.MethodPut, saved+"/2", "", token), http.StatusOK, &careers)
	decode(t, s.do(t, http.MethodPut, saved+"/2", "", token), http.StatusOK, &careers)
	if len(careers) != 1 || careers[0].ID != 2 {
		t.Errorf("saved careers after two PUTs = %v, want [2]", careers)
	}

	decode(t, s.do(t, http.MethodGet, saved, "", token), http.StatusOK, &careers)
	if len(careers) != 1 {
		t.Errorf("GET saved = %v", careers)
	}

	decode(t, s.do(t, http.MethodDelete, saved+"/2", "", token), http.StatusOK, &careers)
	if len(careers) != 0 {
		t.Errorf("saved careers after DELETE = %v, want empty", careers)
	}

	if rec := s.do(t, http.MethodPut, saved+"/99", "", token); rec.Code != http.StatusNotFound {
		t.Errorf("unknown career = %d, want 404", rec.Code)
	}
}

func TestLikedCareersWithoutElementsKeepCatalogOrder(t *testing.T) {
	s := newTestServer(t)
	alice, token := s.createUser(t, "alice", models.RoleUser)
	userPath := "/api/v1/users/" + itoa(alice.ID)

	decode(t, s.do(t, http.MethodPut, userPath+"/liked-careers/4", "", token), http.StatusOK, nil)
	decode(t, s.do(t, http.MethodPut, userPath+"/liked-careers/3", "", token), http.StatusOK, nil)

	var feed []scored
	decode(t, s.do(t, http.MethodGet, userPath+"/personalized-feed", "", token), http.StatusOK, &feed)
	got := make([]int, len(feed))
	for i, sc := range feed {
		got[i] = sc.ID
		if sc.Score != 0 {
			t.Errorf("career %d scored %d without liked elements", sc.ID, sc.Score)
		}
	}
	if want := []int{1, 2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("feed = %v, want catalog order %v", got, want)
	}

	// The first liked element switches the feed to ranking.
	like := `{"careerId":3,"elementType":"field","elementValue":"Healthcare","action":"like"}`
	decode(t, s.do(t, http.MethodPost, "/api/v1/career-elements/like", like, token), http.StatusCreated, nil)
	decode(t, s.do(t, http.MethodGet, userPath+"/personalized-feed", "", token), http.StatusOK, &feed)
	if len(feed) == 0 || feed[0].ID != 3 {
		t.Errorf("feed = %v, want career 3 first after liking its field", feed)
	}
}

func TestQuizResults(t *testing.T) {
	s := newTestServer(t)
	alice, aliceToken := s.createUser(t, "alice", models.RoleUser)
	_, bobToken := s.createUser(t, "bob", models.RoleUser)

	var result models.QuizResult
	decode(t, s.do(t, http.MethodPost, "/api/v1/quiz-results", `{"answers":{"1":"a","2":"c"}}`, aliceToken), http.StatusCreated, &result)
	if result.UserID != alice.ID || result.Answers[2] != "c" {
		t.Errorf("saved result = %+v", result)
	}

	env := decode(t, s.do(t, http.MethodPost, "/api/v1/quiz-results", `{"answers":{"16":"a"}}`, aliceToken), http.StatusBadRequest, nil)
	if env.Error == nil || env.Error.Code != ErrCodeValidationFailed {
		t.Errorf("error = %+v, want VALIDATION_ERROR", env.Error)
	}

	var results []models.QuizResult
	decode(t, s.do(t, http.MethodGet, "/api/v1/quiz-results/"+itoa(alice.ID), "", aliceToken), http.StatusOK, &results)
	if len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}

	if rec := s.do(t, http.MethodGet, "/api/v1/quiz-results/"+itoa(alice.ID), "", bobToken); rec.Code != http.StatusForbidden {
		t.Errorf("other user's quiz results = %d, want 403", rec.Code)
	}

	var me models.User
	decode(t, s.do(t, http.MethodGet, "/api/v1/users/me", "", aliceToken), http.StatusOK, &me)
	if !me.QuizCompleted {
		t.Error("user should be marked quizCompleted")
	}
}

func TestChat(t *testing.T) {
	s := newTestServer(t)
	alice, aliceToken := s.createUser(t, "alice", models.RoleUser)
	_, bobToken := s.createUser(t, "bob", models.RoleUser)

	var reply chat.Reply
	decode(t, s.do(t, http.MethodPost, "/api/v1/chat",
		`{"message":"What skills should I learn?","context":{"careerContext":{"id":1,"title":"Software Engineer","field":"Technology"}}}`,
		aliceToken), http.StatusOK, &reply)
	if reply.Response == "" || reply.ConversationID <= 0 {
		t.Fatalf("reply = %+v", reply)
	}

	var next chat.Reply
	body := `{"message":"And the salary?","conversationId":` + itoa64(reply.ConversationID) + `}`
	decode(t, s.do(t, http.MethodPost, "/api/v1/chat", body, aliceToken), http.StatusOK, &next)
	if next.ConversationID != reply.ConversationID {
		t.Errorf("conversation id changed: %d -> %d", reply.ConversationID, next.ConversationID)
	}

	if rec := s.do(t, http.MethodPost, "/api/v1/chat", body, bobToken); rec.Code != http.StatusForbidden {
		t.Errorf("other user's conversation = %d, want 403", rec.Code)
	}
	if rec := s.do(t, http.MethodPost, "/api/v1/chat", `{"message":"hi","conversationId":9999}`, aliceToken); rec.Code != http.StatusNotFound {
		t.Errorf("unknown conversation = %d, want 404", rec.Code)
	}
	if rec := s.do(t, http.MethodPost, "/api/v1/chat", `{"message":"  "}`, aliceToken); rec.Code != http.StatusBadRequest {
		t.Errorf("blank message = %d, want 400", rec.Code)
	}

	var conversations []models.Conversation
	decode(t, s.do(t, http.MethodGet, "/api/v1/conversations/"+itoa(alice.ID), "", aliceToken), http.StatusOK, &conversations)
	if len(conversations) != 1 || len(conversations[0].Messages) != 4 {
		t.Errorf("conversations = %+v, want one with 4 messages", conversations)
	}
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)

	var registered AuthResponse
	decode(t, s.do(t, http.MethodPost, "/api/v1/auth/register",
		`{"username":"carol","password":"correct-horse","name":"Carol"}`, ""), http.StatusCreated, &registered)
	if registered.User == nil || registered.User.Username != "carol" || registered.Token == "" {
		t.Fatalf("register response = %+v", registered)
	}
	if strings.Contains(s.do(t, http.MethodGet, "/api/v1/users/me", "", registered.Token).Body.String(), "passwordHash") {
		t.Error("user response must not include the password hash")
	}

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{"duplicate username", "/api/v1/auth/register", `{"username":"carol","password":"another-pass"}`, http.StatusConflict},
		{"short password", "/api/v1/auth/register", `{"username":"dave","password":"short"}`, http.StatusBadRequest},
		{"missing username", "/api/v1/auth/register", `{"password":"long-enough"}`, http.StatusBadRequest},
		{"wrong password", "/api/v1/auth/login", `{"username":"carol","password":"wrong-password"}`, http.StatusUnauthorized},
		{"unknown user", "/api/v1/auth/login", `{"username":"nobody","password":"whatever1"}`, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, tt.path, tt.body, "")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}

	var loggedIn AuthResponse
	decode(t, s.do(t, http.MethodPost, "/api/v1/auth/login", `{"username":"carol","password":"correct-horse"}`, ""), http.StatusOK, &loggedIn)

	var me models.User
	decode(t, s.do(t, http.MethodGet, "/api/v1/auth/user", "", loggedIn.Token), http.StatusOK, &me)
	if me.ID != registered.User.ID {
		t.Errorf("current user = %d, want %d", me.ID, registered.User.ID)
	}

	if rec := s.do(t, http.MethodGet, "/api/v1/auth/user", "", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous current user = %d, want 401", rec.Code)
	}

	rec := s.do(t, http.MethodPost, "/api/v1/auth/logout", "", loggedIn.Token)
	decode(t, rec, http.StatusOK, nil)
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.TokenCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("logout should clear the token cookie")
	}
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	var health HealthResponse
	decode(t, s.do(t, http.MethodGet, "/api/v1/health", "", ""), http.StatusOK, &health)
	if health.Status != "healthy" || !health.StoreOK || health.CatalogSize != 4 {
		t.Errorf("health = %+v", health)
	}
	if health.AuthMode != auth.ModeJWT || health.ChatLLMActive {
		t.Errorf("health = %+v, want jwt mode without LLM", health)
	}

	decode(t, s.do(t, http.MethodGet, "/api/v1/health/live", "", ""), http.StatusOK, nil)
	decode(t, s.do(t, http.MethodGet, "/api/v1/health/performance", "", ""), http.StatusOK, nil)

	rec := s.do(t, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK || !bytes.Contains(rec.Body.Bytes(), []byte("api_requests_total")) {
		t.Errorf("metrics = %d, body missing api_requests_total", rec.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/api/v1/nope", "", "")
	env := decode(t, rec, http.StatusNotFound, nil)
	if env.Success || env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("envelope = %+v", env)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID should be set on every response")
	}
}

func itoa(n int) string { return strconv.Itoa(n) }

func itoa64(n int64) string { return strconv.FormatInt(n, 10) }
