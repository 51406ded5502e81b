// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package authz

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/careercanvas/internal/auth"
)

func plainResponder(w http.ResponseWriter, _ *http.Request, status int, code, _ string) {
	w.Header().Set("X-Error-Code", code)
	w.WriteHeader(status)
}

func TestRequireOwner(t *testing.T) {
	e := setupEnforcer(t, Config{})
	mw := NewMiddleware(e, plainResponder)

	r := chi.NewRouter()
	r.With(mw.RequireOwner("id")).Get("/api/v1/users/{id}/saved-careers", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name      string
		principal *auth.Principal
		path      string
		want      int
		wantCode  string
	}{
		{"anonymous", nil, "/api/v1/users/5/saved-careers", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"owner", &auth.Principal{UserID: 5, Role: "user"}, "/api/v1/users/5/saved-careers", http.StatusOK, ""},
		{"other user", &auth.Principal{UserID: 4, Role: "user"}, "/api/v1/users/5/saved-careers", http.StatusForbidden, "FORBIDDEN"},
		{"admin", &auth.Principal{UserID: 1, Role: "admin"}, "/api/v1/users/5/saved-careers", http.StatusOK, ""},
		{"bad id", &auth.Principal{UserID: 5, Role: "user"}, "/api/v1/users/abc/saved-careers", http.StatusBadRequest, "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.principal != nil {
				req = req.WithContext(auth.ContextWithPrincipal(req.Context(), tt.principal))
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if got := rec.Header().Get("X-Error-Code"); got != tt.wantCode {
				t.Errorf("error code = %q, want %q", got, tt.wantCode)
			}
		})
	}
}
