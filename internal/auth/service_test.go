// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/careercanvas/internal/models"
	"github.com/tomtom215/careercanvas/internal/store"
)

func TestServiceRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, err := NewService(store.NewMemoryStore())
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	u, err := svc.Register(ctx, Registration{Username: "alice", Password: "s3cret-pass", Name: "Alice"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if u.Role != models.RoleUser {
		t.Errorf("Role = %q, want user", u.Role)
	}
	if u.PasswordHash == "s3cret-pass" {
		t.Error("password stored in clear text")
	}

	if _, err := svc.Register(ctx, Registration{Username: "alice", Password: "another-pass"}); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("Register(duplicate) error = %v, want ErrUsernameTaken", err)
	}
	if _, err := svc.Register(ctx, Registration{Username: "bob", Password: "short"}); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("Register(short password) error = %v, want ErrPasswordTooShort", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"correct", "alice", "s3cret-pass", nil},
		{"wrong password", "alice", "nope-nope", ErrInvalidCredentials},
		{"unknown user", "mallory", "s3cret-pass", ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Login(ctx, tt.username, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got.ID != u.ID {
				t.Errorf("Login() id = %d, want %d", got.ID, u.ID)
			}
		})
	}
}
