// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package main

import (
	"context"
	"testing"

	"github.com/tomtom215/careercanvas/internal/auth"
	"github.com/tomtom215/careercanvas/internal/models"
	"github.com/tomtom215/careercanvas/internal/store"
)

func TestBootstrapAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("no username is a no-op", func(t *testing.T) {
		st := store.NewMemoryStore()
		if err := bootstrapAdmin(ctx, st, "", ""); err != nil {
			t.Fatalf("bootstrapAdmin: %v", err)
		}
		if _, err := st.GetUserByUsername(ctx, "admin"); err == nil {
			t.Error("no admin should be created")
		}
	})

	t.Run("creates admin once", func(t *testing.T) {
		st := store.NewMemoryStore()
		for i := 0; i < 2; i++ {
			if err := bootstrapAdmin(ctx, st, "admin", "long-admin-password"); err != nil {
				t.Fatalf("bootstrapAdmin #%d: %v", i+1, err)
			}
		}

		u, err := st.GetUserByUsername(ctx, "admin")
		if err != nil {
			t.Fatalf("GetUserByUsername: %v", err)
		}
		if u.Role != models.RoleAdmin {
			t.Errorf("role = %q, want admin", u.Role)
		}
		if !auth.CheckPassword(u.PasswordHash, "long-admin-password") {
			t.Error("stored hash does not match the configured password")
		}
	})

	t.Run("leaves existing account alone", func(t *testing.T) {
		st := store.NewMemoryStore()
		if _, err := st.CreateUser(ctx, models.NewUser{Username: "admin", PasswordHash: "x", Role: models.RoleUser}); err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
		if err := bootstrapAdmin(ctx, st, "admin", "long-admin-password"); err != nil {
			t.Fatalf("bootstrapAdmin: %v", err)
		}
		u, _ := st.GetUserByUsername(ctx, "admin")
		if u.PasswordHash != "x" || u.Role != models.RoleUser {
			t.Errorf("existing account was modified: %+v", u)
		}
	})
}
