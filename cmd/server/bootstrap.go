// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/careercanvas/internal/auth"
	"github.com/tomtom215/careercanvas/internal/logging"
	"github.com/tomtom215/careercanvas/internal/models"
	"github.com/tomtom215/careercanvas/internal/store"
)

// adminUsers is the part of the store bootstrapAdmin needs.
type adminUsers interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, u models.NewUser) (*models.User, error)
}

// bootstrapAdmin creates the configured admin account if it does not exist.
// An existing account is left untouched, password included.
func bootstrapAdmin(ctx context.Context, users adminUsers, username, password string) error {
	if username == "" {
		return nil
	}

	existing, err := users.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		if existing.Role != models.RoleAdmin {
			logging.Warn().Str("username", username).Msg("Configured admin username belongs to a non-admin account")
		}
		return nil
	case !errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("look up admin %q: %w", username, err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	u, err := users.CreateUser(ctx, models.NewUser{
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("create admin %q: %w", username, err)
	}
	logging.Info().Int("user_id", u.ID).Str("username", username).Msg("Admin account created")
	return nil
}
