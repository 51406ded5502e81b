// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/careercanvas/internal/metrics"
	"github.com/tomtom215/careercanvas/internal/models"
	"github.com/tomtom215/careercanvas/internal/store"
)

var (
	// ErrInvalidCredentials is returned by Login for an unknown user or a
	// wrong password. The two cases are indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUsernameTaken is returned by Register for an existing username.
	ErrUsernameTaken = errors.New("username already exists")
)

// Users is the part of the store the account service needs.
type Users interface {
	CreateUser(ctx context.Context, u models.NewUser) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Registration is the input to Register.
type Registration struct {
	Username string
	Password string
	Name     string
	Email    string
}

// Service creates accounts and checks passwords.
type Service struct {
	users Users

	// dummyHash is compared against when the user does not exist so that
	// unknown usernames take as long as wrong passwords.
	dummyHash string
}

// NewService creates an account service.
func NewService(users Users) (*Service, error) {
	dummy, err := HashPassword("careercanvas-dummy-password")
	if err != nil {
		return nil, err
	}
	return &Service{users: users, dummyHash: dummy}, nil
}

// Register creates a user with a hashed password and the user role.
func (s *Service) Register(ctx context.Context, reg Registration) (*models.User, error) {
	hash, err := HashPassword(reg.Password)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("register", "invalid").Inc()
		return nil, err
	}
	u, err := s.users.CreateUser(ctx, models.NewUser{
		Username:     reg.Username,
		PasswordHash: hash,
		Name:         reg.Name,
		Email:        reg.Email,
		Role:         models.RoleUser,
	})
	if errors.Is(err, store.ErrConflict) {
		metrics.AuthAttempts.WithLabelValues("register", "conflict").Inc()
		return nil, fmt.Errorf("%w: %q", ErrUsernameTaken, reg.Username)
	}
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("register", "error").Inc()
		return nil, err
	}
	metrics.AuthAttempts.WithLabelValues("register", "success").Inc()
	return u, nil
}

// Login returns the user when password matches.
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		CheckPassword(s.dummyHash, password)
		metrics.AuthAttempts.WithLabelValues("login", "failure").Inc()
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("login", "error").Inc()
		return nil, err
	}
	if !CheckPassword(u.PasswordHash, password) {
		metrics.AuthAttempts.WithLabelValues("login", "failure").Inc()
		return nil, ErrInvalidCredentials
	}
	metrics.AuthAttempts.WithLabelValues("login", "success").Inc()
	return u, nil
}
