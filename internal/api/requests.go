// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package api

import (
	"time"

	"github.com/tomtom215/careercanvas/internal/models"
)

// Like actions.
const (
	ActionLike   = "like"
	ActionUnlike = "unlike"
	ActionToggle = "toggle"
)

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64,username"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=254"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User *models.User `json:"user"`

	// Token is only set in JWT mode.
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LikeElementRequest is the body of POST /api/v1/career-elements/like.
// Action defaults to toggle.
type LikeElementRequest struct {
	CareerID     int    `json:"careerId" validate:"required,gt=0"`
	ElementType  string `json:"elementType" validate:"required,elementtype"`
	ElementValue string `json:"elementValue" validate:"required,notblank,max=500"`
	Action       string `json:"action,omitempty"`
}

// LikeElementResponse reports what a like request did.
type LikeElementResponse struct {
	Action  string               `json:"action"`
	Element *models.LikedElement `json:"element,omitempty"`
}

// CheckLikedResponse is returned by check-liked-element.
type CheckLikedResponse struct {
	IsLiked bool `json:"isLiked"`
}

// QuizResultRequest is the body of POST /api/v1/quiz-results.
type QuizResultRequest struct {
	Answers models.QuizAnswers `json:"answers" validate:"required"`
}

// ChatRequest is the body of POST /api/v1/chat.
type ChatRequest struct {
	Message        string       `json:"message" validate:"required,notblank,max=4000"`
	ConversationID int64        `json:"conversationId,omitempty" validate:"gte=0"`
	Context        *ChatContext `json:"context,omitempty"`
}

// ChatContext carries what the user is looking at.
type ChatContext struct {
	CareerContext *models.CareerContext `json:"careerContext,omitempty"`
}

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version,omitempty"`
	Uptime        string `json:"uptime"`
	StoreOK       bool   `json:"storeOk"`
	CatalogSize   int    `json:"catalogSize"`
	AuthMode      string `json:"authMode"`
	ChatLLMActive bool   `json:"chatLlmActive"`
}
