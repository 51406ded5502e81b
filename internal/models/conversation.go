// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package models

import "time"

// Message roles.
const (
	RoleUserMessage      = "user"
	RoleAssistantMessage = "assistant"
)

// Message is one chat turn.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is an ordered chat history owned by one user.
type Conversation struct {
	ID        int64     `json:"id"`
	UserID    int       `json:"userId"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CareerContext narrows a chat to the career the user is viewing.
type CareerContext struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Field string `json:"field"`
}
