// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package api

import (
	"net/http"

	"github.com/tomtom215/careercanvas/internal/auth"
	"github.com/tomtom215/careercanvas/internal/authz"
	"github.com/tomtom215/careercanvas/internal/chat"
	"github.com/tomtom215/careercanvas/internal/models"
)

// Chat handles POST /api/v1/chat. A missing conversationId starts a new
// conversation.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	p := auth.PrincipalFromContext(r.Context())

	var req ChatRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var career *models.CareerContext
	if req.Context != nil {
		career = req.Context.CareerContext
	}

	reply, err := h.chat.Send(r.Context(), chat.Request{
		UserID:         p.UserID,
		Message:        req.Message,
		ConversationID: req.ConversationID,
		Career:         career,
		CanAccess: func(ownerID int) (bool, error) {
			return h.enforcer.CanAccessUser(p, ownerID, authz.ActionWrite)
		},
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(reply)
}

// Conversations handles GET /api/v1/conversations/{id}
func (h *Handler) Conversations(w http.ResponseWriter, r *http.Request) {
	userID, _ := pathID(r, "id")
	conversations, err := h.chat.Conversations(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(conversations)
}
