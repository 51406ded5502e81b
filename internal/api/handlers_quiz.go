// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package api

import (
	"net/http"

	"github.com/tomtom215/careercanvas/internal/auth"
)

// SaveQuizResult handles POST /api/v1/quiz-results for the caller.
func (h *Handler) SaveQuizResult(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	p := auth.PrincipalFromContext(r.Context())

	var req QuizResultRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := req.Answers.Validate(); err != nil {
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed, "Invalid quiz answers",
			map[string]string{"answers": err.Error()})
		return
	}

	result, err := h.store.SaveQuizResult(r.Context(), p.UserID, req.Answers)
	if err != nil {
		respondError(w, r, err)
		return
	}
	rw.Created(result)
}

// QuizResults handles GET /api/v1/quiz-results/{id}
func (h *Handler) QuizResults(w http.ResponseWriter, r *http.Request) {
	userID, _ := pathID(r, "id")
	results, err := h.store.ListQuizResults(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(results)
}
