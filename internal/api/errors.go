// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/careercanvas/internal/auth"
	"github.com/tomtom215/careercanvas/internal/chat"
	"github.com/tomtom215/careercanvas/internal/logging"
	"github.com/tomtom215/careercanvas/internal/models"
	"github.com/tomtom215/careercanvas/internal/recommend"
	"github.com/tomtom215/careercanvas/internal/store"
)

// errorMapping maps a sentinel to the response it produces.
type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// errorMappings is checked in order with errors.Is. The first match wins.
var errorMappings = []errorMapping{
	{recommend.ErrNotFound, http.StatusNotFound, ErrCodeNotFound, "Career not found"},
	{recommend.ErrInvalidInput, http.StatusBadRequest, ErrCodeBadRequest, "Invalid request"},
	{recommend.ErrUnavailable, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Recommendation data is temporarily unavailable"},
	{chat.ErrConversationNotFound, http.StatusNotFound, ErrCodeNotFound, "Conversation not found"},
	{chat.ErrForbidden, http.StatusForbidden, ErrCodeForbidden, "Access denied"},
	{chat.ErrEmptyMessage, http.StatusBadRequest, ErrCodeBadRequest, "Message must not be empty"},
	{auth.ErrInvalidCredentials, http.StatusUnauthorized, ErrCodeUnauthorized, "Invalid username or password"},
	{auth.ErrUsernameTaken, http.StatusConflict, ErrCodeConflict, "Username already exists"},
	{auth.ErrPasswordTooShort, http.StatusBadRequest, ErrCodeBadRequest, auth.ErrPasswordTooShort.Error()},
	{models.ErrInvalidElement, http.StatusBadRequest, ErrCodeValidationFailed, "Invalid liked element"},
	{models.ErrUnknownElementType, http.StatusBadRequest, ErrCodeValidationFailed, "Unknown element type"},
	{store.ErrNotFound, http.StatusNotFound, ErrCodeNotFound, "Not found"},
	{store.ErrConflict, http.StatusConflict, ErrCodeConflict, "Already exists"},
}

// respondError writes the response for err. Unknown errors are logged and
// reported as 500 without their text.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	rw := NewResponseWriter(w, r)
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.status >= http.StatusInternalServerError {
				logging.Ctx(r.Context()).Warn().Err(err).Msg("Request failed")
			}
			rw.Error(m.status, m.code, m.message)
			return
		}
	}
	logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Unhandled request error")
	rw.InternalError("Internal server error")
}
