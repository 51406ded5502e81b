// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package api

import (
	"net/http"
	"strconv"
)

// ListCareers handles GET /api/v1/careers. The catalog is returned in its
// original order, unranked.
func (h *Handler) ListCareers(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.catalog.ListAll())
}

// GetCareer handles GET /api/v1/careers/{id}
func (h *Handler) GetCareer(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := pathID(r, "id")
	if !ok {
		rw.BadRequest("Invalid career ID")
		return
	}
	career, found := h.catalog.GetByID(id)
	if !found {
		rw.NotFound("Career not found")
		return
	}
	rw.Success(career)
}

// RelatedCareers handles GET /api/v1/careers/{id}/related?limit=N
func (h *Handler) RelatedCareers(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := pathID(r, "id")
	if !ok {
		rw.BadRequest("Invalid career ID")
		return
	}

	limit := h.assembler.DefaultRelatedLimit()
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			rw.BadRequest("limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	related, err := h.assembler.Related(r.Context(), id, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	rw.Success(related)
}

// CareerPath handles GET /api/v1/careers/{id}/career-path
func (h *Handler) CareerPath(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		NewResponseWriter(w, r).BadRequest("Invalid career ID")
		return
	}
	path, err := h.assembler.CareerPath(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(path)
}
