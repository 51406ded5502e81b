// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/careercanvas/internal/auth"
	"github.com/tomtom215/careercanvas/internal/logging"
	"github.com/tomtom215/careercanvas/internal/models"
	"github.com/tomtom215/careercanvas/internal/store"
)

// PersonalizedFeed handles GET /api/v1/users/{id}/personalized-feed
func (h *Handler) PersonalizedFeed(w http.ResponseWriter, r *http.Request) {
	userID, _ := pathID(r, "id")
	feed, err := h.assembler.PersonalizedFeed(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(feed)
}

// LikeElement handles POST /api/v1/career-elements/like for the caller.
//
//   - like: stores the element (idempotent), 201
//   - unlike: removes it if present, 200
//   - toggle (default): unlike when liked, like otherwise
func (h *Handler) LikeElement(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	p := auth.PrincipalFromContext(r.Context())

	var req LikeElementRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	action := req.Action
	if action == "" {
		action = ActionToggle
	}
	if action != ActionLike && action != ActionUnlike && action != ActionToggle {
		rw.BadRequest("Invalid action")
		return
	}
	if _, ok := h.catalog.GetByID(req.CareerID); !ok {
		rw.NotFound("Career not found")
		return
	}
	elementType, _ := models.ParseElementType(req.ElementType)
	key := models.ElementKey{
		UserID:       p.UserID,
		CareerID:     req.CareerID,
		ElementType:  elementType,
		ElementValue: strings.TrimSpace(req.ElementValue),
	}

	ctx := r.Context()
	if action == ActionToggle {
		_, err := h.store.GetLikedElement(ctx, key)
		switch {
		case err == nil:
			action = ActionUnlike
		case errors.Is(err, store.ErrNotFound):
			action = ActionLike
		default:
			respondError(w, r, err)
			return
		}
	}

	if action == ActionUnlike {
		if _, err := h.store.UnlikeElement(ctx, key); err != nil {
			respondError(w, r, err)
			return
		}
		h.assembler.InvalidateSnapshot(ctx, p.UserID)
		rw.Success(LikeElementResponse{Action: "unliked"})
		return
	}

	elem, created, err := h.store.LikeElement(ctx, key)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if created {
		h.assembler.InvalidateSnapshot(ctx, p.UserID)
	}
	logging.Ctx(ctx).Debug().
		Int("career_id", key.CareerID).
		Str("element_type", key.ElementType.String()).
		Bool("created", created).
		Msg("Element liked")
	rw.Created(LikeElementResponse{Action: "liked", Element: elem})
}

// CheckLikedElement handles
// GET /api/v1/users/{id}/check-liked-element?careerId&elementType&elementValue
func (h *Handler) CheckLikedElement(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID, _ := pathID(r, "id")

	q := r.URL.Query()
	rawCareer, rawType, value := q.Get("careerId"), q.Get("elementType"), q.Get("elementValue")
	if rawCareer == "" || rawType == "" || strings.TrimSpace(value) == "" {
		rw.BadRequest("Missing or invalid parameters")
		return
	}
	careerID, err := strconv.Atoi(rawCareer)
	if err != nil || careerID <= 0 {
		rw.BadRequest("Invalid career ID")
		return
	}
	elementType, err := models.ParseElementType(rawType)
	if err != nil {
		rw.BadRequest("Invalid element type")
		return
	}

	_, err = h.store.GetLikedElement(r.Context(), models.ElementKey{
		UserID:       userID,
		CareerID:     careerID,
		ElementType:  elementType,
		ElementValue: strings.TrimSpace(value),
	})
	switch {
	case err == nil:
		rw.Success(CheckLikedResponse{IsLiked: true})
	case errors.Is(err, store.ErrNotFound):
		rw.Success(CheckLikedResponse{IsLiked: false})
	default:
		respondError(w, r, err)
	}
}

// LikedElements handles GET /api/v1/users/{id}/liked-elements?type=T
func (h *Handler) LikedElements(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID, _ := pathID(r, "id")

	var filter models.ElementType
	if raw := r.URL.Query().Get("type"); raw != "" {
		t, err := models.ParseElementType(raw)
		if err != nil {
			rw.BadRequest("Invalid element type")
			return
		}
		filter = t
	}

	elements, err := h.store.ListLikedElements(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	out := make([]models.LikedElement, 0, len(elements))
	for _, e := range elements {
		if filter == 0 || e.ElementType == filter {
			out = append(out, e)
		}
	}
	rw.Success(out)
}

// SavedCareers handles GET /api/v1/users/{id}/saved-careers
func (h *Handler) SavedCareers(w http.ResponseWriter, r *http.Request) {
	h.listCareers(w, r, models.SavedCareers)
}

// LikedCareers handles GET /api/v1/users/{id}/liked-careers
func (h *Handler) LikedCareers(w http.ResponseWriter, r *http.Request) {
	h.listCareers(w, r, models.LikedCareers)
}

// AddSavedCareer handles PUT /api/v1/users/{id}/saved-careers/{careerId}
func (h *Handler) AddSavedCareer(w http.ResponseWriter, r *http.Request) {
	h.updateCareerList(w, r, models.SavedCareers, true)
}

// RemoveSavedCareer handles DELETE /api/v1/users/{id}/saved-careers/{careerId}
func (h *Handler) RemoveSavedCareer(w http.ResponseWriter, r *http.Request) {
	h.updateCareerList(w, r, models.SavedCareers, false)
}

// AddLikedCareer handles PUT /api/v1/users/{id}/liked-careers/{careerId}
func (h *Handler) AddLikedCareer(w http.ResponseWriter, r *http.Request) {
	h.updateCareerList(w, r, models.LikedCareers, true)
}

// RemoveLikedCareer handles DELETE /api/v1/users/{id}/liked-careers/{careerId}
func (h *Handler) RemoveLikedCareer(w http.ResponseWriter, r *http.Request) {
	h.updateCareerList(w, r, models.LikedCareers, false)
}

func (h *Handler) listCareers(w http.ResponseWriter, r *http.Request, list models.CareerList) {
	userID, _ := pathID(r, "id")
	user, err := h.store.GetUser(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(h.careersFor(user.List(list)))
}

func (h *Handler) updateCareerList(w http.ResponseWriter, r *http.Request, list models.CareerList, add bool) {
	rw := NewResponseWriter(w, r)
	userID, _ := pathID(r, "id")
	careerID, ok := pathID(r, "careerId")
	if !ok {
		rw.BadRequest("Invalid career ID")
		return
	}
	if _, found := h.catalog.GetByID(careerID); !found {
		rw.NotFound("Career not found")
		return
	}

	// The feed ranks liked elements only, so list changes leave the
	// snapshot alone.
	user, _, err := h.store.UpdateCareerList(r.Context(), userID, list, careerID, add)
	if err != nil {
		respondError(w, r, err)
		return
	}
	rw.Success(h.careersFor(user.List(list)))
}

// careersFor resolves ids to catalog records, skipping ids the catalog no
// longer has.
func (h *Handler) careersFor(ids []int) []*models.Career {
	out := make([]*models.Career, 0, len(ids))
	for _, id := range ids {
		if c, ok := h.catalog.GetByID(id); ok {
			out = append(out, c)
		}
	}
	return out
}

