// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/careercanvas/internal/auth"
	"github.com/tomtom215/careercanvas/internal/authz"
	"github.com/tomtom215/careercanvas/internal/middleware"
)

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	authn         *auth.Middleware
	authz         *authz.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil chiMW uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, authn *auth.Middleware, authzMW *authz.Middleware, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		authn:         authn,
		authz:         authzMW,
		chiMiddleware: chiMW,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.AccessLog)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, ErrCodeBadRequest, "Method not allowed")
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)
		r.Use(h.perfMon.Middleware)
		r.Use(router.authn.Authenticate)

		// ========================
		// Health Endpoints
		// ========================
		r.Route("/health", func(r chi.Router) {
			r.Get("/", h.Health)
			r.Get("/live", h.HealthLive)
			r.Get("/performance", h.Performance)
		})

		// ========================
		// Authentication Endpoints
		// ========================
		r.Route("/auth", func(r chi.Router) {
			r.With(router.chiMiddleware.RateLimitAuth()).Post("/register", h.Register)
			r.With(router.chiMiddleware.RateLimitAuth()).Post("/login", h.Login)
			r.Post("/logout", h.Logout)
			r.Get("/user", h.CurrentUser)
		})

		// ========================
		// Core API Endpoints
		// ========================
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			write := router.chiMiddleware.RateLimitWrite()

			r.Get("/careers", h.ListCareers)
			r.Get("/careers/{id}", h.GetCareer)
			r.Get("/careers/{id}/related", h.RelatedCareers)
			r.Get("/careers/{id}/career-path", h.CareerPath)

			// Caller-scoped writes
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Use(write)
				r.Post("/career-elements/like", h.LikeElement)
				r.Post("/quiz-results", h.SaveQuizResult)
				r.Post("/chat", h.Chat)
			})

			r.Get("/users/me", h.CurrentUser)

			// Owner-scoped resources
			r.Route("/users/{id}", func(r chi.Router) {
				r.Use(router.authz.RequireOwner("id"))
				r.Get("/personalized-feed", h.PersonalizedFeed)
				r.Get("/check-liked-element", h.CheckLikedElement)
				r.Get("/liked-elements", h.LikedElements)
				r.Get("/saved-careers", h.SavedCareers)
				r.Get("/liked-careers", h.LikedCareers)
				r.With(write).Put("/saved-careers/{careerId}", h.AddSavedCareer)
				r.With(write).Delete("/saved-careers/{careerId}", h.RemoveSavedCareer)
				r.With(write).Put("/liked-careers/{careerId}", h.AddLikedCareer)
				r.With(write).Delete("/liked-careers/{careerId}", h.RemoveLikedCareer)
			})
			r.With(router.authz.RequireOwner("id")).Get("/quiz-results/{id}", h.QuizResults)
			r.With(router.authz.RequireOwner("id")).Get("/conversations/{id}", h.Conversations)
		})
	})

	return r
}
