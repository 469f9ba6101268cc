package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Register : маршруты /strava относительно префикса API
func (h *StravaHandler) Register(r chi.Router) {
	r.Route("/strava", func(r chi.Router) {
		r.Get("/config", h.GetConfig)

		r.Route("/auth", func(r chi.Router) {
			r.Get("/url", h.GetAuthorizationURL)
			r.Post("/exchange", h.Exchange)
			r.Post("/refresh", h.Refresh)
			r.Get("/check", h.Check)
			r.Post("/logout", h.Logout)
		})

		r.Get("/athlete", h.GetAthlete)
		r.Get("/activities", h.GetActivities)
		r.Get("/activities/{activityId}", h.GetActivity)
	})
}

// Register : маршруты /training, middlewares применяются только к ним
func (h *TrainingHandler) Register(r chi.Router, middlewares ...func(http.Handler) http.Handler) {
	r.Route("/training", func(r chi.Router) {
		r.Use(middlewares...)
		r.Post("/generate", h.Generate)
		r.Post("/mock", h.Mock)
	})
}
