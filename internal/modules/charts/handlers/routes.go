package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all chart routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/charts", func(r chi.Router) {
		r.Get("/weights.svg", h.HandleGetWeights)
		r.Get("/trend.svg", h.HandleGetTrend)
	})
}
