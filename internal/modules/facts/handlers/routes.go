package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all facts routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/facts", func(r chi.Router) {
		r.Get("/random", h.HandleGetRandom)
	})
}
