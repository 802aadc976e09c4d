package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all index routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/index", func(r chi.Router) {
		r.Get("/constituents", h.HandleGetConstituents)
		r.Get("/top", h.HandleGetTop)
		r.Get("/methodology", h.HandleGetMethodology)
	})
}
