package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all series routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/series", func(r chi.Router) {
		r.Get("/mock", h.HandleGetMock)
	})
}
