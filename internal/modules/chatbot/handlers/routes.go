package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all chatbot routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/chat", func(r chi.Router) {
		r.Get("/status", h.HandleGetStatus)
		r.Post("/ask", h.HandleAsk)
		r.Post("/complete", h.HandleComplete)
	})
}
