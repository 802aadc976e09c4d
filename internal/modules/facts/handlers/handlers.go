// Package handlers provides HTTP handlers for fun facts.
package handlers

import (
	"net/http"

	"github.com/aristath/coin50/internal/modules/facts"
	"github.com/aristath/coin50/internal/utils"
	"github.com/rs/zerolog"
)

// Handler handles fun fact HTTP requests
type Handler struct {
	service *facts.Service
	log     zerolog.Logger
}

// NewHandler creates a new facts handler
func NewHandler(service *facts.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "facts").Logger(),
	}
}

// HandleGetRandom handles GET /api/facts/random
func (h *Handler) HandleGetRandom(w http.ResponseWriter, r *http.Request) {
	fact, ok := h.service.Random()
	if !ok {
		utils.WriteError(w, r, http.StatusNotFound, "no facts available", h.log)
		return
	}
	utils.WriteResponse(w, r, http.StatusOK, utils.NewEnvelope(fact), h.log)
}
