// Package handlers provides HTTP handlers for the chatbot tab.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aristath/coin50/internal/modules/chatbot"
	"github.com/aristath/coin50/internal/utils"
	"github.com/rs/zerolog"
)

// Handler handles chatbot HTTP requests
type Handler struct {
	service *chatbot.Service
	log     zerolog.Logger
}

// NewHandler creates a new chatbot handler
func NewHandler(service *chatbot.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "chatbot").Logger(),
	}
}

// AskRequest represents a Q&A request
type AskRequest struct {
	Question string `json:"question"`
}

// CompleteRequest represents a completion request
type CompleteRequest struct {
	Prompt string `json:"prompt"`
}

// HandleAsk handles POST /api/chat/ask
func (h *Handler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, r, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	answer, err := h.service.Ask(r.Context(), req.Question)
	if errors.Is(err, chatbot.ErrEmptyQuestion) {
		utils.WriteError(w, r, http.StatusBadRequest, err.Error(), h.log)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Q&A failed")
		utils.WriteError(w, r, http.StatusInternalServerError, "Q&A failed", h.log)
		return
	}

	utils.WriteResponse(w, r, http.StatusOK, utils.NewEnvelope(answer), h.log)
}

// HandleComplete handles POST /api/chat/complete.
// Upstream failures are reported in the body with an error_kind, not as 5xx.
func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	var req CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, r, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	completion, err := h.service.Complete(r.Context(), req.Prompt)
	if errors.Is(err, chatbot.ErrEmptyQuestion) {
		utils.WriteError(w, r, http.StatusBadRequest, err.Error(), h.log)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Completion failed")
		utils.WriteError(w, r, http.StatusInternalServerError, "completion failed", h.log)
		return
	}

	utils.WriteResponse(w, r, http.StatusOK, utils.NewEnvelope(completion), h.log)
}

// HandleGetStatus handles GET /api/chat/status
func (h *Handler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteResponse(w, r, http.StatusOK, utils.NewEnvelope(map[string]interface{}{
		"qa_enabled":         true,
		"completion_enabled": h.service.CompletionEnabled(),
	}), h.log)
}
