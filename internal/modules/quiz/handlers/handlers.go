// Package handlers provides HTTP handlers for the quiz.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aristath/coin50/internal/modules/quiz"
	"github.com/aristath/coin50/internal/utils"
	"github.com/rs/zerolog"
)

// Handler handles quiz HTTP requests
type Handler struct {
	service *quiz.Service
	log     zerolog.Logger
}

// NewHandler creates a new quiz handler
func NewHandler(service *quiz.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "quiz").Logger(),
	}
}

// AnswerRequest represents a quiz submission
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// HandleGetQuestion handles GET /api/quiz. The correct answer is withheld.
func (h *Handler) HandleGetQuestion(w http.ResponseWriter, r *http.Request) {
	utils.WriteResponse(w, r, http.StatusOK, utils.NewEnvelope(h.service.Question()), h.log)
}

// HandleSubmitAnswer handles POST /api/quiz/answer
func (h *Handler) HandleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, r, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	result, err := h.service.Grade(req.Answer)
	if errors.Is(err, quiz.ErrNoAnswer) {
		utils.WriteError(w, r, http.StatusBadRequest, err.Error(), h.log)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to grade answer")
		utils.WriteError(w, r, http.StatusInternalServerError, "failed to grade answer", h.log)
		return
	}

	utils.WriteResponse(w, r, http.StatusOK, utils.NewEnvelope(result), h.log)
}
