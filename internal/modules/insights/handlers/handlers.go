// Package handlers provides HTTP handlers for the prediction and insights panel.
package handlers

import (
	"net/http"

	"github.com/aristath/coin50/internal/modules/insights"
	"github.com/aristath/coin50/internal/modules/series"
	serieshandlers "github.com/aristath/coin50/internal/modules/series/handlers"
	"github.com/aristath/coin50/internal/utils"
	"github.com/rs/zerolog"
)

// Handler handles insights HTTP requests
type Handler struct {
	generator *series.Generator
	service   *insights.Service
	log       zerolog.Logger
}

// NewHandler creates a new insights handler
func NewHandler(generator *series.Generator, service *insights.Service, log zerolog.Logger) *Handler {
	return &Handler{
		generator: generator,
		service:   service,
		log:       log.With().Str("handler", "insights").Logger(),
	}
}

// InsightsResponse pairs a series with the insights computed over it
type InsightsResponse struct {
	Series   serieshandlers.SeriesResponse `json:"series"`
	Insights insights.Insights             `json:"insights"`
}

// HandleGetInsights handles GET /api/insights
func (h *Handler) HandleGetInsights(w http.ResponseWriter, r *http.Request) {
	s := h.generator.Generate()

	utils.WriteResponse(w, r, http.StatusOK, utils.NewEnvelope(InsightsResponse{
		Series:   serieshandlers.NewSeriesResponse(s),
		Insights: h.service.Compute(s),
	}), h.log)
}
