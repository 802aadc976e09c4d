// Package handlers provides HTTP handlers for the mock index series.
package handlers

import (
	"net/http"

	"github.com/aristath/coin50/internal/modules/charts"
	"github.com/aristath/coin50/internal/modules/series"
	"github.com/aristath/coin50/internal/utils"
	"github.com/rs/zerolog"
)

// Handler handles series HTTP requests
type Handler struct {
	generator *series.Generator
	log       zerolog.Logger
}

// NewHandler creates a new series handler
func NewHandler(generator *series.Generator, log zerolog.Logger) *Handler {
	return &Handler{
		generator: generator,
		log:       log.With().Str("handler", "series").Logger(),
	}
}

// SeriesResponse is the API form of a generated series
type SeriesResponse struct {
	RenderID string                  `json:"render_id"`
	Mock     bool                    `json:"mock"`
	Points   []charts.ChartDataPoint `json:"points"`
}

// NewSeriesResponse converts a series to its API form
func NewSeriesResponse(s series.Series) SeriesResponse {
	return SeriesResponse{
		RenderID: s.RenderID.String(),
		Mock:     true,
		Points:   charts.Points(s),
	}
}

// HandleGetMock handles GET /api/series/mock
func (h *Handler) HandleGetMock(w http.ResponseWriter, r *http.Request) {
	s := h.generator.Generate()
	utils.WriteResponse(w, r, http.StatusOK, utils.NewEnvelope(NewSeriesResponse(s)), h.log)
}
