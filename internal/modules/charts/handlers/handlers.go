// Package handlers serves the dashboard charts as SVG images.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aristath/coin50/internal/modules/charts"
	"github.com/aristath/coin50/internal/modules/display"
	"github.com/aristath/coin50/internal/modules/index"
	"github.com/aristath/coin50/internal/modules/series"
	"github.com/rs/zerolog"
)

const contentTypeSVG = "image/svg+xml"

// Handler handles chart HTTP requests
type Handler struct {
	service   *charts.Service
	index     *index.Service
	generator *series.Generator
	topN      int
	log       zerolog.Logger
}

// NewHandler creates a new charts handler
func NewHandler(
	service *charts.Service,
	indexService *index.Service,
	generator *series.Generator,
	topN int,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		service:   service,
		index:     indexService,
		generator: generator,
		topN:      topN,
		log:       log.With().Str("handler", "charts").Logger(),
	}
}

// HandleGetWeights handles GET /api/charts/weights.svg?theme=&n=
func (h *Handler) HandleGetWeights(w http.ResponseWriter, r *http.Request) {
	n := h.topN
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "n must be an integer", http.StatusBadRequest)
			return
		}
		n = parsed
	}

	theme := display.ParseTheme(r.URL.Query().Get("theme"))
	svg, err := h.service.WeightsBarChart(h.index.TopN(n), theme)
	h.writeSVG(w, svg, err)
}

// HandleGetTrend handles GET /api/charts/trend.svg?theme=&sma=
func (h *Handler) HandleGetTrend(w http.ResponseWriter, r *http.Request) {
	sma := charts.DefaultSMAPeriod
	if raw := r.URL.Query().Get("sma"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "sma must be a non-negative integer", http.StatusBadRequest)
			return
		}
		sma = parsed
	}

	theme := display.ParseTheme(r.URL.Query().Get("theme"))
	svg, err := h.service.TrendLineChart(h.generator.Generate(), sma, theme)
	h.writeSVG(w, svg, err)
}

func (h *Handler) writeSVG(w http.ResponseWriter, svg []byte, err error) {
	if errors.Is(err, charts.ErrNoData) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to render chart")
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeSVG)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(svg); err != nil {
		h.log.Debug().Err(err).Msg("Failed to write chart")
	}
}
