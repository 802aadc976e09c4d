// Package handlers provides HTTP handlers for the constituent table.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/aristath/coin50/internal/modules/index"
	"github.com/aristath/coin50/internal/utils"
	"github.com/rs/zerolog"
)

// Handler handles index HTTP requests
type Handler struct {
	service *index.Service
	topN    int
	log     zerolog.Logger
}

// NewHandler creates a new index handler. topN is the default for /top.
func NewHandler(service *index.Service, topN int, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		topN:    topN,
		log:     log.With().Str("handler", "index").Logger(),
	}
}

// ConstituentDTO is the API form of a constituent
type ConstituentDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Weight        float64 `json:"weight"`
	WeightPercent string  `json:"weight_percent"`
	Logo          string  `json:"logo"`
}

// ToDTOs converts constituents to their API form
func ToDTOs(constituents []index.Constituent) []ConstituentDTO {
	out := make([]ConstituentDTO, len(constituents))
	for i, c := range constituents {
		out[i] = ConstituentDTO{
			ID:            c.ID,
			Name:          c.Name,
			Weight:        c.Weight.InexactFloat64(),
			WeightPercent: c.WeightPercent(),
			Logo:          c.Logo,
		}
	}
	return out
}

// HandleGetConstituents handles GET /api/index/constituents
func (h *Handler) HandleGetConstituents(w http.ResponseWriter, r *http.Request) {
	constituents := h.service.All()

	h.write(w, r, http.StatusOK, utils.NewEnvelope(map[string]interface{}{
		"name":         index.Name,
		"constituents": ToDTOs(constituents),
		"count":        len(constituents),
		"weight_sum":   h.service.WeightSum().StringFixed(2),
	}))
}

// HandleGetTop handles GET /api/index/top?n=
func (h *Handler) HandleGetTop(w http.ResponseWriter, r *http.Request) {
	n := h.topN
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.WriteError(w, r, http.StatusBadRequest, "n must be an integer", h.log)
			return
		}
		n = parsed
	}

	top := h.service.TopN(n)
	h.write(w, r, http.StatusOK, utils.NewEnvelope(map[string]interface{}{
		"n":            n,
		"constituents": ToDTOs(top),
	}))
}

// HandleGetMethodology handles GET /api/index/methodology
func (h *Handler) HandleGetMethodology(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, http.StatusOK, utils.NewEnvelope(map[string]interface{}{
		"paragraphs": h.service.Methodology(),
	}))
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	utils.WriteResponse(w, r, status, data, h.log)
}
