package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aristath/coin50/internal/modules/charts"
	"github.com/aristath/coin50/internal/modules/series"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	gen, err := series.NewGenerator(series.DefaultConfig(), logger)
	require.NoError(t, err)
	return NewHandler(gen, logger)
}

func TestRegisterRoutes(t *testing.T) {
	handler := newHandler(t)
	router := chi.NewRouter()

	assert.NotPanics(t, func() {
		handler.RegisterRoutes(router)
	}, "RegisterRoutes should not panic")
}

func TestHandleGetMock(t *testing.T) {
	router := chi.NewRouter()
	newHandler(t).RegisterRoutes(router)

	req := httptest.NewRequest("GET", "/series/mock", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data SeriesResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

	assert.True(t, response.Data.Mock)
	assert.NotEmpty(t, response.Data.RenderID)
	require.Len(t, response.Data.Points, 100)
	assert.Equal(t, "2023-01-01", response.Data.Points[0].Time)
	assert.Equal(t, "2023-04-10", response.Data.Points[99].Time)
}

func TestHandleGetMock_FreshSeriesPerRequest(t *testing.T) {
	router := chi.NewRouter()
	newHandler(t).RegisterRoutes(router)

	fetch := func() []charts.ChartDataPoint {
		req := httptest.NewRequest("GET", "/series/mock", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var response struct {
			Data SeriesResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		return response.Data.Points
	}

	assert.NotEqual(t, fetch(), fetch())
}
