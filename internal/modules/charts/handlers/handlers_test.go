package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aristath/coin50/internal/modules/charts"
	"github.com/aristath/coin50/internal/modules/index"
	"github.com/aristath/coin50/internal/modules/series"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *chi.Mux {
	t.Helper()
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	gen, err := series.NewGenerator(series.DefaultConfig(), logger)
	require.NoError(t, err)

	handler := NewHandler(charts.NewService(logger), index.NewService(logger), gen, 10, logger)
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func TestRegisterRoutes(t *testing.T) {
	assert.NotPanics(t, func() {
		setupRouter(t)
	}, "RegisterRoutes should not panic")
}

func TestHandleGetWeights(t *testing.T) {
	router := setupRouter(t)

	for _, theme := range []string{"", "light", "dark"} {
		req := httptest.NewRequest("GET", "/charts/weights.svg?theme="+theme, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, theme)
		assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(w.Body.String(), "<svg"))
	}
}

func TestHandleGetWeights_BadN(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest("GET", "/charts/weights.svg?n=x", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest("GET", "/charts/weights.svg?n=0", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandleGetTrend(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest("GET", "/charts/trend.svg?theme=dark", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "SMA(20)")
}

func TestHandleGetTrend_NoOverlay(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest("GET", "/charts/trend.svg?sma=0", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "SMA(")

	req = httptest.NewRequest("GET", "/charts/trend.svg?sma=-1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
