package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aristath/coin50/internal/modules/facts"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutes(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	handler := NewHandler(facts.NewService(logger), logger)

	assert.NotPanics(t, func() {
		handler.RegisterRoutes(chi.NewRouter())
	}, "RegisterRoutes should not panic")
}

func TestHandleGetRandom(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	service := facts.NewService(logger)
	handler := NewHandler(service, logger)

	req := httptest.NewRequest("GET", "/api/facts/random", nil)
	w := httptest.NewRecorder()
	handler.HandleGetRandom(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data facts.Fact `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Contains(t, service.All(), response.Data)
}

func TestHandleGetRandom_Empty(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	handler := NewHandler(facts.NewServiceWithFacts(nil, logger), logger)

	req := httptest.NewRequest("GET", "/api/facts/random", nil)
	w := httptest.NewRecorder()
	handler.HandleGetRandom(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
