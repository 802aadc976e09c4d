package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemHandlers_HandleSystemStatus(t *testing.T) {
	handlers := NewSystemHandlers(nil, zerolog.Nop())

	req := httptest.NewRequest("GET", "/api/system/status", nil)
	w := httptest.NewRecorder()
	handlers.HandleSystemStatus(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data SystemStatusResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "healthy", response.Data.Status)
	assert.GreaterOrEqual(t, response.Data.UptimeSeconds, 0.0)
	assert.GreaterOrEqual(t, response.Data.MemoryPercent, 0.0)
	assert.Greater(t, response.Data.Goroutines, 0)
}
