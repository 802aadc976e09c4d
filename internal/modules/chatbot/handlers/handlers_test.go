package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aristath/coin50/internal/clients/wikipedia"
	"github.com/aristath/coin50/internal/modules/chatbot"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	answer string
	err    error
}

func (s stubCompleter) Complete(context.Context, string) (string, error) {
	return s.answer, s.err
}

func newWikiServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/page/summary/Bitcoin" {
			w.Write([]byte(`{"title":"Bitcoin","extract":"Bitcoin is a cryptocurrency."}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)
	return server
}

func setupRouter(t *testing.T, completer chatbot.Completer) *chi.Mux {
	t.Helper()
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	wiki := wikipedia.NewClient(newWikiServer(t).URL, time.Second, logger)

	handler := NewHandler(chatbot.NewService(wiki, completer, logger), logger)
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func post(router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	bodyBytes, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterRoutes(t *testing.T) {
	assert.NotPanics(t, func() {
		setupRouter(t, nil)
	}, "RegisterRoutes should not panic")
}

func TestHandleAsk(t *testing.T) {
	router := setupRouter(t, nil)

	w := post(router, "/chat/ask", AskRequest{Question: "Bitcoin"})
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data chatbot.Answer `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "Bitcoin is a cryptocurrency.", response.Data.Answer)
}

func TestHandleAsk_NotFound(t *testing.T) {
	router := setupRouter(t, nil)

	w := post(router, "/chat/ask", AskRequest{Question: "No Such Page"})
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data chatbot.Answer `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, wikipedia.NotFoundMessage, response.Data.Answer)
}

func TestHandleAsk_BadRequests(t *testing.T) {
	router := setupRouter(t, nil)

	w := post(router, "/chat/ask", AskRequest{Question: "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest("POST", "/chat/ask", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleComplete(t *testing.T) {
	router := setupRouter(t, stubCompleter{answer: "Ethereum runs smart contracts."})

	w := post(router, "/chat/complete", CompleteRequest{Prompt: "What is Ethereum?"})
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data chatbot.Completion `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "Ethereum runs smart contracts.", response.Data.Answer)
	assert.Equal(t, chatbot.ErrorKindNone, response.Data.ErrorKind)
}

func TestHandleComplete_QuotaIsNotServerError(t *testing.T) {
	router := setupRouter(t, stubCompleter{err: errors.New("insufficient_quota")})

	w := post(router, "/chat/complete", CompleteRequest{Prompt: "hi"})
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data chatbot.Completion `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, chatbot.ErrorKindQuota, response.Data.ErrorKind)
	assert.Equal(t, chatbot.QuotaExceededMessage, response.Data.Answer)
}

func TestHandleComplete_EmptyPrompt(t *testing.T) {
	router := setupRouter(t, stubCompleter{})

	w := post(router, "/chat/complete", CompleteRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetStatus(t *testing.T) {
	router := setupRouter(t, nil)

	req := httptest.NewRequest("GET", "/chat/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Data map[string]bool `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Data["qa_enabled"])
	assert.False(t, response.Data["completion_enabled"])
}
