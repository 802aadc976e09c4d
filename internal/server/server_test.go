package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aristath/coin50/internal/config"
	"github.com/aristath/coin50/internal/di"
	"github.com/aristath/coin50/internal/modules/chatbot"
	"github.com/aristath/coin50/internal/modules/quiz"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	wiki := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/page/summary/Bitcoin" {
			w.Write([]byte(`{"title":"Bitcoin","extract":"Bitcoin is the first decentralized cryptocurrency."}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(wiki.Close)

	cfg := &config.Config{
		Port:      8080,
		Wikipedia: config.WikipediaConfig{BaseURL: wiki.URL, Timeout: time.Second},
		LLM:       config.LLMConfig{Model: "gpt-4o-mini", RPM: 30, Burst: 2},
		Series: config.SeriesConfig{
			Start:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			Periods: 100,
			Seed:    3,
		},
		TopN: 10,
	}

	log := zerolog.New(nil).Level(zerolog.Disabled)
	container, err := di.Wire(cfg, log)
	require.NoError(t, err)

	srv, err := New(Config{Log: log, Port: cfg.Port, DevMode: true, TopN: cfg.TopN, Container: container})
	require.NoError(t, err)
	return srv
}

func get(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := get(t, newTestServer(t), "/health")

	require.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "healthy", response["status"])
	assert.Equal(t, "coin50", response["service"])
}

func TestDashboard_Overview(t *testing.T) {
	w := get(t, newTestServer(t), "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "From Code to Coin")
	assert.Contains(t, body, "Your Gateway to Understanding the Coinbase 50 Index")
	assert.Contains(t, body, "Prediction and Insights")
	assert.Contains(t, body, "Stellar Lumen")
	assert.Contains(t, body, "50.30%")
	assert.Contains(t, body, "Index Methodology")
	assert.Contains(t, body, ContactURL)
	assert.Contains(t, body, "Made with ❤️ for Graduation Project | 2025 — From Code to Coin")
	assert.Contains(t, body, `data-theme="light"`)
	assert.Contains(t, body, "<svg", "charts are inlined")
	assert.NotContains(t, body, `class="success"`, "no answer without a question")
}

func TestDashboard_DarkTheme(t *testing.T) {
	w := get(t, newTestServer(t), "/?theme=dark&tab=charts")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `data-theme="dark"`)
	assert.Contains(t, body, "0E1117")
	assert.Contains(t, body, `<section class="panel" id="charts" >`)
}

func TestDashboard_UnknownThemeAndTabFallBack(t *testing.T) {
	w := get(t, newTestServer(t), "/?theme=purple&tab=nope")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `data-theme="light"`)
	assert.Contains(t, body, `<section class="panel" id="overview" >`)
}

func TestDashboard_WikipediaQuestion(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/?tab=chatbot&q=Bitcoin")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bitcoin is the first decentralized cryptocurrency.")

	w = get(t, srv, "/?tab=chatbot&q="+url.QueryEscape("Unknown thing"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sorry, I couldn&#39;t find anything.")
}

func TestDashboard_CompletionDisabled(t *testing.T) {
	w := get(t, newTestServer(t), "/?tab=chatbot&prompt=hello")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "The AI assistant is not configured.")
	assert.Contains(t, body, chatbot.InvalidKeyMessage)
}

func TestDashboard_Quiz(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/?tab=chatbot&quiz="+url.QueryEscape("21 Million"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), quiz.CorrectMessage)

	w = get(t, srv, "/?tab=chatbot&quiz=Unlimited")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), quiz.IncorrectMessage)
}

func TestStaticCSS(t *testing.T) {
	w := get(t, newTestServer(t), "/static/app.css")

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/css"))
	assert.Contains(t, w.Body.String(), ".coin-grid")
}

func TestAPIRoutesRegistered(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{
		"/api/index/constituents",
		"/api/index/top?n=3",
		"/api/index/methodology",
		"/api/series/mock",
		"/api/insights",
		"/api/charts/weights.svg",
		"/api/charts/trend.svg",
		"/api/chat/status",
		"/api/quiz",
		"/api/facts/random",
		"/api/system/status",
	} {
		w := get(t, srv, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestParseTab(t *testing.T) {
	assert.Equal(t, TabOverview, ParseTab(""))
	assert.Equal(t, TabCharts, ParseTab("charts"))
	assert.Equal(t, TabInsights, ParseTab(" Insights "))
	assert.Equal(t, TabOverview, ParseTab("settings"))
}
