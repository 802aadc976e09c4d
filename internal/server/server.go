// Package server provides the HTTP server and routing for the COIN50 dashboard.
package server

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aristath/coin50/internal/di"
	chartshandlers "github.com/aristath/coin50/internal/modules/charts/handlers"
	chatbothandlers "github.com/aristath/coin50/internal/modules/chatbot/handlers"
	factshandlers "github.com/aristath/coin50/internal/modules/facts/handlers"
	indexhandlers "github.com/aristath/coin50/internal/modules/index/handlers"
	insightshandlers "github.com/aristath/coin50/internal/modules/insights/handlers"
	quizhandlers "github.com/aristath/coin50/internal/modules/quiz/handlers"
	serieshandlers "github.com/aristath/coin50/internal/modules/series/handlers"
	"github.com/aristath/coin50/pkg/embedded"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Config holds server configuration
type Config struct {
	Log       zerolog.Logger
	Port      int
	DevMode   bool
	TopN      int
	Container *di.Container // DI container with all services
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	port           int
	topN           int
	container      *di.Container
	dashboard      *Dashboard
	systemHandlers *SystemHandlers
}

// New creates a new HTTP server
func New(cfg Config) (*Server, error) {
	dashboard, err := NewDashboard(cfg.Container, cfg.TopN, cfg.Log)
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:         chi.NewRouter(),
		log:            cfg.Log.With().Str("component", "server").Logger(),
		port:           cfg.Port,
		topN:           cfg.TopN,
		container:      cfg.Container,
		dashboard:      dashboard,
		systemHandlers: NewSystemHandlers(cfg.Container, cfg.Log),
	}

	s.setupMiddleware(cfg.DevMode)
	if err := s.setupRoutes(); err != nil {
		return nil, err
	}

	// Writes may wait on an upstream completion, so allow more than the middleware timeout
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 75 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

func (s *Server) setupRoutes() error {
	s.router.Get("/health", s.handleHealth)

	staticFS, err := fs.Sub(embedded.Files, "frontend")
	if err != nil {
		return fmt.Errorf("failed to create static filesystem: %w", err)
	}
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	c := s.container
	s.router.Route("/api", func(r chi.Router) {
		indexhandlers.NewHandler(c.IndexService, s.topN, s.log).RegisterRoutes(r)
		serieshandlers.NewHandler(c.SeriesGenerator, s.log).RegisterRoutes(r)
		insightshandlers.NewHandler(c.SeriesGenerator, c.InsightsService, s.log).RegisterRoutes(r)
		chartshandlers.NewHandler(c.ChartsService, c.IndexService, c.SeriesGenerator, s.topN, s.log).RegisterRoutes(r)
		chatbothandlers.NewHandler(c.ChatbotService, s.log).RegisterRoutes(r)
		quizhandlers.NewHandler(c.QuizService, s.log).RegisterRoutes(r)
		factshandlers.NewHandler(c.FactsService, s.log).RegisterRoutes(r)

		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.systemHandlers.HandleSystemStatus)
		})
	})

	s.router.Get("/", s.dashboard.ServeHTTP)

	return nil
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
