// Package di provides dependency injection wiring and initialization.
//
// The Container holds every service instance and is the single source of truth
// handed to the HTTP server.
package di

import (
	"github.com/aristath/coin50/internal/clients/llm"
	"github.com/aristath/coin50/internal/clients/wikipedia"
	"github.com/aristath/coin50/internal/modules/charts"
	"github.com/aristath/coin50/internal/modules/chatbot"
	"github.com/aristath/coin50/internal/modules/facts"
	"github.com/aristath/coin50/internal/modules/index"
	"github.com/aristath/coin50/internal/modules/insights"
	"github.com/aristath/coin50/internal/modules/quiz"
	"github.com/aristath/coin50/internal/modules/series"
)

// Container holds all application dependencies
type Container struct {
	// Clients
	WikipediaClient *wikipedia.Client
	LLMClient       *llm.Client // nil when no API key is configured

	// Services
	IndexService    *index.Service
	SeriesGenerator *series.Generator
	ChartsService   *charts.Service
	InsightsService *insights.Service
	ChatbotService  *chatbot.Service
	QuizService     *quiz.Service
	FactsService    *facts.Service
}
