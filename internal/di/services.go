package di

import (
	"fmt"

	"github.com/aristath/coin50/internal/config"
	"github.com/aristath/coin50/internal/modules/charts"
	"github.com/aristath/coin50/internal/modules/chatbot"
	"github.com/aristath/coin50/internal/modules/facts"
	"github.com/aristath/coin50/internal/modules/index"
	"github.com/aristath/coin50/internal/modules/insights"
	"github.com/aristath/coin50/internal/modules/quiz"
	"github.com/aristath/coin50/internal/modules/series"
	"github.com/rs/zerolog"
)

// InitializeServices creates all services. Clients must be initialized first.
func InitializeServices(container *Container, cfg *config.Config, log zerolog.Logger) error {
	if container == nil {
		return fmt.Errorf("container cannot be nil")
	}
	if container.WikipediaClient == nil {
		return fmt.Errorf("clients must be initialized before services")
	}

	container.IndexService = index.NewService(log)

	seriesCfg := series.DefaultConfig()
	seriesCfg.Start = cfg.Series.Start
	seriesCfg.Periods = cfg.Series.Periods
	seriesCfg.Seed = cfg.Series.Seed
	generator, err := series.NewGenerator(seriesCfg, log)
	if err != nil {
		return fmt.Errorf("failed to create series generator: %w", err)
	}
	container.SeriesGenerator = generator

	container.ChartsService = charts.NewService(log)
	container.InsightsService = insights.NewService(log)

	// A typed nil *llm.Client must not reach the service as a non-nil interface
	var completer chatbot.Completer
	if container.LLMClient != nil {
		completer = container.LLMClient
	}
	container.ChatbotService = chatbot.NewService(container.WikipediaClient, completer, log)

	container.QuizService = quiz.NewService(log)
	container.FactsService = facts.NewService(log)

	return nil
}
