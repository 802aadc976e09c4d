package di

import (
	"context"
	"fmt"

	"github.com/aristath/coin50/internal/clients/llm"
	"github.com/aristath/coin50/internal/clients/wikipedia"
	"github.com/aristath/coin50/internal/config"
	"github.com/rs/zerolog"
)

// InitializeClients creates the outbound API clients.
// The completion client is only created when an API key is configured.
func InitializeClients(container *Container, cfg *config.Config, log zerolog.Logger) error {
	if container == nil {
		return fmt.Errorf("container cannot be nil")
	}

	container.WikipediaClient = wikipedia.NewClient(cfg.Wikipedia.BaseURL, cfg.Wikipedia.Timeout, log)

	if !cfg.LLM.Enabled() {
		log.Warn().Msg("LLM_API_KEY not set, completion chatbot disabled")
		return nil
	}

	llmClient, err := llm.NewClient(context.Background(), llm.Config{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
		RPM:     cfg.LLM.RPM,
		Burst:   cfg.LLM.Burst,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	container.LLMClient = llmClient

	log.Info().Str("model", cfg.LLM.Model).Int("rpm", cfg.LLM.RPM).Msg("Completion chatbot enabled")
	return nil
}
