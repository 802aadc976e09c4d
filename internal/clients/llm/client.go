// Package llm provides a rate-limited text completion client over an
// OpenAI-compatible chat model.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

var (
	// ErrEmptyResponse is returned when the model answers without content
	ErrEmptyResponse = errors.New("model returned an empty response")
	// ErrThrottled is returned when the local limiter does not admit the call before ctx ends
	ErrThrottled = errors.New("completion throttled")
)

// Config configures the completion client
type Config struct {
	BaseURL string // empty uses the provider default
	APIKey  string
	Model   string
	Timeout time.Duration
	RPM     int // requests per minute
	Burst   int
}

// Client sends single-prompt completions to a chat model
type Client struct {
	chatModel model.BaseChatModel
	limiter   *rate.Limiter
	modelName string
	log       zerolog.Logger
}

// NewClient creates a client backed by the OpenAI-compatible chat model
func NewClient(ctx context.Context, cfg Config, log zerolog.Logger) (*Client, error) {
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize chat model: %w", err)
	}

	return NewClientWithModel(chatModel, cfg, log), nil
}

// NewClientWithModel wraps an existing chat model
func NewClientWithModel(chatModel model.BaseChatModel, cfg Config, log zerolog.Logger) *Client {
	rpm := cfg.RPM
	if rpm <= 0 {
		rpm = 30
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		chatModel: chatModel,
		limiter:   rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst),
		modelName: cfg.Model,
		log:       log.With().Str("client", "llm").Str("model", cfg.Model).Logger(),
	}
}

// Complete sends prompt verbatim as a single user message and returns the reply text.
// Blocks until the rate limiter admits the call or ctx is done.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", ErrThrottled, err)
	}

	start := time.Now()
	resp, err := c.chatModel.Generate(ctx, []*schema.Message{
		{Role: schema.User, Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if resp == nil || resp.Content == "" {
		return "", ErrEmptyResponse
	}

	c.log.Debug().
		Dur("duration", time.Since(start)).
		Int("prompt_len", len(prompt)).
		Int("answer_len", len(resp.Content)).
		Msg("Completion received")

	return resp.Content, nil
}
