// Package chatbot answers dashboard questions through the Wikipedia summary
// endpoint (Q&A) and a hosted text-generation model (completion).
package chatbot

import (
	"context"
	"errors"
	"strings"

	"github.com/aristath/coin50/internal/clients/wikipedia"
	"github.com/rs/zerolog"
)

// ErrEmptyQuestion is returned for empty or whitespace-only input
var ErrEmptyQuestion = errors.New("question must not be empty")

// SummaryFetcher looks up a free-text query
type SummaryFetcher interface {
	Summary(ctx context.Context, query string) (string, error)
}

// Completer produces a text completion for a raw prompt
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Answer is a Q&A reply
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Completion is a completion reply. ErrorKind is empty on success.
type Completion struct {
	Answer    string    `json:"answer"`
	ErrorKind ErrorKind `json:"error_kind"`
}

// Service implements both chat paths
type Service struct {
	wiki      SummaryFetcher
	completer Completer // nil when no API key is configured
	log       zerolog.Logger
}

// NewService creates a chatbot service. A nil completer disables the completion path.
func NewService(wiki SummaryFetcher, completer Completer, log zerolog.Logger) *Service {
	return &Service{
		wiki:      wiki,
		completer: completer,
		log:       log.With().Str("service", "chatbot").Logger(),
	}
}

// CompletionEnabled reports whether a completion backend is configured
func (s *Service) CompletionEnabled() bool {
	return s.completer != nil
}

// Ask forwards question to the summary endpoint.
// Upstream failures are logged and answered with the not-found message.
func (s *Service) Ask(ctx context.Context, question string) (Answer, error) {
	if strings.TrimSpace(question) == "" {
		return Answer{}, ErrEmptyQuestion
	}

	text, err := s.wiki.Summary(ctx, question)
	if err != nil {
		s.log.Warn().Err(err).Str("question", question).Msg("Summary lookup failed")
		text = wikipedia.NotFoundMessage
	}

	return Answer{Question: question, Answer: text}, nil
}

// Complete forwards prompt verbatim to the completion model.
// Upstream failures become user-facing messages classified by ClassifyError.
func (s *Service) Complete(ctx context.Context, prompt string) (Completion, error) {
	if strings.TrimSpace(prompt) == "" {
		return Completion{}, ErrEmptyQuestion
	}

	if s.completer == nil {
		return Completion{Answer: InvalidKeyMessage, ErrorKind: ErrorKindInvalidKey}, nil
	}

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		kind, message := ClassifyError(err)
		s.log.Warn().Err(err).Str("error_kind", string(kind)).Msg("Completion failed")
		return Completion{Answer: message, ErrorKind: kind}, nil
	}

	return Completion{Answer: text}, nil
}
