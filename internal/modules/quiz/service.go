// Package quiz holds the dashboard quiz question and grades answers.
package quiz

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

// ErrNoAnswer is returned when grading an empty answer
var ErrNoAnswer = errors.New("no answer selected")

const (
	CorrectMessage   = "Correct! Bitcoin has a fixed supply of 21 Million coins."
	IncorrectMessage = "Incorrect. The correct answer is 21 Million."
)

// Question is a multiple-choice question
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  string   `json:"-"`
}

// Result is the outcome of grading an answer
type Result struct {
	Answer  string `json:"answer"`
	Correct bool   `json:"correct"`
	Message string `json:"message"`
}

var bitcoinSupply = Question{
	ID:      "bitcoin-supply",
	Prompt:  "What is the total supply of Bitcoin?",
	Options: []string{"21 Million", "100 Million", "Unlimited", "50 Million"},
	Answer:  "21 Million",
}

// Service grades quiz answers
type Service struct {
	question Question
	log      zerolog.Logger
}

// NewService creates a new quiz service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		question: bitcoinSupply,
		log:      log.With().Str("service", "quiz").Logger(),
	}
}

// Question returns the quiz question. Options are copied.
func (s *Service) Question() Question {
	q := s.question
	q.Options = append([]string(nil), s.question.Options...)
	return q
}

// Grade checks answer against the correct option (exact match after trimming)
func (s *Service) Grade(answer string) (Result, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return Result{}, ErrNoAnswer
	}

	result := Result{Answer: answer}
	if answer == s.question.Answer {
		result.Correct = true
		result.Message = CorrectMessage
	} else {
		result.Message = IncorrectMessage
	}

	s.log.Debug().Str("answer", answer).Bool("correct", result.Correct).Msg("Graded quiz answer")
	return result, nil
}
