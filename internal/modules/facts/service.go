// Package facts serves the dashboard's fun facts.
package facts

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// Fact is one fun fact
type Fact struct {
	Text string `json:"text"`
}

var defaultFacts = []Fact{
	{Text: "The first real-world Bitcoin transaction was for two pizzas."},
	{Text: "Over 20% of all Bitcoin is estimated to be lost forever due to lost private keys."},
}

// Service picks facts
type Service struct {
	facts []Fact
	log   zerolog.Logger
}

// NewService creates a facts service over the built-in list
func NewService(log zerolog.Logger) *Service {
	return NewServiceWithFacts(defaultFacts, log)
}

// NewServiceWithFacts creates a facts service over facts
func NewServiceWithFacts(facts []Fact, log zerolog.Logger) *Service {
	return &Service{
		facts: append([]Fact(nil), facts...),
		log:   log.With().Str("service", "facts").Logger(),
	}
}

// All returns every fact
func (s *Service) All() []Fact {
	return append([]Fact(nil), s.facts...)
}

// Random picks one fact uniformly. Returns false when the list is empty.
func (s *Service) Random() (Fact, bool) {
	if len(s.facts) == 0 {
		return Fact{}, false
	}
	return s.facts[rand.IntN(len(s.facts))], true
}
