package index

import (
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Service exposes the constituent table. The table is immutable after construction,
// so the service is safe for concurrent use.
type Service struct {
	constituents []Constituent
	log          zerolog.Logger
}

// NewService creates a service over the built-in COIN50 holding list
func NewService(log zerolog.Logger) *Service {
	return NewServiceWithConstituents(defaultConstituents, log)
}

// NewServiceWithConstituents creates a service over an arbitrary list (declaration order is kept)
func NewServiceWithConstituents(constituents []Constituent, log zerolog.Logger) *Service {
	owned := make([]Constituent, len(constituents))
	copy(owned, constituents)

	return &Service{
		constituents: owned,
		log:          log.With().Str("service", "index").Logger(),
	}
}

// All returns the full list in declaration order
func (s *Service) All() []Constituent {
	out := make([]Constituent, len(s.constituents))
	copy(out, s.constituents)
	return out
}

// TopN returns exactly min(n, len) constituents sorted by weight descending.
// Equal weights keep declaration order; callers must not rely on that.
func (s *Service) TopN(n int) []Constituent {
	if n <= 0 {
		return []Constituent{}
	}

	sorted := s.All()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight.GreaterThan(sorted[j].Weight)
	})

	if n < len(sorted) {
		sorted = sorted[:n]
	}

	s.log.Debug().Int("requested", n).Int("returned", len(sorted)).Msg("Selected top constituents")
	return sorted
}

// WeightSum returns the sum of all weights. It is informational only:
// nothing requires the listed weights to add up to 100.
func (s *Service) WeightSum() decimal.Decimal {
	sum := decimal.Zero
	for _, c := range s.constituents {
		sum = sum.Add(c.Weight)
	}
	return sum
}

// Count returns the number of listed constituents
func (s *Service) Count() int {
	return len(s.constituents)
}

// Methodology returns the methodology paragraphs
func (s *Service) Methodology() []string {
	out := make([]string, len(methodology))
	copy(out, methodology)
	return out
}
