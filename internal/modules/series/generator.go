// Package series generates the synthetic COIN50 index trajectory shown on the
// prediction tab. The values are mock data and feed no decision logic.
package series

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidConfig is returned by NewGenerator for unusable parameters
var ErrInvalidConfig = errors.New("invalid series configuration")

const (
	DefaultPeriods  = 100
	DefaultBaseline = 100.0
	DefaultDrift    = 0.1 // Mean of each daily increment
	DefaultSigma    = 1.0 // Standard deviation of each daily increment
)

// DefaultStart is the first date of the mock series
var DefaultStart = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

// Point is one day of the series
type Point struct {
	Date  time.Time
	Value float64
}

// Series is one generated trajectory
type Series struct {
	RenderID uuid.UUID
	Points   []Point
}

// Values returns the point values in date order
func (s Series) Values() []float64 {
	values := make([]float64, len(s.Points))
	for i, p := range s.Points {
		values[i] = p.Value
	}
	return values
}

// Dates returns the point dates in order
func (s Series) Dates() []time.Time {
	dates := make([]time.Time, len(s.Points))
	for i, p := range s.Points {
		dates[i] = p.Date
	}
	return dates
}

// Config configures a Generator
type Config struct {
	Start    time.Time
	Periods  int
	Baseline float64
	Drift    float64
	Sigma    float64
	Seed     uint64 // 0 = unseeded, every series differs
}

// DefaultConfig returns the 100-day random walk starting 2023-01-01 at 100
func DefaultConfig() Config {
	return Config{
		Start:    DefaultStart,
		Periods:  DefaultPeriods,
		Baseline: DefaultBaseline,
		Drift:    DefaultDrift,
		Sigma:    DefaultSigma,
	}
}

// Generator produces random-walk series. Safe for concurrent use.
type Generator struct {
	cfg  Config
	mu   sync.Mutex // guards dist when it holds a seeded source
	dist distuv.Normal
	log  zerolog.Logger
}

// NewGenerator validates cfg and creates a generator
func NewGenerator(cfg Config, log zerolog.Logger) (*Generator, error) {
	if cfg.Periods < 1 {
		return nil, fmt.Errorf("%w: periods must be positive, got %d", ErrInvalidConfig, cfg.Periods)
	}
	if cfg.Sigma < 0 {
		return nil, fmt.Errorf("%w: sigma must not be negative, got %f", ErrInvalidConfig, cfg.Sigma)
	}
	if cfg.Start.IsZero() {
		cfg.Start = DefaultStart
	}

	dist := distuv.Normal{Mu: cfg.Drift, Sigma: cfg.Sigma}
	if cfg.Seed != 0 {
		dist.Src = rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)
	}

	return &Generator{
		cfg:  cfg,
		dist: dist,
		log:  log.With().Str("service", "series").Logger(),
	}, nil
}

// Config returns the generator configuration
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate draws a fresh series: value[0] = baseline + draw, value[i] = value[i-1] + draw.
// Dates are consecutive calendar days from the configured start.
func (g *Generator) Generate() Series {
	start := time.Date(g.cfg.Start.Year(), g.cfg.Start.Month(), g.cfg.Start.Day(), 0, 0, 0, 0, time.UTC)

	points := make([]Point, g.cfg.Periods)
	value := g.cfg.Baseline

	g.mu.Lock()
	for i := range points {
		value += g.dist.Rand()
		points[i] = Point{
			Date:  start.AddDate(0, 0, i),
			Value: value,
		}
	}
	g.mu.Unlock()

	s := Series{
		RenderID: uuid.New(),
		Points:   points,
	}

	g.log.Debug().
		Str("render_id", s.RenderID.String()).
		Int("points", len(points)).
		Float64("last", value).
		Msg("Generated mock series")

	return s
}
