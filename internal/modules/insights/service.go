// Package insights computes summary statistics and indicators over the mock index series.
package insights

import (
	"github.com/aristath/coin50/internal/modules/series"
	"github.com/aristath/coin50/pkg/formulas"
	"github.com/rs/zerolog"
)

// Indicator windows
const (
	SMAPeriod = 20
	EMAPeriod = 20
	RSIPeriod = 14
)

// Trend labels
const (
	TrendBullish = "bullish"
	TrendBearish = "bearish"
	TrendNeutral = "neutral"
)

// Insights is the "Prediction and Insights" panel content.
// Indicator fields are nil when the series is too short for them.
type Insights struct {
	Last        float64  `json:"last"`
	Change      float64  `json:"change"`
	ChangePct   float64  `json:"change_pct"`
	Mean        float64  `json:"mean"`
	StdDev      float64  `json:"std_dev"`
	Min         float64  `json:"min"`
	Max         float64  `json:"max"`
	MaxDrawdown *float64 `json:"max_drawdown"`
	SMA         *float64 `json:"sma"`
	EMA         *float64 `json:"ema"`
	RSI         *float64 `json:"rsi"`
	Trend       string   `json:"trend"`
}

// Service computes insights
type Service struct {
	log zerolog.Logger
}

// NewService creates a new insights service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "insights").Logger(),
	}
}

// Compute derives insights from a generated series. An empty series yields
// zero values and a neutral trend.
func (s *Service) Compute(sr series.Series) Insights {
	values := sr.Values()
	if len(values) == 0 {
		return Insights{Trend: TrendNeutral}
	}

	summary := formulas.Summarize(values)
	first := values[0]
	last := values[len(values)-1]

	out := Insights{
		Last:        last,
		Change:      last - first,
		Mean:        summary.Mean,
		StdDev:      summary.StdDev,
		Min:         summary.Min,
		Max:         summary.Max,
		MaxDrawdown: formulas.MaxDrawdown(values),
		SMA:         formulas.LastSMA(values, SMAPeriod),
		EMA:         formulas.LastEMA(values, EMAPeriod),
		RSI:         formulas.LastRSI(values, RSIPeriod),
	}
	if first != 0 {
		out.ChangePct = (last - first) / first * 100
	}
	out.Trend = Trend(last, out.SMA)

	s.log.Debug().
		Str("render_id", sr.RenderID.String()).
		Float64("last", last).
		Str("trend", out.Trend).
		Msg("Computed insights")

	return out
}

// Trend labels the last value relative to its moving average
func Trend(last float64, sma *float64) string {
	switch {
	case sma == nil:
		return TrendNeutral
	case last > *sma:
		return TrendBullish
	case last < *sma:
		return TrendBearish
	default:
		return TrendNeutral
	}
}
