// Package formulas provides indicator and statistics helpers over price-like series.
package formulas

import (
	"math"

	"github.com/markcheno/go-talib"
)

// SMASeries returns the simple moving average aligned with values.
// Entries before the first full window are NaN. Returns nil if len(values) < length.
func SMASeries(values []float64, length int) []float64 {
	if length < 1 || len(values) < length {
		return nil
	}
	return maskLookback(talib.Sma(values, length), length-1)
}

// LastSMA returns the most recent simple moving average or nil if there is not enough data
func LastSMA(values []float64, length int) *float64 {
	return last(SMASeries(values, length))
}

// LastEMA returns the most recent exponential moving average.
//
//	EMA_today = price × k + EMA_yesterday × (1 − k), k = 2 / (length + 1)
//
// Returns nil when there are fewer values than length.
func LastEMA(values []float64, length int) *float64 {
	if length < 1 || len(values) < length {
		return nil
	}
	return last(maskLookback(talib.Ema(values, length), length-1))
}

// LastRSI returns the most recent Relative Strength Index (0-100).
// Needs length+1 values.
func LastRSI(values []float64, length int) *float64 {
	if length < 2 || len(values) < length+1 {
		return nil
	}
	return last(maskLookback(talib.Rsi(values, length), length))
}

// maskLookback replaces the warm-up entries talib leaves as zero with NaN
func maskLookback(out []float64, lookback int) []float64 {
	for i := 0; i < lookback && i < len(out); i++ {
		out[i] = math.NaN()
	}
	return out
}

func last(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	v := values[len(values)-1]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
