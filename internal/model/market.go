package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// NullFloat is a float64 that may be unavailable. Scorers substitute an
// explicit neutral value for an invalid metric instead of propagating NaN
// through the weighted sums.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// ValidFloat wraps a known-good value.
func ValidFloat(v float64) NullFloat {
	return NullFloat{Float64: v, Valid: true}
}

// Or returns the value when valid, otherwise the fallback.
func (n NullFloat) Or(fallback float64) float64 {
	if n.Valid {
		return n.Float64
	}
	return fallback
}
