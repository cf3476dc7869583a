package calculator

import (
	"math"

	"ReadinessScanner/internal/model"
)

// ComputeOBV builds the on-balance volume series for the bars. The series
// starts at 0 and adds volume on up-closes, subtracts it on down-closes and
// carries the value on flat closes.
func ComputeOBV(bars []model.OHLCV) []float64 {
	if len(bars) == 0 {
		return nil
	}
	obv := make([]float64, len(bars))
	for i := 1; i < len(bars); i++ {
		switch {
		case bars[i].Close > bars[i-1].Close:
			obv[i] = obv[i-1] + bars[i].Volume
		case bars[i].Close < bars[i-1].Close:
			obv[i] = obv[i-1] - bars[i].Volume
		default:
			obv[i] = obv[i-1]
		}
	}
	return obv
}

// SlopeLastN returns the least-squares linear regression slope of the last
// n values against index 0..n-1. It returns 0 when fewer than n values
// exist or any value is non-finite.
func SlopeLastN(values []float64, n int) float64 {
	if n <= 1 || len(values) < n {
		return 0
	}
	window := values[len(values)-n:]
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range window {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return 0
		}
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (fn*sumXY - sumX*sumY) / denom
}
