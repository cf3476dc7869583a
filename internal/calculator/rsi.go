package calculator

import (
	"ReadinessScanner/internal/model"
)

// CalculateRSISeries computes the RSI for every bar using plain rolling
// means of gains and losses over the period (not Wilder's exponential
// smoothing). The first `period` entries are unavailable, as is any entry
// whose average loss is zero: RSI is undefined there and consumers map it
// to a neutral value.
func CalculateRSISeries(closes []float64, period int) []model.NullFloat {
	out := make([]model.NullFloat, len(closes))
	if period <= 0 || len(closes) < period+1 {
		return out
	}

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	for i := period; i < len(closes); i++ {
		var sumGain, sumLoss float64
		for j := i - period + 1; j <= i; j++ {
			sumGain += gains[j]
			sumLoss += losses[j]
		}
		avgGain := sumGain / float64(period)
		avgLoss := sumLoss / float64(period)
		if avgLoss == 0 {
			continue // undefined, left unavailable
		}
		rs := avgGain / avgLoss
		out[i] = model.ValidFloat(100.0 - 100.0/(1.0+rs))
	}
	return out
}
