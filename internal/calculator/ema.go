package calculator

import "errors"

// CalculateEMA computes the exponential moving average of prices for the
// given span and returns the final value. The series is seeded with the
// first price and smoothed recursively with alpha = 2/(span+1), i.e. the
// unadjusted recursive form.
func CalculateEMA(prices []float64, span int) (float64, error) {
	if span <= 0 {
		return 0, errors.New("span must be positive")
	}
	if len(prices) == 0 {
		return 0, errors.New("no prices provided")
	}
	alpha := 2.0 / (float64(span) + 1.0)
	ema := prices[0]
	for _, p := range prices[1:] {
		ema += alpha * (p - ema)
	}
	return ema, nil
}
