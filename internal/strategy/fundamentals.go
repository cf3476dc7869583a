package strategy

import "ReadinessScanner/internal/model"

// ScoreFundamentals blends quarterly earnings growth, short interest and
// the analyst recommendation mean into a 0-100 score. Each input that is
// unavailable contributes a neutral 0.5 to its term.
func ScoreFundamentals(shortRatio, recommendationMean model.NullFloat, quarterlyEarnings []float64) float64 {
	earnings := earningsGrowthTerm(quarterlyEarnings)
	short := shortInterestTerm(shortRatio)
	rec := recommendationTerm(recommendationMean)

	blended := 0.5*earnings + 0.3*rec + 0.2*short
	return clamp01(blended) * 100.0
}

// earningsGrowthTerm maps the latest quarter-over-quarter growth rate onto
// [0,1], with -100% growth at 0, flat at 0.5 and +100% at 1.
func earningsGrowthTerm(quarterly []float64) float64 {
	n := len(quarterly)
	if n < 2 {
		return 0.5
	}
	prev, last := quarterly[n-2], quarterly[n-1]
	if prev == 0 {
		return 0.5
	}
	growth := (last - prev) / abs(prev)
	return clamp01((growth + 1.0) / 2.0)
}

// shortInterestTerm rewards low days-to-cover: a short ratio at or below
// 0.05 scores 1.0 and the term hits zero at 0.30.
func shortInterestTerm(shortRatio model.NullFloat) float64 {
	if !shortRatio.Valid {
		return 0.5
	}
	return clamp01(1.0 - (shortRatio.Float64-0.05)/0.25)
}

// recommendationTerm maps the 1 (strong buy) to 5 (sell) analyst mean onto
// [0,1] with 1 best.
func recommendationTerm(rec model.NullFloat) float64 {
	if !rec.Valid {
		return 0.5
	}
	return clamp01((5.0 - rec.Float64) / 4.0)
}
