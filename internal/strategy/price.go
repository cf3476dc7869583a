package strategy

import "ReadinessScanner/internal/model"

// Price momentum feature weights; sum 1.0.
const (
	wEMACross   = 0.35
	wPriceAbove = 0.25
	wRSI        = 0.20
	wHigherLows = 0.20
)

// ScorePriceMomentum maps a technical metrics bundle to a 0-100 momentum
// score. The RSI term peaks at RSI 60, zeroes out below 30, and is nearly
// dead above 80; a rising RSI earns a capped 1.2x boost. Unavailable RSI
// contributes a fixed neutral 0.5.
func ScorePriceMomentum(m *model.TechMetrics) float64 {
	score := 0.0
	if m.EMACross {
		score += wEMACross
	}
	if m.PriceAboveEMASlow {
		score += wPriceAbove
	}
	score += wRSI * rsiSubScore(m)
	if m.HigherLows3 {
		score += wHigherLows
	}
	return score * 100.0
}

func rsiSubScore(m *model.TechMetrics) float64 {
	if !m.RSI.Valid {
		return 0.5
	}
	r := m.RSI.Float64
	var s float64
	switch {
	case r < 30:
		s = 0.0
	case r > 80:
		s = 0.2
	default:
		s = 1.0 - abs(r-60)/30.0
		if s < 0 {
			s = 0
		}
	}
	if m.RSIRising {
		s = min(1.0, s*1.2)
	}
	return s
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
