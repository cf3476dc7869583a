package strategy

import "ReadinessScanner/internal/model"

// ScoreInstitutionalFlow approximates large-participant accumulation from
// options call/put volume skew, relative volume and OBV direction. It is a
// proxy, not a holdings feed, and is blended in at a small fixed weight.
func ScoreInstitutionalFlow(m *model.TechMetrics, flow model.OptionFlow) float64 {
	s := 0.4 * ratioTerm(flow.CallPutVolRatio)
	s += 0.4 * relativeVolumeTerm(m)
	if m.OBVSlopePos {
		s += 0.2
	}
	return s * 100.0
}

// relativeVolumeTerm centers today's volume against the 30-day average:
// average volume maps to 0.5, 3x average saturates at 1.
func relativeVolumeTerm(m *model.TechMetrics) float64 {
	if m.AvgVol30 <= 0 {
		return 0.5
	}
	ratio := m.TodayVol / m.AvgVol30
	return clamp01((ratio-1.0)/2.0 + 0.5)
}
