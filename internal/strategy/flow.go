package strategy

import "ReadinessScanner/internal/model"

// Volume/flow feature weights. The sum is the normalization denominator.
const (
	wVolSpike = 0.30
	wOBV      = 0.30
	wCPVol    = 0.20
	wCPOI     = 0.20
)

// ScoreVolumeFlow maps volume behavior and options skew to a 0-100 score.
// Classes without a single-name options market get fixed neutral option
// terms; otherwise a call/put ratio of 2.0 saturates the bullish mapping
// and an unavailable ratio contributes the neutral midpoint.
func ScoreVolumeFlow(m *model.TechMetrics, flow model.OptionFlow, class model.AssetClass) float64 {
	s := 0.0
	if m.VolSpikeUp {
		s += wVolSpike
	}
	if m.OBVSlopePos {
		s += wOBV
	}

	if !class.HasSingleNameOptions() {
		s += wCPVol * 0.5
		s += wCPOI * 0.5
	} else {
		s += wCPVol * ratioTerm(flow.CallPutVolRatio)
		s += wCPOI * ratioTerm(flow.CallPutOIRatio)
	}

	total := wVolSpike + wOBV + wCPVol + wCPOI
	return s / total * 100.0
}

func ratioTerm(ratio model.NullFloat) float64 {
	if !ratio.Valid {
		return 0.5
	}
	return clamp01(ratio.Float64 / 2.0)
}
