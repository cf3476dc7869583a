package calculator

import "ReadinessScanner/internal/model"

// ReduceChain collapses a nearest-expiry option chain into flow aggregates.
// A nil or expiry-less chain yields a bundle with every field unavailable.
// Ratios stay unavailable when the put-side denominator is zero.
func ReduceChain(chain *model.OptionChain) model.OptionFlow {
	var flow model.OptionFlow
	if chain == nil || chain.Expiry == "" {
		return flow
	}

	var cv, pv, coi, poi float64
	for _, c := range chain.Calls {
		cv += c.Volume
		coi += c.OpenInterest
	}
	for _, p := range chain.Puts {
		pv += p.Volume
		poi += p.OpenInterest
	}

	flow.NearestExpiry = chain.Expiry
	flow.CallVolSum = model.ValidFloat(cv)
	flow.PutVolSum = model.ValidFloat(pv)
	flow.CallOISum = model.ValidFloat(coi)
	flow.PutOISum = model.ValidFloat(poi)
	if pv != 0 {
		flow.CallPutVolRatio = model.ValidFloat(cv / pv)
	}
	if poi != 0 {
		flow.CallPutOIRatio = model.ValidFloat(coi / poi)
	}
	return flow
}
