package strategy

import "ReadinessScanner/internal/model"

// Weights are the effective shares applied to the four sub-scores after the
// institutional rescale. They sum to 1.0.
type Weights struct {
	Price float64
	Flow  float64
	Fund  float64
	Inst  float64
}

// WeightsFor rescales the class's base price/flow/fund weights so that they
// fill exactly the share left over by the institutional weight. A base row
// that sums to zero falls back to a 60/40 price/flow split.
func WeightsFor(class model.AssetClass, instWeight float64) Weights {
	remaining := 1.0 - instWeight
	if remaining < 0 {
		remaining = 0
	}

	base := BaseWeightsFor(class)
	total := base.Price + base.Flow + base.Fund
	if total <= 0 {
		base = BaseWeights{Price: 0.6, Flow: 0.4, Fund: 0.0}
		total = 1.0
	}
	scale := remaining / total
	return Weights{
		Price: base.Price * scale,
		Flow:  base.Flow * scale,
		Fund:  base.Fund * scale,
		Inst:  instWeight,
	}
}

// BlendScores combines the four sub-scores into the final 0-100 score using
// the class weights. An unavailable fundamentals or institutional score is
// replaced by a neutral 50 so the weighting stays intact. The result is
// clamped to [0,100]: the weighted sum can overshoot by a float ulp.
func BlendScores(class model.AssetClass, instWeight float64, price, flow float64, fund, inst model.NullFloat) float64 {
	w := WeightsFor(class, instWeight)
	blended := w.Price*price +
		w.Flow*flow +
		w.Fund*fund.Or(50.0) +
		w.Inst*inst.Or(50.0)
	if blended < 0 {
		return 0
	}
	if blended > 100 {
		return 100
	}
	return blended
}
