package strategy

import (
	"ReadinessScanner/internal/calculator"
	"ReadinessScanner/internal/model"
)

// Config carries every scoring weight and threshold used by the pipeline.
// It is built once at startup and passed in immutably, so tests can run
// parameterized variants without global state.
type Config struct {
	Metrics calculator.Params

	// InstFlowWeight is the fixed share of the final score given to the
	// institutional flow proxy; the per-class base weights are rescaled to
	// fill the remainder.
	InstFlowWeight float64

	MTFConfirmThreshold int
	MTFPositiveScore    float64

	BTDLookbackDays        int
	BTDMinPullback         float64
	BTDMaxPullback         float64
	BTDRequireDailyUptrend bool
}

// DefaultConfig returns the standard scan settings.
func DefaultConfig() Config {
	return Config{
		Metrics:                calculator.DefaultParams(),
		InstFlowWeight:         0.10,
		MTFConfirmThreshold:    2,
		MTFPositiveScore:       60.0,
		BTDLookbackDays:        20,
		BTDMinPullback:         0.02,
		BTDMaxPullback:         0.08,
		BTDRequireDailyUptrend: true,
	}
}

// BaseWeights are the per-asset-class price/flow/fundamentals shares before
// the institutional-flow rescale. Each row sums to 1.0.
type BaseWeights struct {
	Price float64
	Flow  float64
	Fund  float64
}

var baseWeightTable = map[model.AssetClass]BaseWeights{
	model.AssetEquity:    {Price: 0.40, Flow: 0.35, Fund: 0.25},
	model.AssetETF:       {Price: 0.45, Flow: 0.45, Fund: 0.10},
	model.AssetIndex:     {Price: 0.70, Flow: 0.00, Fund: 0.30},
	model.AssetCommodity: {Price: 0.80, Flow: 0.20, Fund: 0.00},
	model.AssetCrypto:    {Price: 0.75, Flow: 0.25, Fund: 0.00},
	model.AssetCurrency:  {Price: 0.80, Flow: 0.20, Fund: 0.00},
	model.AssetUnknown:   {Price: 0.40, Flow: 0.35, Fund: 0.25},
}

// BaseWeightsFor returns the static weight row for a class; unrecognized
// classes fall back to the UNKNOWN row.
func BaseWeightsFor(class model.AssetClass) BaseWeights {
	if w, ok := baseWeightTable[class]; ok {
		return w
	}
	return baseWeightTable[model.AssetUnknown]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
