package model

// TechMetrics holds the technical features derived from one OHLCV series.
// Computed once per (ticker, timeframe) and never mutated afterwards.
type TechMetrics struct {
	LastClose         float64
	EMAFast           float64
	EMASlow           float64
	EMACross          bool // fast EMA above slow EMA
	PriceAboveEMASlow bool
	RSI               NullFloat
	RSIRising         bool
	HigherLows3       bool
	OBVLatest         float64
	OBVSlope          float64
	OBVSlopePos       bool
	AvgVol30          float64
	TodayVol          float64
	VolSpikeUp        bool
}

// OptionFlow holds call/put volume and open-interest aggregates for the
// nearest expiry. Every numeric field may be unavailable when a ticker has
// no listed options; consumers treat unavailable ratios as a neutral
// midpoint, never as zero.
type OptionFlow struct {
	NearestExpiry   string
	CallVolSum      NullFloat
	PutVolSum       NullFloat
	CallOISum       NullFloat
	PutOISum        NullFloat
	CallPutVolRatio NullFloat
	CallPutOIRatio  NullFloat
}

// OptionContract is a single call or put row from a chain snapshot.
type OptionContract struct {
	Volume       float64
	OpenInterest float64
}

// OptionChain is the raw nearest-expiry chain as supplied by the provider.
type OptionChain struct {
	Expiry string
	Calls  []OptionContract
	Puts   []OptionContract
}
