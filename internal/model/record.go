package model

import "time"

// Record is the full per-ticker output of one analysis pass. A fresh record
// is created on every run; records are never mutated after assembly.
type Record struct {
	Ticker     string
	AssetClass AssetClass
	Sector     string

	PriceSubscore     float64
	FlowSubscore      float64
	FundSubscore      float64 // neutral 50 substituted when skipped/unavailable
	InstFlowProxy     float64
	FinalScore        float64
	BuySignal         Signal
	SignalStrength    Strength
	ScoreTrend        Trend
	MTFPositiveCount  int
	MTFConfirm        bool
	MTFDetails        map[string]NullFloat // timeframe -> price momentum score
	BuyTheDip         bool
	BTDPullbackPct    NullFloat // rounded to 4 decimals
	BTDRecentHigh     NullFloat
	LastClose         float64
	AvgVol30          float64
	OptNearestExpiry  string
	CallPutVolRatio   NullFloat

	// Err is set when the primary daily-history fetch failed; such a record
	// carries no score and does not affect the rest of the batch.
	Err string
}

// HistoryEntry is one appended row of the score-history log.
type HistoryEntry struct {
	Time   time.Time
	Ticker string
	Score  float64
	Signal Signal
}
