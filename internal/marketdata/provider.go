package marketdata

import "ReadinessScanner/internal/model"

// Timeframe identifies a bar granularity for history requests.
type Timeframe string

const (
	TimeframeDaily    Timeframe = "1d"
	TimeframeFourHour Timeframe = "4h"
	TimeframeHourly   Timeframe = "1h"
)

// MTFTimeframes is the fixed timeframe set scanned by the multi-timeframe
// confirmation engine, in display order.
var MTFTimeframes = []Timeframe{TimeframeDaily, TimeframeFourHour, TimeframeHourly}

// HistoryProvider fetches OHLCV history at a given granularity. Rows are
// chronologically ordered and always carry a close; volume may be 0.
type HistoryProvider interface {
	GetHistory(ticker string, tf Timeframe) ([]model.OHLCV, error)
}

// OptionChainProvider fetches the option chain for the nearest expiry. A
// ticker without listed options yields a nil chain, not an error.
type OptionChainProvider interface {
	GetNearestExpiryChain(ticker string) (*model.OptionChain, error)
}

// FundamentalsInfo is the summary snapshot used by the fundamentals scorer
// and the sector classifier. Any field may be unavailable.
type FundamentalsInfo struct {
	ShortRatio         model.NullFloat
	RecommendationMean model.NullFloat
	Sector             string
	Industry           string
}

// FundamentalsProvider fetches summary info and quarterly earnings history.
type FundamentalsProvider interface {
	GetInfo(ticker string) (*FundamentalsInfo, error)
	GetQuarterlyEarnings(ticker string) ([]float64, error)
}

// Classifier assigns the asset class and sector for a ticker.
type Classifier interface {
	Classify(ticker string) model.AssetClass
	Sector(ticker string, class model.AssetClass) string
}

// Provider bundles all market-data collaborators behind one implementation.
type Provider interface {
	HistoryProvider
	OptionChainProvider
	FundamentalsProvider
	Classifier
	Name() string
}
