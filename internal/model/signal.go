package model

// Signal is a display label produced by the decision engine.
type Signal string

const (
	SignalStrongBuy    Signal = "STRONG BUY"
	SignalBuy          Signal = "BUY"
	SignalBuyBTD       Signal = "BUY (BTD)"
	SignalWatchlist    Signal = "WATCHLIST"
	SignalWatchlistBTD Signal = "WATCHLIST (BTD)"
	SignalNoTrade      Signal = "NO TRADE"
)

// Strength is the score-banded signal strength label, independent of the
// BTD/MTF refinement applied to the signal itself.
type Strength string

const (
	StrengthHigh   Strength = "High"
	StrengthMedium Strength = "Medium"
	StrengthLow    Strength = "Low"
	StrengthNone   Strength = "None"
)

// Trend describes the recent direction of a ticker's score history.
type Trend string

const (
	TrendRising  Trend = "RISING"
	TrendFalling Trend = "FALLING"
	TrendFlat    Trend = "FLAT"
	TrendNA      Trend = "N/A"
)
