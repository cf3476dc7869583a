package strategy

import (
	"log"
	"math"

	"ReadinessScanner/internal/calculator"
	"ReadinessScanner/internal/marketdata"
	"ReadinessScanner/internal/model"
)

// BTDResult describes a buy-the-dip setup: an orderly pullback from a
// recent high inside an intact daily uptrend.
type BTDResult struct {
	Flag       bool
	Pullback   model.NullFloat
	RecentHigh model.NullFloat
}

// DetectBuyTheDip checks the daily series for a pullback between the
// configured bounds off the lookback-window high. When the uptrend gate is
// enabled, the fast EMA must sit above the slow EMA and price above the
// slow EMA, otherwise no dip qualifies. Fetch or metric failures yield an
// unflagged result rather than an error.
func DetectBuyTheDip(provider marketdata.HistoryProvider, ticker string, cfg Config) BTDResult {
	bars, err := provider.GetHistory(ticker, marketdata.TimeframeDaily)
	if err != nil {
		log.Printf("[WARN] btd %s: history fetch failed: %v", ticker, err)
		return BTDResult{}
	}
	metrics, err := calculator.ComputeTechMetrics(bars, cfg.Metrics)
	if err != nil {
		log.Printf("[WARN] btd %s: metrics failed: %v", ticker, err)
		return BTDResult{}
	}
	return detectDip(bars, metrics, cfg)
}

func detectDip(bars []model.OHLCV, metrics *model.TechMetrics, cfg Config) BTDResult {
	if len(bars) == 0 {
		return BTDResult{}
	}
	if cfg.BTDRequireDailyUptrend && !(metrics.EMACross && metrics.PriceAboveEMASlow) {
		return BTDResult{}
	}

	start := len(bars) - cfg.BTDLookbackDays
	if start < 0 {
		start = 0
	}
	high := 0.0
	for _, b := range bars[start:] {
		if b.Close > high {
			high = b.Close
		}
	}

	pullback := 0.0
	if high > 0 {
		pullback = (high - bars[len(bars)-1].Close) / high
	}
	// Flag on the raw pullback; rounding is display-only and must not pull
	// a near-miss inside the band.
	flag := pullback >= cfg.BTDMinPullback && pullback <= cfg.BTDMaxPullback

	return BTDResult{
		Flag:       flag,
		Pullback:   model.ValidFloat(math.Round(pullback*10000) / 10000),
		RecentHigh: model.ValidFloat(high),
	}
}
