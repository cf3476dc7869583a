package strategy

import (
	"log"

	"ReadinessScanner/internal/calculator"
	"ReadinessScanner/internal/marketdata"
	"ReadinessScanner/internal/model"
)

// MTFResult is the multi-timeframe momentum confirmation outcome.
type MTFResult struct {
	PositiveCount int
	Confirm       bool
	// Details maps each timeframe to its price momentum score; a failed
	// timeframe is recorded as unavailable.
	Details map[string]model.NullFloat
}

// ConfirmMTF scores price momentum independently on the daily, 4-hour and
// hourly series and confirms when enough timeframes clear the positive
// threshold. A timeframe whose data cannot be fetched or scored simply does
// not count toward confirmation.
func ConfirmMTF(provider marketdata.HistoryProvider, ticker string, cfg Config) MTFResult {
	res := MTFResult{Details: make(map[string]model.NullFloat, len(marketdata.MTFTimeframes))}
	for _, tf := range marketdata.MTFTimeframes {
		bars, err := provider.GetHistory(ticker, tf)
		if err != nil {
			log.Printf("[WARN] mtf %s %s: history fetch failed: %v", ticker, tf, err)
			res.Details[string(tf)] = model.NullFloat{}
			continue
		}
		metrics, err := calculator.ComputeTechMetrics(bars, cfg.Metrics)
		if err != nil {
			log.Printf("[WARN] mtf %s %s: metrics failed: %v", ticker, tf, err)
			res.Details[string(tf)] = model.NullFloat{}
			continue
		}
		score := ScorePriceMomentum(metrics)
		res.Details[string(tf)] = model.ValidFloat(score)
		if score >= cfg.MTFPositiveScore {
			res.PositiveCount++
		}
	}
	res.Confirm = res.PositiveCount >= cfg.MTFConfirmThreshold
	return res
}
