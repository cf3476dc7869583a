// Package scanner sequences the full analysis pipeline: metrics extraction,
// sub-scores, blending, confirmation, signal decision, persistence.
package scanner

import (
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"ReadinessScanner/internal/calculator"
	"ReadinessScanner/internal/history"
	"ReadinessScanner/internal/marketdata"
	"ReadinessScanner/internal/model"
	"ReadinessScanner/internal/recorder"
	"ReadinessScanner/internal/report"
	"ReadinessScanner/internal/strategy"
)

// Scanner runs the readiness analysis over a ticker universe.
type Scanner struct {
	provider marketdata.Provider
	cfg      strategy.Config
	history  history.Store
	writer   report.Writer
	recorder recorder.Recorder
	topN     int
}

func New(provider marketdata.Provider, cfg strategy.Config, store history.Store, writer report.Writer, rec recorder.Recorder) *Scanner {
	return &Scanner{
		provider: provider,
		cfg:      cfg,
		history:  store,
		writer:   writer,
		recorder: rec,
		topN:     20,
	}
}

// AnalyzeTicker produces the complete record for one instrument. Every
// failure below the primary daily-history fetch degrades to a neutral or
// unavailable value; only that primary fetch aborts the ticker, and then
// only by setting the record's Err field.
func (s *Scanner) AnalyzeTicker(ticker string) model.Record {
	class := s.provider.Classify(ticker)
	sector := s.provider.Sector(ticker, class)
	rec := model.Record{Ticker: ticker, AssetClass: class, Sector: sector}

	bars, err := s.provider.GetHistory(ticker, marketdata.TimeframeDaily)
	if err != nil {
		rec.Err = err.Error()
		return rec
	}
	metrics, err := calculator.ComputeTechMetrics(bars, s.cfg.Metrics)
	if err != nil {
		rec.Err = err.Error()
		return rec
	}

	flow := s.optionFlow(ticker)

	priceScore := strategy.ScorePriceMomentum(metrics)
	flowScore := strategy.ScoreVolumeFlow(metrics, flow, class)
	fundScore := s.fundamentalsScore(ticker, class)
	instScore := strategy.ScoreInstitutionalFlow(metrics, flow)

	final := strategy.BlendScores(class, s.cfg.InstFlowWeight,
		priceScore, flowScore, fundScore, model.ValidFloat(instScore))

	mtf := strategy.ConfirmMTF(s.provider, ticker, s.cfg)
	btd := strategy.DetectBuyTheDip(s.provider, ticker, s.cfg)

	base := strategy.BaseSignal(final)
	signal := strategy.Decide(base, mtf.Confirm, btd.Flag, final)

	// Trend reflects prior runs only, so read it before appending this one.
	trend := history.TrendFor(s.history, ticker)
	if err := s.history.Append(history.Entry(ticker, final, signal)); err != nil {
		log.Printf("[WARN] history append failed for %s: %v", ticker, err)
	}

	rec.PriceSubscore = round2(priceScore)
	rec.FlowSubscore = round2(flowScore)
	rec.FundSubscore = round2(fundScore.Or(50.0))
	rec.InstFlowProxy = round2(instScore)
	rec.FinalScore = round2(final)
	rec.BuySignal = signal
	rec.SignalStrength = strategy.StrengthFor(final)
	rec.ScoreTrend = trend
	rec.MTFPositiveCount = mtf.PositiveCount
	rec.MTFConfirm = mtf.Confirm
	rec.MTFDetails = mtf.Details
	rec.BuyTheDip = btd.Flag
	rec.BTDPullbackPct = btd.Pullback
	rec.BTDRecentHigh = btd.RecentHigh
	rec.LastClose = metrics.LastClose
	rec.AvgVol30 = metrics.AvgVol30
	rec.OptNearestExpiry = flow.NearestExpiry
	rec.CallPutVolRatio = flow.CallPutVolRatio
	return rec
}

// optionFlow fetches and reduces the nearest-expiry chain. The fetch runs
// for every class: the flow scorer applies the no-options class gate itself,
// while the institutional proxy reads the ratios whenever a chain is listed.
func (s *Scanner) optionFlow(ticker string) model.OptionFlow {
	chain, err := s.provider.GetNearestExpiryChain(ticker)
	if err != nil {
		log.Printf("[WARN] option chain fetch failed for %s: %v", ticker, err)
		return calculator.ReduceChain(nil)
	}
	return calculator.ReduceChain(chain)
}

// fundamentalsScore is only computed for classes that weight it; fetch
// failures degrade to unavailable inputs inside the scorer.
func (s *Scanner) fundamentalsScore(ticker string, class model.AssetClass) model.NullFloat {
	if strategy.BaseWeightsFor(class).Fund <= 0 {
		return model.NullFloat{}
	}

	var short, recMean model.NullFloat
	info, err := s.provider.GetInfo(ticker)
	if err != nil {
		log.Printf("[WARN] fundamentals info fetch failed for %s: %v", ticker, err)
	} else if info != nil {
		short = info.ShortRatio
		recMean = info.RecommendationMean
	}

	earnings, err := s.provider.GetQuarterlyEarnings(ticker)
	if err != nil {
		log.Printf("[WARN] quarterly earnings fetch failed for %s: %v", ticker, err)
		earnings = nil
	}

	return model.ValidFloat(strategy.ScoreFundamentals(short, recMean, earnings))
}

// Run analyzes the whole universe sequentially, sorts by final score,
// writes the report and archives the snapshot. One ticker's failure never
// affects another.
func (s *Scanner) Run(tickers []string, groups report.Groups) ([]model.Record, error) {
	start := time.Now()
	log.Printf("[INFO] scan started: %d tickers", len(tickers))

	records := make([]model.Record, 0, len(tickers))
	for _, t := range tickers {
		log.Printf("[INFO] analyzing %s", t)
		records = append(records, s.AnalyzeTicker(t))
	}

	sort.SliceStable(records, func(i, j int) bool {
		// Errored records carry no score and sink to the bottom.
		if (records[i].Err == "") != (records[j].Err == "") {
			return records[i].Err == ""
		}
		return records[i].FinalScore > records[j].FinalScore
	})

	if err := s.writer.Write(records, groups); err != nil {
		log.Printf("[ERROR] report write failed: %v", err)
	}
	fmt.Print(report.FormatTopN(records, s.topN))

	snap := &recorder.ScanSnapshot{
		StartedAt:    start,
		Duration:     time.Since(start),
		UniverseSize: len(tickers),
		Records:      records,
	}
	if err := s.recorder.RecordScan(snap); err != nil {
		log.Printf("[ERROR] scan archive failed: %v", err)
	}

	log.Printf("[INFO] scan finished in %s", time.Since(start).Round(time.Millisecond))
	return records, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
