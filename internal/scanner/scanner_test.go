package scanner

import (
	"errors"
	"path/filepath"
	"testing"

	"ReadinessScanner/internal/history"
	"ReadinessScanner/internal/marketdata"
	"ReadinessScanner/internal/model"
	"ReadinessScanner/internal/recorder"
	"ReadinessScanner/internal/report"
	"ReadinessScanner/internal/strategy"
)

func newTestScanner(p marketdata.Provider) *Scanner {
	return New(p, strategy.DefaultConfig(), history.Noop{}, report.Noop{}, recorder.NewNoopRecorder())
}

func TestAnalyzeTicker_HealthyEquity(t *testing.T) {
	provider := &marketdata.MockProvider{
		Class:      model.AssetEquity,
		SectorName: "Technology",
		Chain: &model.OptionChain{
			Expiry: "2026-09-18",
			Calls:  []model.OptionContract{{Volume: 300, OpenInterest: 900}},
			Puts:   []model.OptionContract{{Volume: 100, OpenInterest: 450}},
		},
		Info: &marketdata.FundamentalsInfo{
			ShortRatio:         model.ValidFloat(2.0),
			RecommendationMean: model.ValidFloat(2.0),
		},
		Earnings: []float64{1.0, 1.2},
	}

	rec := newTestScanner(provider).AnalyzeTicker("AAPL")
	if rec.Err != "" {
		t.Fatalf("unexpected error: %s", rec.Err)
	}
	if rec.AssetClass != model.AssetEquity || rec.Sector != "Technology" {
		t.Errorf("classification not carried: %+v", rec)
	}
	if rec.FinalScore < 0 || rec.FinalScore > 100 {
		t.Errorf("final score out of range: %.2f", rec.FinalScore)
	}
	if rec.LastClose <= 0 || rec.AvgVol30 <= 0 {
		t.Errorf("metrics extras missing: close %.2f vol %.0f", rec.LastClose, rec.AvgVol30)
	}
	if rec.OptNearestExpiry != "2026-09-18" {
		t.Errorf("expiry not carried: %q", rec.OptNearestExpiry)
	}
	if !rec.CallPutVolRatio.Valid || rec.CallPutVolRatio.Float64 != 3.0 {
		t.Errorf("call/put volume ratio = %+v, want 3.0", rec.CallPutVolRatio)
	}
	if len(rec.MTFDetails) != 3 {
		t.Errorf("expected 3 MTF detail entries, got %d", len(rec.MTFDetails))
	}
	if rec.BuySignal == "" || rec.SignalStrength == "" || rec.ScoreTrend == "" {
		t.Errorf("labels missing: %+v", rec)
	}
}

func TestAnalyzeTicker_PrimaryFetchFailure(t *testing.T) {
	provider := &marketdata.MockProvider{
		HistoryErr: map[marketdata.Timeframe]error{
			marketdata.TimeframeDaily: errors.New("provider down"),
		},
	}
	rec := newTestScanner(provider).AnalyzeTicker("AAPL")
	if rec.Err == "" {
		t.Fatal("expected error field on primary fetch failure")
	}
	if rec.FinalScore != 0 || rec.BuySignal != "" {
		t.Errorf("errored record must carry no score: %+v", rec)
	}
}

func TestAnalyzeTicker_IndexChainFeedsInstitutionalProxy(t *testing.T) {
	withChain := &marketdata.MockProvider{
		Class: model.AssetIndex,
		Chain: &model.OptionChain{
			Expiry: "2026-09-18",
			Calls:  []model.OptionContract{{Volume: 500}},
			Puts:   []model.OptionContract{{Volume: 100}},
		},
	}
	withoutChain := &marketdata.MockProvider{Class: model.AssetIndex}

	got := newTestScanner(withChain).AnalyzeTicker("^GSPC")
	bare := newTestScanner(withoutChain).AnalyzeTicker("^GSPC")

	if !got.CallPutVolRatio.Valid || got.CallPutVolRatio.Float64 != 5.0 {
		t.Errorf("call/put volume ratio = %+v, want 5.0", got.CallPutVolRatio)
	}
	if got.OptNearestExpiry != "2026-09-18" {
		t.Errorf("expiry not carried for index chain: %q", got.OptNearestExpiry)
	}
	// The flow subscore stays class-gated, but the institutional proxy
	// reads the listed chain.
	if got.FlowSubscore != bare.FlowSubscore {
		t.Errorf("flow subscore moved with the chain: %.2f vs %.2f", got.FlowSubscore, bare.FlowSubscore)
	}
	if got.InstFlowProxy <= bare.InstFlowProxy {
		t.Errorf("bullish chain should lift the institutional proxy: %.2f vs %.2f",
			got.InstFlowProxy, bare.InstFlowProxy)
	}
}

func TestAnalyzeTicker_IdenticalInputsIdenticalScore(t *testing.T) {
	provider := &marketdata.MockProvider{
		Histories: map[marketdata.Timeframe][]model.OHLCV{
			marketdata.TimeframeDaily:    marketdata.GenerateBars(100, 120),
			marketdata.TimeframeFourHour: marketdata.GenerateBars(100, 120),
			marketdata.TimeframeHourly:   marketdata.GenerateBars(100, 120),
		},
	}
	s := newTestScanner(provider)
	first := s.AnalyzeTicker("AAPL")
	second := s.AnalyzeTicker("AAPL")
	if first.FinalScore != second.FinalScore || first.BuySignal != second.BuySignal {
		t.Errorf("pipeline not deterministic: %.2f/%s vs %.2f/%s",
			first.FinalScore, first.BuySignal, second.FinalScore, second.BuySignal)
	}
}

func TestAnalyzeTicker_TrendReflectsPriorRunsOnly(t *testing.T) {
	store, err := history.NewCSVStore(filepath.Join(t.TempDir(), "history.csv"))
	if err != nil {
		t.Fatalf("NewCSVStore: %v", err)
	}
	defer store.Close()
	s := New(&marketdata.MockProvider{}, strategy.DefaultConfig(), store, report.Noop{}, recorder.NewNoopRecorder())

	if rec := s.AnalyzeTicker("AAPL"); rec.ScoreTrend != model.TrendNA {
		t.Errorf("first scan trend = %s, want N/A", rec.ScoreTrend)
	}
	// One prior entry is still below the two the trend needs.
	if rec := s.AnalyzeTicker("AAPL"); rec.ScoreTrend != model.TrendNA {
		t.Errorf("second scan trend = %s, want N/A", rec.ScoreTrend)
	}
	// Identical inputs score identically, so two prior entries read FLAT.
	if rec := s.AnalyzeTicker("AAPL"); rec.ScoreTrend != model.TrendFlat {
		t.Errorf("third scan trend = %s, want FLAT", rec.ScoreTrend)
	}
}

func TestRun_SortsAndIsolatesFailures(t *testing.T) {
	healthy := &marketdata.MockProvider{}
	s := newTestScanner(&failingFor{Provider: healthy, ticker: "BAD"})

	records, err := s.Run([]string{"BAD", "AAPL", "MSFT"}, report.Groups{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[len(records)-1].Ticker != "BAD" {
		t.Errorf("errored record should sort last, got order %v",
			[]string{records[0].Ticker, records[1].Ticker, records[2].Ticker})
	}
	for _, r := range records[:2] {
		if r.Err != "" {
			t.Errorf("healthy ticker %s contaminated by failure: %s", r.Ticker, r.Err)
		}
	}
}

// failingFor wraps a provider and fails the daily fetch for one ticker.
type failingFor struct {
	marketdata.Provider
	ticker string
}

func (f *failingFor) GetHistory(ticker string, tf marketdata.Timeframe) ([]model.OHLCV, error) {
	if ticker == f.ticker && tf == marketdata.TimeframeDaily {
		return nil, errors.New("simulated outage")
	}
	return f.Provider.GetHistory(ticker, tf)
}
