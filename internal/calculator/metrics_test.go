package calculator

import (
	"testing"

	"ReadinessScanner/internal/model"
)

func TestComputeTechMetrics_EmptySeries(t *testing.T) {
	if _, err := ComputeTechMetrics(nil, DefaultParams()); err == nil {
		t.Error("expected error for empty series")
	}
}

func TestComputeTechMetrics_TwoRowSeries(t *testing.T) {
	// Far too short for the 50-bar slow EMA, but extraction must still
	// succeed with seeded EMAs and unavailable RSI.
	bars := []model.OHLCV{
		{Close: 100, Low: 99, Volume: 1000},
		{Close: 102, Low: 100, Volume: 2000},
	}
	m, err := ComputeTechMetrics(bars, DefaultParams())
	if err != nil {
		t.Fatalf("ComputeTechMetrics: %v", err)
	}
	if m.LastClose != 102 {
		t.Errorf("last close = %.1f", m.LastClose)
	}
	if m.EMAFast == 0 || m.EMASlow == 0 {
		t.Errorf("EMAs should be seeded, got %.2f / %.2f", m.EMAFast, m.EMASlow)
	}
	if m.RSI.Valid {
		t.Errorf("RSI should be unavailable on 2 rows, got %+v", m.RSI)
	}
	if m.HigherLows3 {
		t.Error("two lows cannot form three higher lows")
	}
}

func TestComputeTechMetrics_VolumeSpike(t *testing.T) {
	bars := make([]model.OHLCV, 40)
	for i := range bars {
		bars[i] = model.OHLCV{Close: 100, Low: 99, Volume: 1000}
	}
	// Spike volume on an up close.
	bars[39].Close = 101
	bars[39].Volume = 5000

	m, err := ComputeTechMetrics(bars, DefaultParams())
	if err != nil {
		t.Fatalf("ComputeTechMetrics: %v", err)
	}
	if !m.VolSpikeUp {
		t.Errorf("expected volume spike: today %.0f avg %.0f", m.TodayVol, m.AvgVol30)
	}

	// Same volume spike on a down close must not flag.
	bars[39].Close = 99
	m, _ = ComputeTechMetrics(bars, DefaultParams())
	if m.VolSpikeUp {
		t.Error("down close must not count as an up spike")
	}
}

func TestReduceChain(t *testing.T) {
	empty := ReduceChain(nil)
	if empty.NearestExpiry != "" || empty.CallPutVolRatio.Valid || empty.CallVolSum.Valid {
		t.Errorf("nil chain should reduce to all-unavailable, got %+v", empty)
	}

	chain := &model.OptionChain{
		Expiry: "2026-09-18",
		Calls: []model.OptionContract{
			{Volume: 100, OpenInterest: 500},
			{Volume: 200, OpenInterest: 300},
		},
		Puts: []model.OptionContract{
			{Volume: 150, OpenInterest: 400},
		},
	}
	flow := ReduceChain(chain)
	if flow.NearestExpiry != "2026-09-18" {
		t.Errorf("expiry = %q", flow.NearestExpiry)
	}
	if !flow.CallPutVolRatio.Valid || flow.CallPutVolRatio.Float64 != 2.0 {
		t.Errorf("vol ratio = %+v, want 2.0", flow.CallPutVolRatio)
	}
	if !flow.CallPutOIRatio.Valid || flow.CallPutOIRatio.Float64 != 2.0 {
		t.Errorf("oi ratio = %+v, want 2.0", flow.CallPutOIRatio)
	}

	// Zero put side: sums available, ratios not.
	oneSided := ReduceChain(&model.OptionChain{
		Expiry: "2026-09-18",
		Calls:  []model.OptionContract{{Volume: 100, OpenInterest: 100}},
	})
	if !oneSided.PutVolSum.Valid || oneSided.PutVolSum.Float64 != 0 {
		t.Errorf("put volume sum = %+v, want valid 0", oneSided.PutVolSum)
	}
	if oneSided.CallPutVolRatio.Valid || oneSided.CallPutOIRatio.Valid {
		t.Errorf("zero denominators must leave ratios unavailable: %+v", oneSided)
	}
}
