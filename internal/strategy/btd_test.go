package strategy

import (
	"errors"
	"math"
	"testing"

	"ReadinessScanner/internal/marketdata"
	"ReadinessScanner/internal/model"
)

func uptrendMetrics() *model.TechMetrics {
	return &model.TechMetrics{EMACross: true, PriceAboveEMASlow: true}
}

// dipBars builds a series whose lookback-window high is `high` and whose
// last close is `last`.
func dipBars(high, last float64) []model.OHLCV {
	bars := marketdata.GenerateBars(high*0.9, 30)
	bars[len(bars)-5].Close = high
	bars[len(bars)-1].Close = last
	return bars
}

func TestDetectDip_QualifyingPullback(t *testing.T) {
	cfg := DefaultConfig()
	res := detectDip(dipBars(100, 95), uptrendMetrics(), cfg)
	if !res.Flag {
		t.Fatal("expected a 5% pullback inside an uptrend to qualify")
	}
	if !res.Pullback.Valid || math.Abs(res.Pullback.Float64-0.05) > 1e-9 {
		t.Errorf("expected pullback 0.0500, got %+v", res.Pullback)
	}
	if !res.RecentHigh.Valid || res.RecentHigh.Float64 != 100 {
		t.Errorf("expected recent high 100, got %+v", res.RecentHigh)
	}
}

func TestDetectDip_PullbackBounds(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name string
		last float64
		want bool
	}{
		{"too shallow", 99.0, false}, // 1%
		{"lower bound", 98.0, true},  // exactly 2%
		{"upper bound", 92.0, true},  // exactly 8%
		{"too deep", 90.0, false},    // 10%
		{"at the high", 100.0, false},
	}
	for _, tt := range tests {
		res := detectDip(dipBars(100, tt.last), uptrendMetrics(), cfg)
		if res.Flag != tt.want {
			t.Errorf("%s: flag = %v, want %v (pullback %+v)", tt.name, res.Flag, tt.want, res.Pullback)
		}
	}
}

func TestDetectDip_DowntrendGate(t *testing.T) {
	cfg := DefaultConfig()
	res := detectDip(dipBars(100, 95), &model.TechMetrics{}, cfg)
	if res.Flag || res.Pullback.Valid {
		t.Errorf("expected no dip outside an uptrend, got %+v", res)
	}

	cfg.BTDRequireDailyUptrend = false
	res = detectDip(dipBars(100, 95), &model.TechMetrics{}, cfg)
	if !res.Flag {
		t.Error("expected dip to qualify with the uptrend gate disabled")
	}
}

func TestDetectDip_FlagIgnoresRounding(t *testing.T) {
	cfg := DefaultConfig()

	// 1.9996% sits outside the band even though it rounds to 0.0200.
	res := detectDip(dipBars(100, 98.0004), uptrendMetrics(), cfg)
	if res.Flag {
		t.Error("raw pullback below the minimum must not qualify")
	}
	if !res.Pullback.Valid || res.Pullback.Float64 != 0.02 {
		t.Errorf("expected reported pullback 0.0200, got %+v", res.Pullback)
	}

	// 2.0004% is genuinely inside the band.
	if res := detectDip(dipBars(100, 97.9996), uptrendMetrics(), cfg); !res.Flag {
		t.Error("raw pullback above the minimum must qualify")
	}
}

func TestDetectDip_PullbackRounding(t *testing.T) {
	res := detectDip(dipBars(100, 96.543211), uptrendMetrics(), DefaultConfig())
	if !res.Pullback.Valid || math.Abs(res.Pullback.Float64-0.0346) > 1e-12 {
		t.Errorf("expected pullback rounded to 0.0346, got %+v", res.Pullback)
	}
}

func TestDetectBuyTheDip_FetchFailure(t *testing.T) {
	provider := &marketdata.MockProvider{
		HistoryErr: map[marketdata.Timeframe]error{
			marketdata.TimeframeDaily: errors.New("rate limited"),
		},
	}
	res := DetectBuyTheDip(provider, "AAPL", DefaultConfig())
	if res.Flag || res.Pullback.Valid || res.RecentHigh.Valid {
		t.Errorf("expected empty result on fetch failure, got %+v", res)
	}
}

func TestConfirmMTF(t *testing.T) {
	rising := marketdata.GenerateBars(100, 120)
	provider := &marketdata.MockProvider{
		Histories: map[marketdata.Timeframe][]model.OHLCV{
			marketdata.TimeframeDaily:    rising,
			marketdata.TimeframeFourHour: rising,
			marketdata.TimeframeHourly:   rising,
		},
	}
	res := ConfirmMTF(provider, "AAPL", DefaultConfig())
	if len(res.Details) != 3 {
		t.Fatalf("expected 3 timeframe entries, got %d", len(res.Details))
	}
	if res.PositiveCount < 2 || !res.Confirm {
		t.Errorf("expected a steady uptrend to confirm, got %+v", res)
	}
}

func TestConfirmMTF_PartialFailure(t *testing.T) {
	rising := marketdata.GenerateBars(100, 120)
	provider := &marketdata.MockProvider{
		Histories: map[marketdata.Timeframe][]model.OHLCV{
			marketdata.TimeframeDaily: rising,
		},
		HistoryErr: map[marketdata.Timeframe]error{
			marketdata.TimeframeFourHour: errors.New("boom"),
			marketdata.TimeframeHourly:   errors.New("boom"),
		},
	}
	res := ConfirmMTF(provider, "AAPL", DefaultConfig())
	if res.Confirm {
		t.Error("one positive timeframe must not confirm")
	}
	if res.PositiveCount > 1 {
		t.Errorf("expected at most one positive timeframe, got %d", res.PositiveCount)
	}
	if d, ok := res.Details[string(marketdata.TimeframeFourHour)]; !ok || d.Valid {
		t.Errorf("failed timeframe should be recorded as unavailable, got %+v", d)
	}
}
