package history

import (
	"path/filepath"
	"testing"
	"time"

	"ReadinessScanner/internal/model"
)

func TestTrend(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   model.Trend
	}{
		{"empty", nil, model.TrendNA},
		{"single score", []float64{70}, model.TrendNA},
		{"rising", []float64{60, 62, 70}, model.TrendRising},
		{"falling", []float64{70, 68, 60}, model.TrendFalling},
		{"flat", []float64{65, 65, 65}, model.TrendFlat},
		{"two rising", []float64{60, 61}, model.TrendRising},
	}
	for _, tt := range tests {
		if got := Trend(tt.scores); got != tt.want {
			t.Errorf("%s: Trend = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestCSVStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	store, err := NewCSVStore(path)
	if err != nil {
		t.Fatalf("NewCSVStore: %v", err)
	}

	base := time.Date(2026, 8, 20, 16, 30, 0, 0, time.UTC)
	entries := []model.HistoryEntry{
		{Time: base, Ticker: "AAPL", Score: 61.25, Signal: model.SignalNoTrade},
		{Time: base.AddDate(0, 0, 1), Ticker: "MSFT", Score: 82.0, Signal: model.SignalStrongBuy},
		{Time: base.AddDate(0, 0, 1), Ticker: "AAPL", Score: 66.5, Signal: model.SignalWatchlist},
		{Time: base.AddDate(0, 0, 2), Ticker: "AAPL", Score: 71.0, Signal: model.SignalBuy},
	}
	for _, e := range entries {
		if err := store.Append(e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	scores, err := store.RecentScores("AAPL", 3)
	if err != nil {
		t.Fatalf("RecentScores: %v", err)
	}
	want := []float64{61.25, 66.5, 71.0}
	if len(scores) != len(want) {
		t.Fatalf("expected %d scores, got %d", len(want), len(scores))
	}
	for i := range want {
		if scores[i] != want[i] {
			t.Errorf("score[%d] = %.2f, want %.2f", i, scores[i], want[i])
		}
	}

	if got := TrendFor(store, "AAPL"); got != model.TrendRising {
		t.Errorf("expected RISING trend, got %s", got)
	}
	if got := TrendFor(store, "TSLA"); got != model.TrendNA {
		t.Errorf("expected N/A trend for unseen ticker, got %s", got)
	}
}

func TestCSVStoreLookbackWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	store, err := NewCSVStore(path)
	if err != nil {
		t.Fatalf("NewCSVStore: %v", err)
	}
	for i := 0; i < 6; i++ {
		e := Entry("NVDA", float64(50+i), model.SignalNoTrade)
		if err := store.Append(e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	scores, err := store.RecentScores("NVDA", 3)
	if err != nil {
		t.Fatalf("RecentScores: %v", err)
	}
	if len(scores) != 3 || scores[0] != 53 || scores[2] != 55 {
		t.Errorf("expected last three scores [53 54 55], got %v", scores)
	}
}

func TestCSVStoreKeepsFullPrecision(t *testing.T) {
	store, err := NewCSVStore(filepath.Join(t.TempDir(), "history.csv"))
	if err != nil {
		t.Fatalf("NewCSVStore: %v", err)
	}
	if err := store.Append(Entry("AAPL", 66.123456, model.SignalWatchlist)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	scores, err := store.RecentScores("AAPL", 0)
	if err != nil {
		t.Fatalf("RecentScores: %v", err)
	}
	if len(scores) != 1 || scores[0] != 66.123456 {
		t.Errorf("expected score to survive unrounded, got %v", scores)
	}
}

func TestCSVStoreReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	store, err := NewCSVStore(path)
	if err != nil {
		t.Fatalf("NewCSVStore: %v", err)
	}
	if err := store.Append(Entry("AMD", 64.0, model.SignalNoTrade)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	reopened, err := NewCSVStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	scores, err := reopened.RecentScores("AMD", 0)
	if err != nil {
		t.Fatalf("RecentScores: %v", err)
	}
	if len(scores) != 1 || scores[0] != 64.0 {
		t.Errorf("expected surviving row [64], got %v", scores)
	}
}
