// Package history persists per-ticker score history and derives the
// short-horizon score trend from it.
package history

import (
	"time"

	"ReadinessScanner/internal/model"
)

// Store appends scan results and serves recent scores back for trend
// analysis.
type Store interface {
	Append(entry model.HistoryEntry) error
	// RecentScores returns up to lookback most recent scores for the
	// ticker, oldest first.
	RecentScores(ticker string, lookback int) ([]float64, error)
	Close() error
}

// trendLookback is the number of recent scans compared when labeling the
// score trend.
const trendLookback = 3

// Trend labels the score direction: the latest score against the mean of
// the prior ones. Fewer than two observations cannot establish a
// direction.
func Trend(scores []float64) model.Trend {
	if len(scores) < 2 {
		return model.TrendNA
	}
	latest := scores[len(scores)-1]
	prior := scores[:len(scores)-1]
	sum := 0.0
	for _, s := range prior {
		sum += s
	}
	mean := sum / float64(len(prior))
	switch {
	case latest > mean:
		return model.TrendRising
	case latest < mean:
		return model.TrendFalling
	default:
		return model.TrendFlat
	}
}

// TrendFor reads the store and labels the ticker's current trend. Storage
// errors degrade to N/A rather than failing the scan.
func TrendFor(store Store, ticker string) model.Trend {
	scores, err := store.RecentScores(ticker, trendLookback)
	if err != nil {
		return model.TrendNA
	}
	return Trend(scores)
}

// Noop discards history; used when history persistence is disabled.
type Noop struct{}

func (Noop) Append(model.HistoryEntry) error             { return nil }
func (Noop) RecentScores(string, int) ([]float64, error) { return nil, nil }
func (Noop) Close() error                                { return nil }

var _ Store = Noop{}

func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
