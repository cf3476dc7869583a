package report

import (
	"fmt"
	"strings"

	"ReadinessScanner/internal/model"
)

// FormatTopN renders the head of the score-sorted record list as a fixed
// width console table.
func FormatTopN(records []model.Record, n int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Top %d by readiness:\n", n))
	b.WriteString(fmt.Sprintf("%-10s %-14s %-22s %7s  %-15s %-5s %-5s %s\n",
		"TICKER", "CLASS", "SECTOR", "SCORE", "SIGNAL", "MTF", "BTD", "TREND"))

	count := 0
	for _, r := range records {
		if count >= n {
			break
		}
		if r.Err != "" {
			b.WriteString(fmt.Sprintf("%-10s %-14s %-22s %7s  fetch error: %s\n",
				r.Ticker, "-", "-", "-", r.Err))
			count++
			continue
		}
		b.WriteString(fmt.Sprintf("%-10s %-14s %-22s %7.2f  %-15s %-5v %-5v %s\n",
			r.Ticker, r.AssetClass, truncate(r.Sector, 22), r.FinalScore,
			r.BuySignal, r.MTFConfirm, r.BuyTheDip, r.ScoreTrend))
		count++
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
