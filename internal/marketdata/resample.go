package marketdata

import (
	"time"

	"ReadinessScanner/internal/model"
)

// resampleTo4H aggregates chronologically ordered hourly bars into 4-hour
// buckets (open=first, high=max, low=min, close=last, volume=sum). Yahoo
// has no native 4h interval, so the 4h timeframe is synthesized this way.
func resampleTo4H(hourly []model.OHLCV) []model.OHLCV {
	if len(hourly) == 0 {
		return nil
	}

	bucket := 4 * time.Hour
	var out []model.OHLCV
	var cur model.OHLCV
	var curStart time.Time
	started := false

	for _, b := range hourly {
		start := b.Time.Truncate(bucket)
		if !started || !start.Equal(curStart) {
			if started {
				out = append(out, cur)
			}
			cur = model.OHLCV{
				Time: start, Open: b.Open, High: b.High,
				Low: b.Low, Close: b.Close, Volume: b.Volume,
			}
			curStart = start
			started = true
			continue
		}
		if b.High > cur.High {
			cur.High = b.High
		}
		if b.Low < cur.Low {
			cur.Low = b.Low
		}
		cur.Close = b.Close
		cur.Volume += b.Volume
	}
	out = append(out, cur)
	return out
}
