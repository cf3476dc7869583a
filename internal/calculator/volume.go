package calculator

// AvgVolume computes the trailing mean of the last `window` volumes. At
// least minPeriods points are required for the windowed mean; with fewer
// points the full-series mean is used, and an empty series yields 0.
func AvgVolume(vols []float64, window, minPeriods int) float64 {
	if len(vols) == 0 {
		return 0
	}
	if len(vols) < minPeriods {
		return mean(vols)
	}
	if len(vols) > window {
		vols = vols[len(vols)-window:]
	}
	return mean(vols)
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// HigherLows reports whether the last 3 of the most recent 5 lows are
// strictly increasing. Fewer than 3 lows yields false.
func HigherLows(lows []float64) bool {
	if len(lows) > 5 {
		lows = lows[len(lows)-5:]
	}
	n := len(lows)
	if n < 3 {
		return false
	}
	return lows[n-1] > lows[n-2] && lows[n-2] > lows[n-3]
}
