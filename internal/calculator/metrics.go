package calculator

import (
	"errors"

	"ReadinessScanner/internal/model"
)

// Params are the lookback settings for technical metric extraction.
type Params struct {
	EMAFast         int
	EMASlow         int
	RSIPeriod       int
	OBVLookback     int
	VolumeSpikeMult float64
}

// DefaultParams returns the standard extraction settings.
func DefaultParams() Params {
	return Params{
		EMAFast:         20,
		EMASlow:         50,
		RSIPeriod:       14,
		OBVLookback:     14,
		VolumeSpikeMult: 1.5,
	}
}

// ComputeTechMetrics derives the full technical metrics bundle from one
// OHLCV series. A short series degrades individual features to zero/false/
// unavailable values rather than failing; only a fully empty series is an
// error.
func ComputeTechMetrics(bars []model.OHLCV, p Params) (*model.TechMetrics, error) {
	if len(bars) == 0 {
		return nil, errors.New("empty price series")
	}

	closes := make([]float64, len(bars))
	lows := make([]float64, len(bars))
	vols := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
		lows[i] = b.Low
		vols[i] = b.Volume
	}

	m := &model.TechMetrics{LastClose: closes[len(closes)-1]}

	if ema, err := CalculateEMA(closes, p.EMAFast); err == nil {
		m.EMAFast = ema
	}
	if ema, err := CalculateEMA(closes, p.EMASlow); err == nil {
		m.EMASlow = ema
	}
	m.EMACross = m.EMAFast > m.EMASlow
	m.PriceAboveEMASlow = m.LastClose > m.EMASlow

	rsiSeries := CalculateRSISeries(closes, p.RSIPeriod)
	if n := len(rsiSeries); n > 0 {
		m.RSI = rsiSeries[n-1]
		if n >= 3 && rsiSeries[n-1].Valid && rsiSeries[n-3].Valid {
			m.RSIRising = rsiSeries[n-1].Float64 > rsiSeries[n-3].Float64
		}
	}

	m.HigherLows3 = HigherLows(lows)

	obv := ComputeOBV(bars)
	m.OBVLatest = obv[len(obv)-1]
	if len(obv) >= p.OBVLookback {
		m.OBVSlope = SlopeLastN(obv, p.OBVLookback)
	}
	m.OBVSlopePos = m.OBVSlope > 0

	m.AvgVol30 = AvgVolume(vols, 30, 5)
	m.TodayVol = vols[len(vols)-1]
	todayUp := len(closes) >= 2 && closes[len(closes)-1] > closes[len(closes)-2]
	m.VolSpikeUp = m.TodayVol > p.VolumeSpikeMult*m.AvgVol30 && todayUp

	return m, nil
}
