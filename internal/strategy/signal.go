package strategy

import "ReadinessScanner/internal/model"

// BaseSignal maps the blended score onto the raw signal ladder before
// confirmation and dip refinement.
func BaseSignal(score float64) model.Signal {
	switch {
	case score >= 80:
		return model.SignalStrongBuy
	case score >= 75:
		return model.SignalBuy
	case score >= 65:
		return model.SignalWatchlist
	default:
		return model.SignalNoTrade
	}
}

// Decide refines the base signal with multi-timeframe confirmation and the
// buy-the-dip flag. An unconfirmed buy is demoted to the watchlist unless a
// qualifying dip keeps it actionable; conversely a dip can promote a sub-buy
// score into a dip entry.
func Decide(base model.Signal, mtfConfirm, buyTheDip bool, score float64) model.Signal {
	switch base {
	case model.SignalStrongBuy, model.SignalBuy:
		if mtfConfirm {
			return base
		}
		if buyTheDip && score >= 70 {
			return model.SignalBuyBTD
		}
		return model.SignalWatchlist
	case model.SignalWatchlist, model.SignalNoTrade:
		if buyTheDip && score >= 70 {
			return model.SignalBuyBTD
		}
		if buyTheDip && score >= 65 {
			return model.SignalWatchlistBTD
		}
		return base
	default:
		return base
	}
}

// StrengthFor grades the final score for display alongside the signal.
func StrengthFor(score float64) model.Strength {
	switch {
	case score >= 80:
		return model.StrengthHigh
	case score >= 75:
		return model.StrengthMedium
	case score >= 65:
		return model.StrengthLow
	default:
		return model.StrengthNone
	}
}
