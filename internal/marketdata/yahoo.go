package marketdata

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"ReadinessScanner/internal/model"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/options"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

func decToFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// history windows per timeframe, mirroring the provider's interval limits.
const (
	dailyWindowDays    = 180
	fourHourWindowDays = 120
	hourlyWindowDays   = 60
)

// YahooProvider implements Provider on top of Yahoo Finance: the chart and
// options endpoints via finance-go, and the quoteSummary endpoint for
// fundamentals.
type YahooProvider struct {
	fundamentals *fundamentalsClient
}

// NewYahooProvider creates a Yahoo-backed provider with optional proxy
// support for the fundamentals HTTP client.
func NewYahooProvider(proxyURL string) *YahooProvider {
	return &YahooProvider{fundamentals: newFundamentalsClient(proxyURL)}
}

func (p *YahooProvider) Name() string { return "yahoo" }

// GetHistory fetches bars at the requested granularity. The 4h timeframe is
// synthesized from hourly bars since Yahoo offers no native 4h interval.
func (p *YahooProvider) GetHistory(ticker string, tf Timeframe) ([]model.OHLCV, error) {
	switch tf {
	case TimeframeDaily:
		return p.fetchChart(ticker, datetime.OneDay, dailyWindowDays)
	case TimeframeFourHour:
		hourly, err := p.fetchChart(ticker, datetime.OneHour, fourHourWindowDays)
		if err != nil {
			return nil, err
		}
		return resampleTo4H(hourly), nil
	case TimeframeHourly:
		return p.fetchChart(ticker, datetime.OneHour, hourlyWindowDays)
	default:
		return nil, fmt.Errorf("unsupported timeframe %q", tf)
	}
}

func (p *YahooProvider) fetchChart(ticker string, interval datetime.Interval, days int) ([]model.OHLCV, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	iter := chart.Get(&chart.Params{
		Symbol:   ticker,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: interval,
	})

	var bars []model.OHLCV
	for iter.Next() {
		b := iter.Bar()
		o := decToFloat(b.Open)
		h := decToFloat(b.High)
		l := decToFloat(b.Low)
		c := decToFloat(b.Close)
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // null bars (holidays etc.)
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(int64(b.Timestamp), 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: float64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("yahoo chart %s %s: %w", ticker, interval, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: no data returned", ticker)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

// GetNearestExpiryChain fetches the option chain for the nearest expiry.
// Tickers without listed options yield a nil chain and no error.
func (p *YahooProvider) GetNearestExpiryChain(ticker string) (*model.OptionChain, error) {
	iter := options.GetStraddleP(&options.Params{UnderlyingSymbol: ticker})

	chain := &model.OptionChain{}
	for iter.Next() {
		s := iter.Straddle()
		if s.Call != nil {
			chain.Calls = append(chain.Calls, model.OptionContract{
				Volume:       float64(s.Call.Volume),
				OpenInterest: float64(s.Call.OpenInterest),
			})
		}
		if s.Put != nil {
			chain.Puts = append(chain.Puts, model.OptionContract{
				Volume:       float64(s.Put.Volume),
				OpenInterest: float64(s.Put.OpenInterest),
			})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, nil // no chain available; scorers fall back to neutral
	}
	if len(chain.Calls) == 0 && len(chain.Puts) == 0 {
		return nil, nil
	}
	if exp := iter.Meta().ExpirationDate; exp > 0 {
		chain.Expiry = time.Unix(int64(exp), 0).UTC().Format("2006-01-02")
	}
	return chain, nil
}

// GetInfo returns the fundamentals summary snapshot.
func (p *YahooProvider) GetInfo(ticker string) (*FundamentalsInfo, error) {
	return p.fundamentals.getInfo(ticker)
}

// GetQuarterlyEarnings returns the chronological quarterly earnings values.
func (p *YahooProvider) GetQuarterlyEarnings(ticker string) ([]float64, error) {
	return p.fundamentals.getQuarterlyEarnings(ticker)
}

// Classify maps a ticker to its asset class: symbol-suffix heuristics first,
// then the quote type reported by the provider.
func (p *YahooProvider) Classify(ticker string) model.AssetClass {
	switch {
	case strings.HasSuffix(ticker, "=X"):
		return model.AssetCurrency
	case strings.HasSuffix(ticker, "=F"), strings.HasSuffix(ticker, "=f"):
		return model.AssetCommodity
	case strings.HasSuffix(ticker, "-USD"):
		return model.AssetCrypto
	case strings.HasPrefix(ticker, "^"):
		return model.AssetIndex
	}

	q, err := quote.Get(ticker)
	if err != nil || q == nil {
		return model.AssetUnknown
	}
	switch strings.ToUpper(string(q.QuoteType)) {
	case "EQUITY", "STOCK":
		return model.AssetEquity
	case "ETF":
		return model.AssetETF
	case "INDEX":
		return model.AssetIndex
	case "CURRENCY", "CURRENCYPAIR":
		return model.AssetCurrency
	case "CRYPTOCURRENCY", "CRYPTO":
		return model.AssetCrypto
	case "FUTURE", "COMMODITY":
		return model.AssetCommodity
	}
	return model.AssetUnknown
}

// Sector returns a display sector for the ticker. Non-equity classes map to
// fixed labels; equities and ETFs use the provider's profile data.
func (p *YahooProvider) Sector(ticker string, class model.AssetClass) string {
	switch class {
	case model.AssetIndex:
		return "Index"
	case model.AssetCommodity:
		return "Commodities"
	case model.AssetCrypto:
		return "Digital Assets"
	case model.AssetCurrency:
		return "Forex"
	}

	info, err := p.fundamentals.getInfo(ticker)
	if err != nil || info == nil {
		return "Unknown"
	}
	if s := strings.TrimSpace(info.Sector); s != "" {
		return s
	}
	if s := strings.TrimSpace(info.Industry); s != "" {
		return s
	}
	return "Unknown"
}
