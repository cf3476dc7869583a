// Package universe builds the ticker list a scan runs over: a static
// cross-asset baseline plus optional index constituent lists scraped from
// Wikipedia.
package universe

// DefaultTickers is the baseline cross-asset watchlist scanned when no
// explicit ticker list is configured. Yahoo-style suffixes select the asset
// class: =X currency, =F commodity future, -USD crypto, ^ index.
var DefaultTickers = []string{
	// megacap equities
	"AAPL", "MSFT", "NVDA", "AMZN", "GOOGL", "META", "TSLA", "AMD",
	"AVGO", "JPM", "XOM", "UNH", "LLY", "COST",
	// broad ETFs
	"SPY", "QQQ", "IWM", "DIA", "GLD", "XLE", "XLF", "XLK",
	// indices
	"^GSPC", "^NDX", "^DJI", "^VIX",
	// commodities
	"GC=F", "SI=F", "CL=F", "NG=F",
	// crypto
	"BTC-USD", "ETH-USD", "SOL-USD",
	// forex
	"EURUSD=X", "JPY=X", "GBPUSD=X",
}

// DOW30 is a static membership list; the Dow changes rarely enough that a
// scrape is not worth the fragility.
var DOW30 = []string{
	"AAPL", "AMGN", "AXP", "BA", "CAT", "CRM", "CSCO", "CVX", "DIS", "DOW",
	"GS", "HD", "HON", "IBM", "INTC", "JNJ", "JPM", "KO", "MCD", "MMM",
	"MRK", "MSFT", "NKE", "PG", "TRV", "UNH", "V", "VZ", "WBA", "WMT",
}

// Fallback constituent lists used when the Wikipedia scrape fails.
var (
	sp500Fallback  = []string{"AAPL", "MSFT", "AMZN", "GOOGL", "META"}
	nas100Fallback = []string{"AAPL", "MSFT", "NVDA", "TSLA", "AMZN", "META", "GOOGL", "PEP", "AVGO", "ADBE"}
)

// Dedupe removes repeated tickers while preserving first-seen order.
func Dedupe(tickers []string) []string {
	seen := make(map[string]struct{}, len(tickers))
	out := make([]string, 0, len(tickers))
	for _, t := range tickers {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
