package model

// AssetClass is the closed set of instrument categories. The class selects
// the score weight configuration and is assigned once per ticker at the
// start of analysis.
type AssetClass string

const (
	AssetEquity    AssetClass = "EQUITY"
	AssetETF       AssetClass = "ETF"
	AssetIndex     AssetClass = "INDEX"
	AssetCommodity AssetClass = "COMMODITY"
	AssetCrypto    AssetClass = "CRYPTOCURRENCY"
	AssetCurrency  AssetClass = "CURRENCY"
	AssetUnknown   AssetClass = "UNKNOWN"
)

// AllAssetClasses lists every class, in report ordering.
var AllAssetClasses = []AssetClass{
	AssetEquity, AssetETF, AssetIndex, AssetCommodity,
	AssetCrypto, AssetCurrency, AssetUnknown,
}

// HasSingleNameOptions reports whether the class has a meaningful
// single-name options market. Classes without one get neutral option-flow
// terms in the volume/flow score.
func (c AssetClass) HasSingleNameOptions() bool {
	switch c {
	case AssetIndex, AssetCurrency, AssetCommodity, AssetCrypto:
		return false
	default:
		return true
	}
}
