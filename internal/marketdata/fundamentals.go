package marketdata

import (
	"fmt"
	"net/url"
	"time"

	"ReadinessScanner/internal/model"

	"github.com/go-resty/resty/v2"
)

const quoteSummaryURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s"

// fundamentalsClient pulls summary info and quarterly earnings from the
// Yahoo quoteSummary endpoint.
type fundamentalsClient struct {
	client *resty.Client
}

func newFundamentalsClient(proxyURL string) *fundamentalsClient {
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetHeader("User-Agent", "Mozilla/5.0")
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &fundamentalsClient{client: client}
}

// rawValue is Yahoo's {raw, fmt} numeric wrapper; raw is absent for
// unavailable fields.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

func (v rawValue) nullFloat() model.NullFloat {
	if v.Raw == nil {
		return model.NullFloat{}
	}
	return model.ValidFloat(*v.Raw)
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			DefaultKeyStatistics struct {
				ShortRatio rawValue `json:"shortRatio"`
			} `json:"defaultKeyStatistics"`
			FinancialData struct {
				RecommendationMean rawValue `json:"recommendationMean"`
			} `json:"financialData"`
			AssetProfile struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"assetProfile"`
			Earnings struct {
				FinancialsChart struct {
					Quarterly []struct {
						Date     string   `json:"date"`
						Earnings rawValue `json:"earnings"`
					} `json:"quarterly"`
				} `json:"financialsChart"`
			} `json:"earnings"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func (c *fundamentalsClient) fetch(ticker string, modules string) (*quoteSummaryResponse, error) {
	var out quoteSummaryResponse
	resp, err := c.client.R().
		SetQueryParam("modules", modules).
		SetResult(&out).
		Get(fmt.Sprintf(quoteSummaryURL, url.PathEscape(ticker)))
	if err != nil {
		return nil, fmt.Errorf("quoteSummary %s: %w", ticker, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("quoteSummary %s: status %d", ticker, resp.StatusCode())
	}
	if out.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("quoteSummary %s: %s", ticker, out.QuoteSummary.Error.Description)
	}
	if len(out.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("quoteSummary %s: empty result", ticker)
	}
	return &out, nil
}

func (c *fundamentalsClient) getInfo(ticker string) (*FundamentalsInfo, error) {
	out, err := c.fetch(ticker, "defaultKeyStatistics,financialData,assetProfile")
	if err != nil {
		return nil, err
	}
	r := out.QuoteSummary.Result[0]
	return &FundamentalsInfo{
		ShortRatio:         r.DefaultKeyStatistics.ShortRatio.nullFloat(),
		RecommendationMean: r.FinancialData.RecommendationMean.nullFloat(),
		Sector:             r.AssetProfile.Sector,
		Industry:           r.AssetProfile.Industry,
	}, nil
}

func (c *fundamentalsClient) getQuarterlyEarnings(ticker string) ([]float64, error) {
	out, err := c.fetch(ticker, "earnings")
	if err != nil {
		return nil, err
	}
	quarters := out.QuoteSummary.Result[0].Earnings.FinancialsChart.Quarterly
	earnings := make([]float64, 0, len(quarters))
	for _, q := range quarters {
		if q.Earnings.Raw != nil {
			earnings = append(earnings, *q.Earnings.Raw)
		}
	}
	return earnings, nil
}
