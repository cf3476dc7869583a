package universe

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

const (
	sp500URL  = "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"
	nas100URL = "https://en.wikipedia.org/wiki/Nasdaq-100"
)

// WikipediaFetcher scrapes index constituent tables from Wikipedia.
type WikipediaFetcher struct {
	client *resty.Client
}

func NewWikipediaFetcher(proxyURL string) *WikipediaFetcher {
	client := resty.New().
		SetTimeout(12 * time.Second).
		SetHeader("User-Agent", "Mozilla/5.0")
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &WikipediaFetcher{client: client}
}

// SP500 returns the current S&P 500 constituents, falling back to a small
// static list if the scrape fails.
func (f *WikipediaFetcher) SP500() []string {
	tickers, err := f.scrapeColumn(sp500URL, "table#constituents", 0)
	if err != nil {
		log.Printf("[WARN] sp500 constituents scrape failed, using fallback: %v", err)
		return sp500Fallback
	}
	return tickers
}

// Nasdaq100 returns the current Nasdaq-100 constituents, falling back to a
// small static list if the scrape fails.
func (f *WikipediaFetcher) Nasdaq100() []string {
	tickers, err := f.scrapeTickerColumn(nas100URL, "table.wikitable.sortable")
	if err != nil {
		log.Printf("[WARN] nasdaq-100 constituents scrape failed, using fallback: %v", err)
		return nas100Fallback
	}
	return tickers
}

func (f *WikipediaFetcher) document(pageURL string) (*goquery.Document, error) {
	resp, err := f.client.R().Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch %s: status %d", pageURL, resp.StatusCode())
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}
	return doc, nil
}

// scrapeColumn pulls one cell column out of the selected table's body rows.
func (f *WikipediaFetcher) scrapeColumn(pageURL, selector string, col int) ([]string, error) {
	doc, err := f.document(pageURL)
	if err != nil {
		return nil, err
	}
	var tickers []string
	doc.Find(selector).First().Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cell := row.Find("td").Eq(col)
		symbol := normalizeSymbol(cell.Text())
		if symbol != "" {
			tickers = append(tickers, symbol)
		}
	})
	if len(tickers) == 0 {
		return nil, fmt.Errorf("no symbols found in %s", pageURL)
	}
	return tickers, nil
}

// scrapeTickerColumn locates the column headed "Ticker" (or "Symbol") in
// the first matching table; the Nasdaq-100 page has no stable table id.
func (f *WikipediaFetcher) scrapeTickerColumn(pageURL, selector string) ([]string, error) {
	doc, err := f.document(pageURL)
	if err != nil {
		return nil, err
	}

	var tickers []string
	doc.Find(selector).EachWithBreak(func(_ int, table *goquery.Selection) bool {
		col := -1
		table.Find("tr").First().Find("th").Each(func(i int, th *goquery.Selection) {
			head := strings.TrimSpace(th.Text())
			if head == "Ticker" || head == "Symbol" {
				col = i
			}
		})
		if col < 0 {
			return true // keep looking
		}
		table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			symbol := normalizeSymbol(row.Find("td").Eq(col).Text())
			if symbol != "" {
				tickers = append(tickers, symbol)
			}
		})
		return len(tickers) == 0
	})
	if len(tickers) == 0 {
		return nil, fmt.Errorf("no ticker column found in %s", pageURL)
	}
	return tickers, nil
}

// normalizeSymbol converts Wikipedia class-share notation (BRK.B) to the
// Yahoo dash form (BRK-B).
func normalizeSymbol(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ".", "-")
}
