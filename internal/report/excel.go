package report

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"ReadinessScanner/internal/model"

	"github.com/xuri/excelize/v2"
)

const rankedSheet = "ALL_ASSETS_RANKED"

var header = []string{
	"ticker", "asset_class", "sector",
	"final_score", "buy_signal", "signal_strength", "score_trend",
	"price_subscore", "flow_subscore", "fund_subscore", "inst_flow_proxy",
	"mtf_positive_count", "mtf_confirm", "buy_the_dip",
	"btd_pullback_pct", "btd_recent_high",
	"last_close", "avg_vol_30", "opt_nearest_expiry", "call_put_vol_ratio",
	"error",
}

// ExcelWriter renders the scan into a multi-sheet .xlsx workbook: the full
// ranking, one sheet per asset class, sector breakdowns with a summary, and
// optional index membership sheets.
type ExcelWriter struct {
	path string
}

func NewExcelWriter(path string) *ExcelWriter {
	return &ExcelWriter{path: path}
}

func (w *ExcelWriter) Write(records []model.Record, groups Groups) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", rankedSheet)
	if err := writeSheet(f, rankedSheet, records); err != nil {
		return err
	}

	for _, class := range model.AllAssetClasses {
		sub := filter(records, func(r model.Record) bool { return r.AssetClass == class })
		if len(sub) == 0 {
			continue
		}
		if err := writeSheet(f, sheetName("Category_"+string(class)), sub); err != nil {
			return err
		}
	}

	bySector := append([]model.Record(nil), records...)
	sort.SliceStable(bySector, func(i, j int) bool {
		if bySector[i].Sector != bySector[j].Sector {
			return bySector[i].Sector < bySector[j].Sector
		}
		return bySector[i].FinalScore > bySector[j].FinalScore
	})
	if err := writeSheet(f, "BY_SECTOR", bySector); err != nil {
		return err
	}
	for _, sector := range sectors(records) {
		sub := filter(records, func(r model.Record) bool { return r.Sector == sector })
		name := sector
		if len(name) > 25 {
			name = name[:25]
		}
		if err := writeSheet(f, sheetName("SECTOR_"+name), sub); err != nil {
			log.Printf("[WARN] sector sheet %q skipped: %v", sector, err)
		}
	}
	if err := writeSectorSummary(f, records); err != nil {
		return err
	}

	for name, members := range map[string][]string{
		"SP500":  groups.SP500,
		"DOW30":  groups.DOW30,
		"NAS100": groups.NAS100,
	} {
		if len(members) == 0 {
			continue
		}
		set := make(map[string]struct{}, len(members))
		for _, t := range members {
			set[t] = struct{}{}
		}
		sub := filter(records, func(r model.Record) bool {
			_, ok := set[r.Ticker]
			return ok
		})
		if len(sub) == 0 {
			continue
		}
		if err := writeSheet(f, name, sub); err != nil {
			return err
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("save workbook %s: %w", w.path, err)
	}
	log.Printf("[INFO] report written: %s", w.path)
	return nil
}

func writeSheet(f *excelize.File, name string, records []model.Record) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("sheet %s: %w", name, err)
	}
	for col, h := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(name, cell, h); err != nil {
			return fmt.Errorf("sheet %s header: %w", name, err)
		}
	}
	for i, r := range records {
		values := []any{
			r.Ticker, string(r.AssetClass), r.Sector,
			r.FinalScore, string(r.BuySignal), string(r.SignalStrength), string(r.ScoreTrend),
			r.PriceSubscore, r.FlowSubscore, r.FundSubscore, r.InstFlowProxy,
			r.MTFPositiveCount, r.MTFConfirm, r.BuyTheDip,
			cellValue(r.BTDPullbackPct), cellValue(r.BTDRecentHigh),
			r.LastClose, r.AvgVol30, r.OptNearestExpiry, cellValue(r.CallPutVolRatio),
			r.Err,
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(name, cell, v); err != nil {
				return fmt.Errorf("sheet %s row %d: %w", name, i+2, err)
			}
		}
	}
	return nil
}

func writeSectorSummary(f *excelize.File, records []model.Record) error {
	const name = "SECTOR_SUMMARY"
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("sheet %s: %w", name, err)
	}
	for col, h := range []string{"sector", "avg_readiness_score", "count"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(name, cell, h); err != nil {
			return err
		}
	}
	row := 2
	for _, sector := range sectors(records) {
		sum, count := 0.0, 0
		for _, r := range records {
			if r.Sector == sector && r.Err == "" {
				sum += r.FinalScore
				count++
			}
		}
		if count == 0 {
			continue
		}
		cells := []any{sector, sum / float64(count), count}
		for col, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(name, cell, v); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}

// sectors returns the distinct non-empty sectors in first-seen order.
func sectors(records []model.Record) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		if r.Sector == "" {
			continue
		}
		if _, ok := seen[r.Sector]; ok {
			continue
		}
		seen[r.Sector] = struct{}{}
		out = append(out, r.Sector)
	}
	return out
}

func filter(records []model.Record, keep func(model.Record) bool) []model.Record {
	var out []model.Record
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func cellValue(v model.NullFloat) any {
	if !v.Valid {
		return nil
	}
	return v.Float64
}

// sheetName caps the name at Excel's 31-character limit and strips the
// characters Excel rejects.
func sheetName(name string) string {
	replacer := strings.NewReplacer("[", "", "]", "", ":", "", "*", "", "?", "", "/", "_", "\\", "_")
	name = replacer.Replace(name)
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}

var _ Writer = (*ExcelWriter)(nil)
