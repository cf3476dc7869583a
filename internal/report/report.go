// Package report renders a finished scan: a multi-sheet workbook plus a
// console summary table.
package report

import "ReadinessScanner/internal/model"

// Groups carries optional index membership lists; a non-empty list gets its
// own workbook sheet filtered to scanned tickers.
type Groups struct {
	SP500  []string
	DOW30  []string
	NAS100 []string
}

// Writer consumes the final score-sorted record list.
type Writer interface {
	Write(records []model.Record, groups Groups) error
}

// Noop discards the report; used when no output file is configured.
type Noop struct{}

func (Noop) Write([]model.Record, Groups) error { return nil }

var _ Writer = Noop{}
