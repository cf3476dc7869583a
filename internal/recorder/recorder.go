package recorder

import (
	"time"

	"ReadinessScanner/internal/model"
)

// ScanSnapshot holds everything worth archiving about one full scan run.
type ScanSnapshot struct {
	StartedAt    time.Time
	Duration     time.Duration
	UniverseSize int
	Records      []model.Record
}

// Recorder archives scan runs for later analysis.
type Recorder interface {
	RecordScan(snap *ScanSnapshot) error
	Close() error
}
