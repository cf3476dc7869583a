package history

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"ReadinessScanner/internal/model"
)

var csvHeader = []string{"Datetime", "Ticker", "Score", "Signal"}

// CSVStore keeps score history in a flat CSV file, one row per ticker per
// scan. The file is opened per operation so external tools can read it
// between scans.
type CSVStore struct {
	mu   sync.Mutex
	path string
}

// NewCSVStore creates the history file with its header if it does not
// exist yet.
func NewCSVStore(path string) (*CSVStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	s := &CSVStore{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.writeHeader(); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat history file: %w", err)
	}
	return s, nil
}

func (s *CSVStore) writeHeader() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create history file: %w", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write history header: %w", err)
	}
	w.Flush()
	return w.Error()
}

func (s *CSVStore) Append(entry model.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	row := []string{
		formatTime(entry.Time),
		entry.Ticker,
		// Full precision: trend comparisons must not hinge on rounding.
		strconv.FormatFloat(entry.Score, 'f', -1, 64),
		string(entry.Signal),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("append history row: %w", err)
	}
	w.Flush()
	return w.Error()
}

func (s *CSVStore) RecentScores(ticker string, lookback int) ([]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}

	var scores []float64
	for i, row := range rows {
		if i == 0 || len(row) < 4 || row[1] != ticker {
			continue
		}
		score, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			continue
		}
		scores = append(scores, score)
	}
	if lookback > 0 && len(scores) > lookback {
		scores = scores[len(scores)-lookback:]
	}
	return scores, nil
}

func (s *CSVStore) Close() error { return nil }

var _ Store = (*CSVStore)(nil)

// Entry builds a history row stamped with the current time.
func Entry(ticker string, score float64, signal model.Signal) model.HistoryEntry {
	return model.HistoryEntry{
		Time:   time.Now(),
		Ticker: ticker,
		Score:  score,
		Signal: signal,
	}
}
