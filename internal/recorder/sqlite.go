package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	"ReadinessScanner/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists scan runs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read while
	// the scanner writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_runs (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at    INTEGER NOT NULL,
			duration_ms   INTEGER,
			universe_size INTEGER,
			analyzed      INTEGER,
			failed        INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started ON scan_runs(started_at)`,

		`CREATE TABLE IF NOT EXISTS scan_records (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id          INTEGER NOT NULL,
			ticker          TEXT NOT NULL,
			asset_class     TEXT,
			sector          TEXT,
			price_subscore  REAL,
			flow_subscore   REAL,
			fund_subscore   REAL,
			inst_flow_proxy REAL,
			final_score     REAL,
			buy_signal      TEXT,
			signal_strength TEXT,
			score_trend     TEXT,
			mtf_positive    INTEGER,
			mtf_confirm     INTEGER,
			buy_the_dip     INTEGER,
			btd_pullback    REAL,
			btd_recent_high REAL,
			last_close      REAL,
			avg_vol_30      REAL,
			opt_expiry      TEXT,
			call_put_vol    REAL,
			error           TEXT,
			FOREIGN KEY (run_id) REFERENCES scan_runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_run ON scan_records(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_records_ticker ON scan_records(ticker)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordScan writes the run header and one row per analyzed ticker in a
// single transaction.
func (r *SQLiteRecorder) RecordScan(snap *ScanSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	analyzed, failed := 0, 0
	for _, rec := range snap.Records {
		if rec.Err == "" {
			analyzed++
		} else {
			failed++
		}
	}

	res, err := tx.Exec(`INSERT INTO scan_runs
		(started_at, duration_ms, universe_size, analyzed, failed)
		VALUES (?, ?, ?, ?, ?)`,
		snap.StartedAt.Unix(), snap.Duration.Milliseconds(),
		snap.UniverseSize, analyzed, failed)
	if err != nil {
		return fmt.Errorf("insert scan run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO scan_records
		(run_id, ticker, asset_class, sector,
		 price_subscore, flow_subscore, fund_subscore, inst_flow_proxy,
		 final_score, buy_signal, signal_strength, score_trend,
		 mtf_positive, mtf_confirm, buy_the_dip, btd_pullback, btd_recent_high,
		 last_close, avg_vol_30, opt_expiry, call_put_vol, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare record insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range snap.Records {
		_, err := stmt.Exec(
			runID, rec.Ticker, string(rec.AssetClass), rec.Sector,
			rec.PriceSubscore, rec.FlowSubscore, rec.FundSubscore, rec.InstFlowProxy,
			rec.FinalScore, string(rec.BuySignal), string(rec.SignalStrength), string(rec.ScoreTrend),
			rec.MTFPositiveCount, boolInt(rec.MTFConfirm), boolInt(rec.BuyTheDip),
			nullable(rec.BTDPullbackPct), nullable(rec.BTDRecentHigh),
			rec.LastClose, rec.AvgVol30, rec.OptNearestExpiry, nullable(rec.CallPutVolRatio),
			rec.Err)
		if err != nil {
			return fmt.Errorf("insert record %s: %w", rec.Ticker, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit scan: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

func nullable(v model.NullFloat) any {
	if !v.Valid {
		return nil
	}
	return v.Float64
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ Recorder = (*SQLiteRecorder)(nil)
