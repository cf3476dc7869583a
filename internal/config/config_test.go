package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.ExcelFile != "readiness_scores.xlsx" {
		t.Errorf("excel default = %q", cfg.Output.ExcelFile)
	}
	if cfg.Output.HistoryCSV != "readiness_history.csv" {
		t.Errorf("history default = %q", cfg.Output.HistoryCSV)
	}
	if cfg.Schedule.ScanCron == "" {
		t.Error("scan cron default missing")
	}
}

func TestLoadScoringOverrides(t *testing.T) {
	path := writeConfig(t, `
universe:
  tickers: ["AAPL", "SPY"]
  include_dow30: true
scoring:
  inst_flow_weight: 0.2
  btd_max_pullback: 0.12
  btd_require_daily_uptrend: false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(cfg.Universe.Tickers) != 2 || !cfg.Universe.IncludeDOW30 {
		t.Errorf("universe not parsed: %+v", cfg.Universe)
	}

	sc := cfg.StrategyConfig()
	if sc.InstFlowWeight != 0.2 {
		t.Errorf("inst weight override = %.2f", sc.InstFlowWeight)
	}
	if sc.BTDMaxPullback != 0.12 || sc.BTDRequireDailyUptrend {
		t.Errorf("btd overrides not applied: %+v", sc)
	}
	// Untouched fields keep package defaults.
	if sc.MTFConfirmThreshold != 2 || sc.BTDMinPullback != 0.02 {
		t.Errorf("defaults clobbered: %+v", sc)
	}
}

func TestValidateRejectsBadScoring(t *testing.T) {
	path := writeConfig(t, `
scoring:
  inst_flow_weight: 1.5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure for inst_flow_weight > 1")
	}

	path = writeConfig(t, `
scoring:
  btd_min_pullback: 0.10
  btd_max_pullback: 0.05
`)
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure for inverted pullback bounds")
	}
}
