package config

import (
	"fmt"
	"os"
	"strconv"

	"ReadinessScanner/internal/strategy"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Universe struct {
		Tickers          []string `yaml:"tickers"`
		IncludeSP500     bool     `yaml:"include_sp500"`
		IncludeDOW30     bool     `yaml:"include_dow30"`
		IncludeNasdaq100 bool     `yaml:"include_nasdaq100"`
	} `yaml:"universe"`
	Output struct {
		ExcelFile  string `yaml:"excel_file"`
		HistoryCSV string `yaml:"history_csv"`
	} `yaml:"output"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		ScanCron   string `yaml:"scan_cron"`
		RunOnStart bool   `yaml:"run_on_start"`
	} `yaml:"schedule"`
	Scoring struct {
		InstFlowWeight      *float64 `yaml:"inst_flow_weight"`
		MTFConfirmThreshold *int     `yaml:"mtf_confirm_threshold"`
		MTFPositiveScore    *float64 `yaml:"mtf_positive_score"`
		BTDLookbackDays     *int     `yaml:"btd_lookback_days"`
		BTDMinPullback      *float64 `yaml:"btd_min_pullback"`
		BTDMaxPullback      *float64 `yaml:"btd_max_pullback"`
		BTDRequireUptrend   *bool    `yaml:"btd_require_daily_uptrend"`
	} `yaml:"scoring"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("EXCEL_FILE"); v != "" {
		cfg.Output.ExcelFile = v
	}
	if v := os.Getenv("HISTORY_CSV"); v != "" {
		cfg.Output.HistoryCSV = v
	}
	if v := os.Getenv("INST_FLOW_WEIGHT"); v != "" {
		if w, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scoring.InstFlowWeight = &w
		}
	}

	// Defaults
	if cfg.Output.ExcelFile == "" {
		cfg.Output.ExcelFile = "readiness_scores.xlsx"
	}
	if cfg.Output.HistoryCSV == "" {
		cfg.Output.HistoryCSV = "readiness_history.csv"
	}
	if cfg.Schedule.ScanCron == "" {
		// Weekdays at 22:30, after the US close.
		cfg.Schedule.ScanCron = "0 30 22 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	s := c.Scoring
	if s.InstFlowWeight != nil && (*s.InstFlowWeight < 0 || *s.InstFlowWeight > 1) {
		return fmt.Errorf("scoring.inst_flow_weight must be in [0,1]")
	}
	if s.MTFConfirmThreshold != nil && (*s.MTFConfirmThreshold < 0 || *s.MTFConfirmThreshold > 3) {
		return fmt.Errorf("scoring.mtf_confirm_threshold must be in [0,3]")
	}
	if s.BTDMinPullback != nil && s.BTDMaxPullback != nil && *s.BTDMinPullback > *s.BTDMaxPullback {
		return fmt.Errorf("scoring.btd_min_pullback must not exceed btd_max_pullback")
	}
	if s.BTDLookbackDays != nil && *s.BTDLookbackDays <= 0 {
		return fmt.Errorf("scoring.btd_lookback_days must be positive")
	}
	return nil
}

// StrategyConfig materializes the scoring settings: package defaults with
// any YAML overrides applied.
func (c *Config) StrategyConfig() strategy.Config {
	out := strategy.DefaultConfig()
	s := c.Scoring
	if s.InstFlowWeight != nil {
		out.InstFlowWeight = *s.InstFlowWeight
	}
	if s.MTFConfirmThreshold != nil {
		out.MTFConfirmThreshold = *s.MTFConfirmThreshold
	}
	if s.MTFPositiveScore != nil {
		out.MTFPositiveScore = *s.MTFPositiveScore
	}
	if s.BTDLookbackDays != nil {
		out.BTDLookbackDays = *s.BTDLookbackDays
	}
	if s.BTDMinPullback != nil {
		out.BTDMinPullback = *s.BTDMinPullback
	}
	if s.BTDMaxPullback != nil {
		out.BTDMaxPullback = *s.BTDMaxPullback
	}
	if s.BTDRequireUptrend != nil {
		out.BTDRequireDailyUptrend = *s.BTDRequireUptrend
	}
	return out
}
