package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ReadinessScanner/internal/config"
	"ReadinessScanner/internal/history"
	"ReadinessScanner/internal/marketdata"
	"ReadinessScanner/internal/recorder"
	"ReadinessScanner/internal/report"
	"ReadinessScanner/internal/scanner"
	"ReadinessScanner/internal/scheduler"
	"ReadinessScanner/internal/universe"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scanner",
		Short: "Stock readiness scanner",
		Long: `Scans a cross-asset ticker universe, scores each instrument for
buy readiness (price momentum, volume/options flow, fundamentals,
institutional flow proxy) and writes a ranked multi-sheet report.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "configs/config.yaml", "configuration file path")

	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newHistoryCmd())
	return rootCmd
}

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [TICKER...]",
		Short: "Run one scan and exit",
		Long: `Run a single scan over the configured universe, or over the
tickers given as arguments. Example: scanner scan AAPL MSFT BTC-USD`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScanWith(cmd, args)
		},
	}
	return cmd
}

func runScan(cmd *cobra.Command) error {
	return runScanWith(cmd, nil)
}

func runScanWith(cmd *cobra.Command, override []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	s, cleanup, err := buildScanner(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	tickers, groups := buildUniverse(cfg)
	if len(override) > 0 {
		tickers = universe.Dedupe(override)
	}

	_, err = s.Run(tickers, groups)
	return err
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run scans on the configured cron schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			s, cleanup, err := buildScanner(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			tickers, groups := buildUniverse(cfg)
			sched := scheduler.NewScheduler(s, tickers, groups)
			if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			if cfg.Schedule.RunOnStart || os.Getenv("RUN_ON_START") == "true" {
				log.Println("[INFO] RUN_ON_START enabled, scanning now")
				go sched.RunNow()
			}

			log.Printf("[INFO] watching %d tickers on schedule %q. Press Ctrl+C to stop.",
				len(tickers), cfg.Schedule.ScanCron)
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			log.Println("[INFO] shutdown signal received, stopping...")
			return nil
		},
	}
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history TICKER",
		Short: "Show recent scores and trend for a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store, err := history.NewCSVStore(cfg.Output.HistoryCSV)
			if err != nil {
				return err
			}
			defer store.Close()
			lookback, _ := cmd.Flags().GetInt("lookback")

			ticker := args[0]
			scores, err := store.RecentScores(ticker, lookback)
			if err != nil {
				return err
			}
			if len(scores) == 0 {
				fmt.Printf("no history for %s\n", ticker)
				return nil
			}
			for _, s := range scores {
				fmt.Printf("%s  %.2f\n", ticker, s)
			}
			fmt.Printf("trend: %s\n", history.Trend(scores))
			return nil
		},
	}
	cmd.Flags().Int("lookback", 10, "number of recent scores to show")
	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// buildScanner wires the provider, stores and report writer from config.
// The returned cleanup closes whatever was opened.
func buildScanner(cfg *config.Config) (*scanner.Scanner, func(), error) {
	provider := marketdata.NewYahooProvider(cfg.Proxy)
	log.Printf("[INFO] data source: %s", provider.Name())

	store, err := history.NewCSVStore(cfg.Output.HistoryCSV)
	if err != nil {
		return nil, nil, fmt.Errorf("init history store: %w", err)
	}

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	writer := report.NewExcelWriter(cfg.Output.ExcelFile)

	s := scanner.New(provider, cfg.StrategyConfig(), store, writer, rec)
	cleanup := func() {
		store.Close()
		rec.Close()
	}
	return s, cleanup, nil
}

// buildUniverse assembles the ticker list and the index membership groups
// used for the report's membership sheets.
func buildUniverse(cfg *config.Config) ([]string, report.Groups) {
	tickers := cfg.Universe.Tickers
	if len(tickers) == 0 {
		tickers = universe.DefaultTickers
	}

	groups := report.Groups{DOW30: universe.DOW30}
	fetcher := universe.NewWikipediaFetcher(cfg.Proxy)
	if cfg.Universe.IncludeSP500 {
		groups.SP500 = fetcher.SP500()
		tickers = append(tickers, groups.SP500...)
	}
	if cfg.Universe.IncludeNasdaq100 {
		groups.NAS100 = fetcher.Nasdaq100()
		tickers = append(tickers, groups.NAS100...)
	}
	if cfg.Universe.IncludeDOW30 {
		tickers = append(tickers, universe.DOW30...)
	}
	return universe.Dedupe(tickers), groups
}
