package scheduler

import (
	"fmt"
	"log"
	"sync"

	"ReadinessScanner/internal/report"
	"ReadinessScanner/internal/scanner"

	"github.com/robfig/cron/v3"
)

// Scheduler runs scans on a cron schedule.
type Scheduler struct {
	Cron    *cron.Cron
	Scanner *scanner.Scanner
	Tickers []string
	Groups  report.Groups

	mu      sync.Mutex
	running bool
}

// NewScheduler creates a scheduler over a fixed universe.
func NewScheduler(s *scanner.Scanner, tickers []string, groups report.Groups) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Scanner: s,
		Tickers: tickers,
		Groups:  groups,
	}
}

// Register adds the periodic scan task.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes a scan immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	// A slow scan must not pile up behind the next cron tick.
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.Println("[WARN] scan already in progress, skipping tick")
		return
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	if _, err := s.Scanner.Run(s.Tickers, s.Groups); err != nil {
		log.Printf("[ERROR] scheduled scan: %v", err)
	}
}
