// Package scheduler keeps the price cache warm by refreshing a watchlist
// of symbols on a cron schedule.
package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"StockScope/internal/collector"
)

// Scheduler manages the periodic cache refresh task.
type Scheduler struct {
	Cron    *cron.Cron
	Fetcher *collector.Fetcher
	Symbols []string
}

// NewScheduler creates a new Scheduler for the given watchlist.
func NewScheduler(f *collector.Fetcher, symbols []string) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Fetcher: f,
		Symbols: symbols,
	}
}

// Register registers the refresh task with the given cron expression.
func (s *Scheduler) Register(cronExpr string) error {
	if _, err := s.Cron.AddFunc(cronExpr, s.refreshAll); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] refresh scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] refresh scheduler stopped")
}

func (s *Scheduler) refreshAll() {
	log.Printf("[INFO] refreshing %d watchlist symbols", len(s.Symbols))
	for _, sym := range s.Symbols {
		if _, err := s.Fetcher.Refresh(sym); err != nil {
			log.Printf("[ERROR] refresh %s: %v", sym, err)
			continue
		}
	}
}
