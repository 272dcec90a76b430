// Package scheduler drives the periodic feed refresh cycle.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"feedreader/internal/service"
)

// Updater runs one refresh cycle over all due feeds.
type Updater interface {
	UpdateDueFeeds(ctx context.Context) (*service.UpdateStats, error)
}

type Scheduler struct {
	updater  Updater
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(updater Updater, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		updater:  updater,
		interval: interval,
		logger:   logger,
	}
}

// Start runs a cycle immediately, then one per interval until the context
// is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runCycle(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) {
	cycleCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	if _, err := s.updater.UpdateDueFeeds(cycleCtx); err != nil {
		s.logger.Error("update cycle failed", "error", err)
	}
}
