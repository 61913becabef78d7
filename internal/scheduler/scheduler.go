package scheduler

import (
	"context"
	"log/slog"
	"time"

	"catalog_sync/internal/domain"
)

// Syncer runs one full batch pass over the catalog.
type Syncer interface {
	Run(ctx context.Context) (*domain.BatchReport, error)
}

type Scheduler struct {
	syncer   Syncer
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(syncer Syncer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:   syncer,
		interval: interval,
		logger:   logger,
	}
}

// Start runs an immediate pass and then repeats on the interval. A zero
// interval means run once and return.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.interval <= 0 {
		_, err := s.syncer.Run(ctx)
		return err
	}

	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	if _, err := s.syncer.Run(ctx); err != nil {
		s.logger.Error("sync failed", "error", err)
	}
}
