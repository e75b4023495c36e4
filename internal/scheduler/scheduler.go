package scheduler

import (
	"context"
	"log/slog"
	"time"

	"bills_fetcher/internal/domain"
)

// Refresher refreshes every legislatura of a cuatrenio.
type Refresher interface {
	RefreshPeriod(ctx context.Context, cuatrenio string, mode domain.Mode) ([]*domain.SyncStats, error)
}

type Scheduler struct {
	refresher  Refresher
	cuatrenios []string
	mode       domain.Mode
	interval   time.Duration
	logger     *slog.Logger
}

func NewScheduler(refresher Refresher, cuatrenios []string, mode domain.Mode, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		refresher:  refresher,
		cuatrenios: cuatrenios,
		mode:       mode,
		interval:   interval,
		logger:     logger,
	}
}

// Start refreshes the configured cuatrenios right away and then on every
// tick until ctx is done. A refresh in progress always runs to completion;
// ticks that fire meanwhile are dropped.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"interval", s.interval,
		"cuatrenios", s.cuatrenios,
		"mode", s.mode,
	)

	s.runRefresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runRefresh(ctx)
		}
	}
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	for _, cuatrenio := range s.cuatrenios {
		if ctx.Err() != nil {
			return
		}
		stats, err := s.refresher.RefreshPeriod(ctx, cuatrenio, s.mode)
		if err != nil {
			s.logger.Error("refresh failed",
				"cuatrenio", cuatrenio,
				"legislaturas_done", len(stats),
				"error", err,
			)
		}
	}
}
