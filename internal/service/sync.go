package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"bills_fetcher/internal/config"
	"bills_fetcher/internal/domain"
	"bills_fetcher/internal/metrics"
)

var ErrUnknownPeriod = errors.New("unknown period")

type SyncService struct {
	site       Site
	fetcher    Fetcher
	periods    PeriodStore
	bills      BillStore
	syncState  SyncStateStore
	reconciler *Reconciler
	publisher  Publisher
	metrics    *metrics.Metrics
	logger     *slog.Logger
	config     config.SyncConfig
}

func NewSyncService(
	site Site,
	fetcher Fetcher,
	periods PeriodStore,
	bills BillStore,
	syncState SyncStateStore,
	txManager TransactionManager,
	publisher Publisher,
	m *metrics.Metrics,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 10
	}
	if m == nil {
		m = metrics.New(nil)
	}
	return &SyncService{
		site:       site,
		fetcher:    fetcher,
		periods:    periods,
		bills:      bills,
		syncState:  syncState,
		reconciler: NewReconciler(txManager, logger),
		publisher:  publisher,
		metrics:    m,
		logger:     logger,
		config:     cfg,
	}
}

// RefreshPeriod refreshes every legislatura of a cuatrenio in order. The
// first fatal error stops the walk; stats of the finished legislaturas are
// returned with it. Cancelling ctx stops the walk before the next
// legislatura starts.
func (s *SyncService) RefreshPeriod(ctx context.Context, cuatrenio string, mode domain.Mode) ([]*domain.SyncStats, error) {
	legislaturas, err := s.periods.GetLegislaturas(ctx, cuatrenio)
	if err != nil {
		return nil, fmt.Errorf("load legislaturas: %w", err)
	}
	if len(legislaturas) == 0 {
		return nil, fmt.Errorf("cuatrenio %q: %w", cuatrenio, ErrUnknownPeriod)
	}

	all := make([]*domain.SyncStats, 0, len(legislaturas))
	for _, l := range legislaturas {
		if err := ctx.Err(); err != nil {
			return all, err
		}
		stats, err := s.refresh(ctx, l, mode)
		if stats != nil {
			all = append(all, stats)
		}
		if err != nil {
			return all, fmt.Errorf("legislatura %s: %w", l.Title, err)
		}
	}
	return all, nil
}

func (s *SyncService) RefreshLegislatura(ctx context.Context, cuatrenio, legislatura string, mode domain.Mode) (*domain.SyncStats, error) {
	l, err := s.periods.GetLegislatura(ctx, cuatrenio, legislatura)
	if err != nil {
		return nil, fmt.Errorf("load legislatura: %w", err)
	}
	if l == nil {
		return nil, fmt.Errorf("legislatura %q of cuatrenio %q: %w", legislatura, cuatrenio, ErrUnknownPeriod)
	}
	return s.refresh(ctx, *l, mode)
}

// refresh runs to completion once started: cancelling ctx does not abort
// queued or in-flight work.
func (s *SyncService) refresh(ctx context.Context, l domain.Legislatura, mode domain.Mode) (*domain.SyncStats, error) {
	ctx = context.WithoutCancel(ctx)
	startTime := time.Now()
	logger := s.logger.With("cuatrenio", l.Cuatrenio, "legislatura", l.Title, "kind", s.site.Kind(), "mode", mode)
	logger.Info("starting sync")

	stats := &domain.SyncStats{
		Cuatrenio:   l.Cuatrenio,
		Legislatura: l.Title,
		Kind:        s.site.Kind(),
		Mode:        mode,
	}

	if mode.IncludesList() {
		if err := s.listPhase(ctx, l, stats, logger); err != nil {
			return stats, err
		}
	}
	if mode.IncludesDetail() {
		if err := s.detailPhase(ctx, l, stats, logger); err != nil {
			return stats, err
		}
	}

	stats.Duration = time.Since(startTime)
	s.metrics.RunDuration.WithLabelValues(string(mode)).Observe(stats.Duration.Seconds())

	if err := s.updateSyncState(ctx, l, stats); err != nil {
		return stats, fmt.Errorf("update sync state: %w", err)
	}

	logger.Info("sync completed",
		"listed", stats.Listed,
		"new", stats.New,
		"updated", stats.Updated,
		"unchanged", stats.Unchanged,
		"detail_queued", stats.DetailQueued,
		"detail_updated", stats.DetailUpdated,
		"detail_unchanged", stats.DetailUnchanged,
		"processed", stats.Processed(),
		"skipped", stats.Skipped,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *SyncService) listPhase(ctx context.Context, l domain.Legislatura, stats *domain.SyncStats, logger *slog.Logger) error {
	url := s.site.ListURL(l)
	logger.Info("fetching listing", "url", url)

	resp, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("fetch listing: %w", err)
	}

	records, dropped, err := s.site.ParseListPage(resp.Body)
	if err != nil {
		return fmt.Errorf("parse listing %s: %w", url, err)
	}
	stats.Listed = len(records)
	stats.Skipped += dropped
	s.metrics.Skipped.WithLabelValues(string(domain.StageList)).Add(float64(dropped))
	logger.Info("parsed listing", "records", len(records), "dropped_rows", dropped)

	for i := range records {
		record := &records[i]
		result, err := s.reconciler.ReconcileSummary(ctx, l, stats.Kind, record)
		if err != nil {
			logger.Error("skipping bill",
				"numero", record.Numero.String(),
				"url", record.URL,
				"error", err,
			)
			stats.Skipped++
			s.metrics.Skipped.WithLabelValues(string(domain.StageList)).Inc()
			continue
		}

		s.metrics.Reconciled.WithLabelValues(string(domain.StageList), string(result.Outcome)).Inc()
		switch result.Outcome {
		case OutcomeInserted:
			stats.New++
		case OutcomeUpdated:
			stats.Updated++
		default:
			stats.Unchanged++
		}
		if s.publish(ctx, result.Change, logger) {
			stats.Published++
		}
	}

	return nil
}

func (s *SyncService) detailPhase(ctx context.Context, l domain.Legislatura, stats *domain.SyncStats, logger *slog.Logger) error {
	tasks, err := s.bills.ListPendingDetail(ctx, s.site.Kind(), l.ID, s.config.ExcludedStates)
	if err != nil {
		return fmt.Errorf("list bills pending detail: %w", err)
	}
	stats.DetailQueued = len(tasks)
	logger.Info("fetching details", "bills", len(tasks), "concurrency", s.config.Concurrency)

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(s.config.Concurrency)

	for _, task := range tasks {
		g.Go(func() error {
			result, err := s.processDetail(ctx, l, task)
			if err != nil {
				logger.Error("skipping bill detail",
					"numero", task.Numero,
					"url", task.URL,
					"error", err,
				)
				s.metrics.Skipped.WithLabelValues(string(domain.StageDetail)).Inc()
				mu.Lock()
				stats.Skipped++
				mu.Unlock()
				return nil
			}

			s.metrics.Reconciled.WithLabelValues(string(domain.StageDetail), string(result.Outcome)).Inc()
			published := s.publish(ctx, result.Change, logger)

			mu.Lock()
			defer mu.Unlock()
			if result.Outcome == OutcomeUnchanged {
				stats.DetailUnchanged++
			} else {
				stats.DetailUpdated++
			}
			if published {
				stats.Published++
			}
			return nil
		})
	}

	// Tasks never return errors; Wait is the join point.
	_ = g.Wait()
	return nil
}

func (s *SyncService) processDetail(ctx context.Context, l domain.Legislatura, task domain.DetailTask) (*ReconcileResult, error) {
	resp, err := s.fetcher.Fetch(ctx, task.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch detail: %w", err)
	}

	record, err := s.site.ParseDetailPage(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse detail: %w", err)
	}

	return s.reconciler.ReconcileDetail(ctx, l, s.site.Kind(), task, record)
}

func (s *SyncService) publish(ctx context.Context, change *domain.BillChange, logger *slog.Logger) bool {
	if s.publisher == nil || change == nil {
		return false
	}
	if err := s.publisher.Publish(ctx, change); err != nil {
		logger.Warn("failed to publish bill change",
			"numero", change.Numero,
			"stage", change.Stage,
			"error", err,
		)
		return false
	}
	return true
}

func (s *SyncService) updateSyncState(ctx context.Context, l domain.Legislatura, stats *domain.SyncStats) error {
	state, err := s.syncState.Get(ctx, l.ID)
	if err != nil {
		return err
	}

	state.LegislaturaID = l.ID
	state.LastSyncedAt = time.Now()
	state.LastMode = string(stats.Mode)
	state.TotalSynced += int64(stats.New + stats.Updated + stats.DetailUpdated)

	return s.syncState.Update(ctx, state)
}
