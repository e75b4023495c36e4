package main

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"

	"bills_fetcher/internal/config"
	"bills_fetcher/internal/domain"
	"bills_fetcher/internal/fetch"
	"bills_fetcher/internal/metrics"
	"bills_fetcher/internal/publisher"
	"bills_fetcher/internal/service"
	"bills_fetcher/internal/source/senado"
	"bills_fetcher/internal/storage/postgres"
)

// app holds the wired components shared by the commands.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	db        *sqlx.DB
	metrics   *metrics.Metrics
	publisher *publisher.BillPublisher
	sync      *service.SyncService
}

// newApp wires the components for one kind of bill. An empty kind uses
// sync.kind from the config file.
func newApp(kind string) (*app, error) {
	logger := setupLogger("info")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger = setupLogger(cfg.LogLevel)

	if kind != "" {
		cfg.Sync.Kind = kind
	}
	billKind, err := domain.ParseKind(cfg.Sync.Kind)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("connected to database", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)

	a := &app{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		metrics: metrics.New(prometheus.NewRegistry()),
	}

	// A nil interface, not a nil *BillPublisher, disables publishing.
	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		billPublisher, err := publisher.Dial(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		a.publisher = billPublisher
		pub = billPublisher
	}

	site := senado.New(senado.Config{
		BaseURL:                 cfg.Source.BaseURL,
		Kind:                    billKind,
		ListPath:                cfg.Source.ListPath,
		ActoLegislativoListPath: cfg.Source.ActoLegislativoListPath,
		ListQuery:               cfg.Source.ListQuery,
		EmptyPublicationHref:    cfg.Source.EmptyPublicationHref,
		UnassignedCommittee:     cfg.Source.UnassignedCommittee,
	}, logger)

	fetcher := fetch.New(fetch.Config{
		Timeout:   cfg.Fetch.Timeout,
		Retries:   cfg.Fetch.Retries,
		Backoff:   cfg.Fetch.Backoff,
		UserAgent: cfg.Fetch.UserAgent,
	}, a.metrics, logger)

	a.sync = service.NewSyncService(
		site,
		fetcher,
		postgres.NewPeriodStore(db),
		postgres.NewBillStore(db),
		postgres.NewSyncStateStore(db),
		postgres.NewTransactionManager(db),
		pub,
		a.metrics,
		logger,
		cfg.Sync,
	)

	return a, nil
}

func (a *app) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("failed to close rabbitmq", "error", err)
		}
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", "error", err)
	}
}
