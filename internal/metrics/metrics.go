// Package metrics holds the Prometheus collectors of the syncer.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors shared by the fetch client and the sync service.
type Metrics struct {
	FetchAttempts *prometheus.CounterVec
	FetchInFlight prometheus.Gauge
	Reconciled    *prometheus.CounterVec
	Skipped       *prometheus.CounterVec
	RunDuration   *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg. A nil reg gets a private registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		FetchAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bills_fetch_attempts_total",
				Help: "HTTP fetch attempts, labeled by outcome.",
			},
			[]string{"outcome"},
		),
		FetchInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bills_fetch_in_flight",
				Help: "HTTP fetches currently in flight.",
			},
		),
		Reconciled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bills_reconciled_total",
				Help: "Reconciled records, labeled by stage and outcome.",
			},
			[]string{"stage", "outcome"},
		),
		Skipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bills_skipped_total",
				Help: "Records skipped after a fetch, parse or store failure, labeled by stage.",
			},
			[]string{"stage"},
		),
		RunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bills_sync_duration_seconds",
				Help:    "Duration of legislatura refreshes, labeled by mode.",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
			},
			[]string{"mode"},
		),
		gatherer: reg,
	}
}

// Handler serves the registry the collectors were registered on.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
