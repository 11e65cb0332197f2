// SPDX-License-Identifier: MIT

// Package metrics exports search runs as Prometheus metrics.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/knapsack/core"
)

// Run outcomes used as the status label.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Recorder holds the knapsack collectors. A nil *Recorder discards every
// observation.
type Recorder struct {
	RunsTotal       *prometheus.CounterVec
	RunDuration     *prometheus.HistogramVec
	BestValue       *prometheus.GaugeVec
	IterationsTotal *prometheus.CounterVec
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer
// to expose them process-wide, or a fresh registry per test.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "knapsack_runs_total",
				Help: "Total number of finished search runs",
			},
			[]string{"algorithm", "status"},
		),

		RunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "knapsack_run_duration_seconds",
				Help:    "Wall time of successful search runs in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"algorithm"},
		),

		BestValue: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "knapsack_best_value",
				Help: "Best feasible value of the latest successful run",
			},
			[]string{"algorithm"},
		),

		IterationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "knapsack_iterations_total",
				Help: "Total number of search iterations performed",
			},
			[]string{"algorithm"},
		),
	}
}

// Observe records a successful run.
func (m *Recorder) Observe(res core.Result) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(res.Algorithm, StatusOK).Inc()
	m.RunDuration.WithLabelValues(res.Algorithm).Observe(res.ElapsedSeconds())
	m.BestValue.WithLabelValues(res.Algorithm).Set(float64(res.BestValue))
	m.IterationsTotal.WithLabelValues(res.Algorithm).Add(float64(res.Trace.Len()))
}

// ObserveError records a failed or canceled run.
func (m *Recorder) ObserveError(algorithm string) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(algorithm, StatusError).Inc()
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format, for node_exporter's textfile collector.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}

// Handler serves everything g gathers.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
