package experiment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace    = "sortlab"
	experimentSubsystem = "experiment"
)

// Metrics holds the Prometheus collectors fed by a Runner.
//
// Fields:
//   - SortDurationSeconds: histogram of single timed runs.
//     Labels: algorithm (merge, hybrid, ...), distribution (random, reverse, almost_sorted)
//   - RunsTotal: counter of timed runs with the same labels.
//   - SizesTotal: counter of completed sizes (one per Series entry).
type Metrics struct {
	SortDurationSeconds *prometheus.HistogramVec
	RunsTotal           *prometheus.CounterVec
	SizesTotal          *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
// Panics on duplicate registration, like promauto; use a fresh
// prometheus.NewRegistry per Metrics value.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := []string{"algorithm", "distribution"}

	return &Metrics{
		SortDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: experimentSubsystem,
				Name:      "sort_duration_seconds",
				Help:      "Duration of a single timed sort run in seconds",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12), // 1µs .. ~4s
			},
			labels,
		),
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: experimentSubsystem,
				Name:      "runs_total",
				Help:      "Total timed sort runs by algorithm and distribution",
			},
			labels,
		),
		SizesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: experimentSubsystem,
				Name:      "sizes_total",
				Help:      "Total sizes measured by algorithm and distribution",
			},
			labels,
		),
	}
}

// observeRun records one timed run. Safe on a nil receiver.
func (m *Metrics) observeRun(algorithm, distribution string, seconds float64) {
	if m == nil {
		return
	}
	m.SortDurationSeconds.WithLabelValues(algorithm, distribution).Observe(seconds)
	m.RunsTotal.WithLabelValues(algorithm, distribution).Inc()
}

// observeSize records one completed Series entry. Safe on a nil receiver.
func (m *Metrics) observeSize(algorithm, distribution string) {
	if m == nil {
		return
	}
	m.SizesTotal.WithLabelValues(algorithm, distribution).Inc()
}
