package runner

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pathgrid/traversal"
)

// Metrics holds the Prometheus collectors a Controller reports to.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Ticks        *prometheus.CounterVec
	Runs         *prometheus.CounterVec
	RunDuration  *prometheus.HistogramVec
	FrontierSize *prometheus.GaugeVec
}

// NewMetrics registers the pathgrid collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Ticks: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathgrid_ticks_total",
				Help: "Search expansions performed",
			},
			[]string{"mode"},
		),
		Runs: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathgrid_runs_total",
				Help: "Finished runs by outcome",
			},
			[]string{"mode", "outcome"},
		),
		RunDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pathgrid_run_duration_seconds",
				Help:    "Wall time of finished runs, pauses excluded",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
			},
			[]string{"mode"},
		),
		FrontierSize: promauto.With(reg).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pathgrid_frontier_size",
				Help: "Frontier size after the latest tick",
			},
			[]string{"mode"},
		),
	}
}

func (m *Metrics) observeTick(mode traversal.Mode, frontier int) {
	if m == nil {
		return
	}
	m.Ticks.WithLabelValues(mode.String()).Inc()
	m.FrontierSize.WithLabelValues(mode.String()).Set(float64(frontier))
}

func (m *Metrics) observeRun(mode traversal.Mode, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(mode.String(), outcome).Inc()
	m.RunDuration.WithLabelValues(mode.String()).Observe(d.Seconds())
}
