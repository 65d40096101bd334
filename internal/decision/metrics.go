package decision

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomePlay  = "play"
	OutcomePass  = "pass"
	OutcomeError = "error"
)

// Metrics groups the decision counters. Each Service owns its own set so tests
// can register against a private registry.
type Metrics struct {
	decisions        *prometheus.CounterVec
	duration         *prometheus.HistogramVec
	invalidSnapshots prometheus.Counter
}

// NewMetrics registers the decision metrics with reg; nil uses a throwaway
// registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	return &Metrics{
		decisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lundao",
			Name:      "decisions_total",
			Help:      "Decisions made, by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lundao",
			Name:      "decision_duration_seconds",
			Help:      "Time spent in Decide.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"strategy"}),
		invalidSnapshots: f.NewCounter(prometheus.CounterOpts{
			Namespace: "lundao",
			Name:      "invalid_snapshots_total",
			Help:      "Snapshots rejected as invalid before reaching a strategy.",
		}),
	}
}
