package services

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the optimizer.
type Metrics struct {
	OptimizationsTotal *prometheus.CounterVec
	ProviderDuration   *prometheus.HistogramVec
}

// NewMetrics registers the optimizer metrics once per process.
//
// Metrics:
//   - notes_optimizer_optimizations_total{provider,outcome} - "success" or "error"
//   - notes_optimizer_provider_duration_seconds{provider} - upstream call latency
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			OptimizationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "notes_optimizer_optimizations_total",
					Help: "Total number of note optimizations by provider and outcome",
				},
				[]string{"provider", "outcome"},
			),
			ProviderDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "notes_optimizer_provider_duration_seconds",
					Help:    "Duration of upstream completion calls in seconds",
					Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
				},
				[]string{"provider"},
			),
		}
	})
	return globalMetrics
}
