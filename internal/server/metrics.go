package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts calculations served and their latency.
type Metrics struct {
	calculations *prometheus.CounterVec
	duration     prometheus.Histogram
}

// NewMetrics registers the calculator metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		calculations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "os4p_calculations_total",
			Help: "Calculations served, by outcome.",
		}, []string{"status"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "os4p_calculation_duration_seconds",
			Help:    "Calculation latency.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) observe(status string, seconds float64) {
	m.calculations.WithLabelValues(status).Inc()
	m.duration.Observe(seconds)
}
