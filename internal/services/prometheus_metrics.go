package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	customerSearchRequests *prometheus.CounterVec
	customerSearchDuration prometheus.Histogram
	customerSearchResults  prometheus.Gauge
	commandErrors          *prometheus.CounterVec
}

// NewPrometheusMetrics registers the console metrics on reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		customerSearchRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_search_requests_total",
				Help: "Total number of customer search requests",
			},
			[]string{"status"},
		),
		customerSearchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "customer_search_duration_seconds",
				Help:    "Customer search duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		customerSearchResults: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "customer_search_results",
				Help: "Number of customers returned by the last search",
			},
		),
		commandErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "command_errors_total",
				Help: "Total number of failed commands by error code",
			},
			[]string{"code"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "customer_search_request":
		if status := tags["status"]; status != "" {
			m.customerSearchRequests.WithLabelValues(status).Inc()
		}
	case "command_error":
		if code := tags["code"]; code != "" {
			m.commandErrors.WithLabelValues(code).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "customer_search":
		m.customerSearchDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "customer_search_results":
		m.customerSearchResults.Set(value)
	}
}
