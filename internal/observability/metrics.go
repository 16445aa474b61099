package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// MetricsCollector owns a private registry; nothing is registered globally.
type MetricsCollector struct {
	Registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ActiveRequests      prometheus.Gauge

	RecommendationsTotal *prometheus.CounterVec
	RecommendedItems     *prometheus.HistogramVec

	WSClients prometheus.GaugeFunc
}

func NewMetricsCollector(wsClients func() float64) *MetricsCollector {
	reg := prometheus.NewRegistry()
	if wsClients == nil {
		wsClients = func() float64 { return 0 }
	}

	m := &MetricsCollector{
		Registry: reg,

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "career_match",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "career_match",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		ActiveRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "career_match",
			Name:      "active_requests",
			Help:      "Number of in-flight HTTP requests.",
		}),

		RecommendationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "career_match",
			Name:      "recommendations_total",
			Help:      "Recommendations computed, by outcome.",
		}, []string{"outcome"}),

		RecommendedItems: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "career_match",
			Name:      "recommended_items",
			Help:      "Items returned per recommendation.",
			Buckets:   []float64{0, 1, 2, 3, 4, 5},
		}, []string{"kind"}),

		WSClients: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "career_match",
			Subsystem: "ws",
			Name:      "clients",
			Help:      "Connected websocket clients.",
		}, wsClients),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ActiveRequests,
		m.RecommendationsTotal,
		m.RecommendedItems,
		m.WSClients,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveRecommendation records one recommendation outcome and, on
// success, how many jobs and resources it returned.
func (m *MetricsCollector) ObserveRecommendation(outcome string, jobs, resources int) {
	if m == nil {
		return
	}
	m.RecommendationsTotal.WithLabelValues(outcome).Inc()
	if outcome == "error" || outcome == "invalid_profile" {
		return
	}
	m.RecommendedItems.WithLabelValues("jobs").Observe(float64(jobs))
	m.RecommendedItems.WithLabelValues("resources").Observe(float64(resources))
}
