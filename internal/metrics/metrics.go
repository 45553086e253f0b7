// Package metrics holds the Prometheus collectors exported by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rustaceans"

// Metrics groups the collectors. Create one per registry.
type Metrics struct {
	Issuances    *prometheus.CounterVec
	Rejections   *prometheus.CounterVec
	AdminChanges *prometheus.CounterVec
	TotalSupply  prometheus.Gauge
	PublishFails prometheus.Counter

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New registers the collectors on reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Issuances: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "issuance",
			Name:      "tokens_total",
			Help:      "Total tokens issued by issuance path.",
		}, []string{"kind"}),
		Rejections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "issuance",
			Name:      "rejections_total",
			Help:      "Total rejected calls by operation and diagnostic reason.",
		}, []string{"operation", "reason"}),
		AdminChanges: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "admin",
			Name:      "changes_total",
			Help:      "Total committed owner-only operations.",
		}, []string{"operation"}),
		TotalSupply: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "issuance",
			Name:      "total_supply",
			Help:      "Tokens issued so far, as of the last committed issuance.",
		}),
		PublishFails: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "publish_failures_total",
			Help:      "Issuance events that could not be published.",
		}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// NewNop returns collectors registered nowhere, for callers that do not export metrics
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
