// Package metrics holds the service's prometheus collectors.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "spotreport",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "spotreport",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	ReportsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "spotreport",
		Name:      "reports_created_total",
		Help:      "Total reports successfully created.",
	})

	ReportsDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "spotreport",
		Name:      "reports_deleted_total",
		Help:      "Total reports successfully deleted.",
	})
)

// Init registers collectors; call once from main.
func Init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration, ReportsCreated, ReportsDeleted)
}
