// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planmate_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "planmate_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"route", "method"},
	)

	PlansGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planmate_plans_generated_total",
			Help: "Total number of business plan generation calls",
		},
		[]string{"template", "outcome"},
	)

	SessionSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planmate_session_saves_total",
			Help: "Total number of interview session persistence writes",
		},
		[]string{"outcome"},
	)
)
