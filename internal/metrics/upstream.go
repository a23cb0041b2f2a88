package metrics

import "github.com/prometheus/client_golang/prometheus"

// Upstream relay Prometheus metrics.
var (
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hooprelay",
			Name:      "upstream_requests_total",
			Help:      "Total number of outbound upstream requests",
		},
		[]string{"provider", "status"},
	)

	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hooprelay",
			Name:      "upstream_request_duration_seconds",
			Help:      "Outbound upstream request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider"},
	)

	UpstreamErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hooprelay",
			Name:      "upstream_errors_total",
			Help:      "Total upstream relay errors",
		},
		[]string{"provider", "error_type"},
	)

	QuotaConsumedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hooprelay",
			Name:      "quota_consumed_total",
			Help:      "Quota-counted upstream calls recorded in the ledger",
		},
		[]string{"resource"},
	)
)

var upstreamMetricsRegistered bool

// RegisterUpstreamMetrics registers Prometheus upstream metrics. Must be called once from main.
func RegisterUpstreamMetrics() {
	if upstreamMetricsRegistered {
		return
	}
	prometheus.MustRegister(UpstreamRequestsTotal)
	prometheus.MustRegister(UpstreamRequestDuration)
	prometheus.MustRegister(UpstreamErrorsTotal)
	prometheus.MustRegister(QuotaConsumedTotal)
	upstreamMetricsRegistered = true
}
