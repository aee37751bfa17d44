package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fx_api",
		Name:      "upstream_requests_total",
		Help:      "Upstream CSV lookups by outcome.",
	}, []string{"outcome"})

	UpstreamInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "fx_api",
		Name:      "upstream_in_flight",
		Help:      "Upstream CSV requests currently running.",
	})

	UpstreamDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fx_api",
		Name:      "upstream_request_duration_seconds",
		Help:      "Latency of upstream CSV requests.",
		Buckets:   prometheus.DefBuckets,
	})

	BatchSymbols = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fx_api",
		Name:      "batch_symbols",
		Help:      "Number of symbols per closes request.",
		Buckets:   []float64{1, 5, 10, 20, 30, 42, 60, 100},
	})
)

// Outcome labels for UpstreamRequests.
const (
	OutcomeOK          = "ok"
	OutcomeHTTPError   = "http_error"
	OutcomeTransport   = "transport_error"
	OutcomeRowNotFound = "row_not_found"
	OutcomeRejected    = "rejected"
)
