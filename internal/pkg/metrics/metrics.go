package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "erc20_indexer"

var (
	// QueriesTotal counts balance queries by outcome: ok, invalid_input, fetch_failed, superseded.
	QueriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queries_total",
		Help:      "Balance queries by outcome.",
	}, []string{"outcome"})

	// ValidationFailuresTotal counts rejected inputs by failure reason.
	ValidationFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Rejected address or name inputs by reason.",
	}, []string{"reason"})

	// UpstreamRequestDuration observes indexing API and RPC calls.
	UpstreamRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Latency of calls to the indexing API and JSON-RPC nodes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "status"})

	// MetadataCacheLookups counts token metadata cache lookups by result: hit or miss.
	MetadataCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "metadata_cache_lookups_total",
		Help:      "Token metadata cache lookups.",
	}, []string{"result"})

	// TokensPerQuery observes how many token contracts a query returned.
	TokensPerQuery = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "tokens_per_query",
		Help:      "Number of token balances returned per query.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	})

	registerOnce sync.Once
)

// MustRegisterMetrics registers every collector with the default registry. Safe to call more than once.
func MustRegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			QueriesTotal,
			ValidationFailuresTotal,
			UpstreamRequestDuration,
			MetadataCacheLookups,
			TokensPerQuery,
		)
	})
}

// ObserveUpstream records the duration of an upstream call started at start.
func ObserveUpstream(method string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	UpstreamRequestDuration.WithLabelValues(method, status).Observe(time.Since(start).Seconds())
}
