package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feedly_client",
			Name:      "requests_total",
			Help:      "Requests sent to the Feedly API by method and status code (\"error\" when no response arrived).",
		},
		[]string{"method", "code"},
	)

	entryIDsTruncatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "feedly_client",
			Name:      "entry_ids_truncated_total",
			Help:      "Entry batches cut down to the .mget limit.",
		},
	)
)
