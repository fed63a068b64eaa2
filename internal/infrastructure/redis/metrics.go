package redis

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scoring",
			Name:      "store_retries_total",
			Help:      "Number of store operations retried after a connection error",
		},
		[]string{"op"},
	)

	storeFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scoring",
			Name:      "store_failures_total",
			Help:      "Number of store operations failed after all attempts",
		},
		[]string{"op"},
	)

	scoreCacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scoring",
			Name:      "score_cache_lookups_total",
			Help:      "Score cache lookups by result",
		},
		[]string{"result"},
	)
)
