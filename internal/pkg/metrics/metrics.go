package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitness_evaluations_total",
			Help: "Total number of fitness evaluations by resulting tier",
		},
		[]string{"tier"},
	)

	EvaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "fitness_evaluation_duration_seconds",
			Help: "Duration of a single fitness evaluation including data fetch",
		},
	)

	BatchPositionsEvaluated = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fitness_batch_positions_evaluated",
			Help:    "Number of open positions evaluated per batch request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assessment_cache_hits_total",
			Help: "Assessment cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assessment_cache_misses_total",
			Help: "Assessment cache misses",
		},
	)

	CatalogSyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_sync_runs_total",
			Help: "Recorded course catalog sync runs by source and status",
		},
		[]string{"source", "status"},
	)

	WSClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ws_connected_clients",
			Help: "Currently connected websocket clients",
		},
	)
)
