package memo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Hits counts compute calls answered from the cached result.
	Hits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "solvecache_hits_total",
			Help: "Total number of compute calls answered from cache",
		},
	)

	// Misses counts compute calls that invoked the collaborator.
	Misses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "solvecache_misses_total",
			Help: "Total number of compute calls that invoked the computation",
		},
	)

	// Invalidations counts cached results dropped by a data replacement.
	Invalidations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "solvecache_invalidations_total",
			Help: "Total number of cached results dropped by Set",
		},
	)

	// ComputeErrors counts collaborator failures propagated to callers.
	ComputeErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "solvecache_compute_errors_total",
			Help: "Total number of computation failures",
		},
	)

	// ComputeDuration observes collaborator run time.
	ComputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "solvecache_compute_duration_seconds",
			Help:    "Duration of computation invocations in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
