// Package memo provides single-slot memoization with fingerprint-based
// invalidation.
//
// A CachedValue bundles one mutable data value with at most one cached
// derived result. The Memoizer decides per call whether that result was
// computed with the currently requested options; if so it is returned
// without invoking the computation, otherwise the computation runs and its
// result is stored tagged with the options fingerprint.
//
// Invalidation happens in exactly two ways:
//
// - CachedValue.Set replaces the data and drops the cached result
// - a fingerprint mismatch makes the Memoizer recompute and overwrite
//
// # Basic Usage
//
//	// Wrap the data whose derived value is expensive to compute
//	c := memo.New(m)
//
//	// Create a memoizer for the data and options types
//	memoizer := memo.NewMemoizer[*matrix.Dense, matrix.SolveOptions]("inverse")
//
//	// First call computes, second call with equal options hits the cache
//	inv, err := memoizer.Compute(c, opts, matrix.Inverse)
//
//	// Replacing the data invalidates the cached result
//	c.Set(m2)
//
// # Metrics
//
// The package exports Prometheus metrics:
//
//   - solvecache_hits_total - compute calls answered from cache
//   - solvecache_misses_total - compute calls that invoked the collaborator
//   - solvecache_invalidations_total - cached results dropped by Set
//   - solvecache_compute_errors_total - collaborator failures
//   - solvecache_compute_duration_seconds - collaborator run time
//
// # Concurrency
//
// Neither CachedValue nor Memoizer performs any locking. A container
// shared across goroutines requires external mutual exclusion around the
// whole check-compute-store sequence of Compute.
package memo
