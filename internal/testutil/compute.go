// Package testutil provides testing utilities for solvecache.
package testutil

// CountingCompute is a configurable fake compute collaborator for testing.
// It records every invocation and can be scripted to fail.
type CountingCompute[T, O any] struct {
	// Impl produces the result for an invocation. Required unless Err is
	// set.
	Impl func(data T, opts O) (T, error)

	// Err, when non-nil, makes every invocation fail without calling Impl.
	Err error

	// Tracking
	Calls    int
	LastOpts O
}

// Compute implements the collaborator contract. Pass it as the compute
// function, e.g. memoizer.Compute(c, opts, fake.Compute).
func (f *CountingCompute[T, O]) Compute(data T, opts O) (T, error) {
	f.Calls++
	f.LastOpts = opts
	if f.Err != nil {
		var zero T
		return zero, f.Err
	}
	return f.Impl(data, opts)
}
