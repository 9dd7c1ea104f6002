package memo

// Derived is the cached artifact: a computed value tagged with the
// fingerprint of the options that produced it.
type Derived[T any] struct {
	// Value is the computed result.
	Value T

	// Fingerprint identifies the exact options used to compute Value.
	Fingerprint Fingerprint
}

// CachedValue bundles one mutable data value with at most one cached
// derived result.
//
// The container is a value holder, not a protocol. Its single invariant is
// that a stored result was computed from the current data, enforced by Set
// dropping the result unconditionally: the container cannot tell whether
// the new data differs materially from the old, so it always invalidates.
// Replacing the data through an alias instead of Set is unsupported.
//
// CachedValue is not safe for concurrent use; see the package
// documentation.
type CachedValue[T any] struct {
	data   T
	cached *Derived[T]
}

// New creates a container holding x, with no cached result.
func New[T any](x T) *CachedValue[T] {
	return &CachedValue[T]{data: x}
}

// Get returns the current data.
func (c *CachedValue[T]) Get() T {
	return c.data
}

// Set replaces the data with y and drops any cached result.
func (c *CachedValue[T]) Set(y T) {
	c.data = y
	if c.cached != nil {
		Invalidations.Inc()
	}
	c.cached = nil
}

// CachedResult returns the stored derived artifact, if any.
func (c *CachedValue[T]) CachedResult() (Derived[T], bool) {
	if c.cached == nil {
		var zero Derived[T]
		return zero, false
	}
	return *c.cached, true
}

// SetCachedResult overwrites the stored artifact. No validation is
// performed here; checking the fingerprint against the requested options
// is the memoizer's job.
func (c *CachedValue[T]) SetCachedResult(d Derived[T]) {
	c.cached = &d
}
