package memo

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/Sternrassler/solvecache/pkg/logging"
)

// ComputeFunc is the external computation collaborator: it derives a new
// value from the current data and the given options. A failure must be
// reported through the error return; failed results are never cached.
type ComputeFunc[T, O any] func(data T, opts O) (T, error)

// Memoizer consults a CachedValue before invoking the computation and
// stores fresh results tagged with the options fingerprint.
type Memoizer[T, O any] struct {
	logger zerolog.Logger
}

// NewMemoizer creates a memoizer that logs cache activity under the given
// component name.
func NewMemoizer[T, O any](component string) *Memoizer[T, O] {
	return &Memoizer[T, O]{
		logger: logging.NewLogger(component),
	}
}

// Compute returns the derived value for the container's current data and
// the given options.
//
// If the container holds a result whose fingerprint matches opts, that
// result is returned and fn is not invoked. Otherwise fn runs on the
// current data: on success the result is stored tagged with the options
// fingerprint and returned; on failure the error is propagated unchanged
// and the container keeps its prior state, so a still-valid result cached
// under different options survives a failed call.
//
// A fingerprint mismatch is not an error: the old artifact is silently
// overwritten by the fresh result.
func (m *Memoizer[T, O]) Compute(c *CachedValue[T], opts O, fn ComputeFunc[T, O]) (T, error) {
	var zero T

	fp, err := FingerprintOf(opts)
	if err != nil {
		return zero, err
	}

	if d, ok := c.CachedResult(); ok && d.Fingerprint == fp {
		Hits.Inc()
		m.logger.Debug().
			Stringer("fingerprint", fp).
			Msg("returning cached result")
		return d.Value, nil
	}

	Misses.Inc()

	start := time.Now()
	result, err := fn(c.Get(), opts)
	ComputeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		ComputeErrors.Inc()
		return zero, err
	}

	c.SetCachedResult(Derived[T]{Value: result, Fingerprint: fp})
	return result, nil
}
