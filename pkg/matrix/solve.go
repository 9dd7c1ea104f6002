package matrix

import (
	"errors"
	"fmt"
	"math"
)

// DefaultTolerance is the pivot magnitude below which a matrix is treated
// as singular.
const DefaultTolerance = 1e-12

var (
	// ErrNotSquare indicates that Inverse received a non-square matrix.
	ErrNotSquare = errors.New("matrix is not square")

	// ErrSingular indicates that no acceptable pivot could be found.
	ErrSingular = errors.New("matrix is singular")

	// ErrInvalidTolerance indicates a negative or non-finite tolerance.
	ErrInvalidTolerance = errors.New("tolerance must be non-negative and finite")
)

// SolveOptions are the tuning parameters accepted by Inverse. The struct
// is plain serializable data so callers can fingerprint it.
type SolveOptions struct {
	// Tolerance is the smallest pivot magnitude accepted during
	// elimination; any pivot below it fails the inversion with
	// ErrSingular. Zero selects DefaultTolerance.
	Tolerance float64 `json:"tolerance"`

	// Refine runs one Newton refinement step on the computed inverse,
	// trading two extra multiplications for accuracy on ill-conditioned
	// input.
	Refine bool `json:"refine"`
}

// DefaultSolveOptions returns the options Inverse uses in the common case.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{Tolerance: DefaultTolerance}
}

// Inverse computes the inverse of m by Gauss-Jordan elimination with
// partial pivoting. m is not modified.
//
// Fails with ErrNotSquare for non-square input, ErrInvalidTolerance for a
// nonsensical tolerance, and ErrSingular when elimination finds no pivot
// of magnitude at least the tolerance. Deterministic: identical input and
// options produce identical results.
func Inverse(m *Dense, opts SolveOptions) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("inverse: nil matrix")
	}
	if m.rows != m.cols {
		return nil, fmt.Errorf("inverse: %dx%d: %w", m.rows, m.cols, ErrNotSquare)
	}

	tol := opts.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return nil, fmt.Errorf("inverse: tolerance %v: %w", opts.Tolerance, ErrInvalidTolerance)
	}

	n := m.rows
	a := m.Clone()
	inv := Identity(n)

	for col := 0; col < n; col++ {
		// Partial pivoting: pick the largest remaining entry in this
		// column for stability and a deterministic row order.
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a.data[r*n+col]) > math.Abs(a.data[pivot*n+col]) {
				pivot = r
			}
		}
		if math.Abs(a.data[pivot*n+col]) < tol {
			return nil, fmt.Errorf("inverse: column %d: %w", col, ErrSingular)
		}

		a.swapRows(col, pivot)
		inv.swapRows(col, pivot)

		p := a.data[col*n+col]
		a.scaleRow(col, 1/p)
		inv.scaleRow(col, 1/p)

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := a.data[r*n+col]
			if f == 0 {
				continue
			}
			a.addScaledRow(r, col, -f)
			inv.addScaledRow(r, col, -f)
		}
	}

	if opts.Refine {
		inv = refine(m, inv)
	}
	return inv, nil
}

// refine runs one step of Newton iteration: X' = X (2I - A X). Quadratic
// convergence means a single step already recovers most of the accuracy
// lost to rounding during elimination.
func refine(a, x *Dense) *Dense {
	n := a.rows
	residual := a.Mul(x)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := -residual.data[i*n+j]
			if i == j {
				v += 2
			}
			residual.data[i*n+j] = v
		}
	}
	return x.Mul(residual)
}
