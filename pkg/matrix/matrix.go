// Package matrix provides a small dense matrix type and the inversion
// routine that solvecache consumes as its external computation.
package matrix

import (
	"errors"
	"fmt"
	"math"
)

// ErrRaggedRows indicates FromRows input whose rows differ in length.
var ErrRaggedRows = errors.New("rows have unequal lengths")

// Dense is a row-major matrix of float64 values.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense creates a rows x cols zero matrix. Panics on non-positive
// dimensions (programmer error).
func NewDense(rows, cols int) *Dense {
	if rows <= 0 || cols <= 0 {
		panic("matrix: NewDense: dimensions must be positive")
	}
	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// FromRows builds a matrix from row slices. The input is copied.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("from rows: matrix must not be empty")
	}
	m := NewDense(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.cols {
			return nil, fmt.Errorf("from rows: row %d has %d values, want %d: %w",
				i, len(row), m.cols, ErrRaggedRows)
		}
		copy(m.data[i*m.cols:(i+1)*m.cols], row)
	}
	return m, nil
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Dense {
	m := NewDense(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns the value at row i, column j. Panics on out-of-range indices.
func (m *Dense) At(i, j int) float64 {
	m.checkBounds(i, j)
	return m.data[i*m.cols+j]
}

// Set assigns v at row i, column j. Panics on out-of-range indices.
func (m *Dense) Set(i, j int, v float64) {
	m.checkBounds(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Dense) checkBounds(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d matrix",
			i, j, m.rows, m.cols))
	}
}

// Clone returns a deep copy, independent of the original.
func (m *Dense) Clone() *Dense {
	out := NewDense(m.rows, m.cols)
	copy(out.data, m.data)
	return out
}

// RowSlices returns the matrix as freshly allocated row slices.
func (m *Dense) RowSlices() [][]float64 {
	rows := make([][]float64, m.rows)
	for i := range rows {
		rows[i] = make([]float64, m.cols)
		copy(rows[i], m.data[i*m.cols:(i+1)*m.cols])
	}
	return rows
}

// Mul returns the product m * other. Panics when the inner dimensions do
// not match.
func (m *Dense) Mul(other *Dense) *Dense {
	if m.cols != other.rows {
		panic(fmt.Sprintf("matrix: Mul: %dx%d times %dx%d", m.rows, m.cols, other.rows, other.cols))
	}
	out := NewDense(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			v := m.data[i*m.cols+k]
			if v == 0 {
				continue
			}
			for j := 0; j < other.cols; j++ {
				out.data[i*out.cols+j] += v * other.data[k*other.cols+j]
			}
		}
	}
	return out
}

// EqualApprox reports whether m and other have the same shape and all
// entries within tol of each other.
func (m *Dense) EqualApprox(other *Dense, tol float64) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if math.Abs(v-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// swapRows exchanges rows i and j in place.
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	ri := m.data[i*m.cols : (i+1)*m.cols]
	rj := m.data[j*m.cols : (j+1)*m.cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// scaleRow multiplies row i by f in place.
func (m *Dense) scaleRow(i int, f float64) {
	row := m.data[i*m.cols : (i+1)*m.cols]
	for k := range row {
		row[k] *= f
	}
}

// addScaledRow adds f times row src to row dst in place.
func (m *Dense) addScaledRow(dst, src int, f float64) {
	rd := m.data[dst*m.cols : (dst+1)*m.cols]
	rs := m.data[src*m.cols : (src+1)*m.cols]
	for k := range rd {
		rd[k] += f * rs[k]
	}
}
