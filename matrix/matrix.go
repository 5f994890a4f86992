// Package matrix implements a dense, immutable matrix type and the linear
// algebra needed to fit generalized linear models: elementwise functional
// operators, classic algebra (product, determinant, inverse), LU and QR
// decompositions, eigenvalue extraction, SVD, and the Moore-Penrose
// pseudoinverse.
//
// Every operation returns a new Matrix; values are never mutated after
// construction, so matrices can be shared freely across goroutines.
package matrix

import (
	"fmt"
	"strings"
)

// Matrix is an immutable dense matrix of float64 values with at least one
// row and one column, stored in row-major order.  A Matrix with a single
// column is treated as a vector by the operations that require one.
type Matrix struct {
	nrow, ncol int
	data       []float64
}

// New creates a Matrix from rows.  The input must be non-empty and
// rectangular; otherwise New returns ErrDimension.
func New(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty construction input: %w", ErrDimension)
	}

	ncol := len(rows[0])
	data := make([]float64, 0, len(rows)*ncol)
	for i, row := range rows {
		if len(row) != ncol {
			return nil, fmt.Errorf("row %d has %d columns, row 0 has %d: %w",
				i, len(row), ncol, ErrDimension)
		}
		data = append(data, row...)
	}

	return &Matrix{nrow: len(rows), ncol: ncol, data: data}, nil
}

// NewVector creates an n-by-1 Matrix from vals.  The input must be
// non-empty.
func NewVector(vals []float64) (*Matrix, error) {
	if len(vals) == 0 {
		return nil, fmt.Errorf("empty vector: %w", ErrDimension)
	}
	data := make([]float64, len(vals))
	copy(data, vals)
	return &Matrix{nrow: len(vals), ncol: 1, data: data}, nil
}

// Identity returns the n-by-n identity matrix.  n must be positive.
func Identity(n int) *Matrix {
	if n <= 0 {
		panic(fmt.Sprintf("matrix: identity order %d is not positive", n))
	}
	m := &Matrix{nrow: n, ncol: n, data: make([]float64, n*n)}
	for d := 0; d < n; d++ {
		m.data[d*n+d] = 1
	}
	return m
}

// Zeros returns an r-by-c matrix of zeros.  Both dimensions must be
// positive.
func Zeros(r, c int) *Matrix {
	if r <= 0 || c <= 0 {
		panic(fmt.Sprintf("matrix: zeros shape %dx%d is not positive", r, c))
	}
	return &Matrix{nrow: r, ncol: c, data: make([]float64, r*c)}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.nrow }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.ncol }

// Dims returns the row and column counts.
func (m *Matrix) Dims() (r, c int) { return m.nrow, m.ncol }

// At returns the element at row r, column c.  At panics if the indices are
// out of range.
func (m *Matrix) At(r, c int) float64 {
	if r < 0 || r >= m.nrow || c < 0 || c >= m.ncol {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d matrix",
			r, c, m.nrow, m.ncol))
	}
	return m.data[r*m.ncol+c]
}

// at is At without the bounds check, for package-internal loops over known
// valid indices.
func (m *Matrix) at(r, c int) float64 { return m.data[r*m.ncol+c] }

// empty returns an uninitialized matrix of the given shape for internal
// construction.  Callers fill data before the value escapes the package.
func empty(r, c int) *Matrix {
	return &Matrix{nrow: r, ncol: c, data: make([]float64, r*c)}
}

// Row returns row i as a 1-by-c matrix.  Row panics if i is out of range.
func (m *Matrix) Row(i int) *Matrix {
	if i < 0 || i >= m.nrow {
		panic(fmt.Sprintf("matrix: row %d out of range for %dx%d matrix", i, m.nrow, m.ncol))
	}
	out := empty(1, m.ncol)
	copy(out.data, m.data[i*m.ncol:(i+1)*m.ncol])
	return out
}

// Col returns column j as a c-by-1 vector.  Col panics if j is out of range.
func (m *Matrix) Col(j int) *Matrix {
	if j < 0 || j >= m.ncol {
		panic(fmt.Sprintf("matrix: column %d out of range for %dx%d matrix", j, m.nrow, m.ncol))
	}
	out := empty(m.nrow, 1)
	for r := 0; r < m.nrow; r++ {
		out.data[r] = m.at(r, j)
	}
	return out
}

// Diag returns the main diagonal as a min(r,c)-by-1 vector.
func (m *Matrix) Diag() *Matrix {
	n := min(m.nrow, m.ncol)
	out := empty(n, 1)
	for d := 0; d < n; d++ {
		out.data[d] = m.at(d, d)
	}
	return out
}

// SetSubMatrix returns a copy of m with sub written at top-left position
// (r0, c0).  The block must fit inside m.
func (m *Matrix) SetSubMatrix(sub *Matrix, r0, c0 int) (*Matrix, error) {
	if r0 < 0 || c0 < 0 || r0+sub.nrow > m.nrow || c0+sub.ncol > m.ncol {
		return nil, fmt.Errorf("sub-matrix %dx%d at (%d,%d) does not fit in %dx%d matrix: %w",
			sub.nrow, sub.ncol, r0, c0, m.nrow, m.ncol, ErrDimension)
	}

	out := m.clone()
	for r := 0; r < sub.nrow; r++ {
		for c := 0; c < sub.ncol; c++ {
			out.data[(r0+r)*m.ncol+c0+c] = sub.at(r, c)
		}
	}
	return out, nil
}

// RowSwap returns a copy of m with rows i and j exchanged.  RowSwap panics
// if either index is out of range.
func (m *Matrix) RowSwap(i, j int) *Matrix {
	if i < 0 || i >= m.nrow || j < 0 || j >= m.nrow {
		panic(fmt.Sprintf("matrix: row swap (%d,%d) out of range for %dx%d matrix",
			i, j, m.nrow, m.ncol))
	}
	out := m.clone()
	for c := 0; c < m.ncol; c++ {
		out.data[i*m.ncol+c], out.data[j*m.ncol+c] = m.at(j, c), m.at(i, c)
	}
	return out
}

func (m *Matrix) clone() *Matrix {
	out := empty(m.nrow, m.ncol)
	copy(out.data, m.data)
	return out
}

// Equal reports whether m and other have the same shape and elementwise
// equal values within Epsilon.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.nrow != other.nrow || m.ncol != other.ncol {
		return false
	}
	for i, v := range m.data {
		if !EqualApprox(v, other.data[i]) {
			return false
		}
	}
	return true
}

// String renders the matrix one row per line with elements rounded to three
// decimal places.  It is a debugging aid, not a wire format.
func (m *Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.nrow; r++ {
		for c := 0; c < m.ncol; c++ {
			if c > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%v", Round(m.at(r, c)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
