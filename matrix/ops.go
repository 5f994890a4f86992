package matrix

import (
	"fmt"
	"math"
)

// Functional operators and algebra.  Operand shape mismatches surface as
// ErrDimension; out-of-range indices panic, matching the accessor contract.

// Map returns a new matrix with f applied to every element.
func (m *Matrix) Map(f func(float64) float64) *Matrix {
	out := empty(m.nrow, m.ncol)
	for i, v := range m.data {
		out.data[i] = f(v)
	}
	return out
}

// MapElem returns a copy of m with f applied only to the element at (r, c).
// MapElem panics if the indices are out of range.
func (m *Matrix) MapElem(r, c int, f func(float64) float64) *Matrix {
	v := m.At(r, c)
	out := m.clone()
	out.data[r*m.ncol+c] = f(v)
	return out
}

// MapRow returns a copy of m with f applied to every element of row i.
func (m *Matrix) MapRow(i int, f func(float64) float64) *Matrix {
	if i < 0 || i >= m.nrow {
		panic(fmt.Sprintf("matrix: row %d out of range for %dx%d matrix", i, m.nrow, m.ncol))
	}
	out := m.clone()
	for c := 0; c < m.ncol; c++ {
		out.data[i*m.ncol+c] = f(m.at(i, c))
	}
	return out
}

// MapCol returns a copy of m with f applied to every element of column j.
func (m *Matrix) MapCol(j int, f func(float64) float64) *Matrix {
	if j < 0 || j >= m.ncol {
		panic(fmt.Sprintf("matrix: column %d out of range for %dx%d matrix", j, m.nrow, m.ncol))
	}
	out := m.clone()
	for r := 0; r < m.nrow; r++ {
		out.data[r*m.ncol+j] = f(m.at(r, j))
	}
	return out
}

// MapDiag returns a copy of m with f applied to every element of the main
// diagonal.
func (m *Matrix) MapDiag(f func(float64) float64) *Matrix {
	out := m.clone()
	n := min(m.nrow, m.ncol)
	for d := 0; d < n; d++ {
		out.data[d*m.ncol+d] = f(m.at(d, d))
	}
	return out
}

// MapSub returns a copy of m with f applied to the nr-by-nc block whose
// top-left corner is (r0, c0).  MapSub panics if the block does not lie
// inside m.
func (m *Matrix) MapSub(r0, c0, nr, nc int, f func(float64) float64) *Matrix {
	if nr <= 0 || nc <= 0 || r0 < 0 || c0 < 0 || r0+nr > m.nrow || c0+nc > m.ncol {
		panic(fmt.Sprintf("matrix: sub-matrix %dx%d at (%d,%d) out of range for %dx%d matrix",
			nr, nc, r0, c0, m.nrow, m.ncol))
	}
	out := m.clone()
	for r := r0; r < r0+nr; r++ {
		for c := c0; c < c0+nc; c++ {
			out.data[r*m.ncol+c] = f(m.at(r, c))
		}
	}
	return out
}

// Zip combines m and other elementwise with f, with m supplying the left
// operand.  Both matrices must have the same shape.
func (m *Matrix) Zip(other *Matrix, f func(a, b float64) float64) (*Matrix, error) {
	if m.nrow != other.nrow || m.ncol != other.ncol {
		return nil, fmt.Errorf("zip of %dx%d with %dx%d: %w",
			m.nrow, m.ncol, other.nrow, other.ncol, ErrDimension)
	}
	out := empty(m.nrow, m.ncol)
	for i := range m.data {
		out.data[i] = f(m.data[i], other.data[i])
	}
	return out, nil
}

// ZipRow returns a copy of m with row i combined elementwise with the
// vector other, which must have one element per column of m.  ZipRow panics
// if i is out of range.
func (m *Matrix) ZipRow(i int, other *Matrix, f func(a, b float64) float64) (*Matrix, error) {
	if !other.IsVector() || other.nrow != m.ncol {
		return nil, fmt.Errorf("row zip of %dx%d with %dx%d: %w",
			m.nrow, m.ncol, other.nrow, other.ncol, ErrDimension)
	}
	if i < 0 || i >= m.nrow {
		panic(fmt.Sprintf("matrix: row %d out of range for %dx%d matrix", i, m.nrow, m.ncol))
	}
	out := m.clone()
	for c := 0; c < m.ncol; c++ {
		out.data[i*m.ncol+c] = f(m.at(i, c), other.data[c])
	}
	return out, nil
}

// ZipCol returns a copy of m with column j combined elementwise with the
// vector other, which must have one element per row of m.  ZipCol panics if
// j is out of range.
func (m *Matrix) ZipCol(j int, other *Matrix, f func(a, b float64) float64) (*Matrix, error) {
	if !other.IsVector() || other.nrow != m.nrow {
		return nil, fmt.Errorf("column zip of %dx%d with %dx%d: %w",
			m.nrow, m.ncol, other.nrow, other.ncol, ErrDimension)
	}
	if j < 0 || j >= m.ncol {
		panic(fmt.Sprintf("matrix: column %d out of range for %dx%d matrix", j, m.nrow, m.ncol))
	}
	out := m.clone()
	for r := 0; r < m.nrow; r++ {
		out.data[r*m.ncol+j] = f(m.at(r, j), other.data[r])
	}
	return out, nil
}

// FoldVec reduces a vector top-to-bottom with f starting from init.
func (m *Matrix) FoldVec(f func(acc, x float64) float64, init float64) (float64, error) {
	if !m.IsVector() {
		return 0, fmt.Errorf("fold of %dx%d non-vector: %w", m.nrow, m.ncol, ErrDimension)
	}
	acc := init
	for _, v := range m.data {
		acc = f(acc, v)
	}
	return acc, nil
}

// Mul returns the matrix product m*other.  The column count of m must equal
// the row count of other.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.ncol != other.nrow {
		return nil, fmt.Errorf("product of %dx%d with %dx%d: %w",
			m.nrow, m.ncol, other.nrow, other.ncol, ErrDimension)
	}
	out := empty(m.nrow, other.ncol)
	for r := 0; r < m.nrow; r++ {
		for c := 0; c < other.ncol; c++ {
			var dot float64
			for k := 0; k < m.ncol; k++ {
				dot += m.at(r, k) * other.at(k, c)
			}
			out.data[r*out.ncol+c] = dot
		}
	}
	return out, nil
}

// mul is Mul for package-internal products whose shapes are correct by
// construction.
func (m *Matrix) mul(other *Matrix) *Matrix {
	out, err := m.Mul(other)
	if err != nil {
		panic(err)
	}
	return out
}

// InnerProduct returns the dot product of two vectors of equal length.
func (m *Matrix) InnerProduct(other *Matrix) (float64, error) {
	if !m.IsVector() || !other.IsVector() || m.nrow != other.nrow {
		return 0, fmt.Errorf("inner product of %dx%d with %dx%d: %w",
			m.nrow, m.ncol, other.nrow, other.ncol, ErrDimension)
	}
	var dot float64
	for i := range m.data {
		dot += m.data[i] * other.data[i]
	}
	return dot, nil
}

// OuterProduct returns the r-by-c outer product of an r-vector with a
// c-vector.
func (m *Matrix) OuterProduct(other *Matrix) (*Matrix, error) {
	if !m.IsVector() || !other.IsVector() {
		return nil, fmt.Errorf("outer product of %dx%d with %dx%d: %w",
			m.nrow, m.ncol, other.nrow, other.ncol, ErrDimension)
	}
	out := empty(m.nrow, other.nrow)
	for r := 0; r < m.nrow; r++ {
		for c := 0; c < other.nrow; c++ {
			out.data[r*out.ncol+c] = m.data[r] * other.data[c]
		}
	}
	return out, nil
}

// Transpose returns the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	out := empty(m.ncol, m.nrow)
	for r := 0; r < m.nrow; r++ {
		for c := 0; c < m.ncol; c++ {
			out.data[c*out.ncol+r] = m.at(r, c)
		}
	}
	return out
}

// Trace returns the sum of the diagonal of a square matrix.
func (m *Matrix) Trace() (float64, error) {
	if !m.IsSquare() {
		return 0, fmt.Errorf("trace of %dx%d non-square matrix: %w", m.nrow, m.ncol, ErrDimension)
	}
	var tr float64
	for d := 0; d < m.nrow; d++ {
		tr += m.at(d, d)
	}
	return tr, nil
}

// Det returns the determinant of a square matrix by cofactor expansion
// along row 0.  The cost is exponential in the matrix order; it is intended
// for the small systems this package solves and as a test oracle.
func (m *Matrix) Det() (float64, error) {
	if !m.IsSquare() {
		return 0, fmt.Errorf("determinant of %dx%d non-square matrix: %w",
			m.nrow, m.ncol, ErrDimension)
	}

	if m.nrow == 1 {
		return m.data[0], nil
	}

	var det float64
	for c := 0; c < m.ncol; c++ {
		cof, err := m.Cofactor(0, c)
		if err != nil {
			return 0, err
		}
		det += m.at(0, c) * cof
	}
	return det, nil
}

// Minor returns m with row i and column j deleted.  The matrix must have
// more than one row and column; Minor panics if the indices are out of
// range.
func (m *Matrix) Minor(i, j int) (*Matrix, error) {
	if i < 0 || i >= m.nrow || j < 0 || j >= m.ncol {
		panic(fmt.Sprintf("matrix: minor (%d,%d) out of range for %dx%d matrix",
			i, j, m.nrow, m.ncol))
	}
	if m.nrow == 1 || m.ncol == 1 {
		return nil, fmt.Errorf("minor of %dx%d matrix: %w", m.nrow, m.ncol, ErrDimension)
	}

	out := empty(m.nrow-1, m.ncol-1)
	for r, rm := 0, 0; r < m.nrow; r++ {
		if r == i {
			continue
		}
		for c, cm := 0, 0; c < m.ncol; c++ {
			if c == j {
				continue
			}
			out.data[rm*out.ncol+cm] = m.at(r, c)
			cm++
		}
		rm++
	}
	return out, nil
}

// Cofactor returns (-1)^(i+j) times the determinant of the minor at (i, j).
func (m *Matrix) Cofactor(i, j int) (float64, error) {
	minor, err := m.Minor(i, j)
	if err != nil {
		return 0, err
	}
	det, err := minor.Det()
	if err != nil {
		return 0, err
	}
	if (i+j)%2 != 0 {
		det = -det
	}
	return det, nil
}

// CofactorMatrix returns the matrix whose (i, j) element is the cofactor of
// m at (i, j).  The matrix must be square.
func (m *Matrix) CofactorMatrix() (*Matrix, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("cofactor matrix of %dx%d non-square matrix: %w",
			m.nrow, m.ncol, ErrDimension)
	}
	out := empty(m.nrow, m.ncol)
	for r := 0; r < m.nrow; r++ {
		for c := 0; c < m.ncol; c++ {
			cof, err := m.Cofactor(r, c)
			if err != nil {
				return nil, err
			}
			out.data[r*m.ncol+c] = cof
		}
	}
	return out, nil
}

// Adjugate returns the transpose of the cofactor matrix.
func (m *Matrix) Adjugate() (*Matrix, error) {
	cof, err := m.CofactorMatrix()
	if err != nil {
		return nil, err
	}
	return cof.Transpose(), nil
}

// Inverse returns the exact inverse, adjugate divided by determinant.  It
// returns ErrSingular when the determinant is zero within tolerance.  The
// iterative fitting path uses Pseudoinverse instead, which tolerates rank
// deficiency.
func (m *Matrix) Inverse() (*Matrix, error) {
	det, err := m.Det()
	if err != nil {
		return nil, err
	}
	if EqualApprox(det, 0) {
		return nil, fmt.Errorf("inverse of matrix with zero determinant: %w", ErrSingular)
	}

	adj, err := m.Adjugate()
	if err != nil {
		return nil, err
	}
	return adj.Map(func(x float64) float64 { return x / det }), nil
}

// Norm returns the Euclidean length of a vector.
func (m *Matrix) Norm() (float64, error) {
	if !m.IsVector() {
		return 0, fmt.Errorf("norm of %dx%d non-vector: %w", m.nrow, m.ncol, ErrDimension)
	}
	var ss float64
	for _, v := range m.data {
		ss += v * v
	}
	return math.Sqrt(ss), nil
}

// UnitVec returns the vector scaled to unit length.  It returns ErrSingular
// for a zero-length vector.
func (m *Matrix) UnitVec() (*Matrix, error) {
	dist, err := m.Norm()
	if err != nil {
		return nil, err
	}
	if EqualApprox(dist, 0) {
		return nil, fmt.Errorf("unit vector of zero-length vector: %w", ErrSingular)
	}
	return m.Map(func(x float64) float64 { return x / dist }), nil
}

// DiagonalizeVec returns the n-by-n matrix with the elements of an n-vector
// on the diagonal and zeros elsewhere.
func (m *Matrix) DiagonalizeVec() (*Matrix, error) {
	if !m.IsVector() {
		return nil, fmt.Errorf("diagonalize of %dx%d non-vector: %w", m.nrow, m.ncol, ErrDimension)
	}
	out := empty(m.nrow, m.nrow)
	for d := 0; d < m.nrow; d++ {
		out.data[d*m.nrow+d] = m.data[d]
	}
	return out, nil
}
