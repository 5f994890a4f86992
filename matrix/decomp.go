package matrix

import (
	"fmt"
	"math"
)

// partialPivot returns the index of the row with the largest absolute value
// in column d, at or below row d.  Ties keep the first occurrence.
func (m *Matrix) partialPivot(d int) int {
	pivot := d
	best := math.Abs(m.at(d, d))
	for r := d + 1; r < m.nrow; r++ {
		if v := math.Abs(m.at(r, d)); v > best {
			pivot = r
			best = v
		}
	}
	return pivot
}

// nonZeroTailRow returns the first row at or below d with a non-zero
// element in columns d onward, or false when all remaining rows are zero.
func (m *Matrix) nonZeroTailRow(d int) (int, bool) {
	for r := d; r < m.nrow; r++ {
		for c := d; c < m.ncol; c++ {
			if !EqualApprox(m.at(r, c), 0) {
				return r, true
			}
		}
	}
	return 0, false
}

// LUP returns the LU decomposition with partial pivoting of a square
// matrix, satisfying P*m = L*U with L unit lower triangular, U upper
// triangular, and P a permutation matrix.
//
// For each pivot column the row holding the largest absolute value at or
// below the diagonal is swapped into place in L, U, and P together so the
// permutations stay aligned.  A pivot that is zero within tolerance means
// the column is already reduced and elimination for it is skipped; a row
// left with no remaining entries is swapped below the rows that still
// carry pivots in later columns, so singular input still yields U in row
// echelon form.  Partial pivoting bounds the growth of rounding error over
// naive elimination.
func (m *Matrix) LUP() (l, u, p *Matrix, err error) {
	if !m.IsSquare() {
		return nil, nil, nil, fmt.Errorf("LUP of %dx%d non-square matrix: %w",
			m.nrow, m.ncol, ErrDimension)
	}

	l = Zeros(m.nrow, m.nrow)
	u = m.clone()
	p = Identity(m.nrow)

	for d := 0; d < m.ncol-1; d++ {
		pivot := u.partialPivot(d)
		l = l.RowSwap(d, pivot)
		u = u.RowSwap(d, pivot)
		p = p.RowSwap(d, pivot)

		pv := u.at(d, d)
		if EqualApprox(pv, 0) {
			if r, ok := u.nonZeroTailRow(d); ok && r != d {
				l = l.RowSwap(d, r)
				u = u.RowSwap(d, r)
				p = p.RowSwap(d, r)
			}
			continue
		}

		pivotRow := u.Row(d).Transpose()
		for r := d + 1; r < m.nrow; r++ {
			mult := u.at(r, d) / pv
			l = l.MapElem(r, d, func(float64) float64 { return mult })
			u, err = u.ZipRow(r, pivotRow, func(x, y float64) float64 { return x - mult*y })
			if err != nil {
				return nil, nil, nil, err
			}
		}
	}

	l = l.MapDiag(func(float64) float64 { return 1 })

	return l, u, p, nil
}

// HouseholderReflection returns the Householder matrix H reflecting a
// vector onto the i-th basis direction, H*x = ±||x||*e_i.  The reflection
// sign follows the sign of element i to avoid cancellation when the vector
// already lies close to the basis direction.  The receiver must be a
// non-zero vector.
func (m *Matrix) HouseholderReflection(i int) (*Matrix, error) {
	if !m.IsVector() {
		return nil, fmt.Errorf("householder reflection of %dx%d non-vector: %w",
			m.nrow, m.ncol, ErrDimension)
	}
	if i < 0 || i >= m.nrow {
		panic(fmt.Sprintf("matrix: householder direction %d out of range for %d-vector",
			i, m.nrow))
	}

	dist, err := m.Norm()
	if err != nil {
		return nil, err
	}
	if EqualApprox(dist, 0) {
		return nil, fmt.Errorf("householder reflection of zero-length vector: %w", ErrSingular)
	}

	sign := 1.0
	if m.data[i] < 0 {
		sign = -1
	}

	// v = x + sign*||x||*e_i, u = v normalized, H = I - 2*u*u^T.
	v := m.MapElem(i, 0, func(x float64) float64 { return x + sign*dist })
	u, err := v.UnitVec()
	if err != nil {
		return nil, err
	}
	proj, err := u.OuterProduct(u)
	if err != nil {
		return nil, err
	}

	return proj.Map(func(x float64) float64 { return -2 * x }).
		MapDiag(func(x float64) float64 { return 1 + x }), nil
}

// QR returns the QR decomposition of m via Householder reflections, with Q
// orthogonal and R upper triangular, m = Q*R.
//
// Q starts as the identity and R as m.  Each diagonal index takes column d
// of R with the entries above row d zeroed; a sub-vector of zero length is
// already reduced and skipped, otherwise its reflection updates Q and R.
func (m *Matrix) QR() (q, r *Matrix) {
	q = Identity(m.nrow)
	r = m.clone()

	n := min(m.nrow, m.ncol)
	for d := 0; d < n; d++ {
		xs := r.Col(d)
		if d > 0 {
			xs = xs.MapSub(0, 0, d, 1, func(float64) float64 { return 0 })
		}

		dist, _ := xs.Norm()
		if EqualApprox(dist, 0) {
			continue
		}

		h, err := xs.HouseholderReflection(d)
		if err != nil {
			// Unreachable: xs is a non-zero column vector.
			panic(err)
		}

		q = q.mul(h)
		r = h.mul(r)
	}

	return q, r
}
