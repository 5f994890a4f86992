package matrix

// Structural predicates.  All zero and equality checks go through the
// package comparator, never exact float comparison.

// IsSquare reports whether m has as many rows as columns.
func (m *Matrix) IsSquare() bool {
	return m.nrow == m.ncol
}

// IsVector reports whether m has exactly one column.
func (m *Matrix) IsVector() bool {
	return m.ncol == 1
}

// IsSymmetric reports whether m is square with equal elements across the
// diagonal.
func (m *Matrix) IsSymmetric() bool {
	if !m.IsSquare() {
		return false
	}
	for r := 1; r < m.nrow; r++ {
		for c := 0; c < r; c++ {
			if !EqualApprox(m.at(r, c), m.at(c, r)) {
				return false
			}
		}
	}
	return true
}

// IsLowerTri reports whether m is square with all elements above the
// diagonal equal to zero.  An all-zero matrix is lower triangular.
func (m *Matrix) IsLowerTri() bool {
	if !m.IsSquare() {
		return false
	}
	for r := 0; r < m.nrow; r++ {
		for c := r + 1; c < m.ncol; c++ {
			if !EqualApprox(m.at(r, c), 0) {
				return false
			}
		}
	}
	return true
}

// IsUpperTri reports whether m is square with all elements below the
// diagonal equal to zero.  An all-zero matrix is upper triangular.
func (m *Matrix) IsUpperTri() bool {
	if !m.IsSquare() {
		return false
	}
	for r := 1; r < m.nrow; r++ {
		for c := 0; c < r; c++ {
			if !EqualApprox(m.at(r, c), 0) {
				return false
			}
		}
	}
	return true
}

// IsRowEchelon reports whether each row's left-most non-zero element sits
// strictly to the right of the pivots of the rows above it.  The scan runs
// bottom-to-top; an all-zero row has no pivot and is only allowed below
// every pivot row.
func (m *Matrix) IsRowEchelon() bool {
	prevPivot := m.ncol
	for r := m.nrow - 1; r >= 0; r-- {
		c := 0
		for c < prevPivot && EqualApprox(m.at(r, c), 0) {
			c++
		}
		if c == prevPivot && c != m.ncol {
			return false
		}
		prevPivot = c
	}
	return true
}

// IsColEchelon reports whether each row's right-most non-zero element sits
// strictly to the left of the pivots of the rows below it.  The scan runs
// top-to-bottom; an all-zero row has no pivot and is only allowed above
// every pivot row.
func (m *Matrix) IsColEchelon() bool {
	prevPivot := -1
	for r := 0; r < m.nrow; r++ {
		c := m.ncol - 1
		for c > prevPivot && EqualApprox(m.at(r, c), 0) {
			c--
		}
		if c == prevPivot && c != -1 {
			return false
		}
		prevPivot = c
	}
	return true
}

// IsInvertible reports whether m is square with a non-zero determinant.
func (m *Matrix) IsInvertible() bool {
	if !m.IsSquare() {
		return false
	}
	det, _ := m.Det()
	return !EqualApprox(det, 0)
}

// IsEigenvalue reports whether lambda satisfies det(m - lambda*I) = 0
// within tolerance.  Only square matrices have eigenvalues; IsEigenvalue
// returns false for non-square input.
func (m *Matrix) IsEigenvalue(lambda float64) bool {
	if !m.IsSquare() {
		return false
	}
	det, _ := m.MapDiag(func(x float64) float64 { return x - lambda }).Det()
	return EqualApprox(det, 0)
}
