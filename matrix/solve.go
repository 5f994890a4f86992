package matrix

import "fmt"

// Solve returns the solution x of the square system m*x = b.  The matrix is
// LUP-decomposed, b is permuted to match, and the triangular factors are
// resolved by forward then backward substitution.
func (m *Matrix) Solve(b *Matrix) (*Matrix, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("solve with %dx%d non-square matrix: %w",
			m.nrow, m.ncol, ErrDimension)
	}
	if !b.IsVector() || b.nrow != m.nrow {
		return nil, fmt.Errorf("solve %dx%d system with %dx%d right-hand side: %w",
			m.nrow, m.ncol, b.nrow, b.ncol, ErrDimension)
	}

	l, u, p, err := m.LUP()
	if err != nil {
		return nil, err
	}

	pb := p.mul(b)

	ys, err := l.ForwardSubstitution(pb)
	if err != nil {
		return nil, err
	}
	return u.BackwardSubstitution(ys)
}

// ForwardSubstitution solves m*x = b for a matrix in column echelon form,
// scanning rows top-to-bottom.  Each row's pivot is the first non-zero
// element found scanning from the diagonal toward column 0; contributions
// of already-resolved unknowns are subtracted before dividing by the pivot.
//
// An all-zero row with a non-zero right-hand side is inconsistent and
// returns ErrNoSolution.  An all-zero row with a zero right-hand side has
// infinitely many solutions; the corresponding unknown keeps the default
// value 1, which keeps eigenvector solutions away from the zero vector.
func (m *Matrix) ForwardSubstitution(b *Matrix) (*Matrix, error) {
	if !m.IsColEchelon() {
		return nil, fmt.Errorf("forward substitution on non-column-echelon matrix: %w", ErrDimension)
	}
	return m.substitute(b, false)
}

// BackwardSubstitution solves m*x = b for a matrix in row echelon form,
// scanning rows bottom-to-top with pivots located from the diagonal toward
// the last column.  Zero-row handling matches ForwardSubstitution.
func (m *Matrix) BackwardSubstitution(b *Matrix) (*Matrix, error) {
	if !m.IsRowEchelon() {
		return nil, fmt.Errorf("backward substitution on non-row-echelon matrix: %w", ErrDimension)
	}
	return m.substitute(b, true)
}

func (m *Matrix) substitute(b *Matrix, backward bool) (*Matrix, error) {
	if !b.IsVector() || b.nrow != m.nrow {
		return nil, fmt.Errorf("substitution of %dx%d system with %dx%d right-hand side: %w",
			m.nrow, m.ncol, b.nrow, b.ncol, ErrDimension)
	}

	// Unknowns default to 1, not 0: a zero default would collapse solutions
	// that must be non-zero, such as eigenvectors, and unknowns with
	// infinitely many solutions simply stay at 1.
	xs := empty(m.nrow, 1)
	for r := range xs.data {
		xs.data[r] = 1
	}

	for i := 0; i < m.nrow; i++ {
		r := i
		if backward {
			r = m.nrow - 1 - i
		}

		// Locate the row's pivot starting at the diagonal.
		ip := r
		if backward {
			for ip < m.ncol-1 && EqualApprox(m.at(r, ip), 0) {
				ip++
			}
		} else {
			for ip > 0 && EqualApprox(m.at(r, ip), 0) {
				ip--
			}
		}
		pivot := m.at(r, ip)

		if EqualApprox(pivot, 0) {
			if !EqualApprox(b.at(r, 0), 0) {
				return nil, fmt.Errorf("row %d is zero with non-zero right-hand side: %w",
					r, ErrNoSolution)
			}
			continue
		}

		// Subtract the contribution of the already-known unknowns.
		var known float64
		if backward {
			for c := ip + 1; c < m.ncol; c++ {
				known += m.at(r, c) * xs.data[c]
			}
		} else {
			for c := 0; c < ip; c++ {
				known += m.at(r, c) * xs.data[c]
			}
		}

		xs.data[ip] = (b.at(r, 0) - known) / pivot
	}

	return xs, nil
}
