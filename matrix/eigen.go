package matrix

import (
	"fmt"
	"math"
)

// maxEigenIterations bounds the QR algorithm.  Symmetric input converges
// well before this in practice; the bound guards pathological tolerance
// interactions.
const maxEigenIterations = 1000

// Eigenvalues returns the eigenvalues of a symmetric matrix as a vector in
// descending order, computed with the QR algorithm: iterate A <- R*Q from
// A = Q*R until A is upper triangular within tolerance, then read the
// diagonal top-left to bottom-right.  A matrix with fewer eigenvalues than
// rows has the vector padded with zeros.
//
// Non-symmetric input returns ErrNotSymmetric; the QR algorithm only
// guarantees convergence to real eigenvalues for symmetric matrices.
func (m *Matrix) Eigenvalues() (*Matrix, error) {
	if !m.IsSymmetric() {
		return nil, fmt.Errorf("eigenvalues of %dx%d matrix: %w", m.nrow, m.ncol, ErrNotSymmetric)
	}

	a := m
	for i := 0; i < maxEigenIterations && !a.IsUpperTri(); i++ {
		q, r := a.QR()
		a = r.mul(q)
	}

	return a.Diag(), nil
}

// Eigenvector returns a unit-length eigenvector of a square matrix for the
// given eigenvalue by solving (m - lambda*I)v = 0.  The eigenvalue is not
// verified; passing a non-eigenvalue produces a meaningless solution.
func (m *Matrix) Eigenvector(lambda float64) (*Matrix, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("eigenvector of %dx%d non-square matrix: %w",
			m.nrow, m.ncol, ErrDimension)
	}

	shifted := m.MapDiag(func(x float64) float64 { return x - lambda })
	v, err := shifted.Solve(Zeros(m.nrow, 1))
	if err != nil {
		return nil, err
	}
	return v.UnitVec()
}

// Singular returns the singular values (descending, padded with zeros) and
// the right-singular vectors of m, derived from the eigen-pairs of the Gram
// matrix m^T*m: the eigenvalues are the squared singular values and the
// eigenvectors are the right-singular vectors.  Eigenvector collection
// stops at the first zero eigenvalue, since the trailing zeros only pad
// non-existent singular values.
func (m *Matrix) Singular() (values, vectors *Matrix, err error) {
	// The Gram matrix is symmetric with non-negative real eigenvalues.
	gram := m.Transpose().mul(m)

	eig, err := gram.Eigenvalues()
	if err != nil {
		return nil, nil, err
	}

	vectors = Zeros(gram.nrow, gram.ncol)
	for i := 0; i < vectors.nrow; i++ {
		lambda := eig.at(i, 0)
		if EqualApprox(lambda, 0) {
			break
		}

		vec, err := gram.Eigenvector(lambda)
		if err != nil {
			return nil, nil, err
		}
		vectors, err = vectors.SetSubMatrix(vec, 0, i)
		if err != nil {
			return nil, nil, err
		}
	}

	// The QR algorithm returns a zero eigenvalue of a singular Gram matrix
	// as a tiny residual that may land below zero; clamp before the square
	// root so it cannot surface as NaN.
	values = eig.Map(func(x float64) float64 {
		if x < 0 || EqualApprox(x, 0) {
			return 0
		}
		return math.Sqrt(x)
	})

	return values, vectors, nil
}

// SVD returns the singular value decomposition m = U*S*V^T.  S is the
// diagonal matrix of singular values; its inverse for U = m*V*S^-1 follows
// the Moore-Penrose convention of mapping zero singular values to zero
// rather than infinity.
func (m *Matrix) SVD() (u, s, vt *Matrix, err error) {
	values, vectors, err := m.Singular()
	if err != nil {
		return nil, nil, nil, err
	}

	vt = vectors.Transpose()
	s, err = values.DiagonalizeVec()
	if err != nil {
		return nil, nil, nil, err
	}

	sinv := s.MapDiag(reciprocalOrZero)
	u = m.mul(vectors).mul(sinv)

	return u, s, vt, nil
}

// Pseudoinverse returns the Moore-Penrose pseudoinverse (U*S^-1*V^T)^T from
// the SVD of m.  It is defined for every matrix, satisfies m*m^+*m = m, and
// coincides with Inverse when m is square and invertible.
func (m *Matrix) Pseudoinverse() (*Matrix, error) {
	u, s, vt, err := m.SVD()
	if err != nil {
		return nil, err
	}

	sinv := s.MapDiag(reciprocalOrZero)

	return u.mul(sinv).mul(vt).Transpose(), nil
}

func reciprocalOrZero(x float64) float64 {
	if math.IsNaN(x) || EqualApprox(x, 0) {
		return 0
	}
	return 1 / x
}
