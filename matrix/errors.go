package matrix

import "errors"

// Sentinel errors returned by matrix operations.  Callers match them with
// errors.Is; operations may wrap them with additional context.
var (
	// ErrDimension indicates a shape mismatch: jagged or empty construction
	// input, incompatible operands, or an operation that requires a square,
	// vector, or triangular form it did not receive.
	ErrDimension = errors.New("matrix: dimension mismatch")

	// ErrSingular indicates that an exact inverse was requested for a matrix
	// whose determinant is zero within tolerance, or that a unit vector was
	// requested for a zero-length vector.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotSymmetric indicates that an eigenvalue decomposition was
	// requested for a non-symmetric matrix.  The QR algorithm only
	// guarantees convergence to real eigenvalues for symmetric input.
	ErrNotSymmetric = errors.New("matrix: matrix is not symmetric")

	// ErrNoSolution indicates an inconsistent linear system: a substitution
	// pass met an all-zero row whose right-hand side value is non-zero.
	ErrNoSolution = errors.New("matrix: system has no solution")
)
