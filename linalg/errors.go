package linalg

import "errors"

// Sentinel errors for linalg operations.
var (
	// ErrDimensionMismatch indicates incompatible or non-square matrix shapes.
	ErrDimensionMismatch = errors.New("linalg: matrix dimension mismatch")
	// ErrNotHermitian indicates the input matrix is not Hermitian within tolerance.
	ErrNotHermitian = errors.New("linalg: matrix is not Hermitian")
	// ErrNotPositiveDefinite indicates a Cholesky pivot was not strictly positive.
	ErrNotPositiveDefinite = errors.New("linalg: matrix is not positive definite")
	// ErrNoConvergence indicates an iterative decomposition exceeded its sweep budget.
	ErrNoConvergence = errors.New("linalg: decomposition did not converge")
	// ErrSingular indicates a matrix with no inverse (or a zero singular value).
	ErrSingular = errors.New("linalg: matrix is singular")
	// ErrSingularDiagonal indicates a zero entry in a diagonal operator being divided by.
	ErrSingularDiagonal = errors.New("linalg: diagonal operator has a zero entry")
)
