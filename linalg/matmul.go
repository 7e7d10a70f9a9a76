package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Mul returns the dense product A·B of two complex matrices. gonum's CDense
// carries no multiplication of its own, so every matrix product in the
// solver routes through this one loop.
//
// Accepting the CMatrix interface lets callers pass conjugate-transpose
// views (m.H()) without materializing them.
// Returns ErrDimensionMismatch when the inner dimensions disagree.
// Complexity: O(r·k·c) time for an r×k by k×c product.
func Mul(a, b mat.CMatrix) (*mat.CDense, error) {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ca != rb {
		return nil, fmt.Errorf("Mul: %dx%d by %dx%d: %w", ra, ca, rb, cb, ErrDimensionMismatch)
	}

	out := mat.NewCDense(ra, cb, nil)
	for i := 0; i < ra; i++ {
		for j := 0; j < cb; j++ {
			var sum complex128
			for k := 0; k < ca; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}

	return out, nil
}
