package linalg

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Inverse computes M⁻¹ by LU decomposition with partial pivoting, solving
// against the identity column by column.
// Returns ErrDimensionMismatch or ErrSingular.
// Complexity: O(n³) time, O(n²) memory.
func Inverse(m *mat.CDense) (*mat.CDense, error) {
	// Stage 1: Validate input
	n, c := m.Dims()
	if n != c {
		return nil, fmt.Errorf("Inverse: non-square %dx%d: %w", n, c, ErrDimensionMismatch)
	}

	// Stage 2: In-place LU factorization with partial pivoting
	lu := mat.NewCDense(n, n, nil)
	lu.Copy(m)
	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}
	scale := frobNorm(m)

	for k := 0; k < n; k++ {
		// Select the pivot row by largest magnitude in column k.
		pivRow, pivAbs := k, cmplx.Abs(lu.At(k, k))
		for i := k + 1; i < n; i++ {
			if a := cmplx.Abs(lu.At(i, k)); a > pivAbs {
				pivRow, pivAbs = i, a
			}
		}
		if pivAbs <= pdTol*(scale+1) {
			return nil, fmt.Errorf("Inverse: pivot %d = %g: %w", k, pivAbs, ErrSingular)
		}
		if pivRow != k {
			swapRows(lu, k, pivRow)
			piv[k], piv[pivRow] = piv[pivRow], piv[k]
		}
		// Eliminate below the pivot, storing multipliers in the lower triangle.
		pivot := lu.At(k, k)
		for i := k + 1; i < n; i++ {
			f := lu.At(i, k) / pivot
			lu.Set(i, k, f)
			for j := k + 1; j < n; j++ {
				lu.Set(i, j, lu.At(i, j)-f*lu.At(k, j))
			}
		}
	}

	// Stage 3: Solve L·U·X = P·I column by column
	inv := mat.NewCDense(n, n, nil)
	col := make([]complex128, n)
	for e := 0; e < n; e++ {
		// Permuted unit vector.
		for i := 0; i < n; i++ {
			col[i] = 0
			if piv[i] == e {
				col[i] = 1
			}
		}
		// Forward substitution with the unit lower triangle.
		for i := 1; i < n; i++ {
			for k := 0; k < i; k++ {
				col[i] -= lu.At(i, k) * col[k]
			}
		}
		// Back substitution with the upper triangle.
		for i := n - 1; i >= 0; i-- {
			for k := i + 1; k < n; k++ {
				col[i] -= lu.At(i, k) * col[k]
			}
			col[i] /= lu.At(i, i)
		}
		for i := 0; i < n; i++ {
			inv.Set(i, e, col[i])
		}
	}

	return inv, nil
}

// swapRows exchanges rows i and j of m in place.
func swapRows(m *mat.CDense, i, j int) {
	_, c := m.Dims()
	for k := 0; k < c; k++ {
		vi, vj := m.At(i, k), m.At(j, k)
		m.Set(i, k, vj)
		m.Set(j, k, vi)
	}
}
