package linalg

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// pdTol is the relative pivot threshold below which Cholesky reports a
// non-positive-definite matrix.
const pdTol = 1e-14

// Cholesky factorizes a Hermitian positive-definite matrix as B = L·Lᴴ with
// L lower triangular and a real positive diagonal.
// Returns ErrDimensionMismatch or ErrNotPositiveDefinite.
// Complexity: O(n³) time, O(n²) memory.
func Cholesky(b *mat.CDense) (*mat.CDense, error) {
	// Stage 1: Validate input
	n, c := b.Dims()
	if n != c {
		return nil, fmt.Errorf("Cholesky: non-square %dx%d: %w", n, c, ErrDimensionMismatch)
	}
	scale := frobNorm(b)

	// Stage 2: Column-by-column factorization
	l := mat.NewCDense(n, n, nil)
	for j := 0; j < n; j++ {
		// Diagonal pivot: d = B[j][j] − Σ_{k<j} |L[j][k]|²
		d := real(b.At(j, j))
		for k := 0; k < j; k++ {
			v := cmplx.Abs(l.At(j, k))
			d -= v * v
		}
		if d <= pdTol*(scale+1) {
			return nil, fmt.Errorf("Cholesky: pivot %d = %g: %w", j, d, ErrNotPositiveDefinite)
		}
		ljj := math.Sqrt(d)
		l.Set(j, j, complex(ljj, 0))

		// Sub-diagonal column: L[i][j] = (B[i][j] − Σ_k L[i][k]·conj(L[j][k])) / L[j][j]
		for i := j + 1; i < n; i++ {
			v := b.At(i, j)
			for k := 0; k < j; k++ {
				v -= l.At(i, k) * cmplx.Conj(l.At(j, k))
			}
			l.Set(i, j, v/complex(ljj, 0))
		}
	}

	return l, nil
}

// forwardSolve solves L·X = B for lower-triangular L with nonzero diagonal.
func forwardSolve(l, b *mat.CDense) *mat.CDense {
	n, _ := l.Dims()
	_, m := b.Dims()
	x := mat.NewCDense(n, m, nil)
	for j := 0; j < m; j++ {
		for i := 0; i < n; i++ {
			v := b.At(i, j)
			for k := 0; k < i; k++ {
				v -= l.At(i, k) * x.At(k, j)
			}
			x.Set(i, j, v/l.At(i, i))
		}
	}

	return x
}

// backSolveH solves Lᴴ·X = B for lower-triangular L (so Lᴴ is upper
// triangular) with nonzero diagonal.
func backSolveH(l, b *mat.CDense) *mat.CDense {
	n, _ := l.Dims()
	_, m := b.Dims()
	x := mat.NewCDense(n, m, nil)
	for j := 0; j < m; j++ {
		for i := n - 1; i >= 0; i-- {
			v := b.At(i, j)
			for k := i + 1; k < n; k++ {
				// (Lᴴ)[i][k] = conj(L[k][i])
				v -= cmplx.Conj(l.At(k, i)) * x.At(k, j)
			}
			x.Set(i, j, v/cmplx.Conj(l.At(i, i)))
		}
	}

	return x
}

// SolveGeneralized solves the generalized eigenproblem A·x = λ·B·x for
// Hermitian A and Hermitian positive-definite B.
//
// The problem is reduced via the Cholesky factor of B: with B = L·Lᴴ the
// standard Hermitian problem C = L⁻¹·A·L⁻ᴴ shares the (real) eigenvalues of
// the pencil, and x = L⁻ᴴ·y maps its eigenvectors back. The returned
// eigenvectors are B-orthonormal: Xᴴ·B·X = I, which is exactly the weighted
// inner product carried by the Bloch modes built on top of this routine.
//
// Eigenvalues are sorted ascending. Returns ErrDimensionMismatch,
// ErrNotHermitian, ErrNotPositiveDefinite or ErrNoConvergence.
// Complexity: O(n³) time, O(n²) memory.
func SolveGeneralized(a, b *mat.CDense, opts JacobiOptions) ([]float64, *mat.CDense, error) {
	// Stage 1: Validate shapes
	n, ca := a.Dims()
	rb, cb := b.Dims()
	if n != ca || rb != cb || n != rb {
		return nil, nil, fmt.Errorf("SolveGeneralized: A %dx%d vs B %dx%d: %w", n, ca, rb, cb, ErrDimensionMismatch)
	}

	// Stage 2: Reduce to a standard Hermitian problem
	l, err := Cholesky(b)
	if err != nil {
		return nil, nil, fmt.Errorf("SolveGeneralized: %w", err)
	}
	m := forwardSolve(l, a) // M = L⁻¹·A
	// C = M·L⁻ᴴ computed as Cᴴ = L⁻¹·Mᴴ, then conjugate-transposed back.
	mh := conjTranspose(m)
	ch := forwardSolve(l, mh)
	cMat := conjTranspose(ch)
	// Symmetrize to scrub the roundoff asymmetry before the Jacobi sweeps.
	hermitize(cMat)

	// Stage 3: Diagonalize and back-substitute
	vals, y, err := HermEigen(cMat, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("SolveGeneralized: %w", err)
	}
	x := backSolveH(l, y) // X = L⁻ᴴ·Y, B-orthonormal columns

	return vals, x, nil
}

// conjTranspose returns Aᴴ as a fresh CDense.
func conjTranspose(a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, cmplx.Conj(a.At(i, j)))
		}
	}

	return out
}

// hermitize overwrites a with (A + Aᴴ)/2 in place.
func hermitize(a *mat.CDense) {
	n, _ := a.Dims()
	for i := 0; i < n; i++ {
		a.Set(i, i, complex(real(a.At(i, i)), 0))
		for j := i + 1; j < n; j++ {
			v := (a.At(i, j) + cmplx.Conj(a.At(j, i))) / 2
			a.Set(i, j, v)
			a.Set(j, i, cmplx.Conj(v))
		}
	}
}
