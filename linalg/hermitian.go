package linalg

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// JacobiOptions tunes the iterative Jacobi decompositions.
//
// Fields:
//   - Tol       — convergence threshold on the off-diagonal Frobenius norm,
//     relative to the full Frobenius norm.
//   - MaxSweeps — cap on full cyclic sweeps before ErrNoConvergence.
type JacobiOptions struct {
	Tol       float64
	MaxSweeps int
}

// DefaultJacobiOptions returns the tolerances used throughout the solver:
// Tol=1e-12, MaxSweeps=64.
func DefaultJacobiOptions() JacobiOptions {
	return JacobiOptions{Tol: 1e-12, MaxSweeps: 64}
}

// hermTol is the relative tolerance of the Hermiticity precondition check.
const hermTol = 1e-9

// HermEigen computes all eigenvalues and eigenvectors of a Hermitian matrix
// using the cyclic complex Jacobi rotation method.
//
// It returns the eigenvalues sorted ascending and the unitary matrix of
// eigenvectors V (columns of V, ordered to match), so that A·V = V·diag(w).
// Returns ErrDimensionMismatch, ErrNotHermitian or ErrNoConvergence.
// Complexity: O(n³) per sweep, O(n²) memory.
func HermEigen(a *mat.CDense, opts JacobiOptions) ([]float64, *mat.CDense, error) {
	// Stage 1: Validate input
	n, c := a.Dims()
	if n != c {
		return nil, nil, fmt.Errorf("HermEigen: non-square %dx%d: %w", n, c, ErrDimensionMismatch)
	}
	scale := frobNorm(a)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if cmplx.Abs(a.At(i, j)-cmplx.Conj(a.At(j, i))) > hermTol*(scale+1) {
				return nil, nil, fmt.Errorf("HermEigen: entry (%d,%d): %w", i, j, ErrNotHermitian)
			}
		}
	}

	// Stage 2: Prepare working copy A and eigenvector accumulator V
	work := mat.NewCDense(n, n, nil)
	work.Copy(a)
	vecs := eyeC(n)

	// Stage 3: Cyclic Jacobi sweeps
	var sweep int
	for sweep = 0; sweep < opts.MaxSweeps; sweep++ {
		if offNorm(work) <= opts.Tol*(scale+1) {
			break // converged
		}
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				jacobiRotate(work, vecs, p, q)
			}
		}
	}
	if sweep == opts.MaxSweeps && offNorm(work) > opts.Tol*(scale+1) {
		return nil, nil, fmt.Errorf("HermEigen: %d sweeps: %w", sweep, ErrNoConvergence)
	}

	// Stage 4: Extract, sort ascending, permute eigenvector columns to match
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = real(work.At(i, i))
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm, func(i, j int) bool { return vals[perm[i]] < vals[perm[j]] })

	sorted := make([]float64, n)
	sortedVecs := mat.NewCDense(n, n, nil)
	for j, pj := range perm {
		sorted[j] = vals[pj]
		for i := 0; i < n; i++ {
			sortedVecs.Set(i, j, vecs.At(i, pj))
		}
	}

	return sorted, sortedVecs, nil
}

// jacobiRotate zeroes the (p,q) entry of the Hermitian matrix a with a
// complex Givens rotation Gᴴ·a·G and accumulates G into v.
//
// The rotation generalizes the real Jacobi step: with a[p][q] = |γ|·e^{iφ},
// the phase is absorbed into the off-diagonal of G and the angle follows the
// classical θ = (a_qq − a_pp)/(2|γ|) rule.
func jacobiRotate(a, v *mat.CDense, p, q int) {
	n, _ := a.Dims()
	apq := a.At(p, q)
	absApq := cmplx.Abs(apq)
	if absApq == 0 {
		return // nothing to annihilate
	}
	app := real(a.At(p, p))
	aqq := real(a.At(q, q))
	phase := apq / complex(absApq, 0) // e^{iφ}

	theta := (aqq - app) / (2 * absApq)
	t := math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
	c := 1 / math.Sqrt(t*t+1)
	s := t * c

	cc := complex(c, 0)
	sPh := complex(s, 0) * phase                 // s·e^{iφ}
	sPhConj := complex(s, 0) * cmplx.Conj(phase) // s·e^{−iφ}

	// Rotate columns p and q of A, restoring rows by Hermitian conjugation.
	for i := 0; i < n; i++ {
		if i == p || i == q {
			continue
		}
		aip, aiq := a.At(i, p), a.At(i, q)
		a.Set(i, p, cc*aip-sPhConj*aiq)
		a.Set(i, q, sPh*aip+cc*aiq)
		a.Set(p, i, cmplx.Conj(a.At(i, p)))
		a.Set(q, i, cmplx.Conj(a.At(i, q)))
	}

	// Update the 2x2 pivot block; the off-diagonal is exactly annihilated.
	a.Set(p, p, complex(c*c*app-2*c*s*absApq+s*s*aqq, 0))
	a.Set(q, q, complex(s*s*app+2*c*s*absApq+c*c*aqq, 0))
	a.Set(p, q, 0)
	a.Set(q, p, 0)

	// Accumulate the rotation into the eigenvector matrix.
	for i := 0; i < n; i++ {
		vip, viq := v.At(i, p), v.At(i, q)
		v.Set(i, p, cc*vip-sPhConj*viq)
		v.Set(i, q, sPh*vip+cc*viq)
	}
}

// offNorm returns the Frobenius norm of the strict upper triangle.
func offNorm(a *mat.CDense) float64 {
	n, _ := a.Dims()
	var sum float64
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			v := cmplx.Abs(a.At(i, j))
			sum += v * v
		}
	}

	return math.Sqrt(sum)
}

// frobNorm returns the Frobenius norm of a.
func frobNorm(a *mat.CDense) float64 {
	r, c := a.Dims()
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := cmplx.Abs(a.At(i, j))
			sum += v * v
		}
	}

	return math.Sqrt(sum)
}

// eyeC returns the n×n complex identity.
func eyeC(n int) *mat.CDense {
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}
