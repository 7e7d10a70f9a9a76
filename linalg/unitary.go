package linalg

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// unitaryResTol is the accepted residual max‖W·v − λ·v‖ for UnitaryEigen,
// relative to the scale of W.
const unitaryResTol = 1e-7

// tauLadder are the mixing coefficients tried by UnitaryEigen. A single τ
// fails only when two eigenphases are mirror-symmetric about the direction
// (1, τ); the ladder makes that coincidence unreachable for all of them at
// once.
var tauLadder = []float64{0.6180339887498949, 1.7320508075688772, 0.30103, 2.718281828459045}

// UnitaryEigen diagonalizes a unitary (more generally, normal) matrix W.
//
// A normal matrix shares its eigenvectors with the commuting Hermitian pair
// H = (W + Wᴴ)/2 and K = (W − Wᴴ)/(2i); diagonalizing the Hermitian
// combination H + τ·K with a generic τ therefore diagonalizes W itself, and
// the eigenvalues are recovered as Rayleigh quotients vᴴ·W·v. Each τ in the
// ladder is tried until the eigen-equation residual passes; the best
// candidate wins.
//
// Eigenvalues of a unitary input lie on the unit circle. The ordering is the
// ascending order of the winning Hermitian combination — callers comparing
// spectra should compare sets, not positions.
// Returns ErrDimensionMismatch or ErrNoConvergence.
// Complexity: O(n³) per ladder step.
func UnitaryEigen(w *mat.CDense, opts JacobiOptions) ([]complex128, *mat.CDense, error) {
	// Stage 1: Validate input
	n, c := w.Dims()
	if n != c {
		return nil, nil, fmt.Errorf("UnitaryEigen: non-square %dx%d: %w", n, c, ErrDimensionMismatch)
	}
	scale := frobNorm(w)/math.Sqrt(float64(n)) + 1

	// Stage 2: Try the τ ladder, keep the candidate with the smallest residual
	var (
		bestVals []complex128
		bestVecs *mat.CDense
		bestRes  = math.Inf(1)
	)
	for _, tau := range tauLadder {
		h := hermCombination(w, tau)
		_, vecs, err := HermEigen(h, opts)
		if err != nil {
			continue // degenerate combination; next τ
		}
		vals, res, err := rayleighSpectrum(w, vecs)
		if err != nil {
			return nil, nil, fmt.Errorf("UnitaryEigen: %w", err)
		}
		if res < bestRes {
			bestVals, bestVecs, bestRes = vals, vecs, res
		}
		if res <= unitaryResTol*scale {
			break
		}
	}
	if bestVecs == nil || bestRes > unitaryResTol*scale {
		return nil, nil, fmt.Errorf("UnitaryEigen: residual %g: %w", bestRes, ErrNoConvergence)
	}

	return bestVals, bestVecs, nil
}

// hermCombination builds (W + Wᴴ)/2 + τ·(W − Wᴴ)/(2i).
func hermCombination(w *mat.CDense, tau float64) *mat.CDense {
	n, _ := w.Dims()
	h := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			wij := w.At(i, j)
			wji := cmplx.Conj(w.At(j, i))
			sym := (wij + wji) / 2
			anti := (wij - wji) * complex(0, -0.5) // (W − Wᴴ)/(2i)
			h.Set(i, j, sym+complex(tau, 0)*anti)
		}
	}

	return h
}

// rayleighSpectrum returns λ_j = v_jᴴ·W·v_j for each eigenvector column and
// the largest eigen-equation residual ‖W·v_j − λ_j·v_j‖₂.
func rayleighSpectrum(w, vecs *mat.CDense) ([]complex128, float64, error) {
	n, _ := w.Dims()
	wv, err := Mul(w, vecs)
	if err != nil {
		return nil, 0, err
	}

	vals := make([]complex128, n)
	var maxRes float64
	for j := 0; j < n; j++ {
		var lambda complex128
		for i := 0; i < n; i++ {
			lambda += cmplx.Conj(vecs.At(i, j)) * wv.At(i, j)
		}
		vals[j] = lambda

		var res float64
		for i := 0; i < n; i++ {
			d := cmplx.Abs(wv.At(i, j) - lambda*vecs.At(i, j))
			res += d * d
		}
		if r := math.Sqrt(res); r > maxRes {
			maxRes = r
		}
	}

	return vals, maxRes, nil
}
