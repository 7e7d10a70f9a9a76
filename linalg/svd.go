package linalg

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// SVD computes the singular value decomposition M = U·diag(sigma)·Vᴴ of an
// r×c matrix with r ≥ c, using the Hestenes one-sided Jacobi method: plane
// rotations are applied on the right until all columns of the working matrix
// are mutually orthogonal, at which point their norms are the singular
// values and their directions the left singular vectors.
//
// Singular values are returned descending. U is r×c with orthonormal
// columns, V is c×c unitary. Returns ErrDimensionMismatch, ErrNoConvergence
// or ErrSingular (zero singular value; the rotation accumulation cannot
// produce a full orthonormal U).
// Complexity: O(r·c²) per sweep, O(r·c) memory.
func SVD(m *mat.CDense, opts JacobiOptions) (*mat.CDense, []float64, *mat.CDense, error) {
	// Stage 1: Validate input
	r, c := m.Dims()
	if r < c {
		return nil, nil, nil, fmt.Errorf("SVD: %dx%d has more columns than rows: %w", r, c, ErrDimensionMismatch)
	}

	// Stage 2: Prepare working copy W and rotation accumulator V
	w := mat.NewCDense(r, c, nil)
	w.Copy(m)
	v := eyeC(c)

	// Stage 3: Hestenes sweeps — orthogonalize every column pair
	var sweep int
	for sweep = 0; sweep < opts.MaxSweeps; sweep++ {
		rotated := false
		for p := 0; p < c-1; p++ {
			for q := p + 1; q < c; q++ {
				if hestenesRotate(w, v, p, q, opts.Tol) {
					rotated = true
				}
			}
		}
		if !rotated {
			break // all pairs orthogonal within tolerance
		}
	}
	if sweep == opts.MaxSweeps {
		return nil, nil, nil, fmt.Errorf("SVD: %d sweeps: %w", sweep, ErrNoConvergence)
	}

	// Stage 4: Extract singular values and normalize U columns
	sigma := make([]float64, c)
	for j := 0; j < c; j++ {
		var sum float64
		for i := 0; i < r; i++ {
			a := cmplx.Abs(w.At(i, j))
			sum += a * a
		}
		sigma[j] = math.Sqrt(sum)
	}

	perm := make([]int, c)
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm, func(i, j int) bool { return sigma[perm[i]] > sigma[perm[j]] })

	maxSigma := sigma[perm[0]]
	u := mat.NewCDense(r, c, nil)
	vOut := mat.NewCDense(c, c, nil)
	sOut := make([]float64, c)
	for j, pj := range perm {
		sOut[j] = sigma[pj]
		if sigma[pj] <= opts.Tol*(maxSigma+1) {
			return nil, nil, nil, fmt.Errorf("SVD: singular value %d = %g: %w", j, sigma[pj], ErrSingular)
		}
		inv := complex(1/sigma[pj], 0)
		for i := 0; i < r; i++ {
			u.Set(i, j, inv*w.At(i, pj))
		}
		for i := 0; i < c; i++ {
			vOut.Set(i, j, v.At(i, pj))
		}
	}

	return u, sOut, vOut, nil
}

// hestenesRotate orthogonalizes columns p and q of w, accumulating the
// rotation into v. Reports whether a rotation was applied.
func hestenesRotate(w, v *mat.CDense, p, q int, tol float64) bool {
	r, _ := w.Dims()

	// 2×2 Gram block of the column pair: [[α, γ], [conj(γ), β]].
	var alpha, beta float64
	var gamma complex128
	for i := 0; i < r; i++ {
		wp, wq := w.At(i, p), w.At(i, q)
		alpha += real(wp)*real(wp) + imag(wp)*imag(wp)
		beta += real(wq)*real(wq) + imag(wq)*imag(wq)
		gamma += cmplx.Conj(wp) * wq
	}
	absG := cmplx.Abs(gamma)
	if absG <= tol*math.Sqrt(alpha*beta) || absG == 0 {
		return false // already orthogonal
	}

	phase := gamma / complex(absG, 0)
	theta := (beta - alpha) / (2 * absG)
	t := math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
	cc := complex(1/math.Sqrt(t*t+1), 0)
	s := t * real(cc)
	sPh := complex(s, 0) * phase
	sPhConj := complex(s, 0) * cmplx.Conj(phase)

	for i := 0; i < r; i++ {
		wp, wq := w.At(i, p), w.At(i, q)
		w.Set(i, p, cc*wp-sPhConj*wq)
		w.Set(i, q, sPh*wp+cc*wq)
	}
	cv, _ := v.Dims()
	for i := 0; i < cv; i++ {
		vp, vq := v.At(i, p), v.At(i, q)
		v.Set(i, p, cc*vp-sPhConj*vq)
		v.Set(i, q, sPh*vp+cc*vq)
	}

	return true
}

// UnitaryApprox returns the unitary matrix closest to m in operator norm:
// with m = U·Σ·Vᴴ, the projection replaces every singular value by 1,
// giving U·Vᴴ. This is the gauge-fixing primitive for Wilson-loop overlaps:
// the raw overlap between two eigenspaces is only unitary in the limit of an
// exact symmetry or an infinitesimal path step, and the SVD projection
// removes the non-unitary stretch without touching the rotation.
//
// An already-unitary input is returned unchanged up to roundoff.
// Returns ErrDimensionMismatch for non-square input, or the SVD errors.
func UnitaryApprox(m *mat.CDense) (*mat.CDense, error) {
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("UnitaryApprox: non-square %dx%d: %w", r, c, ErrDimensionMismatch)
	}
	u, _, v, err := SVD(m, DefaultJacobiOptions())
	if err != nil {
		return nil, fmt.Errorf("UnitaryApprox: %w", err)
	}
	out, err := Mul(u, v.H())
	if err != nil {
		return nil, fmt.Errorf("UnitaryApprox: %w", err)
	}

	return out, nil
}
