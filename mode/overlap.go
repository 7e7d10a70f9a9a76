package mode

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

// zeroNormTol is the weighted-norm threshold below which a vector counts as
// numerically zero during normalization.
const zeroNormTol = 1e-12

// Overlap computes the weighted inner product ⟨a,b⟩ = aᴴ·W·b between two
// modes sharing the same basis and weighting. This — not the bare vector dot
// product — is the physically meaningful overlap.
// Returns ErrBasisMismatch or ErrWeightingMismatch.
// Complexity: O(N²).
func Overlap(a, b Eigenmode) (complex128, error) {
	if err := compatible(a, b); err != nil {
		return 0, fmt.Errorf("Overlap: %w", err)
	}

	return weightedDot(a.Data, b.Data, a.Weighting), nil
}

// OverlapMatrix computes the cross-overlap matrix O[i][j] = ⟨a_i, b_j⟩
// between two eigenspaces sharing the same basis and weighting.
// Complexity: O(d_a·d_b·N²).
func OverlapMatrix(a, b Eigenspace) (*mat.CDense, error) {
	if err := compatible(a.Modes[0], b.Modes[0]); err != nil {
		return nil, fmt.Errorf("OverlapMatrix: %w", err)
	}
	o := mat.NewCDense(a.Dim(), b.Dim(), nil)
	for j, mb := range b.Modes {
		// W·b_j once per column.
		wb := applyWeighting(b.Weighting(), mb.Data)
		for i, ma := range a.Modes {
			var sum complex128
			for n := range ma.Data {
				sum += cmplx.Conj(ma.Data[n]) * wb[n]
			}
			o.Set(i, j, sum)
		}
	}

	return o, nil
}

// Normalise rescales a mode to unit weighted norm, returning a new mode.
// Returns ErrZeroNorm for numerically vanishing input.
func Normalise(m Eigenmode) (Eigenmode, error) {
	norm := math.Sqrt(cmplx.Abs(weightedDot(m.Data, m.Data, m.Weighting)))
	if norm <= zeroNormTol {
		return Eigenmode{}, fmt.Errorf("Normalise: %w", ErrZeroNorm)
	}
	data := make([]complex128, len(m.Data))
	copy(data, m.Data)
	cmplxs.Scale(complex(1/norm, 0), data)

	out := m
	out.Data = data

	return out, nil
}

// Orthonormalise applies modified Gram–Schmidt with respect to the weighted
// inner product, returning a new eigenspace whose Gram matrix is the
// identity within numerical tolerance. The span is unchanged.
// Returns ErrZeroNorm when the modes are linearly dependent.
// Complexity: O(d²·N²) for d modes of length N.
func Orthonormalise(s Eigenspace) (Eigenspace, error) {
	w := s.Weighting()
	out := make([]Eigenmode, 0, s.Dim())
	for _, m := range s.Modes {
		data := make([]complex128, len(m.Data))
		copy(data, m.Data)
		// Project out the already-accepted directions.
		for _, prev := range out {
			coeff := weightedDot(prev.Data, data, w)
			cmplxs.AddScaled(data, -coeff, prev.Data)
		}
		norm := math.Sqrt(cmplx.Abs(weightedDot(data, data, w)))
		if norm <= zeroNormTol {
			return Eigenspace{}, fmt.Errorf("Orthonormalise: %w", ErrZeroNorm)
		}
		cmplxs.Scale(complex(1/norm, 0), data)

		nm := m
		nm.Data = data
		out = append(out, nm)
	}

	return Eigenspace{Modes: out}, nil
}

// weightedDot returns aᴴ·W·b without allocating a dense intermediate per call
// beyond the single W·b product.
func weightedDot(a, b []complex128, w *mat.CDense) complex128 {
	wb := applyWeighting(w, b)
	var sum complex128
	for i := range a {
		sum += cmplx.Conj(a[i]) * wb[i]
	}

	return sum
}

// applyWeighting computes W·v.
func applyWeighting(w *mat.CDense, v []complex128) []complex128 {
	n, _ := w.Dims()
	out := make([]complex128, n)
	for i := 0; i < n; i++ {
		var sum complex128
		for j := 0; j < n; j++ {
			sum += w.At(i, j) * v[j]
		}
		out[i] = sum
	}

	return out
}
