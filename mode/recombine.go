package mode

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

// ErrCoeffShape indicates a coefficient matrix whose row count does not match
// the eigenspace dimension.
var ErrCoeffShape = errors.New("mode: coefficient rows do not match eigenspace dimension")

// Recombine forms linear combinations of the modes of an eigenspace: column j
// of the coefficient matrix defines the new mode Σ_a c[a][j]·modes[a]. The
// frequency of a combined mode is the |c|²-weighted mean of the input
// frequencies, which is exact when the combination mixes a degenerate group.
//
// This is the primitive behind symmetry diagonalization and Wilson-loop gauge
// rotations: both replace a space by itself re-expressed in a new frame.
// Returns ErrCoeffShape or ErrEmptySpace.
// Complexity: O(d·d'·N) for a d×d' coefficient matrix over length-N modes.
func Recombine(s Eigenspace, c *mat.CDense) (Eigenspace, error) {
	if s.Dim() == 0 {
		return Eigenspace{}, fmt.Errorf("Recombine: %w", ErrEmptySpace)
	}
	rows, cols := c.Dims()
	if rows != s.Dim() {
		return Eigenspace{}, fmt.Errorf("Recombine: %d rows for dimension %d: %w", rows, s.Dim(), ErrCoeffShape)
	}

	n := len(s.Modes[0].Data)
	out := make([]Eigenmode, cols)
	for j := 0; j < cols; j++ {
		data := make([]complex128, n)
		var freq, weight float64
		for a := 0; a < rows; a++ {
			coeff := c.At(a, j)
			cmplxs.AddScaled(data, coeff, s.Modes[a].Data)
			w := real(coeff)*real(coeff) + imag(coeff)*imag(coeff)
			freq += w * s.Modes[a].Frequency
			weight += w
		}
		if weight > 0 {
			freq /= weight
		}

		m := s.Modes[0]
		m.Frequency = freq
		m.Data = data
		out[j] = m
	}

	return Eigenspace{Modes: out}, nil
}
