package mode

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/bloch/lattice"
)

// ErrBadGrid indicates a non-positive field sampling resolution.
var ErrBadGrid = errors.New("mode: field grid dimensions must be positive")

// Field reconstructs the periodic part u_k(r) = Σ_G c_G·e^{iG·r} of the
// Bloch field on an n1×n2 grid over the unit cell (fractional coordinates
// u, v ∈ [0, 1)). Downstream plotting and post-processing consume this
// read-only grid; the mode itself is untouched.
// Returns ErrBadGrid or lattice.ErrDegenerateLattice.
// Complexity: O(n1·n2·N).
func (m Eigenmode) Field(n1, n2 int) ([][]complex128, error) {
	if n1 <= 0 || n2 <= 0 {
		return nil, fmt.Errorf("Field: %dx%d: %w", n1, n2, ErrBadGrid)
	}
	a1, a2, err := lattice.BsToAs(m.Basis.B1, m.Basis.B2)
	if err != nil {
		return nil, fmt.Errorf("Field: %w", err)
	}

	out := make([][]complex128, n1)
	for i := 0; i < n1; i++ {
		out[i] = make([]complex128, n2)
		u := float64(i) / float64(n1)
		for j := 0; j < n2; j++ {
			v := float64(j) / float64(n2)
			x := u*a1.X + v*a2.X
			y := u*a1.Y + v*a2.Y
			var sum complex128
			for n := range m.Data {
				if m.Data[n] == 0 {
					continue
				}
				phase := m.Basis.Kxs[n]*x + m.Basis.Kys[n]*y
				sum += m.Data[n] * cmplx.Exp(complex(0, phase))
			}
			out[i][j] = sum
		}
	}

	return out, nil
}
