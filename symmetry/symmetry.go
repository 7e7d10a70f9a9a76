package symmetry

import (
	"fmt"

	"github.com/katalvlaran/bloch/linalg"
	"github.com/katalvlaran/bloch/mode"
)

// Symmetry is a labeled point-group operation acting on plane-wave
// coefficients through its k-space map.
type Symmetry struct {
	Name string
	Map  mode.KMap
}

// C2 returns the π rotation. Integral on every 2D lattice.
func C2() Symmetry {
	return Symmetry{Name: "C2", Map: mode.KMap{M: [2][2]int{{-1, 0}, {0, -1}}}}
}

// C4 returns the π/2 rotation of the square lattice (b2 = b1 rotated by +90°).
func C4() Symmetry {
	return Symmetry{Name: "C4", Map: mode.KMap{M: [2][2]int{{0, -1}, {1, 0}}}}
}

// C6 returns the π/3 rotation of the hexagonal lattice with a2 at +60° from
// a1: b1 → b1 + b2, b2 → −b1.
func C6() Symmetry {
	return Symmetry{Name: "C6", Map: mode.KMap{M: [2][2]int{{1, -1}, {1, 0}}}}
}

// C3 returns the 2π/3 rotation of the hexagonal lattice, the square of C6.
func C3() Symmetry {
	return Symmetry{Name: "C3", Map: mode.KMap{M: [2][2]int{{0, -1}, {1, -1}}}}
}

// MirrorX returns the reflection y → −y of the square lattice.
func MirrorX() Symmetry {
	return Symmetry{Name: "MirrorX", Map: mode.KMap{M: [2][2]int{{1, 0}, {0, -1}}}}
}

// MirrorY returns the reflection x → −x of the square lattice.
func MirrorY() Symmetry {
	return Symmetry{Name: "MirrorY", Map: mode.KMap{M: [2][2]int{{-1, 0}, {0, 1}}}}
}

// FromMap wraps an arbitrary k-space map, for operations outside the stock
// constructors (non-symmorphic screws, glide mirrors with a Phase).
func FromMap(name string, km mode.KMap) Symmetry {
	return Symmetry{Name: name, Map: km}
}

// String returns the operation label.
func (s Symmetry) String() string { return s.Name }

// Apply transforms a single mode by the operation.
// Returns the mode.Transform errors.
func (s Symmetry) Apply(m mode.Eigenmode) (mode.Eigenmode, error) {
	out, err := mode.Transform(m, s.Map)
	if err != nil {
		return mode.Eigenmode{}, fmt.Errorf("Apply %s: %w", s.Name, err)
	}

	return out, nil
}

// Eigenmodes recombines an eigenspace into symmetry eigenmodes and returns
// them with their symmetry eigenvalues.
//
// The space is orthonormalised, the operation is restricted to it as the d×d
// matrix S[α][a] = ⟨b_α, T·b_a⟩, the restriction is projected to its nearest
// unitary and diagonalized, and the eigenvector columns recombine the
// orthonormal modes. Eigenvalue order is the diagonalization order; compare
// eigenvalue sets, not positions.
//
// Returns the mode consistency errors, mode.ErrZeroNorm for a linearly
// dependent space, or the linalg errors when the restriction is too far from
// unitary (k-point not invariant, or a degenerate group split by the space).
func Eigenmodes(space mode.Eigenspace, sym Symmetry) ([]mode.Eigenmode, []complex128, error) {
	// Stage 1: Orthonormal frame for the space.
	on, err := mode.Orthonormalise(space)
	if err != nil {
		return nil, nil, fmt.Errorf("symmetry.Eigenmodes %s: %w", sym.Name, err)
	}

	// Stage 2: Image of the frame under the operation.
	imgs := make([]mode.Eigenmode, on.Dim())
	for a, m := range on.Modes {
		imgs[a], err = mode.Transform(m, sym.Map)
		if err != nil {
			return nil, nil, fmt.Errorf("symmetry.Eigenmodes %s: mode %d: %w", sym.Name, a, err)
		}
	}
	img := mode.Eigenspace{Modes: imgs}

	// Stage 3: Restricted operator, projected onto the unitary group.
	restricted, err := mode.OverlapMatrix(on, img)
	if err != nil {
		return nil, nil, fmt.Errorf("symmetry.Eigenmodes %s: %w", sym.Name, err)
	}
	unitary, err := linalg.UnitaryApprox(restricted)
	if err != nil {
		return nil, nil, fmt.Errorf("symmetry.Eigenmodes %s: %w", sym.Name, err)
	}

	// Stage 4: Diagonalize and recombine the frame along the eigenvectors.
	vals, vecs, err := linalg.UnitaryEigen(unitary, linalg.DefaultJacobiOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("symmetry.Eigenmodes %s: %w", sym.Name, err)
	}
	combined, err := mode.Recombine(on, vecs)
	if err != nil {
		return nil, nil, fmt.Errorf("symmetry.Eigenmodes %s: %w", sym.Name, err)
	}

	return combined.Modes, vals, nil
}

// Eigvals returns only the symmetry eigenvalues of the space.
func Eigvals(space mode.Eigenspace, sym Symmetry) ([]complex128, error) {
	_, vals, err := Eigenmodes(space, sym)

	return vals, err
}
