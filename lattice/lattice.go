package lattice

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for lattice construction.
var (
	// ErrDegenerateLattice indicates the two lattice vectors are (near) parallel.
	ErrDegenerateLattice = errors.New("lattice: lattice vectors are degenerate")
	// ErrEvenCutoff indicates a plane-wave cutoff that is not an odd integer.
	ErrEvenCutoff = errors.New("lattice: cutoff must be a positive odd integer")
	// ErrBasisNormMismatch indicates |b1| and |b2| differ too much for a circular cutoff.
	ErrBasisNormMismatch = errors.New("lattice: circular cutoff requires |b1| ≈ |b2|")
)

// detEps is the determinant threshold below which a lattice counts as degenerate.
const detEps = 1e-12

// Vec2 is a Cartesian 2-vector.
type Vec2 struct {
	X, Y float64
}

// Dot returns the Euclidean inner product v·w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Norm returns the Euclidean length |v|.
func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v − w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns s·v.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{s * v.X, s * v.Y} }

// AsToBs converts real-space lattice vectors (a1, a2) to reciprocal vectors
// (b1, b2) such that dot(aᵢ,bᵢ) = 2π and dot(aᵢ,bⱼ) = 0 for i ≠ j.
// Returns ErrDegenerateLattice when a1 and a2 span no area.
// Complexity: O(1).
func AsToBs(a1, a2 Vec2) (Vec2, Vec2, error) {
	det := a1.X*a2.Y - a1.Y*a2.X
	if math.Abs(det) <= detEps {
		return Vec2{}, Vec2{}, fmt.Errorf("AsToBs: det=%g: %w", det, ErrDegenerateLattice)
	}
	s := 2 * math.Pi / det
	b1 := Vec2{X: s * a2.Y, Y: -s * a2.X}
	b2 := Vec2{X: -s * a1.Y, Y: s * a1.X}

	return b1, b2, nil
}

// BsToAs converts reciprocal lattice vectors back to real-space vectors.
// The 2D reciprocal relation is self-dual, so this is the same formula as
// AsToBs. Returns ErrDegenerateLattice on degenerate input.
func BsToAs(b1, b2 Vec2) (Vec2, Vec2, error) {
	a1, a2, err := AsToBs(b1, b2)
	if err != nil {
		return Vec2{}, Vec2{}, fmt.Errorf("BsToAs: %w", errors.Unwrap(err))
	}

	return a1, a2, nil
}
