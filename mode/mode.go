package mode

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bloch/lattice"
)

// Sentinel errors for mode and eigenspace operations.
var (
	// ErrEmptySpace indicates an eigenspace with no modes.
	ErrEmptySpace = errors.New("mode: eigenspace must contain at least one mode")
	// ErrBasisMismatch indicates modes built on different plane-wave bases.
	ErrBasisMismatch = errors.New("mode: modes use different plane-wave bases")
	// ErrWeightingMismatch indicates modes carrying different inner-product weightings.
	ErrWeightingMismatch = errors.New("mode: modes carry different weighting matrices")
	// ErrDataLength indicates a coefficient vector inconsistent with its basis.
	ErrDataLength = errors.New("mode: coefficient vector length differs from basis size")
	// ErrZeroNorm indicates a mode with vanishing weighted norm.
	ErrZeroNorm = errors.New("mode: mode has zero weighted norm")
)

// Eigenmode is one solved Bloch mode. It is an immutable value: Data is
// owned by the mode and never mutated after creation.
//
// Frequency is the normalized eigenfrequency (real, ≥ 0 by convention).
// Data holds the plane-wave coefficients in the enumeration order of Basis.
// Weighting is the N×N Hermitian positive semi-definite matrix defining the
// physical inner product for this polarisation; modes are comparable exactly
// when they share Basis and Weighting. K is the Bloch wavevector the mode
// was solved at.
type Eigenmode struct {
	Frequency float64
	Data      []complex128
	Weighting *mat.CDense
	Basis     *lattice.Basis
	K         lattice.Vec2
}

// NewEigenmode validates the coefficient vector against the basis and wraps
// the inputs into an immutable mode (the data slice is copied).
// Returns ErrDataLength.
func NewEigenmode(freq float64, data []complex128, weighting *mat.CDense, basis *lattice.Basis, k lattice.Vec2) (Eigenmode, error) {
	if len(data) != basis.Len() {
		return Eigenmode{}, fmt.Errorf("NewEigenmode: len(data)=%d basis N=%d: %w", len(data), basis.Len(), ErrDataLength)
	}
	cp := make([]complex128, len(data))
	copy(cp, data)

	return Eigenmode{Frequency: freq, Data: cp, Weighting: weighting, Basis: basis, K: k}, nil
}

// compatible reports whether two modes share basis and weighting identity.
func compatible(a, b Eigenmode) error {
	if a.Basis != b.Basis {
		return ErrBasisMismatch
	}
	if a.Weighting != b.Weighting {
		return ErrWeightingMismatch
	}

	return nil
}

// Eigenspace is an ordered set of modes sharing one basis and weighting,
// used as the unit of symmetry and Wilson-loop analysis. Typically the modes
// are degenerate in frequency, but the type does not enforce that.
type Eigenspace struct {
	Modes []Eigenmode
}

// NewEigenspace validates and groups modes into an eigenspace.
// Returns ErrEmptySpace, ErrBasisMismatch or ErrWeightingMismatch.
func NewEigenspace(modes ...Eigenmode) (Eigenspace, error) {
	if len(modes) == 0 {
		return Eigenspace{}, fmt.Errorf("NewEigenspace: %w", ErrEmptySpace)
	}
	for i := 1; i < len(modes); i++ {
		if err := compatible(modes[0], modes[i]); err != nil {
			return Eigenspace{}, fmt.Errorf("NewEigenspace: mode %d: %w", i, err)
		}
	}
	cp := make([]Eigenmode, len(modes))
	copy(cp, modes)

	return Eigenspace{Modes: cp}, nil
}

// Dim returns the number of modes in the space.
func (s Eigenspace) Dim() int { return len(s.Modes) }

// Basis returns the shared plane-wave basis of the space.
func (s Eigenspace) Basis() *lattice.Basis { return s.Modes[0].Basis }

// Weighting returns the shared inner-product weighting of the space.
func (s Eigenspace) Weighting() *mat.CDense { return s.Modes[0].Weighting }
