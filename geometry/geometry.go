package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bloch/lattice"
)

// Sentinel errors for geometry construction and sampling.
var (
	// ErrNilField indicates a nil permittivity or permeability function.
	ErrNilField = errors.New("geometry: material field function is nil")
	// ErrBadResolution indicates a grid resolution outside (0, 1].
	ErrBadResolution = errors.New("geometry: grid resolution must lie in (0, 1]")
	// ErrGridTooCoarse indicates the sample grid cannot resolve every
	// reciprocal difference vector of the basis without aliasing.
	ErrGridTooCoarse = errors.New("geometry: sample grid too coarse for basis cutoff")
	// ErrRaggedGrid indicates a non-rectangular sample grid.
	ErrRaggedGrid = errors.New("geometry: sample grid rows have unequal lengths")
)

// Field is a continuous scalar material function of real-space position.
// Complex values model lossy or gyrotropic-free media alike; lossless
// crystals simply return real values.
type Field func(x, y float64) complex128

// Geometry is an immutable description of one unit cell: two material
// fields, the real-space lattice vectors spanning the cell, and the
// fractional grid resolutions d1, d2 along each lattice vector used when
// sampling for Fourier analysis (d=0.01 → 100 samples along that vector).
type Geometry struct {
	Permittivity Field
	Permeability Field
	A1, A2       lattice.Vec2
	D1, D2       float64
}

// New validates and constructs a Geometry.
// Returns ErrNilField, ErrBadResolution or lattice.ErrDegenerateLattice.
func New(permittivity, permeability Field, a1, a2 lattice.Vec2, d1, d2 float64) (*Geometry, error) {
	if permittivity == nil || permeability == nil {
		return nil, fmt.Errorf("geometry.New: %w", ErrNilField)
	}
	if d1 <= 0 || d1 > 1 || d2 <= 0 || d2 > 1 {
		return nil, fmt.Errorf("geometry.New: d1=%g d2=%g: %w", d1, d2, ErrBadResolution)
	}
	if _, _, err := lattice.AsToBs(a1, a2); err != nil {
		return nil, fmt.Errorf("geometry.New: %w", err)
	}

	return &Geometry{
		Permittivity: permittivity,
		Permeability: permeability,
		A1:           a1, A2: a2,
		D1: d1, D2: d2,
	}, nil
}

// GridSize returns the sample counts (N1, N2) implied by the resolutions.
func (g *Geometry) GridSize() (int, int) {
	n1 := int(math.Round(1 / g.D1))
	n2 := int(math.Round(1 / g.D2))
	if n1 < 1 {
		n1 = 1
	}
	if n2 < 1 {
		n2 = 1
	}

	return n1, n2
}

// SamplePermittivity evaluates ε on the N1×N2 unit-cell grid.
func (g *Geometry) SamplePermittivity() [][]complex128 { return g.sample(g.Permittivity) }

// SamplePermeability evaluates μ on the N1×N2 unit-cell grid.
func (g *Geometry) SamplePermeability() [][]complex128 { return g.sample(g.Permeability) }

// sample evaluates f at fractional coordinates u=n/N1, v=m/N2, wrapped into
// [-1/2, 1/2) so user functions defined on the centered cell are evaluated
// where they expect. The wrap shifts positions by whole lattice vectors and
// therefore leaves every Fourier phase factor untouched.
func (g *Geometry) sample(f Field) [][]complex128 {
	n1, n2 := g.GridSize()
	out := make([][]complex128, n1)
	for n := 0; n < n1; n++ {
		out[n] = make([]complex128, n2)
		u := wrapHalf(float64(n) / float64(n1))
		for m := 0; m < n2; m++ {
			v := wrapHalf(float64(m) / float64(n2))
			x := u*g.A1.X + v*g.A2.X
			y := u*g.A1.Y + v*g.A2.Y
			out[n][m] = f(x, y)
		}
	}

	return out
}

// wrapHalf maps a fractional coordinate into [-1/2, 1/2).
func wrapHalf(u float64) float64 {
	u -= math.Floor(u)
	if u >= 0.5 {
		u--
	}

	return u
}
