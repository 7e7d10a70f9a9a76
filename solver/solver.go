package solver

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bloch/geometry"
	"github.com/katalvlaran/bloch/lattice"
	"github.com/katalvlaran/bloch/linalg"
	"github.com/katalvlaran/bloch/mode"
)

// Sentinel errors for solver construction and solving.
var (
	// ErrNilGeometry indicates construction without a geometry.
	ErrNilGeometry = errors.New("solver: geometry is nil")
	// ErrUnknownPolarisation indicates a polarisation outside the TE/TM enumeration.
	ErrUnknownPolarisation = errors.New("solver: unknown polarisation")
	// ErrBandIndex indicates a requested band outside the solved spectrum.
	ErrBandIndex = errors.New("solver: band index out of range")
)

// Solver owns a plane-wave basis and the convolution operators of one
// crystal, precomputed once and reused for every Solve call. It is immutable
// after construction; solving at different k-points from multiple goroutines
// is safe.
type Solver struct {
	Basis    *lattice.Basis
	Geometry *geometry.Geometry

	epc, muc       *mat.CDense // convolution matrices of ε and μ
	epcInv, mucInv *mat.CDense // their inverses, shared across all k
	opts           linalg.JacobiOptions
}

// New builds a Solver with a circular plane-wave cutoff (odd integer).
// Surfaces lattice.ErrEvenCutoff, lattice.ErrBasisNormMismatch,
// lattice.ErrDegenerateLattice, geometry.ErrGridTooCoarse and the linalg
// inversion errors eagerly, at construction time.
// Complexity: O(N³) dominated by the two inversions.
func New(geo *geometry.Geometry, cutoff int) (*Solver, error) {
	if geo == nil {
		return nil, fmt.Errorf("solver.New: %w", ErrNilGeometry)
	}
	b1, b2, err := lattice.AsToBs(geo.A1, geo.A2)
	if err != nil {
		return nil, fmt.Errorf("solver.New: %w", err)
	}
	basis, err := lattice.NewBasis(b1, b2, cutoff)
	if err != nil {
		return nil, fmt.Errorf("solver.New: %w", err)
	}

	return build(geo, basis)
}

// NewRhombic builds a Solver with independent odd cutoffs along b1 and b2,
// for lattices with unequal reciprocal norms.
func NewRhombic(geo *geometry.Geometry, cutoff1, cutoff2 int) (*Solver, error) {
	if geo == nil {
		return nil, fmt.Errorf("solver.NewRhombic: %w", ErrNilGeometry)
	}
	b1, b2, err := lattice.AsToBs(geo.A1, geo.A2)
	if err != nil {
		return nil, fmt.Errorf("solver.NewRhombic: %w", err)
	}
	basis, err := lattice.NewBasisRhombic(b1, b2, cutoff1, cutoff2)
	if err != nil {
		return nil, fmt.Errorf("solver.NewRhombic: %w", err)
	}

	return build(geo, basis)
}

// build samples the geometry and precomputes the four convolution operators.
func build(geo *geometry.Geometry, basis *lattice.Basis) (*Solver, error) {
	epc, err := geo.ConvmatPermittivity(basis)
	if err != nil {
		return nil, fmt.Errorf("solver.build: %w", err)
	}
	muc, err := geo.ConvmatPermeability(basis)
	if err != nil {
		return nil, fmt.Errorf("solver.build: %w", err)
	}
	epcInv, err := linalg.Inverse(epc)
	if err != nil {
		return nil, fmt.Errorf("solver.build: permittivity: %w", err)
	}
	mucInv, err := linalg.Inverse(muc)
	if err != nil {
		return nil, fmt.Errorf("solver.build: permeability: %w", err)
	}

	return &Solver{
		Basis:    basis,
		Geometry: geo,
		epc:      epc, muc: muc,
		epcInv: epcInv, mucInv: mucInv,
		opts: linalg.DefaultJacobiOptions(),
	}, nil
}

// Solve computes all Bloch eigenmodes at the Cartesian wavevector k for the
// given polarisation, sorted by ascending frequency.
//
// The generalized problem A·x = λ·B·x is assembled from the precomputed
// reciprocal operator and the diagonal wavevector operators, then reduced
// and diagonalized by linalg.SolveGeneralized. Frequencies are ω = √λ with
// tiny negative roundoff clamped to zero. Every mode carries B as its
// weighting and arrives B-orthonormal.
//
// Returns ErrUnknownPolarisation or the linalg failures (non-convergence is
// a hard failure; there is no partial result).
// Complexity: O(N³) per call.
func (s *Solver) Solve(k lattice.Vec2, pol Polarisation) ([]mode.Eigenmode, error) {
	reciprocal, rhs, ok := pol.operators(s)
	if !ok {
		return nil, fmt.Errorf("Solve: %d: %w", pol, ErrUnknownPolarisation)
	}

	// Stage 1: Diagonal wavevector operators at this k.
	n := s.Basis.Len()
	kxs := make([]float64, n)
	kys := make([]float64, n)
	for i := 0; i < n; i++ {
		kxs[i] = k.X + s.Basis.Kxs[i]
		kys[i] = k.Y + s.Basis.Kys[i]
	}
	dx := linalg.NewDiagonalReal(kxs)
	dy := linalg.NewDiagonalReal(kys)

	// Stage 2: Assemble A = Kx·R·Kx + Ky·R·Ky without dense diagonal matrices.
	a, err := sandwich(dx, reciprocal)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	ay, err := sandwich(dy, reciprocal)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, a.At(i, j)+ay.At(i, j))
		}
	}

	// Stage 3: Solve the Hermitian pencil and wrap eigenpairs into modes.
	vals, vecs, err := linalg.SolveGeneralized(a, rhs, s.opts)
	if err != nil {
		return nil, fmt.Errorf("Solve: k=(%g,%g) %s: %w", k.X, k.Y, pol, err)
	}

	modes := make([]mode.Eigenmode, n)
	col := make([]complex128, n)
	for j := 0; j < n; j++ {
		lambda := vals[j]
		if lambda < 0 {
			lambda = 0 // roundoff below the light line floor
		}
		for i := 0; i < n; i++ {
			col[i] = vecs.At(i, j)
		}
		m, err := mode.NewEigenmode(math.Sqrt(lambda), col, rhs, s.Basis, k)
		if err != nil {
			return nil, fmt.Errorf("Solve: band %d: %w", j, err)
		}
		modes[j] = m
	}

	return modes, nil
}

// SolveBZ resolves a fractional Brillouin-zone coordinate through the
// solver's basis and solves there.
func (s *Solver) SolveBZ(c lattice.BrillouinZoneCoordinate, pol Polarisation) ([]mode.Eigenmode, error) {
	return s.Solve(c.K(s.Basis), pol)
}

// Space solves at k and bundles the selected band indices (ascending,
// zero-based) into an Eigenspace — the unit consumed by the symmetry and
// Wilson-loop engines.
func (s *Solver) Space(k lattice.Vec2, pol Polarisation, bands ...int) (mode.Eigenspace, error) {
	modes, err := s.Solve(k, pol)
	if err != nil {
		return mode.Eigenspace{}, fmt.Errorf("Space: %w", err)
	}
	picked := make([]mode.Eigenmode, 0, len(bands))
	for _, b := range bands {
		if b < 0 || b >= len(modes) {
			return mode.Eigenspace{}, fmt.Errorf("Space: band %d of %d: %w", b, len(modes), ErrBandIndex)
		}
		picked = append(picked, modes[b])
	}

	space, err := mode.NewEigenspace(picked...)
	if err != nil {
		return mode.Eigenspace{}, fmt.Errorf("Space: %w", err)
	}

	return space, nil
}

// sandwich computes D·M·D for a diagonal operator D using row and column
// scaling only.
func sandwich(d *linalg.Diagonal, m *mat.CDense) (*mat.CDense, error) {
	left, err := d.MulLeft(m)
	if err != nil {
		return nil, err
	}

	return d.MulRight(left)
}
