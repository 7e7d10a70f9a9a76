package solver_test

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bloch/geometry"
	"github.com/katalvlaran/bloch/lattice"
	"github.com/katalvlaran/bloch/mode"
	"github.com/katalvlaran/bloch/solver"
)

// uniform returns a homogeneous material field.
func uniform(v complex128) geometry.Field {
	return func(x, y float64) complex128 { return v }
}

// homogeneous builds a constant-ε, constant-μ unit-square geometry.
func homogeneous(t *testing.T, eps, mu complex128) *geometry.Geometry {
	t.Helper()
	geo, err := geometry.New(uniform(eps), uniform(mu), lattice.Vec2{X: 1}, lattice.Vec2{Y: 1}, 1.0/16, 1.0/16)
	require.NoError(t, err)

	return geo
}

// rodCrystal builds a square lattice of high-ε rods in air.
func rodCrystal(t *testing.T) *geometry.Geometry {
	t.Helper()
	rod := func(x, y float64) complex128 {
		if math.Hypot(x, y) < 0.2 {
			return 8.9
		}

		return 1
	}
	geo, err := geometry.New(rod, uniform(1), lattice.Vec2{X: 1}, lattice.Vec2{Y: 1}, 1.0/32, 1.0/32)
	require.NoError(t, err)

	return geo
}

// TestSolve_HomogeneousLightLine: in a trivial medium the lowest mode at
// k=(1,0) sits on the light line ω = 1/√(εμ), for both polarisations,
// independent of cutoff.
func TestSolve_HomogeneousLightLine(t *testing.T) {
	cases := []struct {
		eps, mu complex128
	}{
		{1, 1},
		{4, 1},
		{2.25, 1.5},
	}
	k := lattice.Vec2{X: 1}
	for _, tc := range cases {
		want := 1 / math.Sqrt(real(tc.eps)*real(tc.mu))
		for _, cutoff := range []int{3, 5, 7} {
			s, err := solver.New(homogeneous(t, tc.eps, tc.mu), cutoff)
			require.NoError(t, err)
			for _, pol := range []solver.Polarisation{solver.TE, solver.TM} {
				modes, err := s.Solve(k, pol)
				require.NoError(t, err, "ε=%v µ=%v cutoff=%d %s", tc.eps, tc.mu, cutoff, pol)
				require.Len(t, modes, s.Basis.Len())
				assert.InDelta(t, want, modes[0].Frequency, 1e-9,
					"ε=%v µ=%v cutoff=%d %s", tc.eps, tc.mu, cutoff, pol)
			}
		}
	}
}

// TestSolve_RhombicAnisotropicLattice: the light line survives |b1| ≠ |b2|.
func TestSolve_RhombicAnisotropicLattice(t *testing.T) {
	geo, err := geometry.New(uniform(4), uniform(1), lattice.Vec2{X: 1}, lattice.Vec2{Y: 2}, 1.0/16, 1.0/16)
	require.NoError(t, err)

	s, err := solver.NewRhombic(geo, 5, 7)
	require.NoError(t, err)

	modes, err := s.Solve(lattice.Vec2{X: 1}, solver.TM)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, modes[0].Frequency, 1e-9)
}

// TestSolve_SpectrumShape: frequencies are non-negative, ascending, and the
// modes arrive with unit weighted norm (B-orthonormal eigenvectors).
func TestSolve_SpectrumShape(t *testing.T) {
	s, err := solver.New(rodCrystal(t), 5)
	require.NoError(t, err)

	modes, err := s.Solve(lattice.Vec2{X: 0.7, Y: 0.3}, solver.TM)
	require.NoError(t, err)

	freqs := make([]float64, len(modes))
	for i, m := range modes {
		freqs[i] = m.Frequency
		assert.GreaterOrEqual(t, m.Frequency, 0.0)

		self, err := mode.Overlap(m, m)
		require.NoError(t, err)
		assert.InDelta(t, 1, cmplx.Abs(self), 1e-8, "band %d weighted norm", i)
	}
	assert.True(t, sort.Float64sAreSorted(freqs))

	// Distinct bands are weighted-orthogonal.
	o, err := mode.Overlap(modes[0], modes[1])
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(o), 1e-8)
}

// TestSolve_GaugeCovariance: shifting k by a reciprocal lattice vector and
// transporting the mode reproduces the directly solved mode with overlap
// magnitude > 0.999.
func TestSolve_GaugeCovariance(t *testing.T) {
	s, err := solver.New(rodCrystal(t), 5)
	require.NoError(t, err)

	k := lattice.Vec2{X: 0.9, Y: 0.4}
	modes, err := s.Solve(k, solver.TM)
	require.NoError(t, err)

	shifted, err := mode.Transform(modes[0], mode.Translation(1, 0))
	require.NoError(t, err)

	direct, err := s.Solve(k.Add(s.Basis.B1), solver.TM)
	require.NoError(t, err)

	// Frequencies agree across the zone boundary up to the truncation
	// asymmetry of the finite plane-wave basis: the cutoff disk around k
	// and around k+b1 keep slightly different wave sets.
	assert.InDelta(t, modes[0].Frequency, direct[0].Frequency, 1e-3)

	norm, err := mode.Normalise(shifted)
	require.NoError(t, err)
	o, err := mode.Overlap(norm, direct[0])
	require.NoError(t, err)
	assert.Greater(t, cmplx.Abs(o), 0.999)
}

// TestSolveBZ resolves fractional coordinates through the solver's basis.
func TestSolveBZ(t *testing.T) {
	s, err := solver.New(homogeneous(t, 1, 1), 3)
	require.NoError(t, err)

	m := lattice.BrillouinZoneCoordinate{P: 0.5, Q: 0, Label: "X"}
	fromBZ, err := s.SolveBZ(m, solver.TE)
	require.NoError(t, err)
	direct, err := s.Solve(s.Basis.B1.Scale(0.5), solver.TE)
	require.NoError(t, err)

	require.Equal(t, len(direct), len(fromBZ))
	for i := range direct {
		assert.InDelta(t, direct[i].Frequency, fromBZ[i].Frequency, 1e-12)
	}
}

// TestSpace bundles bands and validates indices.
func TestSpace(t *testing.T) {
	s, err := solver.New(rodCrystal(t), 5)
	require.NoError(t, err)

	space, err := s.Space(lattice.Vec2{X: 0.3}, solver.TM, 0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, space.Dim())

	_, err = s.Space(lattice.Vec2{}, solver.TM, -1)
	assert.ErrorIs(t, err, solver.ErrBandIndex)
	_, err = s.Space(lattice.Vec2{}, solver.TM, 10_000)
	assert.ErrorIs(t, err, solver.ErrBandIndex)
}

// TestNew_Validation propagates construction failures eagerly.
func TestNew_Validation(t *testing.T) {
	_, err := solver.New(nil, 7)
	assert.ErrorIs(t, err, solver.ErrNilGeometry)

	_, err = solver.New(homogeneous(t, 1, 1), 4)
	assert.ErrorIs(t, err, lattice.ErrEvenCutoff)

	// Grid of 16 samples cannot resolve a cutoff-17 basis (needs ≥ 17).
	_, err = solver.New(homogeneous(t, 1, 1), 17)
	assert.ErrorIs(t, err, geometry.ErrGridTooCoarse)

	_, err = solver.NewRhombic(homogeneous(t, 1, 1), 3, 2)
	assert.ErrorIs(t, err, lattice.ErrEvenCutoff)
}

// TestSolve_UnknownPolarisation rejects values outside the enumeration.
func TestSolve_UnknownPolarisation(t *testing.T) {
	s, err := solver.New(homogeneous(t, 1, 1), 3)
	require.NoError(t, err)

	_, err = s.Solve(lattice.Vec2{}, solver.Polarisation(42))
	assert.ErrorIs(t, err, solver.ErrUnknownPolarisation)
}
