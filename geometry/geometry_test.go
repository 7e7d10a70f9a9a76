package geometry_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bloch/geometry"
	"github.com/katalvlaran/bloch/lattice"
)

// uniform returns a homogeneous field of value v.
func uniform(v complex128) geometry.Field {
	return func(x, y float64) complex128 { return v }
}

func squareBasis(t *testing.T, cutoff int) *lattice.Basis {
	t.Helper()
	b1, b2, err := lattice.AsToBs(lattice.Vec2{X: 1}, lattice.Vec2{Y: 1})
	require.NoError(t, err)
	basis, err := lattice.NewBasis(b1, b2, cutoff)
	require.NoError(t, err)

	return basis
}

// TestNew_Validation covers the construction precondition checks.
func TestNew_Validation(t *testing.T) {
	a1, a2 := lattice.Vec2{X: 1}, lattice.Vec2{Y: 1}

	_, err := geometry.New(nil, uniform(1), a1, a2, 0.01, 0.01)
	assert.ErrorIs(t, err, geometry.ErrNilField)

	_, err = geometry.New(uniform(1), uniform(1), a1, a2, 0, 0.01)
	assert.ErrorIs(t, err, geometry.ErrBadResolution)

	_, err = geometry.New(uniform(1), uniform(1), a1, a2, 0.01, 1.5)
	assert.ErrorIs(t, err, geometry.ErrBadResolution)

	_, err = geometry.New(uniform(1), uniform(1), a1, lattice.Vec2{X: 2}, 0.01, 0.01)
	assert.ErrorIs(t, err, lattice.ErrDegenerateLattice)
}

// TestConvmat_HomogeneousIsScaledIdentity pins the core correctness anchor:
// a constant field of complex value x gives exactly x·I.
func TestConvmat_HomogeneousIsScaledIdentity(t *testing.T) {
	basis := squareBasis(t, 7)
	for _, x := range []complex128{1, 13, complex(2.5, -0.75)} {
		geo, err := geometry.New(uniform(x), uniform(1), lattice.Vec2{X: 1}, lattice.Vec2{Y: 1}, 1.0/32, 1.0/32)
		require.NoError(t, err)

		c, err := geo.ConvmatPermittivity(basis)
		require.NoError(t, err)

		n := basis.Len()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				want := complex128(0)
				if i == j {
					want = x
				}
				assert.InDelta(t, 0, cmplx.Abs(c.At(i, j)-want), 1e-12, "x=%v entry (%d,%d)", x, i, j)
			}
		}
	}
}

// TestConvmat_SingleHarmonic checks the Fourier coefficients of
// ε = 1 + cos(b1·r): weight 1 on the diagonal and 1/2 on the ±b1 offsets.
func TestConvmat_SingleHarmonic(t *testing.T) {
	a1, a2 := lattice.Vec2{X: 1}, lattice.Vec2{Y: 1}
	b1, _, err := lattice.AsToBs(a1, a2)
	require.NoError(t, err)

	eps := func(x, y float64) complex128 {
		return complex(1+math.Cos(b1.X*x+b1.Y*y), 0)
	}
	geo, err := geometry.New(eps, uniform(1), a1, a2, 1.0/64, 1.0/64)
	require.NoError(t, err)

	basis := squareBasis(t, 7)
	c, err := geo.ConvmatPermittivity(basis)
	require.NoError(t, err)

	for i := 0; i < basis.Len(); i++ {
		for j := 0; j < basis.Len(); j++ {
			dp, dq := basis.Ps[i]-basis.Ps[j], basis.Qs[i]-basis.Qs[j]
			var want complex128
			switch {
			case dp == 0 && dq == 0:
				want = 1
			case (dp == 1 || dp == -1) && dq == 0:
				want = 0.5
			}
			assert.InDelta(t, 0, cmplx.Abs(c.At(i, j)-want), 1e-10, "Δ=(%d,%d)", dp, dq)
		}
	}
}

// TestConvmat_HermitianForRealField: real material fields give Hermitian
// convolution matrices, the property the eigensolver relies on.
func TestConvmat_HermitianForRealField(t *testing.T) {
	a1, a2 := lattice.Vec2{X: 1}, lattice.Vec2{Y: 1}
	rod := func(x, y float64) complex128 {
		if math.Hypot(x, y) < 0.3 {
			return 8.9
		}

		return 1
	}
	geo, err := geometry.New(rod, uniform(1), a1, a2, 1.0/32, 1.0/32)
	require.NoError(t, err)

	basis := squareBasis(t, 5)
	c, err := geo.ConvmatPermittivity(basis)
	require.NoError(t, err)

	n := basis.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.InDelta(t, 0, cmplx.Abs(c.At(i, j)-cmplx.Conj(c.At(j, i))), 1e-12)
		}
	}
}

// TestConvmat_GridTooCoarse rejects grids that alias the basis differences.
func TestConvmat_GridTooCoarse(t *testing.T) {
	geo, err := geometry.New(uniform(1), uniform(1), lattice.Vec2{X: 1}, lattice.Vec2{Y: 1}, 0.25, 0.25)
	require.NoError(t, err)

	basis := squareBasis(t, 7) // needs ≥ 2·3+1 = 7 samples per axis, grid has 4
	_, err = geo.ConvmatPermittivity(basis)
	assert.ErrorIs(t, err, geometry.ErrGridTooCoarse)
}

// TestConvmat_RaggedGrid rejects non-rectangular sample grids.
func TestConvmat_RaggedGrid(t *testing.T) {
	basis := squareBasis(t, 3)
	_, err := geometry.Convmat([][]complex128{{1, 2}, {1}}, basis)
	assert.ErrorIs(t, err, geometry.ErrRaggedGrid)

	_, err = geometry.Convmat(nil, basis)
	assert.ErrorIs(t, err, geometry.ErrRaggedGrid)
}
