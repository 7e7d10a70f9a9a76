package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bloch/lattice"
)

// squareBs returns the reciprocal vectors of the unit square lattice.
func squareBs(t *testing.T) (lattice.Vec2, lattice.Vec2) {
	t.Helper()
	b1, b2, err := lattice.AsToBs(lattice.Vec2{X: 1}, lattice.Vec2{Y: 1})
	require.NoError(t, err)

	return b1, b2
}

// TestNewBasis_OddCutoffOnly rejects even and non-positive cutoffs.
func TestNewBasis_OddCutoffOnly(t *testing.T) {
	b1, b2 := squareBs(t)
	for _, c := range []int{-1, 0, 2, 4} {
		_, err := lattice.NewBasis(b1, b2, c)
		assert.ErrorIs(t, err, lattice.ErrEvenCutoff, "cutoff=%d", c)
	}
	for _, c := range [][2]int{{2, 3}, {3, 2}, {0, 1}} {
		_, err := lattice.NewBasisRhombic(b1, b2, c[0], c[1])
		assert.ErrorIs(t, err, lattice.ErrEvenCutoff, "cutoffs=%v", c)
	}
}

// TestNewBasis_NormMismatch rejects circular truncation on anisotropic
// reciprocal lattices; the rhombic constructor accepts them.
func TestNewBasis_NormMismatch(t *testing.T) {
	b1 := lattice.Vec2{X: 2 * math.Pi}
	b2 := lattice.Vec2{Y: 4 * math.Pi}

	_, err := lattice.NewBasis(b1, b2, 5)
	assert.ErrorIs(t, err, lattice.ErrBasisNormMismatch)

	basis, err := lattice.NewBasisRhombic(b1, b2, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 5*3, basis.Len())
}

// TestNewBasis_SymmetricEnumeration checks that the truncation is symmetric
// about the origin and that parallel slices stay consistent.
func TestNewBasis_SymmetricEnumeration(t *testing.T) {
	b1, b2 := squareBs(t)
	basis, err := lattice.NewBasis(b1, b2, 7)
	require.NoError(t, err)

	n := basis.Len()
	require.Equal(t, n, len(basis.Qs))
	require.Equal(t, n, len(basis.Kxs))
	require.Equal(t, n, len(basis.Kys))
	assert.Contains(t, basis.Ps, 0)

	for i := 0; i < n; i++ {
		p, q := basis.Ps[i], basis.Qs[i]
		// Every plane wave has its negative in the basis.
		_, ok := basis.Index(-p, -q)
		assert.True(t, ok, "missing (-%d,-%d)", p, q)
		// Cached Cartesian components match p·b1 + q·b2.
		k := basis.B1.Scale(float64(p)).Add(basis.B2.Scale(float64(q)))
		assert.InDelta(t, k.X, basis.Kxs[i], tol)
		assert.InDelta(t, k.Y, basis.Kys[i], tol)
	}

	// Index agrees with the enumeration order.
	for i := 0; i < n; i++ {
		j, ok := basis.Index(basis.Ps[i], basis.Qs[i])
		require.True(t, ok)
		assert.Equal(t, i, j)
	}
}

// TestBrillouinZoneCoordinate_K resolves fractional coordinates through a basis.
func TestBrillouinZoneCoordinate_K(t *testing.T) {
	b1, b2 := squareBs(t)
	basis, err := lattice.NewBasis(b1, b2, 3)
	require.NoError(t, err)

	m := lattice.BrillouinZoneCoordinate{P: 0.5, Q: 0.5, Label: "M"}
	k := m.K(basis)
	assert.InDelta(t, math.Pi, k.X, tol)
	assert.InDelta(t, math.Pi, k.Y, tol)

	gamma := lattice.BrillouinZoneCoordinate{Label: "Γ"}
	assert.Equal(t, lattice.Vec2{}, gamma.K(basis))
}
