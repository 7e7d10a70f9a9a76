package mode

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bloch/lattice"
)

// ErrNonIntegralMap indicates a KMap whose matrix does not act integrally on
// the reciprocal lattice (not a lattice point-group operation).
var ErrNonIntegralMap = errors.New("mode: k-map matrix is not unimodular")

// KMap is a k-space symmetry/shift map expressed in reciprocal-lattice
// coordinates: a reciprocal vector p·b1 + q·b2 is sent to p'·b1 + q'·b2 with
// (p', q') = M·(p, q), and the Bloch wavevector is additionally translated
// by Dp·b1 + Dq·b2. Phase, when non-nil, supplies the extra per-plane-wave
// factor of a non-symmorphic operation (evaluated at the source indices).
//
// M must be unimodular (|det| = 1) so the map permutes the reciprocal
// lattice; pure translations use the identity matrix.
type KMap struct {
	M      [2][2]int
	Dp, Dq int
	Phase  func(p, q int) complex128
}

// Identity returns the trivial map.
func Identity() KMap {
	return KMap{M: [2][2]int{{1, 0}, {0, 1}}}
}

// Translation returns the map shifting k by dp·b1 + dq·b2.
func Translation(dp, dq int) KMap {
	km := Identity()
	km.Dp, km.Dq = dp, dq

	return km
}

// Compose returns the map applying a first, then b.
func Compose(b, a KMap) KMap {
	var m [2][2]int
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			m[i][j] = b.M[i][0]*a.M[0][j] + b.M[i][1]*a.M[1][j]
		}
	}
	out := KMap{
		M:  m,
		Dp: b.M[0][0]*a.Dp + b.M[0][1]*a.Dq + b.Dp,
		Dq: b.M[1][0]*a.Dp + b.M[1][1]*a.Dq + b.Dq,
	}
	if a.Phase != nil || b.Phase != nil {
		pa, pb, ma := a.Phase, b.Phase, a.M
		out.Phase = func(p, q int) complex128 {
			v := complex128(1)
			if pa != nil {
				v *= pa(p, q)
			}
			if pb != nil {
				// b sees the indices after a has acted.
				v *= pb(ma[0][0]*p+ma[0][1]*q, ma[1][0]*p+ma[1][1]*q)
			}

			return v
		}
	}

	return out
}

// det returns the determinant of the integer matrix.
func (km KMap) det() int {
	return km.M[0][0]*km.M[1][1] - km.M[0][1]*km.M[1][0]
}

// Transform applies a k-space map to a mode, producing the mode obtained at
// the mapped wavevector k' = M·k + Dp·b1 + Dq·b2 with the plane-wave
// coefficients relabeled accordingly: the coefficient of G lands on
// G' = M·G − (Dp·b1 + Dq·b2). Coefficients whose image leaves the basis
// truncation are dropped, so transporting across a reciprocal translation
// reproduces the directly solved mode up to a phase and a small truncation
// loss (overlap magnitude > 0.999 in practice).
//
// The basis and weighting are carried over unchanged: an exact symmetry of
// the geometry leaves the weighting convolution matrix invariant under the
// induced index permutation.
// Returns ErrNonIntegralMap.
// Complexity: O(N).
func Transform(m Eigenmode, km KMap) (Eigenmode, error) {
	if d := km.det(); d != 1 && d != -1 {
		return Eigenmode{}, fmt.Errorf("Transform: det=%d: %w", d, ErrNonIntegralMap)
	}
	basis := m.Basis
	data := make([]complex128, basis.Len())
	for i := range m.Data {
		p, q := basis.Ps[i], basis.Qs[i]
		pp := km.M[0][0]*p + km.M[0][1]*q - km.Dp
		qq := km.M[1][0]*p + km.M[1][1]*q - km.Dq
		j, ok := basis.Index(pp, qq)
		if !ok {
			continue // image left the truncation
		}
		v := m.Data[i]
		if km.Phase != nil {
			v *= km.Phase(p, q)
		}
		data[j] = v
	}

	out := m
	out.Data = data
	out.K = mapK(m.K, km, basis)

	return out, nil
}

// mapK applies the k-space action of km to a Cartesian wavevector via its
// fractional reciprocal coordinates.
func mapK(k lattice.Vec2, km KMap, basis *lattice.Basis) lattice.Vec2 {
	alpha, beta := fracCoords(k, basis)
	a2 := float64(km.M[0][0])*alpha + float64(km.M[0][1])*beta + float64(km.Dp)
	b2 := float64(km.M[1][0])*alpha + float64(km.M[1][1])*beta + float64(km.Dq)

	return basis.B1.Scale(a2).Add(basis.B2.Scale(b2))
}

// fracCoords solves k = α·b1 + β·b2 for (α, β). The basis vectors are
// non-degenerate by construction, so the 2×2 system is always solvable.
func fracCoords(k lattice.Vec2, basis *lattice.Basis) (float64, float64) {
	b1, b2 := basis.B1, basis.B2
	det := b1.X*b2.Y - b1.Y*b2.X
	if det == 0 || math.IsNaN(det) {
		return 0, 0 // unreachable for a constructed Basis
	}
	alpha := (k.X*b2.Y - k.Y*b2.X) / det
	beta := (b1.X*k.Y - b1.Y*k.X) / det

	return alpha, beta
}
