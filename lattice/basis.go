package lattice

import (
	"fmt"
	"math"
)

// normTol is the relative tolerance on |b1| vs |b2| for circular cutoffs.
const normTol = 1e-6

// Basis enumerates the truncated set of reciprocal lattice vectors
// k_pw = p·b1 + q·b2 used as the plane-wave expansion basis.
//
// The enumeration order is fixed at construction (row-major over p, then q)
// and defines the coefficient-vector indexing of every Bloch mode built from
// this Basis. Ps, Qs, Kxs and Kys are parallel slices of equal length N.
type Basis struct {
	B1, B2 Vec2 // reciprocal lattice vectors

	Ps, Qs   []int     // integer coordinates of each plane wave
	Kxs, Kys []float64 // cached Cartesian components p·b1 + q·b2

	index map[[2]int]int // (p,q) → position in the parallel slices
}

// NewBasis builds a plane-wave basis with a circular cutoff: every (p, q)
// with |p·b1 + q·b2| ≤ cutoff/2 · |b1| is included.
//
// cutoff must be a positive odd integer (symmetric truncation) and the two
// reciprocal vectors must have equal norms, otherwise the circular criterion
// is anisotropic in (p, q). Use NewBasisRhombic for unequal norms.
// Returns ErrEvenCutoff, ErrBasisNormMismatch or ErrDegenerateLattice.
// Complexity: O(cutoff²) time and memory.
func NewBasis(b1, b2 Vec2, cutoff int) (*Basis, error) {
	if cutoff <= 0 || cutoff%2 == 0 {
		return nil, fmt.Errorf("NewBasis: cutoff=%d: %w", cutoff, ErrEvenCutoff)
	}
	n1, n2 := b1.Norm(), b2.Norm()
	if n1 <= detEps || n2 <= detEps {
		return nil, fmt.Errorf("NewBasis: %w", ErrDegenerateLattice)
	}
	if math.Abs(n1-n2) > normTol*n1 {
		return nil, fmt.Errorf("NewBasis: |b1|=%g |b2|=%g: %w", n1, n2, ErrBasisNormMismatch)
	}

	// Radius scan: the circle |k| ≤ cutoff/2·|b1| fits inside |p|,|q| ≤ cutoff.
	radius := float64(cutoff) / 2 * n1
	b := &Basis{B1: b1, B2: b2, index: make(map[[2]int]int)}
	for p := -cutoff; p <= cutoff; p++ {
		for q := -cutoff; q <= cutoff; q++ {
			k := b1.Scale(float64(p)).Add(b2.Scale(float64(q)))
			if k.Norm() <= radius {
				b.append(p, q, k)
			}
		}
	}

	return b, nil
}

// NewBasisRhombic builds a plane-wave basis with a rhombic cutoff:
// |p| ≤ ⌊cutoff1/2⌋ and |q| ≤ ⌊cutoff2/2⌋.
//
// Both cutoffs must be positive odd integers. Unequal |b1|, |b2| are allowed.
// Returns ErrEvenCutoff or ErrDegenerateLattice.
// Complexity: O(cutoff1·cutoff2) time and memory.
func NewBasisRhombic(b1, b2 Vec2, cutoff1, cutoff2 int) (*Basis, error) {
	if cutoff1 <= 0 || cutoff1%2 == 0 {
		return nil, fmt.Errorf("NewBasisRhombic: cutoff1=%d: %w", cutoff1, ErrEvenCutoff)
	}
	if cutoff2 <= 0 || cutoff2%2 == 0 {
		return nil, fmt.Errorf("NewBasisRhombic: cutoff2=%d: %w", cutoff2, ErrEvenCutoff)
	}
	if b1.Norm() <= detEps || b2.Norm() <= detEps {
		return nil, fmt.Errorf("NewBasisRhombic: %w", ErrDegenerateLattice)
	}

	maxP, maxQ := cutoff1/2, cutoff2/2
	b := &Basis{B1: b1, B2: b2, index: make(map[[2]int]int)}
	for p := -maxP; p <= maxP; p++ {
		for q := -maxQ; q <= maxQ; q++ {
			k := b1.Scale(float64(p)).Add(b2.Scale(float64(q)))
			b.append(p, q, k)
		}
	}

	return b, nil
}

// append records one plane wave, preserving insertion order.
func (b *Basis) append(p, q int, k Vec2) {
	b.index[[2]int{p, q}] = len(b.Ps)
	b.Ps = append(b.Ps, p)
	b.Qs = append(b.Qs, q)
	b.Kxs = append(b.Kxs, k.X)
	b.Kys = append(b.Kys, k.Y)
}

// Len returns the number of plane waves N in the basis.
func (b *Basis) Len() int { return len(b.Ps) }

// Index returns the position of the plane wave (p, q) in the enumeration,
// or false when the truncation excludes it. Complexity: O(1).
func (b *Basis) Index(p, q int) (int, bool) {
	i, ok := b.index[[2]int{p, q}]

	return i, ok
}

// MaxPQ returns the largest |p| and |q| present in the basis. The convolution
// grid must resolve twice these to avoid aliasing.
func (b *Basis) MaxPQ() (int, int) {
	var maxP, maxQ int
	for i := range b.Ps {
		if a := abs(b.Ps[i]); a > maxP {
			maxP = a
		}
		if a := abs(b.Qs[i]); a > maxQ {
			maxQ = a
		}
	}

	return maxP, maxQ
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
