package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Diagonal is a sparse representation of an n×n diagonal operator. It stores
// only the diagonal entries and performs scaling and left-division without
// ever materializing a dense matrix.
type Diagonal struct {
	d []complex128
}

// NewDiagonal wraps the given diagonal entries. The slice is copied.
func NewDiagonal(d []complex128) *Diagonal {
	cp := make([]complex128, len(d))
	copy(cp, d)

	return &Diagonal{d: cp}
}

// NewDiagonalReal wraps real diagonal entries.
func NewDiagonalReal(d []float64) *Diagonal {
	cp := make([]complex128, len(d))
	for i, v := range d {
		cp[i] = complex(v, 0)
	}

	return &Diagonal{d: cp}
}

// Len returns the operator dimension n.
func (dg *Diagonal) Len() int { return len(dg.d) }

// At returns the i-th diagonal entry.
func (dg *Diagonal) At(i int) complex128 { return dg.d[i] }

// MulLeft returns D·M, scaling row i of M by d[i].
// Complexity: O(n·m) time for an n×m input.
func (dg *Diagonal) MulLeft(m *mat.CDense) (*mat.CDense, error) {
	r, c := m.Dims()
	if r != len(dg.d) {
		return nil, fmt.Errorf("Diagonal.MulLeft: %d rows vs diagonal %d: %w", r, len(dg.d), ErrDimensionMismatch)
	}
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, dg.d[i]*m.At(i, j))
		}
	}

	return out, nil
}

// MulRight returns M·D, scaling column j of M by d[j].
// Complexity: O(n·m) time for an n×m input.
func (dg *Diagonal) MulRight(m *mat.CDense) (*mat.CDense, error) {
	r, c := m.Dims()
	if c != len(dg.d) {
		return nil, fmt.Errorf("Diagonal.MulRight: %d cols vs diagonal %d: %w", c, len(dg.d), ErrDimensionMismatch)
	}
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, m.At(i, j)*dg.d[j])
		}
	}

	return out, nil
}

// LeftDiv solves D·X = B, scaling row i of B by 1/d[i].
// Returns ErrSingularDiagonal when a diagonal entry is zero.
// Complexity: O(n·m) time, no dense n×n matrix is formed.
func (dg *Diagonal) LeftDiv(b *mat.CDense) (*mat.CDense, error) {
	r, c := b.Dims()
	if r != len(dg.d) {
		return nil, fmt.Errorf("Diagonal.LeftDiv: %d rows vs diagonal %d: %w", r, len(dg.d), ErrDimensionMismatch)
	}
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		if dg.d[i] == 0 {
			return nil, fmt.Errorf("Diagonal.LeftDiv: entry %d: %w", i, ErrSingularDiagonal)
		}
		inv := 1 / dg.d[i]
		for j := 0; j < c; j++ {
			out.Set(i, j, inv*b.At(i, j))
		}
	}

	return out, nil
}
