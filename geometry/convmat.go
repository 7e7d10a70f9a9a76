package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bloch/lattice"
)

// Convmat builds the N×N convolution matrix of a sampled field over the
// given plane-wave basis: C[i][j] is the Fourier coefficient of the field at
// the reciprocal difference (p_i−p_j)·b1 + (q_i−q_j)·b2, computed by a 2D
// discrete Fourier transform over the unit cell.
//
// The grid must resolve every difference vector: N1 ≥ 2·maxP+1 and
// N2 ≥ 2·maxQ+1, otherwise coefficients alias (ErrGridTooCoarse).
// Returns ErrRaggedGrid for non-rectangular input.
// Complexity: O(N1·N2·log(N1·N2)) for the transforms, O(N²) for the fill.
func Convmat(samples [][]complex128, basis *lattice.Basis) (*mat.CDense, error) {
	// Stage 1: Validate the grid against the basis truncation
	n1 := len(samples)
	if n1 == 0 {
		return nil, fmt.Errorf("Convmat: empty grid: %w", ErrRaggedGrid)
	}
	n2 := len(samples[0])
	for _, row := range samples {
		if len(row) != n2 {
			return nil, fmt.Errorf("Convmat: %w", ErrRaggedGrid)
		}
	}
	maxP, maxQ := basis.MaxPQ()
	if n1 < 2*maxP+1 || n2 < 2*maxQ+1 {
		return nil, fmt.Errorf("Convmat: grid %dx%d vs max |p|=%d |q|=%d: %w", n1, n2, maxP, maxQ, ErrGridTooCoarse)
	}

	// Stage 2: 2D DFT of the sample grid, normalized by the sample count
	hat := fft2(samples, n1, n2)

	// Stage 3: Fill C[i][j] from the difference-vector coefficients
	n := basis.Len()
	c := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g1 := mod(basis.Ps[i]-basis.Ps[j], n1)
			g2 := mod(basis.Qs[i]-basis.Qs[j], n2)
			c.Set(i, j, hat[g1][g2])
		}
	}

	return c, nil
}

// ConvmatPermittivity samples ε and builds its convolution matrix.
func (g *Geometry) ConvmatPermittivity(basis *lattice.Basis) (*mat.CDense, error) {
	c, err := Convmat(g.SamplePermittivity(), basis)
	if err != nil {
		return nil, fmt.Errorf("ConvmatPermittivity: %w", err)
	}

	return c, nil
}

// ConvmatPermeability samples μ and builds its convolution matrix.
func (g *Geometry) ConvmatPermeability(basis *lattice.Basis) (*mat.CDense, error) {
	c, err := Convmat(g.SamplePermeability(), basis)
	if err != nil {
		return nil, fmt.Errorf("ConvmatPermeability: %w", err)
	}

	return c, nil
}

// fft2 computes the normalized forward 2D DFT of an n1×n2 grid: rows first,
// then columns, dividing by n1·n2 so entry (0,0) is the mean of the field.
func fft2(samples [][]complex128, n1, n2 int) [][]complex128 {
	rowFFT := fourier.NewCmplxFFT(n2)
	rows := make([][]complex128, n1)
	for i := 0; i < n1; i++ {
		rows[i] = rowFFT.Coefficients(nil, samples[i])
	}

	colFFT := fourier.NewCmplxFFT(n1)
	colIn := make([]complex128, n1)
	norm := complex(1/float64(n1*n2), 0)
	hat := make([][]complex128, n1)
	for i := range hat {
		hat[i] = make([]complex128, n2)
	}
	for j := 0; j < n2; j++ {
		for i := 0; i < n1; i++ {
			colIn[i] = rows[i][j]
		}
		colOut := colFFT.Coefficients(nil, colIn)
		for i := 0; i < n1; i++ {
			hat[i][j] = colOut[i] * norm
		}
	}

	return hat
}

// mod is the non-negative remainder of a modulo n.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}

	return m
}
