package wilson

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bloch/linalg"
	"github.com/katalvlaran/bloch/mode"
)

// Sentinel errors for loop validation.
var (
	// ErrShortLoop indicates fewer than two eigenspaces.
	ErrShortLoop = errors.New("wilson: loop needs at least two eigenspaces")
	// ErrDimensionMismatch indicates eigenspaces of unequal dimension along
	// the loop.
	ErrDimensionMismatch = errors.New("wilson: eigenspace dimensions differ along the loop")
)

// Gauge fixes a parallel-transport gauge along a closed loop of eigenspaces
// and returns the Wilson-loop spectrum.
//
// vals are the eigenvalues of the loop closure (unit circle; their phases are
// the multi-band Berry phases), vecs the closure eigenvectors in the frame of
// gauge[0], and gauge the re-framed spaces: consecutive overlaps are ≈ I and
// the closing overlap gauge[len−1] → gauge[0] is ≈ diag(vals).
//
// spaces must hold at least two entries sampled along the loop, all of equal
// dimension, sharing one basis and weighting; the last entry must return to
// the first k-point (duplicated, or shifted by a reciprocal vector and
// transported with mode.Transform). The engine never resamples k.
//
// Returns ErrShortLoop, ErrDimensionMismatch, the mode consistency errors, or
// the linalg errors when a step overlap is singular (band subspaces at
// consecutive samples nearly orthogonal; refine the loop sampling).
func Gauge(spaces []mode.Eigenspace) (vals []complex128, vecs *mat.CDense, gauge []mode.Eigenspace, err error) {
	// Stage 1: Validate the loop shape.
	if len(spaces) < 2 {
		return nil, nil, nil, fmt.Errorf("wilson.Gauge: %d spaces: %w", len(spaces), ErrShortLoop)
	}
	d := spaces[0].Dim()
	for i, s := range spaces {
		if s.Dim() != d {
			return nil, nil, nil, fmt.Errorf("wilson.Gauge: space %d has dimension %d, want %d: %w",
				i, s.Dim(), d, ErrDimensionMismatch)
		}
	}

	// Stage 2: Orthonormal frame at every sample.
	frames := make([]mode.Eigenspace, len(spaces))
	for i, s := range spaces {
		frames[i], err = mode.Orthonormalise(s)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("wilson.Gauge: space %d: %w", i, err)
		}
	}

	// Stage 3: Parallel transport — absorb each step overlap into the next
	// frame so transport between consecutive frames becomes the identity.
	gauge = make([]mode.Eigenspace, len(frames))
	gauge[0] = frames[0]
	for i := 0; i+1 < len(frames); i++ {
		step, err := transportStep(gauge[i], frames[i+1])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("wilson.Gauge: step %d→%d: %w", i, i+1, err)
		}
		gauge[i+1] = step
	}

	// Stage 4: Loop closure — the one overlap transport cannot absorb.
	closing, err := mode.OverlapMatrix(gauge[len(gauge)-1], gauge[0])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("wilson.Gauge: closure: %w", err)
	}
	loop, err := linalg.UnitaryApprox(closing)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("wilson.Gauge: closure: %w", err)
	}
	vals, vecs, err = linalg.UnitaryEigen(loop, linalg.DefaultJacobiOptions())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("wilson.Gauge: closure: %w", err)
	}

	// Stage 5: Rotate every frame into the Wilson eigenbasis. Consecutive
	// overlaps become Vᴴ·I·V = I again, and the closure becomes diag(vals).
	for i := range gauge {
		gauge[i], err = mode.Recombine(gauge[i], vecs)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("wilson.Gauge: frame %d: %w", i, err)
		}
	}

	return vals, vecs, gauge, nil
}

// Eigvals returns only the Wilson-loop eigenvalues.
func Eigvals(spaces []mode.Eigenspace) ([]complex128, error) {
	vals, _, _, err := Gauge(spaces)

	return vals, err
}

// transportStep re-frames next so that its overlap with prev is the identity
// up to the non-unitary stretch the projection removes: with O = ⟨prev, next⟩
// and U its nearest unitary, the new frame is next·Uᴴ and ⟨prev, next·Uᴴ⟩ =
// O·Uᴴ ≈ I.
func transportStep(prev, next mode.Eigenspace) (mode.Eigenspace, error) {
	o, err := mode.OverlapMatrix(prev, next)
	if err != nil {
		return mode.Eigenspace{}, err
	}
	u, err := linalg.UnitaryApprox(o)
	if err != nil {
		return mode.Eigenspace{}, err
	}

	return mode.Recombine(next, conjTransposed(u))
}

// conjTransposed materializes Mᴴ as a CDense.
func conjTransposed(m *mat.CDense) *mat.CDense {
	r, c := m.Dims()
	out := mat.NewCDense(c, r, nil)
	out.Copy(m.H())

	return out
}
