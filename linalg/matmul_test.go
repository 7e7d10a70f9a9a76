package linalg_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bloch/linalg"
)

// TestMul_Known checks a hand-computed 2×3 by 3×2 product, including
// complex entries.
func TestMul_Known(t *testing.T) {
	a := mat.NewCDense(2, 3, []complex128{
		1, 2, complex(0, 1),
		0, -1, 3,
	})
	b := mat.NewCDense(3, 2, []complex128{
		1, 0,
		complex(0, 1), 2,
		1, complex(0, -1),
	})

	got, err := linalg.Mul(a, b)
	require.NoError(t, err)

	want := mat.NewCDense(2, 2, []complex128{
		complex(1, 3), 5,
		complex(3, -1), complex(-2, -3),
	})
	requireCEqual(t, want, got, 1e-14)
}

// TestMul_ConjugateTransposeView multiplies through an H() view without
// materializing the adjoint: Mᴴ·M must be Hermitian with real diagonal.
func TestMul_ConjugateTransposeView(t *testing.T) {
	m := mat.NewCDense(3, 2, []complex128{
		1, complex(0, 1),
		2, -1,
		complex(1, 1), 0,
	})

	gram, err := linalg.Mul(m.H(), m)
	require.NoError(t, err)

	r, c := gram.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	for i := 0; i < r; i++ {
		assert.InDelta(t, 0, imag(gram.At(i, i)), 1e-14, "diagonal (%d,%d) not real", i, i)
		for j := 0; j < c; j++ {
			diff := gram.At(i, j) - cmplx.Conj(gram.At(j, i))
			assert.InDelta(t, 0, cmplx.Abs(diff), 1e-14, "entry (%d,%d) breaks Hermitian symmetry", i, j)
		}
	}
}

// TestMul_DimensionMismatch rejects incompatible inner dimensions.
func TestMul_DimensionMismatch(t *testing.T) {
	a := mat.NewCDense(2, 3, nil)
	b := mat.NewCDense(2, 2, nil)

	_, err := linalg.Mul(a, b)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}
