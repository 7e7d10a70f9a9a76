package linalg_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bloch/linalg"
)

// mustMul multiplies two matrices, failing the test on shape mismatch.
func mustMul(tb testing.TB, a, b mat.CMatrix) *mat.CDense {
	tb.Helper()
	m, err := linalg.Mul(a, b)
	require.NoError(tb, err)

	return m
}

// randComplex returns a complex number with components uniform in [-1, 1).
func randComplex(rng *rand.Rand) complex128 {
	return complex(2*rng.Float64()-1, 2*rng.Float64()-1)
}

// randCDense returns a random r×c complex matrix.
func randCDense(rng *rand.Rand, r, c int) *mat.CDense {
	m := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, randComplex(rng))
		}
	}

	return m
}

// randHermitian returns a random n×n Hermitian matrix.
func randHermitian(rng *rand.Rand, n int) *mat.CDense {
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, complex(2*rng.Float64()-1, 0))
		for j := i + 1; j < n; j++ {
			v := randComplex(rng)
			m.Set(i, j, v)
			m.Set(j, i, cmplx.Conj(v))
		}
	}

	return m
}

// randHPD returns a random Hermitian positive-definite matrix G·Gᴴ + I.
func randHPD(tb testing.TB, rng *rand.Rand, n int) *mat.CDense {
	tb.Helper()
	g := randCDense(rng, n, n)
	m := mustMul(tb, g, g.H())
	for i := 0; i < n; i++ {
		m.Set(i, i, m.At(i, i)+1)
	}

	return m
}

// requireCEqual asserts entrywise equality of two complex matrices within tol.
func requireCEqual(t *testing.T, want, got mat.CMatrix, tol float64) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Dims()
	require.Equal(t, wr, gr, "row mismatch")
	require.Equal(t, wc, gc, "col mismatch")
	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			require.InDelta(t, 0, cmplx.Abs(want.At(i, j)-got.At(i, j)), tol,
				"entry (%d,%d): want %v got %v", i, j, want.At(i, j), got.At(i, j))
		}
	}
}

// requireIdentity asserts that m is the identity within tol.
func requireIdentity(t *testing.T, m mat.CMatrix, tol float64) {
	t.Helper()
	r, c := m.Dims()
	require.Equal(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			require.InDelta(t, 0, cmplx.Abs(m.At(i, j)-want), tol, "entry (%d,%d)=%v", i, j, m.At(i, j))
		}
	}
}
