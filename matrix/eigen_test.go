package matrix

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// assertClose compares two matrices elementwise within tol.
func assertClose(t *testing.T, want, got *Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for r := 0; r < want.Rows(); r++ {
		for c := 0; c < want.Cols(); c++ {
			assert.InDelta(t, want.At(r, c), got.At(r, c), tol, "element (%d,%d)", r, c)
		}
	}
}

func TestEigenvalues(t *testing.T) {
	a := mk(t, [][]float64{{2, 1}, {1, 2}})

	eig, err := a.Eigenvalues()
	require.NoError(t, err)
	require.Equal(t, 2, eig.Rows())

	vals := []float64{eig.At(0, 0), eig.At(1, 0)}
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))
	assert.InDelta(t, 3, vals[0], 1e-3)
	assert.InDelta(t, 1, vals[1], 1e-3)

	for _, v := range vals {
		assert.True(t, a.IsEigenvalue(v))
	}
}

func TestEigenvaluesNotSymmetric(t *testing.T) {
	_, err := mk(t, [][]float64{{1, 2}, {3, 4}}).Eigenvalues()
	assert.ErrorIs(t, err, ErrNotSymmetric)

	_, err = mk(t, [][]float64{{1, 2, 3}, {4, 5, 6}}).Eigenvalues()
	assert.ErrorIs(t, err, ErrNotSymmetric)
}

func TestEigenvector(t *testing.T) {
	a := mk(t, [][]float64{{2, 1}, {1, 2}})

	for _, lambda := range []float64{3, 1} {
		v, err := a.Eigenvector(lambda)
		require.NoError(t, err)

		n, err := v.Norm()
		require.NoError(t, err)
		assert.InDelta(t, 1, n, Epsilon)

		av, err := a.Mul(v)
		require.NoError(t, err)
		assertClose(t, v.Map(func(x float64) float64 { return lambda * x }), av, 1e-3)
	}

	_, err := mk(t, [][]float64{{1, 2, 3}, {4, 5, 6}}).Eigenvector(1)
	assert.ErrorIs(t, err, ErrDimension)
}

func TestSingularValuesMatchOracle(t *testing.T) {
	a := mk(t, [][]float64{
		{3, 2, 2},
		{2, 3, -2},
	})

	values, _, err := a.Singular()
	require.NoError(t, err)
	require.Equal(t, 3, values.Rows())

	got := []float64{values.At(0, 0), values.At(1, 0), values.At(2, 0)}
	sort.Sort(sort.Reverse(sort.Float64Slice(got)))

	var svd mat.SVD
	require.True(t, svd.Factorize(toDense(a), mat.SVDThin))
	want := svd.Values(nil)

	for i, w := range want {
		assert.InDelta(t, w, got[i], 1e-3)
	}
}

func TestSVDReconstruction(t *testing.T) {
	for _, rows := range [][][]float64{
		{{3, 0}, {4, 5}},
		{{1, 2}, {2, 4}},
	} {
		a := mk(t, rows)

		u, s, vt, err := a.SVD()
		require.NoError(t, err)

		us, err := u.Mul(s)
		require.NoError(t, err)
		usvt, err := us.Mul(vt)
		require.NoError(t, err)
		assertClose(t, a, usvt, 1e-3)
	}
}

func TestPseudoinverseOfInvertibleMatchesInverse(t *testing.T) {
	a := mk(t, [][]float64{{4, 7}, {2, 6}})

	pinv, err := a.Pseudoinverse()
	require.NoError(t, err)
	inv, err := a.Inverse()
	require.NoError(t, err)

	assertClose(t, inv, pinv, 1e-3)
}

func TestPseudoinverseWide(t *testing.T) {
	a := mk(t, [][]float64{
		{3, 2, 2},
		{2, 3, -2},
	})

	pinv, err := a.Pseudoinverse()
	require.NoError(t, err)
	require.Equal(t, 3, pinv.Rows())
	require.Equal(t, 2, pinv.Cols())

	apa, err := a.Mul(pinv)
	require.NoError(t, err)
	apa, err = apa.Mul(a)
	require.NoError(t, err)
	assertClose(t, a, apa, 1e-3)
}

func TestPseudoinverseSingularSquare(t *testing.T) {
	// The Gram matrix of a singular input has a zero eigenvalue that the
	// QR algorithm can return as a tiny negative; the pseudoinverse must
	// stay finite regardless.
	a := mk(t, [][]float64{
		{4, 10, 10},
		{10, 30, 30},
		{10, 30, 30},
	})

	pinv, err := a.Pseudoinverse()
	require.NoError(t, err)
	for r := 0; r < pinv.Rows(); r++ {
		for c := 0; c < pinv.Cols(); c++ {
			assert.False(t, math.IsNaN(pinv.At(r, c)))
			assert.False(t, math.IsInf(pinv.At(r, c), 0))
		}
	}

	apa, err := a.Mul(pinv)
	require.NoError(t, err)
	apa, err = apa.Mul(a)
	require.NoError(t, err)
	assertClose(t, a, apa, 0.05)
}

func TestPseudoinverseRankDeficient(t *testing.T) {
	a := mk(t, [][]float64{{1, 2}, {2, 4}})

	_, err := a.Inverse()
	require.ErrorIs(t, err, ErrSingular)

	pinv, err := a.Pseudoinverse()
	require.NoError(t, err)

	// The defining Moore-Penrose identities.
	apa, err := a.Mul(pinv)
	require.NoError(t, err)
	apa, err = apa.Mul(a)
	require.NoError(t, err)
	assertClose(t, a, apa, 1e-3)

	pap, err := pinv.Mul(a)
	require.NoError(t, err)
	pap, err = pap.Mul(pinv)
	require.NoError(t, err)
	assertClose(t, pinv, pap, 1e-3)
}
