package matrix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mk builds a matrix from rows, failing the test on invalid input.
func mk(t *testing.T, rows [][]float64) *Matrix {
	t.Helper()
	m, err := New(rows)
	require.NoError(t, err)
	return m
}

func vec(t *testing.T, vals ...float64) *Matrix {
	t.Helper()
	m, err := NewVector(vals)
	require.NoError(t, err)
	return m
}

func TestNewRejectsEmptyAndJagged(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrDimension)

	_, err = New([][]float64{})
	assert.ErrorIs(t, err, ErrDimension)

	_, err = New([][]float64{{}})
	assert.ErrorIs(t, err, ErrDimension)

	_, err = New([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrDimension)

	_, err = NewVector(nil)
	assert.ErrorIs(t, err, ErrDimension)
}

func TestNewCopiesInput(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m := mk(t, rows)

	rows[0][0] = 99
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestDimsAndAt(t *testing.T) {
	m := mk(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, m.At(1, 2))

	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.At(0, -1) })
}

func TestIdentityAndZeros(t *testing.T) {
	id := Identity(3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r == c {
				assert.Equal(t, 1.0, id.At(r, c))
			} else {
				assert.Equal(t, 0.0, id.At(r, c))
			}
		}
	}

	z := Zeros(2, 4)
	r, c := z.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 4, c)
	assert.Equal(t, 0.0, z.At(1, 3))

	assert.Panics(t, func() { Identity(0) })
	assert.Panics(t, func() { Zeros(1, 0) })
}

func TestRowColDiag(t *testing.T) {
	m := mk(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row := m.Row(1)
	assert.True(t, row.Equal(mk(t, [][]float64{{4, 5, 6}})))

	col := m.Col(2)
	assert.True(t, col.Equal(vec(t, 3, 6)))

	diag := m.Diag()
	assert.True(t, diag.Equal(vec(t, 1, 5)))
}

func TestSetSubMatrix(t *testing.T) {
	m := Zeros(3, 3)
	sub := mk(t, [][]float64{{1}, {2}})

	out, err := m.SetSubMatrix(sub, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, out.At(1, 2))
	assert.Equal(t, 2.0, out.At(2, 2))
	// Receiver untouched.
	assert.Equal(t, 0.0, m.At(1, 2))

	_, err = m.SetSubMatrix(sub, 2, 0)
	assert.ErrorIs(t, err, ErrDimension)
}

func TestRowSwap(t *testing.T) {
	m := mk(t, [][]float64{{1, 2}, {3, 4}})
	out := m.RowSwap(0, 1)
	assert.True(t, out.Equal(mk(t, [][]float64{{3, 4}, {1, 2}})))
	assert.True(t, m.Equal(mk(t, [][]float64{{1, 2}, {3, 4}})))
}

func TestEqualWithinTolerance(t *testing.T) {
	a := mk(t, [][]float64{{1, 2}})
	b := mk(t, [][]float64{{1.00001, 2.00001}})
	c := mk(t, [][]float64{{1.1, 2}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(vec(t, 1, 2)))
}

func TestPredicates(t *testing.T) {
	square := mk(t, [][]float64{{1, 2}, {3, 4}})
	rect := mk(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	assert.True(t, square.IsSquare())
	assert.False(t, rect.IsSquare())

	assert.True(t, vec(t, 1, 2, 3).IsVector())
	assert.False(t, rect.IsVector())

	sym := mk(t, [][]float64{{2, 1}, {1, 2}})
	assert.True(t, sym.IsSymmetric())
	assert.False(t, square.IsSymmetric())
	assert.False(t, rect.IsSymmetric())

	lower := mk(t, [][]float64{{1, 0}, {5, 2}})
	upper := mk(t, [][]float64{{1, 5}, {0, 2}})
	assert.True(t, lower.IsLowerTri())
	assert.False(t, lower.IsUpperTri())
	assert.True(t, upper.IsUpperTri())
	assert.False(t, upper.IsLowerTri())
	assert.True(t, Zeros(2, 2).IsLowerTri())
	assert.True(t, Zeros(2, 2).IsUpperTri())
}

func TestEchelonPredicates(t *testing.T) {
	rowEch := mk(t, [][]float64{
		{1, 2, 3},
		{0, 4, 5},
		{0, 0, 0},
	})
	assert.True(t, rowEch.IsRowEchelon())

	// Zero row above a pivot row is not row echelon.
	notRowEch := mk(t, [][]float64{
		{0, 0, 0},
		{0, 4, 5},
		{0, 0, 6},
	})
	assert.False(t, notRowEch.IsRowEchelon())

	colEch := mk(t, [][]float64{
		{1, 0, 0},
		{2, 3, 0},
		{4, 5, 6},
	})
	assert.True(t, colEch.IsColEchelon())
	assert.False(t, rowEch.IsColEchelon())

	// Repeated pivot column breaks strict ordering.
	repeated := mk(t, [][]float64{
		{1, 2},
		{3, 4},
	})
	assert.False(t, repeated.IsRowEchelon())
}

func TestIsInvertible(t *testing.T) {
	assert.True(t, mk(t, [][]float64{{1, 2}, {3, 4}}).IsInvertible())
	assert.False(t, mk(t, [][]float64{{1, 2}, {2, 4}}).IsInvertible())
	assert.False(t, mk(t, [][]float64{{1, 2, 3}, {4, 5, 6}}).IsInvertible())
}

func TestIsEigenvalue(t *testing.T) {
	a := mk(t, [][]float64{{2, 1}, {1, 2}})
	assert.True(t, a.IsEigenvalue(3))
	assert.True(t, a.IsEigenvalue(1))
	assert.False(t, a.IsEigenvalue(2))
	assert.False(t, mk(t, [][]float64{{1, 2, 3}, {4, 5, 6}}).IsEigenvalue(1))
}

func TestString(t *testing.T) {
	m := mk(t, [][]float64{{1.23456, 2}, {-3.5, 0.0004}})
	assert.Equal(t, "1.235 2\n-3.5 0\n", m.String())
}

func TestErrorKindsAreDistinct(t *testing.T) {
	kinds := []error{ErrDimension, ErrSingular, ErrNotSymmetric, ErrNoSolution}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j {
				assert.False(t, errors.Is(a, b))
			}
		}
	}
}
