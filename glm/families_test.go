package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityLink(t *testing.T) {
	xs := vec(t, -1, 0, 2.5)

	assert.True(t, idLink.Link(xs).Equal(xs))
	assert.True(t, idLink.InvLink(xs).Equal(xs))
	assert.True(t, idLink.Deriv(xs).Equal(vec(t, 1, 1, 1)))
}

func TestLogLink(t *testing.T) {
	mus := vec(t, 1, math.E)

	assert.True(t, logLink.Link(mus).Equal(vec(t, 0, 1)))
	assert.True(t, logLink.InvLink(vec(t, 0, 1)).Equal(mus))
	assert.True(t, logLink.Deriv(vec(t, 2, 4)).Equal(vec(t, 0.5, 0.25)))

	// A mean of exactly zero is nudged into the support instead of
	// producing an infinite derivative.
	d := logLink.Deriv(vec(t, 0)).At(0, 0)
	assert.False(t, math.IsInf(d, 0))
}

func TestLogitLink(t *testing.T) {
	ms := vec(t, 1, 2)
	link := newLogitLink(ms)

	assert.Equal(t, "Logit", link.Name)

	etas := link.Link(vec(t, 0.5, 1))
	assert.InDelta(t, 0, etas.At(0, 0), 1e-9)
	assert.InDelta(t, 0, etas.At(1, 0), 1e-9)

	mus := link.InvLink(vec(t, 0, 0))
	assert.InDelta(t, 0.5, mus.At(0, 0), 1e-9)
	assert.InDelta(t, 1, mus.At(1, 0), 1e-9)

	// g'(mu) = m / (mu * (m - mu)).
	d := link.Deriv(vec(t, 0.5, 1))
	assert.InDelta(t, 4, d.At(0, 0), 1e-9)
	assert.InDelta(t, 2, d.At(1, 0), 1e-9)

	// Boundary means stay finite through the clamp.
	for _, b := range []float64{0, 1} {
		out := link.Link(vec(t, b, 1))
		assert.False(t, math.IsInf(out.At(0, 0), 0))
		assert.False(t, math.IsNaN(out.At(0, 0)))
	}
}

func TestVarianceFuncs(t *testing.T) {
	mus := vec(t, 2, 5)

	assert.True(t, constantVar.Var(mus).Equal(vec(t, 1, 1)))
	assert.True(t, identityVar.Var(mus).Equal(mus))

	bv := newBinomialVar(vec(t, 4, 10))
	assert.True(t, bv.Var(mus).Equal(vec(t, 1, 2.5)))
}

func TestGaussianLogLike(t *testing.T) {
	fam := NewGaussianFamily()

	// A perfect fit leaves only the normalizing constant.
	perfect := fam.LogLike(vec(t, 3), vec(t, 3))
	assert.InDelta(t, -math.Log(2*math.Pi)/2, perfect, 1e-9)

	// A unit residual costs one half.
	off := fam.LogLike(vec(t, 3), vec(t, 4))
	assert.InDelta(t, perfect-0.5, off, 1e-9)
}

func TestPoissonLogLike(t *testing.T) {
	fam := NewPoissonFamily()

	// y=2, mu=2: 2*ln(2) - 2 - ln(2!).
	ll := fam.LogLike(vec(t, 2), vec(t, 2))
	assert.InDelta(t, 2*math.Log(2)-2-math.Log(2), ll, 1e-9)

	// A zero mean stays finite through the log guard.
	assert.False(t, math.IsInf(fam.LogLike(vec(t, 0), vec(t, 0)), 0))
}

func TestBinomialLogLike(t *testing.T) {
	ms := vec(t, 2)
	fam := NewBinomialFamily(ms)

	// y=1, m=2, p=0.5: log(C(2,1) * 0.5^2) = log(0.5).
	ll := fam.LogLike(vec(t, 1), vec(t, 1))
	assert.InDelta(t, math.Log(0.5), ll, 1e-9)

	// All failures at p near zero stays finite through the odds guard.
	zero := fam.LogLike(vec(t, 0), vec(t, 0))
	assert.False(t, math.IsInf(zero, 0))
	assert.False(t, math.IsNaN(zero))
}

func TestLogChoose(t *testing.T) {
	require.InDelta(t, math.Log(10), logChoose(5, 2), 1e-9)
	require.InDelta(t, 0, logChoose(7, 0), 1e-9)
	require.InDelta(t, 0, logChoose(7, 7), 1e-9)
}
