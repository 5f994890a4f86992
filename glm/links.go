package glm

import (
	"math"

	"github.com/statkit/linmod/matrix"
)

// VecFunc maps a vector of values elementwise to a new vector, for example
// expected values to the linear predictor scale.
type VecFunc func(*matrix.Matrix) *matrix.Matrix

// Link specifies a GLM link function.
type Link struct {
	Name string

	// Link calculates the link function, mapping the mean value to the
	// linear predictor.
	Link VecFunc

	// InvLink calculates the inverse of the link function, mapping the
	// linear predictor to the mean value.
	InvLink VecFunc

	// Deriv calculates the derivative of the link function.
	Deriv VecFunc
}

var idLink = Link{
	Name:    "Identity",
	Link:    idFunc,
	InvLink: idFunc,
	Deriv:   oneFunc,
}

var logLink = Link{
	Name:    "Log",
	Link:    logFunc,
	InvLink: expFunc,
	Deriv:   logDerivFunc,
}

// newLogitLink returns the logit link for a binomial response with the
// given per-observation trial counts: g(mu) = ln(mu) - ln(m - mu).  The
// returned functions close over the trial counts the way parameterized
// families are built.
func newLogitLink(ms *matrix.Matrix) *Link {
	return &Link{
		Name: "Logit",
		Link: func(mus *matrix.Matrix) *matrix.Matrix {
			out, err := clampMu(mus, ms).Zip(ms, func(mu, m float64) float64 {
				return math.Log(mu) - math.Log(m-mu)
			})
			if err != nil {
				panic(err)
			}
			return out
		},
		InvLink: func(etas *matrix.Matrix) *matrix.Matrix {
			out, err := etas.Zip(ms, func(eta, m float64) float64 {
				return m / (1 + math.Exp(-eta))
			})
			if err != nil {
				panic(err)
			}
			return out
		},
		Deriv: func(mus *matrix.Matrix) *matrix.Matrix {
			out, err := clampMu(mus, ms).Zip(ms, func(mu, m float64) float64 {
				return m / (mu * (m - mu))
			})
			if err != nil {
				panic(err)
			}
			return out
		},
	}
}

// muEpsilon nudges an expected value off the boundary of its support,
// where the logit and log links divide by zero.
const muEpsilon = 1e-5

// clampMu moves expected values sitting exactly at 0 or at the trial count
// into the open interval.  The comparison is exact on purpose: only those
// two values break the link functions.
func clampMu(mus, ms *matrix.Matrix) *matrix.Matrix {
	out, err := mus.Zip(ms, func(mu, m float64) float64 {
		switch mu {
		case 0:
			return muEpsilon
		case m:
			return m - muEpsilon
		default:
			return mu
		}
	})
	if err != nil {
		panic(err)
	}
	return out
}

// clampMuZero moves expected values sitting exactly at zero off the
// boundary.  Exact comparison, as in clampMu.
func clampMuZero(mus *matrix.Matrix) *matrix.Matrix {
	return mus.Map(func(mu float64) float64 {
		if mu == 0 {
			return muEpsilon
		}
		return mu
	})
}

func idFunc(xs *matrix.Matrix) *matrix.Matrix {
	return xs.Map(func(x float64) float64 { return x })
}

func oneFunc(xs *matrix.Matrix) *matrix.Matrix {
	return xs.Map(func(float64) float64 { return 1 })
}

func logFunc(xs *matrix.Matrix) *matrix.Matrix {
	return xs.Map(math.Log)
}

func expFunc(xs *matrix.Matrix) *matrix.Matrix {
	return xs.Map(math.Exp)
}

func logDerivFunc(xs *matrix.Matrix) *matrix.Matrix {
	return clampMuZero(xs).Map(func(x float64) float64 { return 1 / x })
}
