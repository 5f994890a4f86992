package glm

import "github.com/statkit/linmod/matrix"

// Variance specifies a GLM variance function, mapping expected values to
// the variance of the response.
type Variance struct {
	Name string
	Var  VecFunc
}

var constantVar = Variance{
	Name: "Constant",
	Var:  oneFunc,
}

var identityVar = Variance{
	Name: "Identity",
	Var: func(mus *matrix.Matrix) *matrix.Matrix {
		return clampMuZero(mus).Map(func(mu float64) float64 { return mu })
	},
}

// newBinomialVar returns the binomial variance function for the given trial
// counts: v(mu) = mu * (1 - mu/m).
func newBinomialVar(ms *matrix.Matrix) *Variance {
	return &Variance{
		Name: "Binomial",
		Var: func(mus *matrix.Matrix) *matrix.Matrix {
			out, err := clampMu(mus, ms).Zip(ms, func(mu, m float64) float64 {
				return mu * (1 - mu/m)
			})
			if err != nil {
				panic(err)
			}
			return out
		},
	}
}
