package glm

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"

	"github.com/statkit/linmod/matrix"
)

// fitGradient estimates the coefficients by direct maximization of the
// family log-likelihood with BFGS.  It is an alternative to IRLS for data
// where the reweighting loop cycles; both methods find the same maximum on
// well-behaved inputs.
func (m *Model) fitGradient() error {
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return -m.logLikeAt(x)
		},
		Grad: func(grad, x []float64) {
			m.scoreAt(x, grad)
			floats.Scale(-1, grad)
		},
	}

	settings := &optimize.Settings{GradientThreshold: 1e-6}
	start := make([]float64, m.NumParams())

	result, err := optimize.Minimize(problem, start, settings, &optimize.BFGS{})
	if err != nil {
		return fmt.Errorf("glm: gradient fitting: %w", err)
	}
	if err := result.Status.Err(); err != nil {
		return fmt.Errorf("glm: gradient fitting: %w", err)
	}

	betas, err := matrix.NewVector(result.X)
	if err != nil {
		return err
	}

	m.iterations = result.Stats.MajorIterations
	if m.logger != nil {
		m.logger.Printf("gradient fitting converged in %d iterations", m.iterations)
	}

	m.finish(betas, -result.F)

	return nil
}

// logLikeAt evaluates the family log-likelihood at the given coefficients.
func (m *Model) logLikeAt(coeff []float64) float64 {
	mus := m.fam.Link.InvLink(m.linpred(coeff))
	return m.fam.LogLike(m.ys, mus)
}

// scoreAt writes the score vector X^T (y - mu)/(g'(mu) v(mu)) at the given
// coefficients into score.
func (m *Model) scoreAt(coeff, score []float64) {
	mus := m.fam.Link.InvLink(m.linpred(coeff))
	gdiffs := m.fam.Link.Deriv(mus)
	vars := m.fam.Var.Var(mus)

	for j := range score {
		score[j] = 0
	}
	for i := 0; i < m.ys.Rows(); i++ {
		fac := (m.ys.At(i, 0) - mus.At(i, 0)) / (gdiffs.At(i, 0) * vars.At(i, 0))
		for j := 0; j < m.xs.Cols(); j++ {
			score[j] += fac * m.xs.At(i, j)
		}
	}
}

// linpred returns the linear predictor X*coeff as a vector.
func (m *Model) linpred(coeff []float64) *matrix.Matrix {
	out := make([]float64, m.xs.Rows())
	for i := range out {
		for j, b := range coeff {
			out[i] += m.xs.At(i, j) * b
		}
	}
	etas, err := matrix.NewVector(out)
	if err != nil {
		panic(err)
	}
	return etas
}
