package glm

import (
	"fmt"
	"math"

	"github.com/statkit/linmod/matrix"
)

// logLikeTol is the minimum change in log-likelihood between two IRLS
// iterations below which the estimates are taken as converged.
const logLikeTol = 1e-4

// fitIRLS estimates the coefficients by iteratively reweighted least
// squares.  Each pass re-linearizes the model around the current expected
// values and re-solves the weighted least-squares system
//
//	betas = (X^T W X)^+ X^T W z
//
// with W the diagonal IRLS weights and z the working response.  The
// pseudoinverse stands in for the exact inverse so that rank-deficient
// designs reduce to a least-norm update instead of failing.  The loop stops
// once the log-likelihood changes by no more than logLikeTol, always after
// at least one iteration.
func (m *Model) fitIRLS() error {
	xst := m.xs.Transpose()

	// Start the expected values at the observed response.
	mus := m.ys
	loglike := m.fam.LogLike(m.ys, mus)

	var betas *matrix.Matrix

	for {
		etas := m.fam.Link.Link(mus)
		gdiffs := m.fam.Link.Deriv(mus)

		ws, err := irlsWeights(gdiffs, m.fam.Var.Var(mus))
		if err != nil {
			return err
		}

		zs, err := workingResponse(etas, m.ys, mus, gdiffs)
		if err != nil {
			return err
		}

		// betas = (X^T W X)^+ X^T W z
		xtw, err := xst.Mul(ws)
		if err != nil {
			return err
		}
		xtwx, err := xtw.Mul(m.xs)
		if err != nil {
			return err
		}
		inv, err := xtwx.Pseudoinverse()
		if err != nil {
			return fmt.Errorf("glm: weighted least squares update: %w", err)
		}
		xtwz, err := xtw.Mul(zs)
		if err != nil {
			return err
		}
		betas, err = inv.Mul(xtwz)
		if err != nil {
			return err
		}

		// Re-linearize around the new coefficients.
		etas, err = m.xs.Mul(betas)
		if err != nil {
			return err
		}
		mus = m.fam.Link.InvLink(etas)

		prev := loglike
		loglike = m.fam.LogLike(m.ys, mus)
		m.iterations++

		if m.logger != nil {
			m.logger.Printf("iteration %d: loglike=%.10f", m.iterations, loglike)
		}

		if math.Abs(loglike-prev) <= logLikeTol {
			break
		}
		if m.maxIter > 0 && m.iterations >= m.maxIter {
			return fmt.Errorf("%w after %d iterations", ErrNoConvergence, m.iterations)
		}
	}

	if m.logger != nil {
		m.logger.Print("IRLS converged")
	}

	m.finish(betas, loglike)

	return nil
}

// irlsWeights builds the diagonal weight matrix w[i][i] =
// 1 / (g'(mu_i)^2 * v(mu_i)).
func irlsWeights(gdiffs, vars *matrix.Matrix) (*matrix.Matrix, error) {
	wvec, err := gdiffs.Zip(vars, func(g, v float64) float64 {
		return 1 / (g * g * v)
	})
	if err != nil {
		return nil, err
	}
	return wvec.DiagonalizeVec()
}

// workingResponse builds the adjusted response z = eta + g'(mu)*(y - mu).
func workingResponse(etas, ys, mus, gdiffs *matrix.Matrix) (*matrix.Matrix, error) {
	resid, err := ys.Zip(mus, func(y, mu float64) float64 { return y - mu })
	if err != nil {
		return nil, err
	}
	scaled, err := resid.Zip(gdiffs, func(r, g float64) float64 { return r * g })
	if err != nil {
		return nil, err
	}
	return etas.Zip(scaled, func(eta, s float64) float64 { return eta + s })
}

// finish freezes the fitting results on the model.
func (m *Model) finish(betas *matrix.Matrix, loglike float64) {
	m.betas = betas
	m.loglike = loglike
	m.aic = 2 * (float64(m.NumParams()) - loglike)
	m.fitted = true
}
