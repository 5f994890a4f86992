package glm

import "errors"

var (
	// ErrNotFitted is returned when coefficients, AIC, or a point estimate
	// are requested from a model whose fitting loop has not completed.
	ErrNotFitted = errors.New("glm: model is not fitted")

	// ErrNoConvergence is returned when an iteration bound set with
	// MaxIter is reached before the log-likelihood stabilizes.  Without a
	// bound the IRLS loop runs until convergence, which for inputs such as
	// perfectly separable binomial data may be never.
	ErrNoConvergence = errors.New("glm: fitting did not converge")
)
