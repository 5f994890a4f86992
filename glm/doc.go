/*
Package glm fits generalized linear models (GLM) by iteratively reweighted
least squares (IRLS) to maximum-likelihood coefficient estimates.

A model is built from a response vector, an explanatory matrix, and a family
(Gaussian, Poisson, or Binomial with per-observation trial counts).  The
family supplies the link function, its derivative and inverse, the variance
function, and the log-likelihood; the fitting loop is shared across
families.  Construction validates shapes and fits immediately; a fitted
model exposes its coefficients, iteration count, AIC, and point estimates.

Matrices are the immutable dense type from the companion matrix package.
The weighted least-squares update solves through the Moore-Penrose
pseudoinverse, so rank-deficient designs do not abort the fit.
*/
package glm
