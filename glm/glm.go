package glm

import (
	"fmt"
	"log"

	"github.com/statkit/linmod/matrix"
)

// Model is a generalized linear model fitted to one data set.  A Model is
// created and fitted in one step by NewGaussian, NewPoisson, NewBinomial,
// or a Builder chain ending in Done; after construction it is read-only.
type Model struct {
	fam *Family

	// Response vector (n by 1) and explanatory matrix (n by p).
	ys *matrix.Matrix
	xs *matrix.Matrix

	// Fitting results, set exactly once by the fitting loop.
	betas      *matrix.Matrix
	iterations int
	loglike    float64
	aic        float64
	fitted     bool

	// Optional configuration.
	logger    *log.Logger
	maxIter   int
	fitMethod string
}

// Builder defines a GLM before it is fitted.  Configuration methods chain
// and Done fits the model; the returned Model is read-only.
type Builder struct {
	fam *Family
	ys  *matrix.Matrix
	xs  *matrix.Matrix

	logger    *log.Logger
	maxIter   int
	fitMethod string
}

// New begins definition of a GLM for the response vector ys and
// explanatory matrix xs.
func New(ys, xs *matrix.Matrix) *Builder {
	return &Builder{
		ys:        ys,
		xs:        xs,
		fitMethod: "irls",
	}
}

// Family sets the model family.
func (b *Builder) Family(fam *Family) *Builder {
	b.fam = fam
	return b
}

// Log sets a logger that receives one line per fitting iteration with the
// current log-likelihood.  Without it fitting is silent.
func (b *Builder) Log(logger *log.Logger) *Builder {
	b.logger = logger
	return b
}

// MaxIter bounds the number of IRLS iterations.  The default of zero keeps
// the loop unbounded, running until the log-likelihood stabilizes;
// non-convergent inputs such as perfectly separable binomial data then
// never terminate, so callers needing bounded execution should set a cap.
// When the cap is reached before convergence, Done returns
// ErrNoConvergence.
func (b *Builder) MaxIter(n int) *Builder {
	b.maxIter = n
	return b
}

// FitMethod selects the fitting algorithm, "irls" (default) or "gradient".
// FitMethod panics on any other value.
func (b *Builder) FitMethod(method string) *Builder {
	if method != "irls" && method != "gradient" {
		panic(fmt.Sprintf("glm: fitting method %q not allowed", method))
	}
	b.fitMethod = method
	return b
}

// Done completes definition of the GLM and fits it.  The family must have
// been set or Done panics.  The response must be a vector with one row per
// row of the explanatory matrix, which must not have more columns than
// rows; shape violations return matrix.ErrDimension.  Fitting runs exactly
// once, here.
func (b *Builder) Done() (*Model, error) {
	if b.fam == nil {
		panic("glm: the family must be defined before calling Done")
	}
	if !b.ys.IsVector() {
		return nil, fmt.Errorf("glm: response must be a vector, got %dx%d: %w",
			b.ys.Rows(), b.ys.Cols(), matrix.ErrDimension)
	}
	if b.ys.Rows() != b.xs.Rows() {
		return nil, fmt.Errorf("glm: response has %d rows, explanatory matrix has %d: %w",
			b.ys.Rows(), b.xs.Rows(), matrix.ErrDimension)
	}
	if b.xs.Cols() > b.xs.Rows() {
		return nil, fmt.Errorf("glm: explanatory matrix %dx%d has more columns than rows: %w",
			b.xs.Rows(), b.xs.Cols(), matrix.ErrDimension)
	}

	m := &Model{
		fam:       b.fam,
		ys:        b.ys,
		xs:        b.xs,
		logger:    b.logger,
		maxIter:   b.maxIter,
		fitMethod: b.fitMethod,
	}

	var err error
	if m.fitMethod == "gradient" {
		err = m.fitGradient()
	} else {
		err = m.fitIRLS()
	}
	if err != nil {
		return nil, err
	}

	return m, nil
}

// NewGaussian fits a Gaussian GLM (ordinary linear regression through the
// identity link) to the response vector ys and explanatory matrix xs.
func NewGaussian(ys, xs *matrix.Matrix) (*Model, error) {
	return New(ys, xs).Family(NewGaussianFamily()).Done()
}

// NewPoisson fits a Poisson GLM (log-linear regression) to the response
// vector ys and explanatory matrix xs.  The response must be non-negative
// counts; this is not validated but violations corrupt the fit.
func NewPoisson(ys, xs *matrix.Matrix) (*Model, error) {
	return New(ys, xs).Family(NewPoissonFamily()).Done()
}

// NewBinomial fits a binomial GLM (logistic regression on counts) to the
// response vector ys, explanatory matrix xs, and per-observation trial
// counts ms.  Each response must satisfy 0 <= y <= m; this is not validated
// but violations corrupt the fit.
func NewBinomial(ys, xs, ms *matrix.Matrix) (*Model, error) {
	if ms.Rows() != ys.Rows() {
		return nil, fmt.Errorf("glm: trial counts have %d rows, response has %d: %w",
			ms.Rows(), ys.Rows(), matrix.ErrDimension)
	}
	if !ms.IsVector() {
		return nil, fmt.Errorf("glm: trial counts must be a vector, got %dx%d: %w",
			ms.Rows(), ms.Cols(), matrix.ErrDimension)
	}

	return New(ys, xs).Family(NewBinomialFamily(ms)).Done()
}

// Family returns the model's family.
func (m *Model) Family() *Family {
	return m.fam
}

// NumParams returns the number of coefficients in the model.
func (m *Model) NumParams() int {
	return m.xs.Cols()
}

// Iterations returns the number of fitting iterations performed.
func (m *Model) Iterations() int {
	return m.iterations
}

// Coeff returns the fitted coefficient vector (p by 1).
func (m *Model) Coeff() (*matrix.Matrix, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	return m.betas, nil
}

// LogLike returns the log-likelihood of the fitted model.
func (m *Model) LogLike() (float64, error) {
	if !m.fitted {
		return 0, ErrNotFitted
	}
	return m.loglike, nil
}

// AIC returns the Akaike information criterion of the fitted model,
// 2*(p - loglike) for p coefficients.
func (m *Model) AIC() (float64, error) {
	if !m.fitted {
		return 0, ErrNotFitted
	}
	return m.aic, nil
}

// PointEstimate returns the inner product of a feature vector (p by 1) with
// the fitted coefficients: the linear predictor for one observation.
func (m *Model) PointEstimate(x *matrix.Matrix) (float64, error) {
	if !m.fitted {
		return 0, ErrNotFitted
	}
	eta, err := x.InnerProduct(m.betas)
	if err != nil {
		return 0, fmt.Errorf("glm: point estimate: %w", err)
	}
	return eta, nil
}

// String renders the fitted model: family, link, iteration count, rounded
// AIC, and the rounded coefficients one per line.
func (m *Model) String() string {
	return m.summary()
}
