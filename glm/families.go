package glm

import (
	"math"

	"github.com/statkit/linmod/matrix"
)

// LogLikeFunc evaluates and returns the log-likelihood for a GLM.  The
// arguments are the response vector and the current expected values.  The
// constant terms (log y!, log binomial coefficients, the Gaussian
// normalizing constant) are included even though they cancel when comparing
// log-likelihoods, so absolute values match other statistical software.
type LogLikeFunc func(ys, mus *matrix.Matrix) float64

// Family represents a generalized linear model family: the link function,
// variance function, and log-likelihood of one exponential-family
// distribution.  Any value satisfying this contract can be fitted with
// a Builder.
type Family struct {
	// The name of the family, used in the fitted model summary.
	Name string

	// The link function family trio.
	Link *Link

	// The variance function.
	Var *Variance

	// The log-likelihood function.
	LogLike LogLikeFunc
}

// NewGaussianFamily returns the Gaussian family with the identity link and
// constant variance.  The response variance is taken as known and equal to
// one across observations.
func NewGaussianFamily() *Family {
	return &Family{
		Name:    "Gaussian",
		Link:    &idLink,
		Var:     &constantVar,
		LogLike: gaussianLogLike,
	}
}

// NewPoissonFamily returns the Poisson family with the log link.
func NewPoissonFamily() *Family {
	return &Family{
		Name:    "Poisson",
		Link:    &logLink,
		Var:     &identityVar,
		LogLike: poissonLogLike,
	}
}

// NewBinomialFamily returns the binomial family for the given trial counts,
// with the logit link g(mu) = ln(mu) - ln(m - mu).  The link, variance, and
// log-likelihood all close over the trial counts, so the family value is
// bound to one data set.
func NewBinomialFamily(ms *matrix.Matrix) *Family {
	return &Family{
		Name:    "Binomial",
		Link:    newLogitLink(ms),
		Var:     newBinomialVar(ms),
		LogLike: newBinomialLogLike(ms),
	}
}

// tiny keeps logarithms of boundary probabilities finite without changing
// interior values measurably.
const tiny = 1e-200

func gaussianLogLike(ys, mus *matrix.Matrix) float64 {
	n := float64(ys.Rows())
	constant := -n * math.Log(2*math.Pi) / 2

	rss, err := foldZip(ys, mus, func(y, mu float64) float64 {
		r := y - mu
		return r * r
	})
	if err != nil {
		panic(err)
	}

	return constant - rss/2
}

func poissonLogLike(ys, mus *matrix.Matrix) float64 {
	ll, err := foldZip(ys, mus, func(y, mu float64) float64 {
		lgamma, _ := math.Lgamma(y + 1)
		return y*math.Log(mu+tiny) - mu - lgamma
	})
	if err != nil {
		panic(err)
	}
	return ll
}

func newBinomialLogLike(ms *matrix.Matrix) LogLikeFunc {
	return func(ys, mus *matrix.Matrix) float64 {
		ps, err := mus.Zip(ms, func(mu, m float64) float64 { return mu / m })
		if err != nil {
			panic(err)
		}

		var ll float64
		for i := 0; i < ys.Rows(); i++ {
			y := ys.At(i, 0)
			m := ms.At(i, 0)
			p := ps.At(i, 0)

			// y*log(p) + (m-y)*log(1-p), written with the odds ratio so a
			// boundary p stays finite on the side its count cancels.
			odds := p/(1-p) + tiny
			ll += y*math.Log(odds) + m*math.Log(1-p) + logChoose(m, y)
		}
		return ll
	}
}

// logChoose returns log(m choose y) via the log-gamma function.
func logChoose(m, y float64) float64 {
	a, _ := math.Lgamma(m + 1)
	b, _ := math.Lgamma(y + 1)
	c, _ := math.Lgamma(m - y + 1)
	return a - b - c
}

// foldZip sums f over paired elements of two equally shaped vectors.
func foldZip(xs, ys *matrix.Matrix, f func(x, y float64) float64) (float64, error) {
	zipped, err := xs.Zip(ys, f)
	if err != nil {
		return 0, err
	}
	return zipped.FoldVec(func(acc, v float64) float64 { return acc + v }, 0)
}
