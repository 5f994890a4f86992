package matrix

import "gonum.org/v1/gonum/floats/scalar"

// Epsilon is the absolute tolerance used for every approximate comparison in
// this package: structural predicates, zero-pivot detection, and singularity
// checks all go through EqualApprox rather than exact float equality.
const Epsilon = 1e-4

// roundDigits is the fixed precision used when rendering matrices.  Rounding
// is for display only and never feeds back into computation.
const roundDigits = 3

// EqualApprox reports whether x and y are equal within Epsilon.
func EqualApprox(x, y float64) bool {
	return scalar.EqualWithinAbs(x, y, Epsilon)
}

// Round rounds x to three decimal places for display.
func Round(x float64) float64 {
	return scalar.Round(x, roundDigits)
}
