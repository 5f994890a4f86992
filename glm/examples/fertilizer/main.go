/*
This example fits the same fertilizer-survival data two ways.

Plants are treated with a fertilizer at three strengths and survival is
recorded.  The binomial model uses the surviving count out of the number of
plants per strength, with strength as a continuous covariate; the fitted
slope is negative, so higher strength lowers the odds of survival.

The Poisson model uses the same counts unrolled by outcome (survived or
died) and strength as factor levels, treatment coded, fitting a log-linear
model to the cell counts.

Both models print their family, link, iteration count, AIC, and
coefficients.
*/

package main

import (
	"fmt"
	"log"

	"github.com/statkit/linmod/glm"
	"github.com/statkit/linmod/matrix"
)

func mustMatrix(rows [][]float64) *matrix.Matrix {
	m, err := matrix.New(rows)
	if err != nil {
		log.Fatal(err)
	}
	return m
}

func main() {
	// Survivors out of the plants treated at each strength.
	ysBinomial := mustMatrix([][]float64{{32}, {25}, {10}})
	xsBinomial := mustMatrix([][]float64{{1, 1}, {1, 2}, {1, 3}})
	msBinomial := mustMatrix([][]float64{{38}, {42}, {20}})

	binomial, err := glm.NewBinomial(ysBinomial, xsBinomial, msBinomial)
	if err != nil {
		log.Fatal(err)
	}

	// The same data as cell counts: survived and died per strength.
	ysPoisson := mustMatrix([][]float64{{32}, {6}, {25}, {17}, {10}, {10}})
	xsPoisson := mustMatrix([][]float64{
		{1, 1, 1},
		{1, 2, 1},
		{1, 1, 2},
		{1, 2, 2},
		{1, 1, 3},
		{1, 2, 3},
	})

	poisson, err := glm.NewPoisson(ysPoisson, xsPoisson)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(binomial)
	fmt.Println(poisson)
}
