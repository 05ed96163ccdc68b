package dist

import (
	"errors"
	"math"

	"github.com/gonum/mathext"
)

// ChiSquareCDF returns the cumulative distribution function of the
// chi-squared distribution with df degrees of freedom.
func ChiSquareCDF(x, df float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathext.GammaInc(df/2, x/2)
}

// ChiSquareGOF computes the Pearson goodness-of-fit statistic and
// its p-value for observed bin counts against expected bin
// probabilities. Counts and probs must have the same length and
// probs must sum to approximately one.
func ChiSquareGOF(counts []int, probs []float64) (stat, p float64, err error) {
	if len(counts) != len(probs) {
		return 0, 0, errors.New("counts and probs should have the same length")
	}
	if len(counts) < 2 {
		return 0, 0, errors.New("at least two bins are required")
	}
	n := 0
	for _, c := range counts {
		n += c
	}
	if n == 0 {
		return 0, 0, errors.New("no observations")
	}
	psum := 0.0
	for _, pr := range probs {
		if pr <= 0 {
			return 0, 0, errors.New("bin probabilities should be > 0")
		}
		psum += pr
	}
	if math.Abs(psum-1) > 1e-6 {
		return 0, 0, errors.New("bin probabilities should sum to 1")
	}

	for i, c := range counts {
		expected := float64(n) * probs[i]
		stat += square(float64(c)-expected) / expected
	}
	df := float64(len(counts) - 1)
	p = 1 - ChiSquareCDF(stat, df)
	return stat, p, nil
}

// Histogram bins values by the given ascending break points; values
// below the first break go to the first bin and values above the
// last break to the last one, so len(counts) == len(breaks)+1.
func Histogram(values, breaks []float64) []int {
	counts := make([]int, len(breaks)+1)
	for _, v := range values {
		i := 0
		for i < len(breaks) && v >= breaks[i] {
			i++
		}
		counts[i]++
	}
	return counts
}

// NormalBinProbs returns the bin probabilities of a normal
// distribution for the bins defined by the break points.
func NormalBinProbs(breaks []float64, mean, sd float64) []float64 {
	probs := make([]float64, len(breaks)+1)
	prev := 0.0
	for i, b := range breaks {
		cdf := NormalCDF(b, mean, sd)
		probs[i] = cdf - prev
		prev = cdf
	}
	probs[len(breaks)] = 1 - prev
	return probs
}
