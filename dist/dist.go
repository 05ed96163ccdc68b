// Package dist implements closed-form target log-densities and
// histogram diagnostics for the samplers.
package dist

import (
	"math"
)

// square computes x^2.
func square(x float64) float64 {
	return x * x
}

// Normal returns the log-density of independent normal coordinates
// with the given mean and standard deviation.
func Normal(mean, sd float64) func([]float64) float64 {
	if sd <= 0 {
		panic("sd should be > 0")
	}
	c := -math.Log(sd * math.Sqrt(2*math.Pi))
	return func(x []float64) (res float64) {
		for _, v := range x {
			res += c - square(v-mean)/(2*square(sd))
		}
		return
	}
}

// Mixture returns the log-density of a two-component normal mixture
// applied independently to every coordinate; w is the weight of the
// first component.
func Mixture(w, mean1, sd1, mean2, sd2 float64) func([]float64) float64 {
	if w < 0 || w > 1 {
		panic("w should be in [0, 1]")
	}
	f1 := Normal(mean1, sd1)
	f2 := Normal(mean2, sd2)
	lw1 := math.Log(w)
	lw2 := math.Log(1 - w)
	return func(x []float64) (res float64) {
		v := make([]float64, 1)
		for _, xi := range x {
			v[0] = xi
			a := lw1 + f1(v)
			b := lw2 + f2(v)
			// log(exp(a) + exp(b)) without overflow
			m := math.Max(a, b)
			if math.IsInf(m, -1) {
				res += m
				continue
			}
			res += m + math.Log(math.Exp(a-m)+math.Exp(b-m))
		}
		return
	}
}

// Rosenbrock returns the classic banana-shaped 2-D log-density
// -( (a-x)^2 + b*(y-x^2)^2 ).
func Rosenbrock(a, b float64) func([]float64) float64 {
	return func(x []float64) float64 {
		if len(x) != 2 {
			panic("Rosenbrock density is two-dimensional")
		}
		return -(square(a-x[0]) + b*square(x[1]-square(x[0])))
	}
}

// NormalCDF is the cumulative distribution function of a normal
// distribution.
func NormalCDF(x, mean, sd float64) float64 {
	return 0.5 * (1 + math.Erf((x-mean)/(sd*math.Sqrt2)))
}
