package mcmc

import (
	"fmt"
	"strconv"

	"github.com/gonum/matrix/mat64"

	"bitbucket.org/Davydov/rwalk/rng"
)

// Adder is the only operation the additive-step kernel requires from
// a position type.
type Adder[P any] interface {
	Add(P) P
}

// StepFunc draws a zero-mean perturbation for the additive random
// walk.
type StepFunc[P any] func(src rng.Source, position P) P

// NewAdditive creates a symmetric random-walk kernel with
// move = position + step(src, position).
func NewAdditive[P Adder[P]](logDensity LogDensityFunc[P], step StepFunc[P]) *RWM[P] {
	move := func(src rng.Source, position P) P {
		return position.Add(step(src, position))
	}
	return New(logDensity, move)
}

// Vec is a flat vector position.
type Vec []float64

// Add returns the elementwise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	if len(v) != len(o) {
		panic("dimension mismatch")
	}
	r := make(Vec, len(v))
	for i := range v {
		r[i] = v[i] + o[i]
	}
	return r
}

// String returns tab-separated coordinates, matching the trajectory
// file format.
func (v Vec) String() (s string) {
	for i, x := range v {
		if i != 0 {
			s += "\t"
		}
		s += strconv.FormatFloat(x, 'f', 6, 64)
	}
	return
}

// NormalStep returns an isotropic Gaussian step function with
// standard deviation sd.
func NormalStep(sd float64) StepFunc[Vec] {
	if sd <= 0 {
		panic("sd should be > 0")
	}
	return func(src rng.Source, position Vec) Vec {
		r := make(Vec, len(position))
		for i := range r {
			r[i] = src.Norm() * sd
		}
		return r
	}
}

// NormalStepScales returns a Gaussian step function with a
// per-coordinate standard deviation.
func NormalStepScales(scales []float64) (StepFunc[Vec], error) {
	for i, sd := range scales {
		if sd <= 0 {
			return nil, fmt.Errorf("scale %d should be > 0, got %v", i, sd)
		}
	}
	return func(src rng.Source, position Vec) Vec {
		if len(position) != len(scales) {
			panic("dimension mismatch")
		}
		r := make(Vec, len(position))
		for i := range r {
			r[i] = src.Norm() * scales[i]
		}
		return r
	}, nil
}

// NormalStepMatrix returns a correlated Gaussian step function,
// step = sigma * z with z standard normal. Sigma must be a square
// scale matrix; any other shape is an error.
func NormalStepMatrix(sigma mat64.Matrix) (StepFunc[Vec], error) {
	r, c := sigma.Dims()
	if r != c {
		return nil, fmt.Errorf("sigma should be a square matrix, got %dx%d", r, c)
	}
	return func(src rng.Source, position Vec) Vec {
		if len(position) != c {
			panic("dimension mismatch")
		}
		z := make([]float64, c)
		for i := range z {
			z[i] = src.Norm()
		}
		var step mat64.Vector
		step.MulVec(sigma, mat64.NewVector(c, z))
		out := make(Vec, c)
		for i := range out {
			out[i] = step.At(i, 0)
		}
		return out
	}, nil
}
