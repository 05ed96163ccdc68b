package mcmc

import (
	"testing"

	"github.com/gonum/matrix/mat64"
)

func TestVecAdd(tst *testing.T) {
	v := Vec{1, 2}.Add(Vec{0.5, -2})
	if v[0] != 1.5 || v[1] != 0 {
		tst.Errorf("Incorrect sum: %v", v)
	}

	defer func() {
		if recover() == nil {
			tst.Error("Expected panic on dimension mismatch")
		}
	}()
	Vec{1}.Add(Vec{1, 2})
}

func TestVecString(tst *testing.T) {
	s := Vec{1, -0.5}.String()
	if s != "1.000000\t-0.500000" {
		tst.Errorf("Incorrect string: %q", s)
	}
}

func TestNormalStepInvalidSD(tst *testing.T) {
	defer func() {
		if recover() == nil {
			tst.Error("Expected panic for sd <= 0")
		}
	}()
	NormalStep(0)
}

func TestNormalStepScales(tst *testing.T) {
	if _, err := NormalStepScales([]float64{1, -1}); err == nil {
		tst.Error("Expected error for negative scale")
	}

	step, err := NormalStepScales([]float64{2, 3})
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	src := &scriptSource{norms: []float64{1, -1}}
	r := step(src, Vec{0, 0})
	if r[0] != 2 || r[1] != -3 {
		tst.Errorf("Incorrect scaled step: %v", r)
	}
}

func TestNormalStepMatrixShape(tst *testing.T) {
	if _, err := NormalStepMatrix(mat64.NewDense(2, 3, nil)); err == nil {
		tst.Error("Expected error for non-square sigma")
	}
}

func TestNormalStepMatrix(tst *testing.T) {
	sigma := mat64.NewDense(2, 2, []float64{
		2, 0,
		1, 3,
	})
	step, err := NormalStepMatrix(sigma)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	src := &scriptSource{norms: []float64{1, 1}}
	r := step(src, Vec{0, 0})
	// sigma * [1 1] = [2 4]
	if r[0] != 2 || r[1] != 4 {
		tst.Errorf("Incorrect matrix step: %v", r)
	}
}
