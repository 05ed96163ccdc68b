package dist

import (
	"math"
	"testing"
)

const smallDiff = 1e-9

/*** Tests if a and b are approximately equal ***/
func appreq(a, b float64) bool {
	return math.Abs(a-b) <= smallDiff
}

func TestNormal(tst *testing.T) {
	f := Normal(0, 1)
	want := -0.5*math.Log(2*math.Pi) - 0.5*1.5*1.5
	if !appreq(f([]float64{1.5}), want) {
		tst.Errorf("Incorrect normal log-density. Expected %v, got %v", want, f([]float64{1.5}))
	}
	// independent coordinates sum
	if !appreq(f([]float64{1.5, 1.5}), 2*want) {
		tst.Error("log-density is not additive over coordinates")
	}
}

func TestNormalShifted(tst *testing.T) {
	f := Normal(2, 3)
	g := Normal(0, 1)
	// N(2, 3) at x equals N(0, 1) at (x-2)/3 minus log(3)
	x := 4.7
	want := g([]float64{(x - 2) / 3}) - math.Log(3)
	if !appreq(f([]float64{x}), want) {
		tst.Errorf("Incorrect shifted normal log-density. Expected %v, got %v", want, f([]float64{x}))
	}
}

func TestMixture(tst *testing.T) {
	// A degenerate mixture of identical components is the component.
	f := Mixture(0.3, 0, 1, 0, 1)
	g := Normal(0, 1)
	for _, x := range []float64{-2, 0, 1.7} {
		if !appreq(f([]float64{x}), g([]float64{x})) {
			tst.Errorf("Degenerate mixture disagrees with component at %v", x)
		}
	}

	// The mixture density is the weighted sum of the components.
	f = Mixture(0.25, -1, 0.5, 2, 1)
	g1 := Normal(-1, 0.5)
	g2 := Normal(2, 1)
	x := []float64{0.3}
	want := math.Log(0.25*math.Exp(g1(x)) + 0.75*math.Exp(g2(x)))
	if !appreq(f(x), want) {
		tst.Errorf("Incorrect mixture log-density. Expected %v, got %v", want, f(x))
	}
}

func TestRosenbrock(tst *testing.T) {
	f := Rosenbrock(1, 100)
	if f([]float64{1, 1}) != 0 {
		tst.Error("Rosenbrock log-density should be 0 at the mode")
	}
	if f([]float64{0, 0}) >= f([]float64{1, 1}) {
		tst.Error("Rosenbrock mode is not a maximum")
	}
}

func TestNormalCDF(tst *testing.T) {
	if !appreq(NormalCDF(0, 0, 1), 0.5) {
		tst.Error("CDF at the mean should be 0.5")
	}
	if !appreq(NormalCDF(1.959963984540054, 0, 1), 0.975) {
		tst.Error("Incorrect 97.5% quantile")
	}
	if !appreq(NormalCDF(3, 1, 2), NormalCDF(1, 0, 1)) {
		tst.Error("CDF is not location-scale invariant")
	}
}

func TestChiSquareCDF(tst *testing.T) {
	// Chi-squared with 2 degrees of freedom is Exp(1/2).
	for _, x := range []float64{0.5, 1, 3, 10} {
		want := 1 - math.Exp(-x/2)
		if !appreq(ChiSquareCDF(x, 2), want) {
			tst.Errorf("Incorrect chi-square CDF at %v. Expected %v, got %v", x, want, ChiSquareCDF(x, 2))
		}
	}
	if ChiSquareCDF(-1, 2) != 0 {
		tst.Error("CDF should be 0 for negative statistic")
	}
}

func TestChiSquareGOF(tst *testing.T) {
	// A perfect match gives statistic 0 and p-value 1.
	counts := []int{25, 25, 25, 25}
	probs := []float64{0.25, 0.25, 0.25, 0.25}
	stat, p, err := ChiSquareGOF(counts, probs)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if stat != 0 || !appreq(p, 1) {
		tst.Errorf("Expected stat=0, p=1, got stat=%v, p=%v", stat, p)
	}

	// A gross mismatch gives a tiny p-value.
	_, p, err = ChiSquareGOF([]int{100, 0, 0, 0}, probs)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if p > 1e-10 {
		tst.Errorf("Expected tiny p-value, got %v", p)
	}

	if _, _, err = ChiSquareGOF([]int{1, 2}, []float64{0.5}); err == nil {
		tst.Error("Expected length mismatch error")
	}
	if _, _, err = ChiSquareGOF([]int{1, 2}, []float64{0.5, 0.2}); err == nil {
		tst.Error("Expected probability sum error")
	}
}

func TestHistogram(tst *testing.T) {
	breaks := []float64{-1, 0, 1}
	counts := Histogram([]float64{-2, -1, -0.5, 0.5, 3}, breaks)
	want := []int{1, 2, 1, 1}
	for i := range want {
		if counts[i] != want[i] {
			tst.Fatalf("Incorrect histogram. Expected %v, got %v", want, counts)
		}
	}
}

func TestNormalBinProbs(tst *testing.T) {
	probs := NormalBinProbs([]float64{0}, 0, 1)
	if !appreq(probs[0], 0.5) || !appreq(probs[1], 0.5) {
		tst.Errorf("Expected [0.5 0.5], got %v", probs)
	}
	probs = NormalBinProbs([]float64{-1, 0, 1}, 0, 1)
	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	if !appreq(sum, 1) {
		tst.Errorf("Bin probabilities should sum to 1, got %v", sum)
	}
}
