// Norm estimates means and standard deviations of normally
// distributed data by sampling the posterior with the random-walk
// Metropolis-Hastings kernel.
package main

import (
	"flag"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"bitbucket.org/Davydov/rwalk/mcmc"
	"bitbucket.org/Davydov/rwalk/rng"
)

const (
	// number of normal distributions
	N = 2
	// observations per distribution
	K = 100
)

func square(x float64) float64 {
	return x * x
}

// MNormModel is a model of N independent normal distributions with
// unknown means and standard deviations. The position layout is
// [mean_0, sd_0, ..., mean_N-1, sd_N-1].
type MNormModel struct {
	data [][]float64
}

// LogDensity returns the unnormalized log-posterior with flat priors
// on the means and the (positive) standard deviations.
func (m *MNormModel) LogDensity(par mcmc.Vec) (res float64) {
	for i, xs := range m.data {
		mean := par[2*i]
		sd := par[2*i+1]
		if sd <= 0 {
			return math.Inf(-1)
		}
		c := -math.Log(sd * math.Sqrt(2*math.Pi))
		for _, x := range xs {
			res += c - square(x-mean)/(2*square(sd))
		}
	}
	return
}

func genData(mean []float64, sd []float64, n int) (data [][]float64) {
	if len(mean) != len(sd) {
		panic("sd and mean should be the same length")
	}
	data = make([][]float64, len(mean))
	for i := range data {
		data[i] = make([]float64, 0, n)
		for j := 0; j < n; j++ {
			data[i] = append(data[i], rand.NormFloat64()*sd[i]+mean[i])
		}
	}
	return data
}

func getMeanSD(data []float64) (mean, sd float64) {
	for _, x := range data {
		mean += x
	}
	mean /= float64(len(data))
	for _, x := range data {
		sd += square(mean - x)
	}
	sd /= float64(len(data) - 1)
	sd = math.Sqrt(sd)
	return
}

func main() {
	iter := flag.Int("iter", 100000, "number of iterations")
	sigma := flag.Float64("sigma", 0.05, "proposal standard deviation")
	seed := flag.Int64("seed", -1, "random generator seed, default time based")
	flag.Parse()

	if *seed == -1 {
		*seed = time.Now().UnixNano()
	}
	rand.Seed(*seed)

	log.Print("Starting")
	log.Printf("Will generate %d values for %d normal distributions", K, N)

	mean := make([]float64, 0, N)
	sd := make([]float64, 0, N)
	for i := 0; i < N; i++ {
		mean = append(mean, float64(rand.Intn(100)-50))
		sd = append(sd, float64(rand.Intn(10)+1))
	}

	data := genData(mean, sd, K)

	for i, xs := range data {
		m, s := getMeanSD(xs)
		log.Printf("%v: Norm(%v, %v^2), mean=%v, sd=%v", i, mean[i], sd[i], m, s)
	}

	model := &MNormModel{data: data}
	kernel := mcmc.NewAdditive(model.LogDensity, mcmc.NormalStep(*sigma))

	// start from the empirical estimates
	start := make(mcmc.Vec, 2*N)
	for i, xs := range data {
		start[2*i], start[2*i+1] = getMeanSD(xs)
	}

	chain := mcmc.NewChain(kernel, start)
	chain.AccPeriod = 200
	chain.SetTrajectoryOutput(os.Stdout)
	chain.WatchSignals(os.Interrupt)
	chain.Run(rng.New(*seed), *iter)

	final := chain.State()
	for i := 0; i < N; i++ {
		log.Printf("%v: mean=%f, sd=%f", i, final.Position[2*i], final.Position[2*i+1])
	}
	log.Printf("Acceptance rate %.2f%%", 100*chain.AcceptanceRate())
}
