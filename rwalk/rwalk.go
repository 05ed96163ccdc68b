/*

Rwalk samples from a built-in target density using the random-walk
Metropolis-Hastings kernel.

The basic usage looks like this:

	rwalk normal

, this will run an additive-step random walk over a standard normal
target.

You can change the target, the dimensionality and the step size:

	rwalk -dim 2 -sigma 0.5 mixture

To see all the options run:

	rwalk -h

*/
package main

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"bitbucket.org/Davydov/rwalk/checkpoint"
	"bitbucket.org/Davydov/rwalk/dist"
	"bitbucket.org/Davydov/rwalk/mcmc"
	"bitbucket.org/Davydov/rwalk/rng"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("rwalk")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("rwalk", "random-walk Metropolis-Hastings sampler").Version(version)

	// target
	target = app.Arg("target", "target density (normal, mixture or rosenbrock)").
		Required().Enum("normal", "mixture", "rosenbrock")
	dim  = app.Flag("dim", "dimensionality of the target").Default("1").Int()
	mean = app.Flag("mean", "mean of the normal target").Default("0").Float64()
	sd   = app.Flag("sd", "standard deviation of the normal target").Default("1").Float64()

	// proposal
	sigma       = app.Flag("sigma", "standard deviation of the additive step").Default("1").Float64()
	independent = app.Flag("independent", "use an independent normal proposal instead of an additive step").Bool()
	propSD      = app.Flag("propsd", "standard deviation of the independent proposal").Default("2").Float64()

	// sampler parameters
	iterations = app.Flag("iter", "number of iterations").Default("10000").Int()
	report     = app.Flag("report", "report every N iterations").Default("10").Int()
	accept     = app.Flag("accept", "report acceptance rate every N iterations").Default("200").Int()
	thin       = app.Flag("thin", "keep every N-th sample for diagnostics").Default("10").Int()

	// technical
	seed = app.Flag("seed", "random generator seed, default time based").Default("-1").Int64()

	// input/output
	outLogF     = app.Flag("log", "write log to a file").String()
	outF        = app.Flag("out", "write sampling trajectory to a file").String()
	checkpointF = app.Flag("checkpoint", "checkpoint database filename").String()
	cpPeriod    = app.Flag("cpperiod", "checkpoint period in seconds").Default("30").Float64()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
)

// getTargetFromString returns a target log-density from a string.
func getTargetFromString(target string) (func([]float64) float64, error) {
	switch target {
	case "normal":
		log.Infof("Using normal target, mean=%v, sd=%v", *mean, *sd)
		return dist.Normal(*mean, *sd), nil
	case "mixture":
		log.Info("Using two-component mixture target")
		return dist.Mixture(0.5, -2, 1, 2, 1), nil
	case "rosenbrock":
		if *dim != 2 {
			return nil, fmt.Errorf("rosenbrock target requires -dim 2")
		}
		log.Info("Using Rosenbrock target")
		return dist.Rosenbrock(1, 20), nil
	}
	return nil, fmt.Errorf("Unknown target: %s", target)
}

// getKernel creates the transition kernel from the command-line
// parameters.
func getKernel(logDensity func([]float64) float64) *mcmc.RWM[mcmc.Vec] {
	targetF := func(x mcmc.Vec) float64 { return logDensity(x) }
	if *independent {
		log.Infof("Using independent normal proposal, sd=%v", *propSD)
		q := dist.Normal(0, *propSD)
		d := *dim
		kernel := mcmc.NewIndependent(targetF, func(src rng.Source) mcmc.Vec {
			r := make(mcmc.Vec, d)
			for i := range r {
				r[i] = src.Norm() * *propSD
			}
			return r
		})
		kernel.SetProposalLogDensity(func(from, to mcmc.State[mcmc.Vec]) float64 {
			return q(to.Position)
		})
		return kernel
	}
	log.Infof("Using additive step, sigma=%v", *sigma)
	return mcmc.NewAdditive(targetF, mcmc.NormalStep(*sigma))
}

// reportGOF compares the sampled histogram with the normal target.
func reportGOF(samples []mcmc.Vec) {
	if *target != "normal" || len(samples) < 100 {
		return
	}
	first := make([]float64, len(samples))
	for i, s := range samples {
		first[i] = s[0]
	}
	breaks := []float64{
		*mean - 1.5**sd,
		*mean - 0.5**sd,
		*mean + 0.5**sd,
		*mean + 1.5**sd,
	}
	counts := dist.Histogram(first, breaks)
	probs := dist.NormalBinProbs(breaks, *mean, *sd)
	stat, p, err := dist.ChiSquareGOF(counts, probs)
	if err != nil {
		log.Error("Error computing goodness-of-fit:", err)
		return
	}
	log.Noticef("Histogram goodness-of-fit: stat=%.4f, p=%.4f", stat, p)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "rwalk")
	logging.SetLevel(level, "mcmc")
	logging.SetLevel(level, "checkpoint")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	if *seed == -1 {
		*seed = time.Now().UnixNano()
		log.Debug("Random seed from time")
	}
	log.Infof("Random seed=%v", *seed)

	logDensity, err := getTargetFromString(*target)
	if err != nil {
		log.Fatal(err)
	}

	kernel := getKernel(logDensity)
	chain := mcmc.NewChain(kernel, make(mcmc.Vec, *dim))
	chain.RepPeriod = *report
	chain.AccPeriod = *accept
	chain.SetSampleThin(*thin)

	if *outF != "" {
		f, err := os.Create(*outF)
		if err != nil {
			log.Fatal("Error creating trajectory file:", err)
		}
		defer f.Close()
		chain.SetTrajectoryOutput(f)
	}

	if *checkpointF != "" {
		db, err := bolt.Open(*checkpointF, 0666, nil)
		if err != nil {
			log.Fatal("Error opening checkpoint database:", err)
		}
		defer db.Close()
		chain.SetCheckpointIO(checkpoint.NewIO(db, []byte("chain"), *cpPeriod))
		restored, err := chain.RestoreCheckpoint()
		if err != nil {
			log.Fatal("Error restoring checkpoint:", err)
		}
		if restored {
			log.Noticef("Continuing from iteration %d", chain.Iter())
		}
	}

	chain.WatchSignals(os.Interrupt, syscall.SIGUSR2)

	startTime := time.Now()
	chain.Run(rng.New(*seed), *iterations)

	state := chain.State()
	log.Noticef("Final state: position=%v, logdensity=%v", state.Position, state.LogDensity)
	reportGOF(chain.Samples())
	log.Noticef("Running time: %v", time.Since(startTime))
}
