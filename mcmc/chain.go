package mcmc

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"bitbucket.org/Davydov/rwalk/checkpoint"
	"bitbucket.org/Davydov/rwalk/rng"
)

// Chain drives repeated kernel steps over a single chain. It owns
// the current state, reports progress, writes an optional trajectory
// file and saves checkpoints.
type Chain[P any] struct {
	kernel *RWM[P]
	state  State[P]
	i      int

	// RepPeriod is the trajectory/report period in iterations.
	RepPeriod int
	// AccPeriod is the acceptance-rate report period in iterations.
	AccPeriod int

	accepted      int
	totalAccepted int
	total         int

	traj io.Writer
	cp   *checkpoint.IO
	sig  chan os.Signal

	thin    int
	samples []P
}

// NewChain creates a chain starting at the given position.
func NewChain[P any](kernel *RWM[P], position P) *Chain[P] {
	return &Chain[P]{
		kernel:    kernel,
		state:     kernel.Init(position),
		RepPeriod: 10,
		AccPeriod: 200,
	}
}

// WatchSignals makes Run exit early on any of the signals.
func (c *Chain[P]) WatchSignals(sigs ...os.Signal) {
	c.sig = make(chan os.Signal, 1)
	signal.Notify(c.sig, sigs...)
}

// SetTrajectoryOutput sets a writer for trajectory lines.
func (c *Chain[P]) SetTrajectoryOutput(w io.Writer) {
	c.traj = w
}

// SetCheckpointIO enables periodic checkpoint saving.
func (c *Chain[P]) SetCheckpointIO(cp *checkpoint.IO) {
	c.cp = cp
}

// SetSampleThin keeps every n-th position for post-run diagnostics;
// 0 disables retention.
func (c *Chain[P]) SetSampleThin(n int) {
	c.thin = n
}

// Samples returns the retained positions.
func (c *Chain[P]) Samples() []P {
	return c.samples
}

// State returns the current chain state.
func (c *Chain[P]) State() State[P] {
	return c.state
}

// Iter returns the number of completed iterations.
func (c *Chain[P]) Iter() int {
	return c.i
}

// AcceptanceRate returns the fraction of accepted transitions over
// the whole run.
func (c *Chain[P]) AcceptanceRate() float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.totalAccepted) / float64(c.total)
}

// RestoreCheckpoint loads the last checkpoint if there is one and
// replaces the chain state with it. The log-density is recomputed,
// so a state never carries a stale value.
func (c *Chain[P]) RestoreCheckpoint() (bool, error) {
	if c.cp == nil {
		return false, nil
	}
	data, err := c.cp.Load()
	if err != nil || data == nil {
		return false, err
	}
	var position P
	err = json.Unmarshal(data.Position, &position)
	if err != nil {
		return false, err
	}
	c.state = c.kernel.Init(position)
	c.i = data.Iter
	return true, nil
}

// saveCheckpoint stores the current state; final marks the run as
// complete.
func (c *Chain[P]) saveCheckpoint(final bool) {
	if c.cp == nil {
		return
	}
	posB, err := json.Marshal(c.state.Position)
	if err != nil {
		log.Error("Error serializing position", err)
		return
	}
	data := checkpoint.Data{
		Position:   posB,
		LogDensity: c.state.LogDensity,
		Iter:       c.i,
		Final:      final,
	}
	_ = c.cp.Save(&data)
}

// printHeader writes the trajectory header line.
func (c *Chain[P]) printHeader() {
	if c.traj != nil {
		fmt.Fprintf(c.traj, "iteration\tlogdensity\tposition\n")
	}
}

// printLine writes one trajectory line.
func (c *Chain[P]) printLine() {
	if c.traj != nil {
		fmt.Fprintf(c.traj, "%d\t%f\t%v\n", c.i, c.state.LogDensity, c.state.Position)
	}
}

// Run advances the chain by the given number of iterations, drawing
// one substream per step from src.
func (c *Chain[P]) Run(src rng.Source, iterations int) {
	c.printHeader()
	lastReported := -1
	start := c.i
Iter:
	for ; c.i < start+iterations; c.i++ {
		if c.i > start && (c.i-start)%c.AccPeriod == 0 {
			log.Infof("Acceptance rate %.2f%%", 100*float64(c.accepted)/float64(c.AccPeriod))
			c.accepted = 0
		}

		if c.i%c.RepPeriod == 0 {
			log.Debugf("%d: logdensity=%f", c.i, c.state.LogDensity)
			c.printLine()
			lastReported = c.i
		}

		stepSrc, next := src.Split()
		src = next

		var info Info[P]
		c.state, info = c.kernel.Step(stepSrc, c.state)
		c.total++
		if info.Accepted {
			c.accepted++
			c.totalAccepted++
		}
		if c.thin > 0 && c.i%c.thin == 0 {
			c.samples = append(c.samples, c.state.Position)
		}

		if c.cp != nil && c.cp.Old() {
			c.saveCheckpoint(false)
		}

		select {
		case s := <-c.sig:
			log.Warningf("Received signal %v, exiting.", s)
			break Iter
		default:
		}
	}

	if c.i != lastReported {
		c.printLine()
	}
	c.saveCheckpoint(true)
	log.Noticef("Finished, acceptance rate %.2f%%", 100*c.AcceptanceRate())
}
