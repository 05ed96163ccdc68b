package mcmc

import (
	"math"
)

// Proposal pairs a candidate state with the log-scale acceptance
// weight used by the sampler. Weight may be ±Inf.
type Proposal[P any] struct {
	State  State[P]
	Energy float64
	Weight float64
}

// proposalGenerator turns transition energies into weighted
// proposals. The threshold is an energy-difference cutoff: any
// transition beyond it is treated as divergent and becomes a
// guaranteed-reject proposal. The single-candidate random walk never
// reaches it with the default +Inf threshold; the hook exists for
// multi-candidate trajectory methods.
type proposalGenerator[P any] struct {
	energy    transitionEnergyFunc[P]
	threshold float64
}

// init wraps a state into the baseline proposal the candidate is
// compared against.
func (g *proposalGenerator[P]) init(state State[P]) Proposal[P] {
	return Proposal[P]{State: state}
}

// generate computes the weighted proposal for a candidate. The
// boolean reports a divergent transition. A NaN energy difference
// maps to weight -Inf, so pathological candidates are rejected
// instead of propagating NaN into the accept decision.
func (g *proposalGenerator[P]) generate(prev, cand State[P]) (Proposal[P], bool) {
	newEnergy := g.energy(prev, cand)
	prevEnergy := g.energy(cand, prev)

	delta := prevEnergy - newEnergy
	if math.IsNaN(delta) {
		delta = math.Inf(-1)
	}
	divergent := math.Abs(delta) > g.threshold
	weight := delta
	if divergent {
		weight = math.Inf(-1)
	}
	return Proposal[P]{State: cand, Energy: newEnergy, Weight: weight}, divergent
}
