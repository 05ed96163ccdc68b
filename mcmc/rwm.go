package mcmc

import (
	"math"

	"bitbucket.org/Davydov/rwalk/rng"
)

// MoveFunc draws a candidate position from the current one. It must
// be pure given the stream.
type MoveFunc[P any] func(src rng.Source, position P) P

// RWM is a random-walk Metropolis-Hastings transition kernel. The
// zero value is not usable; create kernels with New, NewAdditive or
// NewIndependent.
type RWM[P any] struct {
	logDensity LogDensityFunc[P]
	move       MoveFunc[P]
	q          LogProposalFunc[P]
	threshold  float64
}

// New creates a kernel from a target log-density and a move
// distribution. The move is assumed symmetric unless a proposal
// log-density is supplied with SetProposalLogDensity.
func New[P any](logDensity LogDensityFunc[P], move MoveFunc[P]) *RWM[P] {
	return &RWM[P]{
		logDensity: logDensity,
		move:       move,
		threshold:  math.Inf(1),
	}
}

// SetProposalLogDensity supplies the proposal log-density used for
// the asymmetric Metropolis-Hastings correction. Passing nil
// restores the symmetric behavior.
func (k *RWM[P]) SetProposalLogDensity(q LogProposalFunc[P]) {
	k.q = q
}

// SetDivergenceThreshold sets the energy-difference cutoff beyond
// which a transition is treated as divergent and always rejected.
func (k *RWM[P]) SetDivergenceThreshold(d float64) {
	k.threshold = d
}

// Init creates the initial chain state, evaluating the target
// log-density at the position.
func (k *RWM[P]) Init(position P) State[P] {
	return Init(position, k.logDensity)
}

// Step advances the chain by one transition. The stream is split
// into two independent substreams, one for proposing and one for the
// accept decision. The returned Info reports the generated candidate
// and its acceptance probability regardless of the outcome.
func (k *RWM[P]) Step(src rng.Source, state State[P]) (State[P], Info[P]) {
	proposeSrc, acceptSrc := src.Split()

	candidate := Init(k.move(proposeSrc, state.Position), k.logDensity)

	gen := proposalGenerator[P]{
		energy:    transitionEnergy(k.q),
		threshold: k.threshold,
	}
	prev := gen.init(state)
	cand, _ := gen.generate(state, candidate)

	sampled, accepted, pAccept := BinomialSample(acceptSrc, prev, cand)

	info := Info[P]{
		AcceptanceRate: pAccept,
		Accepted:       accepted,
		Proposal:       candidate,
	}
	return sampled.State, info
}
