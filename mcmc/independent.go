package mcmc

import (
	"bitbucket.org/Davydov/rwalk/rng"
)

// NewIndependent creates a kernel whose proposal distribution does
// not depend on the current position. If the proposal is not
// symmetric under exchange of states, supply its log-density with
// SetProposalLogDensity for the Metropolis-Hastings correction.
func NewIndependent[P any](logDensity LogDensityFunc[P], sample func(src rng.Source) P) *RWM[P] {
	move := func(src rng.Source, _ P) P {
		return sample(src)
	}
	return New(logDensity, move)
}
