package mcmc

// LogProposalFunc is the log-density of proposing `to` starting from
// `from`. It only needs to be valid up to an additive constant shared
// between the two evaluation directions.
type LogProposalFunc[P any] func(from, to State[P]) float64

// transitionEnergyFunc maps a transition to the scalar compared by
// the acceptance sampler.
type transitionEnergyFunc[P any] func(prev, cand State[P]) float64

// transitionEnergy builds the Metropolis-Hastings transition energy.
// A nil proposal log-density means the move distribution is
// symmetric and no correction term is needed.
func transitionEnergy[P any](q LogProposalFunc[P]) transitionEnergyFunc[P] {
	if q == nil {
		return func(prev, cand State[P]) float64 {
			return -cand.LogDensity
		}
	}
	return func(prev, cand State[P]) float64 {
		return -cand.LogDensity - q(cand, prev)
	}
}
