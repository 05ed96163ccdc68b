package mcmc

import (
	"math"

	"bitbucket.org/Davydov/rwalk/rng"
)

// BinomialSample flips the Metropolis-Hastings coin between two
// weighted proposals. The comparison happens in log space: accept
// iff log(u) < weight_b - weight_a, which is exact for arbitrarily
// negative log ratios and never evaluates exp on large positive
// arguments. A NaN log ratio always rejects.
func BinomialSample[P any](src rng.Source, a, b Proposal[P]) (chosen Proposal[P], accepted bool, pAccept float64) {
	logRatio := b.Weight - a.Weight

	switch {
	case math.IsNaN(logRatio):
		pAccept = 0
	case logRatio >= 0:
		pAccept = 1
	default:
		pAccept = math.Exp(logRatio)
	}

	u := src.Uniform()
	// The comparison is false for NaN logRatio.
	if math.Log(u) < logRatio {
		return b, true, pAccept
	}
	return a, false, pAccept
}
