package mcmc

// LogDensityFunc returns the log-density of the target distribution
// at a position, up to an additive constant. -Inf and NaN are valid
// outputs signaling infeasible positions.
type LogDensityFunc[P any] func(position P) float64

// State is a single point of the chain together with its cached
// log-density. LogDensity always equals the target log-density at
// Position; states are values and are never mutated in place.
type State[P any] struct {
	Position   P
	LogDensity float64
}

// Init creates a chain state from a position, evaluating the target
// log-density once.
func Init[P any](position P, logDensity LogDensityFunc[P]) State[P] {
	return State[P]{Position: position, LogDensity: logDensity(position)}
}

// Info carries diagnostics for a single transition. Proposal always
// reports the generated candidate, whether or not it was accepted.
type Info[P any] struct {
	AcceptanceRate float64
	Accepted       bool
	Proposal       State[P]
}
