// Package mcmc implements the random-walk Metropolis-Hastings
// transition kernel and a chain driver on top of it.
//
// The kernel is generic over the position type. A step is a pure
// function of the random stream, the input state and the kernel
// configuration; independent chains can be advanced in parallel as
// long as every chain owns its own stream.
package mcmc

import (
	"github.com/op/go-logging"
)

// log is a global logging variable.
var log = logging.MustGetLogger("mcmc")
