package tabu

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/knapsack/solution"
)

// Options configures Solve.
type Options struct {
	// MaxIterations caps the number of executed iterations.
	MaxIterations int `json:"maxIterations"`

	// Tenure is how many iterations the inverse of an applied move stays
	// forbidden. 0 and 1 forbid nothing.
	Tenure int `json:"tenure"`

	// MaxStall stops the search after that many consecutive iterations
	// without a new best. 0 disables the rule; MaxIterations still applies.
	MaxStall int `json:"maxStall"`

	// Verbose traces every iteration through Logger (klog when unset).
	Verbose bool        `json:"verbose"`
	Logger  logr.Logger `json:"-"`

	// OnIteration is called once per executed iteration.
	OnIteration solution.IterationHook `json:"-"`
}

// DefaultOptions returns MaxIterations=100, Tenure=10, MaxStall=20.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 100,
		Tenure:        10,
		MaxStall:      20,
	}
}

func validateOptions(method string, opts Options) error {
	if err := solution.NonNegative(method, "MaxIterations", int64(opts.MaxIterations)); err != nil {
		return err
	}
	if err := solution.NonNegative(method, "Tenure", int64(opts.Tenure)); err != nil {
		return err
	}
	return solution.NonNegative(method, "MaxStall", int64(opts.MaxStall))
}
