package localsearch

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/knapsack/solution"
)

// Options configures Improve and Solve.
type Options struct {
	// MaxIterations caps the number of iterations; 0 returns the input
	// selection untouched.
	MaxIterations int `json:"maxIterations"`

	// MinGain is the smallest benefit gain a swap must bring to be applied.
	MinGain int64 `json:"minGain"`

	// Verbose enables per-iteration traces on Logger.
	Verbose bool `json:"verbose"`

	// Logger receives traces when Verbose is set; klog is used if unset.
	Logger logr.Logger `json:"-"`

	// OnIteration, if set, is called once per executed iteration.
	OnIteration solution.IterationHook `json:"-"`
}

// DefaultOptions returns MaxIterations=100, MinGain=1.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 100,
		MinGain:       1,
	}
}

func validateOptions(method string, opts Options) error {
	if err := solution.NonNegative(method, "MaxIterations", int64(opts.MaxIterations)); err != nil {
		return err
	}
	return solution.NonNegative(method, "MinGain", opts.MinGain)
}
