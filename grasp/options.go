package grasp

import (
	"math/rand"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/knapsack/localsearch"
	"github.com/katalvlaran/knapsack/solution"
)

// Options configures Solve.
type Options struct {
	Restarts    int                 `json:"restarts"`
	Alpha       float64             `json:"alpha"`
	LocalSearch localsearch.Options `json:"localSearch"`

	// Seed is used when Rand is nil; 0 selects solution.DefaultSeed.
	Seed int64      `json:"seed"`
	Rand *rand.Rand `json:"-"`

	Verbose     bool                   `json:"verbose"`
	Logger      logr.Logger            `json:"-"`
	OnIteration solution.IterationHook `json:"-"` // once per restart
}

// DefaultOptions returns 10 restarts, Alpha=0.3 and the local search defaults.
func DefaultOptions() Options {
	return Options{
		Restarts:    10,
		Alpha:       0.3,
		LocalSearch: localsearch.DefaultOptions(),
	}
}

func validateOptions(method string, opts Options) error {
	if err := solution.NonNegative(method, "Restarts", int64(opts.Restarts)); err != nil {
		return err
	}
	if err := solution.UnitInterval(method, "Alpha", opts.Alpha); err != nil {
		return err
	}
	if err := solution.NonNegative(method, "LocalSearch.MaxIterations", int64(opts.LocalSearch.MaxIterations)); err != nil {
		return err
	}
	return solution.NonNegative(method, "LocalSearch.MinGain", opts.LocalSearch.MinGain)
}
