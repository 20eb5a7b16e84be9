package scatter

import (
	"fmt"
	"math/rand"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/knapsack/grasp"
	"github.com/katalvlaran/knapsack/localsearch"
	"github.com/katalvlaran/knapsack/solution"
)

// minRefSetSize is the smallest reference set that can form a pair.
const minRefSetSize = 2

// Options configures Solve.
type Options struct {
	MaxIterations      int     `json:"maxIterations"`
	RefSetSize         int     `json:"refSetSize"`
	PopulationSize     int     `json:"populationSize"`
	DiversityThreshold float64 `json:"diversityThreshold"`
	MaxStall           int     `json:"maxStall"` // stagnant rounds before stopping; 0 disables the rule

	// Seeding configures the GRASP population members. Its Seed, Rand,
	// OnIteration and Verbose fields are ignored.
	Seeding grasp.Options `json:"seeding"`

	// Seed is used when Rand is nil; 0 selects solution.DefaultSeed.
	Seed int64      `json:"seed"`
	Rand *rand.Rand `json:"-"`

	Verbose     bool                   `json:"verbose"`
	Logger      logr.Logger            `json:"-"`
	OnIteration solution.IterationHook `json:"-"` // once per round
}

// DefaultOptions returns 100 rounds, a reference set of 10, a population of
// 100 seeded by single-restart GRASP (Alpha 0.5, 10 local search
// iterations), diversity threshold 0.3 and a stall limit of 10 rounds.
func DefaultOptions() Options {
	return Options{
		MaxIterations:      100,
		RefSetSize:         10,
		PopulationSize:     100,
		DiversityThreshold: 0.3,
		MaxStall:           10,
		Seeding: grasp.Options{
			Restarts:    1,
			Alpha:       0.5,
			LocalSearch: localsearch.Options{MaxIterations: 10, MinGain: 1},
		},
	}
}

func validateOptions(method string, opts Options) error {
	checks := []struct {
		name string
		v    int64
	}{
		{"MaxIterations", int64(opts.MaxIterations)},
		{"PopulationSize", int64(opts.PopulationSize)},
		{"MaxStall", int64(opts.MaxStall)},
		{"Seeding.Restarts", int64(opts.Seeding.Restarts)},
		{"Seeding.LocalSearch.MaxIterations", int64(opts.Seeding.LocalSearch.MaxIterations)},
		{"Seeding.LocalSearch.MinGain", opts.Seeding.LocalSearch.MinGain},
	}
	for _, c := range checks {
		if err := solution.NonNegative(method, c.name, c.v); err != nil {
			return err
		}
	}
	if opts.RefSetSize < minRefSetSize {
		return fmt.Errorf("%s: RefSetSize=%d < %d: %w", method, opts.RefSetSize, minRefSetSize, solution.ErrInvalidParameter)
	}
	if err := solution.UnitInterval(method, "DiversityThreshold", opts.DiversityThreshold); err != nil {
		return err
	}
	return solution.UnitInterval(method, "Seeding.Alpha", opts.Seeding.Alpha)
}
