package solver

import (
	"fmt"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/grasp"
	"github.com/katalvlaran/knapsack/greedy"
	"github.com/katalvlaran/knapsack/localsearch"
	"github.com/katalvlaran/knapsack/scatter"
	"github.com/katalvlaran/knapsack/solution"
	"github.com/katalvlaran/knapsack/tabu"
)

// Solve validates the shared inputs and routes to cfg.Algorithm.
//
// Errors: catalog.ErrNilCatalog, solution.ErrInvalidCapacity,
// ErrUnsupportedAlgorithm, and whatever the selected driver returns.
func Solve(cat *catalog.Catalog, capacity int64, cfg Config) (solution.Result, error) {
	if err := solution.ValidateInput("solver.Solve", cat, capacity); err != nil {
		return solution.Result{}, err
	}

	switch cfg.Algorithm {
	case Greedy:
		return greedy.Construct(cat, capacity)

	case Local:
		opts := cfg.LocalSearch
		opts.Verbose, opts.Logger, opts.OnIteration = cfg.Verbose, cfg.Logger, cfg.OnIteration
		return localsearch.Solve(cat, capacity, opts)

	case GRASP:
		opts := cfg.GRASP
		opts.Verbose, opts.Logger, opts.OnIteration = cfg.Verbose, cfg.Logger, cfg.OnIteration
		return grasp.Solve(cat, capacity, opts)

	case Tabu:
		opts := cfg.Tabu
		opts.Verbose, opts.Logger, opts.OnIteration = cfg.Verbose, cfg.Logger, cfg.OnIteration
		return tabu.Solve(cat, capacity, opts)

	case Scatter:
		opts := cfg.Scatter
		opts.Verbose, opts.Logger, opts.OnIteration = cfg.Verbose, cfg.Logger, cfg.OnIteration
		return scatter.Solve(cat, capacity, opts)

	default:
		return solution.Result{}, fmt.Errorf("solver: %q: %w", cfg.Algorithm, ErrUnsupportedAlgorithm)
	}
}
