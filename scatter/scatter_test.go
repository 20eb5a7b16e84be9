package scatter_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/generator"
	"github.com/katalvlaran/knapsack/greedy"
	"github.com/katalvlaran/knapsack/scatter"
	"github.com/katalvlaran/knapsack/solution"
)

func threeItems() *catalog.Catalog {
	return catalog.MustNew([]catalog.Item{
		{ID: 1, Weight: 10, Benefit: 60},
		{ID: 2, Weight: 20, Benefit: 100},
		{ID: 3, Weight: 30, Benefit: 120},
	})
}

func smallOptions() scatter.Options {
	opts := scatter.DefaultOptions()
	opts.PopulationSize = 20
	opts.RefSetSize = 6
	opts.MaxIterations = 15
	return opts
}

func TestSolve_ThreeItems(t *testing.T) {
	// GRASP members all refine to {2,3}; the greedy member is {1,2}. No
	// combination beats 220, so the search stalls out after 10 rounds.
	res, err := scatter.Solve(threeItems(), 50, scatter.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []uint32{2, 3}, res.SelectedIDs)
	assert.Equal(t, int64(220), res.Benefit)
	assert.Equal(t, int64(50), res.Weight)
	assert.Equal(t, 10, res.Iterations)
	assert.Equal(t, int64(0), res.Improvement)
}

func TestSolve_SeedDeterminism(t *testing.T) {
	cat, err := generator.Uniform(150, 1, 50, 0, 100, generator.WithSeed(21))
	require.NoError(t, err)
	opts := smallOptions()
	opts.Seed = 77

	a, err := scatter.Solve(cat, 400, opts)
	require.NoError(t, err)
	b, err := scatter.Solve(cat, 400, opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	opts.Seed = 0
	opts.Rand = rand.New(rand.NewSource(77))
	c, err := scatter.Solve(cat, 400, opts)
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestSolve_FeasibleAndAtLeastGreedy(t *testing.T) {
	cat, err := generator.Hard(300, generator.WithSeed(2))
	require.NoError(t, err)
	const capacity = 5000

	start, err := greedy.Construct(cat, capacity)
	require.NoError(t, err)

	var rounds int
	var lastBest int64
	opts := smallOptions()
	opts.OnIteration = func(iter int, current, best int64) {
		rounds++
		assert.Equal(t, rounds, iter)
		assert.GreaterOrEqual(t, best, lastBest)
		assert.Equal(t, current, best) // the best member is always kept
		lastBest = best
	}

	res, err := scatter.Solve(cat, capacity, opts)
	require.NoError(t, err)
	require.NoError(t, solution.Verify(cat, capacity, res))
	assert.GreaterOrEqual(t, res.Benefit, start.Benefit)
	assert.GreaterOrEqual(t, res.Improvement, int64(0))
	assert.Equal(t, rounds, res.Iterations)
	assert.LessOrEqual(t, res.Iterations, opts.MaxIterations)
}

func TestSolve_DegenerateInputs(t *testing.T) {
	res, err := scatter.Solve(catalog.MustNew(nil), 10, scatter.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, solution.Empty(), res)

	opts := scatter.DefaultOptions()
	opts.PopulationSize = 0
	res, err = scatter.Solve(threeItems(), 50, opts)
	require.NoError(t, err)
	assert.Equal(t, solution.Empty(), res)

	opts = scatter.DefaultOptions()
	opts.MaxIterations = 0
	res, err = scatter.Solve(threeItems(), 50, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(220), res.Benefit)
	assert.Equal(t, 0, res.Iterations)
}

func TestSolve_InvalidParameters(t *testing.T) {
	for name, mutate := range map[string]func(*scatter.Options){
		"refset":     func(o *scatter.Options) { o.RefSetSize = 1 },
		"threshold":  func(o *scatter.Options) { o.DiversityThreshold = 1.5 },
		"population": func(o *scatter.Options) { o.PopulationSize = -1 },
		"stall":      func(o *scatter.Options) { o.MaxStall = -1 },
		"iterations": func(o *scatter.Options) { o.MaxIterations = -1 },
		"alpha":      func(o *scatter.Options) { o.Seeding.Alpha = 2 },
		"ls":         func(o *scatter.Options) { o.Seeding.LocalSearch.MaxIterations = -1 },
	} {
		opts := scatter.DefaultOptions()
		mutate(&opts)
		_, err := scatter.Solve(threeItems(), 50, opts)
		assert.ErrorIs(t, err, solution.ErrInvalidParameter, name)
	}

	_, err := scatter.Solve(nil, 50, scatter.DefaultOptions())
	assert.ErrorIs(t, err, catalog.ErrNilCatalog)
}
