package grasp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/generator"
	"github.com/katalvlaran/knapsack/grasp"
	"github.com/katalvlaran/knapsack/solution"
)

func threeItems() *catalog.Catalog {
	return catalog.MustNew([]catalog.Item{
		{ID: 1, Weight: 10, Benefit: 60},
		{ID: 2, Weight: 20, Benefit: 100},
		{ID: 3, Weight: 30, Benefit: 120},
	})
}

func uniform(t *testing.T, n int, seed int64) *catalog.Catalog {
	t.Helper()
	c, err := generator.Uniform(n, 1, 60, 0, 120, generator.WithSeed(seed))
	require.NoError(t, err)
	return c
}

func TestSolve_ThreeItems(t *testing.T) {
	res, err := grasp.Solve(threeItems(), 50, grasp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []uint32{2, 3}, res.SelectedIDs)
	assert.Equal(t, int64(220), res.Benefit)
	assert.Equal(t, int64(50), res.Weight)
}

func TestSolve_SeedDeterminism(t *testing.T) {
	cat := uniform(t, 400, 11)
	opts := grasp.DefaultOptions()
	opts.Alpha = 0.6
	opts.Seed = 1234

	a, err := grasp.Solve(cat, 900, opts)
	require.NoError(t, err)
	b, err := grasp.Solve(cat, 900, opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	opts.Seed = 0
	opts.Rand = rand.New(rand.NewSource(1234))
	c, err := grasp.Solve(cat, 900, opts)
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestSolve_KeepsBestRestart(t *testing.T) {
	cat := uniform(t, 300, 5)
	const capacity = 600

	var perRestart []int64
	var lastBest int64
	opts := grasp.DefaultOptions()
	opts.Restarts = 8
	opts.Alpha = 0.8
	opts.Seed = 99
	opts.OnIteration = func(iter int, current, best int64) {
		perRestart = append(perRestart, current)
		assert.GreaterOrEqual(t, best, lastBest)
		assert.GreaterOrEqual(t, best, current)
		lastBest = best
	}

	res, err := grasp.Solve(cat, capacity, opts)
	require.NoError(t, err)
	require.NoError(t, solution.Verify(cat, capacity, res))
	require.Len(t, perRestart, 8)

	var max int64
	for _, b := range perRestart {
		if b > max {
			max = b
		}
	}
	assert.Equal(t, max, res.Benefit)
	assert.Equal(t, lastBest, res.Benefit)
}

func TestSolve_ZeroRestartsAndEmptyCatalog(t *testing.T) {
	opts := grasp.DefaultOptions()
	opts.Restarts = 0
	res, err := grasp.Solve(threeItems(), 50, opts)
	require.NoError(t, err)
	assert.Equal(t, solution.Empty(), res)

	res, err = grasp.Solve(catalog.MustNew(nil), 50, grasp.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.SelectedIDs)
	assert.Equal(t, int64(0), res.Benefit)
}

func TestSolve_InvalidParameters(t *testing.T) {
	for _, alpha := range []float64{-0.1, 1.01, math.NaN()} {
		opts := grasp.DefaultOptions()
		opts.Alpha = alpha
		_, err := grasp.Solve(threeItems(), 50, opts)
		assert.ErrorIs(t, err, solution.ErrInvalidParameter, "alpha=%v", alpha)
	}

	opts := grasp.DefaultOptions()
	opts.Restarts = -1
	_, err := grasp.Solve(threeItems(), 50, opts)
	assert.ErrorIs(t, err, solution.ErrInvalidParameter)

	opts = grasp.DefaultOptions()
	opts.LocalSearch.MinGain = -2
	_, err = grasp.Solve(threeItems(), 50, opts)
	assert.ErrorIs(t, err, solution.ErrInvalidParameter)

	_, err = grasp.Solve(threeItems(), -5, grasp.DefaultOptions())
	assert.ErrorIs(t, err, solution.ErrInvalidCapacity)
}

func TestConstruct_AlphaZeroIsGreedyWithSkips(t *testing.T) {
	// Distinct ratios 9, 8, 7, 6, 5, 4. With alpha 0 the draw is forced;
	// id 2 (w=6) is skipped once it no longer fits, id 3 still does.
	cat := catalog.MustNew([]catalog.Item{
		{ID: 1, Weight: 2, Benefit: 18},
		{ID: 2, Weight: 6, Benefit: 48},
		{ID: 3, Weight: 1, Benefit: 7},
		{ID: 4, Weight: 3, Benefit: 18},
		{ID: 5, Weight: 2, Benefit: 10},
		{ID: 6, Weight: 5, Benefit: 20},
	})
	for seed := int64(1); seed <= 4; seed++ {
		st, err := grasp.Construct(cat, 7, 0, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2, 3}, st.Selected(), "seed=%d", seed)
		assert.Equal(t, int64(6), st.Weight())
	}
}

func TestConstruct_AlphaOneStaysFeasible(t *testing.T) {
	cat := uniform(t, 200, 3)
	rng := rand.New(rand.NewSource(8))
	for k := 0; k < 20; k++ {
		st, err := grasp.Construct(cat, 150, 1, rng)
		require.NoError(t, err)
		assert.LessOrEqual(t, st.Weight(), int64(150))
		// Maximal: nothing left out still fits.
		for i := 0; i < cat.Len(); i++ {
			if !st.Contains(i) {
				assert.Greater(t, st.Weight()+cat.Weight(i), int64(150))
			}
		}
	}
}
