package localsearch_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/greedy"
	"github.com/katalvlaran/knapsack/localsearch"
	"github.com/katalvlaran/knapsack/solution"
)

func threeItems() *catalog.Catalog {
	return catalog.MustNew([]catalog.Item{
		{ID: 1, Weight: 10, Benefit: 60},
		{ID: 2, Weight: 20, Benefit: 100},
		{ID: 3, Weight: 30, Benefit: 120},
	})
}

func randomCatalog(n int, seed int64) *catalog.Catalog {
	r := rand.New(rand.NewSource(seed))
	items := make([]catalog.Item, n)
	for i := range items {
		items[i] = catalog.Item{ID: uint32(i + 1), Weight: 1 + r.Int63n(60), Benefit: r.Int63n(120)}
	}
	return catalog.MustNew(items)
}

func TestSolve_ThreeItemsReachesOptimum(t *testing.T) {
	res, err := localsearch.Solve(threeItems(), 50, localsearch.DefaultOptions())
	require.NoError(t, err)

	want := solution.Result{
		SelectedIDs: []uint32{2, 3},
		Weight:      50,
		Benefit:     220,
		Iterations:  2, // one swap plus the final check
		Improvement: 60,
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestSolve_IterationCap(t *testing.T) {
	opts := localsearch.DefaultOptions()

	opts.MaxIterations = 0
	res, err := localsearch.Solve(threeItems(), 50, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Iterations)
	assert.Equal(t, int64(160), res.Benefit)
	assert.Equal(t, int64(0), res.Improvement)

	opts.MaxIterations = 1
	res, err = localsearch.Solve(threeItems(), 50, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, int64(220), res.Benefit)
}

func TestSolve_MinGainBlocksSmallSwaps(t *testing.T) {
	opts := localsearch.DefaultOptions()
	opts.MinGain = 61
	res, err := localsearch.Solve(threeItems(), 50, opts)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2}, res.SelectedIDs)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, int64(0), res.Improvement)
}

func TestSolve_SingleHeavyItem(t *testing.T) {
	cat := catalog.MustNew([]catalog.Item{{ID: 9, Weight: 100, Benefit: 1000}})
	res, err := localsearch.Solve(cat, 50, localsearch.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.SelectedIDs)
	assert.Equal(t, int64(0), res.Weight)
	assert.Equal(t, int64(0), res.Improvement)
	assert.Equal(t, 1, res.Iterations)
}

func TestSolve_EmptyCatalog(t *testing.T) {
	res, err := localsearch.Solve(catalog.MustNew(nil), 50, localsearch.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.SelectedIDs)
	assert.Equal(t, int64(0), res.Benefit)
}

func TestImprove_MonotoneAndFeasible(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		cat := randomCatalog(300, seed)
		const capacity = 700

		st, err := greedy.NewState(cat, capacity)
		require.NoError(t, err)
		start := st.Benefit()

		var prev = start
		var calls int
		opts := localsearch.DefaultOptions()
		opts.OnIteration = func(iter int, current, best int64) {
			calls++
			assert.Equal(t, calls, iter)
			assert.GreaterOrEqual(t, current, prev)
			assert.Equal(t, current, best)
			prev = current
		}

		res, err := localsearch.Improve(cat, capacity, st, opts)
		require.NoError(t, err)
		require.NoError(t, solution.Verify(cat, capacity, res))
		assert.Equal(t, res.Iterations, calls)
		assert.Equal(t, res.Benefit-start, res.Improvement)
		assert.GreaterOrEqual(t, res.Improvement, int64(0))
		assert.LessOrEqual(t, res.Iterations, opts.MaxIterations)
		// The state passed in is the state that was improved.
		assert.Equal(t, res.Benefit, st.Benefit())
	}
}

func TestImprove_Errors(t *testing.T) {
	cat := threeItems()
	st := solution.NewState(cat)

	bad := localsearch.DefaultOptions()
	bad.MinGain = -1
	_, err := localsearch.Improve(cat, 50, st, bad)
	assert.ErrorIs(t, err, solution.ErrInvalidParameter)

	bad = localsearch.DefaultOptions()
	bad.MaxIterations = -1
	_, err = localsearch.Solve(cat, 50, bad)
	assert.ErrorIs(t, err, solution.ErrInvalidParameter)

	_, err = localsearch.Improve(cat, 50, nil, localsearch.DefaultOptions())
	assert.ErrorIs(t, err, solution.ErrInvalidParameter)

	_, err = localsearch.Improve(cat, 50, solution.NewState(threeItems()), localsearch.DefaultOptions())
	assert.ErrorIs(t, err, solution.ErrInvalidParameter)

	full := solution.NewState(cat)
	full.Add(0)
	full.Add(1)
	full.Add(2)
	_, err = localsearch.Improve(cat, 50, full, localsearch.DefaultOptions())
	assert.ErrorIs(t, err, solution.ErrInfeasible)

	_, err = localsearch.Solve(cat, 0, localsearch.DefaultOptions())
	assert.ErrorIs(t, err, solution.ErrInvalidCapacity)
	_, err = localsearch.Solve(nil, 10, localsearch.DefaultOptions())
	assert.ErrorIs(t, err, catalog.ErrNilCatalog)
}

func TestImprove_VerboseDoesNotChangeResult(t *testing.T) {
	cat := randomCatalog(100, 7)
	quiet, err := localsearch.Solve(cat, 300, localsearch.DefaultOptions())
	require.NoError(t, err)

	opts := localsearch.DefaultOptions()
	opts.Verbose = true
	loud, err := localsearch.Solve(cat, 300, opts)
	require.NoError(t, err)
	assert.Equal(t, quiet, loud)
}
