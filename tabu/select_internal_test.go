package tabu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/solution"
)

func TestSelectMove_AspirationOverridesTabu(t *testing.T) {
	cat := catalog.MustNew([]catalog.Item{
		{ID: 1, Weight: 10, Benefit: 60},
		{ID: 2, Weight: 20, Benefit: 100},
		{ID: 3, Weight: 30, Benefit: 120},
	})
	st := solution.NewState(cat)
	st.Add(0)
	st.Add(1) // 160

	mem := NewMemory()
	mem.Forbid(Swap(0, 2), 10)

	// Best so far 200: the tabu swap reaches 220 and is admitted.
	mv, ok := selectMove(st, 50, 200, mem, 1)
	require.True(t, ok)
	assert.Equal(t, Swap(0, 2), mv)

	// Best so far 220: 220 is not strictly better, next best swap is chosen.
	mv, ok = selectMove(st, 50, 220, mem, 1)
	require.True(t, ok)
	assert.Equal(t, Swap(1, 2), mv)

	// Once the entry has expired the swap is plain admissible again.
	mv, ok = selectMove(st, 50, 220, mem, 10)
	require.True(t, ok)
	assert.Equal(t, Swap(0, 2), mv)
}

func TestSelectMove_TiesKeepScanOrder(t *testing.T) {
	// Items 1 and 2 have equal benefit; both adds fit, the lower index wins.
	cat := catalog.MustNew([]catalog.Item{
		{ID: 1, Weight: 5, Benefit: 7},
		{ID: 2, Weight: 3, Benefit: 7},
	})
	st := solution.NewState(cat)
	mv, ok := selectMove(st, 10, 0, NewMemory(), 1)
	require.True(t, ok)
	assert.Equal(t, Add(0), mv)
}
