package localsearch

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/greedy"
	"github.com/katalvlaran/knapsack/solution"
)

// Solve runs the greedy constructor and improves its selection.
func Solve(cat *catalog.Catalog, capacity int64, opts Options) (solution.Result, error) {
	if err := validateOptions("localsearch.Solve", opts); err != nil {
		return solution.Result{}, err
	}
	st, err := greedy.NewState(cat, capacity)
	if err != nil {
		return solution.Result{}, err
	}
	return Improve(cat, capacity, st, opts)
}

// Improve applies best-improvement swaps to st in place and returns the
// final selection. Improvement is measured against st's benefit on entry.
//
// Errors: catalog.ErrNilCatalog, solution.ErrInvalidCapacity,
// solution.ErrInvalidParameter (bad options, nil st or st over another
// catalog), solution.ErrInfeasible (st already over capacity).
func Improve(cat *catalog.Catalog, capacity int64, st *solution.State, opts Options) (solution.Result, error) {
	const method = "localsearch.Improve"
	if err := solution.ValidateInput(method, cat, capacity); err != nil {
		return solution.Result{}, err
	}
	if err := validateOptions(method, opts); err != nil {
		return solution.Result{}, err
	}
	if st == nil || st.Catalog() != cat {
		return solution.Result{}, fmt.Errorf("%s: state does not belong to catalog: %w", method, solution.ErrInvalidParameter)
	}
	if st.Weight() > capacity {
		return solution.Result{}, fmt.Errorf("%s: initial weight %d > capacity %d: %w",
			method, st.Weight(), capacity, solution.ErrInfeasible)
	}

	var (
		logger  = solution.TraceLogger(opts.Verbose, opts.Logger, "localsearch")
		initial = st.Benefit()
		n       = cat.Len()
		nb      = newNeighborhood(n)
		iter    int
		done    int
	)
	for iter = 1; iter <= opts.MaxIterations; iter++ {
		done = iter
		logger.Info("iteration", "iter", iter, "benefit", st.Benefit(), "weight", st.Weight(), "capacity", capacity)

		if !nb.collect(st) {
			logger.Info("no candidates left")
			opts.OnIteration.Call(iter, st.Benefit(), st.Benefit())
			break
		}

		out, in, gain, ok := nb.bestSwap(st, capacity, opts.MinGain)
		if !ok {
			logger.Info("no swap reaches the minimum gain", "minGain", opts.MinGain)
			opts.OnIteration.Call(iter, st.Benefit(), st.Benefit())
			break
		}

		st.Swap(out, in)
		logger.Info("swap", "out", cat.ID(out), "in", cat.ID(in), "gain", gain,
			"benefit", st.Benefit(), "weight", st.Weight())
		opts.OnIteration.Call(iter, st.Benefit(), st.Benefit())
	}

	return st.Result(done, st.Benefit()-initial), nil
}

// neighborhood holds the per-iteration candidate arrays; buffers are
// allocated once and reused.
type neighborhood struct {
	idx     []int   // unselected items by ascending weight
	weight  []int64 // weight of idx[k]
	bestPos []int   // position in idx of the max benefit over idx[0..k], earliest on ties
}

func newNeighborhood(n int) *neighborhood {
	return &neighborhood{
		idx:     make([]int, 0, n),
		weight:  make([]int64, 0, n),
		bestPos: make([]int, 0, n),
	}
}

// collect rebuilds the candidate arrays for st. It reports false when every
// item is selected.
func (nb *neighborhood) collect(st *solution.State) bool {
	var cat = st.Catalog()
	nb.idx = nb.idx[:0]
	nb.weight = nb.weight[:0]
	nb.bestPos = nb.bestPos[:0]

	var best = -1
	for _, i := range cat.ByWeight() {
		if st.Contains(i) {
			continue
		}
		k := len(nb.idx)
		nb.idx = append(nb.idx, i)
		nb.weight = append(nb.weight, cat.Weight(i))
		if best < 0 || cat.Benefit(i) > cat.Benefit(nb.idx[best]) {
			best = k
		}
		nb.bestPos = append(nb.bestPos, best)
	}

	return len(nb.idx) > 0
}

// bestSwap scans selected items in ascending index order and returns the
// swap with the largest gain ≥ minGain. Ties keep the first found.
func (nb *neighborhood) bestSwap(st *solution.State, capacity, minGain int64) (out, in int, gain int64, ok bool) {
	var (
		cat       = st.Catalog()
		remaining = capacity - st.Weight()
		m         = len(nb.weight)
	)
	for s := 0; s < st.Len(); s++ {
		if !st.Contains(s) {
			continue
		}
		limit := cat.Weight(s) + remaining
		ub := sort.Search(m, func(k int) bool { return nb.weight[k] > limit })
		if ub == 0 {
			continue
		}
		c := nb.idx[nb.bestPos[ub-1]]
		g := cat.Benefit(c) - cat.Benefit(s)
		if g < minGain {
			continue
		}
		if st.Weight()-cat.Weight(s)+cat.Weight(c) > capacity {
			continue
		}
		if !ok || g > gain {
			out, in, gain, ok = s, c, g, true
		}
	}

	return out, in, gain, ok
}
