package tabu

import (
	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/greedy"
	"github.com/katalvlaran/knapsack/solution"
)

// Solve runs tabu search from the greedy selection.
//
// Errors: catalog.ErrNilCatalog, solution.ErrInvalidCapacity,
// solution.ErrInvalidParameter (negative counts).
func Solve(cat *catalog.Catalog, capacity int64, opts Options) (solution.Result, error) {
	const method = "tabu.Solve"
	if err := solution.ValidateInput(method, cat, capacity); err != nil {
		return solution.Result{}, err
	}
	if err := validateOptions(method, opts); err != nil {
		return solution.Result{}, err
	}

	st, err := greedy.NewState(cat, capacity)
	if err != nil {
		return solution.Result{}, err
	}

	var (
		logger     = solution.TraceLogger(opts.Verbose, opts.Logger, "tabu")
		initial    = st.Benefit()
		best       = st.Clone()
		mem        = NewMemory()
		stall      int
		iterations int
	)
	for iter := 1; iter <= opts.MaxIterations; iter++ {
		iterations = iter

		mv, ok := selectMove(st, capacity, best.Benefit(), mem, iter)
		if !ok {
			logger.Info("no admissible move", "iter", iter)
			opts.OnIteration.Call(iter, st.Benefit(), best.Benefit())
			break
		}
		apply(st, mv)

		if st.Benefit() > best.Benefit() {
			best.CopyFrom(st)
			stall = 0
		} else {
			stall++
		}

		mem.Forbid(mv, iter+opts.Tenure)
		if inv, has := mv.Inverse(); has {
			mem.Forbid(inv, iter+opts.Tenure)
		}
		mem.Purge(iter)

		logger.Info("move", "iter", iter, "move", mv.String(), "benefit", st.Benefit(),
			"weight", st.Weight(), "best", best.Benefit(), "stall", stall, "tabu", mem.Len())
		opts.OnIteration.Call(iter, st.Benefit(), best.Benefit())

		if opts.MaxStall > 0 && stall >= opts.MaxStall {
			break
		}
	}

	return best.Result(iterations, best.Benefit()-initial), nil
}

// selectMove scans the neighborhood in the documented order and returns the
// admissible move with the largest gain.
func selectMove(st *solution.State, capacity, bestBenefit int64, mem *Memory, iter int) (Move, bool) {
	var (
		cat      = st.Catalog()
		n        = st.Len()
		cur      = st.Benefit()
		w        = st.Weight()
		found    bool
		bestMove Move
		bestGain int64
	)
	consider := func(m Move, gain int64) {
		if mem.IsTabu(m, iter) && cur+gain <= bestBenefit {
			return
		}
		if !found || gain > bestGain {
			found, bestMove, bestGain = true, m, gain
		}
	}

	for j := 0; j < n; j++ {
		if !st.Contains(j) && w+cat.Weight(j) <= capacity {
			consider(Add(j), cat.Benefit(j))
		}
	}
	for i := 0; i < n; i++ {
		if !st.Contains(i) {
			continue
		}
		base := w - cat.Weight(i)
		for j := 0; j < n; j++ {
			if st.Contains(j) || base+cat.Weight(j) > capacity {
				continue
			}
			consider(Swap(i, j), cat.Benefit(j)-cat.Benefit(i))
		}
	}

	return bestMove, found
}

func apply(st *solution.State, m Move) {
	if m.Kind == KindAdd {
		st.Add(m.In)
		return
	}
	st.Swap(m.Out, m.In)
}
