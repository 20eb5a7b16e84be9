package grasp

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/localsearch"
	"github.com/katalvlaran/knapsack/solution"
)

// Solve runs opts.Restarts GRASP restarts and returns the best refined
// result. Restarts == 0 yields an empty result.
//
// Errors: catalog.ErrNilCatalog, solution.ErrInvalidCapacity,
// solution.ErrInvalidParameter (Alpha outside [0,1] or NaN, negative counts).
func Solve(cat *catalog.Catalog, capacity int64, opts Options) (solution.Result, error) {
	const method = "grasp.Solve"
	if err := solution.ValidateInput(method, cat, capacity); err != nil {
		return solution.Result{}, err
	}
	if err := validateOptions(method, opts); err != nil {
		return solution.Result{}, err
	}

	var (
		logger = solution.TraceLogger(opts.Verbose, opts.Logger, "grasp")
		rng    = solution.RNG(opts.Seed, opts.Rand)
		st     = solution.NewState(cat)
		pool   = make([]int, 0, cat.Len())
		best   = solution.Empty()
		ls     = opts.LocalSearch
	)
	if ls.Logger.GetSink() == nil {
		ls.Logger = opts.Logger
	}

	for r := 1; r <= opts.Restarts; r++ {
		pool = construct(st, capacity, opts.Alpha, rng, pool)
		built := st.Benefit()

		res, err := localsearch.Improve(cat, capacity, st, ls)
		if err != nil {
			return solution.Result{}, err
		}
		if r == 1 || solution.Better(res, best) {
			best = res
			logger.Info("new best", "restart", r, "constructed", built, "benefit", best.Benefit)
		} else {
			logger.Info("restart", "restart", r, "constructed", built, "benefit", res.Benefit, "best", best.Benefit)
		}
		opts.OnIteration.Call(r, res.Benefit, best.Benefit)
	}

	return best, nil
}

// Construct returns one randomized-greedy selection without refinement.
//
// Errors: as Solve.
func Construct(cat *catalog.Catalog, capacity int64, alpha float64, rng *rand.Rand) (*solution.State, error) {
	const method = "grasp.Construct"
	if err := solution.ValidateInput(method, cat, capacity); err != nil {
		return nil, err
	}
	if err := solution.UnitInterval(method, "alpha", alpha); err != nil {
		return nil, err
	}
	st := solution.NewState(cat)
	construct(st, capacity, alpha, solution.RNG(0, rng), make([]int, 0, cat.Len()))
	return st, nil
}

// construct resets st and fills it by RCL draws. pool is scratch space and
// is returned for reuse.
func construct(st *solution.State, capacity int64, alpha float64, rng *rand.Rand, pool []int) []int {
	var cat = st.Catalog()
	st.Reset()

	pool = pool[:0]
	for _, i := range cat.ByRatio() {
		if cat.Weight(i) <= capacity {
			pool = append(pool, i)
		}
	}

	for len(pool) > 0 {
		hi := cat.Ratio(pool[0])
		lo := cat.Ratio(pool[len(pool)-1])
		threshold := hi - alpha*(hi-lo)
		// pool is in descending ratio order, so the RCL is a prefix; it is
		// never empty because pool[0] meets the threshold.
		k := sort.Search(len(pool), func(j int) bool { return cat.Ratio(pool[j]) < threshold })

		pick := pool[rng.Intn(k)]
		st.Add(pick)

		residual := capacity - st.Weight()
		m := 0
		for _, i := range pool {
			if i != pick && cat.Weight(i) <= residual {
				pool[m] = i
				m++
			}
		}
		pool = pool[:m]
	}

	return pool
}
