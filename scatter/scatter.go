package scatter

import (
	"sort"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/grasp"
	"github.com/katalvlaran/knapsack/greedy"
	"github.com/katalvlaran/knapsack/solution"
)

// Solve runs scatter search and returns the best reference member.
//
// Errors: catalog.ErrNilCatalog, solution.ErrInvalidCapacity,
// solution.ErrInvalidParameter (RefSetSize < 2, threshold or alpha outside
// [0,1], negative counts).
func Solve(cat *catalog.Catalog, capacity int64, opts Options) (solution.Result, error) {
	const method = "scatter.Solve"
	if err := solution.ValidateInput(method, cat, capacity); err != nil {
		return solution.Result{}, err
	}
	if err := validateOptions(method, opts); err != nil {
		return solution.Result{}, err
	}

	logger := solution.TraceLogger(opts.Verbose, opts.Logger, "scatter")

	pop, err := population(cat, capacity, opts)
	if err != nil {
		return solution.Result{}, err
	}
	ref := referenceSet(pop, opts.RefSetSize, opts.DiversityThreshold)
	if len(ref) == 0 {
		return solution.Empty(), nil
	}
	logger.Info("initial reference set", "population", len(pop), "members", len(ref), "best", ref[0].Benefit())

	var (
		initial = ref[0].Benefit()
		best    = initial
		stall   int
		rounds  int
	)
	for round := 1; round <= opts.MaxIterations && len(ref) >= minRefSetSize; round++ {
		rounds = round

		pool := make([]*solution.State, 0, len(ref)+len(ref)*(len(ref)-1)/2)
		for _, m := range ref {
			pool = appendUnique(pool, m)
		}
		for i := 0; i < len(ref); i++ {
			for j := i + 1; j < len(ref); j++ {
				child, err := combine(ref[i], ref[j], capacity)
				if err != nil {
					return solution.Result{}, err
				}
				pool = appendUnique(pool, child)
			}
		}
		ref = referenceSet(pool, opts.RefSetSize, opts.DiversityThreshold)

		cur := ref[0].Benefit()
		if cur > best {
			best = cur
			stall = 0
		} else {
			stall++
		}
		logger.Info("round", "round", round, "pool", len(pool), "members", len(ref), "best", best, "stall", stall)
		opts.OnIteration.Call(round, cur, best)

		if opts.MaxStall > 0 && stall >= opts.MaxStall {
			break
		}
	}

	return ref[0].Result(rounds, ref[0].Benefit()-initial), nil
}

// population builds the deduplicated initial candidates.
func population(cat *catalog.Catalog, capacity int64, opts Options) ([]*solution.State, error) {
	var (
		rng  = solution.RNG(opts.Seed, opts.Rand)
		pop  = make([]*solution.State, 0, opts.PopulationSize)
		base *solution.State
	)
	seeding := opts.Seeding
	seeding.Seed = 0
	seeding.Verbose = false
	seeding.OnIteration = nil

	for k := 0; k < opts.PopulationSize; k++ {
		if k%2 == 1 {
			if base == nil {
				st, err := greedy.NewState(cat, capacity)
				if err != nil {
					return nil, err
				}
				base = st
			}
			pop = appendUnique(pop, base)
			continue
		}

		seeding.Rand = solution.DeriveRNG(rng, uint64(k))
		res, err := grasp.Solve(cat, capacity, seeding)
		if err != nil {
			return nil, err
		}
		st, err := solution.FromResult(cat, res)
		if err != nil {
			return nil, err
		}
		pop = appendUnique(pop, st)
	}

	return pop, nil
}

// combine returns the union of a and b, repaired greedily if it does not fit.
func combine(a, b *solution.State, capacity int64) (*solution.State, error) {
	var (
		cat   = a.Catalog()
		union = solution.NewState(cat)
		mask  = make([]bool, cat.Len())
	)
	for i := range mask {
		if a.Contains(i) || b.Contains(i) {
			mask[i] = true
			union.Add(i)
		}
	}
	if union.Weight() <= capacity {
		return union, nil
	}
	return greedy.Restricted(cat, capacity, mask)
}

// referenceSet ranks cands by benefit and applies the top-half plus
// diversity rule. cands is reordered in place.
func referenceSet(cands []*solution.State, size int, threshold float64) []*solution.State {
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Benefit() > cands[j].Benefit() })

	elite := size / 2
	if elite > len(cands) {
		elite = len(cands)
	}
	ref := make([]*solution.State, 0, size)
	ref = append(ref, cands[:elite]...)

	for _, c := range cands[elite:] {
		if len(ref) >= size {
			break
		}
		if diverse(c, ref, threshold) {
			ref = append(ref, c)
		}
	}

	return ref
}

// diverse reports whether c overlaps every member of ref by at most threshold.
func diverse(c *solution.State, ref []*solution.State, threshold float64) bool {
	if c.Count() == 0 {
		return true
	}
	for _, r := range ref {
		if overlap(c, r) > threshold {
			return false
		}
	}
	return true
}

// overlap is |c ∩ r| / |c|.
func overlap(c, r *solution.State) float64 {
	if c.Count() == 0 {
		return 0
	}
	var shared int
	for i := 0; i < c.Len(); i++ {
		if c.Contains(i) && r.Contains(i) {
			shared++
		}
	}
	return float64(shared) / float64(c.Count())
}

// appendUnique appends st unless an equal selection is already present.
func appendUnique(pool []*solution.State, st *solution.State) []*solution.State {
	for _, p := range pool {
		if p.Equal(st) {
			return pool
		}
	}
	return append(pool, st)
}
