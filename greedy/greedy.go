package greedy

import (
	"fmt"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/solution"
)

// Construct builds the greedy selection and returns it as a Result with
// Iterations and Improvement set to zero.
//
// Errors: catalog.ErrNilCatalog, solution.ErrInvalidCapacity.
func Construct(cat *catalog.Catalog, capacity int64) (solution.Result, error) {
	st, err := NewState(cat, capacity)
	if err != nil {
		return solution.Result{}, err
	}
	return st.Result(0, 0), nil
}

// NewState is Construct returning the mutable selection, for drivers that
// continue from the greedy starting point.
func NewState(cat *catalog.Catalog, capacity int64) (*solution.State, error) {
	if err := solution.ValidateInput("greedy.NewState", cat, capacity); err != nil {
		return nil, err
	}
	st := solution.NewState(cat)
	fill(st, capacity, nil)
	return st, nil
}

// Restricted runs the constructor over the items i with allowed[i] == true
// only; the relative order of those items is the same as in Construct.
//
// Errors: catalog.ErrNilCatalog, solution.ErrInvalidCapacity,
// solution.ErrInvalidParameter if len(allowed) != cat.Len().
func Restricted(cat *catalog.Catalog, capacity int64, allowed []bool) (*solution.State, error) {
	const method = "greedy.Restricted"
	if err := solution.ValidateInput(method, cat, capacity); err != nil {
		return nil, err
	}
	if len(allowed) != cat.Len() {
		return nil, fmt.Errorf("%s: mask length %d, catalog %d: %w",
			method, len(allowed), cat.Len(), solution.ErrInvalidParameter)
	}
	st := solution.NewState(cat)
	fill(st, capacity, allowed)
	return st, nil
}

// fill adds items in ratio order until the first one that does not fit.
// A nil allowed mask admits every item.
func fill(st *solution.State, capacity int64, allowed []bool) {
	var cat = st.Catalog()
	for _, i := range cat.ByRatio() {
		if allowed != nil && !allowed[i] {
			continue
		}
		if st.Weight()+cat.Weight(i) > capacity {
			return
		}
		st.Add(i)
	}
}
