package solution

import (
	"fmt"

	"github.com/katalvlaran/knapsack/catalog"
)

// Result is the output shared by every driver.
type Result struct {
	// SelectedIDs lists the chosen item ids in ascending order; never nil.
	SelectedIDs []uint32 `json:"selectedIds"`

	// Weight and Benefit are the totals over SelectedIDs.
	Weight  int64 `json:"weight"`
	Benefit int64 `json:"benefit"`

	// Iterations is the number of iterations the driver actually executed.
	Iterations int `json:"iterations"`

	// Improvement is Benefit minus the benefit of the driver's starting point.
	Improvement int64 `json:"improvement"`
}

// Empty is the result of a run that selects nothing.
func Empty() Result {
	return Result{SelectedIDs: []uint32{}}
}

// Better reports whether a strictly beats b by benefit.
func Better(a, b Result) bool { return a.Benefit > b.Benefit }

// Verify recomputes the totals of res from cat and checks them against the
// reported values and capacity. Ids must be strictly ascending.
//
// Errors: ErrInvalidCapacity, catalog.ErrNilCatalog, ErrInfeasible (wrapped
// with the failing check).
//
// Complexity: O(k log n) for k selected ids.
func Verify(cat *catalog.Catalog, capacity int64, res Result) error {
	const method = "Verify"
	if err := ValidateInput(method, cat, capacity); err != nil {
		return err
	}

	var (
		w, b int64
		prev uint32
	)
	for k, id := range res.SelectedIDs {
		if k > 0 && id <= prev {
			return fmt.Errorf("%s: ids not strictly ascending at position %d: %w", method, k, ErrInfeasible)
		}
		prev = id
		i, err := cat.IndexOf(id)
		if err != nil {
			return fmt.Errorf("%s: %v: %w", method, err, ErrInfeasible)
		}
		w += cat.Weight(i)
		b += cat.Benefit(i)
	}

	if w != res.Weight {
		return fmt.Errorf("%s: weight reported %d, recomputed %d: %w", method, res.Weight, w, ErrInfeasible)
	}
	if b != res.Benefit {
		return fmt.Errorf("%s: benefit reported %d, recomputed %d: %w", method, res.Benefit, b, ErrInfeasible)
	}
	if w > capacity {
		return fmt.Errorf("%s: weight %d exceeds capacity %d: %w", method, w, capacity, ErrInfeasible)
	}

	return nil
}
