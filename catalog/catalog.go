package catalog

import (
	"fmt"
	"math"
	"sort"
)

// MaxMagnitude bounds item weights and benefits. Sums over every possible
// catalog and the cross products of ratio comparisons then fit in int64.
const MaxMagnitude int64 = math.MaxInt32

// Item is a single knapsack candidate.
type Item struct {
	ID      uint32 // external identifier, unique within a catalog
	Weight  int64  // in [1, MaxMagnitude]
	Benefit int64  // in [0, MaxMagnitude]
}

// Catalog is an immutable, id-sorted array of items together with the index
// arrays the solvers need in their inner loops.
//
// Internal index i always refers to the i-th item in ascending id order.
type Catalog struct {
	items    []Item
	ratio    []float64 // benefit/weight per index
	byWeight []int     // indices by ascending weight, ties by ascending index
	byRatio  []int     // indices by descending ratio, ties by ascending weight, then index
	total    int64     // sum of all weights
}

// New validates items, sorts a private copy by id and precomputes the
// weight and ratio orders. An empty (or nil) slice yields an empty catalog.
//
// Errors: ErrBadWeight, ErrBadBenefit, ErrDuplicateID (wrapped with the
// offending id).
//
// Complexity: O(n log n) time, O(n) space.
func New(items []Item) (*Catalog, error) {
	var n = len(items)
	var cp = make([]Item, n)
	copy(cp, items)

	var i int
	for i = 0; i < n; i++ {
		if cp[i].Weight <= 0 || cp[i].Weight > MaxMagnitude {
			return nil, fmt.Errorf("catalog: item %d weight=%d: %w", cp[i].ID, cp[i].Weight, ErrBadWeight)
		}
		if cp[i].Benefit < 0 || cp[i].Benefit > MaxMagnitude {
			return nil, fmt.Errorf("catalog: item %d benefit=%d: %w", cp[i].ID, cp[i].Benefit, ErrBadBenefit)
		}
	}

	sort.SliceStable(cp, func(a, b int) bool { return cp[a].ID < cp[b].ID })
	for i = 1; i < n; i++ {
		if cp[i].ID == cp[i-1].ID {
			return nil, fmt.Errorf("catalog: item %d: %w", cp[i].ID, ErrDuplicateID)
		}
	}

	c := &Catalog{
		items:    cp,
		ratio:    make([]float64, n),
		byWeight: make([]int, n),
		byRatio:  make([]int, n),
	}
	for i = 0; i < n; i++ {
		c.ratio[i] = float64(cp[i].Benefit) / float64(cp[i].Weight)
		c.byWeight[i] = i
		c.byRatio[i] = i
		c.total += cp[i].Weight
	}

	sort.SliceStable(c.byWeight, func(a, b int) bool {
		return cp[c.byWeight[a]].Weight < cp[c.byWeight[b]].Weight
	})
	sort.SliceStable(c.byRatio, func(a, b int) bool {
		return c.ratioBefore(c.byRatio[a], c.byRatio[b])
	})

	return c, nil
}

// MustNew is New for fixtures and examples; it panics on invalid items.
func MustNew(items []Item) *Catalog {
	c, err := New(items)
	if err != nil {
		panic(err)
	}
	return c
}

// ratioBefore reports whether item a precedes item b in greedy order:
// higher benefit/weight first, then lighter, then lower index.
// Ratios are compared exactly: b_a·w_b vs b_b·w_a.
func (c *Catalog) ratioBefore(a, b int) bool {
	var ia, ib = c.items[a], c.items[b]
	var lhs = ia.Benefit * ib.Weight
	var rhs = ib.Benefit * ia.Weight
	if lhs != rhs {
		return lhs > rhs
	}
	if ia.Weight != ib.Weight {
		return ia.Weight < ib.Weight
	}
	return a < b
}

// Len returns the number of items. A nil catalog has length 0.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// At returns the item at internal index i.
func (c *Catalog) At(i int) Item { return c.items[i] }

// Weight returns the weight of item i.
func (c *Catalog) Weight(i int) int64 { return c.items[i].Weight }

// Benefit returns the benefit of item i.
func (c *Catalog) Benefit(i int) int64 { return c.items[i].Benefit }

// ID returns the external id of item i.
func (c *Catalog) ID(i int) uint32 { return c.items[i].ID }

// Ratio returns benefit/weight of item i.
func (c *Catalog) Ratio(i int) float64 { return c.ratio[i] }

// TotalWeight returns the sum of all item weights.
func (c *Catalog) TotalWeight() int64 { return c.total }

// ByWeight returns indices sorted by ascending weight (ties by index).
// The returned slice is shared and must not be modified.
func (c *Catalog) ByWeight() []int { return c.byWeight }

// ByRatio returns indices in greedy order: descending benefit/weight, ties
// broken by ascending weight and then ascending index. The returned slice is
// shared and must not be modified.
func (c *Catalog) ByRatio() []int { return c.byRatio }

// Items returns a copy of the catalog contents in id order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// IndexOf returns the internal index of id.
//
// Complexity: O(log n).
func (c *Catalog) IndexOf(id uint32) (int, error) {
	var n = c.Len()
	var i = sort.Search(n, func(k int) bool { return c.items[k].ID >= id })
	if i < n && c.items[i].ID == id {
		return i, nil
	}
	return -1, fmt.Errorf("catalog: id %d: %w", id, ErrUnknownID)
}
