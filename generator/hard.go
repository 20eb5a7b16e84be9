package generator

import (
	"fmt"

	"github.com/katalvlaran/knapsack/catalog"
)

const (
	methodHard = "Hard"

	// MinHardItems is the smallest n for which the fixed groups of Hard do
	// not overlap.
	MinHardItems = 44

	trapWeight      = 999999
	geometricFirst  = 2
	geometricLast   = 15
	geometricBase   = 500000
	geometricFactor = 1.2
	bandWeightMin   = 10
	bandWeightMax   = 499
	bandRatioTop    = 1.5
	bandRatioFloor  = 0.8
	criticalWeight  = 100
	criticalBenefit = 10000
)

// trapPairs are items 16..21: each heavy/light pair has nearly equal ratio.
var trapPairs = []catalog.Item{
	{ID: 16, Weight: 1000, Benefit: 2000},
	{ID: 17, Weight: 2000, Benefit: 1999},
	{ID: 18, Weight: 1500, Benefit: 3000},
	{ID: 19, Weight: 3000, Benefit: 2999},
	{ID: 20, Weight: 750, Benefit: 1500},
	{ID: 21, Weight: 1500, Benefit: 1499},
}

// tinyItems are the last three ids: ratios 100, 99.5, 99.
var tinyItems = [3][2]int64{{1, 100}, {2, 199}, {3, 297}}

// Hard builds the deceptive instance described in the package doc.
//
// Errors: ErrTooFewItems (n < MinHardItems), ErrNeedRandSource.
//
// Complexity: O(n log n) (catalog construction).
func Hard(n int, opts ...Option) (*catalog.Catalog, error) {
	if n < MinHardItems {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodHard, n, MinHardItems, ErrTooFewItems)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodHard, ErrNeedRandSource)
	}

	items := make([]catalog.Item, 0, n)
	items = append(items, catalog.Item{ID: 1, Weight: trapWeight, Benefit: trapWeight})

	var id int
	for id = geometricFirst; id <= geometricLast; id++ {
		w := int64(geometricBase >> (id - geometricFirst))
		items = append(items, catalog.Item{ID: uint32(id), Weight: w, Benefit: int64(float64(w) * geometricFactor)})
	}
	items = append(items, trapPairs...)

	critical := n / 2
	tinyFirst := n - len(tinyItems) + 1
	for id = int(trapPairs[len(trapPairs)-1].ID) + 1; id < tinyFirst; id++ {
		if k := id - critical; k >= 0 && k < 3 {
			items = append(items, catalog.Item{
				ID:      uint32(id),
				Weight:  criticalWeight - int64(k),
				Benefit: criticalBenefit - int64(k),
			})
			continue
		}
		w := bandWeightMin + cfg.rng.Int63n(bandWeightMax-bandWeightMin+1)
		items = append(items, catalog.Item{ID: uint32(id), Weight: w, Benefit: int64(float64(w) * bandRatio(id, n))})
	}
	for k, t := range tinyItems {
		items = append(items, catalog.Item{ID: uint32(tinyFirst + k), Weight: t[0], Benefit: t[1]})
	}

	return catalog.New(items)
}

// bandRatio decays linearly with id and is clamped to [0.8, 1.5].
func bandRatio(id, n int) float64 {
	r := bandRatioTop - float64(id)/float64(n)
	if r < bandRatioFloor {
		return bandRatioFloor
	}
	if r > bandRatioTop {
		return bandRatioTop
	}
	return r
}
