package generator

import (
	"fmt"

	"github.com/katalvlaran/knapsack/catalog"
)

const methodUniform = "Uniform"

// Uniform returns n items with ids 1..n, weights uniform in [wMin, wMax] and
// benefits uniform in [bMin, bMax]. Weights are drawn before benefits for
// each id.
//
// Errors: ErrTooFewItems (n < 1), ErrBadRange (wMin < 1, bMin < 0 or an
// empty range), ErrNeedRandSource.
func Uniform(n int, wMin, wMax, bMin, bMax int64, opts ...Option) (*catalog.Catalog, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodUniform, n, ErrTooFewItems)
	}
	if wMin < 1 || wMax < wMin {
		return nil, fmt.Errorf("%s: weight range [%d,%d]: %w", methodUniform, wMin, wMax, ErrBadRange)
	}
	if bMin < 0 || bMax < bMin {
		return nil, fmt.Errorf("%s: benefit range [%d,%d]: %w", methodUniform, bMin, bMax, ErrBadRange)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodUniform, ErrNeedRandSource)
	}

	items := make([]catalog.Item, n)
	for i := range items {
		w := wMin + cfg.rng.Int63n(wMax-wMin+1)
		b := bMin + cfg.rng.Int63n(bMax-bMin+1)
		items[i] = catalog.Item{ID: uint32(i + 1), Weight: w, Benefit: b}
	}

	return catalog.New(items)
}
