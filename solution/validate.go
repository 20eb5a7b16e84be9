package solution

import (
	"fmt"

	"github.com/katalvlaran/knapsack/catalog"
)

// ValidateInput performs the checks every driver runs before touching the
// catalog: a non-nil catalog and a positive capacity. method prefixes the
// returned error.
func ValidateInput(method string, cat *catalog.Catalog, capacity int64) error {
	if cat == nil {
		return fmt.Errorf("%s: %w", method, catalog.ErrNilCatalog)
	}
	if capacity <= 0 {
		return fmt.Errorf("%s: capacity=%d: %w", method, capacity, ErrInvalidCapacity)
	}
	return nil
}

// NonNegative returns ErrInvalidParameter (wrapped with method and name) if v < 0.
func NonNegative(method, name string, v int64) error {
	if v < 0 {
		return fmt.Errorf("%s: %s=%d: %w", method, name, v, ErrInvalidParameter)
	}
	return nil
}

// UnitInterval returns ErrInvalidParameter if x is NaN or outside [0,1].
func UnitInterval(method, name string, x float64) error {
	if !(x >= 0 && x <= 1) { // also rejects NaN
		return fmt.Errorf("%s: %s=%v: %w", method, name, x, ErrInvalidParameter)
	}
	return nil
}
