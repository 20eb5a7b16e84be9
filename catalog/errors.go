// SPDX-License-Identifier: MIT
// Package: knapsack/catalog
//
// errors.go - sentinel errors for the catalog package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context (line numbers, ids) is attached with %w wrapping at the call site.

package catalog

import "errors"

var (
	// ErrNilCatalog is returned when a solver or writer receives a nil *Catalog.
	ErrNilCatalog = errors.New("catalog: catalog is nil")

	// ErrMalformedInput indicates a record that does not have exactly three
	// integer fields (id, weight, benefit).
	ErrMalformedInput = errors.New("catalog: malformed input record")

	// ErrDuplicateID indicates that two items share the same id.
	ErrDuplicateID = errors.New("catalog: duplicate item id")

	// ErrBadWeight indicates an item with weight ≤ 0 or above MaxMagnitude.
	ErrBadWeight = errors.New("catalog: item weight must be in [1, MaxMagnitude]")

	// ErrBadBenefit indicates an item with a negative benefit or one above
	// MaxMagnitude.
	ErrBadBenefit = errors.New("catalog: item benefit must be in [0, MaxMagnitude]")

	// ErrUnknownID indicates a lookup for an id that is not in the catalog.
	ErrUnknownID = errors.New("catalog: unknown item id")
)
