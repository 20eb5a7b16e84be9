// SPDX-License-Identifier: MIT
// Package: knapsack/solution
//
// errors.go - sentinel errors shared by every solver package.
//
// Error policy:
//   • Algorithms never panic on user input; they return one of these sentinels,
//     optionally wrapped with fmt.Errorf("%s: ...: %w", method, ..., ErrX).
//   • Callers branch with errors.Is.

package solution

import "errors"

var (
	// ErrInvalidCapacity is returned when capacity ≤ 0.
	ErrInvalidCapacity = errors.New("solution: capacity must be positive")

	// ErrInvalidParameter is returned for out-of-range solver options:
	// alpha outside [0,1], negative iteration/restart/stall/tenure counts,
	// negative minimum gain, reference set size < 2.
	ErrInvalidParameter = errors.New("solution: invalid parameter")

	// ErrInfeasible is returned by Verify when a result exceeds capacity or
	// its totals do not match the selected items.
	ErrInfeasible = errors.New("solution: infeasible or inconsistent result")
)
