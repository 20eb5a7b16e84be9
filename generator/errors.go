// SPDX-License-Identifier: MIT
// Package: knapsack/generator
//
// errors.go - sentinel errors for the generator package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached as "<Method>: <detail>: %w".

package generator

import "errors"

// ErrTooFewItems indicates that n is below the constructor's minimum.
var ErrTooFewItems = errors.New("generator: too few items")

// ErrNeedRandSource indicates that no RNG was configured (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("generator: rng is required")

// ErrBadRange indicates an empty or invalid weight/benefit range.
var ErrBadRange = errors.New("generator: invalid range")
