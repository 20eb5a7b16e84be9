// Package solution - RNG utilities shared by the randomized drivers.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - A single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveRNG to create independent streams (e.g. one per population member).
package solution

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func RNGFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// RNG returns r when non-nil, otherwise RNGFromSeed(seed). Drivers call it
// once per invocation with their Options.Rand / Options.Seed pair.
func RNG(seed int64, r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return RNGFromSeed(seed)
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRNG creates an independent deterministic stream from base and a
// stream id. base.Int63() is consumed once per call; a nil base uses
// DefaultSeed as the parent.
//
// Complexity: O(1).
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}
