// Package solution holds the types shared by every knapsack driver: the
// mutable selection State with incremental totals, the immutable Result
// snapshot, the feasibility verifier, sentinel errors, and the seed and
// logging helpers the drivers build their Options on.
//
// Central invariant: State.Weight and State.Benefit always equal the sums
// over the selected items, and they are maintained by per-move deltas
// (Add/Remove/Swap are O(1)). Verify is the independent O(k log n) check
// used by tests and by the CLI --verify flag.
package solution
