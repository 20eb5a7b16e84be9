// Package grasp implements GRASP (greedy randomized adaptive search
// procedure) for the 0/1 knapsack problem.
//
// Each restart:
//  1. Randomized construction. The pool holds the unselected items that
//     still fit the residual capacity, in greedy ratio order. The restricted
//     candidate list (RCL) is the pool prefix whose ratio is at least
//     best − Alpha·(best − worst); one RCL member is drawn uniformly and
//     added, and items that no longer fit leave the pool for good.
//  2. Refinement with localsearch.Improve.
//
// The best result over all restarts is returned (first on ties). Alpha = 0
// is greedy up to ties; Alpha = 1 picks uniformly among all fitting items.
//
// Determinism: all draws come from one *rand.Rand (Options.Rand, or
// Options.Seed with the seed-0 ⇒ default policy), so equal options give
// equal results.
//
// Complexity:
//   - Construction: O(n) per accepted item (pool compaction), O(n·k) total.
//   - Refinement: see package localsearch.
package grasp
