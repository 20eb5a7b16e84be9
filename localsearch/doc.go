// Package localsearch implements the best-improvement swap neighborhood for
// the 0/1 knapsack problem.
//
// One iteration:
//  1. Collect the unselected items sorted by ascending weight and, for every
//     prefix of that list, the position of the highest-benefit item in it
//     (earliest on ties).
//  2. For every selected item s (ascending index) binary-search the longest
//     prefix whose weights fit in w(s) + (capacity − weight). The prefix
//     maximum is the best replacement c for s; gain = b(c) − b(s).
//  3. Apply the swap with the largest gain (first on ties) if gain ≥ MinGain.
//
// The search stops when no unselected item remains, when no swap reaches
// MinGain, or after MaxIterations iterations. Iterations counts every
// iteration entered, including the final one that found nothing to apply.
//
// Invariants:
//   - Benefit never decreases between iterations (MinGain ≥ 0).
//   - Weight never exceeds capacity after a committed swap.
//   - Totals are updated by the swap delta only.
//
// Complexity:
//   - O(n + k log n) per iteration for k selected items; O(n) extra space
//     allocated once per call.
package localsearch
