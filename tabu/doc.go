// Package tabu implements tabu search over add/swap moves for the 0/1
// knapsack problem.
//
// Neighborhood (scanned in this fixed order):
//   - Add(j)     for every unselected j, ascending, that fits;
//   - Swap(i, j) for every selected i, ascending, and unselected j,
//     ascending, such that weight − w(i) + w(j) ≤ capacity.
//
// Selection: the admissible move with the largest benefit gain; the first
// one scanned wins ties. A move is admissible if it is not tabu, or if it
// would lift the benefit strictly above the best seen so far (aspiration).
// Non-improving moves are taken when nothing better is admissible; this is
// what lets the search leave local optima.
//
// Memory: after move m is applied at iteration t, m (and the inverse swap,
// for swaps) is recorded with expiry t + Tenure. A recorded move is tabu at
// iteration u while expiry > u, and entries are purged once expiry ≤ u.
// Tenure 0 therefore forbids nothing and the search becomes plain
// best-neighbor hill climbing.
//
// Termination: MaxIterations reached, no admissible move, or MaxStall
// consecutive iterations without a new best (MaxStall = 0 disables the
// stall rule).
//
// The search starts from the greedy selection, returns the best selection
// seen, and reports Improvement relative to the greedy benefit.
//
// Complexity:
//   - O(k·(n−k)) per iteration for k selected items; O(n) extra space.
package tabu
