// Package greedy implements the ratio-greedy constructor for the 0/1
// knapsack problem.
//
// Items are visited in the catalog's ByRatio order (descending
// benefit/weight; ties by lighter weight, then lower index) and accepted
// while the running weight stays within capacity. The first item that does
// not fit ends the construction, so the result is always a prefix of the
// ratio order. No randomness is involved: two calls on the same input return
// identical selections.
//
// Restricted runs the same procedure over a subset of the catalog and is the
// repair operator of scatter search.
//
// Complexity:
//   - O(n) per call on top of the O(n log n) ordering precomputed by
//     catalog.New.
package greedy
