// Package catalog provides the immutable item catalog shared by every
// knapsack solver in this module.
//
// What is an item catalog?
//
//	A catalog is an ordered sequence of items (id, weight, benefit). Solvers
//	address items by their internal index 0..n-1; the external id is kept
//	only for reporting and is not assumed to be contiguous.
//
// Key features:
//   - Items are sorted ascending by id once, at construction time.
//   - Precomputed index arrays: ByWeight (ascending weight) and ByRatio
//     (descending benefit/weight). Solvers binary-search these instead of
//     re-sorting inside their hot loops.
//   - Ratio comparisons use exact integer cross-multiplication; float ratios
//     are exposed only for thresholding (GRASP).
//   - CSV and Parquet readers/writers for the "id,weight,benefit" record
//     format.
//
// Invariants:
//   - weight > 0 for every item (ErrBadWeight otherwise).
//   - benefit ≥ 0 for every item (ErrBadBenefit otherwise).
//   - ids are unique (ErrDuplicateID otherwise).
//
// A *Catalog is read-only after New returns and may be shared between
// goroutines without synchronization.
//
// Complexity:
//   - New: O(n log n) time, O(n) space.
//   - IndexOf: O(log n).
package catalog
