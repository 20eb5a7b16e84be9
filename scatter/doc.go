// Package scatter implements scatter search for the 0/1 knapsack problem.
//
// Phases:
//  1. Population. PopulationSize candidates, alternating a one-shot GRASP
//     run (even slots, each with its own derived RNG stream) and the plain
//     greedy construction (odd slots). Identical selections are kept once.
//  2. Reference set. Candidates are ranked by benefit (stable). The top
//     RefSetSize/2 enter unconditionally; the rest are admitted in rank
//     order while the set is not full and their overlap with every member
//     is ≤ DiversityThreshold. Overlap of candidate c with member r is
//     |c ∩ r| / |c| (0 for an empty c).
//  3. Rounds. Every pair of members is combined: the union of both
//     selections is kept if it fits, otherwise the greedy constructor is
//     re-run restricted to the union's items. Members and offspring are
//     merged (duplicates dropped) and the reference set is rebuilt with
//     the rule of phase 2.
//
// The search stops after MaxIterations rounds, after MaxStall rounds
// without a better best member (0 disables the rule), or when the
// reference set has fewer than two members. The best member is returned;
// Improvement is measured against the best member of the initial
// reference set.
//
// Complexity:
//   - Population: PopulationSize GRASP/greedy runs plus O(P²) duplicate checks.
//   - Round: O(R²) combinations of O(n) each, plus O(P·R·n) for diversity
//     filtering with R = RefSetSize and P the merged pool size.
package scatter
