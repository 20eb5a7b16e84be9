// Package generator synthesizes knapsack instances for benchmarks, tests and
// the CLI "generate" command.
//
// Constructors:
//   - Hard(n)    - a deliberately deceptive instance (see below).
//   - Uniform(n) - ids 1..n with weights and benefits drawn uniformly from
//     closed ranges.
//
// Hard instance layout (ids 1..n, n ≥ MinHardItems):
//   - id 1:          trap item, weight = benefit = 999999 (ratio 1.0, never fits
//     typical capacities).
//   - ids 2..15:     geometric series, weight 500000>>(id−2), benefit ⌊1.2·weight⌋.
//   - ids 16..21:    trap pairs whose ratios differ by one unit of benefit.
//   - ids n/2..n/2+2: critical zone, weight 100−k, benefit 10000−k (k=0,1,2).
//   - ids n−2..n:    tiny items (1,100), (2,199), (3,297).
//   - all other ids: random band, weight uniform in [10,499], benefit
//     ⌊weight·clamp(1.5 − id/n, 0.8, 1.5)⌋.
//
// With n = 10000 this is exactly the classic "datos_dificil" dataset layout.
//
// Randomness:
//   - Every constructor requires an RNG (WithSeed or WithRand); otherwise
//     ErrNeedRandSource. Draw order is fixed (ascending id), so a fixed seed
//     gives a fixed catalog.
//
// Options follow the functional style: option constructors panic on
// meaningless input (WithRand(nil)); generators return sentinel errors.
package generator
