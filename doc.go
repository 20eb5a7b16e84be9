// Package knapsack is a toolbox of heuristics for the 0/1 knapsack problem:
// choose a subset of items whose total weight fits a capacity and whose total
// benefit is as large as possible.
//
// The root package holds no code. The work is split into subpackages:
//
//	catalog/     immutable item catalog, weight and ratio orders, CSV and Parquet I/O
//	solution/    selection state with running totals, results, verification, RNG
//	greedy/      ratio-greedy construction (and restricted repair)
//	localsearch/ one-for-one swap improvement with binary-searched candidates
//	grasp/       randomized greedy construction + local search, best of restarts
//	tabu/        add/swap neighborhood search with tabu memory and aspiration
//	scatter/     reference-set recombination with greedy repair
//	solver/      algorithm selector and YAML configuration over all drivers
//	generator/   deceptive "hard" and uniform random instances
//	report/      convergence charts (go-echarts) and Prometheus textfiles
//	cmd/knapsack command-line front end
//
// Every driver is deterministic for a fixed seed, never returns an
// infeasible selection, and treats an empty catalog as a valid instance.
//
// Quick example:
//
//	cat, _ := catalog.New([]catalog.Item{
//		{ID: 1, Weight: 10, Benefit: 60},
//		{ID: 2, Weight: 20, Benefit: 100},
//		{ID: 3, Weight: 30, Benefit: 120},
//	})
//	res, _ := localsearch.Solve(cat, 50, localsearch.DefaultOptions())
//	// res.SelectedIDs == [2 3], res.Benefit == 220
//
//	go install github.com/katalvlaran/knapsack/cmd/knapsack@latest
package knapsack
