// Command knapsack solves 0/1 knapsack instances from CSV or Parquet
// catalogs with the greedy, local search, GRASP, tabu and scatter search
// heuristics, and generates benchmark instances.
//
// Usage:
//
//	knapsack solve --input items.csv --capacity 1000 --algorithm tabu
//	knapsack compare --input items.parquet --capacity 1000
//	knapsack generate --kind hard --items 10000 --output hard.parquet
package main

import (
	"os"

	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
