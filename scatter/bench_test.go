package scatter_test

import (
	"testing"

	"github.com/katalvlaran/knapsack/generator"
	"github.com/katalvlaran/knapsack/scatter"
)

// BenchmarkSolve_Hard runs a reduced scatter search on a 2k-item hard instance.
func BenchmarkSolve_Hard(b *testing.B) {
	const N = 2000
	cat, err := generator.Hard(N, generator.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	capacity := cat.TotalWeight() / 10
	opts := scatter.DefaultOptions()
	opts.PopulationSize = 20
	opts.MaxIterations = 10

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = scatter.Solve(cat, capacity, opts)
	}
}
