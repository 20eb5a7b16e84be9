package tabu_test

import (
	"testing"

	"github.com/katalvlaran/knapsack/generator"
	"github.com/katalvlaran/knapsack/tabu"
)

// BenchmarkSolve_Hard measures tabu search on a 1k-item hard instance. Each
// iteration scans the full add and swap neighborhood, so n stays small.
func BenchmarkSolve_Hard(b *testing.B) {
	const N = 1000
	cat, err := generator.Hard(N, generator.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	capacity := cat.TotalWeight() / 10
	opts := tabu.DefaultOptions()
	opts.MaxIterations = 20

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tabu.Solve(cat, capacity, opts)
	}
}

// BenchmarkMemory_ForbidPurge measures the tabu memory bookkeeping alone.
func BenchmarkMemory_ForbidPurge(b *testing.B) {
	mem := tabu.NewMemory()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mem.Forbid(tabu.Swap(i%512, (i+1)%512), i+10)
		if i%64 == 0 {
			mem.Purge(i)
		}
	}
}
