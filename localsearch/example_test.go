package localsearch_test

import (
	"fmt"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/localsearch"
)

// ExampleSolve shows a single improving swap after the greedy start:
// item 1 (benefit 60) is exchanged for item 3 (benefit 120).
func ExampleSolve() {
	cat := catalog.MustNew([]catalog.Item{
		{ID: 1, Weight: 10, Benefit: 60},
		{ID: 2, Weight: 20, Benefit: 100},
		{ID: 3, Weight: 30, Benefit: 120},
	})
	res, err := localsearch.Solve(cat, 50, localsearch.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("ids=%v weight=%d benefit=%d iterations=%d improvement=%d\n",
		res.SelectedIDs, res.Weight, res.Benefit, res.Iterations, res.Improvement)
	// Output: ids=[2 3] weight=50 benefit=220 iterations=2 improvement=60
}
