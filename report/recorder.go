package report

import "github.com/katalvlaran/knapsack/solution"

// Point is one iteration sample.
type Point struct {
	Iteration int   `json:"iteration"`
	Current   int64 `json:"current"`
	Best      int64 `json:"best"`
}

// Recorder accumulates Points. The zero value is ready to use; it is not
// safe for concurrent use.
type Recorder struct {
	points []Point
}

// Hook returns an IterationHook that appends to r.
func (r *Recorder) Hook() solution.IterationHook {
	return func(iter int, current, best int64) {
		r.points = append(r.points, Point{Iteration: iter, Current: current, Best: best})
	}
}

// Points returns the samples recorded so far.
func (r *Recorder) Points() []Point { return r.points }
