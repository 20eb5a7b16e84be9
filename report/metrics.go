package report

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/knapsack/solution"
)

const namespace = "knapsack"

// Run is one finished solver invocation.
type Run struct {
	Algorithm string
	Capacity  int64
	Result    solution.Result
	Duration  time.Duration
}

// Registry returns a registry holding one gauge sample per run and metric,
// labelled by algorithm. Runs with the same algorithm overwrite each other.
func Registry(runs ...Run) *prometheus.Registry {
	var (
		reg    = prometheus.NewRegistry()
		labels = []string{"algorithm"}
		gauge  = func(name, help string) *prometheus.GaugeVec {
			g := prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help}, labels)
			reg.MustRegister(g)
			return g
		}
		benefit     = gauge("benefit", "Total benefit of the selection.")
		weight      = gauge("weight", "Total weight of the selection.")
		capacity    = gauge("capacity", "Knapsack capacity.")
		selected    = gauge("selected_items", "Number of selected items.")
		iterations  = gauge("iterations", "Iterations executed by the driver.")
		improvement = gauge("improvement", "Benefit gained over the driver's starting point.")
		duration    = gauge("duration_seconds", "Wall-clock time of the run.")
	)
	for _, r := range runs {
		benefit.WithLabelValues(r.Algorithm).Set(float64(r.Result.Benefit))
		weight.WithLabelValues(r.Algorithm).Set(float64(r.Result.Weight))
		capacity.WithLabelValues(r.Algorithm).Set(float64(r.Capacity))
		selected.WithLabelValues(r.Algorithm).Set(float64(len(r.Result.SelectedIDs)))
		iterations.WithLabelValues(r.Algorithm).Set(float64(r.Result.Iterations))
		improvement.WithLabelValues(r.Algorithm).Set(float64(r.Result.Improvement))
		duration.WithLabelValues(r.Algorithm).Set(r.Duration.Seconds())
	}
	return reg
}

// WriteMetrics writes the runs to path in the Prometheus text format.
func WriteMetrics(path string, runs ...Run) error {
	return prometheus.WriteToTextfile(path, Registry(runs...))
}
