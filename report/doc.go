// Package report turns solver runs into artifacts: an HTML convergence chart
// (go-echarts) built from per-iteration samples, and a Prometheus textfile
// with the headline numbers of one or more runs, suitable for the node
// exporter textfile collector.
//
// A Recorder collects samples through the drivers' OnIteration hook:
//
//	var rec report.Recorder
//	cfg.OnIteration = rec.Hook()
//	res, err := solver.Solve(cat, capacity, cfg)
//	err = report.SavePlot("tabu.html", "tabu", rec.Points())
package report
