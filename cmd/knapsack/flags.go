package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/knapsack/solution"
	"github.com/katalvlaran/knapsack/solver"
)

// runFlags are shared by solve and compare. Values only override the
// configuration when the flag was set explicitly.
type runFlags struct {
	input      string
	configPath string
	capacity   int64
	iterations int
	alpha      float64
	seed       int64
	restarts   int
	tenure     int
	stall      int
	refSet     int
	verify     bool
	verbose    bool
	metrics    string
}

func (f *runFlags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.input, "input", "i", "", "catalog file (.csv or .parquet)")
	fs.StringVar(&f.configPath, "config", "", "YAML solver configuration")
	fs.Int64VarP(&f.capacity, "capacity", "c", 0, "knapsack capacity (> 0)")
	fs.IntVarP(&f.iterations, "iterations", "n", 0, "iteration limit of the selected algorithm (GRASP: restarts)")
	fs.Float64Var(&f.alpha, "alpha", 0, "GRASP restricted candidate list parameter in [0,1]")
	fs.Int64Var(&f.seed, "seed", 0, "random seed for GRASP and scatter search (0 = default)")
	fs.IntVar(&f.restarts, "restarts", 0, "GRASP restarts")
	fs.IntVar(&f.tenure, "tenure", 0, "tabu tenure in iterations")
	fs.IntVar(&f.stall, "stall", 0, "tabu/scatter iterations without improvement before stopping (0 = never)")
	fs.IntVar(&f.refSet, "refset", 0, "scatter search reference set size")
	fs.BoolVar(&f.verify, "verify", false, "recompute totals of the result and check feasibility")
	fs.BoolVar(&f.verbose, "verbose", false, "log per-iteration progress")
	fs.StringVar(&f.metrics, "metrics-textfile", "", "write Prometheus metrics of the run(s) to this file")
	_ = cobra.MarkFlagRequired(fs, "input")
}

// config builds the solver configuration: defaults, then the YAML file,
// then explicitly set flags.
func (f *runFlags) config(fs *pflag.FlagSet) (solver.Config, error) {
	cfg := solver.DefaultConfig()
	if f.configPath != "" {
		var err error
		if cfg, err = solver.LoadConfig(f.configPath); err != nil {
			return solver.Config{}, err
		}
		klog.V(2).InfoS("Loaded configuration", "path", f.configPath, "algorithm", cfg.Algorithm)
	}

	if fs.Changed("capacity") {
		cfg.Capacity = f.capacity
	}
	if fs.Changed("iterations") {
		cfg.LocalSearch.MaxIterations = f.iterations
		cfg.GRASP.Restarts = f.iterations
		cfg.Tabu.MaxIterations = f.iterations
		cfg.Scatter.MaxIterations = f.iterations
	}
	if fs.Changed("alpha") {
		if err := solution.UnitInterval("knapsack", "alpha", f.alpha); err != nil {
			return solver.Config{}, err
		}
		cfg.GRASP.Alpha = f.alpha
	}
	if fs.Changed("seed") {
		cfg.GRASP.Seed = f.seed
		cfg.Scatter.Seed = f.seed
	}
	if fs.Changed("restarts") {
		cfg.GRASP.Restarts = f.restarts
	}
	if fs.Changed("tenure") {
		cfg.Tabu.Tenure = f.tenure
	}
	if fs.Changed("stall") {
		cfg.Tabu.MaxStall = f.stall
		cfg.Scatter.MaxStall = f.stall
	}
	if fs.Changed("refset") {
		cfg.Scatter.RefSetSize = f.refSet
	}
	if fs.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	return cfg, nil
}
