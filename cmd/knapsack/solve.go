package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/report"
	"github.com/katalvlaran/knapsack/solution"
	"github.com/katalvlaran/knapsack/solver"
)

func newSolveCommand() *cobra.Command {
	var (
		flags     runFlags
		algorithm string
		plotPath  string
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one instance with one algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.config(cmd.Flags())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("algorithm") {
				if cfg.Algorithm, err = solver.ParseAlgorithm(algorithm); err != nil {
					return err
				}
			}

			cat, err := loadCatalog(flags.input)
			if err != nil {
				return err
			}

			var rec report.Recorder
			if plotPath != "" {
				cfg.OnIteration = rec.Hook()
			}

			run, err := solveOnce(cat, cfg, flags.verify)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err = enc.Encode(run.Result); err != nil {
					return err
				}
			} else {
				printRun(cmd.OutOrStdout(), run)
			}

			switch {
			case plotPath == "":
			case len(rec.Points()) == 0:
				klog.InfoS("No iterations recorded, skipping chart", "algorithm", cfg.Algorithm)
			default:
				if err = report.SavePlot(plotPath, fmt.Sprintf("%s convergence", cfg.Algorithm), rec.Points()); err != nil {
					return err
				}
				klog.InfoS("Wrote convergence chart", "path", plotPath, "points", len(rec.Points()))
			}
			if flags.metrics != "" {
				if err = report.WriteMetrics(flags.metrics, run); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags.bind(cmd.Flags())
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(solver.Local), "greedy, local, grasp, tabu or scatter")
	cmd.Flags().StringVar(&plotPath, "plot", "", "write an HTML convergence chart to this file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

// solveOnce runs cfg.Algorithm on cat and times it.
func solveOnce(cat *catalog.Catalog, cfg solver.Config, verify bool) (report.Run, error) {
	start := time.Now()
	res, err := solver.Solve(cat, cfg.Capacity, cfg)
	if err != nil {
		return report.Run{}, err
	}
	run := report.Run{
		Algorithm: string(cfg.Algorithm),
		Capacity:  cfg.Capacity,
		Result:    res,
		Duration:  time.Since(start),
	}
	klog.V(1).InfoS("Solved", "algorithm", run.Algorithm, "benefit", res.Benefit, "weight", res.Weight, "elapsed", run.Duration)

	if verify {
		if err = solution.Verify(cat, cfg.Capacity, res); err != nil {
			return report.Run{}, err
		}
	}
	return run, nil
}

func printRun(w io.Writer, run report.Run) {
	res := run.Result
	fmt.Fprintf(w, "algorithm:   %s\n", run.Algorithm)
	fmt.Fprintf(w, "selected:    %d items %v\n", len(res.SelectedIDs), res.SelectedIDs)
	fmt.Fprintf(w, "weight:      %d / %d\n", res.Weight, run.Capacity)
	fmt.Fprintf(w, "benefit:     %d\n", res.Benefit)
	fmt.Fprintf(w, "iterations:  %d\n", res.Iterations)
	fmt.Fprintf(w, "improvement: %d\n", res.Improvement)
	fmt.Fprintf(w, "elapsed:     %s\n", run.Duration)
}
