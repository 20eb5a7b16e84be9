package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/report"
	"github.com/katalvlaran/knapsack/solver"
)

func newCompareCommand() *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm on one instance and tabulate the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.config(cmd.Flags())
			if err != nil {
				return err
			}
			cat, err := loadCatalog(flags.input)
			if err != nil {
				return err
			}

			var runs []report.Run
			for _, a := range solver.Algorithms() {
				cfg.Algorithm = a
				run, err := solveOnce(cat, cfg, flags.verify)
				if err != nil {
					return fmt.Errorf("%s: %w", a, err)
				}
				runs = append(runs, run)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ALGORITHM\tBENEFIT\tWEIGHT\tITEMS\tITERATIONS\tIMPROVEMENT\tELAPSED")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
					r.Algorithm, r.Result.Benefit, r.Result.Weight, len(r.Result.SelectedIDs),
					r.Result.Iterations, r.Result.Improvement, r.Duration)
			}
			if err = tw.Flush(); err != nil {
				return err
			}

			if flags.metrics != "" {
				return report.WriteMetrics(flags.metrics, runs...)
			}
			return nil
		},
	}
	flags.bind(cmd.Flags())
	return cmd
}
