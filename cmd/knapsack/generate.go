package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/generator"
)

func newGenerateCommand() *cobra.Command {
	var (
		kind       string
		output     string
		items      int
		seed       int64
		wMin, wMax int64
		bMin, bMax int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated instance to a CSV or Parquet file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				cat *catalog.Catalog
				err error
			)
			switch kind {
			case "hard":
				cat, err = generator.Hard(items, generator.WithSeed(seed))
			case "uniform":
				cat, err = generator.Uniform(items, wMin, wMax, bMin, bMax, generator.WithSeed(seed))
			default:
				return fmt.Errorf("unknown instance kind %q (want hard or uniform)", kind)
			}
			if err != nil {
				return err
			}
			if err = saveCatalog(output, cat); err != nil {
				return err
			}

			klog.InfoS("Generated instance", "kind", kind, "items", cat.Len(), "path", output)
			fmt.Fprintf(cmd.OutOrStdout(), "%d items, total weight %d -> %s\n", cat.Len(), cat.TotalWeight(), output)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&kind, "kind", "hard", "hard or uniform")
	fs.StringVarP(&output, "output", "o", "", "destination file (.csv or .parquet)")
	fs.IntVarP(&items, "items", "n", 10000, "number of items")
	fs.Int64Var(&seed, "seed", 1, "random seed")
	fs.Int64Var(&wMin, "weight-min", 1, "uniform: smallest weight")
	fs.Int64Var(&wMax, "weight-max", 100, "uniform: largest weight")
	fs.Int64Var(&bMin, "benefit-min", 0, "uniform: smallest benefit")
	fs.Int64Var(&bMax, "benefit-max", 100, "uniform: largest benefit")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
