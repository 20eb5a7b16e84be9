package main

import (
	goflag "flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/knapsack/catalog"
)

func newRootCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "knapsack",
		Short:        "Heuristic solvers for the 0/1 knapsack problem",
		SilenceUsage: true,
	}
	cmd.SetOut(out)

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.AddCommand(
		newSolveCommand(),
		newCompareCommand(),
		newGenerateCommand(),
	)
	return cmd
}

// loadCatalog picks the reader from the file extension.
func loadCatalog(path string) (*catalog.Catalog, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		return catalog.LoadCSV(path)
	case ".parquet", ".pq":
		return catalog.LoadParquet(path)
	default:
		return nil, fmt.Errorf("%s: unknown catalog format %q (want .csv or .parquet)", path, ext)
	}
}

func saveCatalog(path string, c *catalog.Catalog) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		return catalog.SaveCSV(path, c)
	case ".parquet", ".pq":
		return catalog.WriteParquet(path, c)
	default:
		return fmt.Errorf("%s: unknown catalog format %q (want .csv or .parquet)", path, ext)
	}
}
