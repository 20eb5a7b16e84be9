package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/report"
	"github.com/katalvlaran/knapsack/solution"
)

func TestRecorder(t *testing.T) {
	var rec report.Recorder
	hook := rec.Hook()
	hook(1, 10, 10)
	hook(2, 8, 10)

	assert.Equal(t, []report.Point{
		{Iteration: 1, Current: 10, Best: 10},
		{Iteration: 2, Current: 8, Best: 10},
	}, rec.Points())
}

func TestPlotConvergence(t *testing.T) {
	var buf bytes.Buffer
	err := report.PlotConvergence(&buf, "tabu convergence", []report.Point{
		{Iteration: 1, Current: 10, Best: 10},
		{Iteration: 2, Current: 12, Best: 12},
	})
	require.NoError(t, err)
	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "tabu convergence")

	assert.ErrorIs(t, report.PlotConvergence(&buf, "empty", nil), report.ErrNoData)
}

func TestSavePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.html")
	require.NoError(t, report.SavePlot(path, "x", []report.Point{{Iteration: 1, Current: 1, Best: 1}}))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRegistryAndWriteMetrics(t *testing.T) {
	runs := []report.Run{
		{
			Algorithm: "tabu",
			Capacity:  50,
			Result:    solution.Result{SelectedIDs: []uint32{2, 3}, Weight: 50, Benefit: 220, Iterations: 4, Improvement: 60},
			Duration:  1500 * time.Millisecond,
		},
		{
			Algorithm: "greedy",
			Capacity:  50,
			Result:    solution.Result{SelectedIDs: []uint32{1, 2}, Weight: 30, Benefit: 160},
		},
	}

	n, err := testutil.GatherAndCount(report.Registry(runs...), "knapsack_benefit")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	path := filepath.Join(t.TempDir(), "knapsack.prom")
	require.NoError(t, report.WriteMetrics(path, runs...))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `knapsack_benefit{algorithm="tabu"} 220`)
	assert.Contains(t, text, `knapsack_benefit{algorithm="greedy"} 160`)
	assert.Contains(t, text, `knapsack_selected_items{algorithm="tabu"} 2`)
	assert.Contains(t, text, `knapsack_duration_seconds{algorithm="tabu"} 1.5`)
	assert.Contains(t, text, "# HELP knapsack_improvement")
}
