package report

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("report: no data points")

// PlotConvergence renders a line chart of current and best benefit per
// iteration as a standalone HTML page.
func PlotConvergence(w io.Writer, title string, points []Point) error {
	if len(points) == 0 {
		return fmt.Errorf("%s: %w", title, ErrNoData)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "iteration",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "benefit",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)

	var (
		xs      = make([]int, len(points))
		current = make([]opts.LineData, len(points))
		best    = make([]opts.LineData, len(points))
	)
	for i, p := range points {
		xs[i] = p.Iteration
		current[i] = opts.LineData{Value: p.Current}
		best[i] = opts.LineData{Value: p.Best}
	}

	line.SetXAxis(xs).
		AddSeries("current", current).
		AddSeries("best", best).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))

	return line.Render(w)
}

// SavePlot writes PlotConvergence output to path.
func SavePlot(path, title string, points []Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = PlotConvergence(f, title, points); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
