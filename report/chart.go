// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/knapsack/core"
)

// ErrNothingToPlot indicates that no result carried any trace records.
var ErrNothingToPlot = errors.New("report: nothing to plot")

// Chart size.
const (
	ChartWidth  = 6 * vg.Inch
	ChartHeight = 4 * vg.Inch
)

// Chart draws the best value per iteration of every result, one line per
// algorithm, and saves it to path. The image format follows the extension
// (.png, .svg, .pdf, ...). Results with an empty trace are skipped.
func Chart(path, title string, results ...core.Result) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Best value"
	p.Legend.Top = true
	p.Legend.Left = false
	p.Add(plotter.NewGrid())

	drawn := 0
	for i, res := range results {
		best := res.Trace.BestValues()
		if len(best) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(best))
		for it, v := range best {
			pts[it].X = float64(it)
			pts[it].Y = float64(v)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("report: %s: %w", res.Algorithm, err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		p.Add(line)
		p.Legend.Add(res.Algorithm, line)
		drawn++
	}
	if drawn == 0 {
		return ErrNothingToPlot
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("report: create directory: %w", err)
	}
	if err := p.Save(ChartWidth, ChartHeight, path); err != nil {
		return fmt.Errorf("report: save chart: %w", err)
	}

	return nil
}
