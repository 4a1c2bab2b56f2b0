// Package costplot draws the running total cost of a solver trace, one point
// per step, so a reader can see where a heuristic spends its cost.
package costplot

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/transportation/trace"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoSteps is returned when there is nothing to draw.
var ErrNoSteps = errors.New("costplot: trace has no steps")

// Default image size.
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

// Points returns (step index, cost so far) for every step. Allocation steps
// add quantity·cost; a Hungarian trace reports its total on the final assign
// step and 0 before it.
func Points(steps []trace.Step) plotter.XYs {
	pts := make(plotter.XYs, len(steps))
	for k, st := range steps {
		pts[k].X = float64(st.Index)
		pts[k].Y = trace.CostAt(steps, k+1)
		if total, ok := st.Info.Float(trace.KeyTotalCost); ok && st.Kind == trace.KindAssign {
			pts[k].Y = total
		}
	}

	return pts
}

// New builds the plot for steps titled with title.
func New(steps []trace.Step, title string) (*plot.Plot, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "step"
	p.Y.Label.Text = "total cost"

	line, points, err := plotter.NewLinePoints(Points(steps))
	if err != nil {
		return nil, fmt.Errorf("costplot: %w", err)
	}
	p.Add(plotter.NewGrid(), line, points)

	return p, nil
}

// Save renders steps to path; the extension picks the format (.png, .svg, .pdf).
func Save(steps []trace.Step, title, path string) error {
	p, err := New(steps, title)
	if err != nil {
		return err
	}
	if err = p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("costplot: save %s: %w", path, err)
	}

	return nil
}
