package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNothingToPlot is returned when no series carries any point.
var ErrNothingToPlot = errors.New("no data points to plot")

// Render builds a plot with one line per cycle for quantity q.
func Render(series []CycleSeries, q Quantity, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = q.Label()
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	drawn := 0
	for i, cs := range series {
		s := cs.Get(q)
		if !s.HasData || len(s.X) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(s.X))
		for j := range s.X {
			xys[j].X = s.X[j]
			xys[j].Y = s.Y[j]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("cycle %d: %w", cs.Cycle, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("Cycle %d", cs.Cycle), line)
		drawn++
	}

	if drawn == 0 {
		return nil, ErrNothingToPlot
	}
	return p, nil
}

// SaveChart renders series and writes the image to path. The image format
// follows the path suffix (png, svg, pdf, ...).
func SaveChart(path string, series []CycleSeries, q Quantity, title string, widthInches, heightInches float64) error {
	p, err := Render(series, q, title)
	if err != nil {
		return err
	}
	if err := p.Save(vg.Length(widthInches)*vg.Inch, vg.Length(heightInches)*vg.Inch, path); err != nil {
		return fmt.Errorf("error saving chart %s: %w", path, err)
	}
	return nil
}
