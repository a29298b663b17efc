package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Plot size.
const (
	plotWidth  = 14 * vg.Inch
	plotHeight = 6 * vg.Inch
)

// WritePNG plots every dimension of c to path. The image format follows the
// file extension.
func WritePNG(c *Comparison, path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Value"

	dim := c.Dim()
	for d := range dim {
		col := plotutil.Color(d)

		dense, err := plotter.NewLine(xys(c.Times, c.Samples, d))
		if err != nil {
			return fmt.Errorf("samples dim %d: %w", d, err)
		}
		dense.Color = col
		dense.Width = vg.Points(1)
		dense.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(dense)
		p.Legend.Add(seriesName("samples", d, dim), dense)

		reduced, err := plotter.NewLine(xys(c.Times, c.Reduced, d))
		if err != nil {
			return fmt.Errorf("reduced dim %d: %w", d, err)
		}
		reduced.Color = col
		reduced.Width = vg.Points(1.5)
		p.Add(reduced)
		p.Legend.Add(seriesName("reduced", d, dim), reduced)

		if len(c.Keys) > 0 {
			keys, err := plotter.NewScatter(xys(c.KeyTimes, c.Keys, d))
			if err != nil {
				return fmt.Errorf("keys dim %d: %w", d, err)
			}
			keys.GlyphStyle.Color = col
			keys.GlyphStyle.Radius = vg.Points(3)
			keys.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(keys)
		}
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
