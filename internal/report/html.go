package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteHTML renders c as an interactive page: one line chart comparing the
// samples with the reduced curve, and one scatter chart of the kept keys.
func WriteHTML(c *Comparison, w io.Writer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	dim := c.Dim()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: c.Title, Width: "1200px", Height: "540px"}),
		charts.WithTitleOpts(opts.Title{Title: c.Title, Subtitle: fmt.Sprintf("samples=%d keys=%d", len(c.Times), len(c.KeyTimes))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Time (s)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Value"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	for d := range dim {
		line.AddSeries(seriesName("samples", d, dim), lineData(c.Times, c.Samples, d))
		line.AddSeries(seriesName("reduced", d, dim), lineData(c.Times, c.Reduced, d))
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{Title: "Keys"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Time (s)", NameLocation: "middle", NameGap: 25}),
	)
	for d := range dim {
		points := make([]opts.ScatterData, len(c.KeyTimes))
		for i, t := range c.KeyTimes {
			points[i] = opts.ScatterData{Value: []interface{}{t, c.Keys[i].At(d)}}
		}
		scatter.AddSeries(seriesName("keys", d, dim), points, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	}

	page := components.NewPage()
	page.AddCharts(line, scatter)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
