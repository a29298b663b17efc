package report

import (
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot/plotter"

	"github.com/tphakala/go-keyreduce/internal/vec"
)

func xys(times []float32, values []vec.Vec, d int) plotter.XYs {
	pts := make(plotter.XYs, len(times))
	for i, t := range times {
		pts[i] = plotter.XY{X: float64(t), Y: float64(values[i].At(d))}
	}
	return pts
}

func lineData(times []float32, values []vec.Vec, d int) []opts.LineData {
	data := make([]opts.LineData, len(times))
	for i, t := range times {
		data[i] = opts.LineData{Value: []interface{}{t, values[i].At(d)}}
	}
	return data
}
