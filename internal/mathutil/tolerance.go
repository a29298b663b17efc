package mathutil

import (
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-keyreduce/internal/vec"
)

// Column extracts dimension d of every value as float64.
func Column(values []vec.Vec, d int) []float64 {
	col := make([]float64, len(values))
	for i, v := range values {
		col[i] = float64(v.At(d))
	}
	return col
}

// Range returns the per-dimension minimum and maximum of values.
// values must be non-empty and share one dimension.
func Range(values []vec.Vec) (lo, hi vec.Vec) {
	dim := values[0].Dim()
	lo, hi = vec.New(dim), vec.New(dim)
	for d := range dim {
		col := Column(values, d)
		lo.Set(d, float32(floats.Min(col)))
		hi.Set(d, float32(floats.Max(col)))
	}
	return lo, hi
}

// Tolerance computes the per-dimension error bound
//
//	tolerance[d] = max(r * (max[d] - min[d]), floor)
//
// from the observed range of values.
func Tolerance(values []vec.Vec, r, floor float32) vec.Vec {
	lo, hi := Range(values)
	tol := hi.Sub(lo).Scale(r)
	return tol.Max(vec.Splat(tol.Dim(), floor))
}

// Span returns n times evenly spaced over [start, end].
// A single time is returned for n == 1.
func Span(start, end float32, n int) []float32 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float32{start}
	}
	grid := floats.Span(make([]float64, n), float64(start), float64(end))
	times := make([]float32, n)
	for i, t := range grid {
		times[i] = float32(t)
	}
	return times
}
