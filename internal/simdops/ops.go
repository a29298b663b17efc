// Package simdops wraps the tphakala/simd kernels used by curve arithmetic
// and error statistics. Vec components are float32; error accumulators are
// float64.
package simdops

import (
	"math"

	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops is a table of vector kernels for one precision.
type Ops[F Float] struct {
	// Dot computes the dot product without bounds checking. Both slices
	// must have the same length.
	Dot func(a, b []F) F

	// Scale sets dst[i] = a[i] * s.
	Scale func(dst, a []F, s F)
}

var (
	float32Ops = Ops[float32]{Dot: f32.DotProductUnsafe, Scale: f32.Scale}
	float64Ops = Ops[float64]{Dot: f64.DotProductUnsafe, Scale: f64.Scale}
)

// Float32Ops returns the kernels for Vec components.
func Float32Ops() *Ops[float32] { return &float32Ops }

// Float64Ops returns the kernels for error accumulation.
func Float64Ops() *Ops[float64] { return &float64Ops }

// SumSquares returns the sum of a[i]².
func (o *Ops[F]) SumSquares(a []F) F {
	return o.Dot(a, a)
}

// RMS returns the root mean square of a, or 0 for an empty slice.
func (o *Ops[F]) RMS(a []F) float64 {
	if len(a) == 0 {
		return 0
	}
	return math.Sqrt(float64(o.SumSquares(a)) / float64(len(a)))
}
