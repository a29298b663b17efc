// Package mathutil provides the numeric kernels of keyframe reduction:
// cubic Hermite and linear interpolation, per-dimension value ranges and the
// tolerance-restricted error norm.
package mathutil

import (
	"math"

	"github.com/tphakala/go-keyreduce/internal/vec"
)

// HermiteBasis returns the four cubic Hermite basis weights at parameter u:
//
//	h00 = 2u³ - 3u² + 1   (start value)
//	h10 = u³ - 2u² + u    (start tangent)
//	h01 = -2u³ + 3u²      (end value)
//	h11 = u³ - u²         (end tangent)
func HermiteBasis(u float32) (h00, h10, h01, h11 float32) {
	u2 := u * u
	u3 := u2 * u
	h00 = hermiteCubic2*u3 - hermiteQuad3*u2 + 1
	h10 = u3 - hermiteQuad2*u2 + u
	h01 = -hermiteCubic2*u3 + hermiteQuad3*u2
	h11 = u3 - u2
	return h00, h10, h01, h11
}

// Hermite interpolates between p0 and p1 with per-time tangents m0 and m1.
// dt is the time span of the segment; tangents are scaled by it so that u
// can run over [0, 1].
func Hermite(p0, m0, p1, m1 vec.Vec, u, dt float32) vec.Vec {
	h00, h10, h01, h11 := HermiteBasis(u)
	out := vec.New(p0.Dim())
	for d := range p0.Dim() {
		out.Set(d, h00*p0.At(d)+h10*dt*m0.At(d)+h01*p1.At(d)+h11*dt*m1.At(d))
	}
	return out
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b vec.Vec, u float32) vec.Vec {
	return a.Add(b.Sub(a).Scale(u))
}

// MaskedNorm returns the Euclidean norm of diff restricted to the dimensions
// whose magnitude exceeds the matching tolerance component. It is zero when
// every dimension is within tolerance.
func MaskedNorm(diff, tolerance vec.Vec) float32 {
	masked := vec.New(diff.Dim())
	for d := range diff.Dim() {
		if x := diff.At(d); float32(math.Abs(float64(x))) > tolerance.At(d) {
			masked.Set(d, x)
		}
	}
	return float32(math.Sqrt(float64(masked.Dot(masked))))
}
