// Package vec provides the fixed-width sample vector shared by every stage of
// keyframe reduction.
//
// A curve's values are 1-D (scalar), 2-D, 3-D (position/euler) or 4-D
// (quaternion-as-euler). All of them are carried by the same [Vec] type with
// a dimension chosen at construction time, so the reducer never needs to know
// which one it is working on.
package vec

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/go-keyreduce/internal/simdops"
)

// MaxDim is the widest vector supported.
const MaxDim = 4

// Vec is a fixed-width vector of up to MaxDim float32 components.
// Components beyond Dim() are always zero, so two vectors compare equal
// with == exactly when they have the same dimension and components.
type Vec struct {
	n int
	c [MaxDim]float32
}

// New returns a zero vector of the given dimension.
// It panics if dim is outside [1, MaxDim].
func New(dim int) Vec {
	if dim < 1 || dim > MaxDim {
		panic(fmt.Sprintf("vec: dimension %d out of range [1, %d]", dim, MaxDim))
	}
	return Vec{n: dim}
}

// Of returns a vector holding the given components.
// It panics if more than MaxDim components are given or none at all.
func Of(c ...float32) Vec {
	v := New(len(c))
	copy(v.c[:], c)
	return v
}

// Splat returns a vector of the given dimension with every component set to x.
func Splat(dim int, x float32) Vec {
	v := New(dim)
	for d := range dim {
		v.c[d] = x
	}
	return v
}

// Dim returns the number of components. The zero Vec has dimension 0.
func (v Vec) Dim() int { return v.n }

// At returns component d.
func (v Vec) At(d int) float32 {
	if d < 0 || d >= v.n {
		panic(fmt.Sprintf("vec: index %d out of range for dimension %d", d, v.n))
	}
	return v.c[d]
}

// Set assigns component d.
func (v *Vec) Set(d int, x float32) {
	if d < 0 || d >= v.n {
		panic(fmt.Sprintf("vec: index %d out of range for dimension %d", d, v.n))
	}
	v.c[d] = x
}

// Slice returns a copy of the components.
func (v Vec) Slice() []float32 {
	out := make([]float32, v.n)
	copy(out, v.c[:v.n])
	return out
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	v.mustMatch(w)
	for d := range v.n {
		v.c[d] += w.c[d]
	}
	return v
}

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec {
	v.mustMatch(w)
	for d := range v.n {
		v.c[d] -= w.c[d]
	}
	return v
}

// Scale returns v * s.
func (v Vec) Scale(s float32) Vec {
	out := Vec{n: v.n}
	simdops.Float32Ops().Scale(out.c[:v.n], v.c[:v.n], s)
	return out
}

// Div returns v / s, computed componentwise so results match a plain
// IEEE-754 division on every component.
func (v Vec) Div(s float32) Vec {
	for d := range v.n {
		v.c[d] /= s
	}
	return v
}

// Abs returns the componentwise absolute value.
func (v Vec) Abs() Vec {
	for d := range v.n {
		v.c[d] = float32(math.Abs(float64(v.c[d])))
	}
	return v
}

// Dot returns the dot product of v and w.
func (v Vec) Dot(w Vec) float32 {
	v.mustMatch(w)
	return simdops.Float32Ops().Dot(v.c[:v.n], w.c[:v.n])
}

// Max returns the componentwise maximum of v and w.
func (v Vec) Max(w Vec) Vec {
	v.mustMatch(w)
	for d := range v.n {
		v.c[d] = max(v.c[d], w.c[d])
	}
	return v
}

// ApproxEqual reports whether every component of v is within tol of w.
func (v Vec) ApproxEqual(w Vec, tol float32) bool {
	if v.n != w.n {
		return false
	}
	for d := range v.n {
		if float32(math.Abs(float64(v.c[d]-w.c[d]))) > tol {
			return false
		}
	}
	return true
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec) IsFinite() bool {
	for d := range v.n {
		x := float64(v.c[d])
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// String formats the vector as (x, y, ...).
func (v Vec) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for d := range v.n {
		if d > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", v.c[d])
	}
	sb.WriteByte(')')
	return sb.String()
}

// MarshalJSON encodes the vector as a JSON array of its components.
func (v Vec) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.c[:v.n])
}

// UnmarshalJSON decodes a JSON array of 1 to MaxDim numbers.
func (v *Vec) UnmarshalJSON(data []byte) error {
	var c []float32
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	if len(c) < 1 || len(c) > MaxDim {
		return fmt.Errorf("vec: expected 1 to %d components, got %d", MaxDim, len(c))
	}
	*v = Of(c...)
	return nil
}

func (v Vec) mustMatch(w Vec) {
	if v.n != w.n {
		panic(fmt.Sprintf("vec: dimension mismatch %d != %d", v.n, w.n))
	}
}
