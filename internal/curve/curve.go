// Package curve holds the output side of keyframe reduction: interpolation
// modes, keys with arrive/leave tangents, evaluation of a partially built
// curve, and tangent recomputation.
package curve

import (
	"fmt"
	"sort"

	"github.com/tphakala/go-keyreduce/internal/mathutil"
	"github.com/tphakala/go-keyreduce/internal/vec"
)

// Key is one keyframe of an output curve.
type Key struct {
	Time          float32
	Value         vec.Vec
	ArriveTangent vec.Vec
	LeaveTangent  vec.Vec
	Mode          Mode

	// Smooth holds the per-dimension smoothness flags consulted for
	// CurveBreak keys.
	Smooth [vec.MaxDim]bool

	// Source is the index of the control point this key was taken from,
	// or -1 when the key did not come from a control-point table.
	Source int
}

// NewKey returns a key with zero tangents of the value's dimension.
func NewKey(t float32, value vec.Vec, mode Mode) Key {
	return Key{
		Time:          t,
		Value:         value,
		ArriveTangent: vec.New(value.Dim()),
		LeaveTangent:  vec.New(value.Dim()),
		Mode:          mode,
		Source:        -1,
	}
}

// Curve is an ordered list of keys with strictly increasing times.
type Curve struct {
	keys []Key
}

// New creates an empty curve with room for capacity keys.
func New(capacity int) *Curve {
	return &Curve{keys: make([]Key, 0, capacity)}
}

// FromKeys creates a curve over a copy of keys. Keys must be strictly
// increasing in time.
func FromKeys(keys []Key) *Curve {
	c := New(len(keys))
	for _, k := range keys {
		c.Append(k)
	}
	return c
}

// Len returns the number of keys.
func (c *Curve) Len() int { return len(c.keys) }

// Key returns key i.
func (c *Curve) Key(i int) Key { return c.keys[i] }

// Keys returns a copy of all keys.
func (c *Curve) Keys() []Key {
	out := make([]Key, len(c.keys))
	copy(out, c.keys)
	return out
}

// Append adds k after the last key. It panics if k does not come strictly
// after the current last key.
func (c *Curve) Append(k Key) {
	if n := len(c.keys); n > 0 && k.Time <= c.keys[n-1].Time {
		panic(fmt.Sprintf("curve: appended key time %v not after %v", k.Time, c.keys[n-1].Time))
	}
	c.keys = append(c.keys, k)
}

// Insert places k at its sorted position and returns that position.
// It panics if a key with the same time already exists.
func (c *Curve) Insert(k Key) int {
	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i].Time >= k.Time })
	if i < len(c.keys) && c.keys[i].Time == k.Time {
		panic(fmt.Sprintf("curve: duplicate key time %v", k.Time))
	}
	c.keys = append(c.keys, Key{})
	copy(c.keys[i+1:], c.keys[i:])
	c.keys[i] = k
	return i
}

// Segment returns the index of the key that starts the segment containing t:
// the last key whose time is <= t. Times before the first key map to 0.
func (c *Curve) Segment(t float32) int {
	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i].Time > t })
	return max(i-1, 0)
}

// Eval evaluates the curve at time t. Times outside the keyed range clamp to
// the first or last value. It panics on an empty curve.
func (c *Curve) Eval(t float32) vec.Vec {
	n := len(c.keys)
	if n == 0 {
		panic("curve: Eval on empty curve")
	}
	if t <= c.keys[0].Time {
		return c.keys[0].Value
	}
	if t >= c.keys[n-1].Time {
		return c.keys[n-1].Value
	}

	i := c.Segment(t)
	k0, k1 := &c.keys[i], &c.keys[i+1]
	dt := k1.Time - k0.Time
	u := (t - k0.Time) / dt

	switch k0.Mode {
	case Constant:
		return k0.Value
	case Linear:
		return mathutil.Lerp(k0.Value, k1.Value, u)
	default:
		return mathutil.Hermite(k0.Value, k0.LeaveTangent, k1.Value, k1.ArriveTangent, u, dt)
	}
}
