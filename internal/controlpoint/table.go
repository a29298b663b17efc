// Package controlpoint builds the candidate keyframe table consumed by the
// reducer: one control point per source key, sorted by time with duplicates
// within half a millisecond collapsed.
package controlpoint

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tphakala/go-keyreduce/internal/curve"
	"github.com/tphakala/go-keyreduce/internal/vec"
)

// ErrUnsorted is returned when control points are added out of time order.
var ErrUnsorted = errors.New("control points are not sorted by time")

// ControlPoint is a candidate keyframe.
type ControlPoint struct {
	Time  float32
	Value vec.Vec
	Mode  curve.Mode

	// Smooth holds per-dimension smoothness flags. Only CurveBreak points
	// consult them.
	Smooth [vec.MaxDim]bool
}

// Table is an ordered list of control points sharing one dimension.
type Table struct {
	dim    int
	points []ControlPoint
}

// NewTable creates an empty table for values of the given dimension.
func NewTable(dim, capacity int) *Table {
	if dim < 1 || dim > vec.MaxDim {
		panic(fmt.Sprintf("controlpoint: dimension %d out of range [1, %d]", dim, vec.MaxDim))
	}
	return &Table{dim: dim, points: make([]ControlPoint, 0, capacity)}
}

// FromPoints builds a table from points already sorted by time.
// Points closer than half a millisecond to their predecessor are dropped.
func FromPoints(points []ControlPoint) (*Table, error) {
	if len(points) == 0 {
		return nil, errors.New("no control points")
	}
	t := NewTable(points[0].Value.Dim(), len(points))
	for i, cp := range points {
		if _, err := t.Append(cp); err != nil {
			return nil, fmt.Errorf("control point %d: %w", i, err)
		}
	}
	return t, nil
}

// Len returns the number of control points.
func (t *Table) Len() int { return len(t.points) }

// Dim returns the value dimension.
func (t *Table) Dim() int { return t.dim }

// At returns control point i.
func (t *Table) At(i int) ControlPoint { return t.points[i] }

// Time returns the time of control point i.
func (t *Table) Time(i int) float32 { return t.points[i].Time }

// Points returns a copy of the control points.
func (t *Table) Points() []ControlPoint {
	out := make([]ControlPoint, len(t.points))
	copy(out, t.points)
	return out
}

// Values returns the value of every control point in order.
func (t *Table) Values() []vec.Vec {
	out := make([]vec.Vec, len(t.points))
	for i := range t.points {
		out[i] = t.points[i].Value
	}
	return out
}

// Append adds cp after the last point and returns its index. A point within
// half a millisecond of the last one is a duplicate: the existing index is
// returned and cp is discarded.
func (t *Table) Append(cp ControlPoint) (int, error) {
	t.mustMatch(cp)
	if n := len(t.points); n > 0 {
		last := t.points[n-1].Time
		if sameTime(cp.Time, last) {
			return n - 1, nil
		}
		if cp.Time < last {
			return 0, fmt.Errorf("%w: time %v before %v", ErrUnsorted, cp.Time, last)
		}
	}
	t.points = append(t.points, cp)
	return len(t.points) - 1, nil
}

// Insert places cp at its sorted position and returns the index and true.
// If a point already exists at the same time, its index is returned with
// false and the table is unchanged.
func (t *Table) Insert(cp ControlPoint) (int, bool) {
	t.mustMatch(cp)
	if i, ok := t.Lookup(cp.Time); ok {
		return i, false
	}
	i := sort.Search(len(t.points), func(i int) bool { return t.points[i].Time > cp.Time })
	t.points = append(t.points, ControlPoint{})
	copy(t.points[i+1:], t.points[i:])
	t.points[i] = cp
	return i, true
}

// Lookup returns the index of the point matching time. Tables shorter than
// BinarySearchThreshold are scanned linearly.
func (t *Table) Lookup(time float32) (int, bool) {
	if len(t.points) < BinarySearchThreshold {
		for i := range t.points {
			if sameTime(t.points[i].Time, time) {
				return i, true
			}
		}
		return -1, false
	}

	i := sort.Search(len(t.points), func(i int) bool { return t.points[i].Time >= time })
	for _, j := range [2]int{i, i - 1} {
		if j >= 0 && j < len(t.points) && sameTime(t.points[j].Time, time) {
			return j, true
		}
	}
	return -1, false
}

// Clip returns a new table holding the points whose time lies in
// [start, end], widened by the time-match window on both sides.
func (t *Table) Clip(start, end float32) *Table {
	out := NewTable(t.dim, len(t.points))
	for _, cp := range t.points {
		if cp.Time >= start-timeMatchWindow && cp.Time <= end+timeMatchWindow {
			out.points = append(out.points, cp)
		}
	}
	return out
}

// Fill sets dimension d of every point to fn evaluated at the point's time.
func (t *Table) Fill(d int, fn func(float32) float32) {
	for i := range t.points {
		t.points[i].Value.Set(d, fn(t.points[i].Time))
	}
}

func (t *Table) mustMatch(cp ControlPoint) {
	if cp.Value.Dim() != t.dim {
		panic(fmt.Sprintf("controlpoint: value dimension %d, table dimension %d", cp.Value.Dim(), t.dim))
	}
}

func sameTime(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) < timeMatchWindow
}
