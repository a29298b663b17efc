package controlpoint

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tphakala/go-keyreduce/internal/curve"
	"github.com/tphakala/go-keyreduce/internal/vec"
)

// SourceKey is a key of a dense source track, optionally carrying the
// track's own arrive and leave tangents.
type SourceKey struct {
	Time          float32
	Value         vec.Vec
	ArriveTangent vec.Vec
	LeaveTangent  vec.Vec
	Mode          curve.Mode
	HasTangents   bool
}

// FromKeys builds a table from source keys sorted by time. CurveBreak keys get
// their smoothness flags from their tangents; without tangents every
// dimension of a break key is broken.
func FromKeys(keys []SourceKey, r float32) (*Table, error) {
	points := make([]ControlPoint, len(keys))
	for i, k := range keys {
		points[i] = ControlPoint{Time: k.Time, Value: k.Value, Mode: k.Mode}
		if k.Mode == curve.CurveBreak && k.HasTangents {
			points[i].Smooth = SmoothFlags(k.ArriveTangent, k.LeaveTangent, r)
		}
	}
	return FromPoints(points)
}

// SmoothFlags marks dimension d smooth when the arrive and leave tangents
// agree within r*|arrive| + SmoothTangentSlack.
func SmoothFlags(arrive, leave vec.Vec, r float32) [vec.MaxDim]bool {
	var flags [vec.MaxDim]bool
	for d := range arrive.Dim() {
		a, l := float64(arrive.At(d)), float64(leave.At(d))
		flags[d] = math.Abs(a-l) <= float64(r)*math.Abs(a)+SmoothTangentSlack
	}
	return flags
}

// Channel is a single-dimension curve with its own key times.
type Channel interface {
	// Times returns the channel's key times.
	Times() []float32

	// Eval returns the channel's value at time t.
	Eval(t float32) float32
}

// Merge builds a table whose times are the union of every channel's key
// times, then fills dimension d by evaluating channel d at each time.
// All control points are CurveAuto.
func Merge(channels []Channel) (*Table, error) {
	if len(channels) == 0 || len(channels) > vec.MaxDim {
		return nil, fmt.Errorf("channel count %d out of range [1, %d]", len(channels), vec.MaxDim)
	}

	total := 0
	for _, ch := range channels {
		total += len(ch.Times())
	}
	if total == 0 {
		return nil, errors.New("channels have no keys")
	}

	t := NewTable(len(channels), total)
	for _, ch := range channels {
		for _, time := range ch.Times() {
			t.Insert(ControlPoint{Time: time, Value: vec.New(len(channels)), Mode: curve.CurveAuto})
		}
	}
	for d, ch := range channels {
		t.Fill(d, ch.Eval)
	}
	return t, nil
}

// LinearChannel is a piecewise-linear channel over sorted key times.
type LinearChannel struct {
	KeyTimes []float32
	Values   []float32
}

// Times implements Channel.
func (c LinearChannel) Times() []float32 { return c.KeyTimes }

// Eval implements Channel. Times outside the keyed range clamp.
func (c LinearChannel) Eval(t float32) float32 {
	n := len(c.KeyTimes)
	switch {
	case n == 0:
		return 0
	case t <= c.KeyTimes[0]:
		return c.Values[0]
	case t >= c.KeyTimes[n-1]:
		return c.Values[n-1]
	}
	i := sort.Search(n, func(i int) bool { return c.KeyTimes[i] > t }) - 1
	u := (t - c.KeyTimes[i]) / (c.KeyTimes[i+1] - c.KeyTimes[i])
	return c.Values[i] + (c.Values[i+1]-c.Values[i])*u
}

// FuncChannel evaluates a callable at explicit key times.
type FuncChannel struct {
	KeyTimes []float32
	Fn       func(float32) float32
}

// Times implements Channel.
func (c FuncChannel) Times() []float32 { return c.KeyTimes }

// Eval implements Channel.
func (c FuncChannel) Eval(t float32) float32 { return c.Fn(t) }
