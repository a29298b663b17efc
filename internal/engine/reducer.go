// Package engine implements the keyframe reduction loop: seeding the output
// curve with hard keys, then repeatedly subdividing segments at their worst
// control point until every control point is within tolerance.
package engine

import (
	"fmt"

	"github.com/tphakala/go-keyreduce/internal/controlpoint"
	"github.com/tphakala/go-keyreduce/internal/curve"
	"github.com/tphakala/go-keyreduce/internal/mathutil"
	"github.com/tphakala/go-keyreduce/internal/vec"
)

// Reducer reduces one control-point table to a sparse output curve.
// A Reducer is single use.
type Reducer struct {
	table     *controlpoint.Table
	values    []vec.Vec
	tolerance vec.Vec
	out       *curve.Curve
	queue     *SegmentQueue

	iterations int
	promoted   int
}

// NewReducer prepares a reduction of table with relative tolerance r.
// The table must be non-empty and r must lie in (0, 1]; both are checked by
// the public API before reaching here.
func NewReducer(table *controlpoint.Table, r float32) *Reducer {
	if table.Len() == 0 {
		panic("engine: empty control-point table")
	}
	if !(r > 0 && r <= 1) {
		panic(fmt.Sprintf("engine: relative tolerance %v out of range (0, 1]", r))
	}
	values := table.Values()
	return &Reducer{
		table:     table,
		values:    values,
		tolerance: mathutil.Tolerance(values, r, mathutil.DefaultToleranceFloor),
		out:       curve.New(table.Len()),
		queue:     NewSegmentQueue(table.Len()),
	}
}

// Tolerance returns the per-dimension error bound of this reduction.
func (r *Reducer) Tolerance() vec.Vec { return r.tolerance }

// Reduce runs the reduction and returns the output curve with its statistics.
func Reduce(table *controlpoint.Table, relTolerance float32) (*curve.Curve, Stats) {
	r := NewReducer(table, relTolerance)
	out := r.Run()
	return out, r.Stats()
}

// Run seeds the output curve, then drains the segment queue.
func (r *Reducer) Run() *curve.Curve {
	r.seed()
	r.out.RecomputeAll()

	for {
		seg, ok := r.queue.Pop()
		if !ok {
			break
		}
		r.iterations++
		if seg.End >= r.table.Len() || seg.Start < 0 {
			panic(fmt.Sprintf("engine: segment %v outside table of %d points", seg, r.table.Len()))
		}
		if seg.Span() < minSegmentSpan {
			continue
		}
		if worst := r.worstPoint(seg); worst >= 0 {
			r.promote(worst, seg)
		}
	}
	return r.out
}

// seed emits every hard key plus the first and last control points, and
// queues the runs of smooth points between consecutive emitted keys.
func (r *Reducer) seed() {
	last := r.table.Len() - 1
	prev := -1
	for i := range r.table.Len() {
		cp := r.table.At(i)
		if !cp.Mode.IsHard() && i != 0 && i != last {
			continue
		}
		r.out.Append(r.key(i, cp.Mode))
		if prev >= 0 {
			r.queue.Push(Segment{Start: prev, End: i})
		}
		prev = i
	}
}

// worstPoint returns the interior control point of seg with the highest
// error*margin score, or -1 when every interior point is within tolerance.
// Ties keep the earliest index.
func (r *Reducer) worstPoint(seg Segment) int {
	startTime, endTime := r.table.Time(seg.Start), r.table.Time(seg.End)
	worst := -1
	var worstScore float32
	for i := seg.Start + 1; i < seg.End; i++ {
		t := r.table.Time(i)
		err := mathutil.MaskedNorm(r.values[i].Sub(r.out.Eval(t)), r.tolerance)
		if err == 0 {
			continue
		}
		margin := min(t-startTime, endTime-t)
		if score := err * margin; score > worstScore {
			worst, worstScore = i, score
		}
	}
	return worst
}

// promote inserts control point i into the output curve, refreshes the
// tangents around it and queues the segments whose error may have changed.
func (r *Reducer) promote(i int, seg Segment) {
	mode := curve.CurveUser
	if r.table.At(i).Mode == curve.CurveBreak {
		mode = curve.CurveBreak
	}
	pos := r.out.Insert(r.key(i, mode))
	r.promoted++

	before := [2]curve.Key{r.keyAt(pos - 1), r.keyAt(pos + 1)}
	for j := pos - 1; j <= pos+1; j++ {
		if j >= 0 && j < r.out.Len() {
			r.out.RecomputeTangents(j)
		}
	}

	r.queue.Push(Segment{Start: seg.Start, End: i})
	r.queue.Push(Segment{Start: i, End: seg.End})

	// A neighbour whose tangents moved also reshapes the segment on its far
	// side, which may have been accepted against the old tangents.
	for n, pair := range [2][2]int{{pos - 1, pos - 2}, {pos + 1, pos + 2}} {
		j, outer := pair[0], pair[1]
		if outer < 0 || outer >= r.out.Len() || sameTangents(before[n], r.out.Key(j)) {
			continue
		}
		a, b := r.out.Key(outer).Source, r.out.Key(j).Source
		r.queue.Push(Segment{Start: min(a, b), End: max(a, b)})
	}
}

func (r *Reducer) key(i int, mode curve.Mode) curve.Key {
	cp := r.table.At(i)
	k := curve.NewKey(cp.Time, cp.Value, mode)
	k.Smooth = cp.Smooth
	k.Source = i
	return k
}

func (r *Reducer) keyAt(pos int) curve.Key {
	if pos < 0 || pos >= r.out.Len() {
		return curve.Key{}
	}
	return r.out.Key(pos)
}

func sameTangents(a, b curve.Key) bool {
	return a.ArriveTangent == b.ArriveTangent && a.LeaveTangent == b.LeaveTangent
}
