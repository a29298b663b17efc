package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-keyreduce/internal/vec"
)

func scalarCurve(mode Mode, times, values []float32) *Curve {
	c := New(len(times))
	for i := range times {
		c.Append(NewKey(times[i], vec.Of(values[i]), mode))
	}
	return c
}

func TestAppendRequiresIncreasingTime(t *testing.T) {
	c := New(2)
	c.Append(NewKey(1, vec.Of(0), CurveAuto))
	assert.Panics(t, func() { c.Append(NewKey(1, vec.Of(0), CurveAuto)) })
	assert.Panics(t, func() { c.Append(NewKey(0.5, vec.Of(0), CurveAuto)) })
}

func TestInsertKeepsOrder(t *testing.T) {
	c := scalarCurve(CurveAuto, []float32{0, 1, 2}, []float32{0, 0, 0})

	assert.Equal(t, 1, c.Insert(NewKey(0.5, vec.Of(1), CurveUser)))
	assert.Equal(t, 4, c.Insert(NewKey(3, vec.Of(1), CurveUser)))
	assert.Equal(t, 0, c.Insert(NewKey(-1, vec.Of(1), CurveUser)))

	require.Equal(t, 6, c.Len())
	for i := 1; i < c.Len(); i++ {
		assert.Less(t, c.Key(i-1).Time, c.Key(i).Time)
	}
	assert.Panics(t, func() { c.Insert(NewKey(1, vec.Of(0), CurveUser)) })
}

func TestSegment(t *testing.T) {
	c := scalarCurve(CurveAuto, []float32{0, 1, 2, 3}, []float32{0, 0, 0, 0})
	assert.Equal(t, 0, c.Segment(-5))
	assert.Equal(t, 0, c.Segment(0))
	assert.Equal(t, 0, c.Segment(0.99))
	assert.Equal(t, 1, c.Segment(1))
	assert.Equal(t, 2, c.Segment(2.5))
	assert.Equal(t, 3, c.Segment(3))
}

func TestEvalModes(t *testing.T) {
	times := []float32{0, 1}
	values := []float32{2, 4}

	constant := scalarCurve(Constant, times, values)
	assert.Equal(t, vec.Of(2), constant.Eval(0.75))

	linear := scalarCurve(Linear, times, values)
	assert.InDelta(t, 3.5, linear.Eval(0.75).At(0), 1e-6)

	smooth := scalarCurve(CurveAuto, times, values)
	smooth.RecomputeAll()
	assert.InDelta(t, 3.5, smooth.Eval(0.75).At(0), 1e-6, "two-key auto curve is a line")
}

func TestEvalClampsOutsideRange(t *testing.T) {
	c := scalarCurve(CurveAuto, []float32{1, 2}, []float32{5, 7})
	assert.Equal(t, vec.Of(5), c.Eval(0))
	assert.Equal(t, vec.Of(7), c.Eval(10))
}

func TestEvalHitsKeysExactly(t *testing.T) {
	c := scalarCurve(CurveAuto, []float32{0, 0.3, 0.7, 1}, []float32{0, 2, -1, 4})
	c.RecomputeAll()
	for i := range c.Len() {
		k := c.Key(i)
		assert.Equal(t, k.Value, c.Eval(k.Time))
	}
}

func TestEvalEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { New(0).Eval(0) })
}
