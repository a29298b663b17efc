package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-keyreduce/internal/vec"
)

func TestHelpersPass(t *testing.T) {
	assert.True(t, AssertStrictlyIncreasing(t, []float32{0, 0.5, 1}))
	assert.True(t, AssertWithinTolerance(t, vec.Of(1, 2), vec.Of(1.05, 1.9), vec.Of(0.1, 0.1)))
	assert.True(t, AssertFinite(t, []vec.Vec{vec.Of(1), vec.Of(-3)}))
	assert.True(t, AssertInRange(t, 5, 4, 8))
}

// recorder captures assertion failures instead of failing the test.
type recorder struct {
	failures []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func (r *recorder) Helper() {}

func TestHelpersFailWithContext(t *testing.T) {
	tests := []struct {
		name   string
		assert func(TB) bool
		want   string
	}{
		{"increasing", func(tb TB) bool {
			return AssertStrictlyIncreasing(tb, []float32{0, 1, 1}, "track %s", "hips")
		}, "times[2]=1 <= times[1]=1"},
		{"tolerance", func(tb TB) bool {
			return AssertWithinTolerance(tb, vec.Of(1), vec.Of(2), vec.Of(0.1), "track %s", "hips")
		}, "error exceeds tolerance"},
		{"dimension", func(tb TB) bool {
			return AssertWithinTolerance(tb, vec.Of(1), vec.Of(1, 2), vec.Of(0.1), "track %s", "hips")
		}, "dimension mismatch"},
		{"finite", func(tb TB) bool {
			return AssertFinite(tb, []vec.Vec{vec.Of(float32(math.NaN()))}, "track %s", "hips")
		}, "non-finite value"},
		{"range", func(tb TB) bool {
			return AssertInRange(tb, 9, 4, 8, "track %s", "hips")
		}, "outside range [4, 8]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			assert.False(t, tt.assert(rec))
			if assert.Len(t, rec.failures, 1) {
				assert.Contains(t, rec.failures[0], tt.want)
				assert.Contains(t, rec.failures[0], "track hips")
			}
		})
	}
}

func TestNoisyWaveOver(t *testing.T) {
	times, values := NoisyWaveOver(101, 20)
	_, unit := NoisyWave(101)
	assert.InDelta(t, 20, times[100], 1e-4)
	assert.InDelta(t, 0.2, times[1], 1e-6)
	for i := range values {
		assert.InDelta(t, unit[i], values[i], 1e-5)
	}
}

func TestNoisyWave(t *testing.T) {
	times, values := NoisyWave(101)
	assert.Len(t, values, 101)
	assert.Zero(t, times[0])
	assert.InDelta(t, 1, times[100], 1e-5)
	AssertStrictlyIncreasing(t, times)
}

func TestVecEqual(t *testing.T) {
	assert.True(t, cmp.Equal(vec.Of(1, 2), vec.Of(1, 2), VecEqual))
	assert.False(t, cmp.Equal(vec.Of(1, 2), vec.Of(1, 3), VecEqual))
}
