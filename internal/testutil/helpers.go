// Package testutil provides reusable test helpers for keyframe reduction tests.
package testutil

import (
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-keyreduce/internal/vec"
)

// toleranceSlack absorbs float32 rounding in Hermite reconstruction when
// comparing errors against a tolerance.
const toleranceSlack = 1.001

// VecEqual is a cmp option comparing vectors by exact value.
var VecEqual = cmp.Comparer(func(a, b vec.Vec) bool { return a == b })

// TB is the subset of testing.TB the assertion helpers need.
type TB interface {
	assert.TestingT
	Helper()
}

// AssertStrictlyIncreasing verifies that times are strictly increasing.
func AssertStrictlyIncreasing(t TB, times []float32, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return assert.Fail(t, fmt.Sprintf("not strictly increasing: times[%d]=%v <= times[%d]=%v",
				i, times[i], i-1, times[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertWithinTolerance verifies that got differs from want by at most
// tolerance on every dimension.
func AssertWithinTolerance(t TB, want, got, tolerance vec.Vec, msgAndArgs ...any) bool {
	t.Helper()
	if want.Dim() != got.Dim() {
		return assert.Fail(t, fmt.Sprintf("dimension mismatch: want %d, got %d", want.Dim(), got.Dim()), msgAndArgs...)
	}
	for d := range want.Dim() {
		diff := math.Abs(float64(want.At(d)) - float64(got.At(d)))
		if diff > float64(tolerance.At(d))*toleranceSlack {
			return assert.Fail(t, fmt.Sprintf("error exceeds tolerance: dim %d: want %v, got %v, error %v > tolerance %v",
				d, want.At(d), got.At(d), diff, tolerance.At(d)), msgAndArgs...)
		}
	}
	return true
}

// AssertFinite verifies that no vector holds NaN or Inf.
func AssertFinite(t TB, values []vec.Vec, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range values {
		if !v.IsFinite() {
			return assert.Fail(t, fmt.Sprintf("non-finite value: values[%d]=%v", i, v), msgAndArgs...)
		}
	}
	return true
}

// AssertInRange verifies that a count is within [minVal, maxVal].
func AssertInRange(t TB, value, minVal, maxVal int, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, fmt.Sprintf("value %d is outside range [%d, %d]", value, minVal, maxVal), msgAndArgs...)
	}
	return true
}

// Grid returns n times spaced step apart starting at zero.
func Grid(n int, step float32) []float32 {
	times := make([]float32, n)
	for i := range times {
		times[i] = float32(i) * step
	}
	return times
}

// NoisyWave samples a deterministic curve with several extrema and an uneven
// slope at n evenly spaced times over [0, 1].
func NoisyWave(n int) (times, values []float32) {
	return NoisyWaveOver(n, 1)
}

// NoisyWaveOver is NoisyWave stretched over [0, duration].
func NoisyWaveOver(n int, duration float32) (times, values []float32) {
	times = Grid(n, duration/float32(n-1))
	values = make([]float32, n)
	for i, tm := range times {
		x := float64(tm / duration)
		values[i] = float32(math.Sin(7*x) + 0.3*math.Sin(23*x) + 0.05*math.Cos(61*x))
	}
	return times, values
}
