package keyreduce

import (
	"fmt"

	"github.com/tphakala/go-keyreduce/internal/mathutil"
)

// ReduceScalar reduces a 1-D curve of ModeCurveAuto samples with relative
// tolerance r over its whole time range.
func ReduceScalar(times, values []float32, r float32) (*Result, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("%w: %d times but %d values", ErrInvalidInput, len(times), len(values))
	}
	samples := make([]Sample, len(times))
	for i := range times {
		samples[i] = Sample{Time: times[i], Value: NewVec(values[i]), Mode: ModeCurveAuto}
	}
	return ReduceCurve(samples, &Config{RelativeTolerance: r})
}

// ReduceFunc samples fn at n evenly spaced times over [start, end] and
// reduces the result. All samples are ModeCurveAuto.
func ReduceFunc(fn func(t float32) Vec, start, end float32, n int, cfg *Config) (*Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: sample count %d must be positive", ErrInvalidInput, n)
	}
	if n > 1 && end <= start {
		return nil, fmt.Errorf("%w: end %v must be after start %v", ErrInvalidInput, end, start)
	}

	times := mathutil.Span(start, end, n)
	samples := make([]Sample, n)
	for i, t := range times {
		samples[i] = Sample{Time: t, Value: fn(t), Mode: ModeCurveAuto}
	}
	return ReduceCurve(samples, cfg)
}

// UniformTimes returns n evenly spaced times over [start, end], as a
// sampler running at a fixed rate would produce.
func UniformTimes(start, end float32, n int) []float32 {
	return mathutil.Span(start, end, n)
}
