package keyreduce

import (
	"fmt"
	"math"

	"github.com/tphakala/go-keyreduce/internal/controlpoint"
	"github.com/tphakala/go-keyreduce/internal/curve"
	"github.com/tphakala/go-keyreduce/internal/engine"
)

// ReductionStats summarises one reduction.
type ReductionStats struct {
	// InputKeyCount is the number of samples inside the interval. For
	// channel curves it counts the merged key times.
	InputKeyCount int `json:"input_key_count"`

	// OutputKeyCount is the number of keys retained.
	OutputKeyCount int `json:"output_key_count"`

	// Iterations is the number of segments examined.
	Iterations int `json:"iterations"`

	MaxObservedErrorPerDim Vec `json:"max_observed_error_per_dim"`
	MeanAbsErrorPerDim     Vec `json:"mean_abs_error_per_dim"`
	RMSErrorPerDim         Vec `json:"rms_error_per_dim"`

	// Tolerance is the per-dimension error bound the reduction enforced.
	Tolerance Vec `json:"tolerance"`
}

// CompressionRatio returns InputKeyCount / OutputKeyCount.
func (s ReductionStats) CompressionRatio() float64 {
	if s.OutputKeyCount == 0 {
		return 0
	}
	return float64(s.InputKeyCount) / float64(s.OutputKeyCount)
}

// Result is a reduced curve with its statistics.
type Result struct {
	Keys  []Key          `json:"keys"`
	Stats ReductionStats `json:"stats"`

	curve *curve.Curve
}

// Eval evaluates the reduced curve at time t. Times outside the keyed range
// clamp to the first or last key. It panics if the result has no keys.
func (r *Result) Eval(t float32) Vec {
	if r.curve != nil {
		return r.curve.Eval(t)
	}
	return toCurve(r.Keys).Eval(t)
}

// ReduceCurve reduces dense samples to a sparse set of keys. Samples must
// be sorted by strictly increasing time and share one dimension. A nil cfg
// uses DefaultConfig.
//
// With an interval configured, only the samples inside it are reduced and
// only keys inside it are returned; use [Result.Splice] to rebuild the full
// curve.
func ReduceCurve(samples []Sample, cfg *Config) (*Result, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}
	if err := validateSamples(samples); err != nil {
		return nil, err
	}

	points := make([]controlpoint.ControlPoint, len(samples))
	for i, s := range samples {
		points[i] = controlpoint.ControlPoint{Time: s.Time, Value: s.Value, Mode: s.Mode, Smooth: s.Smooth}
	}
	table, err := controlpoint.FromPoints(points)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return reduceTable(table, cfg)
}

// reduceTable clips table to the configured interval and reduces it.
func reduceTable(table *controlpoint.Table, cfg *Config) (*Result, error) {
	if iv := cfg.Interval; iv != nil {
		table = table.Clip(iv.Start, iv.End)
		if table.Len() == 0 {
			return nil, fmt.Errorf("%w: no samples in interval [%v, %v]", ErrInvalidInput, iv.Start, iv.End)
		}
	}

	out, stats := engine.Reduce(table, cfg.RelativeTolerance)
	return &Result{
		Keys: fromCurve(out),
		Stats: ReductionStats{
			InputKeyCount:          stats.InputCount,
			OutputKeyCount:         stats.OutputCount,
			Iterations:             stats.Iterations,
			MaxObservedErrorPerDim: stats.MaxError,
			MeanAbsErrorPerDim:     stats.MeanAbsError,
			RMSErrorPerDim:         stats.RMSError,
			Tolerance:              stats.Tolerance,
		},
		curve: out,
	}, nil
}

// Splice rebuilds the full curve for a reduction run over an interval:
// samples before and after the interval become keys again, around the
// reduced keys. Tangents of the restored keys are recomputed from their new
// neighbours; the reduced keys keep theirs.
func (r *Result) Splice(samples []Sample) []Key {
	if len(r.Keys) == 0 {
		return nil
	}
	first, last := r.Keys[0].Time, r.Keys[len(r.Keys)-1].Time

	keys := make([]curve.Key, 0, len(samples)+len(r.Keys))
	var restored []int
	restore := func(s Sample) {
		k := curve.NewKey(s.Time, s.Value, s.Mode)
		k.Smooth = s.Smooth
		restored = append(restored, len(keys))
		keys = append(keys, k)
	}

	i := 0
	for ; i < len(samples) && samples[i].Time < first-TimeEpsilon/2; i++ {
		restore(samples[i])
	}
	for _, k := range r.Keys {
		keys = append(keys, toCurveKey(k))
	}
	for ; i < len(samples); i++ {
		if samples[i].Time > last+TimeEpsilon/2 {
			restore(samples[i])
		}
	}

	c := curve.FromKeys(keys)
	for _, j := range restored {
		c.RecomputeTangents(j)
	}
	return fromCurve(c)
}

func validateSamples(samples []Sample) error {
	if len(samples) == 0 {
		return fmt.Errorf("%w: no samples", ErrInvalidInput)
	}
	dim := samples[0].Value.Dim()
	if dim == 0 {
		return fmt.Errorf("%w: sample 0 has no value", ErrInvalidInput)
	}
	for i, s := range samples {
		if s.Value.Dim() != dim {
			return fmt.Errorf("%w: sample %d has %d dimensions, want %d", ErrDimensionMismatch, i, s.Value.Dim(), dim)
		}
		if !finite(s.Time) || !s.Value.IsFinite() {
			return fmt.Errorf("%w: sample %d is not finite", ErrInvalidInput, i)
		}
		if !s.Mode.Valid() {
			return fmt.Errorf("%w: sample %d has unknown mode %d", ErrInvalidInput, i, int(s.Mode))
		}
		if i == 0 {
			continue
		}
		prev := samples[i-1].Time
		if s.Time <= prev {
			return fmt.Errorf("%w: sample %d time %v not after %v", ErrInvalidInput, i, s.Time, prev)
		}
		if tooClose(prev, s.Time) {
			return fmt.Errorf("%w: sample %d time %v within %v of %v", ErrInvalidInput, i, s.Time, TimeEpsilon, prev)
		}
	}
	return nil
}

// tooClose reports whether b follows a by less than TimeEpsilon. A few ulps
// of slack keep samples on a millisecond grid valid at any magnitude.
func tooClose(a, b float32) bool {
	far := max(float32(math.Abs(float64(a))), float32(math.Abs(float64(b))))
	slack := timeSlackUlps * (math.Nextafter32(far, float32(math.Inf(1))) - far)
	return b-a < TimeEpsilon-slack
}

func fromCurve(c *curve.Curve) []Key {
	keys := make([]Key, c.Len())
	for i := range keys {
		k := c.Key(i)
		keys[i] = Key{
			Time:          k.Time,
			Value:         k.Value,
			ArriveTangent: k.ArriveTangent,
			LeaveTangent:  k.LeaveTangent,
			Mode:          k.Mode,
		}
	}
	return keys
}

func toCurveKey(k Key) curve.Key {
	ck := curve.NewKey(k.Time, k.Value, k.Mode)
	ck.ArriveTangent = k.ArriveTangent
	ck.LeaveTangent = k.LeaveTangent
	return ck
}

func toCurve(keys []Key) *curve.Curve {
	c := curve.New(len(keys))
	for _, k := range keys {
		c.Append(toCurveKey(k))
	}
	return c
}

// Resample evaluates keys at each of times. Keys must be sorted by strictly
// increasing time.
func Resample(keys []Key, times []float32) ([]Vec, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no keys", ErrInvalidInput)
	}
	for i := 1; i < len(keys); i++ {
		if keys[i].Time <= keys[i-1].Time {
			return nil, fmt.Errorf("%w: key %d time %v not after %v", ErrInvalidInput, i, keys[i].Time, keys[i-1].Time)
		}
	}

	c := toCurve(keys)
	out := make([]Vec, len(times))
	for i, t := range times {
		out[i] = c.Eval(t)
	}
	return out, nil
}
