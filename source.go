package keyreduce

import (
	"fmt"

	"github.com/tphakala/go-keyreduce/internal/controlpoint"
)

// SourceKey is a key of a dense source track. When HasTangents is set, the
// arrive and leave tangents decide which dimensions of a ModeCurveBreak key
// are smooth.
type SourceKey struct {
	Time          float32 `json:"time"`
	Value         Vec     `json:"value"`
	ArriveTangent Vec     `json:"arrive_tangent"`
	LeaveTangent  Vec     `json:"leave_tangent"`
	Mode          Mode    `json:"mode"`
	HasTangents   bool    `json:"has_tangents"`
}

// ReduceKeys reduces the keys of a dense source track. A dimension of a
// ModeCurveBreak key is smooth when its arrive and leave tangents agree
// within r*|arrive| + 1e-4, where r is the relative tolerance; break keys
// without tangents are broken on every dimension.
func ReduceKeys(keys []SourceKey, cfg *Config) (*Result, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}

	samples := make([]Sample, len(keys))
	for i, k := range keys {
		samples[i] = Sample{Time: k.Time, Value: k.Value, Mode: k.Mode}
		if k.HasTangents && (k.ArriveTangent.Dim() != k.Value.Dim() || k.LeaveTangent.Dim() != k.Value.Dim()) {
			return nil, fmt.Errorf("%w: key %d tangents do not match its value", ErrDimensionMismatch, i)
		}
	}
	if err := validateSamples(samples); err != nil {
		return nil, err
	}

	src := make([]controlpoint.SourceKey, len(keys))
	for i, k := range keys {
		src[i] = controlpoint.SourceKey(k)
	}
	table, err := controlpoint.FromKeys(src, cfg.RelativeTolerance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return reduceTable(table, cfg)
}

// ChannelCurve is one dimension of a curve keyed independently of the
// other dimensions.
type ChannelCurve interface {
	// Times returns the channel's own key times.
	Times() []float32

	// Eval returns the channel's value at time t.
	Eval(t float32) float32
}

// LinearChannel is a piecewise-linear channel over sorted key times that
// clamps outside its keyed range.
type LinearChannel = controlpoint.LinearChannel

// FuncChannel samples a function at explicit key times.
type FuncChannel = controlpoint.FuncChannel

// ReduceChannels reduces a curve whose dimensions are keyed independently.
// Channel d becomes dimension d. The key times of every channel are merged,
// with times closer than half a millisecond collapsed, and each dimension is
// evaluated from its channel at every merged time. All merged samples are
// ModeCurveAuto.
func ReduceChannels(channels []ChannelCurve, cfg *Config) (*Result, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}
	if len(channels) == 0 || len(channels) > MaxDim {
		return nil, fmt.Errorf("%w: %d channels, want 1 to %d", ErrInvalidInput, len(channels), MaxDim)
	}

	merged := make([]controlpoint.Channel, len(channels))
	for d, ch := range channels {
		for _, t := range ch.Times() {
			if !finite(t) {
				return nil, fmt.Errorf("%w: channel %d has a non-finite key time", ErrInvalidInput, d)
			}
		}
		merged[d] = ch
	}

	table, err := controlpoint.Merge(merged)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	for i, v := range table.Values() {
		if !v.IsFinite() {
			return nil, fmt.Errorf("%w: channel value at %v is not finite", ErrInvalidInput, table.Time(i))
		}
	}
	return reduceTable(table, cfg)
}
