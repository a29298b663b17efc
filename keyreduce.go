package keyreduce

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-keyreduce/internal/curve"
	"github.com/tphakala/go-keyreduce/internal/vec"
)

// Vec is a sample vector of one to MaxDim float32 components.
type Vec = vec.Vec

// NewVec returns a vector holding the given components.
// It panics unless 1 to MaxDim components are given.
func NewVec(c ...float32) Vec { return vec.Of(c...) }

// Mode is the interpolation mode of a sample or key.
type Mode = curve.Mode

// Interpolation modes.
const (
	// ModeLinear keys interpolate linearly and are always kept.
	ModeLinear = curve.Linear

	// ModeConstant keys hold their value until the next key and are always kept.
	ModeConstant = curve.Constant

	// ModeCurveAuto samples are smooth; their tangents are recomputed.
	ModeCurveAuto = curve.CurveAuto

	// ModeCurveAutoClamped samples behave like ModeCurveAuto.
	ModeCurveAutoClamped = curve.CurveAutoClamped

	// ModeCurveUser is the mode of every smooth key promoted by the reducer.
	ModeCurveUser = curve.CurveUser

	// ModeCurveBreak samples may have different arrive and leave tangents on
	// the dimensions whose smoothness flag is false.
	ModeCurveBreak = curve.CurveBreak
)

// ParseMode parses a mode name such as "linear", "auto" or "curve-break".
func ParseMode(s string) (Mode, error) {
	m, err := curve.ParseMode(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return m, nil
}

// Common errors returned by the reducer.
var (
	// ErrInvalidInput indicates the samples or configuration cannot be
	// reduced. Nothing is computed when it is returned.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDimensionMismatch indicates samples of differing dimension.
	// It matches ErrInvalidInput under errors.Is.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidInput)
)

// Interval is the closed time window [Start, End] being reduced.
type Interval struct {
	Start float32 `json:"start"`
	End   float32 `json:"end"`
}

// Contains reports whether t lies in the interval, allowing for the
// time-match window at both ends.
func (iv Interval) Contains(t float32) bool {
	return t >= iv.Start-TimeEpsilon/2 && t <= iv.End+TimeEpsilon/2
}

// Config holds reduction configuration.
type Config struct {
	// RelativeTolerance is the fraction of each dimension's observed range
	// allowed as error. Must be in (0, 1].
	RelativeTolerance float32 `json:"relative_tolerance"`

	// Interval restricts reduction to a time window. Nil reduces the whole
	// curve.
	Interval *Interval `json:"interval,omitempty"`
}

// DefaultConfig returns a configuration reducing the whole curve with
// DefaultRelativeTolerance.
func DefaultConfig() *Config {
	return &Config{RelativeTolerance: DefaultRelativeTolerance}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	r := c.RelativeTolerance
	if !(r > 0 && r <= 1) {
		return fmt.Errorf("%w: relative tolerance %v must be in (0, 1]", ErrInvalidInput, r)
	}

	if iv := c.Interval; iv != nil {
		if !finite(iv.Start) || !finite(iv.End) {
			return fmt.Errorf("%w: interval bounds must be finite", ErrInvalidInput)
		}
		if iv.End <= iv.Start {
			return fmt.Errorf("%w: interval end %v must be after start %v", ErrInvalidInput, iv.End, iv.Start)
		}
	}

	return nil
}

// Sample is one dense input sample.
type Sample struct {
	Time  float32 `json:"time"`
	Value Vec     `json:"value"`
	Mode  Mode    `json:"mode"`

	// Smooth marks, per dimension, whether a ModeCurveBreak sample is smooth.
	// Ignored for other modes.
	Smooth [MaxDim]bool `json:"smooth"`
}

// Key is one keyframe of a reduced curve. Tangents are per unit of time.
type Key struct {
	Time          float32 `json:"time"`
	Value         Vec     `json:"value"`
	ArriveTangent Vec     `json:"arrive_tangent"`
	LeaveTangent  Vec     `json:"leave_tangent"`
	Mode          Mode    `json:"mode"`
}

func finite(x float32) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// resolveConfig returns cfg, or the default configuration when cfg is nil,
// after validating it.
func resolveConfig(cfg *Config) (*Config, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
