package keyreduce

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceKeys_BreakTangents(t *testing.T) {
	tests := []struct {
		name       string
		arrive     float32
		leave      float32
		wantArrive float32
		wantLeave  float32
	}{
		// Disagreeing tangents: the dimension is broken and keeps raw deltas.
		{"broken", 2, -2, 1, -1},
		// Tangents agree within r*|arrive|: the apex is smooth and clamped.
		{"smooth", 2, 2.05, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := []SourceKey{
				{Time: 0, Value: NewVec(0), Mode: ModeCurveAuto},
				{
					Time:          0.5,
					Value:         NewVec(1),
					ArriveTangent: NewVec(tt.arrive),
					LeaveTangent:  NewVec(tt.leave),
					Mode:          ModeCurveBreak,
					HasTangents:   true,
				},
				{Time: 1, Value: NewVec(0), Mode: ModeCurveAuto},
			}

			res, err := ReduceKeys(keys, nil)
			require.NoError(t, err)

			require.Len(t, res.Keys, 3)
			mid := res.Keys[1]
			assert.Equal(t, ModeCurveBreak, mid.Mode)
			assert.InDelta(t, tt.wantArrive, mid.ArriveTangent.At(0), 1e-6)
			assert.InDelta(t, tt.wantLeave, mid.LeaveTangent.At(0), 1e-6)
		})
	}
}

func TestReduceKeys_WithoutTangentsIsBroken(t *testing.T) {
	keys := []SourceKey{
		{Time: 0, Value: NewVec(0, 0), Mode: ModeCurveAuto},
		{Time: 0.5, Value: NewVec(1, 2), Mode: ModeCurveBreak},
		{Time: 1, Value: NewVec(0, 0), Mode: ModeCurveAuto},
	}

	res, err := ReduceKeys(keys, nil)
	require.NoError(t, err)

	require.Len(t, res.Keys, 3)
	assert.Equal(t, NewVec(1, 2), res.Keys[1].ArriveTangent)
	assert.Equal(t, NewVec(-1, -2), res.Keys[1].LeaveTangent)
}

func TestReduceKeys_InvalidInput(t *testing.T) {
	_, err := ReduceKeys(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	keys := []SourceKey{
		{Time: 0, Value: NewVec(0, 0), ArriveTangent: NewVec(1), LeaveTangent: NewVec(1, 1), HasTangents: true},
	}
	_, err = ReduceKeys(keys, nil)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = ReduceKeys([]SourceKey{{Time: 0, Value: NewVec(1)}}, &Config{RelativeTolerance: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReduceChannels(t *testing.T) {
	position := LinearChannel{KeyTimes: []float32{0, 1}, Values: []float32{0, 10}}

	waveTimes := UniformTimes(0, 1, 41)
	wave := FuncChannel{
		KeyTimes: waveTimes,
		Fn:       func(t float32) float32 { return float32(math.Sin(2 * math.Pi * float64(t))) },
	}

	res, err := ReduceChannels([]ChannelCurve{position, wave}, nil)
	require.NoError(t, err)

	assert.Equal(t, 41, res.Stats.InputKeyCount, "channel times merge onto one grid")
	assert.Less(t, len(res.Keys), 41)
	assert.Equal(t, 2, res.Keys[0].Value.Dim())

	for _, tm := range waveTimes {
		got := res.Eval(tm)
		assert.InDelta(t, position.Eval(tm), got.At(0), float64(res.Stats.Tolerance.At(0))*1.001, "t=%v", tm)
		assert.InDelta(t, wave.Eval(tm), got.At(1), float64(res.Stats.Tolerance.At(1))*1.001, "t=%v", tm)
	}
}

func TestReduceChannels_InvalidInput(t *testing.T) {
	_, err := ReduceChannels(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	ch := LinearChannel{KeyTimes: []float32{0, 1}, Values: []float32{0, 1}}
	_, err = ReduceChannels([]ChannelCurve{ch, ch, ch, ch, ch}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	nan := FuncChannel{
		KeyTimes: []float32{0, 1},
		Fn:       func(float32) float32 { return float32(math.NaN()) },
	}
	_, err = ReduceChannels([]ChannelCurve{nan}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ReduceChannels([]ChannelCurve{LinearChannel{}}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
