package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope_FrameSize(t *testing.T) {
	env, err := newEnvelope(2, 48000, 30, bitsPerSample16)
	require.NoError(t, err)
	assert.Equal(t, 1600, env.frameSize)

	_, err = newEnvelope(1, 500, 1000, bitsPerSample16)
	require.Error(t, err, "fewer than one sample per frame")
}

func TestEnvelope_ChunkBoundaries(t *testing.T) {
	// Stereo, 4 sample frames per envelope frame. Feed 3 frames' worth in
	// chunks that split sample frames between channels.
	env, err := newEnvelope(2, 40, 10, bitsPerSample16)
	require.NoError(t, err)

	var data []int
	for range 12 {
		data = append(data, 32767, 0)
	}
	env.add(data[:3])
	env.add(data[3:10])
	env.add(data[10:])
	env.flush()

	samples := env.Samples()
	require.Len(t, samples, 3)
	for _, s := range samples {
		assert.InDelta(t, 1.0, s.Value.At(0), 1e-6)
		assert.InDelta(t, 0.0, s.Value.At(1), 1e-6)
	}
	assert.InDelta(t, 0.2, samples[2].Time, 1e-6)
}

func TestEnvelope_FlushEmpty(t *testing.T) {
	env, err := newEnvelope(1, 8000, 10, bitsPerSample16)
	require.NoError(t, err)
	env.flush()
	assert.Empty(t, env.Samples())
}
