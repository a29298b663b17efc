package main

import (
	"fmt"
	"math"

	"github.com/tphakala/go-keyreduce"
)

// envelope accumulates interleaved PCM into per-channel RMS frames. Each
// frame becomes one sample whose value holds one dimension per channel.
type envelope struct {
	channels  int
	frameSize int // sample frames per envelope frame
	fps       float64
	invMaxVal float64

	sumSq   []float64
	count   int // sample frames accumulated in the current envelope frame
	channel int // channel of the next interleaved sample
	samples []keyreduce.Sample
}

func newEnvelope(channels, rate int, fps float64, bitDepth int) (*envelope, error) {
	if fps < minFPS || fps > maxFPS {
		return nil, fmt.Errorf("frame rate %g out of range [%g, %g]", fps, minFPS, maxFPS)
	}
	frameSize := int(math.Round(float64(rate) / fps))
	if frameSize < 1 {
		return nil, fmt.Errorf("frame rate %g exceeds sample rate %d", fps, rate)
	}
	return &envelope{
		channels:  channels,
		frameSize: frameSize,
		fps:       fps,
		invMaxVal: 1.0 / getMaxValue(bitDepth),
		sumSq:     make([]float64, channels),
	}, nil
}

// add consumes interleaved samples. Chunks need not end on a sample frame
// boundary.
func (e *envelope) add(data []int) {
	for _, s := range data {
		x := float64(s) * e.invMaxVal
		e.sumSq[e.channel] += x * x
		e.channel++
		if e.channel < e.channels {
			continue
		}
		e.channel = 0
		e.count++
		if e.count == e.frameSize {
			e.emit()
		}
	}
}

// flush emits a trailing partial frame.
func (e *envelope) flush() {
	if e.count > 0 {
		e.emit()
	}
}

func (e *envelope) emit() {
	rms := make([]float32, e.channels)
	for ch := range e.channels {
		rms[ch] = float32(math.Sqrt(e.sumSq[ch] / float64(e.count)))
		e.sumSq[ch] = 0
	}
	e.samples = append(e.samples, keyreduce.Sample{
		Time:  float32(float64(len(e.samples)) / e.fps),
		Value: keyreduce.NewVec(rms...),
		Mode:  keyreduce.ModeCurveAuto,
	})
	e.count = 0
}

// Samples returns the envelope frames emitted so far.
func (e *envelope) Samples() []keyreduce.Sample {
	return e.samples
}
