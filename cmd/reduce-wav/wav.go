package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file     *os.File
	decoder  *wav.Decoder
	rate     int
	channels int
	bitDepth int
	format   *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	info := &wavInputInfo{
		file:     inputFile,
		decoder:  decoder,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: int(decoder.BitDepth),
		format:   format,
	}
	if info.channels < 1 || info.channels > maxChannels {
		_ = inputFile.Close()
		return nil, fmt.Errorf("unsupported channel count %d, want 1 to %d", info.channels, maxChannels)
	}
	if info.rate <= 0 {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid sample rate %d", info.rate)
	}

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", info.rate, info.channels, info.bitDepth)
	}
	return info, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// readEnvelope decodes the whole file into an RMS envelope at fps frames
// per second.
func (w *wavInputInfo) readEnvelope(fps float64) (*envelope, error) {
	env, err := newEnvelope(w.channels, w.rate, fps, w.bitDepth)
	if err != nil {
		return nil, err
	}

	buf := &audio.IntBuffer{
		Data:   make([]int, bufferSize*w.channels),
		Format: w.format,
	}
	for {
		n, err := w.decoder.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}
		env.add(buf.Data[:n])
	}
	env.flush()
	return env, nil
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample8:
		return maxInt8
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}
