package main

const (
	// Default command-line flag values
	defaultFPS       = 30.0
	defaultTolerance = 0.02

	// Envelope frame rate limits. Frames must stay at least a millisecond
	// apart to remain distinct keys.
	minFPS = 1.0
	maxFPS = 1000.0

	// Envelope channels become curve dimensions
	maxChannels = 4

	// Sample format constants
	bitsPerSample8  = 8
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Full-scale values per bit depth
	maxInt8  = 127.0
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// Interleaved samples read per PCMBuffer call
	bufferSize = 65536

	requiredArgs = 1
)
