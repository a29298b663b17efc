package controlpoint

// Time matching
const (
	// TimeEpsilon is the key time resolution: one millisecond, matching
	// 1000 Hz animation sampling.
	TimeEpsilon = 1e-3

	// timeMatchWindow is the distance below which two times are the same
	// key. Half a resolution step keeps neighbours on a 1000 Hz grid
	// distinct despite float32 rounding of their spacing.
	timeMatchWindow = TimeEpsilon / 2
)

// Lookup strategy
const (
	// BinarySearchThreshold is the table size from which lookups switch
	// from a linear scan to binary search.
	BinarySearchThreshold = 8
)

// Smoothness detection
const (
	// SmoothTangentSlack is the absolute slack added when comparing arrive
	// and leave tangents of a CurveBreak key.
	SmoothTangentSlack = 1e-4
)
