package keyreduce

import (
	"github.com/tphakala/go-keyreduce/internal/controlpoint"
	"github.com/tphakala/go-keyreduce/internal/mathutil"
	"github.com/tphakala/go-keyreduce/internal/vec"
)

// Reduction defaults and limits.
const (
	// DefaultRelativeTolerance is the fraction of each dimension's observed
	// range used as its error bound when no tolerance is configured.
	DefaultRelativeTolerance = 0.05

	// ToleranceFloor is the smallest absolute per-dimension tolerance. Flat
	// dimensions collapse to it.
	ToleranceFloor = mathutil.DefaultToleranceFloor

	// TimeEpsilon is the minimum spacing between two distinct key times, in
	// seconds. Samples closer than this are rejected; channel key times
	// closer than half of it are merged into one time.
	TimeEpsilon = controlpoint.TimeEpsilon

	// timeSlackUlps is the float32 rounding allowed when checking sample
	// spacing against TimeEpsilon.
	timeSlackUlps = 4

	// MaxDim is the widest sample vector supported.
	MaxDim = vec.MaxDim
)

// Track component dimensions.
const (
	translationDim = 3
	rotationDim    = 4
	scaleDim       = 3
)
