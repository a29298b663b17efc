package mathutil

// Hermite basis polynomial coefficients.
// h00 = 2u³ - 3u² + 1, h10 = u³ - 2u² + u, h01 = -2u³ + 3u², h11 = u³ - u²
const (
	hermiteCubic2 = 2.0
	hermiteQuad3  = 3.0
	hermiteQuad2  = 2.0
)

// Tolerance defaults.
const (
	// DefaultToleranceFloor is the absolute floor applied to every
	// per-dimension tolerance so flat dimensions never get a zero bound.
	DefaultToleranceFloor = 1e-4
)
