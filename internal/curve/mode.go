package curve

import (
	"fmt"
	"strings"
)

// Mode is the interpolation mode of a key.
type Mode int

const (
	// Linear keys interpolate linearly to the next key and are never dropped.
	Linear Mode = iota

	// Constant keys hold their value until the next key and are never dropped.
	Constant

	// CurveAuto keys get smooth tangents recomputed from their neighbours.
	CurveAuto

	// CurveAutoClamped behaves like CurveAuto.
	CurveAutoClamped

	// CurveUser is the mode given to every smooth key promoted by the reducer.
	CurveUser

	// CurveBreak keys have independent arrive and leave tangents; per-dimension
	// smoothness flags decide which dimensions are treated as smooth.
	CurveBreak
)

var modeNames = [...]string{
	Linear:           "linear",
	Constant:         "constant",
	CurveAuto:        "auto",
	CurveAutoClamped: "auto-clamped",
	CurveUser:        "user",
	CurveBreak:       "break",
}

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// IsHard reports whether keys with this mode are hard boundaries the reducer
// must preserve.
func (m Mode) IsHard() bool {
	return m == Linear || m == Constant
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= Linear && m <= CurveBreak
}

// ParseMode parses a mode name as produced by String. Matching is
// case-insensitive and also accepts "curve-auto" style long names.
func ParseMode(s string) (Mode, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "curve-")
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("unknown interpolation mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid interpolation mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
