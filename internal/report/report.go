// Package report renders a dense curve next to its reduction, as a PNG plot
// or an interactive HTML page.
package report

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-keyreduce/internal/vec"
)

// Comparison is a dense curve, its reduction evaluated at the same times,
// and the reduction's keys.
type Comparison struct {
	Title string

	Times   []float32
	Samples []vec.Vec
	Reduced []vec.Vec

	KeyTimes []float32
	Keys     []vec.Vec
}

// Dim returns the dimension of the compared curve.
func (c *Comparison) Dim() int {
	if len(c.Samples) == 0 {
		return 0
	}
	return c.Samples[0].Dim()
}

// Validate checks that the series line up.
func (c *Comparison) Validate() error {
	if len(c.Times) == 0 {
		return errors.New("report: no samples")
	}
	if len(c.Samples) != len(c.Times) || len(c.Reduced) != len(c.Times) {
		return fmt.Errorf("report: %d times, %d samples, %d reduced values",
			len(c.Times), len(c.Samples), len(c.Reduced))
	}
	if len(c.Keys) != len(c.KeyTimes) {
		return fmt.Errorf("report: %d key times, %d keys", len(c.KeyTimes), len(c.Keys))
	}
	return nil
}

// seriesName labels dimension d of a series.
func seriesName(series string, d, dim int) string {
	if dim == 1 {
		return series
	}
	return fmt.Sprintf("%s[%d]", series, d)
}
