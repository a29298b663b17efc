package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-keyreduce"
)

// writeParabola writes n samples of t*t on [0, 1] as CSV.
func writeParabola(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("time,value\n")
	for i := range n {
		x := float64(i) / float64(n-1)
		fmt.Fprintf(&b, "%g,%g\n", x, x*x)
	}
	path := filepath.Join(t.TempDir(), "parabola.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

type runOutput struct {
	RunID  string                   `json:"run_id"`
	Source string                   `json:"source"`
	Config keyreduce.Config         `json:"config"`
	Stats  keyreduce.ReductionStats `json:"stats"`
	Keys   []json.RawMessage        `json:"keys"`
}

func TestRun_Stdout(t *testing.T) {
	path := writeParabola(t, 11)

	var out bytes.Buffer
	require.NoError(t, run([]string{"-tolerance", "0.01", path}, &out))

	var doc runOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.NotEmpty(t, doc.RunID)
	assert.Equal(t, "parabola.csv", doc.Source)
	assert.InDelta(t, 0.01, doc.Config.RelativeTolerance, 1e-6)
	assert.Nil(t, doc.Config.Interval)
	assert.Equal(t, 11, doc.Stats.InputKeyCount)
	assert.Len(t, doc.Keys, doc.Stats.OutputKeyCount)
	assert.GreaterOrEqual(t, doc.Stats.OutputKeyCount, 3)
}

func TestRun_OutputFiles(t *testing.T) {
	path := writeParabola(t, 21)
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "keys.json")
	pngPath := filepath.Join(dir, "plot.png")
	htmlPath := filepath.Join(dir, "plot.html")

	var out bytes.Buffer
	err := run([]string{"-o", jsonPath, "-plot", pngPath, "-html", htmlPath, path}, &out)
	require.NoError(t, err)
	assert.Zero(t, out.Len(), "nothing should be written to stdout with -o")

	for _, p := range []string{jsonPath, pngPath, htmlPath} {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Positive(t, info.Size(), p)
	}
}

func TestRun_Interval(t *testing.T) {
	path := writeParabola(t, 21)

	var out bytes.Buffer
	require.NoError(t, run([]string{"-start", "0.25", path}, &out))

	var doc runOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.NotNil(t, doc.Config.Interval)
	assert.InDelta(t, 0.25, doc.Config.Interval.Start, 1e-6)
	assert.InDelta(t, 1.0, doc.Config.Interval.End, 1e-6)
	assert.Equal(t, 16, doc.Stats.InputKeyCount)
}

func TestRun_Errors(t *testing.T) {
	path := writeParabola(t, 5)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no input", []string{}, "expected one input file"},
		{"two inputs", []string{path, path}, "expected one input file"},
		{"bad tolerance", []string{"-tolerance", "2", path}, "tolerance"},
		{"empty interval", []string{"-start", "0.3", "-end", "0.2", path}, "interval"},
		{"missing file", []string{"/nonexistent/curve.csv"}, "failed to open input file"},
		{"unknown flag", []string{"-bogus", path}, "bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(tt.args, &out)
			require.Error(t, err)
			assert.Contains(t, strings.ToLower(err.Error()), tt.want)
		})
	}
}

func TestOptionsConfig(t *testing.T) {
	samples := []keyreduce.Sample{
		{Time: 0, Value: keyreduce.NewVec(0)},
		{Time: 2, Value: keyreduce.NewVec(1)},
	}
	nan := math.NaN()

	tests := []struct {
		name       string
		start, end float64
		want       *keyreduce.Interval
	}{
		{"none", nan, nan, nil},
		{"start only", 0.5, nan, &keyreduce.Interval{Start: 0.5, End: 2}},
		{"end only", nan, 1.5, &keyreduce.Interval{Start: 0, End: 1.5}},
		{"both", 0.5, 1.5, &keyreduce.Interval{Start: 0.5, End: 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &options{tolerance: 0.1, start: tt.start, end: tt.end}
			cfg := o.config(samples)
			assert.InDelta(t, 0.1, cfg.RelativeTolerance, 1e-6)
			assert.Equal(t, tt.want, cfg.Interval)
		})
	}
}
