package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-keyreduce"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		format  string
		want    string
		wantErr bool
	}{
		{"curve.json", "auto", formatJSON, false},
		{"curve.JSON", "auto", formatJSON, false},
		{"curve.csv", "auto", formatCSV, false},
		{"curve.txt", "auto", "", true},
		{"curve.txt", "csv", formatCSV, false},
		{"curve.csv", "JSON", formatJSON, false},
		{"curve.csv", "yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.format, func(t *testing.T) {
			got, err := detectFormat(tt.path, tt.format)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadJSON(t *testing.T) {
	in := `{"samples":[
		{"time":0,"value":[0,1]},
		{"time":0.5,"value":[1,2],"mode":"constant"},
		{"time":1,"value":[2,3],"mode":"user","smooth":[true,false]}
	]}`

	samples, err := readJSON(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, keyreduce.ModeCurveAuto, samples[0].Mode)
	assert.Equal(t, keyreduce.ModeConstant, samples[1].Mode)
	assert.Equal(t, keyreduce.ModeCurveUser, samples[2].Mode)
	assert.Equal(t, [4]bool{true, false, false, false}, samples[2].Smooth)
	assert.Equal(t, 2, samples[1].Value.Dim())
	assert.InDelta(t, 2.0, samples[1].Value.At(1), 1e-6)
}

func TestReadJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"malformed", `{"samples":[`, "invalid JSON input"},
		{"unknown field", `{"samples":[],"extra":1}`, "invalid JSON input"},
		{"empty value", `{"samples":[{"time":0,"value":[]}]}`, "sample 0"},
		{"too many components", `{"samples":[{"time":0,"value":[1,2,3,4,5]}]}`, "components"},
		{"too many smooth flags", `{"samples":[{"time":0,"value":[1],"smooth":[true,true,true,true,true]}]}`, "smooth"},
		{"bad mode", `{"samples":[{"time":0,"value":[1],"mode":"bezier"}]}`, "bezier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readJSON(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadCSV(t *testing.T) {
	in := "time,x,y,mode\n" +
		"# comment\n" +
		"0, 0, 1\n" +
		"0.5, 1, 2, linear\n" +
		"1, 2, 3, break\n"

	samples, err := readCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.InDelta(t, 0.5, samples[1].Time, 1e-6)
	assert.Equal(t, 2, samples[0].Value.Dim())
	assert.Equal(t, keyreduce.ModeCurveAuto, samples[0].Mode)
	assert.Equal(t, keyreduce.ModeLinear, samples[1].Mode)
	assert.Equal(t, keyreduce.ModeCurveBreak, samples[2].Mode)
}

func TestReadCSV_NoHeader(t *testing.T) {
	samples, err := readCSV(strings.NewReader("0,1\n1,2\n"))
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.InDelta(t, 2.0, samples[1].Value.At(0), 1e-6)
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"time only", "0\n", "columns"},
		{"too many columns", "0,1,2,3,4,5,6\n", "columns"},
		{"five values", "0,1,2,3,4,5\n", "values"},
		{"text in value column", "0,abc,2\n", "line 1"},
		{"mode without values", "0,1\n1,linear\n", "line 2"},
		{"bad mode", "0,1,bezier\n", "bezier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readCSV(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadSamplesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "curve.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,0\n1,1\n"), 0o644))

	samples, err := readSamplesFile(path, formatAuto)
	require.NoError(t, err)
	assert.Len(t, samples, 2)

	_, err = readSamplesFile(filepath.Join(dir, "missing.csv"), formatAuto)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}
