package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tphakala/go-keyreduce"
)

// sampleFile is the JSON input layout.
type sampleFile struct {
	Samples []sampleRecord `json:"samples"`
}

type sampleRecord struct {
	Time   float32   `json:"time"`
	Value  []float32 `json:"value"`
	Mode   string    `json:"mode"`
	Smooth []bool    `json:"smooth"`
}

// detectFormat resolves formatAuto from the file extension.
func detectFormat(path, format string) (string, error) {
	format = strings.ToLower(format)
	if format != formatAuto {
		if format != formatJSON && format != formatCSV {
			return "", fmt.Errorf("unknown format %q", format)
		}
		return format, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".csv":
		return formatCSV, nil
	default:
		return "", fmt.Errorf("cannot detect format of %s, use -format", path)
	}
}

// readSamplesFile reads samples from path in the given format.
func readSamplesFile(path, format string) ([]keyreduce.Sample, error) {
	format, err := detectFormat(path, format)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if format == formatCSV {
		return readCSV(f)
	}
	return readJSON(f)
}

func readJSON(r io.Reader) ([]keyreduce.Sample, error) {
	var file sampleFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("invalid JSON input: %w", err)
	}

	samples := make([]keyreduce.Sample, len(file.Samples))
	for i, rec := range file.Samples {
		s, err := rec.sample()
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		samples[i] = s
	}
	return samples, nil
}

func (rec sampleRecord) sample() (keyreduce.Sample, error) {
	if len(rec.Value) < 1 || len(rec.Value) > maxDim {
		return keyreduce.Sample{}, fmt.Errorf("value has %d components, want 1 to %d", len(rec.Value), maxDim)
	}
	if len(rec.Smooth) > maxDim {
		return keyreduce.Sample{}, fmt.Errorf("smooth has %d flags, want at most %d", len(rec.Smooth), maxDim)
	}
	mode, err := parseMode(rec.Mode)
	if err != nil {
		return keyreduce.Sample{}, err
	}

	s := keyreduce.Sample{Time: rec.Time, Value: keyreduce.NewVec(rec.Value...), Mode: mode}
	copy(s.Smooth[:], rec.Smooth)
	return s, nil
}

// parseMode maps an empty mode to auto.
func parseMode(s string) (keyreduce.Mode, error) {
	if strings.TrimSpace(s) == "" {
		return keyreduce.ModeCurveAuto, nil
	}
	return keyreduce.ParseMode(s)
}

// readCSV reads rows of time,v0[,v1..v3][,mode]. A first row whose time
// column is not a number is a header and is skipped.
func readCSV(r io.Reader) ([]keyreduce.Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var samples []keyreduce.Sample
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid CSV input: %w", err)
		}

		if line == 1 {
			if _, err := strconv.ParseFloat(rec[csvTimeColumn], 32); err != nil {
				continue
			}
		}
		s, err := csvSample(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func csvSample(rec []string) (keyreduce.Sample, error) {
	if len(rec) < csvMinColumns || len(rec) > csvMaxColumns {
		return keyreduce.Sample{}, fmt.Errorf("%d columns, want %d to %d", len(rec), csvMinColumns, csvMaxColumns)
	}

	nums := make([]float32, 0, len(rec))
	mode := keyreduce.ModeCurveAuto
	for i, field := range rec {
		x, err := strconv.ParseFloat(field, 32)
		if err == nil {
			nums = append(nums, float32(x))
			continue
		}
		if i != len(rec)-1 || i < csvMinColumns {
			return keyreduce.Sample{}, fmt.Errorf("column %d: %w", i+1, err)
		}
		if mode, err = parseMode(field); err != nil {
			return keyreduce.Sample{}, err
		}
	}

	values := nums[1:]
	if len(values) > maxDim {
		return keyreduce.Sample{}, fmt.Errorf("%d values, want at most %d", len(values), maxDim)
	}
	return keyreduce.Sample{Time: nums[csvTimeColumn], Value: keyreduce.NewVec(values...), Mode: mode}, nil
}
