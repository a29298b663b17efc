// Command keyreduce reduces a dense animation curve to sparse keyframes.
//
// Usage:
//
//	keyreduce curve.json
//	keyreduce -tolerance 0.01 -o keys.json curve.csv
//	keyreduce -start 0.5 -end 2 -plot curve.png -html curve.html curve.json
//
// JSON input holds {"samples":[{"time":0,"value":[0],"mode":"auto","smooth":[true]}]}.
// CSV input holds rows of time,v0[,v1..v3][,mode]. The reduced keys and
// statistics are written as JSON to -o, or to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/tphakala/go-keyreduce"
	"github.com/tphakala/go-keyreduce/internal/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	tolerance float64
	start     float64
	end       float64
	format    string
	output    string
	plot      string
	html      string
	verbose   bool
	input     string
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("keyreduce", flag.ContinueOnError)
	o := &options{}
	fs.Float64Var(&o.tolerance, "tolerance", defaultTolerance, "Relative tolerance in (0, 1]")
	fs.Float64Var(&o.start, "start", math.NaN(), "Interval start time (default: first sample)")
	fs.Float64Var(&o.end, "end", math.NaN(), "Interval end time (default: last sample)")
	fs.StringVar(&o.format, "format", defaultFormat, "Input format: auto, json, csv")
	fs.StringVar(&o.output, "o", "", "Write keys to this JSON file instead of stdout")
	fs.StringVar(&o.plot, "plot", "", "Write a PNG comparison plot")
	fs.StringVar(&o.html, "html", "", "Write an interactive HTML comparison")
	fs.BoolVar(&o.verbose, "v", false, "Verbose output")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: keyreduce [options] input.json|input.csv\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != requiredArgs {
		fs.Usage()
		return nil, fmt.Errorf("expected one input file, got %d", fs.NArg())
	}
	o.input = fs.Arg(0)
	return o, nil
}

// config builds the reduction configuration. A missing interval bound
// defaults to the first or last sample time.
func (o *options) config(samples []keyreduce.Sample) *keyreduce.Config {
	cfg := &keyreduce.Config{RelativeTolerance: float32(o.tolerance)}
	if (math.IsNaN(o.start) && math.IsNaN(o.end)) || len(samples) == 0 {
		return cfg
	}

	iv := &keyreduce.Interval{Start: samples[0].Time, End: samples[len(samples)-1].Time}
	if !math.IsNaN(o.start) {
		iv.Start = float32(o.start)
	}
	if !math.IsNaN(o.end) {
		iv.End = float32(o.end)
	}
	cfg.Interval = iv
	return cfg
}

func run(args []string, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	samples, err := readSamplesFile(o.input, o.format)
	if err != nil {
		return err
	}
	cfg := o.config(samples)

	if o.verbose {
		log.Printf("Input: %s (%d samples)", o.input, len(samples))
		log.Printf("Relative tolerance: %g", cfg.RelativeTolerance)
		if cfg.Interval != nil {
			log.Printf("Interval: [%g, %g]", cfg.Interval.Start, cfg.Interval.End)
		}
	}

	start := time.Now()
	res, err := keyreduce.ReduceCurve(samples, cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if o.verbose {
		log.Printf("Reduced %d -> %d keys in %d iterations (%.1fx, %s)",
			res.Stats.InputKeyCount, res.Stats.OutputKeyCount, res.Stats.Iterations,
			res.Stats.CompressionRatio(), elapsed)
		log.Printf("Max error: %v (tolerance %v)", res.Stats.MaxObservedErrorPerDim, res.Stats.Tolerance)
	}

	doc := report.NewDocument(filepath.Base(o.input), cfg, res)
	if err := writeDocument(doc, o.output, stdout); err != nil {
		return err
	}

	if o.plot == "" && o.html == "" {
		return nil
	}
	cmp := report.Compare(filepath.Base(o.input), samples, res)
	if o.plot != "" {
		if err := report.WritePNG(cmp, o.plot); err != nil {
			return fmt.Errorf("failed to write plot: %w", err)
		}
		if o.verbose {
			log.Printf("Plot: %s", o.plot)
		}
	}
	if o.html != "" {
		if err := writeHTML(cmp, o.html); err != nil {
			return err
		}
		if o.verbose {
			log.Printf("HTML: %s", o.html)
		}
	}
	return nil
}

func writeDocument(doc *report.Document, path string, stdout io.Writer) error {
	if path == "" {
		return report.WriteJSON(stdout, doc)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := report.WriteJSON(f, doc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeHTML(cmp *report.Comparison, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	if err := report.WriteHTML(cmp, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write HTML: %w", err)
	}
	return f.Close()
}
