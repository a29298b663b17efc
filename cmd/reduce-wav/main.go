// Command reduce-wav reduces the loudness envelope of a WAV file to sparse
// keyframes, one curve dimension per channel.
//
// Usage:
//
//	reduce-wav input.wav
//	reduce-wav -fps 60 -tolerance 0.01 -o keys.json input.wav
//	reduce-wav -plot envelope.png input.wav
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/tphakala/go-keyreduce"
	"github.com/tphakala/go-keyreduce/internal/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("reduce-wav", flag.ContinueOnError)
	fps := fs.Float64("fps", defaultFPS, "Envelope frames per second")
	tolerance := fs.Float64("tolerance", defaultTolerance, "Relative tolerance in (0, 1]")
	output := fs.String("o", "", "Write keys to this JSON file instead of stdout")
	plot := fs.String("plot", "", "Write a PNG comparison plot")
	verbose := fs.Bool("v", false, "Verbose output")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: reduce-wav [options] input.wav\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != requiredArgs {
		fs.Usage()
		return fmt.Errorf("expected one input file, got %d", fs.NArg())
	}
	inputPath := fs.Arg(0)

	input, err := openWAVInput(inputPath, *verbose)
	if err != nil {
		return err
	}
	env, err := input.readEnvelope(*fps)
	_ = input.Close()
	if err != nil {
		return err
	}

	samples := env.Samples()
	if len(samples) == 0 {
		return fmt.Errorf("no audio data in %s", inputPath)
	}
	if *verbose {
		log.Printf("Envelope: %d frames at %g fps", len(samples), *fps)
	}

	cfg := &keyreduce.Config{RelativeTolerance: float32(*tolerance)}
	res, err := keyreduce.ReduceCurve(samples, cfg)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Reduced %d -> %d keys (%.1fx)",
			res.Stats.InputKeyCount, res.Stats.OutputKeyCount, res.Stats.CompressionRatio())
	}

	doc := report.NewDocument(filepath.Base(inputPath), cfg, res)
	if *output == "" {
		if err := report.WriteJSON(stdout, doc); err != nil {
			return err
		}
	} else if err := writeDocumentFile(doc, *output); err != nil {
		return err
	}

	if *plot != "" {
		cmp := report.Compare(filepath.Base(inputPath), samples, res)
		if err := report.WritePNG(cmp, *plot); err != nil {
			return fmt.Errorf("failed to write plot: %w", err)
		}
	}
	return nil
}

func writeDocumentFile(doc *report.Document, path string) error {
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
