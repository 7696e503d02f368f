// gestureplay runs a recorded gesture session through the interpreter
// without graphics and writes the resulting control-signal trace to
// CSV, for tuning the smoothing gains against real recordings.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/lumenflora/bloom/gesture"
)

// TraceRecord is one CSV row of interpreter output.
type TraceRecord struct {
	TimestampMS  float64 `csv:"ts_ms"`
	Hands        int     `csv:"hands"`
	Pinching     bool    `csv:"pinching"`
	Growth       float64 `csv:"growth"`
	CursorActive bool    `csv:"cursor_active"`
	CursorX      float64 `csv:"cursor_x"`
	CursorY      float64 `csv:"cursor_y"`
}

func main() {
	in := flag.String("in", "", "Gesture recording (JSONL)")
	out := flag.String("out", "trace.csv", "Output CSV path")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	if *in == "" {
		slog.Error("missing -in recording path")
		os.Exit(2)
	}
	if err := run(*in, *out); err != nil {
		slog.Error("replay failed", "error", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string) error {
	src, err := gesture.OpenReplay(inPath, false)
	if err != nil {
		return err
	}
	defer src.Close()

	it := gesture.NewInterpreter(gesture.DefaultTuning(), 0)

	var trace []TraceRecord
	ctx := context.Background()
	for {
		f, err := src.Next(ctx)
		if err != nil {
			var transient *gesture.TransientError
			if errors.As(err, &transient) {
				slog.Warn("skipping malformed frame", "error", err)
				continue
			}
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		s := it.Observe(f)
		trace = append(trace, TraceRecord{
			TimestampMS:  f.TimestampMS,
			Hands:        s.HandsSeen,
			Pinching:     s.Pinching,
			Growth:       s.Growth,
			CursorActive: s.CursorActive,
			CursorX:      s.CursorX,
			CursorY:      s.CursorY,
		})
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer outFile.Close()

	if err := gocsv.Marshal(trace, outFile); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	slog.Info("trace written", "frames", len(trace), "path", outPath)
	return nil
}
