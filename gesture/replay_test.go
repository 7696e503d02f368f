package gesture

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeRecording(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.jsonl")
	if err := os.WriteFile(path, []byte(lines), 0o644); err != nil {
		t.Fatalf("writing recording: %v", err)
	}
	return path
}

func TestReplaySource_ReadsFramesInOrder(t *testing.T) {
	path := writeRecording(t, `{"ts": 100, "hands": []}
{"ts": 133, "hands": []}
{"ts": 166, "hands": []}
`)
	src, err := OpenReplay(path, false)
	if err != nil {
		t.Fatalf("OpenReplay: %v", err)
	}
	defer src.Close()

	want := []float64{100, 133, 166}
	for i, ts := range want {
		f, err := src.Next(context.Background())
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if f.TimestampMS != ts {
			t.Errorf("frame %d: ts = %v, want %v", i, f.TimestampMS, ts)
		}
	}
	if _, err := src.Next(context.Background()); !errors.Is(err, io.EOF) {
		t.Errorf("after last frame: err = %v, want io.EOF", err)
	}
}

func TestReplaySource_MalformedLineIsTransient(t *testing.T) {
	path := writeRecording(t, `not json
{"ts": 50, "hands": []}
`)
	src, err := OpenReplay(path, false)
	if err != nil {
		t.Fatalf("OpenReplay: %v", err)
	}
	defer src.Close()

	_, err = src.Next(context.Background())
	var te *TransientError
	if !errors.As(err, &te) {
		t.Fatalf("malformed line: err = %v, want TransientError", err)
	}

	f, err := src.Next(context.Background())
	if err != nil {
		t.Fatalf("frame after bad line: %v", err)
	}
	if f.TimestampMS != 50 {
		t.Errorf("ts = %v, want 50", f.TimestampMS)
	}
}

func TestReplaySource_DecodesHands(t *testing.T) {
	landmarks := `[`
	for i := 0; i < numLandmarks; i++ {
		if i > 0 {
			landmarks += ","
		}
		landmarks += `{"x": 0.5, "y": 0.25}`
	}
	landmarks += `]`

	path := writeRecording(t, `{"ts": 1, "hands": [`+landmarks+`]}
`)
	src, err := OpenReplay(path, false)
	if err != nil {
		t.Fatalf("OpenReplay: %v", err)
	}
	defer src.Close()

	f, err := src.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if len(f.Hands) != 1 {
		t.Fatalf("hands = %d, want 1", len(f.Hands))
	}
	tip := f.Hands[0][landmarkIndexTip]
	if tip.X != 0.5 || tip.Y != 0.25 {
		t.Errorf("index tip = %+v, want (0.5, 0.25)", tip)
	}
}

func TestReplaySource_CanceledContext(t *testing.T) {
	path := writeRecording(t, `{"ts": 1, "hands": []}
`)
	src, err := OpenReplay(path, false)
	if err != nil {
		t.Fatalf("OpenReplay: %v", err)
	}
	defer src.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.Next(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
