package gesture

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// ReplaySource replays a JSONL gesture recording. With pacing enabled
// it sleeps between frames to match the recorded timestamps, so the
// interpreter sees the original cadence; without pacing it delivers
// frames as fast as they are pulled (for the replay tool and tests).
type ReplaySource struct {
	f       *os.File
	scanner *bufio.Scanner
	paced   bool

	prevTS   float64
	havePrev bool
}

// OpenReplay opens a recording file.
func OpenReplay(path string, paced bool) (*ReplaySource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening recording: %w", err)
	}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024)
	return &ReplaySource{f: f, scanner: sc, paced: paced}, nil
}

// Next returns the next recorded frame, pacing by timestamp deltas when
// enabled. Returns io.EOF at the end of the recording.
func (r *ReplaySource) Next(ctx context.Context) (Frame, error) {
	if ctx.Err() != nil {
		return Frame{}, ctx.Err()
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return Frame{}, fmt.Errorf("reading recording: %w", err)
		}
		return Frame{}, io.EOF
	}
	var f Frame
	if err := json.Unmarshal(r.scanner.Bytes(), &f); err != nil {
		return Frame{}, &TransientError{Err: fmt.Errorf("parsing recorded frame: %w", err)}
	}

	if r.paced && r.havePrev {
		delta := f.TimestampMS - r.prevTS
		if delta > 0 {
			select {
			case <-time.After(time.Duration(delta * float64(time.Millisecond))):
			case <-ctx.Done():
				return Frame{}, ctx.Err()
			}
		}
	}
	r.prevTS = f.TimestampMS
	r.havePrev = true
	return f, nil
}

// Close closes the recording file.
func (r *ReplaySource) Close() error {
	return r.f.Close()
}
