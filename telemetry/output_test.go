package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputManager_DisabledIsNil(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	if om != nil {
		t.Fatalf("empty dir should disable output")
	}
	// Nil manager accepts writes and close.
	if err := om.WriteFrame(FrameRecord{Tick: 1}); err != nil {
		t.Errorf("nil WriteFrame: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}

func TestOutputManager_WritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	if err := om.WriteFrame(FrameRecord{Tick: 1, Growth: 0.5, Visible: 1200}); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if err := om.WriteFrame(FrameRecord{Tick: 2, Growth: 0.6, Visible: 1600, Distorting: true}); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "frames.csv"))
	if err != nil {
		t.Fatalf("reading frames.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 records:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "tick,") || !strings.Contains(lines[0], "scan_y") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,0.5,") {
		t.Errorf("unexpected first record: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "2,0.6,") {
		t.Errorf("unexpected second record: %q", lines[2])
	}
}
