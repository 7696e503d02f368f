package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// FrameRecord is one CSV row of frame-level stats.
type FrameRecord struct {
	Tick         int64   `csv:"tick"`
	Growth       float64 `csv:"growth"`
	ScanY        float64 `csv:"scan_y"`
	Visible      int     `csv:"visible"`
	Distorting   bool    `csv:"distorting"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	P95TickUS    int64   `csv:"p95_tick_us"`
	KernelAvgUS  int64   `csv:"kernel_avg_us"`
	RenderAvgUS  int64   `csv:"render_avg_us"`
}

// OutputManager writes frame records to frames.csv in the output
// directory. A nil manager is valid and writes nothing.
type OutputManager struct {
	frameFile     *os.File
	headerWritten bool
}

// NewOutputManager creates the output directory and frames.csv.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}
	return &OutputManager{frameFile: f}, nil
}

// WriteFrame appends one record, emitting the header on first write.
func (om *OutputManager) WriteFrame(rec FrameRecord) error {
	if om == nil {
		return nil
	}
	records := []FrameRecord{rec}
	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.frameFile); err != nil {
			return fmt.Errorf("writing frame record: %w", err)
		}
		om.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.frameFile); err != nil {
		return fmt.Errorf("writing frame record: %w", err)
	}
	return nil
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.frameFile == nil {
		return nil
	}
	return om.frameFile.Close()
}
