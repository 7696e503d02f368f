package gesture

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// Runner owns a Source and an Interpreter on a dedicated goroutine and
// publishes each pass's signals to a Cell. It is the cell's only
// writer; the render loop is the only reader.
type Runner struct {
	src  Source
	it   *Interpreter
	cell *Cell
}

// NewRunner wires a source, interpreter, and output cell together.
func NewRunner(src Source, it *Interpreter, cell *Cell) *Runner {
	return &Runner{src: src, it: it, cell: cell}
}

// Run consumes frames until the source ends or ctx is cancelled.
// Transient per-frame failures are swallowed: the previous signals
// stay published for that tick. Once ctx is cancelled no further
// signal is published.
func (r *Runner) Run(ctx context.Context) {
	defer r.src.Close()
	for {
		f, err := r.src.Next(ctx)
		if err != nil {
			var transient *TransientError
			switch {
			case errors.As(err, &transient):
				slog.Debug("dropping malformed detection frame", "error", err)
				continue
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				return
			case errors.Is(err, io.EOF):
				slog.Info("gesture source ended")
				return
			default:
				slog.Warn("gesture source failed, control frozen", "error", err)
				return
			}
		}
		if ctx.Err() != nil {
			return
		}
		r.cell.Publish(r.it.Observe(f))
	}
}

// Fallback publishes the safe terminal state used when the detector is
// unavailable or permission was denied: fully built, no distortion. The
// structure then displays statically.
func Fallback(cell *Cell) {
	cell.Publish(Signals{Growth: 1})
}
