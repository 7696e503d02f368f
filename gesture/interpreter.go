package gesture

import "math"

// Tuning holds the interpreter's classification and smoothing
// parameters. Zero value is not usable; start from DefaultTuning.
type Tuning struct {
	// PinchThreshold is the strict upper bound on the aspect-corrected
	// thumb-index distance. Exactly the threshold is not a pinch.
	PinchThreshold float64

	// SnapHigh / SnapLow are the dead-zone bounds: raw targets above
	// SnapHigh become 1, below SnapLow become 0.
	SnapHigh float64
	SnapLow  float64

	// PinchGain is the exponential smoothing gain while pinching;
	// SettleGain drives the terminal auto-snap when released.
	PinchGain  float64
	SettleGain float64

	// MidLow / MidHigh bound the midpoint-y band mapped linearly onto
	// progress [0,1].
	MidLow  float64
	MidHigh float64

	// Aspect is the detector frame's width/height ratio, applied to the
	// horizontal axis so pinch distance is measured in square pixels.
	Aspect float64
}

// DefaultTuning returns the stock interpreter parameters.
func DefaultTuning() Tuning {
	return Tuning{
		PinchThreshold: 0.06,
		SnapHigh:       0.85,
		SnapLow:        0.15,
		PinchGain:      0.15,
		SettleGain:     0.10,
		MidLow:         0.2,
		MidHigh:        0.8,
		Aspect:         4.0 / 3.0,
	}
}

// Interpreter accumulates growth state across detection frames. It is
// not safe for concurrent use; a single runner goroutine owns it and
// publishes snapshots through a Cell.
type Interpreter struct {
	tuning Tuning
	growth float64
	lastTS float64
	last   Signals
	seen   bool
}

// NewInterpreter creates an interpreter starting at the given growth.
func NewInterpreter(tuning Tuning, growth float64) *Interpreter {
	it := &Interpreter{tuning: tuning, growth: clampUnit(growth)}
	it.last = Signals{Growth: it.growth}
	return it
}

// Growth returns the current growth scalar.
func (it *Interpreter) Growth() float64 {
	return it.growth
}

// ForceGrowth overrides the growth scalar, used by keyboard control.
func (it *Interpreter) ForceGrowth(g float64) {
	it.growth = clampUnit(g)
	it.last.Growth = it.growth
}

// PinchDistance returns the aspect-corrected Euclidean distance between
// the thumb and index fingertips.
func PinchDistance(h Hand, aspect float64) float64 {
	dx := (h[landmarkThumbTip].X - h[landmarkIndexTip].X) * aspect
	dy := h[landmarkThumbTip].Y - h[landmarkIndexTip].Y
	return math.Hypot(dx, dy)
}

// pinchMid returns whether the hand is pinching and the pinch midpoint.
func (it *Interpreter) pinchMid(h Hand) (bool, Point) {
	d := PinchDistance(h, it.tuning.Aspect)
	mid := Point{
		X: (h[landmarkThumbTip].X + h[landmarkIndexTip].X) / 2,
		Y: (h[landmarkThumbTip].Y + h[landmarkIndexTip].Y) / 2,
	}
	return d < it.tuning.PinchThreshold, mid
}

// Observe processes one detection frame and returns the resulting
// signals. Frames whose timestamp has not advanced past the previous
// pass are dropped and the prior signals returned unchanged, so a
// jittery detector cadence cannot double-apply smoothing steps.
func (it *Interpreter) Observe(f Frame) Signals {
	if it.seen && f.TimestampMS <= it.lastTS {
		return it.last
	}
	it.lastTS = f.TimestampMS
	it.seen = true

	s := Signals{HandsSeen: len(f.Hands)}

	pinching := false
	var mid Point
	if len(f.Hands) > 0 {
		pinching, mid = it.pinchMid(f.Hands[0])
	}
	it.updateGrowth(pinching, mid)
	s.Pinching = pinching
	s.Growth = it.growth

	if len(f.Hands) > 1 {
		if ok, m := it.pinchMid(f.Hands[1]); ok {
			// Flip both axes so screen-up and screen-right are positive.
			s.CursorX = 1 - 2*m.X
			s.CursorY = 1 - 2*m.Y
			s.CursorActive = true
		}
	}

	it.last = s
	return s
}

// updateGrowth applies the pinch-driven smoothing rule, or the terminal
// auto-snap when not pinching. Releasing mid-range holds growth exactly
// where it is.
func (it *Interpreter) updateGrowth(pinching bool, mid Point) {
	tn := it.tuning
	if pinching {
		span := tn.MidHigh - tn.MidLow
		raw := clampUnit((mid.Y - tn.MidLow) / span)
		if raw > tn.SnapHigh {
			raw = 1
		} else if raw < tn.SnapLow {
			raw = 0
		}
		it.growth += (raw - it.growth) * tn.PinchGain
		return
	}
	if it.growth > tn.SnapHigh {
		it.growth += (1 - it.growth) * tn.SettleGain
	} else if it.growth < tn.SnapLow {
		it.growth += (0 - it.growth) * tn.SettleGain
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
