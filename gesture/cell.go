package gesture

import "sync/atomic"

// Cell is the single-producer/single-consumer hand-off between the
// detection runner and the render loop. The runner swaps in a fresh
// snapshot per detection pass; the render loop loads whatever is
// current. Neither side ever blocks.
type Cell struct {
	p atomic.Pointer[Signals]
}

// NewCell creates a cell holding the given initial signals.
func NewCell(initial Signals) *Cell {
	c := &Cell{}
	c.Publish(initial)
	return c
}

// Publish replaces the current signals. Caller must be the sole writer.
func (c *Cell) Publish(s Signals) {
	c.p.Store(&s)
}

// Load returns the most recently published signals.
func (c *Cell) Load() Signals {
	return *c.p.Load()
}
