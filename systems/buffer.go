package systems

// FrameBuffer is the per-frame kernel output: one slot per particle,
// structure-of-arrays so the renderer can stream it without chasing
// pointers. Allocated once at startup and reused every tick. A slot
// with Alpha 0 is suppressed (not drawn).
type FrameBuffer struct {
	X, Y, Z []float32
	R, G, B []uint8
	Alpha   []float32
	Size    []float32

	// Derived per-frame scalars the compositor may use.
	ScanY                     float32
	CursorX, CursorY, CursorZ float32
	CursorActive              bool
}

// NewFrameBuffer allocates a buffer for n particles.
func NewFrameBuffer(n int) *FrameBuffer {
	return &FrameBuffer{
		X: make([]float32, n), Y: make([]float32, n), Z: make([]float32, n),
		R: make([]uint8, n), G: make([]uint8, n), B: make([]uint8, n),
		Alpha: make([]float32, n),
		Size:  make([]float32, n),
	}
}

// Len returns the buffer capacity in particles.
func (b *FrameBuffer) Len() int {
	return len(b.X)
}
