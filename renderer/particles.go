// Package renderer draws the kernel's particle buffer and the build
// front overlays. It consumes finished frame buffers only; all shape
// and construction math lives in systems.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lumenflora/bloom/systems"
)

// FlowerRenderer streams the frame buffer to the screen inside an
// active 3D mode. Particles are drawn back-to-front-agnostic as
// additive-ish points; slots with zero alpha were suppressed by the
// construction pass and are skipped.
type FlowerRenderer struct {
	// visible is updated each Draw for the HUD.
	visible int
}

// NewFlowerRenderer creates a particle renderer.
func NewFlowerRenderer() *FlowerRenderer {
	return &FlowerRenderer{}
}

// Draw renders all visible particles. Per-particle Size already
// carries the configured size hint and the arrival flash boost.
func (r *FlowerRenderer) Draw(buf *systems.FrameBuffer) {
	n := buf.Len()
	visible := 0
	for i := 0; i < n; i++ {
		a := buf.Alpha[i]
		if a <= 0 {
			continue
		}
		visible++
		if a > 1 {
			a = 1
		}
		col := rl.Color{R: buf.R[i], G: buf.G[i], B: buf.B[i], A: uint8(a * 255)}
		pos := rl.Vector3{X: buf.X[i], Y: buf.Y[i], Z: buf.Z[i]}

		size := buf.Size[i]
		if size <= 1 {
			rl.DrawPoint3D(pos, col)
		} else {
			// Flashing particles get a small cube so the highlight reads
			// at distance.
			s := size * 0.03
			rl.DrawCubeV(pos, rl.Vector3{X: s, Y: s, Z: s}, col)
		}
	}
	r.visible = visible
}

// VisibleCount returns the number of particles drawn last frame.
func (r *FlowerRenderer) VisibleCount() int {
	return r.visible
}
