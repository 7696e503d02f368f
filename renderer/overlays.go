package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lumenflora/bloom/systems"
)

// OverlayRenderer draws the build-front plane and the distortion
// cursor marker. Both are derived quantities from the frame buffer;
// the core computes them, this side only visualizes.
type OverlayRenderer struct {
	ShowScanPlane bool
	ShowCursor    bool
}

// NewOverlayRenderer creates an overlay renderer with both overlays on.
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{ShowScanPlane: true, ShowCursor: true}
}

// Draw renders the enabled overlays inside an active 3D mode.
func (o *OverlayRenderer) Draw(buf *systems.FrameBuffer) {
	if o.ShowScanPlane && buf.ScanY > systems.ScanBottom && buf.ScanY < systems.ScanTop {
		center := rl.Vector3{X: 0, Y: buf.ScanY, Z: 0}
		size := rl.Vector3{X: 30, Y: 0.02, Z: 30}
		rl.DrawCubeV(center, size, rl.Color{R: 120, G: 200, B: 255, A: 28})
		rl.DrawCubeWiresV(center, size, rl.Color{R: 120, G: 200, B: 255, A: 70})
	}

	if o.ShowCursor && buf.CursorActive {
		pos := rl.Vector3{X: buf.CursorX, Y: buf.CursorY, Z: buf.CursorZ}
		rl.DrawSphereWires(pos, 0.5, 8, 8, rl.Color{R: 255, G: 120, B: 160, A: 200})
	}
}
