package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// BackgroundRenderer fills the frame with a vertical night gradient so
// the particle field reads against something other than flat black.
type BackgroundRenderer struct {
	top    rl.Color
	bottom rl.Color
}

// NewBackgroundRenderer creates the default dusk gradient.
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{
		top:    rl.Color{R: 8, G: 8, B: 18, A: 255},
		bottom: rl.Color{R: 24, G: 12, B: 32, A: 255},
	}
}

// Draw fills the screen. Called before 3D mode begins.
func (b *BackgroundRenderer) Draw(screenW, screenH int32) {
	rl.DrawRectangleGradientV(0, 0, screenW, screenH, b.top, b.bottom)
}
