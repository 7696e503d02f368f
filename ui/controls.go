// Package ui renders the HUD and the live shape-parameter panel.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lumenflora/bloom/config"
)

// ControlsPanel exposes the shape parameters as sliders. Values are
// written straight into the shared ShapeConfig; the kernel snapshots
// them once per tick, so no further synchronization is needed on the
// single render thread.
type ControlsPanel struct {
	x, y    float32
	width   float32
	visible bool
}

// NewControlsPanel creates a hidden panel anchored at (x, y).
func NewControlsPanel(x, y, width float32) *ControlsPanel {
	return &ControlsPanel{x: x, y: y, width: width}
}

// Toggle switches panel visibility and reports the new state.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Contains reports whether a screen point falls inside the visible
// panel area, so clicks on sliders do not fall through to the scene.
func (c *ControlsPanel) Contains(x, y float32) bool {
	if !c.visible {
		return false
	}
	return x >= c.x-10 && x <= c.x+c.width+10 && y >= c.y-10 && y <= c.y+310
}

// Draw renders the sliders and applies edits to shape.
func (c *ControlsPanel) Draw(shape *config.ShapeConfig) {
	if !c.visible {
		return
	}

	x, y := c.x, c.y
	w := c.width

	rl.DrawRectangle(int32(x-10), int32(y-10), int32(w+20), 320, rl.Color{R: 12, G: 12, B: 20, A: 215})
	rl.DrawText("Shape", int32(x), int32(y), 20, rl.RayWhite)
	y += 32

	shape.PetalCount = float64(c.slider(&y, "petals", float32(shape.PetalCount), 0, 16))
	shape.Twist = float64(c.slider(&y, "twist", float32(shape.Twist), -4, 4))
	shape.Openness = float64(c.slider(&y, "openness", float32(shape.Openness), 0, 2))
	shape.Detail = float64(c.slider(&y, "detail", float32(shape.Detail), 0, 2))
	shape.Speed = float64(c.slider(&y, "speed", float32(shape.Speed), 0, 3))
	shape.ParticleSize = float64(c.slider(&y, "size", float32(shape.ParticleSize), 0.2, 4))
}

// slider draws one labeled SliderBar row and advances the cursor.
func (c *ControlsPanel) slider(y *float32, label string, value, minVal, maxVal float32) float32 {
	rl.DrawText(label, int32(c.x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: c.x, Y: *y, Width: c.width - 60, Height: 18},
		"", "",
		value, minVal, maxVal,
	)
	rl.DrawText(fmt.Sprintf("%.2f", v), int32(c.x+c.width-52), int32(*y+2), 14, rl.LightGray)
	*y += 28
	return v
}
