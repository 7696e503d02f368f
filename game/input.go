package game

import rl "github.com/gen2brain/raylib-go/raylib"

// keyGrowthRate is the per-frame growth delta while an arrow is held
// in keyboard control mode.
const keyGrowthRate = 0.008

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyO) {
		g.overlays.ShowScanPlane = !g.overlays.ShowScanPlane
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		if !g.panel.Contains(mouse.X, mouse.Y) {
			g.pickParticle()
		}
	}

	g.handleCameraInput()
	g.handleGrowthKeys()
}

// handleCameraInput orbits and dollies the camera.
func (g *Game) handleCameraInput() {
	if rl.IsKeyDown(rl.KeyRight) {
		g.orbit.Rotate(0.03, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.orbit.Rotate(-0.03, 0)
	}
	if rl.IsKeyDown(rl.KeyPageUp) {
		g.orbit.Rotate(0, 0.02)
	}
	if rl.IsKeyDown(rl.KeyPageDown) {
		g.orbit.Rotate(0, -0.02)
	}

	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		delta := rl.GetMouseDelta()
		g.orbit.Rotate(float64(delta.X)*0.005, float64(-delta.Y)*0.005)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.orbit.Dolly(1 - float64(wheel)*0.08)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.orbit.Reset()
	}
}

// handleGrowthKeys drives growth manually when no gesture source is
// attached: up/down arrows ramp, B snaps to built, R to reset. Values
// pass through the interpreter so its clamping applies.
func (g *Game) handleGrowthKeys() {
	if g.gestureSource != "keyboard" {
		return
	}
	switch {
	case rl.IsKeyDown(rl.KeyUp):
		g.keyGrowth += keyGrowthRate
	case rl.IsKeyDown(rl.KeyDown):
		g.keyGrowth -= keyGrowthRate
	case rl.IsKeyPressed(rl.KeyB):
		g.keyGrowth = 1
	case rl.IsKeyPressed(rl.KeyR):
		g.keyGrowth = 0
	default:
		return
	}
	if g.keyGrowth < 0 {
		g.keyGrowth = 0
	}
	if g.keyGrowth > 1 {
		g.keyGrowth = 1
	}
	g.interp.ForceGrowth(g.keyGrowth)
	g.signals.Growth = g.interp.Growth()
}
