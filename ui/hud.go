package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds everything the HUD line needs for one frame.
type HUDData struct {
	Growth        float64
	ScanY         float32
	Visible       int
	Total         int
	HandsSeen     int
	Pinching      bool
	Distorting    bool
	GestureSource string // "stream", "replay", "keyboard", "fallback"
	Paused        bool

	// Inspect is the picked-particle readout, empty when none.
	Inspect string
}

// HUD renders the status readout in the top-left corner.
type HUD struct{}

// NewHUD creates a HUD.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the readout. Called outside 3D mode.
func (h *HUD) Draw(d HUDData) {
	y := int32(10)
	line := func(s string, c rl.Color) {
		rl.DrawText(s, 10, y, 18, c)
		y += 22
	}

	line(fmt.Sprintf("FPS %d", rl.GetFPS()), rl.Gray)
	line(fmt.Sprintf("growth %5.1f%%  scan %.2f", d.Growth*100, d.ScanY), rl.RayWhite)
	line(fmt.Sprintf("particles %d / %d", d.Visible, d.Total), rl.Gray)

	status := fmt.Sprintf("control: %s", d.GestureSource)
	if d.HandsSeen > 0 {
		status += fmt.Sprintf("  hands %d", d.HandsSeen)
	}
	if d.Pinching {
		status += "  pinch"
	}
	line(status, rl.SkyBlue)

	if d.Distorting {
		line("distortion active", rl.Pink)
	}
	if d.Inspect != "" {
		line(d.Inspect, rl.Lime)
	}
	if d.Paused {
		line("paused", rl.Yellow)
	}
}
