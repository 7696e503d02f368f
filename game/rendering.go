package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lumenflora/bloom/telemetry"
	"github.com/lumenflora/bloom/ui"
)

// Draw renders the frame: background, 3D particle pass, overlays, HUD.
func (g *Game) Draw() {
	if !g.paused {
		g.perf.StartPhase(telemetry.PhaseRender)
	}

	rl.BeginDrawing()
	g.bg.Draw(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))

	rl.BeginMode3D(g.camera3D())
	g.flowers.Draw(g.buffer)
	g.overlays.Draw(g.buffer)
	rl.EndMode3D()

	g.hud.Draw(ui.HUDData{
		Growth:        g.signals.Growth,
		ScanY:         g.buffer.ScanY,
		Visible:       g.flowers.VisibleCount(),
		Total:         g.arena.len(),
		HandsSeen:     g.signals.HandsSeen,
		Pinching:      g.signals.Pinching,
		Distorting:    g.buffer.CursorActive,
		GestureSource: g.gestureSource,
		Paused:        g.paused,
		Inspect:       g.inspectLine(),
	})
	g.panel.Draw(&g.cfg.Shape)

	rl.EndDrawing()

	if !g.paused {
		g.perf.EndTick()
	}
}

// camera3D builds the raylib camera from the orbit state.
func (g *Game) camera3D() rl.Camera3D {
	ex, ey, ez := g.orbit.Eye()
	return rl.Camera3D{
		Position:   rl.Vector3{X: float32(ex), Y: float32(ey), Z: float32(ez)},
		Target:     rl.Vector3{X: float32(g.orbit.TargetX), Y: float32(g.orbit.TargetY), Z: float32(g.orbit.TargetZ)},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
