package game

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// pickRadius is the world-space hit radius for particle picking.
const pickRadius = 0.5

// pickParticle selects the visible particle nearest the mouse ray,
// preferring the hit closest to the camera. Clicking empty space
// clears the selection.
func (g *Game) pickParticle() {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), g.camera3D())
	ox, oy, oz := ray.Position.X, ray.Position.Y, ray.Position.Z
	dx, dy, dz := ray.Direction.X, ray.Direction.Y, ray.Direction.Z

	best := -1
	bestAlong := float32(math.MaxFloat32)
	buf := g.buffer
	for i := 0; i < buf.Len(); i++ {
		if buf.Alpha[i] <= 0 {
			continue
		}
		vx := buf.X[i] - ox
		vy := buf.Y[i] - oy
		vz := buf.Z[i] - oz
		along := vx*dx + vy*dy + vz*dz
		if along < 0 || along >= bestAlong {
			continue
		}
		perp := vx*vx + vy*vy + vz*vz - along*along
		if perp > pickRadius*pickRadius {
			continue
		}
		best = i
		bestAlong = along
	}
	g.inspectIdx = best
}

// inspectLine formats the picked particle for the HUD, resolving its
// immutable components through the ECS. Empty when nothing is picked.
func (g *Game) inspectLine() string {
	i := g.inspectIdx
	if i < 0 {
		return ""
	}
	anatomy := g.anatomyMap.Get(g.arena.entities[i])
	if g.buffer.Alpha[i] <= 0 {
		return fmt.Sprintf("inspect: %s seed %.2f (not built)", anatomy.Region, anatomy.Seed)
	}
	return fmt.Sprintf("inspect: %s seed %.2f at (%.1f, %.1f, %.1f)",
		anatomy.Region, anatomy.Seed,
		g.buffer.X[i], g.buffer.Y[i], g.buffer.Z[i])
}
