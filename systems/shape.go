package systems

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/lumenflora/bloom/components"
)

// ShapeParams are the per-frame shape tuning values. The UI mutates
// them live; the kernel snapshots them once per tick. Any finite value
// is accepted, degenerate values degrade to trivial output.
type ShapeParams struct {
	PetalCount float32
	Twist      float32
	Openness   float32
	Detail     float32
}

// Shaper is the pure shape field: base position in, displaced final
// position out. The noise generator is seeded once at construction and
// never mutated afterward, so identical inputs always produce identical
// output.
type Shaper struct {
	noise opensimplex.Noise

	// Vertical extent of the structure, for normalized-height bends.
	yMin, yMax float32
}

// NewShaper creates a shape field with a fixed noise seed and the
// structure's vertical extent.
func NewShaper(seed int64, yMin, yMax float32) *Shaper {
	return &Shaper{
		noise: opensimplex.New(seed),
		yMin:  yMin,
		yMax:  yMax,
	}
}

// Displace maps a particle's base attributes to its shaped position and
// a displacement magnitude. Displacement is nonzero only for head
// particles, where it drives the petal coloring downstream.
func (s *Shaper) Displace(px, py, pz float32, dir [3]float32, region components.Region, p ShapeParams, t float32) (x, y, z, disp float32) {
	switch region {
	case components.RegionHead:
		return s.displaceHead(px, py, pz, dir, p, t)
	case components.RegionLeaf:
		x, y, z = s.bend(px, py, pz, t)
		// Per-particle flutter along the blade tangent.
		hn := s.heightNorm(py)
		f := float32(math.Sin(float64(t*2+py*0.5))) * 0.05 * hn
		return x + dir[0]*f, y + dir[1]*f, z + dir[2]*f, 0
	default:
		x, y, z = s.bend(px, py, pz, t)
		return x, y, z, 0
	}
}

// displaceHead applies the petal fold, bloom, and surface-noise terms.
// The particle's unit-sphere direction carries its spherical angles.
func (s *Shaper) displaceHead(px, py, pz float32, dir [3]float32, p ShapeParams, t float32) (x, y, z, disp float32) {
	theta := float32(math.Atan2(float64(dir[2]), float64(dir[0])))
	phi := float32(math.Acos(float64(clampFloat(dir[1], -1, 1))))

	theta += phi * p.Twist
	petals := float32(math.Sin(float64(theta * p.PetalCount)))

	fold := petals * 0.15
	bloom := smoothstep(0, 1.5, 1.5-phi) * p.Openness * petals
	noise := float32(s.noise.Eval4(float64(px)*0.8, float64(py)*0.8, float64(pz)*0.8, float64(t)*0.2)) * p.Detail * 0.1

	disp = fold + bloom + noise

	// Push outward along a flattened normal; vertical component halved
	// so petals spread sideways rather than ballooning.
	x = px + dir[0]*disp
	y = py + dir[1]*0.5*disp
	z = pz + dir[2]*disp

	// Global horizontal sway.
	x += float32(math.Sin(float64(t*0.3))) * 0.3
	return x, y, z, disp
}

// bend applies the height-dependent sway shared by stem and leaves:
// quadratic ease over normalized height, two independent slow waves.
func (s *Shaper) bend(px, py, pz, t float32) (x, y, z float32) {
	hn := s.heightNorm(py)
	amount := hn * hn
	x = px + float32(math.Sin(float64(t*0.7)))*0.4*amount
	z = pz + float32(math.Cos(float64(t*0.5)))*0.3*amount
	return x, py, z
}

func (s *Shaper) heightNorm(py float32) float32 {
	if s.yMax == s.yMin {
		return 0
	}
	return clamp01((py - s.yMin) / (s.yMax - s.yMin))
}
