package systems

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Distortion perturbs built particle positions around the gesture
// cursor: amplified swirl, outward scatter, vertical jitter, and an
// alpha/color flicker. Intensity is maximal at the cursor, falls off
// smoothly, and is exactly zero beyond Radius, so the effect never pops
// on engage or leaves a seam on release.
type Distortion struct {
	noise    opensimplex.Noise
	Radius   float32
	Strength float32
}

// NewDistortion creates a distortion field with its own noise stream.
func NewDistortion(seed int64, radius, strength float32) *Distortion {
	return &Distortion{
		noise:    opensimplex.New(seed),
		Radius:   radius,
		Strength: strength,
	}
}

// Weight returns the falloff at distance d from the cursor: a quintic
// smootherstep from 1 at the cursor to 0 at Radius, C1-continuous at
// the boundary.
func (d *Distortion) Weight(dist float32) float32 {
	if dist >= d.Radius || d.Radius <= 0 {
		return 0
	}
	q := 1 - dist/d.Radius
	return q * q * q * (q*(q*6-15) + 10)
}

// Apply perturbs a particle position. mix is the engage/release
// envelope in [0,1] smoothed by the frame driver; seed is the
// particle's random seed; t is shaped time. Returns the displaced
// position and a flicker value in [0,1] for alpha/color modulation.
func (d *Distortion) Apply(px, py, pz, cx, cy, cz, seed, t, mix float32) (x, y, z, flicker float32) {
	if mix <= 0 {
		return px, py, pz, 0
	}
	dist := distance3(px, py, pz, cx, cy, cz)
	w := d.Weight(dist) * mix
	if w <= 0 {
		return px, py, pz, 0
	}

	// Swirl around the vertical axis through the cursor.
	rx := px - cx
	rz := pz - cz
	n := float32(d.noise.Eval3(float64(seed)*7.3, float64(t)*1.5, 0))
	angle := float64(w * d.Strength * (1 + 0.5*n))
	sin, cos := math.Sincos(angle)
	sx := rx*float32(cos) - rz*float32(sin)
	sz := rx*float32(sin) + rz*float32(cos)

	// Outward scatter and vertical jitter.
	scatter := 1 + w*0.6*(0.5+0.5*n)
	jitter := float32(math.Sin(float64(t*14+seed*40))) * w * 0.35

	x = cx + sx*scatter
	y = py + jitter
	z = cz + sz*scatter

	flicker = w * (0.5 + 0.5*float32(d.noise.Eval3(float64(seed)*19.1, float64(t)*3.0, 1)))
	return x, y, z, flicker
}
