package systems

import "github.com/tanema/gween/ease"

// Construction controller: everything here is a pure function of the
// shared growth scalar plus a particle's immutable attributes, so the
// whole build state is recomputed from scratch each frame.

// Scan plane bounds. Growth 0 puts the plane above the structure,
// growth 1 below it.
const (
	ScanTop    float32 = 10
	ScanBottom float32 = -12
)

// VisibleActivation is the hard suppression cutoff; particles below it
// are not emitted at all.
const VisibleActivation float32 = 0.01

// ScanY returns the build-front height for a growth value.
func ScanY(growth float32) float32 {
	return lerp(ScanTop, ScanBottom, clamp01(growth))
}

// Activation returns the particle's 0-1 build completeness. The seed
// adds +-1 of edge noise before the smoothstep so the front is a noisy
// band rather than a hard planar cut.
func Activation(finalY, scanY, seed float32) float32 {
	edgeNoise := (seed - 0.5) * 2
	return smoothstep(-1, 1, finalY-scanY+edgeNoise)
}

// BuildEase converts activation into the spatial interpolation factor.
// Quartic ease-out: particles snap toward their final position quickly
// once activation rises.
func BuildEase(activation float32) float32 {
	return ease.OutQuart(clamp01(activation), 0, 1, 1)
}

// spawnCorners are the four fixed emission points particles fly in from.
var spawnCorners = [4][3]float32{
	{-18, 14, -18},
	{18, 14, -18},
	{-18, 14, 18},
	{18, 14, 18},
}

// SpawnPoint returns the particle's emission position: one of four
// corners picked by the seed, plus a small jitter derived from the same
// seed so the pick stays deterministic per particle.
func SpawnPoint(seed float32) (x, y, z float32) {
	idx := int(seed * 4)
	if idx > 3 {
		idx = 3
	}
	c := spawnCorners[idx]
	jx := (fract(seed*13.7) - 0.5) * 4
	jy := (fract(seed*41.3) - 0.5) * 4
	jz := (fract(seed*77.9) - 0.5) * 4
	return c[0] + jx, c[1] + jy, c[2] + jz
}

// Flash is the transient arrival highlight: a narrow band over
// activation in (0, 0.4), peaking near 0.15, zero elsewhere.
func Flash(activation float32) float32 {
	if activation <= 0 || activation >= 0.4 {
		return 0
	}
	return smoothstep(0, 0.12, activation) * smoothstep(0.4, 0.18, activation)
}

// Heat is the thermal-highlight weight: particles just past the build
// front glow hot and fade as they settle.
func Heat(activation float32) float32 {
	return smoothstep(0.4, 0, activation)
}
