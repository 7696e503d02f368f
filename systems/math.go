package systems

import "math"

// Scalar helpers shared by the shape and construction kernels.

// clamp01 clamps a float32 value to the [0, 1] range.
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampFloat clamps a float32 value between min and max.
func clampFloat(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// lerp interpolates linearly between a and b.
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothstep is the standard cubic hermite step between edge0 and edge1.
// Degenerate edges (edge0 == edge1) collapse to a hard threshold.
func smoothstep(edge0, edge1, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// fract returns the fractional part of v.
func fract(v float32) float32 {
	return v - float32(math.Floor(float64(v)))
}

// distance3 returns the Euclidean distance between two 3D points.
func distance3(x1, y1, z1, x2, y2, z2 float32) float32 {
	dx := x1 - x2
	dy := y1 - y2
	dz := z1 - z2
	return float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
}
