package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lumenflora/bloom/components"
)

// FieldSpec describes the particle field to generate. Counts are fixed
// for the life of the process; the field is generated once at startup
// and only derived per-frame values are ever recomputed.
type FieldSpec struct {
	HeadCount  int
	StemCount  int
	LeafCount  int
	LeafBlades int

	HeadRadius  float64
	HeadStretch float64
	HeadLift    float64

	StemTop    float64
	StemBottom float64
	StemRadius float64
	StemBend   float64

	LeafLength float64
	LeafWidth  float64
}

// FieldPoint is one generated particle: immutable base attributes only.
type FieldPoint struct {
	Pos    [3]float32
	Dir    [3]float32
	Seed   float32
	Region components.Region
}

// goldenAngle is the sphere-spiral azimuth increment, pi*(3-sqrt(5)).
const goldenAngle = 2.399963229728653

// GenerateField builds the full particle field: head, stem, then leaf
// blades. All randomness comes from rng, so the field is reproducible
// from a single seed.
func GenerateField(spec FieldSpec, rng *rand.Rand) []FieldPoint {
	pts := make([]FieldPoint, 0, spec.HeadCount+spec.StemCount+spec.LeafCount)
	pts = generateHead(pts, spec, rng)
	pts = generateStem(pts, spec, rng)
	pts = generateLeaves(pts, spec, rng)
	return pts
}

// generateHead distributes points over a unit sphere with a golden-angle
// spiral, then stretches vertically and lifts to form the head volume.
// The unit-sphere point doubles as the particle's outward direction.
func generateHead(pts []FieldPoint, spec FieldSpec, rng *rand.Rand) []FieldPoint {
	n := spec.HeadCount
	for i := 0; i < n; i++ {
		y := 1 - 2*(float64(i)+0.5)/float64(n)
		r := math.Sqrt(1 - y*y)
		theta := goldenAngle * float64(i)
		sx := r * math.Cos(theta)
		sz := r * math.Sin(theta)

		px := sx * spec.HeadRadius
		py := y*spec.HeadRadius*spec.HeadStretch + spec.HeadLift
		pz := sz * spec.HeadRadius

		pts = append(pts, FieldPoint{
			Pos:    [3]float32{float32(px), float32(py), float32(pz)},
			Dir:    [3]float32{float32(sx), float32(y), float32(sz)},
			Seed:   rng.Float32(),
			Region: components.RegionHead,
		})
	}
	return pts
}

// generateStem places points along the vertical axis with a sinusoidal
// horizontal curve, radius tapering linearly toward the top and a random
// angle per point. Direction is the radial unit vector at that angle.
func generateStem(pts []FieldPoint, spec FieldSpec, rng *rand.Rand) []FieldPoint {
	height := spec.StemTop - spec.StemBottom
	for i := 0; i < spec.StemCount; i++ {
		u := rng.Float64() // 0 = bottom, 1 = top
		angle := rng.Float64() * 2 * math.Pi
		taper := 1 - 0.7*u
		radius := spec.StemRadius * taper * math.Sqrt(rng.Float64())

		dx := math.Cos(angle)
		dz := math.Sin(angle)

		py := spec.StemBottom + u*height
		bend := math.Sin(u*math.Pi*0.9) * spec.StemBend * u
		px := dx*radius + bend
		pz := dz*radius + bend*0.4

		pts = append(pts, FieldPoint{
			Pos:    [3]float32{float32(px), float32(py), float32(pz)},
			Dir:    [3]float32{float32(dx), 0, float32(dz)},
			Seed:   rng.Float32(),
			Region: components.RegionStem,
		})
	}
	return pts
}

// generateLeaves builds a small fixed number of blades, each with its
// own attachment height, orientation, and 2D basis. Within a blade,
// points are parameterized lengthwise (u) and widthwise (v) with a
// sine-tapered width profile that vanishes at both ends.
func generateLeaves(pts []FieldPoint, spec FieldSpec, rng *rand.Rand) []FieldPoint {
	blades := spec.LeafBlades
	if blades < 1 {
		blades = 1
	}
	perBlade := spec.LeafCount / blades
	up := r3.Vec{Y: 1}

	for b := 0; b < blades; b++ {
		frac := float64(b) / float64(blades)
		attachY := spec.StemBottom + (1.5+frac*6.0) + rng.Float64()*0.5
		attachAngle := frac*2*math.Pi + rng.Float64()*0.6

		radial := r3.Vec{X: math.Cos(attachAngle), Z: math.Sin(attachAngle)}
		tangent := r3.Unit(r3.Cross(up, radial))
		attach := r3.Vec{X: radial.X * spec.StemRadius, Y: attachY, Z: radial.Z * spec.StemRadius}

		count := perBlade
		if b == blades-1 {
			count = spec.LeafCount - perBlade*(blades-1)
		}
		for i := 0; i < count; i++ {
			u := rng.Float64()
			v := rng.Float64()*2 - 1

			width := math.Sin(u*math.Pi) * spec.LeafWidth * 0.5
			rise := math.Sin(u*math.Pi*0.8) * spec.LeafLength * 0.35

			p := attach
			p = r3.Add(p, r3.Scale(u*spec.LeafLength, radial))
			p = r3.Add(p, r3.Scale(v*width, tangent))
			p = r3.Add(p, r3.Scale(rise, up))

			pts = append(pts, FieldPoint{
				Pos:    [3]float32{float32(p.X), float32(p.Y), float32(p.Z)},
				Dir:    [3]float32{float32(tangent.X), float32(tangent.Y), float32(tangent.Z)},
				Seed:   rng.Float32(),
				Region: components.RegionLeaf,
			})
		}
	}
	return pts
}
