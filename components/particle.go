package components

// Region identifies the anatomical group a particle belongs to.
type Region uint8

const (
	RegionHead Region = iota
	RegionStem
	RegionLeaf
)

// String returns the region name for HUD display.
func (r Region) String() string {
	switch r {
	case RegionHead:
		return "head"
	case RegionStem:
		return "stem"
	case RegionLeaf:
		return "leaf"
	}
	return "unknown"
}

// BasePoint is a particle's immutable rest position before shaping.
type BasePoint struct {
	X, Y, Z float32
}

// Anatomy bundles a particle's region and its random seed.
// The seed is a single uniform draw in [0,1) reused for brightness
// variation, spawn-corner selection, and build-front edge jitter.
// Reusing one draw for all three keeps visuals reproducible from
// the field seed alone.
type Anatomy struct {
	Region Region
	Seed   float32
}

// Axis is the particle's local direction vector. For head particles it
// is the unit-sphere spiral point (outward normal proxy); for stem
// particles the radial direction; for leaves the blade tangent used by
// flutter.
type Axis struct {
	X, Y, Z float32
}
