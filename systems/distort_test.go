package systems

import (
	"math"
	"testing"
)

func testDistortion() *Distortion {
	return NewDistortion(11, 5, 2.2)
}

func TestDistortionWeight_ZeroBeyondRadius(t *testing.T) {
	d := testDistortion()
	for _, dist := range []float32{5, 5.001, 20, 1e6} {
		if got := d.Weight(dist); got != 0 {
			t.Errorf("Weight(%v) = %v, want 0", dist, got)
		}
	}
}

func TestDistortionWeight_MaximalAtCursor(t *testing.T) {
	d := testDistortion()
	if got := d.Weight(0); got != 1 {
		t.Errorf("Weight(0) = %v, want 1", got)
	}
	if d.Weight(1) <= d.Weight(4) {
		t.Errorf("weight should fall off with distance: %v <= %v", d.Weight(1), d.Weight(4))
	}
}

func TestDistortionWeight_ContinuousAtBoundary(t *testing.T) {
	d := testDistortion()
	// Approaching the radius from inside, the weight must vanish so the
	// effect leaves no seam at its edge.
	if got := d.Weight(4.999); got > 1e-6 {
		t.Errorf("Weight just inside radius = %v, want ~0", got)
	}
}

func TestDistortionApply_InertWhenMixZero(t *testing.T) {
	d := testDistortion()
	x, y, z, flicker := d.Apply(1, 2, 3, 1, 2, 3, 0.5, 7, 0)
	if x != 1 || y != 2 || z != 3 || flicker != 0 {
		t.Errorf("zero mix moved particle: (%v,%v,%v,%v)", x, y, z, flicker)
	}
}

func TestDistortionApply_InertOutsideRadius(t *testing.T) {
	d := testDistortion()
	x, y, z, flicker := d.Apply(100, 0, 0, 0, 0, 0, 0.5, 7, 1)
	if x != 100 || y != 0 || z != 0 || flicker != 0 {
		t.Errorf("particle outside radius moved: (%v,%v,%v,%v)", x, y, z, flicker)
	}
}

func TestDistortionApply_PerturbsNearCursor(t *testing.T) {
	d := testDistortion()
	x, y, z, flicker := d.Apply(1, 0, 0, 0, 0, 0, 0.5, 7, 1)
	moved := distance3(x, y, z, 1, 0, 0)
	if moved == 0 {
		t.Error("particle near cursor was not perturbed")
	}
	if flicker < 0 || flicker > 1 {
		t.Errorf("flicker %v out of [0,1]", flicker)
	}
	for _, v := range []float32{x, y, z} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("non-finite output: (%v,%v,%v)", x, y, z)
		}
	}
}

func TestDistortionApply_ScalesWithMix(t *testing.T) {
	d := testDistortion()
	x1, y1, z1, _ := d.Apply(1, 0, 0, 0, 0, 0, 0.5, 7, 0.1)
	x2, y2, z2, _ := d.Apply(1, 0, 0, 0, 0, 0, 0.5, 7, 1.0)
	small := distance3(x1, y1, z1, 1, 0, 0)
	large := distance3(x2, y2, z2, 1, 0, 0)
	if small >= large {
		t.Errorf("low mix displaced more than full mix: %v >= %v", small, large)
	}
}
