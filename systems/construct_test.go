package systems

import (
	"math"
	"testing"
)

func TestScanY_Endpoints(t *testing.T) {
	if got := ScanY(0); got != 10 {
		t.Errorf("ScanY(0) = %v, want 10", got)
	}
	if got := ScanY(1); got != -12 {
		t.Errorf("ScanY(1) = %v, want -12", got)
	}
}

func TestScanY_MonotonicallyDecreasing(t *testing.T) {
	prev := ScanY(0)
	for g := float32(0.01); g <= 1.0; g += 0.01 {
		cur := ScanY(g)
		if cur >= prev {
			t.Fatalf("ScanY not decreasing at growth %v: %v >= %v", g, cur, prev)
		}
		prev = cur
	}
}

func TestScanY_ClampsOutOfRange(t *testing.T) {
	if got := ScanY(-0.5); got != 10 {
		t.Errorf("ScanY(-0.5) = %v, want 10", got)
	}
	if got := ScanY(1.5); got != -12 {
		t.Errorf("ScanY(1.5) = %v, want -12", got)
	}
}

func TestActivation_FixedPoints(t *testing.T) {
	// Growth 0: scan plane at the top, a particle well below it must be
	// fully inactive regardless of edge noise.
	if got := Activation(-5, ScanY(0), 0.99); got != 0 {
		t.Errorf("particle far below scan plane: activation = %v, want 0", got)
	}
	// Growth 1: scan plane at the bottom, a particle well above it must
	// be fully active.
	if got := Activation(5, ScanY(1), 0.01); got != 1 {
		t.Errorf("particle far above scan plane: activation = %v, want 1", got)
	}
}

func TestActivation_EdgeNoiseShiftsFront(t *testing.T) {
	// Two particles at the same height but different seeds should sit
	// at different points of the build transition.
	scan := float32(0)
	a := Activation(0, scan, 0.0)
	b := Activation(0, scan, 1.0)
	if a == b {
		t.Errorf("expected seed-dependent activation, got %v for both", a)
	}
}

func TestActivation_Deterministic(t *testing.T) {
	for _, seed := range []float32{0, 0.25, 0.5, 0.99} {
		a := Activation(1.3, -0.7, seed)
		b := Activation(1.3, -0.7, seed)
		if a != b {
			t.Fatalf("activation not reproducible for seed %v: %v != %v", seed, a, b)
		}
	}
}

func TestBuildEase_Endpoints(t *testing.T) {
	if got := BuildEase(0); got != 0 {
		t.Errorf("BuildEase(0) = %v, want 0", got)
	}
	if got := BuildEase(1); got != 1 {
		t.Errorf("BuildEase(1) = %v, want 1", got)
	}
	// Quartic ease-out rises fast early.
	if got := BuildEase(0.5); got <= 0.9 {
		t.Errorf("BuildEase(0.5) = %v, want > 0.9", got)
	}
}

func TestSpawnPoint_DeterministicPerSeed(t *testing.T) {
	x1, y1, z1 := SpawnPoint(0.42)
	x2, y2, z2 := SpawnPoint(0.42)
	if x1 != x2 || y1 != y2 || z1 != z2 {
		t.Errorf("spawn point not deterministic: (%v,%v,%v) != (%v,%v,%v)", x1, y1, z1, x2, y2, z2)
	}
}

func TestSpawnPoint_CoversAllCorners(t *testing.T) {
	signs := make(map[[2]bool]bool)
	for _, seed := range []float32{0.1, 0.3, 0.6, 0.9} {
		x, _, z := SpawnPoint(seed)
		signs[[2]bool{x > 0, z > 0}] = true
	}
	if len(signs) != 4 {
		t.Errorf("expected 4 distinct corner quadrants, got %d", len(signs))
	}
}

func TestFlash_BandLimits(t *testing.T) {
	for _, a := range []float32{0, 0.4, 0.5, 1} {
		if got := Flash(a); got != 0 {
			t.Errorf("Flash(%v) = %v, want 0 outside band", a, got)
		}
	}
	if got := Flash(0.15); got <= 0 {
		t.Errorf("Flash(0.15) = %v, want > 0", got)
	}
	// Peak region beats band edges.
	if Flash(0.15) <= Flash(0.05) || Flash(0.15) <= Flash(0.38) {
		t.Errorf("flash should peak near 0.15: %v vs %v, %v", Flash(0.15), Flash(0.05), Flash(0.38))
	}
}

func TestHeat_FadesWithActivation(t *testing.T) {
	if got := Heat(0); got != 1 {
		t.Errorf("Heat(0) = %v, want 1", got)
	}
	if got := Heat(0.4); got != 0 {
		t.Errorf("Heat(0.4) = %v, want 0", got)
	}
	if Heat(0.1) <= Heat(0.3) {
		t.Errorf("heat should fade as activation rises: %v <= %v", Heat(0.1), Heat(0.3))
	}
}

func TestSmoothstep_Degenerate(t *testing.T) {
	if got := smoothstep(1, 1, 0.5); got != 0 {
		t.Errorf("degenerate smoothstep below edge = %v, want 0", got)
	}
	if got := smoothstep(1, 1, 2); got != 1 {
		t.Errorf("degenerate smoothstep above edge = %v, want 1", got)
	}
}

func TestVisibleActivation_SuppressionThreshold(t *testing.T) {
	// Sanity: the cutoff must sit below any activation the flash band
	// considers interesting.
	if VisibleActivation >= 0.4 {
		t.Errorf("suppression cutoff %v overlaps the flash band", VisibleActivation)
	}
	if math.IsNaN(float64(VisibleActivation)) {
		t.Error("suppression cutoff is NaN")
	}
}
