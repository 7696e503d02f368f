package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lumenflora/bloom/components"
)

func testSpec() FieldSpec {
	return FieldSpec{
		HeadCount:   1200,
		StemCount:   300,
		LeafCount:   400,
		LeafBlades:  5,
		HeadRadius:  4.5,
		HeadStretch: 1.2,
		HeadLift:    3.5,
		StemTop:     2,
		StemBottom:  -12,
		StemRadius:  0.45,
		StemBend:    0.8,
		LeafLength:  4,
		LeafWidth:   1.4,
	}
}

func TestGenerateField_Counts(t *testing.T) {
	spec := testSpec()
	pts := GenerateField(spec, rand.New(rand.NewSource(1)))

	if len(pts) != spec.HeadCount+spec.StemCount+spec.LeafCount {
		t.Fatalf("total count = %d, want %d", len(pts), spec.HeadCount+spec.StemCount+spec.LeafCount)
	}

	counts := make(map[components.Region]int)
	for _, p := range pts {
		counts[p.Region]++
	}
	if counts[components.RegionHead] != spec.HeadCount {
		t.Errorf("head count = %d, want %d", counts[components.RegionHead], spec.HeadCount)
	}
	if counts[components.RegionStem] != spec.StemCount {
		t.Errorf("stem count = %d, want %d", counts[components.RegionStem], spec.StemCount)
	}
	if counts[components.RegionLeaf] != spec.LeafCount {
		t.Errorf("leaf count = %d, want %d", counts[components.RegionLeaf], spec.LeafCount)
	}
}

func TestGenerateField_SeedsInUnitInterval(t *testing.T) {
	pts := GenerateField(testSpec(), rand.New(rand.NewSource(2)))
	for i, p := range pts {
		if p.Seed < 0 || p.Seed >= 1 {
			t.Fatalf("particle %d seed %v out of [0,1)", i, p.Seed)
		}
	}
}

func TestGenerateField_Reproducible(t *testing.T) {
	a := GenerateField(testSpec(), rand.New(rand.NewSource(3)))
	b := GenerateField(testSpec(), rand.New(rand.NewSource(3)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("field differs at %d with same seed: %+v != %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateHead_DirectionsAreUnitSpherePoints(t *testing.T) {
	spec := testSpec()
	pts := GenerateField(spec, rand.New(rand.NewSource(4)))
	for i := 0; i < spec.HeadCount; i++ {
		d := pts[i].Dir
		n := math.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]))
		if math.Abs(n-1) > 1e-3 {
			t.Fatalf("head particle %d direction norm %v, want 1", i, n)
		}
	}
}

func TestGenerateStem_WithinVerticalBounds(t *testing.T) {
	spec := testSpec()
	pts := GenerateField(spec, rand.New(rand.NewSource(5)))
	for i := spec.HeadCount; i < spec.HeadCount+spec.StemCount; i++ {
		y := float64(pts[i].Pos[1])
		if y < spec.StemBottom || y > spec.StemTop {
			t.Fatalf("stem particle %d at y %v outside [%v,%v]", i, y, spec.StemBottom, spec.StemTop)
		}
	}
}

func TestGenerateLeaves_AttachAboveStemBottom(t *testing.T) {
	spec := testSpec()
	pts := GenerateField(spec, rand.New(rand.NewSource(6)))
	for i := spec.HeadCount + spec.StemCount; i < len(pts); i++ {
		if pts[i].Pos[1] < float32(spec.StemBottom) {
			t.Fatalf("leaf particle %d below stem bottom: y=%v", i, pts[i].Pos[1])
		}
	}
}
