package systems

import "testing"

func testPalette(t *testing.T) *Palette {
	t.Helper()
	p, err := NewPalette("#ffd27a", "#c2356b", "#1d3a24", "#2f5d33", "#fff3c8")
	if err != nil {
		t.Fatalf("building palette: %v", err)
	}
	return p
}

func TestNewPalette_RejectsBadHex(t *testing.T) {
	if _, err := NewPalette("nope", "#c2356b", "#1d3a24", "#2f5d33", "#fff3c8"); err == nil {
		t.Error("expected error for invalid inner color")
	}
	if _, err := NewPalette("#ffd27a", "#c2356b", "#1d3a24", "#2f5d33", ""); err == nil {
		t.Error("expected error for empty thermal color")
	}
}

func TestPalette_GradientEndpoints(t *testing.T) {
	p := testPalette(t)

	inner := p.Head(0)
	if inner.R != 0xff || inner.G != 0xd2 || inner.B != 0x7a {
		t.Errorf("Head(0) = %+v, want inner tone ffd27a", inner)
	}
	outer := p.Head(1)
	if outer.R != 0xc2 || outer.G != 0x35 || outer.B != 0x6b {
		t.Errorf("Head(1) = %+v, want outer tone c2356b", outer)
	}
	stem := p.Foliage(0)
	if stem.R != 0x1d || stem.G != 0x3a || stem.B != 0x24 {
		t.Errorf("Foliage(0) = %+v, want stem tone 1d3a24", stem)
	}
}

func TestPalette_SampleClampsT(t *testing.T) {
	p := testPalette(t)
	if p.Head(-3) != p.Head(0) {
		t.Error("negative t should clamp to gradient start")
	}
	if p.Head(7) != p.Head(1) {
		t.Error("t above 1 should clamp to gradient end")
	}
}

func TestBlendThermal_Weights(t *testing.T) {
	p := testPalette(t)
	base := RGB{R: 10, G: 20, B: 30}

	if got := p.BlendThermal(base, 0); got != base {
		t.Errorf("weight 0 changed color: %+v", got)
	}
	if got := p.BlendThermal(base, 1); got != p.Thermal() {
		t.Errorf("weight 1 = %+v, want thermal %+v", got, p.Thermal())
	}

	mid := p.BlendThermal(base, 0.5)
	if mid.R <= base.R || mid.R >= p.Thermal().R {
		t.Errorf("midpoint red %d not between %d and %d", mid.R, base.R, p.Thermal().R)
	}
}
