package systems

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit color triple. Kept free of renderer types so the
// kernel stays independent of the drawing backend.
type RGB struct {
	R, G, B uint8
}

// lutSize is the gradient resolution; plenty for smooth per-particle
// indexing without per-particle color-space math in the hot loop.
const lutSize = 256

// Palette holds precomputed color gradients for each region plus the
// thermal build-front highlight. Gradients are blended in Lab space at
// build time; the kernel only indexes and lerps bytes.
type Palette struct {
	head    [lutSize]RGB
	foliage [lutSize]RGB
	thermal RGB
}

// NewPalette parses the configured hex colors and bakes the lookup
// tables. Head blends inner to outer tone; stem and leaves blend
// between the two dark foliage tones.
func NewPalette(innerHex, outerHex, stemHex, leafHex, thermalHex string) (*Palette, error) {
	inner, err := colorful.Hex(innerHex)
	if err != nil {
		return nil, fmt.Errorf("parsing inner color: %w", err)
	}
	outer, err := colorful.Hex(outerHex)
	if err != nil {
		return nil, fmt.Errorf("parsing outer color: %w", err)
	}
	stem, err := colorful.Hex(stemHex)
	if err != nil {
		return nil, fmt.Errorf("parsing stem color: %w", err)
	}
	leaf, err := colorful.Hex(leafHex)
	if err != nil {
		return nil, fmt.Errorf("parsing leaf color: %w", err)
	}
	thermal, err := colorful.Hex(thermalHex)
	if err != nil {
		return nil, fmt.Errorf("parsing thermal color: %w", err)
	}

	p := &Palette{}
	for i := 0; i < lutSize; i++ {
		t := float64(i) / float64(lutSize-1)
		r, g, b := inner.BlendLab(outer, t).Clamped().RGB255()
		p.head[i] = RGB{r, g, b}
		r, g, b = stem.BlendLab(leaf, t).Clamped().RGB255()
		p.foliage[i] = RGB{r, g, b}
	}
	// Pin exact endpoint tones; the Lab round trip can drift a unit.
	ir, ig, ib := inner.RGB255()
	p.head[0] = RGB{ir, ig, ib}
	or, og, ob := outer.RGB255()
	p.head[lutSize-1] = RGB{or, og, ob}
	sr, sg, sb := stem.RGB255()
	p.foliage[0] = RGB{sr, sg, sb}
	lr, lg, lb := leaf.RGB255()
	p.foliage[lutSize-1] = RGB{lr, lg, lb}
	tr, tg, tb := thermal.Clamped().RGB255()
	p.thermal = RGB{tr, tg, tb}
	return p, nil
}

// Head samples the head gradient at t in [0,1] (0 = inner tone).
func (p *Palette) Head(t float32) RGB {
	return p.head[lutIndex(t)]
}

// Foliage samples the stem/leaf gradient at t in [0,1].
func (p *Palette) Foliage(t float32) RGB {
	return p.foliage[lutIndex(t)]
}

// Thermal returns the build-front highlight color.
func (p *Palette) Thermal() RGB {
	return p.thermal
}

// BlendThermal mixes a base color toward the thermal highlight by
// weight w in [0,1]. Byte-space lerp, cheap enough for the kernel.
func (p *Palette) BlendThermal(base RGB, w float32) RGB {
	w = clamp01(w)
	return RGB{
		R: uint8(float32(base.R) + (float32(p.thermal.R)-float32(base.R))*w),
		G: uint8(float32(base.G) + (float32(p.thermal.G)-float32(base.G))*w),
		B: uint8(float32(base.B) + (float32(p.thermal.B)-float32(base.B))*w),
	}
}

func lutIndex(t float32) int {
	i := int(clamp01(t) * (lutSize - 1))
	return i
}
