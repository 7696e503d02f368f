package game

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/lumenflora/bloom/components"
	"github.com/lumenflora/bloom/systems"
)

// arena holds the kernel's baked particle columns: one contiguous
// region-sorted copy of the immutable attributes, so the per-frame pass
// streams memory linearly and per-region passes cover contiguous index
// ranges. entities keeps the ECS handle at each slot so the inspect
// feature can resolve a picked slot back to its components.
type arena struct {
	baseX, baseY, baseZ []float32
	dirX, dirY, dirZ    []float32
	seed                []float32
	region              []components.Region
	entities            []ecs.Entity

	// Region segment bounds: head is [0,headEnd), stem [headEnd,
	// stemEnd), leaves [stemEnd, len).
	headEnd, stemEnd int
}

func (a *arena) len() int {
	return len(a.baseX)
}

func (a *arena) grow(n int) {
	a.baseX = make([]float32, 0, n)
	a.baseY = make([]float32, 0, n)
	a.baseZ = make([]float32, 0, n)
	a.dirX = make([]float32, 0, n)
	a.dirY = make([]float32, 0, n)
	a.dirZ = make([]float32, 0, n)
	a.seed = make([]float32, 0, n)
	a.region = make([]components.Region, 0, n)
	a.entities = make([]ecs.Entity, 0, n)
}

// spawnField generates the particle field and creates one entity per
// particle. The field is generated once and never resized.
func (g *Game) spawnField(rng *rand.Rand) {
	fl := g.cfg.Flower
	spec := systems.FieldSpec{
		HeadCount:   fl.HeadCount,
		StemCount:   fl.StemCount,
		LeafCount:   fl.LeafCount,
		LeafBlades:  fl.LeafBlades,
		HeadRadius:  fl.HeadRadius,
		HeadStretch: fl.HeadStretch,
		HeadLift:    fl.HeadLift,
		StemTop:     fl.StemTop,
		StemBottom:  fl.StemBottom,
		StemRadius:  fl.StemRadius,
		StemBend:    fl.StemBend,
		LeafLength:  fl.LeafLength,
		LeafWidth:   fl.LeafWidth,
	}

	for _, pt := range systems.GenerateField(spec, rng) {
		base := components.BasePoint{X: pt.Pos[0], Y: pt.Pos[1], Z: pt.Pos[2]}
		anatomy := components.Anatomy{Region: pt.Region, Seed: pt.Seed}
		axis := components.Axis{X: pt.Dir[0], Y: pt.Dir[1], Z: pt.Dir[2]}
		g.mapper.NewEntity(&base, &anatomy, &axis)
	}
}

// bakeArena copies the immutable attributes out of the ECS into the
// kernel columns, one region at a time so each region occupies a
// contiguous index range.
func (g *Game) bakeArena() {
	g.arena.grow(g.cfg.Derived.TotalParticles)

	for _, region := range []components.Region{
		components.RegionHead,
		components.RegionStem,
		components.RegionLeaf,
	} {
		query := g.filter.Query()
		for query.Next() {
			base, anatomy, axis := query.Get()
			if anatomy.Region != region {
				continue
			}
			a := &g.arena
			a.baseX = append(a.baseX, base.X)
			a.baseY = append(a.baseY, base.Y)
			a.baseZ = append(a.baseZ, base.Z)
			a.dirX = append(a.dirX, axis.X)
			a.dirY = append(a.dirY, axis.Y)
			a.dirZ = append(a.dirZ, axis.Z)
			a.seed = append(a.seed, anatomy.Seed)
			a.region = append(a.region, anatomy.Region)
			a.entities = append(a.entities, query.Entity())
		}
		switch region {
		case components.RegionHead:
			g.arena.headEnd = g.arena.len()
		case components.RegionStem:
			g.arena.stemEnd = g.arena.len()
		}
	}
}
