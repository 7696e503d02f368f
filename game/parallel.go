package game

import (
	"runtime"
	"sync"

	"github.com/lumenflora/bloom/components"
	"github.com/lumenflora/bloom/systems"
)

// parallelThreshold is the minimum particle count to use the worker
// pool. Below this, single-threaded is faster than dispatch overhead.
const parallelThreshold = 4096

// frameInput is the per-tick read-only state every worker shares.
type frameInput struct {
	params   systems.ShapeParams
	t        float32
	scanY    float32
	sizeHint float32

	mix        float32 // distortion engage envelope, 0 = off
	cx, cy, cz float32 // cursor world position
}

// workChunk is a particle index range for one worker.
type workChunk struct {
	start, end int
	in         frameInput
}

// kernelPool runs the per-particle recomputation across persistent
// workers. There is no inter-particle dependency, so chunks are plain
// index ranges over the arena.
type kernelPool struct {
	numWorkers int

	workChan chan workChunk
	doneChan chan struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool

	game *Game
}

func newKernelPool() *kernelPool {
	return &kernelPool{numWorkers: runtime.GOMAXPROCS(0)}
}

func (p *kernelPool) start(g *Game) {
	if p.running {
		return
	}
	p.game = g
	p.workChan = make(chan workChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *kernelPool) stop() {
	if !p.running {
		return
	}
	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

func (p *kernelPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			p.game.computeChunk(chunk.start, chunk.end, chunk.in)
			p.doneChan <- struct{}{}
		}
	}
}

// runKernel recomputes the whole frame buffer from the arena and the
// shared control scalars. Idempotent: same inputs, same buffer.
func (g *Game) runKernel(in frameInput) {
	n := g.arena.len()
	if n == 0 {
		return
	}
	if n < parallelThreshold {
		g.computeChunk(0, n, in)
		return
	}

	if !g.kernel.running {
		g.kernel.start(g)
	}
	numWorkers := g.kernel.numWorkers
	chunkSize := (n + numWorkers - 1) / numWorkers

	dispatched := 0
	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		g.kernel.workChan <- workChunk{start: start, end: end, in: in}
		dispatched++
	}
	for i := 0; i < dispatched; i++ {
		<-g.kernel.doneChan
	}
}

// computeChunk runs the shape, construction, and distortion passes for
// a particle index range, writing one buffer slot per particle.
func (g *Game) computeChunk(i0, i1 int, in frameInput) {
	a := &g.arena
	buf := g.buffer

	for i := i0; i < i1; i++ {
		seed := a.seed[i]
		dir := [3]float32{a.dirX[i], a.dirY[i], a.dirZ[i]}

		fx, fy, fz, disp := g.shaper.Displace(
			a.baseX[i], a.baseY[i], a.baseZ[i],
			dir, a.region[i], in.params, in.t,
		)

		activation := systems.Activation(fy, in.scanY, seed)
		if activation < systems.VisibleActivation {
			buf.Alpha[i] = 0
			continue
		}

		// Interpolate from the spawn corner toward the shaped position.
		build := systems.BuildEase(activation)
		sx, sy, sz := systems.SpawnPoint(seed)
		px := sx + (fx-sx)*build
		py := sy + (fy-sy)*build
		pz := sz + (fz-sz)*build

		flash := systems.Flash(activation)
		heat := systems.Heat(activation)

		var base systems.RGB
		if a.region[i] == components.RegionHead {
			base = g.palette.Head(gradeHead(disp))
		} else {
			base = g.palette.Foliage(seed)
		}
		col := g.palette.BlendThermal(base, heat+flash*0.5)

		alpha := activation*(0.65+0.35*seed) + heat*0.35 + flash*0.4
		size := 1 + flash*2.5

		if in.mix > 0 {
			var flicker float32
			px, py, pz, flicker = g.distortion.Apply(
				px, py, pz, in.cx, in.cy, in.cz, seed, in.t, in.mix,
			)
			if flicker > 0 {
				alpha *= 1 - 0.5*flicker
				col = g.palette.BlendThermal(col, flicker*0.6)
			}
		}

		buf.X[i] = px
		buf.Y[i] = py
		buf.Z[i] = pz
		buf.R[i] = col.R
		buf.G[i] = col.G
		buf.B[i] = col.B
		if alpha > 1 {
			alpha = 1
		}
		buf.Alpha[i] = alpha
		buf.Size[i] = size * in.sizeHint
	}
}

// gradeHead maps a head particle's petal displacement onto the
// inner/outer gradient: folded-in points stay near the inner tone,
// strongly displaced petal edges pick up the rim tone.
func gradeHead(disp float32) float32 {
	t := 0.5 + disp*1.4
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
