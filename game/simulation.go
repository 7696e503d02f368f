package game

import (
	"log/slog"

	"github.com/lumenflora/bloom/systems"
	"github.com/lumenflora/bloom/telemetry"
)

// Update runs one graphical frame: input, control, kernel.
func (g *Game) Update() {
	g.handleInput()
	g.orbit.Update()
	if g.paused {
		return
	}
	g.step()
}

// UpdateHeadless runs one frame without input, camera, or draw.
func (g *Game) UpdateHeadless() {
	g.step()
	g.perf.EndTick()
}

// step advances control signals and recomputes the particle buffer.
func (g *Game) step() {
	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseControl)

	// Latest detection snapshot; stale-by-one reads are fine. With no
	// runner attached the keyboard path owns the signals instead.
	if g.runnerActive || g.gestureSource == "fallback" {
		g.signals = g.cell.Load()
	}

	// Distortion engage/release envelope, so activation never pops.
	target := float32(0)
	if g.signals.CursorActive {
		target = 1
	}
	wasDistorting := g.distortMix > 0.05
	g.distortMix += (target - g.distortMix) * float32(g.cfg.Distortion.MixGain)
	if g.distortMix < 0.001 {
		g.distortMix = 0
	}

	shape := g.cfg.Shape
	g.simTime += frameDT * float32(shape.Speed)

	growth := float32(g.signals.Growth)
	in := frameInput{
		params: systems.ShapeParams{
			PetalCount: float32(shape.PetalCount),
			Twist:      float32(shape.Twist),
			Openness:   float32(shape.Openness),
			Detail:     float32(shape.Detail),
		},
		t:        g.simTime,
		scanY:    systems.ScanY(growth),
		sizeHint: float32(shape.ParticleSize),
		mix:      g.distortMix,
	}

	if g.distortMix > 0 {
		cx, cy, cz := g.orbit.ProjectNDC(g.signals.CursorX, g.signals.CursorY, cursorSpan)
		in.cx, in.cy, in.cz = float32(cx), float32(cy), float32(cz)
	}

	g.buffer.ScanY = in.scanY
	g.buffer.CursorX, g.buffer.CursorY, g.buffer.CursorZ = in.cx, in.cy, in.cz
	g.buffer.CursorActive = g.distortMix > 0.05

	g.perf.StartPhase(telemetry.PhaseKernel)
	g.runKernel(in)

	g.perf.StartPhase(telemetry.PhaseControl)
	g.playCues(growth, wasDistorting)
	g.writeTelemetry(growth)

	// The tick stays open: Draw (or UpdateHeadless) closes it so the
	// render phase lands in the same sample.
	g.tick++
}

// playCues triggers audio on control-state transitions: one chime per
// completed bloom, one pulse per distortion engage.
func (g *Game) playCues(growth float32, wasDistorting bool) {
	if growth >= 0.999 {
		if !g.chimed {
			g.chimed = true
			g.sound.BloomChime()
		}
	} else if growth < 0.9 {
		g.chimed = false
	}

	if !wasDistorting && g.buffer.CursorActive {
		g.sound.DistortPulse()
	}
}

// writeTelemetry appends a frame record and optionally logs stats.
func (g *Game) writeTelemetry(growth float32) {
	every := g.cfg.Telemetry.LogEvery
	if g.output == nil && (every == 0 || !g.opts.LogStats) {
		return
	}
	if every <= 0 {
		every = 60
	}
	if g.tick%int64(every) != 0 {
		return
	}

	stats := g.perf.Stats()
	visible := 0
	if g.flowers != nil {
		visible = g.flowers.VisibleCount()
	}
	rec := telemetry.FrameRecord{
		Tick:        g.tick,
		Growth:      float64(growth),
		ScanY:       float64(g.buffer.ScanY),
		Visible:     visible,
		Distorting:  g.buffer.CursorActive,
		AvgTickUS:   stats.AvgTickDuration.Microseconds(),
		P95TickUS:   stats.P95TickDuration.Microseconds(),
		KernelAvgUS: stats.PhaseAvg[telemetry.PhaseKernel].Microseconds(),
		RenderAvgUS: stats.PhaseAvg[telemetry.PhaseRender].Microseconds(),
	}
	if err := g.output.WriteFrame(rec); err != nil {
		slog.Warn("telemetry write failed", "error", err)
	}
	if g.opts.LogStats {
		slog.Info("frame stats",
			"tick", g.tick,
			"growth", rec.Growth,
			"avg_tick_us", rec.AvgTickUS,
			"p95_tick_us", rec.P95TickUS,
			"ticks_per_sec", stats.TicksPerSecond,
		)
	}
}
