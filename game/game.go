// Package game wires the particle world, gesture control, kernel, and
// renderers into the frame loop.
package game

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/lumenflora/bloom/audio"
	"github.com/lumenflora/bloom/camera"
	"github.com/lumenflora/bloom/components"
	"github.com/lumenflora/bloom/config"
	"github.com/lumenflora/bloom/gesture"
	"github.com/lumenflora/bloom/renderer"
	"github.com/lumenflora/bloom/systems"
	"github.com/lumenflora/bloom/telemetry"
	"github.com/lumenflora/bloom/ui"
)

// frame cadence assumed by the smoothing gains.
const frameDT = 1.0 / 60.0

// cursorSpan is the world extent mapped to one NDC unit when the
// distortion cursor is projected through the camera.
const cursorSpan = 9.0

// Options configures game construction.
type Options struct {
	Seed       int64
	Headless   bool
	OutputDir  string
	ReplayPath string
	LogStats   bool
}

// Game holds the complete application state.
type Game struct {
	cfg  *config.Config
	opts Options

	// Particle store: the ECS is the authority for the immutable field;
	// the kernel runs over columns baked from it at startup.
	world      *ecs.World
	mapper     *ecs.Map3[components.BasePoint, components.Anatomy, components.Axis]
	filter     *ecs.Filter3[components.BasePoint, components.Anatomy, components.Axis]
	anatomyMap *ecs.Map1[components.Anatomy]

	arena  arena
	buffer *systems.FrameBuffer

	shaper     *systems.Shaper
	palette    *systems.Palette
	distortion *systems.Distortion

	// Gesture control. The runner goroutine is the cell's only writer;
	// the frame loop only loads snapshots.
	cell          *gesture.Cell
	interp        *gesture.Interpreter
	runnerCancel  context.CancelFunc
	runnerDone    chan struct{}
	runnerActive  bool
	gestureSource string

	orbit    *camera.Orbit
	bg       *renderer.BackgroundRenderer
	flowers  *renderer.FlowerRenderer
	overlays *renderer.OverlayRenderer
	hud      *ui.HUD
	panel    *ui.ControlsPanel

	sound  *audio.Engine
	perf   *telemetry.PerfCollector
	output *telemetry.OutputManager

	kernel *kernelPool

	signals    gesture.Signals
	simTime    float32
	distortMix float32
	tick       int64
	paused     bool
	chimed     bool

	// inspectIdx is the picked particle's arena slot, -1 for none.
	inspectIdx int

	// Keyboard-driven growth used when no gesture source is attached.
	keyGrowth float64
}

// NewGameWithOptions builds the full world and starts the gesture
// runner if a source is available.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	world := ecs.NewWorld()
	g := &Game{
		cfg:        cfg,
		opts:       opts,
		world:      world,
		inspectIdx: -1,
	}
	g.mapper = ecs.NewMap3[components.BasePoint, components.Anatomy, components.Axis](world)
	g.filter = ecs.NewFilter3[components.BasePoint, components.Anatomy, components.Axis](world)
	g.anatomyMap = ecs.NewMap1[components.Anatomy](world)

	rng := rand.New(rand.NewSource(opts.Seed))
	g.spawnField(rng)
	g.bakeArena()
	g.buffer = systems.NewFrameBuffer(g.arena.len())

	fl := cfg.Flower
	g.shaper = systems.NewShaper(opts.Seed, float32(fl.StemBottom), float32(fl.HeadLift+fl.HeadRadius*fl.HeadStretch))

	pal, err := systems.NewPalette(
		cfg.Shape.InnerColor, cfg.Shape.OuterColor,
		cfg.Shape.StemColor, cfg.Shape.LeafColor, cfg.Shape.ThermalHex,
	)
	if err != nil {
		return nil, err
	}
	g.palette = pal

	g.distortion = systems.NewDistortion(opts.Seed+1,
		float32(cfg.Distortion.Radius), float32(cfg.Distortion.Strength))

	g.orbit = camera.New(cfg.Camera.Distance, cfg.Camera.MinDist, cfg.Camera.MaxDist,
		cfg.Camera.TargetY, cfg.Camera.Frequency, cfg.Camera.Damping)

	if !opts.Headless {
		g.bg = renderer.NewBackgroundRenderer()
		g.flowers = renderer.NewFlowerRenderer()
		g.overlays = renderer.NewOverlayRenderer()
		g.hud = ui.NewHUD()
		g.panel = ui.NewControlsPanel(float32(cfg.Screen.Width)-260, 20, 240)

		if cfg.Audio.Enabled {
			sound, err := audio.NewEngine(cfg.Audio.SampleRate)
			if err != nil {
				slog.Warn("audio disabled", "error", err)
			}
			g.sound = sound
		}
	}

	g.perf = telemetry.NewPerfCollector(int(cfg.Telemetry.StatsWindow * float64(cfg.Screen.TargetFPS)))
	out, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = out

	g.kernel = newKernelPool()
	g.startGesture()

	slog.Info("field ready",
		"particles", g.arena.len(),
		"head", g.arena.headEnd,
		"stem", g.arena.stemEnd-g.arena.headEnd,
		"leaf", g.arena.len()-g.arena.stemEnd,
		"control", g.gestureSource,
	)
	return g, nil
}

// startGesture attaches the configured gesture source. Failure to open
// a source is not fatal: control falls back to the safe terminal state
// (fully built, no distortion) and the app keeps running.
func (g *Game) startGesture() {
	tuning := gesture.Tuning{
		PinchThreshold: g.cfg.Gesture.PinchThreshold,
		SnapHigh:       g.cfg.Gesture.SnapHigh,
		SnapLow:        g.cfg.Gesture.SnapLow,
		PinchGain:      g.cfg.Gesture.PinchGain,
		SettleGain:     g.cfg.Gesture.SettleGain,
		MidLow:         g.cfg.Gesture.MidLow,
		MidHigh:        g.cfg.Gesture.MidHigh,
		Aspect:         g.cfg.Gesture.Aspect,
	}
	g.interp = gesture.NewInterpreter(tuning, 0)
	g.cell = gesture.NewCell(gesture.Signals{})

	var src gesture.Source
	switch {
	case g.opts.ReplayPath != "":
		rs, err := gesture.OpenReplay(g.opts.ReplayPath, true)
		if err != nil {
			slog.Warn("replay unavailable, control frozen fully built", "error", err)
			gesture.Fallback(g.cell)
			g.gestureSource = "fallback"
			return
		}
		src = rs
		g.gestureSource = "replay"
	case g.cfg.Gesture.Addr != "":
		ss, err := gesture.DialStream(g.cfg.Gesture.Addr)
		if err != nil {
			slog.Warn("detector unavailable, control frozen fully built", "error", err)
			gesture.Fallback(g.cell)
			g.gestureSource = "fallback"
			return
		}
		src = ss
		g.gestureSource = "stream"
	default:
		if g.opts.Headless {
			// Headless has no keyboard loop; a source-less run would
			// leave growth at 0 and the whole field suppressed.
			slog.Warn("no gesture source, control frozen fully built (pass -replay or -gesture-addr)")
			gesture.Fallback(g.cell)
			g.gestureSource = "fallback"
			return
		}
		g.gestureSource = "keyboard"
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	g.runnerCancel = cancel
	g.runnerDone = make(chan struct{})
	g.runnerActive = true
	runner := gesture.NewRunner(src, g.interp, g.cell)
	go func() {
		defer close(g.runnerDone)
		runner.Run(ctx)
	}()
}

// Tick returns the frame counter.
func (g *Game) Tick() int64 {
	return g.tick
}

// Unload tears everything down: the detection runner stops before the
// kernel so no signal is acted on after teardown begins.
func (g *Game) Unload() {
	if g.runnerCancel != nil {
		g.runnerCancel()
		<-g.runnerDone
		g.runnerCancel = nil
	}
	g.kernel.stop()
	if err := g.output.Close(); err != nil {
		slog.Warn("closing telemetry output", "error", err)
	}
	g.sound.Close()
}
