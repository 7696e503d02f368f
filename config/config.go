// Package config provides configuration loading and access for the bloom renderer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all renderer and control configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Flower     FlowerConfig     `yaml:"flower"`
	Shape      ShapeConfig      `yaml:"shape"`
	Gesture    GestureConfig    `yaml:"gesture"`
	Distortion DistortionConfig `yaml:"distortion"`
	Camera     CameraConfig     `yaml:"camera"`
	Audio      AudioConfig      `yaml:"audio"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// FlowerConfig holds particle-field generation parameters.
// Counts are fixed at startup; the field is never resized afterward.
type FlowerConfig struct {
	HeadCount  int `yaml:"head_count"`
	StemCount  int `yaml:"stem_count"`
	LeafCount  int `yaml:"leaf_count"`
	LeafBlades int `yaml:"leaf_blades"`

	HeadRadius  float64 `yaml:"head_radius"`  // unit-sphere scale before stretch
	HeadStretch float64 `yaml:"head_stretch"` // vertical stretch of the head volume
	HeadLift    float64 `yaml:"head_lift"`    // vertical offset of the head center

	StemTop    float64 `yaml:"stem_top"`    // y of the stem's upper end
	StemBottom float64 `yaml:"stem_bottom"` // y of the stem's lower end
	StemRadius float64 `yaml:"stem_radius"` // base radius before taper
	StemBend   float64 `yaml:"stem_bend"`   // horizontal bend amplitude

	LeafLength float64 `yaml:"leaf_length"`
	LeafWidth  float64 `yaml:"leaf_width"`
}

// ShapeConfig holds the externally tunable shape parameters.
// These are read every frame; the UI panel mutates them live.
// The core tolerates any finite value here, no validation is performed.
type ShapeConfig struct {
	InnerColor   string  `yaml:"inner_color"` // hex, head center tone
	OuterColor   string  `yaml:"outer_color"` // hex, head rim tone
	StemColor    string  `yaml:"stem_color"`  // hex, stem/leaf dark tone
	LeafColor    string  `yaml:"leaf_color"`  // hex, stem/leaf second tone
	ThermalHex   string  `yaml:"thermal"`     // hex, build-front highlight
	PetalCount   float64 `yaml:"petal_count"`
	Twist        float64 `yaml:"twist"`
	Openness     float64 `yaml:"openness"`
	Detail       float64 `yaml:"detail"`
	Speed        float64 `yaml:"speed"`         // time-scale multiplier
	ParticleSize float64 `yaml:"particle_size"` // render size hint, passthrough
}

// GestureConfig holds pinch classification and growth smoothing parameters.
type GestureConfig struct {
	Addr           string  `yaml:"addr"`            // detector stream address, empty = no live source
	PinchThreshold float64 `yaml:"pinch_threshold"` // normalized distance, strict less-than
	SnapHigh       float64 `yaml:"snap_high"`       // target snaps to 1 above this
	SnapLow        float64 `yaml:"snap_low"`        // target snaps to 0 below this
	PinchGain      float64 `yaml:"pinch_gain"`      // smoothing gain while pinching
	SettleGain     float64 `yaml:"settle_gain"`     // gain for terminal auto-snap
	MidLow         float64 `yaml:"mid_low"`         // midpoint y mapped to progress 0
	MidHigh        float64 `yaml:"mid_high"`        // midpoint y mapped to progress 1
	Aspect         float64 `yaml:"aspect"`          // detector frame aspect ratio (w/h)
}

// DistortionConfig holds cursor-distortion parameters.
type DistortionConfig struct {
	Radius   float64 `yaml:"radius"`   // world-space influence radius
	Strength float64 `yaml:"strength"` // swirl/scatter amplitude
	MixGain  float64 `yaml:"mix_gain"` // engage/release smoothing gain
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	Distance  float64 `yaml:"distance"`
	MinDist   float64 `yaml:"min_dist"`
	MaxDist   float64 `yaml:"max_dist"`
	TargetY   float64 `yaml:"target_y"`
	Frequency float64 `yaml:"frequency"` // spring angular frequency
	Damping   float64 `yaml:"damping"`   // spring damping ratio
}

// AudioConfig holds audio cue settings.
type AudioConfig struct {
	Enabled    bool `yaml:"enabled"`
	SampleRate int  `yaml:"sample_rate"`
}

// TelemetryConfig holds frame-timing collection settings.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // rolling window in seconds
	LogEvery    int     `yaml:"log_every"`    // ticks between stats log lines, 0 = off
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	TotalParticles int
	ScreenW32      float32
	ScreenH32      float32
}

var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

func (c *Config) computeDerived() {
	c.Derived.TotalParticles = c.Flower.HeadCount + c.Flower.StemCount + c.Flower.LeafCount
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}
