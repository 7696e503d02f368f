package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Flower.HeadCount <= 0 || cfg.Flower.StemCount <= 0 || cfg.Flower.LeafCount <= 0 {
		t.Errorf("defaults missing particle counts: %+v", cfg.Flower)
	}
	if cfg.Gesture.PinchThreshold != 0.06 {
		t.Errorf("pinch threshold = %v, want 0.06", cfg.Gesture.PinchThreshold)
	}
	want := cfg.Flower.HeadCount + cfg.Flower.StemCount + cfg.Flower.LeafCount
	if cfg.Derived.TotalParticles != want {
		t.Errorf("TotalParticles = %d, want %d", cfg.Derived.TotalParticles, want)
	}
	if cfg.Derived.ScreenW32 != float32(cfg.Screen.Width) {
		t.Errorf("ScreenW32 = %v, want %v", cfg.Derived.ScreenW32, cfg.Screen.Width)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bloom.yaml")
	data := []byte("flower:\n  head_count: 500\nshape:\n  petal_count: 7\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Flower.HeadCount != 500 {
		t.Errorf("head_count = %d, want file override 500", cfg.Flower.HeadCount)
	}
	if cfg.Shape.PetalCount != 7 {
		t.Errorf("petal_count = %v, want 7", cfg.Shape.PetalCount)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Flower.StemCount <= 0 {
		t.Errorf("stem_count lost its default: %d", cfg.Flower.StemCount)
	}
	if cfg.Gesture.SnapHigh != 0.85 {
		t.Errorf("snap_high = %v, want default 0.85", cfg.Gesture.SnapHigh)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("missing file accepted")
	}
}
