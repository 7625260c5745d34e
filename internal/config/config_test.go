package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/contact"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/flow"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Precision <= 0 {
		t.Error("precision should be positive")
	}
	if cfg.End <= cfg.Start {
		t.Error("window should be positive")
	}
	if len(cfg.Vectors) == 0 {
		t.Error("default config should track at least one vector")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing row", func(c *Config) { c.Matrix = c.Matrix[:2] }},
		{"short row", func(c *Config) { c.Matrix[1] = []float64{1, 2} }},
		{"nan entry", func(c *Config) { c.Matrix[0][0] = math.NaN() }},
		{"zero exponent", func(c *Config) { c.Exponent = 0 }},
		{"infinite multiplier", func(c *Config) { c.Multiplier = math.Inf(1) }},
		{"unknown mode", func(c *Config) { c.Mode = "cubic" }},
		{"unknown activation", func(c *Config) { c.Activation = "swish9" }},
		{"empty window", func(c *Config) { c.End = c.Start }},
		{"negative precision", func(c *Config) { c.Precision = -0.01 }},
		{"bad wall axis", func(c *Config) { c.Walls[0].Axis = "w" }},
		{"bad wall position", func(c *Config) { c.Walls[0].Position = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("rotation")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("rotation preset invalid: %v", err)
	}
	if cfg.End != 2 {
		t.Errorf("expected end 2, got %f", cfg.End)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("presets not sorted: %v", names)
		}
	}
}

func TestAllPresetsValid(t *testing.T) {
	for name, cfg := range Presets {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q invalid: %v", name, err)
		}
	}
}

func TestClone_Independent(t *testing.T) {
	orig := GetPreset("rotation")
	copied := orig.Clone()

	copied.Matrix[0][0] = 99
	copied.Vectors[0].Label = "mut"
	copied.Mode = "linear"

	if orig.Matrix[0][0] == 99 || orig.Vectors[0].Label == "mut" || orig.Mode == "linear" {
		t.Error("clone shares state with its source")
	}

	// GetPreset itself must hand out copies.
	orig.Matrix[0][0] = 99
	if fresh := GetPreset("rotation"); fresh.Matrix[0][0] == 99 {
		t.Error("mutating a served preset leaked into the table")
	}
}

func TestMatrix3(t *testing.T) {
	cfg := DefaultConfig()
	m := cfg.Matrix3()

	want := flow.Mat3{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	if m != want {
		t.Errorf("Matrix3() = %v, want %v", m, want)
	}
}

func TestActiveVectors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Vectors = []VectorConfig{
		{X: 1, Label: "a"},
		{Y: 2, Label: "b", Hidden: true},
		{Z: 3, Label: "c"},
	}

	got := cfg.ActiveVectors()
	if len(got) != 2 {
		t.Fatalf("got %d vectors, want 2 (hidden skipped)", len(got))
	}
	if got[0].Label != "a" || got[1].Label != "c" {
		t.Errorf("ActiveVectors() = %v", got)
	}
	if got[0].Vec3() != (flow.Vec3{X: 1}) || got[1].Vec3() != (flow.Vec3{Z: 3}) {
		t.Errorf("vector values = %v, %v", got[0].Vec3(), got[1].Vec3())
	}
}

func TestWallList(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Walls = []WallConfig{
		{Axis: "y", Position: 2},
		{ID: "named", Axis: "z", Position: -1},
		{Axis: "bogus", Position: 0},
	}

	walls := cfg.WallList()
	if len(walls) != 2 {
		t.Fatalf("got %d walls, want 2 (bad axis skipped)", len(walls))
	}
	if walls[0].ID != "wall-0" || walls[0].Axis != contact.AxisY {
		t.Errorf("walls[0] = %+v", walls[0])
	}
	if walls[1].ID != "named" || walls[1].Axis != contact.AxisZ {
		t.Errorf("walls[1] = %+v", walls[1])
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.yaml")

	cfg := GetPreset("saddle")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Matrix3() != cfg.Matrix3() {
		t.Errorf("matrix did not round-trip: %v", loaded.Matrix3())
	}
	if loaded.End != cfg.End || loaded.Precision != cfg.Precision {
		t.Errorf("window did not round-trip: %+v", loaded)
	}
	if len(loaded.Vectors) != len(cfg.Vectors) {
		t.Errorf("vectors did not round-trip: %d", len(loaded.Vectors))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")

	// A partial file keeps defaults for everything it does not mention.
	partial := "mode: linear\nend: 4\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != "linear" || cfg.End != 4 {
		t.Errorf("overrides not applied: mode=%q end=%v", cfg.Mode, cfg.End)
	}
	if cfg.Precision != DefaultPrecision {
		t.Errorf("default precision lost: %v", cfg.Precision)
	}
}
