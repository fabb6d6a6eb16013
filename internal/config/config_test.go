package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Rows != 20 || cfg.Cols != 30 {
		t.Errorf("expected 20x30 grid, got %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.Gravity != 980 {
		t.Errorf("expected gravity 980, got %f", cfg.Gravity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"zero cols", func(c *Config) { c.Cols = 0 }},
		{"negative spacing", func(c *Config) { c.Spacing = -1 }},
		{"zero damping", func(c *Config) { c.Damping = 0 }},
		{"damping above one", func(c *Config) { c.Damping = 1.5 }},
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"negative iterations", func(c *Config) { c.Iterations = -1 }},
		{"zero pick radius", func(c *Config) { c.PickRadius = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 7
	cfg.Damping = 0.95

	path := filepath.Join(t.TempDir(), "cloth.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Rows != 7 || loaded.Damping != 0.95 {
		t.Errorf("roundtrip lost values: rows=%d damping=%f", loaded.Rows, loaded.Damping)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("rows: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Rows != 5 {
		t.Errorf("rows = %d, want 5", cfg.Rows)
	}
	if cfg.Cols != DefaultCols || cfg.Gravity != DefaultGravity {
		t.Error("unspecified fields should keep defaults")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("damping: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error for damping 3")
	}
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}

	for _, name := range names {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s missing", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestMeshFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	m := cfg.Mesh()

	if m.Rows != cfg.Rows || m.Cols != cfg.Cols {
		t.Errorf("mesh is %dx%d, want %dx%d", m.Rows, m.Cols, cfg.Rows, cfg.Cols)
	}
	if got := m.At(0, 0).Pos; got.X != cfg.OriginX || got.Y != cfg.OriginY {
		t.Errorf("top-left particle at (%f,%f), want origin (%f,%f)",
			got.X, got.Y, cfg.OriginX, cfg.OriginY)
	}
}
