package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.N != 60 {
		t.Errorf("expected n 60, got %d", cfg.N)
	}
	if cfg.CFL <= 0 {
		t.Error("cfl should be positive")
	}
	if cfg.ModeX < 1 || cfg.ModeY < 1 {
		t.Error("default mode should be non-degenerate")
	}
	if err := cfg.Params().Validate(); err != nil {
		t.Errorf("default config should produce valid params: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("fundamental")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.ModeX != 1 || cfg.ModeY != 1 {
		t.Errorf("expected mode (1,1), got (%d,%d)", cfg.ModeX, cfg.ModeY)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets()) == 0 {
		t.Error("expected presets")
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.N = 80
	cfg.ModeY = 5
	cfg.Movie.FPS = 25

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.N != 80 || loaded.ModeY != 5 || loaded.Movie.FPS != 25 {
		t.Errorf("roundtrip mismatch: %+v", loaded)
	}
	if loaded.CFL != DefaultCFL {
		t.Errorf("untouched field should keep default, got %g", loaded.CFL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for name, cfg := range Presets {
		if err := cfg.Params().Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
