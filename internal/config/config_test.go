package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "well.yaml")

	cfg := &Config{
		Shape:     "kronig-penney",
		Method:    "coupling",
		XMin:      -5,
		XMax:      15,
		Steps:     300,
		Amplitude: 2.5,
		States:    7,
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	// Load starts from DefaultConfig, so keys omitted from the file keep
	// their defaults.
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("shape: linear\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Shape != "linear" {
		t.Errorf("shape = %q, want linear", cfg.Shape)
	}
	if cfg.Steps != DefaultSteps {
		t.Errorf("steps = %d, want default %d", cfg.Steps, DefaultSteps)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("quadratic", "harmonic")
	if cfg == nil {
		t.Fatal("expected harmonic preset")
	}
	if cfg.Shape != "quadratic" || cfg.States != 8 {
		t.Errorf("unexpected preset values: %+v", cfg)
	}

	if GetPreset("quadratic", "bogus") != nil {
		t.Error("expected nil for unknown preset name")
	}
	if GetPreset("bogus", "harmonic") != nil {
		t.Error("expected nil for unknown shape")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("square")
	if len(names) != 2 {
		t.Errorf("expected 2 square presets, got %d", len(names))
	}
	if ListPresets("bogus") != nil {
		t.Error("expected nil for unknown shape")
	}
}
