package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// No custom path, run from a directory without local configs:
	// must land on the embedded default.
	tmp := t.TempDir()
	oldWD, _ := os.Getwd()
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(oldWD) //nolint:errcheck

	t.Setenv("HOME", tmp)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}

	want := Default()
	if cfg.Timing.BaseTickSeconds != want.Timing.BaseTickSeconds {
		t.Errorf("base tick = %v, expected %v", cfg.Timing.BaseTickSeconds, want.Timing.BaseTickSeconds)
	}
	if cfg.Scoring.ComboWindow != 60 || cfg.Scoring.MaxCombo != 4 {
		t.Errorf("scoring = %+v, expected window 60 cap 4", cfg.Scoring)
	}
	if cfg.Level.ObstacleCountMin != 20 || cfg.Level.ObstacleCountMax != 29 {
		t.Errorf("obstacle counts = %+v", cfg.Level)
	}
	if cfg.Particles.LifeMin != 5 || cfg.Particles.LifeMax != 15 {
		t.Errorf("particle life = %+v", cfg.Particles)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("timing:\n  base_tick_seconds: 0.1\n  dash_multiplier: 4\n  max_frame_delta: 0.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) = %v", path, err)
	}
	if cfg.Timing.BaseTickSeconds != 0.1 || cfg.Timing.DashMultiplier != 4 {
		t.Errorf("timing = %+v, expected custom values", cfg.Timing)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   float64
	}{
		{DifficultyEasy, 0.05 * 1.3},
		{DifficultyNormal, 0.05},
		{DifficultyHard, 0.05 * 0.8},
	}

	for _, tc := range tests {
		cfg := Default()
		ApplyPreset(&cfg, tc.preset)
		if cfg.Timing.BaseTickSeconds != tc.want {
			t.Errorf("preset %s: tick = %v, expected %v", tc.preset, cfg.Timing.BaseTickSeconds, tc.want)
		}
	}
}
