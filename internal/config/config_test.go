package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	if d.SprintBoundaryMs != 3000 {
		t.Errorf("SprintBoundaryMs = %d, want 3000", d.SprintBoundaryMs)
	}
	if d.ConfidenceThreshold != 0.85 {
		t.Errorf("ConfidenceThreshold = %f, want 0.85", d.ConfidenceThreshold)
	}
	if d.HurdleClearStreak != 3 {
		t.Errorf("HurdleClearStreak = %d, want 3", d.HurdleClearStreak)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != Defaults() {
		t.Errorf("got %+v, want defaults", got)
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[engine]\nsprint_boundary_ms = 2000\nconfidence_threshold = 0.9\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.SprintBoundaryMs != 2000 {
		t.Errorf("SprintBoundaryMs = %d, want 2000", got.SprintBoundaryMs)
	}
	if got.ConfidenceThreshold != 0.9 {
		t.Errorf("ConfidenceThreshold = %f, want 0.9", got.ConfidenceThreshold)
	}
	// Unset values fall back.
	if got.SteadyBoundaryMs != 15000 {
		t.Errorf("SteadyBoundaryMs = %d, want default 15000", got.SteadyBoundaryMs)
	}
}

func TestLoad_InvalidFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[engine]\nsprint_boundary_ms = 20000\nsteady_boundary_ms = 100\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err == nil {
		t.Fatal("want validation error for inverted boundaries")
	}
	if got != Defaults() {
		t.Errorf("invalid config must return defaults, got %+v", got)
	}
}

func TestValidate_Bounds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Tunables)
	}{
		{"zero sprint", func(tu *Tunables) { tu.SprintBoundaryMs = 0 }},
		{"confidence too high", func(tu *Tunables) { tu.ConfidenceThreshold = 1.0 }},
		{"zero clear streak", func(tu *Tunables) { tu.HurdleClearStreak = 0 }},
		{"extended below standard", func(tu *Tunables) { tu.ExtendedMissionSize = 5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tu := Defaults()
			tc.mutate(&tu)
			if err := tu.Validate(); err == nil {
				t.Error("want error, got nil")
			}
		})
	}
}
