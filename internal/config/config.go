// Package config holds the engine's tunable constants and TOML file loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Tunables are the boundary values the engine treats as adjustable rather
// than load-bearing invariants. Defaults match the shipped behavior; a
// config file or env var can override any of them.
type Tunables struct {
	// SprintBoundaryMs is the thinking-time boundary below which an answer
	// is rated SPRINT.
	SprintBoundaryMs int `toml:"sprint_boundary_ms"`

	// SteadyBoundaryMs is the diagnostic-mode boundary between STEADY and DEEP.
	SteadyBoundaryMs int `toml:"steady_boundary_ms"`

	// PracticeSteadyFactorMs is multiplied by question difficulty to get the
	// practice-mode STEADY/DEEP boundary.
	PracticeSteadyFactorMs int `toml:"practice_steady_factor_ms"`

	// ConfidenceThreshold stops a diagnostic session when the mean mastery
	// of the concepts touched so far exceeds it.
	ConfidenceThreshold float64 `toml:"confidence_threshold"`

	// HurdleClearStreak is the consecutive-correct count that clears a hurdle.
	HurdleClearStreak int `toml:"hurdle_clear_streak"`

	// MissionSize and ExtendedMissionSize are the selection targets for the
	// standard and phase-constrained mission variants.
	MissionSize         int `toml:"mission_size"`
	ExtendedMissionSize int `toml:"extended_mission_size"`
}

// FileConfig is the on-disk TOML shape.
type FileConfig struct {
	Engine Tunables `toml:"engine"`
}

// Defaults returns the shipped tunable values.
func Defaults() Tunables {
	return Tunables{
		SprintBoundaryMs:       3000,
		SteadyBoundaryMs:       15000,
		PracticeSteadyFactorMs: 8000,
		ConfidenceThreshold:    0.85,
		HurdleClearStreak:      3,
		MissionSize:            10,
		ExtendedMissionSize:    14,
	}
}

// Load reads tunables from the TOML file at path, falling back to defaults
// for unset values. A missing file is not an error.
func Load(path string) (Tunables, error) {
	t := Defaults()
	if path == "" {
		return t, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("stat config: %w", err)
	}

	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return t, fmt.Errorf("decode config: %w", err)
	}
	merge(&t, fc.Engine)

	if err := t.Validate(); err != nil {
		return Defaults(), err
	}
	return t, nil
}

// merge copies set (non-zero) file values over the defaults.
func merge(dst *Tunables, src Tunables) {
	if src.SprintBoundaryMs > 0 {
		dst.SprintBoundaryMs = src.SprintBoundaryMs
	}
	if src.SteadyBoundaryMs > 0 {
		dst.SteadyBoundaryMs = src.SteadyBoundaryMs
	}
	if src.PracticeSteadyFactorMs > 0 {
		dst.PracticeSteadyFactorMs = src.PracticeSteadyFactorMs
	}
	if src.ConfidenceThreshold > 0 {
		dst.ConfidenceThreshold = src.ConfidenceThreshold
	}
	if src.HurdleClearStreak > 0 {
		dst.HurdleClearStreak = src.HurdleClearStreak
	}
	if src.MissionSize > 0 {
		dst.MissionSize = src.MissionSize
	}
	if src.ExtendedMissionSize > 0 {
		dst.ExtendedMissionSize = src.ExtendedMissionSize
	}
}

// Validate rejects tunable combinations the engine cannot run with.
func (t Tunables) Validate() error {
	if t.SprintBoundaryMs <= 0 || t.SteadyBoundaryMs <= t.SprintBoundaryMs {
		return fmt.Errorf("speed boundaries must satisfy 0 < sprint < steady, got %d/%d",
			t.SprintBoundaryMs, t.SteadyBoundaryMs)
	}
	if t.ConfidenceThreshold <= 0 || t.ConfidenceThreshold >= 1 {
		return fmt.Errorf("confidence_threshold must be in (0, 1), got %f", t.ConfidenceThreshold)
	}
	if t.HurdleClearStreak < 1 {
		return fmt.Errorf("hurdle_clear_streak must be >= 1, got %d", t.HurdleClearStreak)
	}
	if t.MissionSize < 1 || t.ExtendedMissionSize < t.MissionSize {
		return fmt.Errorf("mission sizes must satisfy 1 <= standard <= extended, got %d/%d",
			t.MissionSize, t.ExtendedMissionSize)
	}
	return nil
}

// DefaultConfigPath returns the TOML config location under XDG config home.
func DefaultConfigPath() string {
	return filepath.Join(xdgConfigHome(), "mathquest", "config.toml")
}

func xdgConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}
