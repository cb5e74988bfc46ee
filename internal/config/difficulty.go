package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset parses a preset name. An empty name selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// Next returns the preset after p, wrapping around.
func (p DifficultyPreset) Next() DifficultyPreset {
	presets := Presets()
	for i, candidate := range presets {
		if candidate == p {
			return presets[(i+1)%len(presets)]
		}
	}
	return DifficultyNormal
}

// IsFixedPreset returns true if the preset disables speed-up.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Normal leaves the loaded speed settings untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.SpeedUp = true
		cfg.Speed.InitialMs = 200
		cfg.Speed.StepMs = 1
	case DifficultyHard:
		cfg.Speed.SpeedUp = true
		cfg.Speed.InitialMs = 110
		cfg.Speed.StepMs = 3
		cfg.Speed.MinMs = 60
	}
	if IsFixedPreset(preset) {
		cfg.Speed.SpeedUp = false
	}

	if cfg.Speed.MinMs > cfg.Speed.InitialMs {
		cfg.Speed.MinMs = cfg.Speed.InitialMs
	}
}
