// Package config provides YAML-based game configuration loading, difficulty
// presets and hot reload for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all tunable parameters of the game.
type SnakeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
	Food    FoodConfig    `yaml:"food"`
	Input   InputConfig   `yaml:"input"`
	Effects EffectsConfig `yaml:"effects"`
}

// BoardConfig defines the canvas the grid is derived from.
type BoardConfig struct {
	CanvasWidth  int `yaml:"canvas_width"`  // Canvas width in pixels
	CanvasHeight int `yaml:"canvas_height"` // Canvas height in pixels
	CellSize     int `yaml:"cell_size"`     // Edge length of one cell in pixels
	StartX       int `yaml:"start_x"`       // Head column of a fresh snake
	StartY       int `yaml:"start_y"`       // Head row of a fresh snake
	StartLength  int `yaml:"start_length"`
}

// SpeedConfig defines the tick interval and its linear speed-up.
type SpeedConfig struct {
	InitialMs int  `yaml:"initial_ms"`
	MinMs     int  `yaml:"min_ms"`  // Floor the interval never drops below
	StepMs    int  `yaml:"step_ms"` // Reduction applied per food eaten
	SpeedUp   bool `yaml:"speed_up"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}

// FoodConfig defines how food placement searches for a free cell.
type FoodConfig struct {
	// RetryFactor times the cell count is the random sampling budget
	// before falling back to a scan of free cells.
	RetryFactor int `yaml:"retry_factor"`
}

// InputConfig defines input classification thresholds.
type InputConfig struct {
	SwipeThreshold float64 `yaml:"swipe_threshold"` // Minimum swipe travel in pixels
}

// EffectsConfig defines cosmetic effects.
type EffectsConfig struct {
	Particles int `yaml:"particles"` // Particles spawned per food eaten
}

// InitialInterval returns the starting tick interval.
func (s SpeedConfig) InitialInterval() time.Duration {
	return time.Duration(s.InitialMs) * time.Millisecond
}

// MinInterval returns the tick interval floor.
func (s SpeedConfig) MinInterval() time.Duration {
	return time.Duration(s.MinMs) * time.Millisecond
}

// Step returns the per-food interval reduction.
func (s SpeedConfig) Step() time.Duration {
	return time.Duration(s.StepMs) * time.Millisecond
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Board.CellSize <= 0:
		return fmt.Errorf("%w: board.cell_size must be positive, got %d", ErrInvalidConfig, c.Board.CellSize)
	case c.Board.CanvasWidth < c.Board.CellSize || c.Board.CanvasHeight < c.Board.CellSize:
		return fmt.Errorf("%w: canvas %dx%d is smaller than one cell", ErrInvalidConfig, c.Board.CanvasWidth, c.Board.CanvasHeight)
	case c.Board.StartLength <= 0:
		return fmt.Errorf("%w: board.start_length must be positive, got %d", ErrInvalidConfig, c.Board.StartLength)
	case c.Speed.InitialMs <= 0 || c.Speed.MinMs <= 0:
		return fmt.Errorf("%w: speed intervals must be positive", ErrInvalidConfig)
	case c.Speed.MinMs > c.Speed.InitialMs:
		return fmt.Errorf("%w: speed.min_ms %d exceeds speed.initial_ms %d", ErrInvalidConfig, c.Speed.MinMs, c.Speed.InitialMs)
	case c.Speed.StepMs < 0:
		return fmt.Errorf("%w: speed.step_ms must not be negative", ErrInvalidConfig)
	case c.Scoring.FoodPoints < 0:
		return fmt.Errorf("%w: scoring.food_points must not be negative", ErrInvalidConfig)
	case c.Input.SwipeThreshold < 0:
		return fmt.Errorf("%w: input.swipe_threshold must not be negative", ErrInvalidConfig)
	}
	return nil
}
