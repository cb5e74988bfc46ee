package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration: a 400x400 canvas of
// 20px cells, 150ms ticks sped up by 2ms per food down to 80ms.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			CanvasWidth:  400,
			CanvasHeight: 400,
			CellSize:     20,
			StartX:       10,
			StartY:       10,
			StartLength:  3,
		},
		Speed: SpeedConfig{
			InitialMs: 150,
			MinMs:     80,
			StepMs:    2,
			SpeedUp:   true,
		},
		Scoring: ScoringConfig{
			FoodPoints: 10,
		},
		Food: FoodConfig{
			RetryFactor: 4,
		},
		Input: InputConfig{
			SwipeThreshold: 50,
		},
		Effects: EffectsConfig{
			Particles: 8,
		},
	}
}
