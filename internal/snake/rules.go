package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Rules are the parameters a session plays by.
type Rules struct {
	CanvasWidth  int
	CanvasHeight int
	CellSize     int

	Start       core.Cell // Head of a fresh snake
	StartLength int

	InitialInterval time.Duration
	MinInterval     time.Duration
	IntervalStep    time.Duration
	SpeedUp         bool

	FoodPoints      int
	ParticleCount   int
	FoodRetryFactor int
}

// DefaultRules returns the rules of the built-in configuration.
func DefaultRules() Rules {
	return RulesFrom(config.DefaultSnakeConfig())
}

// RulesFrom converts a loaded configuration into session rules.
func RulesFrom(cfg config.SnakeConfig) Rules {
	return Rules{
		CanvasWidth:     cfg.Board.CanvasWidth,
		CanvasHeight:    cfg.Board.CanvasHeight,
		CellSize:        cfg.Board.CellSize,
		Start:           core.Cell{X: cfg.Board.StartX, Y: cfg.Board.StartY},
		StartLength:     cfg.Board.StartLength,
		InitialInterval: cfg.Speed.InitialInterval(),
		MinInterval:     cfg.Speed.MinInterval(),
		IntervalStep:    cfg.Speed.Step(),
		SpeedUp:         cfg.Speed.SpeedUp,
		FoodPoints:      cfg.Scoring.FoodPoints,
		ParticleCount:   cfg.Effects.Particles,
		FoodRetryFactor: cfg.Food.RetryFactor,
	}
}

// Grid returns the board the rules describe.
func (r Rules) Grid() core.Grid {
	return core.GridFor(r.CanvasWidth, r.CanvasHeight, r.CellSize)
}

// NextInterval returns the tick interval after one more food. It drops by
// one step while above the floor and never goes below it.
func (r Rules) NextInterval(current time.Duration) time.Duration {
	if !r.SpeedUp || current <= r.MinInterval {
		return current
	}
	return max(current-r.IntervalStep, r.MinInterval)
}
