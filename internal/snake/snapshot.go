package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the session state.
type State string

const (
	StateMenu     State = "menu"
	StatePlaying  State = "playing"
	StatePaused   State = "paused"
	StateGameOver State = "game_over"
)

// EndReason tells why a game ended.
type EndReason string

const (
	EndNone      EndReason = ""
	EndWall      EndReason = "wall"
	EndSelf      EndReason = "self"
	EndBoardFull EndReason = "board_full"
)

// Cue is a sound cue identifier.
type Cue string

const (
	CueEat      Cue = "eat"
	CueGameOver Cue = "gameOver"
)

// Snapshot is an immutable, render-ready copy of the session.
type Snapshot struct {
	State        State         `json:"state"`
	Snake        []core.Cell   `json:"snake"`
	Direction    string        `json:"direction"`
	Food         core.Cell     `json:"food"`
	Score        int           `json:"score"`
	HighScore    int           `json:"highScore"`
	NewHighScore bool          `json:"newHighScore"`
	Interval     time.Duration `json:"interval"`
	Tick         uint64        `json:"tick"`
	Grid         core.Grid     `json:"grid"`
	CellSize     int           `json:"cellSize"`
	Particles    []Particle    `json:"particles,omitempty"`
	EndReason    EndReason     `json:"endReason,omitempty"`
}

// Head returns the head cell, or the zero cell for an empty snapshot.
func (s Snapshot) Head() core.Cell {
	if len(s.Snake) == 0 {
		return core.Cell{}
	}
	return s.Snake[0]
}
