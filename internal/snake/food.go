package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned when no free cell is left for the food.
var ErrBoardFull = errors.New("snake: no free cell for food")

// defaultRetryFactor bounds random sampling to this many times the cell count.
const defaultRetryFactor = 4

// Food is the single edible cell on the board.
type Food struct {
	cell core.Cell
}

// NewFood creates food at a fixed cell.
func NewFood(c core.Cell) Food {
	return Food{cell: c}
}

// Cell returns the food position.
func (f Food) Cell() core.Cell {
	return f.cell
}

// Relocate moves the food to a uniformly chosen free cell. It samples at
// random up to retryFactor*CellCount times, then falls back to choosing among
// the enumerated free cells. On a full board it returns ErrBoardFull and the
// food keeps its previous cell.
func (f *Food) Relocate(g core.Grid, occupied func(core.Cell) bool, rng *rand.Rand, retryFactor int) error {
	if g.Empty() {
		return ErrBoardFull
	}
	if retryFactor <= 0 {
		retryFactor = defaultRetryFactor
	}

	attempts := retryFactor * g.CellCount()
	for range attempts {
		c := core.Cell{X: rng.Intn(g.Cols), Y: rng.Intn(g.Rows)}
		if !occupied(c) {
			f.cell = c
			return nil
		}
	}

	// Collect all empty cells
	var free []core.Cell
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			c := core.Cell{X: x, Y: y}
			if !occupied(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return ErrBoardFull
	}

	f.cell = free[rng.Intn(len(free))]
	return nil
}
