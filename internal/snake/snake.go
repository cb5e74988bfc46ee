// Package snake implements the snake simulation: the body, food placement,
// cosmetic particles and the session state machine that drives them.
package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is an ordered list of cells with the head at index 0.
// It is never empty.
type Snake struct {
	body      []core.Cell
	direction core.Direction
}

// NewSnake creates a snake of the given length with its head at head, the
// body trailing away from dir.
func NewSnake(head core.Cell, length int, dir core.Direction) *Snake {
	length = max(length, 1)
	if dir == core.DirNone {
		dir = core.DirRight
	}

	body := make([]core.Cell, length)
	cell := head
	back := dir.Opposite()
	for i := range body {
		body[i] = cell
		cell = cell.Add(back)
	}
	return &Snake{body: body, direction: dir}
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Len returns the number of cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the committed heading.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Body returns a copy of the cells, head first.
func (s *Snake) Body() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// RequestDirection commits a new heading unless it reverses the current one.
func (s *Snake) RequestDirection(d core.Direction) bool {
	if d == core.DirNone || d.IsOpposite(s.direction) {
		return false
	}
	s.direction = d
	return true
}

// Advance moves the head one cell. The tail is kept when the new head lands
// on food, so the snake grows by exactly one cell.
func (s *Snake) Advance(food core.Cell) (ate bool) {
	newHead := s.body[0].Add(s.direction)
	ate = newHead == food

	if ate {
		s.body = append(s.body, core.Cell{})
	}
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead
	return ate
}

// HitsWall reports whether the head left the board.
func (s *Snake) HitsWall(g core.Grid) bool {
	return !g.Contains(s.body[0])
}

// HitsSelf reports whether the head overlaps any other body cell.
func (s *Snake) HitsSelf() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment is on c.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}
