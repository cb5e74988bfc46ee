package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(core.Cell{X: 10, Y: 10}, 3, core.DirRight)

	expected := []core.Cell{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	body := s.Body()
	if len(body) != len(expected) {
		t.Fatalf("Len() = %d, expected %d", len(body), len(expected))
	}
	for i := range expected {
		if body[i] != expected[i] {
			t.Errorf("body[%d] = %v, expected %v", i, body[i], expected[i])
		}
	}
	if s.Direction() != core.DirRight {
		t.Errorf("Direction() = %v, expected right", s.Direction())
	}
}

func TestSnakeAdvance(t *testing.T) {
	s := NewSnake(core.Cell{X: 10, Y: 10}, 3, core.DirRight)

	if ate := s.Advance(core.Cell{X: 0, Y: 0}); ate {
		t.Error("Advance() should not report eating away from food")
	}
	if s.Head() != (core.Cell{X: 11, Y: 10}) {
		t.Errorf("Head() = %v, expected (11,10)", s.Head())
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, expected 3 without food", s.Len())
	}
	if s.Occupies(core.Cell{X: 8, Y: 10}) {
		t.Error("tail should have been removed")
	}

	if ate := s.Advance(core.Cell{X: 12, Y: 10}); !ate {
		t.Error("Advance() should report eating")
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, expected 4 after eating", s.Len())
	}
	if !s.Occupies(core.Cell{X: 9, Y: 10}) {
		t.Error("tail should be kept on the eating tick")
	}
}

func TestSnakeRequestDirection(t *testing.T) {
	tests := []struct {
		name     string
		request  core.Direction
		accepted bool
		expected core.Direction
	}{
		{"reverse rejected", core.DirLeft, false, core.DirRight},
		{"perpendicular accepted", core.DirUp, true, core.DirUp},
		{"same accepted", core.DirRight, true, core.DirRight},
		{"none rejected", core.DirNone, false, core.DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(core.Cell{X: 10, Y: 10}, 3, core.DirRight)
			if got := s.RequestDirection(tc.request); got != tc.accepted {
				t.Errorf("RequestDirection(%v) = %v, expected %v", tc.request, got, tc.accepted)
			}
			if s.Direction() != tc.expected {
				t.Errorf("Direction() = %v, expected %v", s.Direction(), tc.expected)
			}
		})
	}
}

func TestSnakeHitsWall(t *testing.T) {
	grid := core.Grid{Cols: 20, Rows: 20}
	s := NewSnake(core.Cell{X: 19, Y: 5}, 3, core.DirRight)

	if s.HitsWall(grid) {
		t.Fatal("head at x=19 is on the board")
	}
	s.Advance(core.Cell{X: -1, Y: -1})
	if !s.HitsWall(grid) {
		t.Errorf("head at %v should hit the wall", s.Head())
	}
}

func TestSnakeHitsSelf(t *testing.T) {
	// Head at (5,5) heading right into its own body at (6,5)
	s := &Snake{
		body: []core.Cell{
			{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 6, Y: 4},
		},
		direction: core.DirRight,
	}
	s.Advance(core.Cell{X: -1, Y: -1})
	if !s.HitsSelf() {
		t.Errorf("expected self collision, body %v", s.Body())
	}
}

func TestSnakeFollowsVacatedTail(t *testing.T) {
	// Four cells in a square: moving into the tail cell is safe because the
	// tail leaves in the same tick.
	s := &Snake{
		body: []core.Cell{
			{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5},
		},
		direction: core.DirRight,
	}
	s.Advance(core.Cell{X: -1, Y: -1})
	if s.HitsSelf() {
		t.Errorf("moving into the vacated tail should be safe, body %v", s.Body())
	}
}

func TestSnakeBodyIsCopy(t *testing.T) {
	s := NewSnake(core.Cell{X: 10, Y: 10}, 3, core.DirRight)
	body := s.Body()
	body[0] = core.Cell{X: -5, Y: -5}
	if s.Head() != (core.Cell{X: 10, Y: 10}) {
		t.Error("Body() must not expose internal storage")
	}
}
