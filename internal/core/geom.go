// Package core provides the board geometry, directions and input mapping
// shared by every front end. It has no external dependencies (especially no
// Bubble Tea) to keep the simulation pure and testable.
package core

// Cell is a discrete board coordinate. X is the column, Y the row, both
// 0-indexed from the top-left corner.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the neighbouring cell one step in direction d.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Grid is the playable board measured in cells.
type Grid struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

// GridFor derives the board size from a canvas size and a cell size.
// Partial cells at the right and bottom edges are dropped.
func GridFor(canvasW, canvasH, cellSize int) Grid {
	if cellSize <= 0 || canvasW <= 0 || canvasH <= 0 {
		return Grid{}
	}
	return Grid{Cols: canvasW / cellSize, Rows: canvasH / cellSize}
}

// Bounds returns the grid as a rectangle anchored at the origin.
func (g Grid) Bounds() Rect {
	return NewRect(0, 0, g.Cols, g.Rows)
}

// Contains reports whether c lies on the board.
func (g Grid) Contains(c Cell) bool {
	return g.Bounds().Contains(c.X, c.Y)
}

// CellCount returns the number of cells on the board.
func (g Grid) CellCount() int {
	return g.Cols * g.Rows
}

// Empty reports whether the grid has no cells at all.
func (g Grid) Empty() bool {
	return g.Cols <= 0 || g.Rows <= 0
}

// PixelCenter returns the canvas coordinates of the middle of c.
func PixelCenter(c Cell, cellSize int) (float64, float64) {
	half := float64(cellSize) / 2
	return float64(c.X*cellSize) + half, float64(c.Y*cellSize) + half
}

// Rect represents an axis-aligned box in screen or board coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
