package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// Layout constants for the board view.
const (
	cellWidth = 2 // terminal columns per board cell
	hudRows   = 2 // status line + separator
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetGlyph(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				g := s.GetGlyph(x, y)
				if g.Color != startColor {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// BoardSize returns the terminal cells needed to draw grid g with its HUD
// and border.
func BoardSize(g core.Grid) (width, height int) {
	return g.Cols*cellWidth + 2, g.Rows + 2 + hudRows
}

// boardView holds the HUD extras that are not part of a snapshot.
type boardView struct {
	difficulty string
	flash      bool
}

// DrawBoard paints a snapshot onto dst, centred horizontally.
func DrawBoard(dst *core.Screen, s snake.Snapshot, v boardView) {
	dst.Clear()

	w, h := BoardSize(s.Grid)
	if dst.Width() < w || dst.Height() < h {
		drawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	ox := (dst.Width() - w) / 2
	drawHUD(dst, s, v, ox, w)

	top := hudRows
	dst.DrawBox(core.NewRect(ox, top, w, s.Grid.Rows+2), core.ColorGray)

	// Cell (x, y) maps to terminal column ox+1+x*cellWidth, row top+1+y.
	put := func(c core.Cell, text string, color core.Color) {
		if !s.Grid.Contains(c) {
			return
		}
		dst.DrawTextColored(ox+1+c.X*cellWidth, top+1+c.Y, text, color)
	}

	drawParticles(s, put)
	put(s.Food, "● ", core.ColorRed)
	for i := len(s.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			put(s.Snake[i], "██", core.ColorBrightGreen)
		} else {
			put(s.Snake[i], "▓▓", core.ColorGreen)
		}
	}

	switch s.State {
	case snake.StateMenu:
		drawOverlay(dst, "Ready to Play!", "Press Enter or an arrow key")
	case snake.StatePaused:
		drawOverlay(dst, "Game Paused", "Press Space to continue")
	case snake.StateGameOver:
		line := fmt.Sprintf("Score: %d", s.Score)
		if s.NewHighScore {
			line = fmt.Sprintf("New High Score! %d", s.Score)
		}
		drawOverlay(dst, "Game Over", line)
		share := snake.ShareText(s.Score)
		if len([]rune(share)) <= dst.Width() {
			dst.DrawTextCentered(top+s.Grid.Rows+1, share, core.ColorGray)
		}
	}
}

func drawHUD(dst *core.Screen, s snake.Snapshot, v boardView, ox, w int) {
	scoreColor := core.ColorBrightWhite
	if v.flash {
		scoreColor = core.ColorBrightYellow
	}

	left := fmt.Sprintf(" SNAKE  Score: %d", s.Score)
	dst.DrawTextColored(ox, 0, left, scoreColor)

	right := fmt.Sprintf("Best: %d  %s ", s.HighScore, v.difficulty)
	dst.DrawTextColored(ox+w-len([]rune(right)), 0, right, core.ColorCyan)

	for x := ox; x < ox+w; x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// drawParticles maps particle pixel positions onto board cells.
func drawParticles(s snake.Snapshot, put func(core.Cell, string, core.Color)) {
	if s.CellSize <= 0 {
		return
	}
	for _, p := range s.Particles {
		c := core.Cell{
			X: int(math.Floor(p.X / float64(s.CellSize))),
			Y: int(math.Floor(p.Y / float64(s.CellSize))),
		}
		color := core.ColorOrange
		if p.Life > 0.5 {
			color = core.ColorBrightYellow
		}
		put(c, "· ", color)
	}
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, line2, core.ColorDefault)
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
