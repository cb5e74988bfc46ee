// Package render draws session snapshots as raster images for the HTTP
// front end.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// MaxScale bounds the upscaling factor accepted by Encode.
const MaxScale = 8

// hudHeight is the strip above the board holding the score line.
const hudHeight = 20

// Palette holds the colors used for drawing.
type Palette struct {
	Background color.NRGBA
	Grid       color.NRGBA
	SnakeHead  color.NRGBA
	SnakeBody  color.NRGBA
	Food       color.NRGBA
	Particle   color.NRGBA
	Text       color.NRGBA
	Overlay    color.NRGBA
}

// DefaultPalette is the wireframe look: green snake on black.
func DefaultPalette() Palette {
	return Palette{
		Background: color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Grid:       color.NRGBA{R: 0x11, G: 0x22, B: 0x11, A: 0xff},
		SnakeHead:  color.NRGBA{R: 0x7c, G: 0xff, B: 0x7c, A: 0xff},
		SnakeBody:  color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
		Food:       color.NRGBA{R: 0xff, G: 0x33, B: 0x55, A: 0xff},
		Particle:   color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff},
		Text:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Overlay:    color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xb0},
	}
}

// PNG renders snapshots with gg.
type PNG struct {
	Palette Palette
}

// NewPNG creates a renderer with the default palette.
func NewPNG() *PNG {
	return &PNG{Palette: DefaultPalette()}
}

// Draw renders the board, HUD and state overlay at native resolution:
// one pixel per canvas pixel plus the HUD strip.
func (p *PNG) Draw(s snake.Snapshot) image.Image {
	cell := max(s.CellSize, 1)
	w := max(s.Grid.Cols*cell, 1)
	h := s.Grid.Rows*cell + hudHeight

	dc := gg.NewContext(w, h)
	dc.SetColor(p.Palette.Background)
	dc.Clear()

	p.drawHUD(dc, s, w)

	dc.Push()
	dc.Translate(0, hudHeight)
	p.drawGrid(dc, s.Grid, cell)
	p.drawFood(dc, s.Food, cell)
	p.drawSnake(dc, s.Snake, cell)
	p.drawParticles(dc, s.Particles)
	p.drawOverlay(dc, s, w, s.Grid.Rows*cell)
	dc.Pop()

	return dc.Image()
}

// Encode writes the snapshot as PNG, upscaled by an integer factor with
// nearest-neighbour sampling so cells stay crisp.
func (p *PNG) Encode(w io.Writer, s snake.Snapshot, scale int) error {
	if scale < 1 || scale > MaxScale {
		return fmt.Errorf("render: scale %d out of range 1..%d", scale, MaxScale)
	}

	img := p.Draw(s)
	if scale > 1 {
		b := img.Bounds()
		img = imaging.Resize(img, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor)
	}
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("render: cannot encode png: %w", err)
	}
	return nil
}

func (p *PNG) drawHUD(dc *gg.Context, s snake.Snapshot, w int) {
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(p.Palette.Text)
	dc.DrawStringAnchored(fmt.Sprintf("Score: %d", s.Score), 4, hudHeight/2, 0, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("Best: %d", s.HighScore), float64(w)-4, hudHeight/2, 1, 0.5)
}

func (p *PNG) drawGrid(dc *gg.Context, g core.Grid, cell int) {
	dc.SetColor(p.Palette.Grid)
	dc.SetLineWidth(1)
	for x := 0; x <= g.Cols; x++ {
		dc.DrawLine(float64(x*cell), 0, float64(x*cell), float64(g.Rows*cell))
	}
	for y := 0; y <= g.Rows; y++ {
		dc.DrawLine(0, float64(y*cell), float64(g.Cols*cell), float64(y*cell))
	}
	dc.Stroke()
}

func (p *PNG) drawSnake(dc *gg.Context, body []core.Cell, cell int) {
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if i == 0 {
			dc.SetColor(p.Palette.SnakeHead)
		} else {
			dc.SetColor(p.Palette.SnakeBody)
		}
		dc.DrawRectangle(float64(c.X*cell)+1, float64(c.Y*cell)+1, float64(cell-2), float64(cell-2))
		dc.Fill()
	}
}

func (p *PNG) drawFood(dc *gg.Context, food core.Cell, cell int) {
	x, y := core.PixelCenter(food, cell)
	dc.SetColor(p.Palette.Food)
	dc.DrawCircle(x, y, float64(cell)/2-2)
	dc.Fill()
}

func (p *PNG) drawParticles(dc *gg.Context, ps []snake.Particle) {
	for _, pt := range ps {
		c := p.Palette.Particle
		c.A = uint8(core.ClampF(pt.Life, 0, 1) * float64(c.A))
		dc.SetColor(c)
		dc.DrawCircle(pt.X, pt.Y, pt.Size/2)
		dc.Fill()
	}
}

func (p *PNG) drawOverlay(dc *gg.Context, s snake.Snapshot, w, h int) {
	var title, sub string
	switch s.State {
	case snake.StateMenu:
		title, sub = "Ready to Play!", "Press start"
	case snake.StatePaused:
		title, sub = "Game Paused", "Resume to continue"
	case snake.StateGameOver:
		title = "Game Over"
		sub = fmt.Sprintf("Score: %d", s.Score)
		if s.NewHighScore {
			sub = fmt.Sprintf("New High Score! %d", s.Score)
		}
	default:
		return
	}

	dc.SetColor(p.Palette.Overlay)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(p.Palette.Text)
	dc.DrawStringAnchored(title, float64(w)/2, float64(h)/2-10, 0.5, 0.5)
	dc.DrawStringAnchored(sub, float64(w)/2, float64(h)/2+10, 0.5, 0.5)
}
