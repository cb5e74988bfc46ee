package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func testSnapshot(state snake.State) snake.Snapshot {
	return snake.Snapshot{
		State:    state,
		Snake:    []core.Cell{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}},
		Food:     core.Cell{X: 3, Y: 4},
		Score:    30,
		Grid:     core.Grid{Cols: 20, Rows: 20},
		CellSize: 20,
		Particles: []snake.Particle{
			{X: 310, Y: 310, Life: 0.5, Size: 4}, // centre of the empty cell (15,15)
		},
	}
}

func TestDrawSize(t *testing.T) {
	img := NewPNG().Draw(testSnapshot(snake.StatePlaying))
	b := img.Bounds()
	if b.Dx() != 400 || b.Dy() != 400+hudHeight {
		t.Errorf("image size = %dx%d, expected 400x%d", b.Dx(), b.Dy(), 400+hudHeight)
	}
}

func TestDrawColorsCells(t *testing.T) {
	p := NewPNG()
	img := p.Draw(testSnapshot(snake.StatePlaying))

	// Centre of the head cell (10,10), shifted down by the HUD strip.
	r, g, b, _ := img.At(10*20+10, 10*20+10+hudHeight).RGBA()
	want := p.Palette.SnakeHead
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
		t.Errorf("head pixel = (%d,%d,%d), expected %v", r>>8, g>>8, b>>8, want)
	}

	// Centre of the food cell.
	r, g, b, _ = img.At(3*20+10, 4*20+10+hudHeight).RGBA()
	food := p.Palette.Food
	if uint8(r>>8) != food.R || uint8(g>>8) != food.G || uint8(b>>8) != food.B {
		t.Errorf("food pixel = (%d,%d,%d), expected %v", r>>8, g>>8, b>>8, food)
	}
}

func TestDrawParticles(t *testing.T) {
	p := NewPNG()
	snap := testSnapshot(snake.StatePlaying)

	r, g, b, _ := p.Draw(snap).At(310, 310+hudHeight).RGBA()
	if r == 0 || g == 0 || b != 0 {
		t.Errorf("particle pixel = (%d,%d,%d), expected a faded particle tint", r>>8, g>>8, b>>8)
	}

	snap.Particles = nil
	r, g, b, _ = p.Draw(snap).At(310, 310+hudHeight).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("empty cell pixel = (%d,%d,%d), expected background", r>>8, g>>8, b>>8)
	}
}

func TestEncodeScales(t *testing.T) {
	tests := []struct {
		name    string
		scale   int
		wantErr bool
	}{
		{"native", 1, false},
		{"doubled", 2, false},
		{"zero", 0, true},
		{"too large", MaxScale + 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := NewPNG().Encode(&buf, testSnapshot(snake.StateGameOver), tc.scale)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Encode() error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}

			img, err := png.Decode(&buf)
			if err != nil {
				t.Fatalf("output is not a PNG: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != 400*tc.scale || b.Dy() != (400+hudHeight)*tc.scale {
				t.Errorf("size = %dx%d, expected %dx%d", b.Dx(), b.Dy(), 400*tc.scale, (400+hudHeight)*tc.scale)
			}
		})
	}
}
