//go:build ebiten

package ui

import (
	"image/color"

	"lifebox/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional grid lines and outlines the cell under the cursor.
type Overlay struct {
	sim      core.Sim
	scale    int
	showGrid bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles grid lines with G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	scale := o.scale
	if size.W <= 0 || size.H <= 0 || scale <= 0 {
		return
	}
	w, h := float64(size.W*scale), float64(size.H*scale)

	// Lines are pointless when cells are a pixel or two wide.
	if o.showGrid && scale >= 4 {
		line := color.RGBA{R: 40, G: 40, B: 48, A: 255}
		for c := 1; c < size.W; c++ {
			o.fillRect(screen, float64(c*scale), 0, 1, h, line)
		}
		for r := 1; r < size.H; r++ {
			o.fillRect(screen, 0, float64(r*scale), w, 1, line)
		}
	}

	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= size.W*scale || y >= size.H*scale {
		return
	}
	cx, cy := float64(x/scale*scale), float64(y/scale*scale)
	s := float64(scale)
	hl := color.RGBA{R: 90, G: 160, B: 255, A: 255}
	o.fillRect(screen, cx, cy, s, 1, hl)
	o.fillRect(screen, cx, cy+s-1, s, 1, hl)
	o.fillRect(screen, cx, cy, 1, s, hl)
	o.fillRect(screen, cx+s-1, cy, 1, s, hl)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
