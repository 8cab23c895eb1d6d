//go:build ebiten

package ui

import (
	"image/color"

	"lifebox/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 15
	panelWidth   = 190
)

// HUD draws the status line and key help in a translucent panel over the
// top-left corner of the grid.
type HUD struct {
	sim     core.Sim
	cadence *core.Cadence
	visible bool
	panel   *ebiten.Image
}

// NewHUD constructs a visible HUD for sim.
func NewHUD(sim core.Sim, cadence *core.Cadence) *HUD {
	return &HUD{sim: sim, cadence: cadence, visible: true}
}

// Update toggles visibility with H.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	lines := append([]string{Status(h.sim, h.cadence.Delay(), h.cadence.Paused()), ""}, Help...)
	height := 2*panelPadding + len(lines)*lineHeight
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(panelWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	for i, line := range lines {
		col := dim
		if i == 0 {
			col = fg
		}
		text.Draw(h.panel, line, face, panelPadding, panelPadding+(i+1)*lineHeight-3, col)
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
