//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifebox/internal/render"
	"lifebox/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyCommands = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeyQ, CmdQuit},
	{ebiten.KeyEscape, CmdQuit},
	{ebiten.KeyP, CmdPause},
	{ebiten.KeySpace, CmdPause},
	{ebiten.KeyN, CmdStepOnce},
	{ebiten.KeyPeriod, CmdSlower},
	{ebiten.KeyComma, CmdFaster},
	{ebiten.KeyC, CmdClear},
	{ebiten.KeyR, CmdRandomize},
}

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color
}

// New constructs a Game for the provided controller.
func New(ctl *Controller) *Game {
	sim := ctl.Sim()
	return &Game{
		ctl:      ctl,
		painter:  render.NewGridPainter(sim.Size().W, sim.Size().H),
		overlay:  ui.NewOverlay(sim, ctl.Scale()),
		hud:      ui.NewHUD(sim, ctl.Cadence()),
		onColor:  color.White,
		offColor: color.Black,
	}
}

// Update advances the simulation when due, then drains this frame's input.
func (g *Game) Update() error {
	g.ctl.Tick(time.Now())

	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) && g.ctl.Apply(kc.cmd) {
			return ebiten.Termination
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctl.Click(ebiten.CursorPosition())
	}
	g.overlay.Update()
	g.hud.Update()
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctl.Sim().Cells(), g.onColor, g.offColor, g.ctl.Scale())
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctl.Sim().Size()
	return s.W * g.ctl.Scale(), s.H * g.ctl.Scale()
}
