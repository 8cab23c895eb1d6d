package app

import (
	"time"

	"lifebox/internal/core"
)

// Command is a keyboard action the window forwards to the Controller.
type Command int

const (
	CmdNone Command = iota
	CmdClear
	CmdPause
	CmdSlower
	CmdFaster
	CmdStepOnce
	CmdRandomize
	CmdQuit
)

// DefaultSoupDensity is used by CmdRandomize when no density was configured.
const DefaultSoupDensity = 0.25

// Controller owns the outer-loop state and turns input into simulation calls.
// It knows nothing about windows or pixels beyond the per-cell scale.
type Controller struct {
	sim     core.Sim
	cadence *core.Cadence
	scale   int
	seed    int64
	density float64
}

// NewController wires sim to a cadence. Clicks are mapped to cells by dividing
// pixel coordinates by scale.
func NewController(sim core.Sim, cadence *core.Cadence, scale int, seed int64, density float64) *Controller {
	if scale <= 0 {
		scale = 1
	}
	if density <= 0 {
		density = DefaultSoupDensity
	}
	return &Controller{sim: sim, cadence: cadence, scale: scale, seed: seed, density: density}
}

// Sim returns the driven simulation.
func (c *Controller) Sim() core.Sim { return c.sim }

// Cadence returns the timing state.
func (c *Controller) Cadence() *core.Cadence { return c.cadence }

// Scale returns the number of pixels per cell.
func (c *Controller) Scale() int { return c.scale }

// Tick advances the simulation by at most one generation. It reports whether a
// step was taken.
func (c *Controller) Tick(now time.Time) bool {
	if !c.cadence.ShouldStep(now) {
		return false
	}
	c.sim.Step()
	return true
}

// Apply performs cmd and reports whether the loop should exit.
func (c *Controller) Apply(cmd Command) (quit bool) {
	switch cmd {
	case CmdClear:
		c.sim.Clear()
	case CmdPause:
		c.cadence.TogglePause()
	case CmdSlower:
		c.cadence.Slower()
	case CmdFaster:
		c.cadence.Faster()
	case CmdStepOnce:
		if c.cadence.Paused() {
			c.sim.Step()
		}
	case CmdRandomize:
		c.seed++
		c.sim.Randomize(c.seed, c.density)
	case CmdQuit:
		return true
	}
	return false
}

// Cell maps a pixel position to the cell beneath it. ok is false when the
// position lies outside the grid.
func (c *Controller) Cell(px, py int) (row, col int, ok bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	row, col = py/c.scale, px/c.scale
	size := c.sim.Size()
	if row >= size.H || col >= size.W {
		return 0, 0, false
	}
	return row, col, true
}

// Click toggles the cell under (px, py). Positions off the grid are ignored.
func (c *Controller) Click(px, py int) bool {
	row, col, ok := c.Cell(px, py)
	if !ok {
		return false
	}
	c.sim.Toggle(row, col)
	return true
}
