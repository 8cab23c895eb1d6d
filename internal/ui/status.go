package ui

import (
	"fmt"
	"time"

	"lifebox/internal/core"
)

// Status formats the one-line summary shown in the HUD.
func Status(sim core.Sim, delay time.Duration, paused bool) string {
	state := "running"
	if paused {
		state = "paused"
	}
	return fmt.Sprintf("gen %d  pop %d  delay %v  %s", sim.Generation(), sim.Population(), delay, state)
}

// Help lists the key bindings, one per line.
var Help = []string{
	"click  toggle cell",
	"P/spc  pause",
	"N      step (paused)",
	", .    faster / slower",
	"C      clear",
	"R      random soup",
	"G      grid lines",
	"H      hud",
	"Q/esc  quit",
}
