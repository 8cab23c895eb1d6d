package life

import "lifebox/internal/core"

// Life implements Conway's Game of Life on a bounded, non-wrapping grid.
type Life struct {
	state      *State
	generation int
}

// New returns a Life simulation with the provided dimensions and every cell dead.
func New(w, h int) *Life {
	return &Life{state: NewState(w, h)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.state.Current().Size() }

// Cells exposes the current generation. Callers must treat it as read-only.
func (l *Life) Cells() []bool { return l.state.Current().Cells() }

// State exposes the generation buffers.
func (l *Life) State() *State { return l.state }

// Generation returns the number of steps taken since the last clear.
func (l *Life) Generation() int { return l.generation }

// Population counts the live cells of the current generation.
func (l *Life) Population() int {
	n := 0
	for _, alive := range l.Cells() {
		if alive {
			n++
		}
	}
	return n
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	Step(l.state)
	l.generation++
}

// Toggle flips a single cell of the current generation.
func (l *Life) Toggle(row, col int) { l.state.Toggle(row, col) }

// Clear kills every cell and restarts the generation count.
func (l *Life) Clear() {
	l.state.Clear()
	l.generation = 0
}

// Randomize replaces the board with a deterministic soup where each cell is
// alive with probability density.
func (l *Life) Randomize(seed int64, density float64) {
	core.NewRNG(seed).FillDensity(l.state.Current().Cells(), density)
	l.generation = 0
}
