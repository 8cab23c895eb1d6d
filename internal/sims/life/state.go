package life

import (
	"fmt"

	"lifebox/internal/core"
)

// State owns the current and next generation buffers. The two slots swap
// roles after every step; neither buffer is reallocated or copied.
type State struct {
	bufs [2]*core.Grid
	cur  int
}

// NewState allocates both buffers with every cell dead.
func NewState(w, h int) *State {
	return NewStateFrom(core.NewGrid(w, h), core.NewGrid(w, h))
}

// NewStateFrom adopts cur and next as the two generation buffers. It panics
// when the buffers differ in shape.
func NewStateFrom(cur, next *core.Grid) *State {
	if cur == nil || !cur.Valid() || !cur.SameShape(next) {
		panic("life: generation buffers must share one valid shape")
	}
	return &State{bufs: [2]*core.Grid{cur, next}}
}

// Current returns the buffer holding the settled generation.
func (s *State) Current() *core.Grid { return s.bufs[s.cur] }

// Next returns the scratch buffer the following step writes into.
func (s *State) Next() *core.Grid { return s.bufs[1-s.cur] }

// Swap exchanges the roles of the two buffers.
func (s *State) Swap() { s.cur = 1 - s.cur }

// Clear kills every cell of the current generation.
func (s *State) Clear() { s.Current().Clear() }

// Toggle inverts one cell of the current generation in place.
func (s *State) Toggle(row, col int) {
	cur := s.Current()
	if !cur.InBounds(row, col) {
		panic(fmt.Sprintf("life: toggle (%d,%d) outside %dx%d grid", row, col, cur.W, cur.H))
	}
	cur.Toggle(row, col)
}
