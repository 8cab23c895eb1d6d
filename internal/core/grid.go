package core

import "fmt"

// Grid stores a 2D grid of boolean cells in row-major order.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice. Callers must not change its length.
func (g *Grid) Cells() []bool { return g.data }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Valid reports whether the backing slice still matches W*H.
func (g *Grid) Valid() bool { return g.W > 0 && g.H > 0 && len(g.data) == g.W*g.H }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Index returns the linear slice index for (row, col). It panics when the
// coordinates fall outside the grid.
func (g *Grid) Index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", row, col, g.W, g.H))
	}
	return row*g.W + col
}

// Get returns the state of the cell at (row, col).
func (g *Grid) Get(row, col int) bool { return g.data[g.Index(row, col)] }

// Set stores the state of the cell at (row, col).
func (g *Grid) Set(row, col int, alive bool) { g.data[g.Index(row, col)] = alive }

// Toggle inverts the cell at (row, col).
func (g *Grid) Toggle(row, col int) {
	i := g.Index(row, col)
	g.data[i] = !g.data[i]
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// SameShape reports whether o has the same dimensions and length as g.
func (g *Grid) SameShape(o *Grid) bool {
	return o != nil && g.W == o.W && g.H == o.H && len(g.data) == len(o.data)
}
