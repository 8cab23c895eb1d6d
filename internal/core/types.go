package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// Sim defines the contract the window loop needs from a simulation.
type Sim interface {
	Name() string
	Size() Size
	Step()
	Cells() []bool
	Toggle(row, col int)
	Clear()
	Randomize(seed int64, density float64)
	Generation() int
	Population() int
}
