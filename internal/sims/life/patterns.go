package life

import (
	"sort"

	"github.com/pkg/errors"
)

// Pattern is a named set of live cells given as (row, col) offsets from the
// pattern's top-left corner.
type Pattern struct {
	Name  string
	Cells [][2]int
}

var (
	// Glider travels one cell down and one cell right every four generations.
	Glider = Pattern{Name: "glider", Cells: [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}}
	// Block is the 2x2 still life.
	Block = Pattern{Name: "block", Cells: [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}
	// Blinker is the period-2 horizontal bar.
	Blinker = Pattern{Name: "blinker", Cells: [][2]int{{0, 0}, {0, 1}, {0, 2}}}
	// RPentomino is the small methuselah that runs for over a thousand generations.
	RPentomino = Pattern{Name: "rpentomino", Cells: [][2]int{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}}}
)

var patterns = map[string]Pattern{
	Glider.Name:     Glider,
	Block.Name:      Block,
	Blinker.Name:    Blinker,
	RPentomino.Name: RPentomino,
}

// LookupPattern returns the pattern registered under name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the registered patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bounds returns the number of rows and columns the pattern spans.
func (p Pattern) Bounds() (rows, cols int) {
	for _, rc := range p.Cells {
		rows = max(rows, rc[0]+1)
		cols = max(cols, rc[1]+1)
	}
	return rows, cols
}

// Place sets the cells of p alive with its top-left corner at (row, col). No
// cell is written unless the whole pattern fits on the grid.
func (l *Life) Place(p Pattern, row, col int) error {
	cur := l.state.Current()
	rows, cols := p.Bounds()
	if !cur.InBounds(row, col) || !cur.InBounds(row+rows-1, col+cols-1) {
		return errors.Errorf("pattern %q (%dx%d) does not fit at (%d,%d) on a %dx%d grid",
			p.Name, cols, rows, row, col, cur.W, cur.H)
	}
	for _, rc := range p.Cells {
		cur.Set(row+rc[0], col+rc[1], true)
	}
	return nil
}
