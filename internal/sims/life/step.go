package life

import "lifebox/internal/core"

// Rule applies B3/S23: a live cell survives with two or three neighbours and a
// dead cell is born with exactly three.
func Rule(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// CountNeighbors returns the number of live cells among the eight positions
// around (row, col). Positions off the grid are not counted; nothing wraps.
func CountNeighbors(g *core.Grid, row, col int) int {
	cells := g.Cells()
	n := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.H {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if (dr == 0 && dc == 0) || c < 0 || c >= g.W {
				continue
			}
			if cells[r*g.W+c] {
				n++
			}
		}
	}
	return n
}

// Step writes the next generation of s into its scratch buffer and then swaps
// the buffers. The current buffer is only read during the pass.
func Step(s *State) {
	cur, nxt := s.Current(), s.Next()
	if !cur.Valid() || !cur.SameShape(nxt) {
		panic("life: malformed generation buffers")
	}
	src, dst := cur.Cells(), nxt.Cells()
	w, h := cur.W, cur.H
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			dst[idx] = Rule(src[idx], CountNeighbors(cur, row, col))
		}
	}
	s.Swap()
}
