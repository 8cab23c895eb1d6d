package life

import (
	"slices"
	"testing"

	"lifebox/internal/core"
)

var ring = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

func TestStepRuleForEveryNeighborCount(t *testing.T) {
	for _, alive := range []bool{false, true} {
		for n := 0; n <= 8; n++ {
			s := NewState(5, 5)
			cur := s.Current()
			cur.Set(2, 2, alive)
			for _, d := range ring[:n] {
				cur.Set(2+d[0], 2+d[1], true)
			}
			if got := CountNeighbors(cur, 2, 2); got != n {
				t.Fatalf("alive=%v: counted %d neighbors, placed %d", alive, got, n)
			}

			Step(s)

			want := (alive && (n == 2 || n == 3)) || (!alive && n == 3)
			if got := s.Current().Get(2, 2); got != want {
				t.Fatalf("alive=%v neighbors=%d: next=%v, want %v", alive, n, got, want)
			}
		}
	}
}

func TestGliderTranslatesAfterFourSteps(t *testing.T) {
	l := New(12, 12)
	if err := l.Place(Glider, 2, 2); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		l.Step()
	}

	want := New(12, 12)
	if err := want.Place(Glider, 3, 3); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(l.Cells(), want.Cells()) {
		t.Fatal("glider did not reappear translated by (1,1) after four steps")
	}
	if l.Generation() != 4 {
		t.Fatalf("generation = %d, want 4", l.Generation())
	}
}

func TestBlockIsStillLife(t *testing.T) {
	l := New(6, 6)
	if err := l.Place(Block, 2, 2); err != nil {
		t.Fatal(err)
	}
	initial := append([]bool(nil), l.Cells()...)
	for i := 0; i < 10; i++ {
		l.Step()
		if !slices.Equal(initial, l.Cells()) {
			t.Fatalf("block changed after %d steps", i+1)
		}
	}
}

func TestCornerSeesOnlyInGridNeighbors(t *testing.T) {
	g := core.NewGrid(4, 4)
	for i := range g.Cells() {
		g.Cells()[i] = true
	}
	checks := map[[2]int]int{
		{0, 0}: 3, {0, 3}: 3, {3, 0}: 3, {3, 3}: 3,
		{1, 0}: 5, {0, 2}: 5, {1, 1}: 8,
	}
	for rc, want := range checks {
		if got := CountNeighbors(g, rc[0], rc[1]); got != want {
			t.Fatalf("CountNeighbors(%d,%d) = %d, want %d", rc[0], rc[1], got, want)
		}
	}
}

func TestNoWrapAcrossEdges(t *testing.T) {
	g := core.NewGrid(4, 4)
	// Every position a torus or a flat-offset wrap would treat as adjacent to (0,0).
	for _, rc := range [][2]int{{0, 3}, {1, 3}, {3, 0}, {3, 1}, {3, 3}} {
		g.Set(rc[0], rc[1], true)
	}
	if got := CountNeighbors(g, 0, 0); got != 0 {
		t.Fatalf("corner counted %d wrapped neighbors", got)
	}
}

func TestEdgeBlinkerIsTruncated(t *testing.T) {
	s := NewState(4, 4)
	cur := s.Current()
	cur.Set(0, 3, true)
	cur.Set(1, 3, true)
	cur.Set(2, 3, true)
	if got := CountNeighbors(cur, 1, 0); got != 0 {
		t.Fatalf("(1,0) counted %d neighbors from the opposite edge", got)
	}

	Step(s)

	want := core.NewGrid(4, 4)
	want.Set(1, 2, true)
	want.Set(1, 3, true)
	if !slices.Equal(s.Current().Cells(), want.Cells()) {
		t.Fatalf("edge blinker: got %v", s.Current().Cells())
	}
}

func TestStepSwapsBuffers(t *testing.T) {
	s := NewState(6, 6)
	a, b := s.Current(), s.Next()
	a.Set(2, 1, true)
	a.Set(2, 2, true)
	a.Set(2, 3, true)

	Step(s)

	if s.Current() != b || s.Next() != a {
		t.Fatal("step should hand the scratch buffer over as current")
	}
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			want := col == 2 && row >= 1 && row <= 3
			if b.Get(row, col) != want {
				t.Fatalf("cell (%d,%d) = %v, want %v", row, col, b.Get(row, col), want)
			}
		}
	}

	// Garbage left in the scratch buffer must be fully overwritten.
	for i := range s.Next().Cells() {
		s.Next().Cells()[i] = true
	}
	Step(s)

	if s.Current() != a {
		t.Fatal("second step should swap back")
	}
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			want := row == 2 && col >= 1 && col <= 3
			if a.Get(row, col) != want {
				t.Fatalf("after second step cell (%d,%d) = %v, want %v", row, col, a.Get(row, col), want)
			}
		}
	}
}

func TestStepPanicsOnMismatchedBuffers(t *testing.T) {
	s := &State{bufs: [2]*core.Grid{core.NewGrid(3, 3), core.NewGrid(4, 3)}}
	defer func() {
		if recover() == nil {
			t.Fatal("Step accepted buffers of different shapes")
		}
	}()
	Step(s)
}
