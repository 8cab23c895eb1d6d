package ui

import (
	"testing"
	"time"

	"lifebox/internal/sims/life"
)

func TestStatus(t *testing.T) {
	sim := life.New(6, 6)
	if err := sim.Place(life.Blinker, 2, 1); err != nil {
		t.Fatal(err)
	}
	sim.Step()
	got := Status(sim, 250*time.Millisecond, true)
	want := "gen 1  pop 3  delay 250ms  paused"
	if got != want {
		t.Fatalf("Status = %q, want %q", got, want)
	}
	if got := Status(sim, time.Second, false); got != "gen 1  pop 3  delay 1s  running" {
		t.Fatalf("running status = %q", got)
	}
}
