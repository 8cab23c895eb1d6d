package life

import "testing"

func TestHistoryDetectsStillLife(t *testing.T) {
	l := New(6, 6)
	if err := l.Place(Block, 1, 1); err != nil {
		t.Fatal(err)
	}
	h := NewHistory(4)
	h.Observe(Fingerprint(l.Cells()))
	l.Step()
	if p := h.Observe(Fingerprint(l.Cells())); p != 1 {
		t.Fatalf("block period = %d, want 1", p)
	}
}

func TestHistoryDetectsBlinkerPeriod(t *testing.T) {
	l := New(5, 5)
	if err := l.Place(Blinker, 2, 1); err != nil {
		t.Fatal(err)
	}
	h := NewHistory(4)
	h.Observe(Fingerprint(l.Cells()))
	l.Step()
	if p := h.Observe(Fingerprint(l.Cells())); p != 0 {
		t.Fatalf("first step reported period %d", p)
	}
	l.Step()
	if p := h.Observe(Fingerprint(l.Cells())); p != 2 {
		t.Fatalf("blinker period = %d, want 2", p)
	}
}

func TestHistoryForgetsBeyondWindow(t *testing.T) {
	h := NewHistory(2)
	h.Observe("a")
	h.Observe("b")
	h.Observe("c")
	if p := h.Observe("a"); p != 0 {
		t.Fatalf("evicted fingerprint matched with period %d", p)
	}
}
