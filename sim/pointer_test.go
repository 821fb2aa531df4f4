package sim

import (
	"testing"
	"time"

	"github.com/golang/geo/r2"
)

func TestPointer_MoveTracksPrevious(t *testing.T) {
	p := NewPointer(DefaultSettleDelay)
	p.Move(r2.Point{X: 10, Y: 5}, 0)
	p.Move(r2.Point{X: 14, Y: 2}, 10*time.Millisecond)

	if p.Previous != (r2.Point{X: 10, Y: 5}) {
		t.Errorf("Previous = %v, want (10, 5)", p.Previous)
	}
	if d := p.Displacement(); d != (r2.Point{X: 4, Y: -3}) {
		t.Errorf("Displacement = %v, want (4, -3)", d)
	}
}

func TestPointer_SettleZeroesDisplacement(t *testing.T) {
	p := NewPointer(100 * time.Millisecond)
	p.Move(r2.Point{X: 3, Y: 4}, 0)

	if p.Settle(99 * time.Millisecond) {
		t.Fatal("Settle fired before deadline")
	}
	if p.Displacement() == (r2.Point{}) {
		t.Fatal("Displacement collapsed early")
	}

	if !p.Settle(100 * time.Millisecond) {
		t.Fatal("Settle did not fire at deadline")
	}
	if d := p.Displacement(); d != (r2.Point{}) {
		t.Errorf("Expected zero displacement after settle, got %v", d)
	}
	if p.Current != (r2.Point{X: 3, Y: 4}) {
		t.Errorf("Settle moved pointer to %v", p.Current)
	}
}

func TestPointer_MoveRearmsDeadline(t *testing.T) {
	p := NewPointer(100 * time.Millisecond)
	p.Move(r2.Point{X: 1}, 0)
	p.Move(r2.Point{X: 2}, 50*time.Millisecond)

	if at, ok := p.Deadline(); !ok || at != 150*time.Millisecond {
		t.Fatalf("Deadline = %v, %v; want 150ms armed", at, ok)
	}
	if p.Settle(120 * time.Millisecond) {
		t.Error("Cancelled deadline fired")
	}
	if !p.Settle(150 * time.Millisecond) {
		t.Error("Re-armed deadline did not fire")
	}

	// Firing re-arms from the firing time
	if at, _ := p.Deadline(); at != 250*time.Millisecond {
		t.Errorf("Deadline after fire = %v, want 250ms", at)
	}
}

func TestPointer_SelectOnce(t *testing.T) {
	p := NewPointer(DefaultSettleDelay)
	a, b := &Particle{ID: 3}, &Particle{ID: 4}

	if p.TrySelect(a) {
		t.Fatal("Selected without click")
	}

	p.Down()
	if !p.TrySelect(a) {
		t.Fatal("Click did not select")
	}
	if p.Clicked {
		t.Error("Click not consumed by selection")
	}

	p.Down()
	if p.TrySelect(b) {
		t.Error("Second particle stole the selection")
	}
	if p.Selected != 3 {
		t.Errorf("Selected = %d, want 3", p.Selected)
	}
}

func TestPointer_UpThrows(t *testing.T) {
	a := NewArena(500, 450, 0, 20, nil)
	target := a.Insert(body(100, 100, 20))

	p := NewPointer(DefaultSettleDelay)
	p.Move(r2.Point{X: 100, Y: 100}, 0)
	p.Down()
	p.TrySelect(target)
	p.Move(r2.Point{X: 108, Y: 94}, 16*time.Millisecond)

	p.Up(a)
	if target.Vel != (r2.Point{X: 8, Y: -6}) {
		t.Errorf("Throw velocity = %v, want (8, -6)", target.Vel)
	}
	if p.HasSelection() || p.Clicked {
		t.Error("Up did not reset selection state")
	}
}

func TestPointer_UpWithoutSelection(t *testing.T) {
	a := NewArena(500, 450, 0, 20, nil)
	other := a.Insert(body(0, 0, 20))
	other.Vel = r2.Point{X: 1, Y: 1}

	p := NewPointer(DefaultSettleDelay)
	p.Down()
	p.Move(r2.Point{X: 50, Y: 50}, 0)
	p.Up(a)

	if p.Clicked {
		t.Error("Pending click survived pointer up")
	}
	if other.Vel != (r2.Point{X: 1, Y: 1}) {
		t.Error("Unselected particle received throw impulse")
	}
}
