package sim

import (
	"time"

	"github.com/golang/geo/r2"
)

// NoSelection is the Selected value when no particle is pinned to the pointer
const NoSelection int64 = -1

// DefaultSettleDelay is how long the pointer must rest before its displacement decays to zero
const DefaultSettleDelay = 100 * time.Millisecond

// Pointer tracks mouse position, click and drag state
//
// Current - Previous approximates pointer velocity while the mouse moves.
// A settle deadline, re-armed on every move, collapses Previous onto Current
// once the mouse stops so a stale displacement never lingers
type Pointer struct {
	Current  r2.Point
	Previous r2.Point
	Clicked  bool
	Selected int64
	Ctrl     bool

	SettleDelay time.Duration
	settleAt    time.Duration
	armed       bool
}

// NewPointer creates an idle pointer at the origin with its settle deadline armed
func NewPointer(settleDelay time.Duration) *Pointer {
	return &Pointer{
		Selected:    NoSelection,
		SettleDelay: settleDelay,
		settleAt:    settleDelay,
		armed:       true,
	}
}

// Move records a new raw position at simulation time now and re-arms the settle deadline
// Any pending deadline is replaced
func (p *Pointer) Move(pos r2.Point, now time.Duration) {
	p.Previous = p.Current
	p.Current = pos
	p.settleAt = now + p.SettleDelay
	p.armed = true
}

// Settle fires the deadline if it has passed. Returns true when it fired
func (p *Pointer) Settle(now time.Duration) bool {
	if !p.armed || now < p.settleAt {
		return false
	}
	p.Move(p.Current, now)
	return true
}

// Deadline returns the pending settle time and whether one is armed
func (p *Pointer) Deadline() (time.Duration, bool) {
	return p.settleAt, p.armed
}

// Displacement is the implied per-frame pointer velocity
func (p *Pointer) Displacement() r2.Point {
	return p.Current.Sub(p.Previous)
}

// Down registers a pending click
func (p *Pointer) Down() {
	p.Clicked = true
}

// Up releases any selected particle with the current displacement as a throw impulse
// Selection and click are cleared regardless of pointer location
func (p *Pointer) Up(a *Arena) {
	if p.Selected != NoSelection {
		if sel := a.Find(p.Selected); sel != nil {
			sel.Vel = p.Displacement()
		}
	}
	p.Selected = NoSelection
	p.Clicked = false
}

// TrySelect pins pt to the pointer if a click is pending and nothing is selected
func (p *Pointer) TrySelect(pt *Particle) bool {
	if !p.Clicked || p.Selected != NoSelection {
		return false
	}
	p.Selected = pt.ID
	p.Clicked = false
	return true
}

// Drives reports whether pt's velocity follows the pointer this frame
func (p *Pointer) Drives(pt *Particle) bool {
	return p.Ctrl || p.Selected == pt.ID
}

// HasSelection reports whether a particle is pinned
func (p *Pointer) HasSelection() bool {
	return p.Selected != NoSelection
}
