package sim

import (
	"time"
)

// EventType identifies a host input delivered to the simulation
type EventType int

const (
	// EventPointerMoved carries an absolute pointer position in X, Y
	EventPointerMoved EventType = iota

	// EventPointerDown registers a click. No payload
	EventPointerDown

	// EventPointerUp releases the selection. No payload
	EventPointerUp

	// EventKeyChanged carries Key and Down; only KeyControl is consulted
	EventKeyChanged

	// EventAddParticles spawns N particles
	EventAddParticles

	// EventRemoveParticles removes N particles from the tail, N == 0 clears
	EventRemoveParticles
)

// Key is a host key code
type Key int

// KeyControl is the modifier that forces every particle to follow the pointer
const KeyControl Key = 305

// Event is a single host input
type Event struct {
	Type EventType
	X, Y float64
	N    int
	Key  Key
	Down bool
}

// PointerMoved builds an EventPointerMoved
func PointerMoved(x, y float64) Event {
	return Event{Type: EventPointerMoved, X: x, Y: y}
}

// PointerDown builds an EventPointerDown
func PointerDown() Event { return Event{Type: EventPointerDown} }

// PointerUp builds an EventPointerUp
func PointerUp() Event { return Event{Type: EventPointerUp} }

// KeyChanged builds an EventKeyChanged
func KeyChanged(k Key, down bool) Event {
	return Event{Type: EventKeyChanged, Key: k, Down: down}
}

// AddParticles builds an EventAddParticles
func AddParticles(n int) Event { return Event{Type: EventAddParticles, N: n} }

// RemoveParticles builds an EventRemoveParticles
func RemoveParticles(n int) Event { return Event{Type: EventRemoveParticles, N: n} }

// EventQueue is a FIFO of host events
// Single producer and single consumer on the host goroutine, no locking
type EventQueue struct {
	events []Event
}

// Push appends an event
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *EventQueue) Consume() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the pending event count
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Tick is the per-frame signal, DT is the elapsed time since the previous tick
type Tick struct {
	DT time.Duration
}
