// Package sim is a 2D particle box: circular bodies bouncing in a walled arena,
// colliding with each other and dragged or thrown by a pointer.
package sim

import (
	"math/rand"
	"time"

	"github.com/golang/geo/r2"
)

// SizeSource supplies the current arena extents, read once per frame
type SizeSource interface {
	ArenaSize() (width, height float64)
}

// SizeFunc adapts a function to SizeSource
type SizeFunc func() (float64, float64)

func (f SizeFunc) ArenaSize() (float64, float64) { return f() }

// Options configures a Simulation
type Options struct {
	Speed        float64
	BaseSize     float64
	InitialCount int
	SettleDelay  time.Duration
}

// Simulation owns all mutable state: arena, pointer, pending events and frame stats
// Host pushes events, then calls Step once per frame
type Simulation struct {
	Arena   *Arena
	Pointer *Pointer

	size   SizeSource
	queue  EventQueue
	now    time.Duration
	frames uint64
	fps    int
	hasFPS bool
}

// New creates a simulation sized from src and seeds it with opts.InitialCount particles
func New(opts Options, src SizeSource, rng *rand.Rand) *Simulation {
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	w, h := src.ArenaSize()
	s := &Simulation{
		Arena:   NewArena(0, 0, opts.Speed, opts.BaseSize, rng),
		Pointer: NewPointer(opts.SettleDelay),
		size:    src,
	}
	s.Arena.Resize(w, h)
	s.Arena.Add(opts.InitialCount)
	return s
}

// Push queues a host event for the next Step
func (s *Simulation) Push(e Event) {
	s.queue.Push(e)
}

// Now returns the accumulated simulation time
func (s *Simulation) Now() time.Duration {
	return s.now
}

// Frames returns the number of completed steps
func (s *Simulation) Frames() uint64 {
	return s.frames
}

// Step advances one frame
//
// Order: clock advance, event dispatch, settle deadline, arena resize,
// then per particle: pair collisions, hover, selection, pointer drive,
// integration, wall clamp. Frame stats are recorded last
func (s *Simulation) Step(t Tick) {
	if t.DT > 0 {
		s.now += t.DT
	}
	for _, e := range s.queue.Consume() {
		s.dispatch(e)
	}
	s.Pointer.Settle(s.now)

	s.Arena.Resize(s.size.ArenaSize())

	ps := s.Arena.Particles
	ptr := s.Pointer
	for i, p1 := range ps {
		for _, p2 := range ps[i+1:] {
			Resolve(p1, p2)
		}

		p1.Hover = p1.Contains(ptr.Current)
		if p1.Hover {
			ptr.TrySelect(p1)
		}

		if ptr.Drives(p1) {
			p1.Vel = ptr.Displacement()
		}

		p1.Pos = p1.Pos.Add(p1.Vel)
		s.Arena.ClampToWalls(p1)
	}

	// Untimed frames keep the last rate
	if fps, ok := framesPerSecond(t.DT); ok {
		s.fps, s.hasFPS = fps, true
	}
	s.frames++
}

// dispatch applies one host event
func (s *Simulation) dispatch(e Event) {
	switch e.Type {
	case EventPointerMoved:
		s.Pointer.Move(r2.Point{X: e.X, Y: e.Y}, s.now)
	case EventPointerDown:
		s.Pointer.Down()
	case EventPointerUp:
		s.Pointer.Up(s.Arena)
	case EventKeyChanged:
		if e.Key == KeyControl {
			s.Pointer.Ctrl = e.Down
		}
	case EventAddParticles:
		s.Arena.Add(e.N)
	case EventRemoveParticles:
		s.Arena.Remove(e.N)
	}
}

// Snapshot builds the render output for the current state without mutating it
func (s *Simulation) Snapshot() Snapshot {
	circles := make([]Circle, len(s.Arena.Particles))
	for i, p := range s.Arena.Particles {
		circles[i] = Circle{
			Center:    p.Center(),
			Diameter:  p.Size,
			Color:     p.Color,
			Highlight: p.Hover || p.ID == s.Pointer.Selected,
		}
	}
	return Snapshot{
		Circles: circles,
		Count:   len(circles),
		FPS:     s.fps,
		HasFPS:  s.hasFPS,
	}
}
