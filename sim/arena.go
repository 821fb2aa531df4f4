package sim

import (
	"math/rand"
)

// Arena is the bounded region particles move in
type Arena struct {
	Width, Height float64
	Particles     []*Particle

	Speed    float64 // Spawn velocity scale
	BaseSize float64 // Spawn mass scale

	nextID int64
	rng    *rand.Rand
}

// NewArena creates an empty arena of the given size
func NewArena(width, height, speed, baseSize float64, rng *rand.Rand) *Arena {
	return &Arena{
		Width:    width,
		Height:   height,
		Speed:    speed,
		BaseSize: baseSize,
		rng:      rng,
	}
}

// Len returns the current particle count
func (a *Arena) Len() int {
	return len(a.Particles)
}

// Resize updates the arena extents, negative values become zero
func (a *Arena) Resize(width, height float64) {
	a.Width = max(width, 0)
	a.Height = max(height, 0)
}

// Add appends n particles at random positions inside the current bounds
// Non-positive n adds nothing
func (a *Arena) Add(n int) {
	if n <= 0 {
		return
	}
	for range n {
		x := a.rng.Float64() * a.Width
		y := a.rng.Float64() * a.Height
		p := NewParticle(x, y, a.Speed, a.BaseSize, a.nextID, a.Width, a.rng)
		a.nextID++
		a.Particles = append(a.Particles, p)
	}
}

// Insert appends a particle built by the caller and assigns it the next id
func (a *Arena) Insert(p *Particle) *Particle {
	p.ID = a.nextID
	a.nextID++
	a.Particles = append(a.Particles, p)
	return p
}

// Remove drops n particles from the tail
// Zero removes everything, n past the count clears, negative removes nothing
func (a *Arena) Remove(n int) {
	switch {
	case n < 0:
		return
	case n == 0 || n >= len(a.Particles):
		n = len(a.Particles)
	}

	keep := len(a.Particles) - n
	clear(a.Particles[keep:])
	a.Particles = a.Particles[:keep]
}

// Find returns the particle with the given id, or nil
func (a *Arena) Find(id int64) *Particle {
	for _, p := range a.Particles {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ClampToWalls reflects and clips a particle against the arena walls
// Each axis flips at most once. Returns which axes were flipped
func (a *Arena) ClampToWalls(p *Particle) (flipX, flipY bool) {
	if p.Pos.X+p.Size > a.Width {
		p.Vel.X = -p.Vel.X
		p.Pos.X = a.Width - p.Size
		flipX = true
	} else if p.Pos.X < 0 {
		p.Vel.X = -p.Vel.X
		p.Pos.X = 0
		flipX = true
	}

	if p.Pos.Y+p.Size > a.Height {
		p.Vel.Y = -p.Vel.Y
		p.Pos.Y = a.Height - p.Size
		flipY = true
	} else if p.Pos.Y < 0 {
		p.Vel.Y = -p.Vel.Y
		p.Pos.Y = 0
		flipY = true
	}
	return flipX, flipY
}
