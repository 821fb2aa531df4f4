package sim

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

// RGB holds color channels in [0,1]
type RGB struct {
	R, G, B float64
}

// Particle is a single circular body in the arena
// Pos is the top-left corner of its Size x Size bounding square
type Particle struct {
	Pos   r2.Point
	Vel   r2.Point // Displacement per frame
	Mass  float64
	Size  float64 // Diameter, equal to Mass
	Color RGB
	ID    int64
	Hover bool
}

// NewParticle creates a particle at (x, y) in an arena of width w
// Velocity components are uniform in [-speed, speed), mass in [size, 2*size)
func NewParticle(x, y, speed, size float64, id int64, w float64, rng *rand.Rand) *Particle {
	vx := 2 * (rng.Float64() - 0.5) * speed
	vy := 2 * (rng.Float64() - 0.5) * speed
	mass := size * (rng.Float64() + 1)

	return &Particle{
		Pos:   r2.Point{X: x, Y: y},
		Vel:   r2.Point{X: vx, Y: vy},
		Mass:  mass,
		Size:  mass,
		Color: positionColor(x, y, w),
		ID:    id,
	}
}

// Center returns the center of the particle's bounding square
func (p *Particle) Center() r2.Point {
	return r2.Point{X: p.Pos.X + p.Size/2, Y: p.Pos.Y + p.Size/2}
}

// Contains reports whether pt is within pick distance of the particle center
func (p *Particle) Contains(pt r2.Point) bool {
	return pt.Sub(p.Center()).Norm() < p.Size
}

// positionColor derives the fixed particle color; both channels scale by width
func positionColor(x, y, w float64) RGB {
	if w <= 0 {
		return RGB{R: 0, G: 0, B: 1}
	}
	return RGB{R: clamp01(x / w), G: clamp01(y / w), B: 1}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
