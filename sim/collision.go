package sim

import (
	"math"

	"github.com/golang/geo/r2"
)

// Overlap reports whether the circles of a and b intersect or touch
// Distance between centers is compared against the mean of both sizes
func Overlap(a, b *Particle) bool {
	return a.Center().Sub(b.Center()).Norm() <= (a.Size+b.Size)/2
}

// Resolve handles contact between a and b. Returns false when they do not overlap
//
// Velocities are swapped with inverse mass weighting: a takes mb/ma of b's
// velocity and b takes ma/mb of a's. Both particles are then pushed apart
// along the line between centers by half the overlap depth each.
// Runs on every frame the overlap persists
func Resolve(a, b *Particle) bool {
	if !Overlap(a, b) {
		return false
	}

	va := b.Vel.Mul(b.Mass / a.Mass)
	vb := a.Vel.Mul(a.Mass / b.Mass)
	a.Vel, b.Vel = va, vb

	ca, cb := a.Center(), b.Center()
	dist := ca.Sub(cb).Norm()
	d := ((a.Size+b.Size)/2 - dist) / 2

	shift := separation(ca, cb, d)
	a.Pos = a.Pos.Add(shift)
	b.Pos = b.Pos.Sub(shift)
	return true
}

// separation returns the displacement of magnitude d that moves ca away from cb
// Identical centers fall back to the +y axis
func separation(ca, cb r2.Point, d float64) r2.Point {
	dx := math.Abs(ca.X - cb.X)
	dy := math.Abs(ca.Y - cb.Y)

	var g float64
	if dx != 0 {
		g = math.Atan(dy / dx)
	} else {
		g = math.Pi / 2
	}

	sx, sy := 1.0, 1.0
	if cb.X > ca.X {
		sx = -1
	}
	if cb.Y > ca.Y {
		sy = -1
	}

	// cos(pi/2) is not exactly zero
	x := math.Cos(g) * d * sx
	if dx == 0 {
		x = 0
	}
	return r2.Point{X: x, Y: math.Sin(g) * d * sy}
}
