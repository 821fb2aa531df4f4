package sim

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

const eps = 1e-9

func body(x, y, size float64) *Particle {
	return &Particle{Pos: r2.Point{X: x, Y: y}, Mass: size, Size: size}
}

func depth(a, b *Particle) float64 {
	return (a.Size+b.Size)/2 - a.Center().Sub(b.Center()).Norm()
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		bx   float64
		want bool
	}{
		{"intersecting", 5, true},
		{"touching", 10, true},
		{"apart", 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := body(0, 0, 10)
			b := body(tt.bx, 0, 10)
			if got := Overlap(a, b); got != tt.want {
				t.Errorf("Overlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlap_UsesEachRadius(t *testing.T) {
	// Centers 14 apart, mean diameter 15
	a := body(0, 0, 10)
	b := body(9, -5, 20)
	if !Overlap(a, b) {
		t.Error("Expected overlap for mixed sizes")
	}
}

func TestResolve_MassWeightedSwap(t *testing.T) {
	a := body(100, 100, 10)
	a.Vel = r2.Point{X: 1, Y: 0}
	b := body(105, 95, 20)
	b.Vel = r2.Point{X: 0, Y: -2}

	before := a.Center().Sub(b.Center()).Norm()

	if !Resolve(a, b) {
		t.Fatal("Expected collision to resolve")
	}

	if want := (r2.Point{X: 0, Y: -4}); a.Vel != want {
		t.Errorf("a.Vel = %v, want %v", a.Vel, want)
	}
	if want := (r2.Point{X: 0.5, Y: 0}); b.Vel != want {
		t.Errorf("b.Vel = %v, want %v", b.Vel, want)
	}

	after := a.Center().Sub(b.Center()).Norm()
	if after <= before {
		t.Errorf("Centers not pushed apart: before %v, after %v", before, after)
	}
	if math.Abs(after-15) > eps {
		t.Errorf("Expected centers at mean diameter 15, got %v", after)
	}
	if a.Mass != 10 || b.Mass != 20 {
		t.Errorf("Masses changed: %v, %v", a.Mass, b.Mass)
	}
}

func TestResolve_NoOverlapUntouched(t *testing.T) {
	a := body(0, 0, 10)
	a.Vel = r2.Point{X: 1, Y: 1}
	b := body(50, 50, 10)
	b.Vel = r2.Point{X: -1, Y: 2}

	if Resolve(a, b) {
		t.Fatal("Expected no collision")
	}
	if a.Vel != (r2.Point{X: 1, Y: 1}) || b.Vel != (r2.Point{X: -1, Y: 2}) {
		t.Error("Velocities changed without contact")
	}
	if a.Pos != (r2.Point{}) || b.Pos != (r2.Point{X: 50, Y: 50}) {
		t.Error("Positions changed without contact")
	}
}

func TestResolve_VerticalSeparation(t *testing.T) {
	tests := []struct {
		name   string
		ay, by float64
		wantA  float64
		wantB  float64
	}{
		{"a above", 8, 0, 9, -1},
		{"a below", 0, 8, -1, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := body(0, tt.ay, 10)
			b := body(0, tt.by, 10)
			Resolve(a, b)

			if a.Pos.X != 0 || b.Pos.X != 0 {
				t.Errorf("Vertical contact moved along x: %v, %v", a.Pos.X, b.Pos.X)
			}
			if math.Abs(a.Pos.Y-tt.wantA) > eps {
				t.Errorf("a.Pos.Y = %v, want %v", a.Pos.Y, tt.wantA)
			}
			if math.Abs(b.Pos.Y-tt.wantB) > eps {
				t.Errorf("b.Pos.Y = %v, want %v", b.Pos.Y, tt.wantB)
			}
		})
	}
}

func TestResolve_IdenticalCentersFallback(t *testing.T) {
	a := body(10, 10, 10)
	b := body(10, 10, 10)
	Resolve(a, b)

	for _, v := range []float64{a.Pos.X, a.Pos.Y, b.Pos.X, b.Pos.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Non-finite position after degenerate contact: %v, %v", a.Pos, b.Pos)
		}
	}
	if a.Pos != (r2.Point{X: 10, Y: 15}) || b.Pos != (r2.Point{X: 10, Y: 5}) {
		t.Errorf("Expected +y fallback axis, got a=%v b=%v", a.Pos, b.Pos)
	}
}

func TestResolve_ReducesDepth(t *testing.T) {
	pairs := [][2]*Particle{
		{body(0, 0, 20), body(7, 3, 30)},
		{body(40, 40, 25), body(30, 52, 15)},
		{body(5, 5, 10), body(5.5, 4, 12)},
	}

	for i, pr := range pairs {
		a, b := pr[0], pr[1]
		prev := depth(a, b)
		if prev < 0 {
			t.Fatalf("pair %d: fixture does not overlap", i)
		}
		for frame := 0; frame < 5; frame++ {
			if !Overlap(a, b) {
				break
			}
			Resolve(a, b)
			d := depth(a, b)
			if d > prev+eps {
				t.Errorf("pair %d frame %d: depth grew from %v to %v", i, frame, prev, d)
			}
			prev = d
		}
		if prev > eps {
			t.Errorf("pair %d: residual depth %v", i, prev)
		}
	}
}
