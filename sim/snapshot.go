package sim

import (
	"math"
	"strconv"
	"time"

	"github.com/golang/geo/r2"
)

// HighlightPad is the ring margin around hovered or selected particles
const HighlightPad = 2.0

// HighlightColor is the ring color drawn under highlighted particles
var HighlightColor = RGB{R: 1, G: 1, B: 1}

// Circle is the renderable view of one particle
type Circle struct {
	Center    r2.Point
	Diameter  float64
	Color     RGB
	Highlight bool // Hovered or selected
}

// DrawKind distinguishes draw instructions
type DrawKind uint8

const (
	DrawFill DrawKind = iota
	DrawRing
)

// DrawOp is one circle draw instruction in arena coordinates
type DrawOp struct {
	Kind   DrawKind
	Center r2.Point
	Radius float64
	Color  RGB
}

// Snapshot is the render output of one frame
type Snapshot struct {
	Circles []Circle
	Count   int
	FPS     int
	HasFPS  bool // False until a frame with non-zero elapsed time
}

// DrawOps expands circles into ordered draw instructions, rings before fills
func (s Snapshot) DrawOps() []DrawOp {
	ops := make([]DrawOp, 0, len(s.Circles)*2)
	for _, c := range s.Circles {
		if c.Highlight {
			ops = append(ops, DrawOp{
				Kind:   DrawRing,
				Center: c.Center,
				Radius: c.Diameter/2 + HighlightPad,
				Color:  HighlightColor,
			})
		}
		ops = append(ops, DrawOp{
			Kind:   DrawFill,
			Center: c.Center,
			Radius: c.Diameter / 2,
			Color:  c.Color,
		})
	}
	return ops
}

// CountText is the particle count label
func (s Snapshot) CountText() string {
	return strconv.Itoa(s.Count)
}

// FPSText is the frame rate label, "0 FPS" before the first timed frame
func (s Snapshot) FPSText() string {
	return strconv.Itoa(s.FPS) + " FPS"
}

// framesPerSecond converts a frame duration to a rounded rate
func framesPerSecond(dt time.Duration) (int, bool) {
	if dt <= 0 {
		return 0, false
	}
	return int(math.Round(1 / dt.Seconds())), true
}
