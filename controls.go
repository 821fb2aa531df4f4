package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/olivierh59500/particle-box-go/sim"
)

const (
	buttonPad  = 4
	glyphWidth = 7 // basicfont.Face7x13 advance
)

// Button is a control bar command
type Button struct {
	Label string
	Event sim.Event
}

// ControlBar lays out the buttons and the two stat labels in equal cells under the arena
type ControlBar struct {
	Buttons []Button
}

// NewControlBar returns the stock bar: +10, +1, -10, Clear
func NewControlBar() *ControlBar {
	return &ControlBar{Buttons: []Button{
		{Label: "+ 10", Event: sim.AddParticles(10)},
		{Label: "+ 1", Event: sim.AddParticles(1)},
		{Label: "- 10", Event: sim.RemoveParticles(10)},
		{Label: "Clear", Event: sim.RemoveParticles(0)},
	}}
}

// cells splits the bar into one cell per button plus count and fps labels
func (c *ControlBar) cells(bounds image.Rectangle) []image.Rectangle {
	n := len(c.Buttons) + 2
	out := make([]image.Rectangle, n)
	w := bounds.Dx()
	for i := range n {
		x0 := bounds.Min.X + w*i/n
		x1 := bounds.Min.X + w*(i+1)/n
		out[i] = image.Rect(x0, bounds.Min.Y, x1, bounds.Max.Y)
	}
	return out
}

// Hit returns the button under pt, if any
func (c *ControlBar) Hit(bounds image.Rectangle, pt image.Point) (Button, bool) {
	if !pt.In(bounds) {
		return Button{}, false
	}
	for i, r := range c.cells(bounds)[:len(c.Buttons)] {
		if pt.In(r.Inset(buttonPad)) {
			return c.Buttons[i], true
		}
	}
	return Button{}, false
}

// Draw renders buttons and the count and fps labels
func (c *ControlBar) Draw(screen *ebiten.Image, bounds image.Rectangle, cursor image.Point, snap sim.Snapshot) {
	vector.DrawFilledRect(screen, float32(bounds.Min.X), float32(bounds.Min.Y),
		float32(bounds.Dx()), float32(bounds.Dy()), barColor, false)

	cells := c.cells(bounds)
	for i, b := range c.Buttons {
		r := cells[i].Inset(buttonPad)
		col := buttonColor
		if cursor.In(r) {
			col = buttonHotColor
		}
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y),
			float32(r.Dx()), float32(r.Dy()), col, false)
		drawLabel(screen, b.Label, r)
	}

	drawLabel(screen, snap.CountText(), cells[len(c.Buttons)])
	drawLabel(screen, snap.FPSText(), cells[len(c.Buttons)+1])
}

// drawLabel centers s in r
func drawLabel(screen *ebiten.Image, s string, r image.Rectangle) {
	x, y := labelOrigin(s, r)
	text.Draw(screen, s, basicfont.Face7x13, x, y, labelColor)
}

// labelOrigin returns the baseline origin that centers s in r
func labelOrigin(s string, r image.Rectangle) (int, int) {
	x := r.Min.X + (r.Dx()-len(s)*glyphWidth)/2
	y := r.Min.Y + (r.Dy()+8)/2
	return x, y
}
