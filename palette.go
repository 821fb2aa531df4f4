package main

import (
	"image/color"
	"math"

	"github.com/olivierh59500/particle-box-go/sim"
)

// UI colors
var (
	barColor       = color.RGBA{24, 24, 28, 255}
	buttonColor    = color.RGBA{60, 60, 66, 255}
	buttonHotColor = color.RGBA{90, 90, 98, 255}
	labelColor     = color.RGBA{240, 240, 240, 255}
)

// toRGBA converts a simulation color to an opaque RGBA
func toRGBA(c sim.RGB) color.RGBA {
	return color.RGBA{channel(c.R), channel(c.G), channel(c.B), 255}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// hsvToRGB helper
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
