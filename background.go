package main

import (
	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
)

// Backdrop parameters
const (
	backdropAlpha = 2.0
	backdropBeta  = 2.0
	backdropOcts  = 3
	backdropScale = 180.0 // Pixels per noise unit
	backdropCell  = 4     // Noise is sampled once per cell
	backdropHue   = 225.0
)

// Backdrop is a static perlin texture behind the arena, rebuilt on resize
type Backdrop struct {
	noise *perlin.Perlin
	image *ebiten.Image
	w, h  int
}

// NewBackdrop creates a backdrop generator seeded with seed
func NewBackdrop(seed int64) *Backdrop {
	return &Backdrop{noise: perlin.NewPerlin(backdropAlpha, backdropBeta, backdropOcts, seed)}
}

// Draw renders the backdrop for a w x h arena
func (b *Backdrop) Draw(screen *ebiten.Image, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if b.image == nil || b.w != w || b.h != h {
		if b.image != nil {
			b.image.Deallocate()
		}
		b.image = ebiten.NewImage(w, h)
		b.image.WritePixels(backdropPixels(b.noise, w, h))
		b.w, b.h = w, h
	}
	screen.DrawImage(b.image, nil)
}

// backdropPixels returns RGBA bytes for a w x h dark noise texture
func backdropPixels(noise *perlin.Perlin, w, h int) []byte {
	pix := make([]byte, 4*w*h)
	for cy := 0; cy < h; cy += backdropCell {
		for cx := 0; cx < w; cx += backdropCell {
			n := noise.Noise2D(float64(cx)/backdropScale, float64(cy)/backdropScale)
			r, g, bl := backdropShade(n)

			for y := cy; y < min(cy+backdropCell, h); y++ {
				for x := cx; x < min(cx+backdropCell, w); x++ {
					i := 4 * (y*w + x)
					pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, bl, 255
				}
			}
		}
	}
	return pix
}

// backdropShade maps a noise sample in roughly [-1,1] to a dim blue
func backdropShade(n float64) (uint8, uint8, uint8) {
	v := 0.05 + 0.07*(n+1)/2
	r, g, b := hsvToRGB(backdropHue, 0.55, v)
	return channel(r), channel(g), channel(b)
}
