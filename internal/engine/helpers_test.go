package engine

import (
	"github.com/matjam/slidefx/internal/source"
)

// uniform builds a solid-color test image through the normal loading
// path so it carries a cache identity.
func uniform(w, h int, r, g, b, a uint8) *source.Image {
	pix := make([]uint8, w*h*4)
	for i := 0; i < w*h; i++ {
		pix[i*4] = r
		pix[i*4+1] = g
		pix[i*4+2] = b
		pix[i*4+3] = a
	}
	img := source.FromPix(pix, w, h)
	return source.FromImage(img.RGBA())
}

// pixelAt returns the RGBA bytes of one canvas pixel.
func pixelAt(c *Canvas, x, y int) [4]uint8 {
	o := (y*c.W + x) * 4
	return [4]uint8{c.Pix[o], c.Pix[o+1], c.Pix[o+2], c.Pix[o+3]}
}
