// Package source holds decoded still images in the raw RGBA form the
// engine samples from. Images carry an identity used as a cache key, so
// two loads of the same file are still distinct cache entries.
package source

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"os"
	"sync/atomic"
)

var nextID atomic.Uint64

// Image is a decoded picture: tightly packed RGBA bytes plus dimensions.
// A zero-size Image means "not loaded"; the engine degrades gracefully
// rather than erroring on it.
type Image struct {
	id  uint64
	Pix []uint8
	W   int
	H   int
}

// Load reads and decodes an image file. Decoders are registered by the
// main package (png, jpeg, gif).
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return FromImage(img), nil
}

// FromImage repacks any image.Image into a tight RGBA buffer.
func FromImage(img image.Image) *Image {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return &Image{
		id:  nextID.Add(1),
		Pix: rgba.Pix,
		W:   rgba.Rect.Dx(),
		H:   rgba.Rect.Dy(),
	}
}

// FromPix wraps an existing RGBA buffer without assigning an identity.
// Used for engine-internal scratch output that never keys a cache.
func FromPix(pix []uint8, w, h int) *Image {
	return &Image{Pix: pix, W: w, H: h}
}

// ID returns the image identity. Zero means "no identity" (scratch data).
func (m *Image) ID() uint64 {
	if m == nil {
		return 0
	}
	return m.id
}

// Empty reports whether there is no pixel data to draw.
func (m *Image) Empty() bool {
	return m == nil || m.W == 0 || m.H == 0
}

// RGBA exposes the pixels as an image.RGBA sharing the same backing
// buffer. Callers must not hold the view across a mutation of the Image.
func (m *Image) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    m.Pix,
		Stride: m.W * 4,
		Rect:   image.Rect(0, 0, m.W, m.H),
	}
}
