package engine

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/matjam/slidefx/internal/source"
)

// wipeSoftFinish pushes the threshold slightly past the progress range
// so the wipe completes a touch before progress reaches 1.
const wipeSoftFinish = 1.02

// lumaKey identifies the buffer a luma cache was built from. Keys are
// explicit (image identity plus dimensions) so alternating between two
// same-sized image pairs never reuses a stale cache.
type lumaKey struct {
	id uint64
	w  int
	h  int
}

type lumaCache struct {
	key lumaKey
	lum []uint8
}

// lumaFor returns the per-pixel brightness of pix (w×h RGBA), rebuilding
// the cache only when the key changes. Building the cache is the
// dominant cost of the wipe, so it is row-parallel and reused across
// every progress value for the same image.
func (e *Engine) lumaFor(key lumaKey, pix []uint8, w, h int) []uint8 {
	if e.luma.key == key && key.id != 0 {
		return e.luma.lum
	}
	if len(e.luma.lum) != w*h {
		e.luma.lum = make([]uint8, w*h)
	}
	lum := e.luma.lum
	parallelize(e.workers, 0, h, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			for x := 0; x < w; x++ {
				o := (y*w + x) * 4
				v := (299*uint32(pix[o]) + 587*uint32(pix[o+1]) + 114*uint32(pix[o+2])) / 1000
				lum[y*w+x] = uint8(v)
			}
		}
	})
	e.luma.key = key
	return lum
}

// renderLumaWipe composites the luma-wipe transition: each output pixel
// comes from image B where B's cached luminance clears the threshold
// (1 − progress·softFinish)·255, from image A otherwise, always fully
// opaque. Mismatched sizes are first resampled nearest-neighbor to the
// shared minimum dimensions; the resample itself is not cached.
func (e *Engine) renderLumaWipe(dst *Canvas, p float64, a, b *source.Image) {
	w := a.W
	if b.W < w {
		w = b.W
	}
	h := a.H
	if b.H < h {
		h = b.H
	}

	pixA := a.Pix
	if a.W != w || a.H != h {
		pixA = resampleNearest(a, w, h)
	}
	pixB := b.Pix
	if b.W != w || b.H != h {
		pixB = resampleNearest(b, w, h)
	}

	lum := e.lumaFor(lumaKey{id: b.ID(), w: w, h: h}, pixB, w, h)

	if len(e.wipeOut) != w*h*4 {
		e.wipeOut = make([]uint8, w*h*4)
	}
	e.wipeW = w
	e.wipeH = h
	out := e.wipeOut

	threshold := int((1 - p*wipeSoftFinish) * 255)
	parallelize(e.workers, 0, h, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			for x := 0; x < w; x++ {
				i := y*w + x
				o := i * 4
				src := pixA
				if int(lum[i]) >= threshold {
					src = pixB
				}
				out[o] = src[o]
				out[o+1] = src[o+1]
				out[o+2] = src[o+2]
				out[o+3] = 255
			}
		}
	})

	dst.Clear(0, 0, 0, 255)
	composed := source.FromPix(out, w, h)
	drawImage(dst, composed, baseState(composed, dst.W, dst.H), e.workers)
}

// resampleNearest scales img to w×h with nearest-neighbor sampling.
func resampleNearest(img *source.Image, w, h int) []uint8 {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), img.RGBA(), img.RGBA().Bounds(), xdraw.Src, nil)
	return out.Pix
}
