package engine

import (
	"math"

	"github.com/matjam/slidefx/internal/source"
)

// Cube tunables: perspective strength, mesh resolution and the shading
// floor. More strips means less faceting on the projected faces.
const (
	cubeFOV      = 800.0
	cubeStrips   = 96
	cubeShadeMin = 0.6
)

// cubeFace is one textured face of the rotating pair, described in
// unrotated cube coordinates. A strip parameter t in [0,1] sweeps the
// face from its u=0 edge to its u=1 edge; pointAt returns the cube-space
// (x, z) for that t.
type cubeFace struct {
	img     *source.Image
	base    float64 // resting orientation: 0 front, π/2 side
	pointAt func(t float64) (x, z float64)
}

// renderCube composites the cube-rotation transition: image A on the
// front face, image B on the side face, both swept through a Y-axis
// rotation of progress·π/2 centered at half the cube depth and projected
// with a perspective divide. Farther face first (painter's algorithm).
func (e *Engine) renderCube(dst *Canvas, p float64, a, b *source.Image) {
	fw := float64(dst.W)
	fh := float64(dst.H)

	// The cube depth is image B's width after its baseline scale, which
	// stretches it to the canvas width.
	depth := fw
	angle := p * math.Pi / 2
	sin, cos := math.Sincos(angle)

	// Rotation in the X-Z plane around (0, depth/2); viewer looks down
	// -Z with the near plane at z=0.
	rotate := func(x, z float64) (float64, float64) {
		rz := z - depth/2
		return x*cos + rz*sin, -x*sin + rz*cos + depth/2
	}

	front := cubeFace{
		img:  a,
		base: 0,
		pointAt: func(t float64) (float64, float64) {
			return -fw/2 + t*fw, 0
		},
	}
	side := cubeFace{
		img:  b,
		base: math.Pi / 2,
		pointAt: func(t float64) (float64, float64) {
			return fw / 2, t * depth
		},
	}

	// Depth-order on the transformed Z of each face's center point.
	_, zFront := rotate(front.pointAt(0.5))
	_, zSide := rotate(side.pointAt(0.5))
	order := []cubeFace{front, side}
	if zFront < zSide {
		order = []cubeFace{side, front}
	}

	dst.Clear(0, 0, 0, 255)
	for _, face := range order {
		shade := cubeShadeMin + (1-cubeShadeMin)*math.Cos(face.base-angle)
		e.drawFace(dst, face, rotate, fh, shade)
	}
}

// drawFace projects a face's strip mesh and rasterizes each strip as a
// screen trapezoid with vertical edges. Strips touch disjoint column
// ranges, so they are rendered in parallel.
func (e *Engine) drawFace(dst *Canvas, face cubeFace, rotate func(x, z float64) (float64, float64), faceH, shade float64) {
	img := face.img
	if img.Empty() {
		return
	}
	cx := float64(dst.W) / 2
	cy := float64(dst.H) / 2

	sr := uint32(shade * 255)
	if sr > 255 {
		sr = 255
	}

	parallelize(e.workers, 0, cubeStrips, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			t0 := float64(i) / cubeStrips
			t1 := float64(i+1) / cubeStrips

			x0, z0 := rotate(face.pointAt(t0))
			x1, z1 := rotate(face.pointAt(t1))
			f0 := cubeFOV / (cubeFOV + z0)
			f1 := cubeFOV / (cubeFOV + z1)

			sx0 := cx + x0*f0
			sx1 := cx + x1*f1
			if sx1 <= sx0 {
				continue
			}

			u0 := t0 * float64(img.W)
			u1 := t1 * float64(img.W)

			ix0 := int(math.Ceil(sx0 - 0.5))
			ix1 := int(math.Ceil(sx1 - 0.5))
			if ix0 < 0 {
				ix0 = 0
			}
			if ix1 > dst.W {
				ix1 = dst.W
			}
			for x := ix0; x < ix1; x++ {
				t := (float64(x) + 0.5 - sx0) / (sx1 - sx0)
				f := f0 + (f1-f0)*t
				u := int(u0 + (u1-u0)*t)
				if u < 0 {
					u = 0
				}
				if u >= img.W {
					u = img.W - 1
				}

				half := faceH / 2 * f
				top := cy - half
				bot := cy + half
				iy0 := int(math.Ceil(top - 0.5))
				iy1 := int(math.Ceil(bot - 0.5))
				if iy0 < 0 {
					iy0 = 0
				}
				if iy1 > dst.H {
					iy1 = dst.H
				}
				for y := iy0; y < iy1; y++ {
					v := int((float64(y) + 0.5 - top) / (bot - top) * float64(img.H))
					if v < 0 {
						v = 0
					}
					if v >= img.H {
						v = img.H - 1
					}
					so := (v*img.W + u) * 4
					do := (y*dst.W + x) * 4
					dst.Pix[do] = uint8(uint32(img.Pix[so]) * sr / 255)
					dst.Pix[do+1] = uint8(uint32(img.Pix[so+1]) * sr / 255)
					dst.Pix[do+2] = uint8(uint32(img.Pix[so+2]) * sr / 255)
					dst.Pix[do+3] = 255
				}
			}
		}
	})
}
