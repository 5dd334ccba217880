package engine

import (
	"image"
	"math"

	"github.com/matjam/slidefx/internal/source"
)

// The logical canvas every transition renders into. Source images are
// stretched to this size by the baseline scale; the canvas never
// negotiates its dimensions at runtime.
const (
	Width  = 1200
	Height = 800
)

// Canvas is the RGBA8 target surface a frame is composited into.
type Canvas struct {
	Pix []uint8
	W   int
	H   int
}

// NewCanvas allocates a canvas. Pass Width and Height for the logical
// canvas; tests use smaller surfaces.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{Pix: make([]uint8, w*h*4), W: w, H: h}
}

// Clear fills the whole surface with one color.
func (c *Canvas) Clear(r, g, b, a uint8) {
	row := c.W * 4
	for x := 0; x < c.W; x++ {
		o := x * 4
		c.Pix[o] = r
		c.Pix[o+1] = g
		c.Pix[o+2] = b
		c.Pix[o+3] = a
	}
	first := c.Pix[:row]
	for y := 1; y < c.H; y++ {
		copy(c.Pix[y*row:(y+1)*row], first)
	}
}

// RGBA exposes the canvas as an image.RGBA sharing the same backing
// buffer, for encoding or presentation.
func (c *Canvas) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    c.Pix,
		Stride: c.W * 4,
		Rect:   image.Rect(0, 0, c.W, c.H),
	}
}

// drawImage composites img onto the canvas under the given visual state.
// The forward mapping is dst = Pos + R(Rot)·S(Scale)·(src − Pivot);
// pixels are produced by inverse-mapping canvas coordinates back into
// the image and sampling the nearest texel, modulated by the state color
// and blended src-over. Rows are rasterized in parallel and drawImage
// does not return until all of them are done.
func drawImage(dst *Canvas, img *source.Image, st State, workers int) {
	if img.Empty() || st.Color[3] == 0 {
		return
	}
	if st.Scale.X == 0 || st.Scale.Y == 0 {
		return
	}

	sin, cos := math.Sincos(st.Rot)

	// Forward matrix columns for the corner sweep.
	m00 := cos * st.Scale.X
	m01 := -sin * st.Scale.Y
	m10 := sin * st.Scale.X
	m11 := cos * st.Scale.Y

	fw := float64(img.W)
	fh := float64(img.H)
	corners := [4][2]float64{{0, 0}, {fw, 0}, {0, fh}, {fw, fh}}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, cn := range corners {
		lx := cn[0] - st.Pivot.X
		ly := cn[1] - st.Pivot.Y
		x := st.Pos.X + m00*lx + m01*ly
		y := st.Pos.Y + m10*lx + m11*ly
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	x0 := int(math.Floor(minX))
	y0 := int(math.Floor(minY))
	x1 := int(math.Ceil(maxX))
	y1 := int(math.Ceil(maxY))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > dst.W {
		x1 = dst.W
	}
	if y1 > dst.H {
		y1 = dst.H
	}
	if x0 >= x1 || y0 >= y1 {
		return
	}

	// Inverse: src = S⁻¹·R(−Rot)·(dst − Pos) + Pivot.
	i00 := cos / st.Scale.X
	i01 := sin / st.Scale.X
	i10 := -sin / st.Scale.Y
	i11 := cos / st.Scale.Y

	cr := uint32(st.Color[0])
	cg := uint32(st.Color[1])
	cb := uint32(st.Color[2])
	ca := uint32(st.Color[3])

	parallelize(workers, y0, y1, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			dy := float64(y) + 0.5 - st.Pos.Y
			rowOff := y * dst.W * 4
			for x := x0; x < x1; x++ {
				dx := float64(x) + 0.5 - st.Pos.X
				sx := i00*dx + i01*dy + st.Pivot.X
				sy := i10*dx + i11*dy + st.Pivot.Y
				if sx < 0 || sy < 0 || sx >= fw || sy >= fh {
					continue
				}
				so := (int(sy)*img.W + int(sx)) * 4
				sr := (uint32(img.Pix[so]) * cr) / 255
				sg := (uint32(img.Pix[so+1]) * cg) / 255
				sb := (uint32(img.Pix[so+2]) * cb) / 255
				sa := (uint32(img.Pix[so+3]) * ca) / 255

				do := rowOff + x*4
				if sa == 255 {
					dst.Pix[do] = uint8(sr)
					dst.Pix[do+1] = uint8(sg)
					dst.Pix[do+2] = uint8(sb)
					dst.Pix[do+3] = 255
					continue
				}
				inv := 255 - sa
				dst.Pix[do] = uint8((sr*sa + uint32(dst.Pix[do])*inv) / 255)
				dst.Pix[do+1] = uint8((sg*sa + uint32(dst.Pix[do+1])*inv) / 255)
				dst.Pix[do+2] = uint8((sb*sa + uint32(dst.Pix[do+2])*inv) / 255)
				dst.Pix[do+3] = uint8(sa + (uint32(dst.Pix[do+3])*inv)/255)
			}
		}
	})
}
