package engine

import "github.com/matjam/slidefx/internal/source"

// Vec2 is a 2D point or scale factor in canvas space.
type Vec2 struct {
	X, Y float64
}

// State is the visual state of one source image for one frame: the
// modulation color (including alpha), the pivot in image-local pixels,
// the canvas position the pivot maps to, the scale factors, and the
// rotation in radians around the pivot.
//
// A fresh State is built from baseState every frame and then mutated by
// the active transition, so nothing leaks between frames or kinds.
type State struct {
	Color [4]uint8
	Pivot Vec2
	Pos   Vec2
	Scale Vec2
	Rot   float64
}

// baseState is the canonical reset: opaque white modulation, pivot at
// the image's top-left corner, position (0,0), scale chosen so the image
// exactly fills the canvas, no rotation.
func baseState(img *source.Image, canvasW, canvasH int) State {
	st := State{
		Color: [4]uint8{255, 255, 255, 255},
		Scale: Vec2{X: 1, Y: 1},
	}
	if !img.Empty() {
		st.Scale.X = float64(canvasW) / float64(img.W)
		st.Scale.Y = float64(canvasH) / float64(img.H)
	}
	return st
}

// byteAlpha converts a float opacity to the byte the compositor uses.
// Values outside [0,255] wrap through the integer conversion rather than
// clamp; out-of-range progress extrapolates the formulas as-is.
func byteAlpha(v float64) uint8 {
	return uint8(int(v))
}
