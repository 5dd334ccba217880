package engine

import (
	"math"

	"github.com/matjam/slidefx/internal/source"
)

// Ring tunables: orbit radius and the perspective depth constant that
// maps a quad's z to its on-screen scale, D/(D+z).
const (
	ringRadius = 1000.0
	ringDepth  = 670.0
)

// ringPlace resolves a point on the circular arc for angle theta and
// side sign (+1 travels right, −1 left): the horizontal offset from
// canvas center and the depth-derived perspective scale.
func ringPlace(theta, side float64) (x, scale float64) {
	sin, cos := math.Sincos(theta)
	x = side * (ringRadius - ringRadius*cos)
	z := ringRadius * sin
	return x, ringDepth / (ringDepth + z)
}

// renderRing composites the ring transition: image A orbits outward to
// the right while image B arrives from the left, each as a single
// screen-aligned quad scaled by its perspective factor. The quad with
// the larger z (smaller scale) is drawn first.
func (e *Engine) renderRing(dst *Canvas, p float64, a, b *source.Image) {
	fw := float64(dst.W)
	fh := float64(dst.H)

	xA, scaleA := ringPlace(p*math.Pi/2, 1)
	xB, scaleB := ringPlace((1-p)*math.Pi/2, -1)

	stA := baseState(a, dst.W, dst.H)
	stA.Pivot = Vec2{X: float64(a.W) / 2, Y: float64(a.H) / 2}
	stA.Pos = Vec2{X: fw/2 + xA, Y: fh / 2}
	stA.Scale.X *= scaleA
	stA.Scale.Y *= scaleA

	stB := baseState(b, dst.W, dst.H)
	stB.Pivot = Vec2{X: float64(b.W) / 2, Y: float64(b.H) / 2}
	stB.Pos = Vec2{X: fw/2 + xB, Y: fh / 2}
	stB.Scale.X *= scaleB
	stB.Scale.Y *= scaleB

	// Smaller perspective scale means larger z; paint the farther quad
	// first.
	ops := []drawOp{{a, stA}, {b, stB}}
	if scaleB < scaleA {
		ops = []drawOp{{b, stB}, {a, stA}}
	}

	dst.Clear(0, 0, 0, 255)
	for _, op := range ops {
		drawImage(dst, op.img, op.st, e.workers)
	}
}
