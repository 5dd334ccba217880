package engine

import (
	"math"

	"github.com/matjam/slidefx/internal/source"
)

// drawOp is one image draw in a frame's plan. Ops are listed in paint
// order; reversed order (B under a shrinking A) and single-image halves
// fall out of the plan rather than out of control-flow quirks.
type drawOp struct {
	img *source.Image
	st  State
}

// geometricPlan computes the closed-form visual states for the twelve
// transitions that share the clear+draw step. Each case starts from the
// baseline reset and overrides only what the transition needs.
func geometricPlan(w, h int, kind Kind, p float64, a, b *source.Image) []drawOp {
	fw := float64(w)
	fh := float64(h)
	stA := baseState(a, w, h)
	stB := baseState(b, w, h)

	switch kind {
	case SlideLeft:
		stB.Pos.X = -fw * (1 - p)
	case SlideRight:
		stB.Pos.X = fw * (1 - p)
	case SlideUp:
		stB.Pos.Y = -fh * (1 - p)
	case SlideDown:
		stB.Pos.Y = fh * (1 - p)

	case BoxIn:
		stB.Pivot = Vec2{X: float64(b.W) / 2, Y: float64(b.H) / 2}
		stB.Pos = Vec2{X: fw / 2, Y: fh / 2}
		stB.Scale.X *= p
		stB.Scale.Y *= p

	case BoxOut:
		stA.Pivot = Vec2{X: float64(a.W) / 2, Y: float64(a.H) / 2}
		stA.Pos = Vec2{X: fw / 2, Y: fh / 2}
		stA.Scale.X *= 1 - p
		stA.Scale.Y *= 1 - p
		// The shrinking image must stay on top of the incoming one.
		return []drawOp{{b, stB}, {a, stA}}

	case FadeBlack:
		if p <= 0.5 {
			local := p * 2
			stA.Color[3] = byteAlpha(255 * (1 - local))
			stB.Color[3] = 0
		} else {
			local := (p - 0.5) * 2
			stA.Color[3] = 0
			stB.Color[3] = byteAlpha(255 * local)
		}

	case CrossFade:
		stB.Color[3] = byteAlpha(255 * p)

	case PageTurnH:
		if p <= 0.5 {
			stA.Pivot = Vec2{X: float64(a.W) / 2, Y: float64(a.H) / 2}
			stA.Pos = Vec2{X: fw / 2, Y: fh / 2}
			stA.Scale.X *= 1 - 2*p
			return []drawOp{{a, stA}}
		}
		stB.Pivot = Vec2{X: float64(b.W) / 2, Y: float64(b.H) / 2}
		stB.Pos = Vec2{X: fw / 2, Y: fh / 2}
		stB.Scale.X *= 2*p - 1
		return []drawOp{{b, stB}}

	case PageTurnV:
		if p <= 0.5 {
			stA.Pivot = Vec2{X: float64(a.W) / 2, Y: float64(a.H) / 2}
			stA.Pos = Vec2{X: fw / 2, Y: fh / 2}
			stA.Scale.Y *= 1 - 2*p
			return []drawOp{{a, stA}}
		}
		stB.Pivot = Vec2{X: float64(b.W) / 2, Y: float64(b.H) / 2}
		stB.Pos = Vec2{X: fw / 2, Y: fh / 2}
		stB.Scale.Y *= 2*p - 1
		return []drawOp{{b, stB}}

	case ShutterOpen:
		stA.Pivot = Vec2{X: float64(a.W), Y: 0}
		stA.Pos = Vec2{X: fw, Y: 0}
		stA.Scale.X *= 1 - p
		stB.Pos.X = -fw * (1 - p)
		// A's remaining sliver occludes B at the seam.
		return []drawOp{{b, stB}, {a, stA}}

	case FlyAway:
		if p <= 0.5 {
			local := p * 2
			stA.Pivot = Vec2{X: float64(a.W) / 2, Y: float64(a.H) / 2}
			stA.Pos = Vec2{X: fw / 2, Y: fh / 2}
			stA.Scale.X *= 1 - local
			stA.Scale.Y *= 1 - local
			stA.Rot = local * math.Pi
			stA.Color[3] = byteAlpha(255 * (1 - local))
			return []drawOp{{a, stA}}
		}
		local := p*2 - 1
		stB.Pivot = Vec2{X: float64(b.W) / 2, Y: float64(b.H) / 2}
		stB.Pos = Vec2{X: fw / 2, Y: fh / 2}
		stB.Scale.X *= local
		stB.Scale.Y *= local
		stB.Rot = -(1 - local) * math.Pi
		stB.Color[3] = byteAlpha(255 * local)
		return []drawOp{{b, stB}}
	}

	return []drawOp{{a, stA}, {b, stB}}
}
