// Package engine computes the visual state of a transition between two
// images for a normalized progress value and composites the frame onto
// an RGBA canvas. The same RenderFrame drives the live preview (called
// per display refresh) and the offline exporter (called once per frame
// index), so every operation is deterministic for a given input.
package engine

import (
	"runtime"
	"sync"

	"github.com/matjam/slidefx/internal/source"
)

// Engine owns the mutable caches (luma, blur scratch) and the lock that
// keeps concurrent preview and export calls from interleaving. One
// engine per session; all methods run to completion before returning.
type Engine struct {
	mu      sync.Mutex
	workers int

	luma  lumaCache
	blurA blurScratch
	blurB blurScratch

	wipeOut []uint8
	wipeW   int
	wipeH   int
}

// New creates an engine sized to the machine's hardware parallelism.
func New() *Engine {
	return &Engine{workers: runtime.NumCPU()}
}

// RenderFrame resets both images' visual state to the baseline, applies
// the transition selected by kind at the given progress and composites
// the result into dst. Progress is nominally in [0,1]; values outside
// extrapolate the formulas but never fault.
//
// If either image is absent the present one is drawn at its baseline
// state and the call returns. Geometric kinds share the clear+draw step
// below; cube, ring, blur-fade and luma-wipe composite on their own.
func (e *Engine) RenderFrame(dst *Canvas, kind Kind, progress float64, a, b *source.Image) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if a.Empty() || b.Empty() {
		dst.Clear(0, 0, 0, 255)
		if !a.Empty() {
			drawImage(dst, a, baseState(a, dst.W, dst.H), e.workers)
		}
		if !b.Empty() {
			drawImage(dst, b, baseState(b, dst.W, dst.H), e.workers)
		}
		return
	}

	switch kind {
	case Cube:
		e.renderCube(dst, progress, a, b)
		return
	case Ring:
		e.renderRing(dst, progress, a, b)
		return
	case BlurFade:
		e.renderBlurFade(dst, progress, a, b)
		return
	case LumaWipe:
		e.renderLumaWipe(dst, progress, a, b)
		return
	}

	ops := geometricPlan(dst.W, dst.H, kind, progress, a, b)
	dst.Clear(0, 0, 0, 255)
	for _, op := range ops {
		drawImage(dst, op.img, op.st, e.workers)
	}
}
