package engine

import "github.com/matjam/slidefx/internal/source"

// Blur tunables. The source is downsampled by a fixed factor before the
// two box passes and stays at that resolution; the stretched draw back
// up to canvas size supplies the rest of the perceived softness. The
// trade buys the constant-factor speedup that keeps preview interactive.
const (
	blurDownsample    = 4
	blurFadeMaxRadius = 64
)

// Blur-fade phase boundaries. Outside the middle band exactly one image
// is drawn; inside it both are blurred at full radius and cross-faded.
const (
	blurFadeOutEnd = 0.45
	blurFadeInFrom = 0.55
)

// blurScratch holds the downsample, horizontal-pass and output buffers
// for one blur slot, reused across calls and resized only when the
// blurred source's size changes.
type blurScratch struct {
	srcW, srcH int
	w, h       int
	down       []uint8
	tmp        []uint8
	out        []uint8
}

func (s *blurScratch) resize(srcW, srcH int) {
	if s.srcW == srcW && s.srcH == srcH && s.down != nil {
		return
	}
	s.srcW = srcW
	s.srcH = srcH
	s.w = srcW / blurDownsample
	s.h = srcH / blurDownsample
	n := s.w * s.h * 4
	s.down = make([]uint8, n)
	s.tmp = make([]uint8, n)
	s.out = make([]uint8, n)
}

// blurred produces a blurred, reduced-resolution copy of img using the
// given scratch slot. Radius 0 is the identity: the source comes back
// untouched. Sources smaller than the downsample factor short-circuit
// the same way instead of attempting degenerate buffer math.
func (e *Engine) blurred(s *blurScratch, img *source.Image, radius int) *source.Image {
	if radius <= 0 {
		return img
	}
	if img.W < blurDownsample || img.H < blurDownsample {
		return img
	}
	s.resize(img.W, img.H)

	w, h := s.w, s.h
	r := radius / blurDownsample
	if r < 1 {
		r = 1
	}

	// Nearest-pixel downsample; deliberately not averaging, the box
	// passes below smooth the aliasing away anyway.
	parallelize(e.workers, 0, h, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			srcRow := (y * blurDownsample) * img.W * 4
			for x := 0; x < w; x++ {
				so := srcRow + (x*blurDownsample)*4
				do := (y*w + x) * 4
				copy(s.down[do:do+4], img.Pix[so:so+4])
			}
		}
	})

	// Horizontal pass, sliding window clamped to the row bounds.
	parallelize(e.workers, 0, h, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			boxPassRow(s.tmp, s.down, y*w*4, w, 4, r)
		}
	})

	// Vertical pass over the intermediate, one column at a time.
	parallelize(e.workers, 0, w, func(lo, hi int) {
		for x := lo; x < hi; x++ {
			boxPassRow(s.out, s.tmp, x*4, h, w*4, r)
		}
	})

	return source.FromPix(s.out, w, h)
}

// boxPassRow writes the clamped mean of a symmetric window of n
// elements spaced stride bytes apart, for all four channels. Both blur
// passes reduce to this with different strides.
func boxPassRow(dst, src []uint8, base, n, stride, r int) {
	window := 2*r + 1
	var sum [4]int

	clampedIdx := func(i int) int {
		if i < 0 {
			i = 0
		}
		if i > n-1 {
			i = n - 1
		}
		return base + i*stride
	}

	for i := -r; i <= r; i++ {
		o := clampedIdx(i)
		sum[0] += int(src[o])
		sum[1] += int(src[o+1])
		sum[2] += int(src[o+2])
		sum[3] += int(src[o+3])
	}
	for i := 0; i < n; i++ {
		o := base + i*stride
		dst[o] = uint8(sum[0] / window)
		dst[o+1] = uint8(sum[1] / window)
		dst[o+2] = uint8(sum[2] / window)
		dst[o+3] = uint8(sum[3] / window)

		lead := clampedIdx(i + r + 1)
		trail := clampedIdx(i - r)
		sum[0] += int(src[lead]) - int(src[trail])
		sum[1] += int(src[lead+1]) - int(src[trail+1])
		sum[2] += int(src[lead+2]) - int(src[trail+2])
		sum[3] += int(src[lead+3]) - int(src[trail+3])
	}
}

// renderBlurFade composites the blur-fade transition in three hard
// phases: A blurs out alone, a narrow cross-fade band with both images
// at full blur, then B sharpens alone.
func (e *Engine) renderBlurFade(dst *Canvas, p float64, a, b *source.Image) {
	dst.Clear(0, 0, 0, 255)

	switch {
	case p <= blurFadeOutEnd:
		local := p / blurFadeOutEnd
		radius := int(local * blurFadeMaxRadius)
		img := e.blurred(&e.blurA, a, radius)
		drawImage(dst, img, baseState(img, dst.W, dst.H), e.workers)

	case p >= blurFadeInFrom:
		local := (1 - p) / (1 - blurFadeInFrom)
		radius := int(local * blurFadeMaxRadius)
		img := e.blurred(&e.blurB, b, radius)
		drawImage(dst, img, baseState(img, dst.W, dst.H), e.workers)

	default:
		mix := (p - blurFadeOutEnd) / (blurFadeInFrom - blurFadeOutEnd)
		imgA := e.blurred(&e.blurA, a, blurFadeMaxRadius)
		imgB := e.blurred(&e.blurB, b, blurFadeMaxRadius)
		drawImage(dst, imgA, baseState(imgA, dst.W, dst.H), e.workers)
		stB := baseState(imgB, dst.W, dst.H)
		stB.Color[3] = byteAlpha(255 * mix)
		drawImage(dst, imgB, stB, e.workers)
	}
}
