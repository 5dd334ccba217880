package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(7, 5)
	c.Clear(10, 20, 30, 255)
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			assert.Equal(t, [4]uint8{10, 20, 30, 255}, pixelAt(c, x, y))
		}
	}
}

func TestDrawImageBaselineFillsCanvas(t *testing.T) {
	c := NewCanvas(8, 6)
	c.Clear(0, 0, 0, 255)
	img := uniform(2, 2, 200, 100, 50, 255)

	drawImage(c, img, baseState(img, c.W, c.H), 2)

	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			assert.Equal(t, [4]uint8{200, 100, 50, 255}, pixelAt(c, x, y))
		}
	}
}

func TestDrawImageAlphaModulation(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Clear(0, 0, 0, 255)
	img := uniform(2, 2, 255, 255, 255, 255)

	st := baseState(img, c.W, c.H)
	st.Color[3] = 128
	drawImage(c, img, st, 1)

	px := pixelAt(c, 1, 1)
	assert.InDelta(t, 128, int(px[0]), 1)
	assert.InDelta(t, 128, int(px[1]), 1)
	assert.InDelta(t, 128, int(px[2]), 1)
	assert.Equal(t, uint8(255), px[3])
}

func TestDrawImageColorModulation(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Clear(0, 0, 0, 255)
	img := uniform(2, 2, 255, 255, 255, 255)

	st := baseState(img, c.W, c.H)
	st.Color = [4]uint8{255, 0, 0, 255}
	drawImage(c, img, st, 1)

	assert.Equal(t, [4]uint8{255, 0, 0, 255}, pixelAt(c, 2, 2))
}

func TestDrawImageDegenerate(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Clear(9, 9, 9, 255)
	img := uniform(2, 2, 255, 255, 255, 255)

	// Zero scale and zero alpha draw nothing.
	st := baseState(img, c.W, c.H)
	st.Scale = Vec2{}
	drawImage(c, img, st, 1)
	assert.Equal(t, [4]uint8{9, 9, 9, 255}, pixelAt(c, 1, 1))

	st = baseState(img, c.W, c.H)
	st.Color[3] = 0
	drawImage(c, img, st, 1)
	assert.Equal(t, [4]uint8{9, 9, 9, 255}, pixelAt(c, 1, 1))

	// Nil image is "not loaded", never a fault.
	drawImage(c, nil, st, 1)
	assert.Equal(t, [4]uint8{9, 9, 9, 255}, pixelAt(c, 1, 1))
}

func TestDrawImageRotationAboutCenter(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(0, 0, 0, 255)
	img := uniform(4, 4, 50, 60, 70, 255)

	// A full rotation about the image center lands back on itself.
	st := State{
		Color: [4]uint8{255, 255, 255, 255},
		Pivot: Vec2{X: 2, Y: 2},
		Pos:   Vec2{X: 5, Y: 5},
		Scale: Vec2{X: 1, Y: 1},
		Rot:   2 * math.Pi,
	}
	drawImage(c, img, st, 1)

	assert.Equal(t, [4]uint8{50, 60, 70, 255}, pixelAt(c, 5, 5))
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, pixelAt(c, 0, 0))
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, pixelAt(c, 9, 9))
}

func TestDrawImageOffCanvasClips(t *testing.T) {
	c := NewCanvas(6, 6)
	c.Clear(0, 0, 0, 255)
	img := uniform(2, 2, 255, 255, 255, 255)

	st := baseState(img, c.W, c.H)
	st.Pos = Vec2{X: -100, Y: -100}
	drawImage(c, img, st, 1)

	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			assert.Equal(t, [4]uint8{0, 0, 0, 255}, pixelAt(c, x, y))
		}
	}
}
