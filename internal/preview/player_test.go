package preview

import (
	"image"
	"image/png"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matjam/slidefx/internal/engine"
	"github.com/matjam/slidefx/internal/ipc"
)

// countingPresenter records frames without touching the filesystem.
type countingPresenter struct {
	frames atomic.Int64
	closed atomic.Bool
	first  chan struct{}
	once   atomic.Bool
}

func newCountingPresenter() *countingPresenter {
	return &countingPresenter{first: make(chan struct{})}
}

func (c *countingPresenter) Present(frame *image.RGBA) error {
	c.frames.Add(1)
	if c.once.CompareAndSwap(false, true) {
		close(c.first)
	}
	return nil
}

func (c *countingPresenter) Close() { c.closed.Store(true) }

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer(engine.New(), newCountingPresenter(), Options{})
	assert.Equal(t, 3*time.Second, p.duration)
	assert.Equal(t, 60, p.framerate)
	assert.True(t, p.playing)
	assert.Zero(t, p.progress)
}

func TestStepAdvancesAndWraps(t *testing.T) {
	p := NewPlayer(engine.New(), newCountingPresenter(), Options{Duration: 2 * time.Second})

	p.step(500 * time.Millisecond)
	assert.InDelta(t, 0.25, p.progress, 1e-9)

	// Crossing 1 without pingpong wraps back to the start.
	p.step(2 * time.Second)
	assert.Zero(t, p.progress)
	assert.False(t, p.reverse)
}

func TestStepPingPongBounces(t *testing.T) {
	p := NewPlayer(engine.New(), newCountingPresenter(), Options{
		Duration: 1 * time.Second,
		PingPong: true,
	})

	p.step(1200 * time.Millisecond)
	assert.Equal(t, 1.0, p.progress)
	assert.True(t, p.reverse)

	p.step(500 * time.Millisecond)
	assert.InDelta(t, 0.5, p.progress, 1e-9)

	p.step(700 * time.Millisecond)
	assert.Zero(t, p.progress)
	assert.False(t, p.reverse)
}

func TestStepIgnoredWhilePausedOrPinned(t *testing.T) {
	p := NewPlayer(engine.New(), newCountingPresenter(), Options{Duration: time.Second})

	p.playing = false
	p.step(time.Second)
	assert.Zero(t, p.progress)

	p.playing = true
	p.pinned = true
	p.step(time.Second)
	assert.Zero(t, p.progress)
}

func TestApplySetKindResetsProgress(t *testing.T) {
	p := NewPlayer(engine.New(), newCountingPresenter(), Options{Kind: engine.CrossFade})
	p.progress = 0.7
	p.reverse = true

	cont := p.apply(ipc.Command{Type: ipc.CommandSet, Kind: "cube"})
	assert.True(t, cont)
	assert.Equal(t, engine.Cube, p.kind)
	assert.Zero(t, p.progress)
	assert.False(t, p.reverse)
	assert.True(t, p.playing)
}

func TestApplySetProgressPinsAndPauses(t *testing.T) {
	p := NewPlayer(engine.New(), newCountingPresenter(), Options{})

	p.apply(ipc.Command{Type: ipc.CommandSet, Progress: 0.42})
	assert.Equal(t, 0.42, p.progress)
	assert.True(t, p.pinned)
	assert.False(t, p.playing)

	// An invalid kind name leaves the current kind alone.
	p.apply(ipc.Command{Type: ipc.CommandSet, Kind: "no-such-transition"})
	assert.Equal(t, engine.SlideLeft, p.kind)
}

func TestApplyPlayUnpins(t *testing.T) {
	p := NewPlayer(engine.New(), newCountingPresenter(), Options{})
	p.apply(ipc.Command{Type: ipc.CommandSet, Progress: 0.5})
	require.True(t, p.pinned)

	p.apply(ipc.Command{Type: ipc.CommandPlay})
	assert.True(t, p.playing)
	assert.False(t, p.pinned)

	p.apply(ipc.Command{Type: ipc.CommandPause})
	assert.False(t, p.playing)
}

func TestApplyStopEndsLoop(t *testing.T) {
	p := NewPlayer(engine.New(), newCountingPresenter(), Options{})
	assert.False(t, p.apply(ipc.Command{Type: ipc.CommandStop}))
}

func TestApplyLoadRejectsWrongArgCount(t *testing.T) {
	p := NewPlayer(engine.New(), newCountingPresenter(), Options{})
	assert.True(t, p.apply(ipc.Command{Type: ipc.CommandLoad, Args: []string{"one.png"}}))
	assert.Nil(t, p.imgA)
}

func TestStatusSnapshot(t *testing.T) {
	p := NewPlayer(engine.New(), newCountingPresenter(), Options{Kind: engine.Ring})
	p.progress = 0.3

	st := p.Status()
	assert.Equal(t, "ring", st.Kind)
	assert.Equal(t, 0.3, st.Progress)
	assert.True(t, st.Playing)
}

func TestRunPresentsFramesUntilStopped(t *testing.T) {
	pres := newCountingPresenter()
	p := NewPlayer(engine.New(), pres, Options{Framerate: 240})

	done := make(chan struct{})
	go func() {
		p.Run()
		close(done)
	}()

	select {
	case <-pres.first:
	case <-time.After(2 * time.Second):
		t.Fatal("no frame presented")
	}

	p.EnqueueCommand(ipc.Command{Type: ipc.CommandStop})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("player did not stop")
	}
	assert.True(t, pres.closed.Load())
	assert.Positive(t, pres.frames.Load())
}

func TestFilePresenterWritesAtomically(t *testing.T) {
	path := t.TempDir() + "/out/preview.png"
	pres, err := NewFilePresenter(path)
	require.NoError(t, err)

	frame := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, pres.Present(frame))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	// No temp file left behind.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
