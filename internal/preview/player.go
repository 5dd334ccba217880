// Package preview runs the live transition loop: advance progress,
// render a frame through the engine, hand it to the presenter, repeat
// at the configured framerate until told to stop.
package preview

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/matjam/slidefx/internal/engine"
	"github.com/matjam/slidefx/internal/ipc"
	"github.com/matjam/slidefx/internal/source"
)

// Options configures a Player. Zero values fall back to sane defaults.
type Options struct {
	Kind      engine.Kind
	Duration  time.Duration
	Easing    EasingMode
	Framerate int
	PingPong  bool
}

// Player owns the preview loop state. Commands arrive on a channel from
// the socket server; the loop applies them between frames, so the
// engine only ever sees one render call at a time from here.
type Player struct {
	mu sync.Mutex

	eng       *engine.Engine
	canvas    *engine.Canvas
	presenter Presenter
	cmds      chan ipc.Command

	kind     engine.Kind
	progress float64
	playing  bool
	pinned   bool
	reverse  bool

	duration  time.Duration
	easing    EasingMode
	framerate int
	pingpong  bool

	imgA, imgB   *source.Image
	pathA, pathB string
}

// NewPlayer creates a player rendering into the fixed logical canvas.
func NewPlayer(eng *engine.Engine, presenter Presenter, opts Options) *Player {
	if opts.Duration <= 0 {
		opts.Duration = 3 * time.Second
	}
	if opts.Framerate <= 0 {
		opts.Framerate = 60
	}
	return &Player{
		eng:       eng,
		canvas:    engine.NewCanvas(engine.Width, engine.Height),
		presenter: presenter,
		cmds:      make(chan ipc.Command, 8),
		kind:      opts.Kind,
		playing:   true,
		duration:  opts.Duration,
		easing:    opts.Easing,
		framerate: opts.Framerate,
		pingpong:  opts.PingPong,
	}
}

// LoadImages replaces the image pair. A failed load keeps the previous
// pair in place.
func (p *Player) LoadImages(pathA, pathB string) error {
	imgA, err := source.Load(pathA)
	if err != nil {
		return err
	}
	imgB, err := source.Load(pathB)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.imgA, p.imgB = imgA, imgB
	p.pathA, p.pathB = pathA, pathB
	log.Infof("loaded %v (%dx%d) and %v (%dx%d)", pathA, imgA.W, imgA.H, pathB, imgB.W, imgB.H)
	return nil
}

// EnqueueCommand queues a command for the run loop.
func (p *Player) EnqueueCommand(cmd ipc.Command) {
	p.cmds <- cmd
}

// Status snapshots the loop state for the /status handler.
func (p *Player) Status() ipc.PlayerStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return ipc.PlayerStatus{
		Kind:     p.kind.String(),
		Progress: p.progress,
		Playing:  p.playing,
		ImageA:   p.pathA,
		ImageB:   p.pathB,
	}
}

// Run blocks, rendering frames until a stop command arrives.
func (p *Player) Run() {
	log.Info("Starting preview player ...")

	tick := time.NewTicker(time.Second / time.Duration(p.framerate))
	defer tick.Stop()

	last := time.Now()
	running := true
	for running {
		select {
		case cmd := <-p.cmds:
			if !p.apply(cmd) {
				running = false
			}
		case now := <-tick.C:
			p.step(now.Sub(last))
			last = now
			p.renderPresent()
		}
	}

	p.presenter.Close()
	log.Info("Preview player stopped.")
}

// apply handles one queued command. Returns false on stop.
func (p *Player) apply(cmd ipc.Command) bool {
	switch cmd.Type {
	case ipc.CommandStop:
		log.Info("Stopping preview player ...")
		return false
	case ipc.CommandLoad:
		if len(cmd.Args) != 2 {
			log.Error("load command needs exactly two image paths")
			return true
		}
		if err := p.LoadImages(cmd.Args[0], cmd.Args[1]); err != nil {
			log.Errorf("Failed to load images: %v", err)
		}
	case ipc.CommandSet:
		p.mu.Lock()
		if cmd.Kind != "" {
			if k, err := engine.ParseKind(cmd.Kind); err == nil {
				p.kind = k
				p.progress = 0
				p.reverse = false
				log.Infof("transition set to %v", k)
			}
		}
		if cmd.Progress != 0 || cmd.Kind == "" {
			p.progress = cmd.Progress
			p.pinned = true
			p.playing = false
		}
		p.mu.Unlock()
	case ipc.CommandPlay:
		p.mu.Lock()
		p.playing = true
		p.pinned = false
		p.mu.Unlock()
	case ipc.CommandPause:
		p.mu.Lock()
		p.playing = false
		p.mu.Unlock()
	default:
		log.Error("Unknown command:", "type", cmd.Type)
	}
	return true
}

// step advances progress by the elapsed wall time. With pingpong the
// sweep bounces between 0 and 1, otherwise it wraps around.
func (p *Player) step(dt time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing || p.pinned {
		return
	}

	delta := dt.Seconds() / p.duration.Seconds()
	if p.reverse {
		p.progress -= delta
	} else {
		p.progress += delta
	}

	if p.progress >= 1 {
		if p.pingpong {
			p.progress = 1
			p.reverse = true
		} else {
			p.progress = 0
		}
	} else if p.progress <= 0 && p.reverse {
		p.progress = 0
		p.reverse = false
	}
}

// renderPresent composites the current frame and hands it over.
func (p *Player) renderPresent() {
	p.mu.Lock()
	kind := p.kind
	progress := applyEasing(p.easing, p.progress)
	a, b := p.imgA, p.imgB
	p.mu.Unlock()

	p.eng.RenderFrame(p.canvas, kind, progress, a, b)
	if err := p.presenter.Present(p.canvas.RGBA()); err != nil {
		log.Errorf("Failed to present frame: %v", err)
	}
}
