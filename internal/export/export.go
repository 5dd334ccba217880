// Package export writes a transition out as a deterministic PNG frame
// sequence: progress = i/frames for i in [0, frames], one file per
// index, zero-padded so the sequence sorts correctly.
package export

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/matjam/slidefx/internal/engine"
	"github.com/matjam/slidefx/internal/source"
)

// Options controls one export run.
type Options struct {
	Dir    string
	Prefix string
	Frames int
	Kind   engine.Kind
}

// Sequence renders frames+1 images through the engine and encodes each
// to Dir/Prefix%05d.png. Rendering is synchronous per frame; two runs
// over the same inputs produce byte-identical files.
func Sequence(eng *engine.Engine, a, b *source.Image, opts Options) error {
	if opts.Frames < 1 {
		return fmt.Errorf("frame count must be at least 1, got %d", opts.Frames)
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	canvas := engine.NewCanvas(engine.Width, engine.Height)
	start := time.Now()

	for i := 0; i <= opts.Frames; i++ {
		progress := float64(i) / float64(opts.Frames)
		eng.RenderFrame(canvas, opts.Kind, progress, a, b)

		path := filepath.Join(opts.Dir, fmt.Sprintf("%s%05d.png", opts.Prefix, i))
		if err := writeFrame(path, canvas); err != nil {
			return err
		}
		log.Debugf("wrote %s (progress %.3f)", path, progress)
	}

	log.Infof("exported %d frames of %v to %s in %v",
		opts.Frames+1, opts.Kind, opts.Dir, time.Since(start).Round(time.Millisecond))
	return nil
}

func writeFrame(path string, canvas *engine.Canvas) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(out, canvas.RGBA()); err != nil {
		out.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return out.Close()
}
