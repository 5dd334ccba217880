package preview

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Presenter is the boundary to whatever shows a composited frame. The
// windowing system lives on the far side of this interface; the player
// only hands frames across it.
type Presenter interface {
	Present(frame *image.RGBA) error
	Close()
}

// FilePresenter writes the latest frame to a single file, atomically,
// so an external viewer can follow the preview.
type FilePresenter struct {
	Path string
}

func NewFilePresenter(path string) (*FilePresenter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return &FilePresenter{Path: path}, nil
}

func (f *FilePresenter) Present(frame *image.RGBA) error {
	tmp := f.Path + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := png.Encode(out, frame); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, f.Path)
}

func (f *FilePresenter) Close() {}
