package editor

import (
	"errors"
	"fmt"
	"image"

	"github.com/example/rasterpaint/internal/canvas"
)

// edit runs fn against the canvas and records the result as one command.
// Operations rejected because the canvas is empty are ignored.
func (s *Session) edit(name string, fn func() error) error {
	s.finishGesture()
	before := s.canvas.Snapshot()
	if err := fn(); err != nil {
		if errors.Is(err, canvas.ErrEmptyCanvas) {
			logger().Debug("edit ignored on empty canvas", "session", s.id, "op", name)
			return nil
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	if s.record(before) {
		s.dirty(s.canvas.Bounds().Union(before.Bounds()))
	}
	return nil
}

// CreateCanvas replaces the canvas with a blank one filled with the
// background colour.
func (s *Session) CreateCanvas(width, height int) error {
	return s.edit("create canvas", func() error {
		return s.canvas.Reset(width, height)
	})
}

// LoadCanvas replaces the canvas with the image stored at path. The canvas is
// left unchanged when the file cannot be decoded.
func (s *Session) LoadCanvas(path string) error {
	loaded, err := canvas.Load(path, s.background)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if err := s.edit("load canvas", func() error {
		s.canvas.Replace(loaded.RGBA())
		return nil
	}); err != nil {
		return err
	}
	s.clean = s.canvas.Snapshot()
	return nil
}

// PasteCanvas replaces the canvas with img, for example from the clipboard.
func (s *Session) PasteCanvas(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("paste canvas: %w: no pixels", canvas.ErrDecode)
	}
	return s.edit("paste canvas", func() error {
		s.canvas.Replace(img)
		return nil
	})
}

// SaveCanvas writes the canvas to path as a bitmap.
func (s *Session) SaveCanvas(path string) error {
	if err := s.canvas.Save(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	s.clean = s.canvas.Snapshot()
	return nil
}

// ResizeCanvas scales the canvas to width x height. Asking for the current
// size changes nothing and reports no dirty region.
func (s *Session) ResizeCanvas(width, height int) error {
	return s.edit("resize canvas", func() error {
		_, err := s.canvas.Resize(width, height)
		return err
	})
}

// ClearCanvas fills the canvas with the background colour.
func (s *Session) ClearCanvas() error {
	return s.edit("clear canvas", s.canvas.Clear)
}

// Undo restores the canvas to before the last command. It reports false when
// there is nothing to undo.
func (s *Session) Undo() bool {
	s.finishGesture()
	snap, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.restore(snap)
	return true
}

// Redo reapplies the last undone command. It reports false when there is
// nothing to redo.
func (s *Session) Redo() bool {
	s.finishGesture()
	snap, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.restore(snap)
	return true
}

func (s *Session) restore(snap *image.RGBA) {
	old := s.canvas.Bounds()
	s.canvas.Restore(snap)
	s.dirty(old.Union(s.canvas.Bounds()))
}
