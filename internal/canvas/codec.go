package canvas

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"log"
	"os"

	"golang.org/x/image/bmp"
)

// Decode reads an image in any registered format (BMP and PNG) into a new
// canvas.
func Decode(r io.Reader, background color.RGBA) (*Canvas, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: image has no pixels", ErrDecode)
	}
	return FromImage(img, background), nil
}

// Encode writes the canvas as an uncompressed bitmap.
func (c *Canvas) Encode(w io.Writer) error {
	if c.IsEmpty() {
		return ErrEmptyCanvas
	}
	if err := bmp.Encode(w, c.img); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

// Load opens path and decodes it.
func Load(path string, background color.RGBA) (*Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Printf("error closing %q: %v", path, cerr)
		}
	}()
	return Decode(f, background)
}

// Save writes the canvas to path as a bitmap.
func (c *Canvas) Save(path string) error {
	if c.IsEmpty() {
		return ErrEmptyCanvas
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := c.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}
