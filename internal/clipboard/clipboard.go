// Package clipboard moves canvas images to and from the system clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
)

var (
	errNoDisplay  = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
	errNoImage    = errors.New("clipboard does not contain image data")
	errEmptyImage = errors.New("image has no pixels")
)

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// encode converts img to the PNG bytes clipboard consumers expect.
func encode(img image.Image) ([]byte, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("clipboard: %w", errEmptyImage)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode clipboard image: %w", err)
	}
	return buf.Bytes(), nil
}
