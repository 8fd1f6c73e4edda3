//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"errors"
	"image"
)

var errCGODisabled = errors.New("clipboard operations require cgo support")

func ensureInit() error {
	if !hasDisplay() {
		return errNoDisplay
	}
	return errCGODisabled
}

// WriteImage reports why the clipboard is unavailable in this build.
func WriteImage(img image.Image) error {
	if _, err := encode(img); err != nil {
		return err
	}
	return ensureInit()
}

// ReadImage reports why the clipboard is unavailable in this build.
func ReadImage() (image.Image, error) {
	return nil, ensureInit()
}
