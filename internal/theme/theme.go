// Package theme holds the colours of the editor window chrome.
package theme

import (
	"embed"
	"image/color"
)

//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// Theme defines the colours drawn around the canvas.
type Theme struct {
	Name string

	Backdrop color.RGBA // window area not covered by the canvas

	// Status bar
	StatusBackground color.RGBA
	StatusText       color.RGBA
	SwatchBorder     color.RGBA
}

// Default returns the built in light theme.
func Default() *Theme {
	return &Theme{
		Name:             "Default",
		Backdrop:         color.RGBA{128, 128, 128, 255},
		StatusBackground: color.RGBA{232, 232, 232, 255},
		StatusText:       color.RGBA{0, 0, 0, 255},
		SwatchBorder:     color.RGBA{64, 64, 64, 255},
	}
}
