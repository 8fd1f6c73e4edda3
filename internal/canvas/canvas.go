package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Size limits applied to canvases created or resized by the editor.
const (
	MinWidth      = 1
	MaxWidth      = 2560
	MinHeight     = 1
	MaxHeight     = 1440
	DefaultWidth  = 640
	DefaultHeight = 480
)

var (
	// ErrEmptyCanvas is returned when an operation needs pixels but the canvas has none.
	ErrEmptyCanvas = errors.New("canvas is empty")
	// ErrDecode is returned when image data cannot be read.
	ErrDecode = errors.New("decode image")
	// ErrEncode is returned when the canvas cannot be written.
	ErrEncode = errors.New("encode image")
	// ErrOutOfBounds is returned when sampling outside the surface.
	ErrOutOfBounds = errors.New("point outside canvas")
	// ErrInvalidSize is returned for dimensions outside the supported range.
	ErrInvalidSize = errors.New("invalid canvas size")
)

// Canvas is the single flat pixel surface being edited. The buffer is
// RGBA anchored at the origin and every pixel is opaque, so a bitmap
// written by Save reads back unchanged.
type Canvas struct {
	img        *image.RGBA
	background color.RGBA
}

// Empty returns a zero sized canvas. Every drawing operation on it is rejected.
func Empty(background color.RGBA) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rectangle{}), background: Opaque(background)}
}

// New creates a width x height canvas filled with background.
func New(width, height int, background color.RGBA) (*Canvas, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height)), background: Opaque(background)}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.background), image.Point{}, draw.Src)
	return c, nil
}

// FromImage copies img into a new canvas. The copy is rebased to the origin
// and flattened onto the background.
func FromImage(img image.Image, background color.RGBA) *Canvas {
	c := &Canvas{background: Opaque(background)}
	c.img = flatten(img, c.background)
	return c
}

// Opaque returns col with full alpha, keeping its straight colour channels.
// A fully transparent colour becomes black.
func Opaque(col color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}
}

func checkSize(width, height int) error {
	if width < MinWidth || width > MaxWidth || height < MinHeight || height > MaxHeight {
		return fmt.Errorf("%w: %dx%d (allowed %dx%d to %dx%d)", ErrInvalidSize, width, height, MinWidth, MinHeight, MaxWidth, MaxHeight)
	}
	return nil
}

func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

func flatten(img image.Image, background color.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}

// Width reports the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height reports the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Bounds returns the pixel rectangle of the surface.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// IsEmpty reports whether the canvas has zero dimensions.
func (c *Canvas) IsEmpty() bool { return c.img.Bounds().Empty() }

// Background returns the colour used by Clear and new canvases.
func (c *Canvas) Background() color.RGBA { return c.background }

// SetBackground changes the background colour without touching pixels.
func (c *Canvas) SetBackground(col color.RGBA) { c.background = Opaque(col) }

// RGBA exposes the live buffer. Tools draw into it directly.
func (c *Canvas) RGBA() *image.RGBA { return c.img }

// Reset replaces the surface with a fresh width x height canvas filled with
// the background colour.
func (c *Canvas) Reset(width, height int) error {
	next, err := New(width, height, c.background)
	if err != nil {
		return err
	}
	c.img = next.img
	return nil
}

// Replace swaps the surface for a copy of img, dimensions included.
// Translucent pixels are flattened onto the background.
func (c *Canvas) Replace(img image.Image) {
	c.img = flatten(img, c.background)
}

// Fill paints every pixel with col at full alpha.
func (c *Canvas) Fill(col color.Color) error {
	if c.IsEmpty() {
		return ErrEmptyCanvas
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(Opaque(col)), image.Point{}, draw.Src)
	return nil
}

// Clear fills the surface with the background colour.
func (c *Canvas) Clear() error {
	return c.Fill(c.background)
}

// Resize scales the content to width x height ignoring the aspect ratio. It
// reports false when the size is already width x height.
func (c *Canvas) Resize(width, height int) (bool, error) {
	if c.IsEmpty() {
		return false, ErrEmptyCanvas
	}
	if width == c.Width() && height == c.Height() {
		return false, nil
	}
	if err := checkSize(width, height); err != nil {
		return false, err
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), c.img, c.img.Bounds(), xdraw.Src, nil)
	c.img = dst
	return true, nil
}

// Sample returns the colour stored at p.
func (c *Canvas) Sample(p image.Point) (color.RGBA, error) {
	if c.IsEmpty() {
		return color.RGBA{}, ErrEmptyCanvas
	}
	if !p.In(c.img.Bounds()) {
		return color.RGBA{}, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return c.img.RGBAAt(p.X, p.Y), nil
}

// Snapshot returns an independent copy of the surface.
func (c *Canvas) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out
}

// Restore overwrites the surface with a copy of snap. The snapshot itself is
// never aliased.
func (c *Canvas) Restore(snap *image.RGBA) {
	if snap.Bounds() == c.img.Bounds() && snap.Stride == c.img.Stride {
		copy(c.img.Pix, snap.Pix)
		return
	}
	c.img = toRGBA(snap)
}

// Equal reports whether the surface matches snap pixel for pixel.
func (c *Canvas) Equal(snap *image.RGBA) bool {
	if snap == nil {
		return false
	}
	if snap.Bounds() != c.img.Bounds() {
		return false
	}
	if snap.Stride == c.img.Stride {
		return bytes.Equal(snap.Pix, c.img.Pix)
	}
	b := c.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if snap.RGBAAt(x, y) != c.img.RGBAAt(x, y) {
				return false
			}
		}
	}
	return true
}
