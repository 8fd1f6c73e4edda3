package shell

import (
	"fmt"
	"image"
	"image/draw"
	"log"
	"strings"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func (sh *Shell) paint(s screen.Screen, w screen.Window, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	b, err := s.NewBuffer(image.Point{width, height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	sh.drawFrame(b.RGBA())
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// drawFrame renders the canvas at the top left of dst with the status bar
// along the bottom edge.
func (sh *Shell) drawFrame(dst *image.RGBA) {
	th := sh.theme
	bounds := dst.Bounds()
	draw.Draw(dst, bounds, &image.Uniform{th.Backdrop}, image.Point{}, draw.Src)

	area := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y-statusHeight)
	img := sh.session.Canvas().RGBA()
	draw.Draw(dst, area.Intersect(img.Bounds().Add(area.Min)), img, img.Bounds().Min, draw.Src)

	bar := image.Rect(bounds.Min.X, bounds.Max.Y-statusHeight, bounds.Max.X, bounds.Max.Y)
	draw.Draw(dst, bar, &image.Uniform{th.StatusBackground}, image.Point{}, draw.Src)

	sw := image.Rect(bar.Min.X+3, bar.Min.Y+3, bar.Min.X+3+statusHeight-6, bar.Max.Y-3)
	draw.Draw(dst, sw, &image.Uniform{th.SwatchBorder}, image.Point{}, draw.Src)
	draw.Draw(dst, sw.Inset(1), &image.Uniform{sh.session.Foreground()}, image.Point{}, draw.Src)

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.StatusText), Face: basicfont.Face7x13,
		Dot: fixed.P(sw.Max.X+6, bar.Max.Y-5)}
	d.DrawString(sh.statusText())
}

func (sh *Shell) statusText() string {
	s := sh.session
	t := s.Tool(s.ActiveTool())
	parts := []string{fmt.Sprintf("%s %dpx", t.Kind, t.Style.Width)}
	h := s.History()
	parts = append(parts, fmt.Sprintf("undo %d redo %d", h.Cursor(), h.Len()-h.Cursor()))
	if s.Polyline() {
		parts = append(parts, "polyline")
	}
	if s.Sampling() {
		parts = append(parts, "pick")
	}
	if s.Modified() {
		parts = append(parts, "modified")
	}
	if sh.message != "" && sh.now().Before(sh.messageUntil) {
		parts = append(parts, sh.message)
	}
	return strings.Join(parts, " | ")
}
