package tool

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
)

var ggJoins = map[Join]gg.LineJoin{
	JoinMiter: gg.LineJoinMiter,
	JoinBevel: gg.LineJoinBevel,
	JoinRound: gg.LineJoinRound,
}

// dashUnits are dash and gap lengths in multiples of the stroke width.
var dashUnits = map[LinePattern][]float64{
	Dashed:     {4, 2},
	Dotted:     {1, 2},
	DashDot:    {4, 2, 1, 2},
	DashDotDot: {4, 2, 1, 2, 1, 2},
}

func dashPattern(p LinePattern, width float64) []float64 {
	units, ok := dashUnits[p]
	if !ok {
		return nil
	}
	out := make([]float64, len(units))
	for i, u := range units {
		out[i] = u * width
	}
	return out
}

// RenderStroke draws from the tool's anchor to cur onto dst and returns the
// region that may have changed, clipped to dst. Freehand and Eraser advance
// the anchor to cur so successive calls extend one continuous stroke.
func (t *Tool) RenderStroke(cur image.Point, dst *image.RGBA) (image.Rectangle, error) {
	if dst == nil || dst.Bounds().Empty() {
		return image.Rectangle{}, nil
	}
	switch t.Kind {
	case Freehand, Eraser:
		from := t.Anchor
		t.Anchor = cur
		return t.drawSegment(from, cur, dst)
	case StraightLine:
		return t.drawSegment(t.Anchor, cur, dst)
	case Shape:
		return t.drawShape(cur, dst)
	}
	return image.Rectangle{}, fmt.Errorf("unknown tool kind %v", t.Kind)
}

func (t *Tool) drawSegment(a, b image.Point, dst *image.RGBA) (image.Rectangle, error) {
	if a == b {
		return image.Rectangle{}, nil
	}
	return paint(dst, t.pixelArea(Box(a, b)), func(dc *gg.Context) error {
		t.applyStroke(dc)
		dc.DrawLine(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
		return dc.Stroke()
	})
}

func (t *Tool) drawShape(cur image.Point, dst *image.RGBA) (image.Rectangle, error) {
	box := Box(t.Anchor, cur)
	area := box
	var tri [3]image.Point
	if t.Shape == Triangle {
		tri = TriangleVertices(t.Anchor, cur)
		for _, p := range tri {
			area = area.Union(image.Rectangle{Min: p, Max: p})
		}
	}
	return paint(dst, t.pixelArea(area), func(dc *gg.Context) error {
		x, y := float64(box.Min.X), float64(box.Min.Y)
		w, h := float64(box.Dx()), float64(box.Dy())
		switch t.Shape {
		case Rectangle:
			if t.Curve > 0 {
				r := float64(t.Curve) / 100 * math.Min(w, h) / 2
				dc.DrawRoundedRectangle(x, y, w, h, r)
			} else {
				dc.DrawRectangle(x, y, w, h)
			}
		case Ellipse:
			dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
		case Triangle:
			dc.MoveTo(float64(tri[0].X), float64(tri[0].Y))
			dc.LineTo(float64(tri[1].X), float64(tri[1].Y))
			dc.LineTo(float64(tri[2].X), float64(tri[2].Y))
			dc.ClosePath()
		}
		if t.FillMode != FillNone {
			setColor(dc, t.FillColor)
			if err := dc.FillPreserve(); err != nil {
				return err
			}
		}
		t.applyStroke(dc)
		return dc.Stroke()
	})
}

func (t *Tool) applyStroke(dc *gg.Context) {
	width := float64(t.Style.Width)
	setColor(dc, t.Style.Color)
	dc.SetLineWidth(width)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(ggJoins[t.Style.Join])
	if dash := dashPattern(t.Style.Pattern, width); dash != nil {
		dc.SetDash(dash...)
	} else {
		dc.ClearDash()
	}
}

// setColor hands gg straight (non-premultiplied) components.
func setColor(dc *gg.Context, c color.RGBA) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	dc.SetRGBA(float64(n.R)/255, float64(n.G)/255, float64(n.B)/255, float64(n.A)/255)
}

// paint renders fn onto a transparent layer covering area and composites the
// layer over dst. Pixels the layer leaves untouched keep their exact value.
func paint(dst *image.RGBA, area image.Rectangle, fn func(dc *gg.Context) error) (image.Rectangle, error) {
	area = area.Intersect(dst.Bounds())
	if area.Empty() {
		return image.Rectangle{}, nil
	}
	dc := gg.NewContext(area.Dx(), area.Dy())
	defer func() { _ = dc.Close() }()
	// Integer coordinates address pixel centres.
	dc.Translate(0.5-float64(area.Min.X), 0.5-float64(area.Min.Y))
	if err := fn(dc); err != nil {
		return image.Rectangle{}, fmt.Errorf("render stroke: %w", err)
	}
	layer := dc.Image()
	if rgba, ok := layer.(*image.RGBA); ok {
		// gg keeps straight alpha in its buffer.
		layer = &image.NRGBA{Pix: rgba.Pix, Stride: rgba.Stride, Rect: rgba.Rect}
	}
	draw.Draw(dst, area, layer, layer.Bounds().Min, draw.Over)
	return area, nil
}
