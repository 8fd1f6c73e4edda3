package editor

import (
	"image/color"

	"github.com/example/rasterpaint/internal/canvas"
	"github.com/example/rasterpaint/internal/tool"
)

// Role names which of the two session colours a change applies to.
type Role int

const (
	Foreground Role = iota
	Background
)

// SetActiveTool selects the tool receiving pointer input. Selecting the
// current tool does nothing; leaving the line tool ends polyline chaining.
func (s *Session) SetActiveTool(k tool.Kind) {
	if k == s.active || s.tools.Get(k) == nil {
		return
	}
	s.finishGesture()
	s.active = k
	logger().Debug("tool changed", "session", s.id, "tool", k)
	if s.onToolChanged != nil {
		s.onToolChanged(k)
	}
}

// SetChainMode switches the line tool between single segments and polylines.
// Switching to single commits any stroke in progress and ends chaining.
func (s *Session) SetChainMode(m tool.ChainMode) {
	s.tools.Get(tool.StraightLine).Chain = m
	if m == tool.ChainSingle {
		s.finishGesture()
	}
}

// SetShapeKind selects the figure drawn by the shape tool.
func (s *Session) SetShapeKind(k tool.ShapeKind) {
	s.tools.Get(tool.Shape).Shape = k
}

// SetRectCurve sets the rounded corner amount of rectangles, 0 to 100.
func (s *Session) SetRectCurve(c int) {
	s.tools.Get(tool.Shape).Curve = tool.ClampCurve(c)
}

// SetFillMode changes how shapes are filled. Linked modes take the live
// colour now and follow it from then on; fixed keeps the current fill colour.
func (s *Session) SetFillMode(m tool.FillMode) {
	t := s.tools.Get(tool.Shape)
	t.FillMode = m
	switch m {
	case tool.FillNone:
		t.FillColor = color.RGBA{}
	case tool.FillForeground:
		t.FillColor = s.foreground
	case tool.FillBackground:
		t.FillColor = s.background
	}
}

// SetFillColor fixes the shape fill to col, ignoring its alpha.
func (s *Session) SetFillColor(col color.RGBA) {
	t := s.tools.Get(tool.Shape)
	t.FillMode = tool.FillFixed
	t.FillColor = canvas.Opaque(col)
}

// SetStrokeStyle applies a style change from the property panel of kind k.
// Only the settings that kind exposes are taken: a width for the pencil and
// eraser, width and pattern for lines, and everything for shapes.
func (s *Session) SetStrokeStyle(k tool.Kind, width int, pattern tool.LinePattern, join tool.Join) {
	t := s.tools.Get(k)
	if t == nil {
		return
	}
	t.Style.Width = tool.ClampWidth(width)
	switch k {
	case tool.StraightLine:
		t.Style.Pattern = pattern
	case tool.Shape:
		t.Style.Pattern = pattern
		t.Style.Join = join
	}
}

// SetColor changes the foreground or background colour and updates every
// tool bound to it.
func (s *Session) SetColor(r Role, col color.RGBA) {
	col = canvas.Opaque(col)
	shape := s.tools.Get(tool.Shape)
	switch r {
	case Foreground:
		s.foreground = col
		for _, k := range []tool.Kind{tool.Freehand, tool.StraightLine, tool.Shape} {
			s.tools.Get(k).Style.Color = col
		}
		if shape.FillMode == tool.FillForeground {
			shape.FillColor = col
		}
	case Background:
		s.background = col
		s.canvas.SetBackground(col)
		s.tools.Get(tool.Eraser).Style.Color = col
		if shape.FillMode == tool.FillBackground {
			shape.FillColor = col
		}
	}
}
