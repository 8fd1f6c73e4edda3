package editor

import (
	"image"

	"github.com/example/rasterpaint/internal/tool"
)

// Button identifies the pointer button of an event.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
)

func (s *Session) activeTool() *tool.Tool {
	return s.tools.Get(s.active)
}

// EnterSamplingMode makes the next primary press pick the foreground colour
// from the canvas instead of drawing.
func (s *Session) EnterSamplingMode() {
	s.sampling = true
}

// PointerDown handles a button press at p.
func (s *Session) PointerDown(p image.Point, b Button) {
	switch b {
	case ButtonSecondary:
		if s.panel != nil {
			s.panel.OpenPropertyPanel(*s.activeTool())
		}
		return
	case ButtonPrimary:
	default:
		return
	}
	if s.sampling {
		s.sample(p)
		return
	}
	if s.canvas.IsEmpty() {
		logger().Debug("press ignored on empty canvas", "session", s.id)
		return
	}
	s.baseline = s.canvas.Snapshot()
	s.preview = image.Rectangle{}
	if !s.polyline {
		s.activeTool().Anchor = p
	}
	s.dragging = true
}

func (s *Session) sample(p image.Point) {
	col, err := s.canvas.Sample(p)
	if err != nil {
		logger().Debug("sample rejected", "session", s.id, "point", p, "err", err)
		return
	}
	s.sampling = false
	s.SetColor(Foreground, col)
	if s.onSampled != nil {
		s.onSampled(col)
	}
}

// PointerMove handles movement to p while b is held.
func (s *Session) PointerMove(p image.Point, b Button) {
	if !s.dragging || b != ButtonPrimary {
		return
	}
	t := s.activeTool()
	var dirty image.Rectangle
	switch t.Kind {
	case tool.StraightLine, tool.Shape:
		s.canvas.Restore(s.baseline)
		dirty = s.preview
		if t.Kind == tool.StraightLine && t.Chain == tool.ChainPolyline && !s.polyline {
			s.polyline = true
			logger().Debug("polyline started", "session", s.id, "anchor", t.Anchor)
		}
	}
	r := s.render(t, p)
	if t.Kind == tool.StraightLine || t.Kind == tool.Shape {
		s.preview = r
	}
	s.dirty(dirty.Union(r))
}

// PointerUp handles a button release at p and commits the stroke.
func (s *Session) PointerUp(p image.Point, b Button) {
	if b != ButtonPrimary || !s.dragging {
		return
	}
	s.dragging = false
	t := s.activeTool()
	if s.polyline {
		t.Anchor = p
	}
	if t.Kind == tool.Freehand {
		s.dirty(s.render(t, p))
	}
	s.record(s.baseline)
	s.baseline = nil
	s.preview = image.Rectangle{}
}

// DoubleClick ends polyline accumulation.
func (s *Session) DoubleClick(p image.Point, b Button) {
	if b != ButtonPrimary || !s.polyline {
		return
	}
	s.cancelPolyline()
}

func (s *Session) render(t *tool.Tool, p image.Point) image.Rectangle {
	r, err := t.RenderStroke(p, s.canvas.RGBA())
	if err != nil {
		logger().Warn("stroke failed", "session", s.id, "tool", t.Kind, "err", err)
	}
	return r
}

func (s *Session) cancelPolyline() {
	if !s.polyline {
		return
	}
	s.polyline = false
	logger().Debug("polyline ended", "session", s.id)
	if s.onChainCancelled != nil {
		s.onChainCancelled()
	}
}

// finishGesture commits a stroke that is still in progress, as if the
// pointer had been released where it last was.
func (s *Session) finishGesture() {
	if s.dragging {
		s.dragging = false
		s.record(s.baseline)
		s.baseline = nil
		s.preview = image.Rectangle{}
	}
	s.cancelPolyline()
}
