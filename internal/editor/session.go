// Package editor drives a single paint canvas: it turns pointer input into
// tool strokes, records undoable commands, and keeps tool settings in step
// with the colour and style choices made in the surrounding UI.
package editor

import (
	"image"
	"image/color"

	"github.com/example/rasterpaint/internal/canvas"
	"github.com/example/rasterpaint/internal/history"
	"github.com/example/rasterpaint/internal/tool"
	"github.com/google/uuid"
)

// Default colours of a new session.
var (
	DefaultForeground = color.RGBA{0, 0, 0, 255}
	DefaultBackground = color.RGBA{255, 255, 255, 255}
)

// PropertyPanelOpener shows the settings of a tool, typically in a dialog.
// It receives a copy; changes come back through the Session setters.
type PropertyPanelOpener interface {
	OpenPropertyPanel(t tool.Tool)
}

// PropertyPanelFunc adapts a function to PropertyPanelOpener.
type PropertyPanelFunc func(t tool.Tool)

// OpenPropertyPanel calls f(t).
func (f PropertyPanelFunc) OpenPropertyPanel(t tool.Tool) { f(t) }

// Session is one editing session over one canvas. It is not safe for
// concurrent use: events must be delivered one at a time.
type Session struct {
	id         string
	canvas     *canvas.Canvas
	tools      *tool.Set
	active     tool.Kind
	foreground color.RGBA
	background color.RGBA
	history    *history.History
	limit      int

	dragging bool
	polyline bool
	sampling bool
	baseline *image.RGBA
	preview  image.Rectangle
	clean    *image.RGBA

	panel            PropertyPanelOpener
	onDirty          func(image.Rectangle)
	onToolChanged    func(tool.Kind)
	onChainCancelled func()
	onSampled        func(color.RGBA)
}

// Option modifies a Session during creation.
type Option func(*Session)

// WithCanvas starts the session on c instead of an empty canvas.
func WithCanvas(c *canvas.Canvas) Option { return func(s *Session) { s.canvas = c } }

// WithHistoryLimit sets how many commands can be undone.
func WithHistoryLimit(n int) Option { return func(s *Session) { s.limit = n } }

// WithColors sets the initial foreground and background colours.
func WithColors(fg, bg color.RGBA) Option {
	return func(s *Session) { s.foreground, s.background = canvas.Opaque(fg), canvas.Opaque(bg) }
}

// WithPropertyPanel registers the collaborator opened by a secondary click.
func WithPropertyPanel(p PropertyPanelOpener) Option { return func(s *Session) { s.panel = p } }

// WithDirtyRegion registers a callback for regions needing a repaint.
func WithDirtyRegion(fn func(image.Rectangle)) Option { return func(s *Session) { s.onDirty = fn } }

// WithToolChanged registers a callback invoked after the active tool changes.
func WithToolChanged(fn func(tool.Kind)) Option { return func(s *Session) { s.onToolChanged = fn } }

// WithChainModeCancelled registers a callback invoked when polyline
// accumulation ends.
func WithChainModeCancelled(fn func()) Option { return func(s *Session) { s.onChainCancelled = fn } }

// WithSampled registers a callback invoked when sampling picks a colour.
func WithSampled(fn func(color.RGBA)) Option { return func(s *Session) { s.onSampled = fn } }

// New creates a Session with the provided options.
func New(opts ...Option) *Session {
	s := &Session{
		id:         uuid.NewString(),
		active:     tool.Freehand,
		foreground: DefaultForeground,
		background: DefaultBackground,
		limit:      history.DefaultLimit,
	}
	for _, o := range opts {
		o(s)
	}
	if s.canvas == nil {
		s.canvas = canvas.Empty(s.background)
	}
	s.canvas.SetBackground(s.background)
	s.tools = tool.NewSet(s.foreground, s.background)
	s.history = history.New(s.limit)
	s.clean = s.canvas.Snapshot()
	logger().Debug("session created", "session", s.id, "width", s.canvas.Width(), "height", s.canvas.Height())
	return s
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// Canvas returns the live canvas.
func (s *Session) Canvas() *canvas.Canvas { return s.canvas }

// History returns the undo/redo log.
func (s *Session) History() *history.History { return s.history }

// ActiveTool returns the kind of the tool receiving pointer input.
func (s *Session) ActiveTool() tool.Kind { return s.active }

// Tool returns a copy of the settings of the tool of kind k.
func (s *Session) Tool(k tool.Kind) tool.Tool {
	if t := s.tools.Get(k); t != nil {
		return *t
	}
	return tool.Tool{}
}

// Foreground returns the current foreground colour.
func (s *Session) Foreground() color.RGBA { return s.foreground }

// Background returns the current background colour.
func (s *Session) Background() color.RGBA { return s.background }

// Dragging reports whether a stroke is in progress.
func (s *Session) Dragging() bool { return s.dragging }

// Polyline reports whether line segments are being chained.
func (s *Session) Polyline() bool { return s.polyline }

// Sampling reports whether the next primary press picks a colour.
func (s *Session) Sampling() bool { return s.sampling }

// Modified reports whether the canvas differs from the last load or save.
func (s *Session) Modified() bool { return !s.canvas.Equal(s.clean) }

func (s *Session) dirty(r image.Rectangle) {
	if r.Empty() || s.onDirty == nil {
		return
	}
	s.onDirty(r)
}

// record pushes a command when the canvas no longer matches before.
func (s *Session) record(before *image.RGBA) bool {
	if s.canvas.Equal(before) {
		return false
	}
	cmd := s.history.Push(before, s.canvas.RGBA())
	logger().Debug("command recorded", "session", s.id, "command", cmd.ID, "history", s.history.Len())
	return true
}
