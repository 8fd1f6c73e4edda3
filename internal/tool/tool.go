package tool

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Kind identifies one of the drawing behaviours.
type Kind int

const (
	Freehand Kind = iota
	StraightLine
	Eraser
	Shape
	kindCount
)

var kindNames = [...]string{"pencil", "line", "eraser", "shape"}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every tool kind in display order.
func Kinds() []Kind { return []Kind{Freehand, StraightLine, Eraser, Shape} }

// LinePattern selects the dash pattern of a stroke.
type LinePattern int

const (
	Solid LinePattern = iota
	Dashed
	Dotted
	DashDot
	DashDotDot
)

var patternNames = [...]string{"solid", "dashed", "dotted", "dash-dot", "dash-dot-dot"}

func (p LinePattern) String() string {
	if p < Solid || p > DashDotDot {
		return fmt.Sprintf("LinePattern(%d)", int(p))
	}
	return patternNames[p]
}

// ParsePattern converts a pattern name such as "dash-dot" into a LinePattern.
func ParsePattern(s string) (LinePattern, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, n := range patternNames {
		if n == name {
			return LinePattern(i), nil
		}
	}
	return Solid, fmt.Errorf("unknown line pattern %q", s)
}

// Join is the corner style used where stroke segments meet.
type Join int

const (
	JoinMiter Join = iota
	JoinBevel
	JoinRound
)

var joinNames = [...]string{"miter", "bevel", "round"}

func (j Join) String() string {
	if j < JoinMiter || j > JoinRound {
		return fmt.Sprintf("Join(%d)", int(j))
	}
	return joinNames[j]
}

// ParseJoin converts "miter", "bevel" or "round" into a Join.
func ParseJoin(s string) (Join, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range joinNames {
		if n == name {
			return Join(i), nil
		}
	}
	return JoinBevel, fmt.Errorf("unknown join style %q", s)
}

// ShapeKind selects the figure drawn by the Shape tool.
type ShapeKind int

const (
	Rectangle ShapeKind = iota
	Ellipse
	Triangle
)

var shapeNames = [...]string{"rectangle", "ellipse", "triangle"}

func (s ShapeKind) String() string {
	if s < Rectangle || s > Triangle {
		return fmt.Sprintf("ShapeKind(%d)", int(s))
	}
	return shapeNames[s]
}

// FillMode decides where the Shape tool takes its fill colour from.
type FillMode int

const (
	FillNone FillMode = iota
	FillForeground
	FillBackground
	FillFixed
)

var fillNames = [...]string{"none", "foreground", "background", "fixed"}

func (f FillMode) String() string {
	if f < FillNone || f > FillFixed {
		return fmt.Sprintf("FillMode(%d)", int(f))
	}
	return fillNames[f]
}

// ParseFillMode converts a fill mode name into a FillMode.
func ParseFillMode(s string) (FillMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range fillNames {
		if n == name {
			return FillMode(i), nil
		}
	}
	return FillNone, fmt.Errorf("unknown fill mode %q", s)
}

// ChainMode controls whether StraightLine segments chain into a polyline.
type ChainMode int

const (
	ChainSingle ChainMode = iota
	ChainPolyline
)

func (c ChainMode) String() string {
	if c == ChainPolyline {
		return "polyline"
	}
	return "single"
}

// Stroke width limits.
const (
	MinWidth = 1
	MaxWidth = 50

	DefaultWidth       = 1
	DefaultEraserWidth = 10

	MinCurve = 0
	MaxCurve = 100
)

// ClampWidth limits w to the supported stroke widths.
func ClampWidth(w int) int {
	return clamp(w, MinWidth, MaxWidth)
}

// ClampCurve limits c to the supported rectangle corner curve.
func ClampCurve(c int) int {
	return clamp(c, MinCurve, MaxCurve)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Style is the stroke configuration shared by every kind.
type Style struct {
	Color   color.RGBA
	Width   int
	Pattern LinePattern
	Join    Join
}

// Tool is one drawing behaviour with its settings. Fields after Anchor only
// matter for the kinds named in their comments.
type Tool struct {
	Kind  Kind
	Style Style
	// Anchor is the last committed point of the stroke in progress.
	Anchor image.Point

	// Shape
	Shape     ShapeKind
	FillMode  FillMode
	FillColor color.RGBA
	Curve     int

	// StraightLine
	Chain ChainMode
}

// Set holds one tool per kind so settings survive switching between them.
type Set struct {
	tools [kindCount]*Tool
}

// NewSet builds the tools with their default settings. Stroke tools take the
// foreground colour and the eraser takes the background colour.
func NewSet(foreground, background color.RGBA) *Set {
	s := &Set{}
	for _, k := range Kinds() {
		s.tools[k] = &Tool{
			Kind:  k,
			Style: Style{Color: foreground, Width: DefaultWidth, Pattern: Solid, Join: JoinBevel},
		}
	}
	s.tools[Eraser].Style.Color = background
	s.tools[Eraser].Style.Width = DefaultEraserWidth
	return s
}

// Get returns the tool of kind k.
func (s *Set) Get(k Kind) *Tool {
	if k < 0 || k >= kindCount {
		return nil
	}
	return s.tools[k]
}
