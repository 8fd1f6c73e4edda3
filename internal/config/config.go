package config

import (
	"fmt"
	"image/color"
	"strings"
)

// Notify holds notification settings.
type Notify struct {
	Save   bool
	Copy   bool
	Export bool
}

// Canvas holds the settings used for new canvases.
type Canvas struct {
	Width      int
	Height     int
	Background color.RGBA
}

// Tools holds the initial tool settings.
type Tools struct {
	Foreground color.RGBA
	PencilSize int
	EraserSize int
	LineSize   int
	ShapeSize  int
	RectCurve  int
	LineStyle  string
	JoinStyle  string
}

// History holds undo settings.
type History struct {
	Limit int
}

// Config holds the application configuration.
type Config struct {
	SaveDir string
	Theme   string
	Canvas  Canvas
	Tools   Tools
	History History
	Notify  Notify
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Canvas: Canvas{
			Width:      640,
			Height:     480,
			Background: color.RGBA{255, 255, 255, 255},
		},
		Tools: Tools{
			Foreground: color.RGBA{0, 0, 0, 255},
			PencilSize: 1,
			EraserSize: 10,
			LineSize:   1,
			ShapeSize:  1,
			LineStyle:  "solid",
			JoinStyle:  "bevel",
		},
		History: History{Limit: 100},
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" || c.Theme != "" {
		sb.WriteString("\n")
	}

	sb.WriteString("[canvas]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.Canvas.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Canvas.Height)
	fmt.Fprintf(&sb, "background = %s\n", toHex(c.Canvas.Background))
	sb.WriteString("\n")

	sb.WriteString("[tools]\n")
	fmt.Fprintf(&sb, "foreground = %s\n", toHex(c.Tools.Foreground))
	fmt.Fprintf(&sb, "pencil_size = %d\n", c.Tools.PencilSize)
	fmt.Fprintf(&sb, "eraser_size = %d\n", c.Tools.EraserSize)
	fmt.Fprintf(&sb, "line_size = %d\n", c.Tools.LineSize)
	fmt.Fprintf(&sb, "shape_size = %d\n", c.Tools.ShapeSize)
	fmt.Fprintf(&sb, "rect_curve = %d\n", c.Tools.RectCurve)
	fmt.Fprintf(&sb, "line_style = %s\n", c.Tools.LineStyle)
	fmt.Fprintf(&sb, "join_style = %s\n", c.Tools.JoinStyle)
	sb.WriteString("\n")

	sb.WriteString("[history]\n")
	fmt.Fprintf(&sb, "limit = %d\n", c.History.Limit)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)

	return sb.String()
}

func toHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}
