package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/rasterpaint/internal/clipboard"
	"github.com/example/rasterpaint/internal/config"
	"github.com/example/rasterpaint/internal/editor"
	"github.com/example/rasterpaint/internal/tool"
)

// drawCmd replays one tool gesture onto an image through an editor session.
type drawCmd struct {
	file        string
	output      string
	toClipboard bool
	colorName   string
	bgName      string
	width       int
	pattern     string
	join        string
	fill        string
	curve       int
	toolName    string
	points      []image.Point
	*root
	fs *flag.FlagSet
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

// drawTools maps tool names to the minimum and maximum number of points they
// take. A maximum of zero means unbounded.
var drawTools = map[string][2]int{
	"pencil":   {2, 0},
	"eraser":   {2, 0},
	"line":     {2, 2},
	"polyline": {2, 0},
	"rect":     {2, 2},
	"ellipse":  {2, 2},
	"triangle": {2, 2},
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r.subcommand("draw"), fs: fs}
	fs.Usage = usageFunc(d)
	fs.StringVar(&d.file, "file", "", "input image file")
	fs.StringVar(&d.output, "output", "", "output file path (defaults to input file)")
	fs.BoolVar(&d.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&d.toClipboard, "to-clip", false, "copy the result to the clipboard (alias)")
	fs.StringVar(&d.colorName, "color", "", "foreground color name or hex value")
	fs.StringVar(&d.bgName, "background", "", "background color used by the eraser and background fill")
	fs.IntVar(&d.width, "width", 0, "stroke width in pixels (0 keeps the configured width)")
	fs.StringVar(&d.pattern, "pattern", "", "line pattern: solid, dashed, dotted, dash-dot or dash-dot-dot")
	fs.StringVar(&d.join, "join", "", "shape corner join: miter, bevel or round")
	fs.StringVar(&d.fill, "fill", "none", "shape fill: none, foreground, background or a color")
	fs.IntVar(&d.curve, "curve", -1, "rectangle corner curve from 0 to 100 (-1 keeps the configured curve)")

	flagArgs, positionals, err := splitDrawArgs(args)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if len(positionals) < 1 {
		return nil, &UsageError{of: d}
	}
	d.toolName = strings.ToLower(positionals[0])
	limits, ok := drawTools[d.toolName]
	if !ok {
		return nil, fmt.Errorf("unsupported tool %q", d.toolName)
	}
	d.points, err = parsePoints(positionals[1:], d.toolName)
	if err != nil {
		return nil, err
	}
	if len(d.points) < limits[0] || (limits[1] > 0 && len(d.points) > limits[1]) {
		if limits[0] == limits[1] {
			return nil, fmt.Errorf("%s requires exactly %d points", d.toolName, limits[0])
		}
		return nil, fmt.Errorf("%s requires at least %d points", d.toolName, limits[0])
	}
	if d.file == "" {
		return nil, fmt.Errorf("input file is required")
	}
	if d.output == "" {
		d.output = d.file
	}
	return d, nil
}

func parsePoints(args []string, name string) ([]image.Point, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("%s takes x y pairs, got %d values", name, len(args))
	}
	pts := make([]image.Point, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		x, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", args[i])
		}
		y, err := strconv.Atoi(args[i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", args[i+1])
		}
		pts = append(pts, image.Pt(x, y))
	}
	return pts, nil
}

func (d *drawCmd) Run() error {
	s, err := d.newSession()
	if err != nil {
		return err
	}
	if err := d.configure(s); err != nil {
		return err
	}
	if err := s.LoadCanvas(d.file); err != nil {
		return err
	}
	kind := d.selectTool(s)
	if err := d.applyStyle(s, kind); err != nil {
		return err
	}
	replay(s, d.points)

	if err := s.SaveCanvas(d.output); err != nil {
		return err
	}
	saved := d.output
	if abs, err := filepath.Abs(saved); err == nil {
		saved = abs
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", saved)
	d.notifySave(saved)
	if d.toClipboard {
		img := s.Canvas().RGBA()
		if err := clipboard.WriteImage(img); err != nil {
			return fmt.Errorf("copy image to clipboard: %w", err)
		}
		detail := filepath.Base(saved)
		fmt.Fprintf(os.Stderr, "copied %s to clipboard\n", detail)
		d.notifyCopy(detail, img)
	}
	return nil
}

// configure sets the colours before the image is loaded.
func (d *drawCmd) configure(s *editor.Session) error {
	if d.colorName != "" {
		col, err := config.ParseColor(d.colorName)
		if err != nil {
			return err
		}
		s.SetColor(editor.Foreground, col)
	}
	if d.bgName != "" {
		col, err := config.ParseColor(d.bgName)
		if err != nil {
			return err
		}
		s.SetColor(editor.Background, col)
	}
	return nil
}

func (d *drawCmd) selectTool(s *editor.Session) tool.Kind {
	switch d.toolName {
	case "eraser":
		s.SetActiveTool(tool.Eraser)
		return tool.Eraser
	case "line":
		s.SetActiveTool(tool.StraightLine)
		return tool.StraightLine
	case "polyline":
		s.SetActiveTool(tool.StraightLine)
		s.SetChainMode(tool.ChainPolyline)
		return tool.StraightLine
	case "rect":
		s.SetShapeKind(tool.Rectangle)
	case "ellipse":
		s.SetShapeKind(tool.Ellipse)
	case "triangle":
		s.SetShapeKind(tool.Triangle)
	default:
		s.SetActiveTool(tool.Freehand)
		return tool.Freehand
	}
	s.SetActiveTool(tool.Shape)
	return tool.Shape
}

func (d *drawCmd) applyStyle(s *editor.Session, kind tool.Kind) error {
	t := s.Tool(kind)
	width, pattern, join := t.Style.Width, t.Style.Pattern, t.Style.Join
	if d.width > 0 {
		width = d.width
	}
	if d.pattern != "" {
		p, err := tool.ParsePattern(d.pattern)
		if err != nil {
			return err
		}
		pattern = p
	}
	if d.join != "" {
		j, err := tool.ParseJoin(d.join)
		if err != nil {
			return err
		}
		join = j
	}
	s.SetStrokeStyle(kind, width, pattern, join)
	if kind != tool.Shape {
		return nil
	}
	if d.curve >= 0 {
		s.SetRectCurve(d.curve)
	}
	if mode, err := tool.ParseFillMode(d.fill); err == nil {
		s.SetFillMode(mode)
		return nil
	}
	col, err := config.ParseColor(d.fill)
	if err != nil {
		return fmt.Errorf("invalid fill %q", d.fill)
	}
	s.SetFillColor(col)
	return nil
}

// replay feeds pts to s as one primary button gesture per segment in
// polyline mode, or one continuous drag otherwise.
func replay(s *editor.Session, pts []image.Point) {
	if len(pts) == 0 {
		return
	}
	if s.Tool(tool.StraightLine).Chain == tool.ChainPolyline && s.ActiveTool() == tool.StraightLine {
		s.PointerDown(pts[0], editor.ButtonPrimary)
		for i, p := range pts[1:] {
			if i > 0 {
				s.PointerDown(p, editor.ButtonPrimary)
			}
			s.PointerMove(p, editor.ButtonPrimary)
			s.PointerUp(p, editor.ButtonPrimary)
		}
		last := pts[len(pts)-1]
		s.DoubleClick(last, editor.ButtonPrimary)
		return
	}
	s.PointerDown(pts[0], editor.ButtonPrimary)
	for _, p := range pts[1:] {
		s.PointerMove(p, editor.ButtonPrimary)
	}
	s.PointerUp(pts[len(pts)-1], editor.ButtonPrimary)
}

var drawFlagNames = map[string]struct{}{
	"file":         {},
	"output":       {},
	"to-clipboard": {},
	"to-clip":      {},
	"color":        {},
	"background":   {},
	"width":        {},
	"pattern":      {},
	"join":         {},
	"fill":         {},
	"curve":        {},
	"h":            {},
	"help":         {},
}

var drawBoolFlags = map[string]struct{}{
	"to-clipboard": {},
	"to-clip":      {},
	"h":            {},
	"help":         {},
}

// splitDrawArgs separates known flags from positionals so negative
// coordinates are not mistaken for flags.
func splitDrawArgs(args []string) ([]string, []string, error) {
	var flags []string
	var positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positionals = append(positionals, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if name == "" {
			positionals = append(positionals, arg)
			continue
		}
		parts := strings.SplitN(name, "=", 2)
		base := strings.ToLower(parts[0])
		if _, ok := drawFlagNames[base]; !ok {
			positionals = append(positionals, arg)
			continue
		}
		norm := "-" + base
		if len(parts) == 2 {
			flags = append(flags, norm+"="+parts[1])
			continue
		}
		if _, ok := drawBoolFlags[base]; ok {
			flags = append(flags, norm)
			continue
		}
		if i+1 >= len(args) {
			return nil, nil, fmt.Errorf("flag %s requires a value", arg)
		}
		flags = append(flags, norm, args[i+1])
		i++
	}
	return flags, positionals, nil
}
