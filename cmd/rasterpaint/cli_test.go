package main

import (
	"errors"
	"flag"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/rasterpaint/internal/canvas"
	"github.com/example/rasterpaint/internal/config"
	"github.com/example/rasterpaint/internal/editor"
	"github.com/example/rasterpaint/internal/tool"
)

func testRoot() *root {
	return &root{program: "rasterpaint", config: config.New()}
}

func newCanvasFile(t *testing.T, w, h string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "canvas.bmp")
	cmd, err := parseNewCmd([]string{"-width", w, "-height", h, path}, testRoot())
	if err != nil {
		t.Fatalf("parse new: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("new: %v", err)
	}
	return path
}

func loadPixel(t *testing.T, path string, x, y int) color.RGBA {
	t.Helper()
	c, err := canvas.Load(path, editor.DefaultBackground)
	if err != nil {
		t.Fatalf("load %s: %v", path, err)
	}
	return c.RGBA().RGBAAt(x, y)
}

func TestParseDrawErrors(t *testing.T) {
	cases := map[string][]string{
		"unsupported tool":  {"-file", "a.bmp", "spray", "0", "0", "1", "1"},
		"x y pairs":         {"-file", "a.bmp", "line", "0", "0", "1"},
		"exactly 2 points":  {"-file", "a.bmp", "rect", "0", "0", "1", "1", "2", "2"},
		"at least 2 points": {"-file", "a.bmp", "pencil", "0", "0"},
		"invalid integer":   {"-file", "a.bmp", "line", "0", "zero", "1", "1"},
		"input file":        {"line", "0", "0", "1", "1"},
		"requires a value":  {"line", "0", "0", "1", "1", "-file"},
	}
	for want, args := range cases {
		_, err := parseDrawCmd(args, testRoot())
		if err == nil {
			t.Errorf("%v: expected error", args)
			continue
		}
		if !strings.Contains(err.Error(), want) {
			t.Errorf("%v: expected error to mention %q, got %v", args, want, err)
		}
	}
}

func TestParseDrawWithoutToolIsUsage(t *testing.T) {
	_, err := parseDrawCmd([]string{"-file", "a.bmp"}, testRoot())
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if !strings.Contains(uerr.Error(), "rasterpaint draw") {
		t.Fatalf("usage lacks program name: %s", uerr.Error())
	}
}

func TestSplitDrawArgsKeepsNegativeCoordinates(t *testing.T) {
	flags, pos, err := splitDrawArgs([]string{"--file=a.bmp", "pencil", "-5", "3", "-width", "4", "10", "-2", "-to-clip"})
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if got := strings.Join(flags, " "); got != "-file=a.bmp -width 4 -to-clip" {
		t.Errorf("flags = %q", got)
	}
	if got := strings.Join(pos, " "); got != "pencil -5 3 10 -2" {
		t.Errorf("positionals = %q", got)
	}
}

func TestDrawLine(t *testing.T) {
	path := newCanvasFile(t, "40", "30")
	out := filepath.Join(filepath.Dir(path), "out.bmp")
	cmd, err := parseDrawCmd([]string{"-file", path, "-output", out, "-color", "red", "-width", "3", "line", "2", "10", "30", "10"}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := loadPixel(t, out, 15, 10); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("line pixel %v", got)
	}
	if got := loadPixel(t, out, 15, 25); got != editor.DefaultBackground {
		t.Errorf("far pixel %v", got)
	}
	if got := loadPixel(t, path, 15, 10); got != editor.DefaultBackground {
		t.Errorf("input was modified: %v", got)
	}
}

func TestDrawPolyline(t *testing.T) {
	path := newCanvasFile(t, "40", "30")
	cmd, err := parseDrawCmd([]string{"-file", path, "-width", "3", "polyline", "2", "4", "20", "4", "20", "24"}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, p := range [][2]int{{10, 4}, {20, 15}} {
		if got := loadPixel(t, path, p[0], p[1]); got != editor.DefaultForeground {
			t.Errorf("pixel %v = %v", p, got)
		}
	}
	if got := loadPixel(t, path, 11, 14); got != editor.DefaultBackground {
		t.Errorf("closing segment drawn: %v", got)
	}
}

func TestDrawFilledRectangle(t *testing.T) {
	path := newCanvasFile(t, "40", "30")
	cmd, err := parseDrawCmd([]string{"-file", path, "-fill", "#00FF00", "rect", "5", "5", "25", "25"}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := loadPixel(t, path, 15, 15); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("fill pixel %v", got)
	}
	if got := loadPixel(t, path, 32, 15); got != editor.DefaultBackground {
		t.Errorf("outside pixel %v", got)
	}
}

func TestDrawEraserUsesBackground(t *testing.T) {
	path := newCanvasFile(t, "40", "30")
	cmd, err := parseDrawCmd([]string{"-file", path, "-background", "blue", "eraser", "2", "15", "35", "15"}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := loadPixel(t, path, 18, 15); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("erased pixel %v", got)
	}
}

func TestDrawMissingInput(t *testing.T) {
	cmd, err := parseDrawCmd([]string{"-file", filepath.Join(t.TempDir(), "nope.bmp"), "line", "0", "0", "5", "5"}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	err = cmd.Run()
	if !errors.Is(err, canvas.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestNewCmdBackground(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.bmp")
	cmd, err := parseNewCmd([]string{"-width", "8", "-height", "6", "-background", "#102030", path}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := loadPixel(t, path, 7, 5); got != (color.RGBA{0x10, 0x20, 0x30, 255}) {
		t.Errorf("background %v", got)
	}
}

func TestNewCmdTranslucentBackgroundRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "half.bmp")
	cmd, err := parseNewCmd([]string{"-width", "8", "-height", "6", "-background", "#ff000080", path}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	loaded, err := canvas.Load(path, editor.DefaultBackground)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want, err := canvas.New(8, 6, color.RGBA{255, 0, 0, 255})
	if err != nil {
		t.Fatalf("canvas: %v", err)
	}
	if !loaded.Equal(want.RGBA()) {
		t.Fatalf("reloaded pixel %v, want opaque red", loaded.RGBA().RGBAAt(0, 0))
	}
}

func TestNewCmdRejectsHugeCanvas(t *testing.T) {
	cmd, err := parseNewCmd([]string{"-width", "5000", "-height", "10", filepath.Join(t.TempDir(), "x.bmp")}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); !errors.Is(err, canvas.ErrInvalidSize) {
		t.Fatalf("expected invalid size, got %v", err)
	}
}

func TestResizeCmd(t *testing.T) {
	path := newCanvasFile(t, "10", "10")
	cmd, err := parseResizeCmd([]string{"-width", "20", "-height", "5", path}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	c, err := canvas.Load(path, editor.DefaultBackground)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Width() != 20 || c.Height() != 5 {
		t.Fatalf("size %dx%d", c.Width(), c.Height())
	}
	if _, err := parseResizeCmd([]string{path}, testRoot()); err == nil {
		t.Fatalf("expected error without a size")
	}
}

func TestExportCmd(t *testing.T) {
	path := newCanvasFile(t, "16", "12")
	cmd, err := parseExportCmd([]string{path}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if want := strings.TrimSuffix(path, ".bmp") + ".pdf"; cmd.output != want {
		t.Fatalf("output %s, want %s", cmd.output, want)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(cmd.output)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Fatalf("not a PDF")
	}
}

func TestEditCmdStartsNewCanvas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.bmp")
	cmd, err := parseEditCmd([]string{"-width", "30", "-height", "20", path}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	sh, err := cmd.newShell()
	if err != nil {
		t.Fatalf("newShell: %v", err)
	}
	s := sh.Session()
	if s.Canvas().Width() != 30 || s.Canvas().Height() != 20 {
		t.Fatalf("size %dx%d", s.Canvas().Width(), s.Canvas().Height())
	}
	if s.History().Len() != 0 {
		t.Fatalf("history not cleared")
	}
}

func TestEditCmdLoadsExistingFile(t *testing.T) {
	path := newCanvasFile(t, "12", "9")
	cmd, err := parseEditCmd([]string{path}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	sh, err := cmd.newShell()
	if err != nil {
		t.Fatalf("newShell: %v", err)
	}
	s := sh.Session()
	if s.Canvas().Width() != 12 || s.Modified() || s.History().CanUndo() {
		t.Fatalf("unexpected session state")
	}
}

func TestEditCmdTheme(t *testing.T) {
	t.Setenv("RASTERPAINT_THEME", "")
	cmd, err := parseEditCmd([]string{"-theme", "dark"}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := cmd.loadTheme().Name; got != "Dark" {
		t.Fatalf("theme %q", got)
	}

	r := testRoot()
	r.config.Theme = "high_contrast"
	cmd, err = parseEditCmd(nil, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := cmd.loadTheme().Name; got != "High Contrast" {
		t.Fatalf("config theme %q", got)
	}

	cmd.themeName = "no-such-theme"
	if got := cmd.loadTheme().Name; got != "Default" {
		t.Fatalf("fallback theme %q", got)
	}
}

func TestApplyConfig(t *testing.T) {
	cfg := config.New()
	cfg.Tools.LineSize = 6
	cfg.Tools.LineStyle = "dotted"
	cfg.Tools.JoinStyle = "round"
	cfg.Tools.RectCurve = 250
	r := &root{program: "rasterpaint", config: cfg}
	s, err := r.newSession()
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	line := s.Tool(tool.StraightLine)
	if line.Style.Width != 6 || line.Style.Pattern.String() != "dotted" {
		t.Errorf("line style %+v", line.Style)
	}
	shape := s.Tool(tool.Shape)
	if shape.Style.Join != tool.JoinRound || shape.Curve != 100 {
		t.Errorf("shape settings %+v", shape)
	}

	cfg.Tools.JoinStyle = "sharp"
	if _, err := r.newSession(); err == nil {
		t.Fatalf("expected error for bad join style")
	}
}

func TestConfigSave(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	r := testRoot()
	r.loader = config.NewLoader(version, "")
	cmd, err := parseConfigCmd([]string{"save"}, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".config", "rasterpaint", "config.rc")); err != nil {
		t.Fatalf("config not written: %v", err)
	}
}

func TestHelpTemplatesRender(t *testing.T) {
	r := testRoot()
	r.fs = flag.NewFlagSet("rasterpaint", flag.ContinueOnError)
	r.fs.Bool("v", false, "log editor diagnostics to stderr")
	var items []HelpData = []HelpData{r}
	if n, err := parseNewCmd([]string{"x.bmp"}, r); err == nil {
		items = append(items, n)
	}
	if d, err := parseDrawCmd([]string{"-file", "x.bmp", "line", "0", "0", "1", "1"}, r); err == nil {
		items = append(items, d)
	}
	if e, err := parseExportCmd([]string{"x.bmp"}, r); err == nil {
		items = append(items, e)
	}
	if e, err := parseEditCmd(nil, r); err == nil {
		items = append(items, e)
	}
	if c, err := parseConfigCmd(nil, r); err == nil {
		items = append(items, c)
	}
	if c, err := parseResizeCmd([]string{"-width", "1", "-height", "1", "x.bmp"}, r); err == nil {
		items = append(items, c)
	}
	if len(items) != 7 {
		t.Fatalf("parsed %d commands", len(items))
	}
	for _, h := range items {
		help, err := (&UsageError{of: h}).renderHelp()
		if err != nil {
			t.Fatalf("%s: %v", h.Template(), err)
		}
		if !strings.Contains(help, h.Program()) {
			t.Errorf("%s does not mention %q", h.Template(), h.Program())
		}
	}
}
