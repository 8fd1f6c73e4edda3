package shell

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/example/rasterpaint/internal/clipboard"
	"github.com/example/rasterpaint/internal/export"
	"github.com/example/rasterpaint/internal/tool"
	"golang.org/x/mobile/event/key"
)

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

type action struct {
	name string
	fn   func(sh *Shell)
}

var keyActions = map[KeyShortcut]action{
	{Rune: 'p'}: {"pencil", func(sh *Shell) { sh.session.SetActiveTool(tool.Freehand) }},
	{Rune: 'l'}: {"line", func(sh *Shell) { sh.session.SetActiveTool(tool.StraightLine) }},
	{Rune: 'e'}: {"eraser", func(sh *Shell) { sh.session.SetActiveTool(tool.Eraser) }},
	{Rune: 's'}: {"shape", func(sh *Shell) { sh.session.SetActiveTool(tool.Shape) }},
	{Rune: 'r'}: {"rectangle", func(sh *Shell) { sh.selectShape(tool.Rectangle) }},
	{Rune: 'o'}: {"ellipse", func(sh *Shell) { sh.selectShape(tool.Ellipse) }},
	{Rune: 't'}: {"triangle", func(sh *Shell) { sh.selectShape(tool.Triangle) }},
	{Rune: 'c'}: {"chain", (*Shell).toggleChain},
	{Rune: 'f'}: {"fill", (*Shell).cycleFill},
	{Rune: 'i'}: {"pick", func(sh *Shell) {
		sh.session.EnterSamplingMode()
		sh.flash("click the canvas to pick a colour")
	}},
	{Rune: '['}: {"thinner", func(sh *Shell) { sh.adjustWidth(-1) }},
	{Rune: ']'}: {"thicker", func(sh *Shell) { sh.adjustWidth(1) }},

	{Rune: 'z', Modifiers: key.ModControl}: {"undo", func(sh *Shell) {
		if !sh.session.Undo() {
			sh.flash("nothing to undo")
		}
	}},
	{Rune: 'y', Modifiers: key.ModControl}: {"redo", func(sh *Shell) {
		if !sh.session.Redo() {
			sh.flash("nothing to redo")
		}
	}},
	{Rune: 's', Modifiers: key.ModControl}: {"save", (*Shell).save},
	{Rune: 'n', Modifiers: key.ModControl}: {"clear", func(sh *Shell) {
		if err := sh.session.ClearCanvas(); err != nil {
			sh.flash(err.Error())
		}
	}},
	{Rune: 'c', Modifiers: key.ModControl}: {"copy", (*Shell).copyCanvas},
	{Rune: 'v', Modifiers: key.ModControl}: {"paste", (*Shell).pasteCanvas},
	{Rune: 'e', Modifiers: key.ModControl}: {"export", (*Shell).exportPDF},
}

// handleKey runs the action bound to e. It reports true when the window
// should close.
func (sh *Shell) handleKey(e key.Event) bool {
	if e.Direction == key.DirRelease {
		return false
	}
	if e.Code == key.CodeEscape {
		return true
	}
	mods := e.Modifiers & key.ModControl
	r := unicode.ToLower(e.Rune)
	if r == 'q' && mods == 0 {
		return true
	}
	a, ok := keyActions[KeyShortcut{Rune: r, Modifiers: mods}]
	if !ok {
		return false
	}
	a.fn(sh)
	sh.invalidate()
	return false
}

func (sh *Shell) selectShape(k tool.ShapeKind) {
	sh.session.SetShapeKind(k)
	sh.session.SetActiveTool(tool.Shape)
	sh.flash("shape: " + k.String())
}

func (sh *Shell) toggleChain() {
	m := tool.ChainPolyline
	if sh.session.Tool(tool.StraightLine).Chain == tool.ChainPolyline {
		m = tool.ChainSingle
	}
	sh.session.SetChainMode(m)
	sh.flash("line mode: " + m.String())
}

func (sh *Shell) cycleFill() {
	next := tool.FillNone
	switch sh.session.Tool(tool.Shape).FillMode {
	case tool.FillNone:
		next = tool.FillForeground
	case tool.FillForeground:
		next = tool.FillBackground
	}
	sh.session.SetFillMode(next)
	sh.flash("fill: " + next.String())
}

func (sh *Shell) adjustWidth(delta int) {
	k := sh.session.ActiveTool()
	t := sh.session.Tool(k)
	sh.session.SetStrokeStyle(k, t.Style.Width+delta, t.Style.Pattern, t.Style.Join)
	sh.flash(fmt.Sprintf("%s width %d", k, sh.session.Tool(k).Style.Width))
}

func (sh *Shell) save() {
	if sh.path == "" {
		sh.flash("no file to save to")
		return
	}
	if err := sh.session.SaveCanvas(sh.path); err != nil {
		sh.flash(err.Error())
		return
	}
	sh.flash("saved " + sh.path)
	sh.notifier.Save(sh.path)
}

func (sh *Shell) copyCanvas() {
	img := sh.session.Canvas().RGBA()
	if err := clipboard.WriteImage(img); err != nil {
		sh.flash("copy: " + err.Error())
		return
	}
	sh.flash("canvas copied to clipboard")
	sh.notifier.Copy(filepath.Base(sh.path), img)
}

func (sh *Shell) pasteCanvas() {
	img, err := clipboard.ReadImage()
	if err != nil {
		sh.flash("paste: " + err.Error())
		return
	}
	if err := sh.session.PasteCanvas(img); err != nil {
		sh.flash(err.Error())
	}
}

func (sh *Shell) exportPDF() {
	if sh.path == "" {
		sh.flash("no file to export next to")
		return
	}
	out := pdfPath(sh.path)
	opts := export.PDFOptions{Title: filepath.Base(sh.path)}
	if err := export.SavePDF(out, sh.session.Canvas().RGBA(), opts); err != nil {
		sh.flash("export: " + err.Error())
		return
	}
	sh.flash("exported " + out)
	sh.notifier.Export(out)
}

func pdfPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".pdf"
}
