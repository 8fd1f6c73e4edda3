// Package shell is a minimal interactive window around an editor session.
package shell

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/rasterpaint/internal/editor"
	"github.com/example/rasterpaint/internal/notify"
	"github.com/example/rasterpaint/internal/theme"
	"github.com/example/rasterpaint/internal/tool"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

const (
	statusHeight     = 20
	minWindowWidth   = 480
	doubleClickDelay = 400 * time.Millisecond
	doubleClickSlop  = 4
	messageDuration  = 3 * time.Second
)

// Shell owns the window, the session and the bits of UI state around them.
type Shell struct {
	session  *editor.Session
	path     string
	notifier *notify.Notifier
	theme    *theme.Theme

	sessionOpts []editor.Option
	updateCh    chan struct{}

	leftHeld     bool
	lastPress    time.Time
	lastPressPt  image.Point
	message      string
	messageUntil time.Time
	now          func() time.Time
}

// Option modifies a Shell during creation.
type Option func(*Shell)

// WithPath sets the file used by save and export.
func WithPath(path string) Option { return func(sh *Shell) { sh.path = path } }

// WithNotifier sets the notifier used after save, copy and export.
func WithNotifier(n *notify.Notifier) Option { return func(sh *Shell) { sh.notifier = n } }

// WithTheme sets the colours of the window chrome.
func WithTheme(t *theme.Theme) Option { return func(sh *Shell) { sh.theme = t } }

// WithSessionOptions passes options through to the editor session.
func WithSessionOptions(opts ...editor.Option) Option {
	return func(sh *Shell) { sh.sessionOpts = append(sh.sessionOpts, opts...) }
}

// New creates a Shell and its session. The shell registers itself as the
// session's property panel and repaint target.
func New(opts ...Option) *Shell {
	sh := &Shell{updateCh: make(chan struct{}, 1), now: time.Now, theme: theme.Default()}
	for _, o := range opts {
		o(sh)
	}
	if sh.theme == nil {
		sh.theme = theme.Default()
	}
	sessionOpts := append([]editor.Option{}, sh.sessionOpts...)
	sessionOpts = append(sessionOpts,
		editor.WithDirtyRegion(func(image.Rectangle) { sh.invalidate() }),
		editor.WithPropertyPanel(sh),
		editor.WithToolChanged(func(k tool.Kind) { sh.flash("tool: " + k.String()) }),
		editor.WithChainModeCancelled(func() { sh.flash("polyline finished") }),
		editor.WithSampled(func(c color.RGBA) { sh.flash("picked " + hexColor(c)) }),
	)
	sh.session = editor.New(sessionOpts...)
	return sh
}

// Session returns the session driven by the shell.
func (sh *Shell) Session() *editor.Session { return sh.session }

// OpenPropertyPanel shows the settings of t in the status bar.
func (sh *Shell) OpenPropertyPanel(t tool.Tool) {
	sh.flash(describeTool(t))
}

func (sh *Shell) invalidate() {
	select {
	case sh.updateCh <- struct{}{}:
	default:
	}
}

func (sh *Shell) flash(msg string) {
	log.Print(msg)
	sh.message = msg
	sh.messageUntil = sh.now().Add(messageDuration)
	sh.invalidate()
}

// Run executes the UI loop using shiny's driver.
func (sh *Shell) Run() { driver.Main(sh.Main) }

// Main runs the event loop on s until the window closes.
func (sh *Shell) Main(s screen.Screen) {
	c := sh.session.Canvas()
	width := max(c.Width(), minWindowWidth)
	height := c.Height() + statusHeight
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: sh.title()})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-sh.updateCh:
				w.Send(paint.Event{})
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width, height = e.WidthPx, e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			sh.paint(s, w, width, height)
		case mouse.Event:
			sh.handleMouse(e)
		case key.Event:
			if sh.handleKey(e) {
				return
			}
		}
	}
}

func (sh *Shell) title() string {
	if sh.path == "" {
		return "RasterPaint"
	}
	return "RasterPaint - " + filepath.Base(sh.path)
}

func (sh *Shell) handleMouse(e mouse.Event) {
	p := image.Pt(int(e.X), int(e.Y))
	switch e.Direction {
	case mouse.DirPress:
		switch e.Button {
		case mouse.ButtonLeft:
			now := sh.now()
			if sh.session.Polyline() && isDoubleClick(sh.lastPress, sh.lastPressPt, now, p) {
				sh.lastPress = time.Time{}
				sh.leftHeld = false
				sh.session.DoubleClick(p, editor.ButtonPrimary)
				return
			}
			sh.lastPress, sh.lastPressPt = now, p
			sh.leftHeld = true
			sh.session.PointerDown(p, editor.ButtonPrimary)
		case mouse.ButtonRight:
			sh.session.PointerDown(p, editor.ButtonSecondary)
		}
	case mouse.DirRelease:
		if e.Button == mouse.ButtonLeft {
			sh.leftHeld = false
			sh.session.PointerUp(p, editor.ButtonPrimary)
			sh.invalidate()
		}
	case mouse.DirNone:
		if sh.leftHeld {
			sh.session.PointerMove(p, editor.ButtonPrimary)
		}
	}
}

func isDoubleClick(prev time.Time, prevPt image.Point, now time.Time, p image.Point) bool {
	if prev.IsZero() || now.Sub(prev) > doubleClickDelay {
		return false
	}
	d := p.Sub(prevPt)
	return abs(d.X) <= doubleClickSlop && abs(d.Y) <= doubleClickSlop
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func describeTool(t tool.Tool) string {
	parts := []string{t.Kind.String(), fmt.Sprintf("width %d", t.Style.Width), hexColor(t.Style.Color)}
	switch t.Kind {
	case tool.StraightLine:
		parts = append(parts, t.Style.Pattern.String(), t.Chain.String())
	case tool.Shape:
		parts = append(parts, t.Shape.String(), t.Style.Pattern.String(), t.Style.Join.String()+" join", "fill "+t.FillMode.String())
		if t.Shape == tool.Rectangle && t.Curve > 0 {
			parts = append(parts, fmt.Sprintf("curve %d", t.Curve))
		}
	}
	return strings.Join(parts, ", ")
}
