package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/example/rasterpaint/internal/shell"
	"github.com/example/rasterpaint/internal/theme"
)

// editCmd opens the interactive editor.
type editCmd struct {
	file      string
	width     int
	height    int
	themeName string
	*root
	fs *flag.FlagSet
}

func (e *editCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	e := &editCmd{root: r.subcommand("edit"), fs: fs}
	fs.Usage = usageFunc(e)
	cfg := e.settings()
	fs.IntVar(&e.width, "width", cfg.Canvas.Width, "width of a new canvas")
	fs.IntVar(&e.height, "height", cfg.Canvas.Height, "height of a new canvas")
	fs.StringVar(&e.themeName, "theme", "", "window theme: default, dark, high_contrast or a .theme file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		e.file = fs.Arg(0)
	default:
		return nil, &UsageError{of: e}
	}
	return e, nil
}

// newShell builds the shell and fills its canvas from the file, or blank
// when the file does not exist yet.
func (e *editCmd) newShell() (*shell.Shell, error) {
	sh := shell.New(
		shell.WithPath(e.file),
		shell.WithTheme(e.loadTheme()),
		shell.WithNotifier(e.notifier),
		shell.WithSessionOptions(e.sessionOptions()...),
	)
	s := sh.Session()
	if err := applyConfig(s, e.settings()); err != nil {
		return nil, err
	}
	if e.file != "" {
		err := s.LoadCanvas(e.file)
		if err == nil {
			s.History().Clear()
			return sh, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		log.Printf("%s does not exist, starting a new canvas", e.file)
	}
	if err := s.CreateCanvas(e.width, e.height); err != nil {
		return nil, fmt.Errorf("new canvas: %w", err)
	}
	s.History().Clear()
	return sh, nil
}

func (e *editCmd) Run() error {
	sh, err := e.newShell()
	if err != nil {
		return err
	}
	sh.Run()
	if sh.Session().Modified() {
		fmt.Fprintln(os.Stderr, "warning: closed with unsaved changes")
	}
	return nil
}

// loadTheme resolves the theme from the flag, then RASTERPAINT_THEME, then
// the config file. Unknown themes fall back to the default with a warning.
func (e *editCmd) loadTheme() *theme.Theme {
	name := e.themeName
	if name == "" {
		name = os.Getenv("RASTERPAINT_THEME")
	}
	if name == "" {
		name = e.settings().Theme
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		return theme.Default()
	}
	return t
}
