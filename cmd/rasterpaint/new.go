package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/example/rasterpaint/internal/config"
	"github.com/example/rasterpaint/internal/editor"
)

// newCmd creates a blank canvas file.
type newCmd struct {
	width      int
	height     int
	background string
	output     string
	*root
	fs *flag.FlagSet
}

func (n *newCmd) FlagSet() *flag.FlagSet {
	return n.fs
}

func parseNewCmd(args []string, r *root) (*newCmd, error) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	n := &newCmd{root: r.subcommand("new"), fs: fs}
	fs.Usage = usageFunc(n)
	cfg := n.settings()
	fs.IntVar(&n.width, "width", cfg.Canvas.Width, "canvas width in pixels")
	fs.IntVar(&n.height, "height", cfg.Canvas.Height, "canvas height in pixels")
	fs.StringVar(&n.background, "background", "", "background color name or hex value (defaults to the configured background)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: n}
	}
	n.output = fs.Arg(0)
	return n, nil
}

func (n *newCmd) Run() error {
	var opts []editor.Option
	if n.background != "" {
		bg, err := config.ParseColor(n.background)
		if err != nil {
			return err
		}
		opts = append(opts, editor.WithColors(n.settings().Tools.Foreground, bg))
	}
	s, err := n.newSession(opts...)
	if err != nil {
		return err
	}
	if err := s.CreateCanvas(n.width, n.height); err != nil {
		return err
	}
	if err := s.SaveCanvas(n.output); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "created %dx%d canvas %s\n", n.width, n.height, n.output)
	n.notifySave(n.output)
	return nil
}
