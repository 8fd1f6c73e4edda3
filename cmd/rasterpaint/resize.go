package main

import (
	"flag"
	"fmt"
	"os"
)

// resizeCmd scales an image file to a new size.
type resizeCmd struct {
	width  int
	height int
	file   string
	output string
	*root
	fs *flag.FlagSet
}

func (c *resizeCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseResizeCmd(args []string, r *root) (*resizeCmd, error) {
	fs := flag.NewFlagSet("resize", flag.ExitOnError)
	c := &resizeCmd{root: r.subcommand("resize"), fs: fs}
	fs.Usage = usageFunc(c)
	fs.IntVar(&c.width, "width", 0, "new width in pixels")
	fs.IntVar(&c.height, "height", 0, "new height in pixels")
	fs.StringVar(&c.output, "output", "", "output file path (defaults to input file)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: c}
	}
	if c.width <= 0 || c.height <= 0 {
		return nil, fmt.Errorf("-width and -height are required")
	}
	c.file = fs.Arg(0)
	if c.output == "" {
		c.output = c.file
	}
	return c, nil
}

func (c *resizeCmd) Run() error {
	s, err := c.newSession()
	if err != nil {
		return err
	}
	if err := s.LoadCanvas(c.file); err != nil {
		return err
	}
	if err := s.ResizeCanvas(c.width, c.height); err != nil {
		return err
	}
	if err := s.SaveCanvas(c.output); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "resized %s to %dx%d\n", c.output, c.width, c.height)
	c.notifySave(c.output)
	return nil
}
