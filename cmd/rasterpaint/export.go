package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/rasterpaint/internal/canvas"
	"github.com/example/rasterpaint/internal/export"
)

// exportCmd writes an image file into a PDF document.
type exportCmd struct {
	file   string
	output string
	title  string
	author string
	*root
	fs *flag.FlagSet
}

func (e *exportCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func parseExportCmd(args []string, r *root) (*exportCmd, error) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	e := &exportCmd{root: r.subcommand("export"), fs: fs}
	fs.Usage = usageFunc(e)
	fs.StringVar(&e.output, "output", "", "PDF path (defaults to the input name with a .pdf extension)")
	fs.StringVar(&e.title, "title", "", "document title (defaults to the input file name)")
	fs.StringVar(&e.author, "author", "", "document author")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: e}
	}
	e.file = fs.Arg(0)
	if e.output == "" {
		e.output = strings.TrimSuffix(e.file, filepath.Ext(e.file)) + ".pdf"
	}
	if e.title == "" {
		e.title = filepath.Base(e.file)
	}
	return e, nil
}

func (e *exportCmd) Run() error {
	c, err := canvas.Load(e.file, e.settings().Canvas.Background)
	if err != nil {
		return fmt.Errorf("load %s: %w", e.file, err)
	}
	opts := export.PDFOptions{Title: e.title, Author: e.author}
	if err := export.SavePDF(e.output, c.RGBA(), opts); err != nil {
		return fmt.Errorf("export %s: %w", e.output, err)
	}
	fmt.Fprintf(os.Stderr, "exported %s\n", e.output)
	e.notifyExport(e.output)
	return nil
}
