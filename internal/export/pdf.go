// Package export writes the canvas into document formats.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// ErrNoPixels is returned when there is nothing to export.
var ErrNoPixels = errors.New("export: image has no pixels")

// pointsPerPixel maps canvas pixels to PDF points at 96 dpi.
const pointsPerPixel = 72.0 / 96.0

// PDFOptions controls the generated document.
type PDFOptions struct {
	Title  string
	Author string
}

func newPDF(img image.Image, opts PDFOptions) (*gofpdf.Fpdf, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrNoPixels
	}
	w := float64(b.Dx()) * pointsPerPixel
	h := float64(b.Dy()) * pointsPerPixel
	// Portrait keeps Wd and Ht as given; the page itself may be wider than tall.
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	if opts.Title != "" {
		p.SetTitle(opts.Title, true)
	}
	if opts.Author != "" {
		p.SetAuthor(opts.Author, true)
	}
	p.AddPage()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("export: encode page image: %w", err)
	}
	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("canvas", imgOpts, &buf)
	p.ImageOptions("canvas", 0, 0, w, h, false, imgOpts, 0, "")
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return p, nil
}

// WritePDF writes img as a single page PDF sized to the image.
func WritePDF(w io.Writer, img image.Image, opts PDFOptions) error {
	p, err := newPDF(img, opts)
	if err != nil {
		return err
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// SavePDF writes img as a single page PDF at path.
func SavePDF(path string, img image.Image, opts PDFOptions) error {
	p, err := newPDF(img, opts)
	if err != nil {
		return err
	}
	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
