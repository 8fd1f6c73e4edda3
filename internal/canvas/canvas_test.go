package canvas

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

var white = color.RGBA{255, 255, 255, 255}

func TestNewFillsBackground(t *testing.T) {
	c, err := New(4, 3, white)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Width() != 4 || c.Height() != 3 {
		t.Fatalf("unexpected size %dx%d", c.Width(), c.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := c.RGBA().RGBAAt(x, y); got != white {
				t.Fatalf("pixel (%d,%d) = %v, want white", x, y, got)
			}
		}
	}
}

func TestNewRejectsBadSizes(t *testing.T) {
	for _, tc := range []struct{ w, h int }{{0, 10}, {10, 0}, {-1, 5}, {MaxWidth + 1, 10}, {10, MaxHeight + 1}} {
		if _, err := New(tc.w, tc.h, white); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d,%d) error = %v, want ErrInvalidSize", tc.w, tc.h, err)
		}
	}
}

func TestEmptyCanvasRejectsMutation(t *testing.T) {
	c := Empty(white)
	if !c.IsEmpty() {
		t.Fatal("expected empty canvas")
	}
	if err := c.Clear(); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("Clear error = %v", err)
	}
	if _, err := c.Resize(10, 10); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("Resize error = %v", err)
	}
	if _, err := c.Sample(image.Pt(0, 0)); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("Sample error = %v", err)
	}
	var buf bytes.Buffer
	if err := c.Encode(&buf); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("Encode error = %v", err)
	}
}

func TestResizeSameSizeIsNoop(t *testing.T) {
	c, _ := New(100, 100, white)
	before := c.RGBA()
	changed, err := c.Resize(100, 100)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if changed {
		t.Fatal("expected no change")
	}
	if c.RGBA() != before {
		t.Fatal("buffer replaced on same-size resize")
	}
}

func TestResizeScalesContent(t *testing.T) {
	c, _ := New(2, 2, white)
	red := color.RGBA{255, 0, 0, 255}
	c.RGBA().SetRGBA(0, 0, red)
	changed, err := c.Resize(4, 6)
	if err != nil || !changed {
		t.Fatalf("Resize changed=%v err=%v", changed, err)
	}
	if c.Width() != 4 || c.Height() != 6 {
		t.Fatalf("size %dx%d", c.Width(), c.Height())
	}
	if got := c.RGBA().RGBAAt(1, 2); got != red {
		t.Errorf("top-left quadrant pixel = %v, want red", got)
	}
	if got := c.RGBA().RGBAAt(3, 5); got != white {
		t.Errorf("bottom-right pixel = %v, want white", got)
	}
}

func TestSampleOutOfBounds(t *testing.T) {
	c, _ := New(5, 5, white)
	if _, err := c.Sample(image.Pt(5, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("error = %v, want ErrOutOfBounds", err)
	}
	got, err := c.Sample(image.Pt(4, 4))
	if err != nil || got != white {
		t.Fatalf("Sample = %v, %v", got, err)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	c, _ := New(3, 3, white)
	snap := c.Snapshot()
	c.RGBA().SetRGBA(1, 1, color.RGBA{A: 255})
	if snap.RGBAAt(1, 1) != white {
		t.Fatal("snapshot aliased the live buffer")
	}
	if c.Equal(snap) {
		t.Fatal("Equal reported a match after mutation")
	}
	c.Restore(snap)
	if !c.Equal(snap) {
		t.Fatal("Restore did not bring back the snapshot")
	}
	c.RGBA().SetRGBA(0, 0, color.RGBA{A: 255})
	if snap.RGBAAt(0, 0) != white {
		t.Fatal("Restore aliased the snapshot")
	}
}

func TestRestoreChangesDimensions(t *testing.T) {
	c, _ := New(3, 3, white)
	other, _ := New(7, 2, white)
	c.Restore(other.Snapshot())
	if c.Width() != 7 || c.Height() != 2 {
		t.Fatalf("size %dx%d after restore", c.Width(), c.Height())
	}
}

func TestBitmapRoundTrip(t *testing.T) {
	c, _ := New(16, 9, white)
	for x := 0; x < 16; x++ {
		c.RGBA().SetRGBA(x, x%9, color.RGBA{uint8(x * 10), 40, 200, 255})
	}
	path := filepath.Join(t.TempDir(), "round.bmp")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path, white)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Equal(c.RGBA()) {
		t.Fatal("bitmap round trip changed pixels")
	}
}

func TestTranslucentBackgroundRoundTrip(t *testing.T) {
	c, err := New(4, 4, color.RGBA{128, 0, 0, 128})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Background(); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("background %v, want opaque red", got)
	}
	path := filepath.Join(t.TempDir(), "translucent.bmp")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path, white)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Equal(c.RGBA()) {
		t.Fatalf("saved %v loaded %v", c.RGBA().RGBAAt(0, 0), loaded.RGBA().RGBAAt(0, 0))
	}
}

func TestReplaceFlattensOntoBackground(t *testing.T) {
	c, _ := New(2, 2, white)
	src := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	src.SetNRGBA(6, 5, color.NRGBA{0, 0, 255, 255})
	c.Replace(src)
	if c.Width() != 3 || c.Height() != 2 {
		t.Fatalf("size %dx%d", c.Width(), c.Height())
	}
	if got := c.RGBA().RGBAAt(0, 0); got != white {
		t.Errorf("transparent pixel became %v", got)
	}
	if got := c.RGBA().RGBAAt(1, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("opaque pixel became %v", got)
	}

	c.SetBackground(color.RGBA{})
	if got := c.Background(); got != (color.RGBA{A: 255}) {
		t.Errorf("transparent background stored as %v", got)
	}
	if err := c.Fill(color.NRGBA{0, 255, 0, 10}); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if got := c.RGBA().RGBAAt(2, 1); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("fill left %v", got)
	}
}

func TestOpaque(t *testing.T) {
	cases := []struct {
		in   color.Color
		want color.RGBA
	}{
		{color.RGBA{10, 20, 30, 255}, color.RGBA{10, 20, 30, 255}},
		{color.RGBA{128, 0, 0, 128}, color.RGBA{255, 0, 0, 255}},
		{color.NRGBA{1, 2, 3, 4}, color.RGBA{1, 2, 3, 255}},
		{color.Transparent, color.RGBA{A: 255}},
	}
	for _, c := range cases {
		if got := Opaque(c.in); got != c.want {
			t.Errorf("Opaque(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not an image")), white); !errors.Is(err, ErrDecode) {
		t.Fatalf("error = %v, want ErrDecode", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.bmp"), white); !errors.Is(err, ErrDecode) {
		t.Fatalf("missing file error = %v, want ErrDecode", err)
	}
}
