package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `# comment
Name: Paper
Backdrop: #102030
StatusText: navy
Unknown: #FFFFFF
not a pair
`
	th, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "Paper" {
		t.Errorf("name %q", th.Name)
	}
	if want := (color.RGBA{0x10, 0x20, 0x30, 255}); th.Backdrop != want {
		t.Errorf("backdrop %v", th.Backdrop)
	}
	if want := (color.RGBA{0, 0, 128, 255}); th.StatusText != want {
		t.Errorf("status text %v", th.StatusText)
	}
	if th.StatusBackground != Default().StatusBackground {
		t.Errorf("unset key lost its default")
	}
}

func TestParseBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Backdrop: #12\n")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadEmbedded(t *testing.T) {
	l := &Loader{}
	for _, name := range []string{"dark", "high_contrast.theme"} {
		th, err := l.Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if th.Name == "Default" {
			t.Errorf("Load(%q) returned the default theme", name)
		}
	}
	th, err := l.Load("")
	if err != nil || th.Name != "Default" {
		t.Fatalf("Load(\"\") = %v, %v", th, err)
	}
}

func TestLoadSearchesConfigDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mine.theme"), []byte("Name: Mine\n"), 0644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: dir}
	th, err := l.Load("mine")
	if err != nil || th.Name != "Mine" {
		t.Fatalf("Load = %v, %v", th, err)
	}
	if _, err := l.Load("missing"); err == nil {
		t.Fatalf("expected error for a missing theme")
	}
}
