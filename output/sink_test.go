package output

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"storegen/raster"

	"github.com/google/go-cmp/cmp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

func testCanvas() *raster.Canvas {
	cv := raster.NewCanvas(12, 9, raster.White)
	cv.FillRect(2, 2, 8, 6, raster.Accent)
	return cv
}

func TestWriteFormats(t *testing.T) {
	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			s := &Sink{Dir: filepath.Join(t.TempDir(), "store"), Format: format}
			if err := s.Prepare(); err != nil {
				t.Fatal(err)
			}

			path, err := s.Write("icon.png", testCanvas())
			if err != nil {
				t.Fatal(err)
			}
			if want := filepath.Join(s.Dir, "icon."+format); path != want {
				t.Errorf("Write() path = %q, want %q", path, want)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			img, kind, err := image.Decode(f)
			if err != nil {
				t.Fatal(err)
			}
			if kind != format {
				t.Errorf("decoded as %q, want %q", kind, format)
			}
			if d := cmp.Diff(testCanvas(), raster.FromImage(img)); d != "" {
				t.Errorf("pixels mismatch (-want +got):\n%s", d)
			}

			entries, err := os.ReadDir(s.Dir)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 1 {
				t.Errorf("%d entries left in destination, want 1", len(entries))
			}
		})
	}
}

func TestWriteOverwrites(t *testing.T) {
	s := &Sink{Dir: t.TempDir(), Format: "png"}
	if _, err := s.Write("a.png", raster.NewCanvas(2, 2, raster.White)); err != nil {
		t.Fatal(err)
	}
	path, err := s.Write("a.png", testCanvas())
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 12 || cfg.Height != 9 {
		t.Errorf("file holds %dx%d, want the second write", cfg.Width, cfg.Height)
	}
}

func TestWriteUnsupportedFormat(t *testing.T) {
	s := &Sink{Dir: t.TempDir(), Format: "gif"}
	if _, err := s.Write("a.png", testCanvas()); err == nil {
		t.Fatal("Write() succeeded for gif")
	}

	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("temporary file left behind: %v", entries[0].Name())
	}
}

func TestPrepareFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	s := &Sink{Dir: filepath.Join(blocker, "store"), Format: "png"}
	if err := s.Prepare(); err == nil {
		t.Errorf("Prepare() succeeded below a regular file")
	}
}

func TestWriteFile(t *testing.T) {
	s := &Sink{Dir: t.TempDir(), Format: "png"}
	path, err := s.WriteFile("brand.pal", []byte("data"))
	if err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "data" {
		t.Errorf("file content = %q", got)
	}
}
