package output

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"storegen/pngenc"
	"storegen/raster"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var Formats = []string{"png", "bmp", "tiff"}

// Sink writes finished canvases into Dir, encoded as Format.
type Sink struct {
	Dir    string
	Format string
}

func (s *Sink) Prepare() error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", s.Dir, err)
	}
	return nil
}

// DestName swaps the extension of name for the sink's format.
func (s *Sink) DestName(name string) string {
	ext := filepath.Ext(name)
	return fmt.Sprintf("%s.%s", name[:len(name)-len(ext)], s.Format)
}

// Write encodes cv into a temporary file next to the destination and renames
// it into place once fully flushed. It returns the final path.
func (s *Sink) Write(name string, cv *raster.Canvas) (path string, err error) {
	destName := s.DestName(name)
	path = filepath.Join(s.Dir, destName)

	outFile, err := os.CreateTemp(s.Dir, "."+destName+"-*")
	if err != nil {
		return "", fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), path); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
		}

		if err != nil {
			if rmErr := os.Remove(outFile.Name()); rmErr != nil {
				slog.Error("could not remove temporary file", "name", outFile.Name(), "error", rmErr)
			}
			path = ""
		}
	}()

	switch s.Format {
	case "png":
		if err = pngenc.EncodeCanvas(outFile, cv); err != nil {
			return path, fmt.Errorf("could not encode PNG destination %q: %w", destName, err)
		}
	case "bmp":
		if err = bmp.Encode(outFile, cv); err != nil {
			return path, fmt.Errorf("could not encode BMP destination %q: %w", destName, err)
		}
	case "tiff":
		if err = tiff.Encode(outFile, cv, &tiff.Options{Compression: tiff.Deflate}); err != nil {
			return path, fmt.Errorf("could not encode TIFF destination %q: %w", destName, err)
		}
	default:
		return path, fmt.Errorf("unsupported output format: %s", s.Format)
	}

	canRename = true
	return path, nil
}

// WriteFile stores a raw byte stream produced elsewhere, with the same
// temporary file and rename dance as Write.
func (s *Sink) WriteFile(name string, data []byte) (string, error) {
	path := filepath.Join(s.Dir, name)

	outFile, err := os.CreateTemp(s.Dir, "."+name+"-*")
	if err != nil {
		return "", fmt.Errorf("could not create temporary destination %q: %w", name, err)
	}

	_, err = outFile.Write(data)
	if err == nil {
		err = outFile.Sync()
	}
	if closeErr := outFile.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(outFile.Name(), path)
	}
	if err != nil {
		if rmErr := os.Remove(outFile.Name()); rmErr != nil {
			slog.Error("could not remove temporary file", "name", outFile.Name(), "error", rmErr)
		}
		return "", fmt.Errorf("could not write destination %q: %w", name, err)
	}

	return path, nil
}
