package generate

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"

	"storegen/output"
	"storegen/palette"

	"github.com/alecthomas/kong"
)

type PaletteCmd struct {
	Out  string `help:"Destination folder for the palette file" default:"store"`
	Name string `help:"Palette file name" default:"brand.pal"`
}

func (c *PaletteCmd) Validate(kctx *kong.Context) error {
	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid destination path %q: %w", c.Out, err)
	}
	c.Out = out

	if c.Name == "" || filepath.Base(c.Name) != c.Name {
		return fmt.Errorf("invalid palette file name %q", c.Name)
	}
	return nil
}

func (c *PaletteCmd) Run() error {
	sink := &output.Sink{Dir: c.Out}
	if err := sink.Prepare(); err != nil {
		return err
	}

	entries := palette.Brand()
	var buf bytes.Buffer
	if _, err := palette.WriteRIFF(&buf, palette.Colors(entries)); err != nil {
		return fmt.Errorf("could not encode palette: %w", err)
	}

	path, err := sink.WriteFile(c.Name, buf.Bytes())
	if err != nil {
		return err
	}

	for i, e := range entries {
		slog.Debug("palette entry", "index", i, "name", e.Name,
			"hex", fmt.Sprintf("#%02x%02x%02x", e.Color.R, e.Color.G, e.Color.B))
	}
	slog.Info("written", "file", path, "colors", len(entries))
	return nil
}
