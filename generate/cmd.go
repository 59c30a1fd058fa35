package generate

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"storegen/assets"
	"storegen/output"
	"storegen/parallel"
	"storegen/raster"

	"github.com/alecthomas/kong"
)

// Vars feeds the enum tags below; bind it with kong.Parse.
func Vars() kong.Vars {
	return kong.Vars{
		"formats": strings.Join(output.Formats, ","),
	}
}

type CLICmd struct {
	Out       string   `help:"Destination folder for the generated assets" default:"store"`
	Format    string   `help:"Output format (${enum})" enum:"${formats}" default:"png"`
	Only      []string `help:"Generate only the named assets (e.g. icon128.png)"`
	IconSizes []int    `help:"Also write the store icon scaled to these sizes" name:"icon-sizes"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid destination path %q: %w", c.Out, err)
	}
	c.Out = out

	if _, err := c.selected(); err != nil {
		return fmt.Errorf("%w, expected one of %v", err, assets.Names())
	}

	for _, size := range c.IconSizes {
		if size <= 0 {
			return fmt.Errorf("invalid icon size: %d", size)
		}
	}

	return nil
}

func (c *CLICmd) selected() ([]assets.Asset, error) {
	if len(c.Only) == 0 {
		return assets.Catalogue(), nil
	}

	var res []assets.Asset
	for _, name := range c.Only {
		a, err := assets.Lookup(name)
		if err != nil {
			return nil, err
		}
		if !slices.ContainsFunc(res, func(s assets.Asset) bool { return s.Name == a.Name }) {
			res = append(res, a)
		}
	}
	return res, nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	selected, err := c.selected()
	if err != nil {
		return err
	}

	sink := &output.Sink{Dir: c.Out, Format: c.Format}
	if err := sink.Prepare(); err != nil {
		return err
	}

	slog.Info("generating store assets", "dir", c.Out, "format", c.Format)

	for _, a := range selected {
		pool.Do(func() error {
			logger := slog.Default().With("asset", a.Name)

			cv := a.Draw()
			path, err := sink.Write(a.Name, cv)
			if err != nil {
				logger.Error("could not save asset", "dir", c.Out, "error", err)
				return err
			}
			logger.Info("written", "file", path, "width", cv.Width, "height", cv.Height)

			if a.Icon && len(c.IconSizes) > 0 {
				return writeVariants(logger, sink, cv, c.IconSizes)
			}
			return nil
		})
	}

	processed, errCount := pool.Wait(true)
	slog.Info("stats", "processed", processed, "errors", errCount,
		"total", processed+errCount)

	if errCount > 0 {
		return fmt.Errorf("error generating %d assets", errCount)
	}
	return nil
}

func writeVariants(logger *slog.Logger, sink *output.Sink, icon *raster.Canvas, sizes []int) error {
	var errs []error
	for _, size := range sizes {
		variant, err := assets.IconVariant(logger, icon, size)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		path, err := sink.Write(assets.VariantName(size), variant)
		if err != nil {
			logger.Error("could not save icon variant", "size", size, "error", err)
			errs = append(errs, err)
			continue
		}
		logger.Info("written", "file", path, "width", size, "height", size)
	}

	return errors.Join(errs...)
}
