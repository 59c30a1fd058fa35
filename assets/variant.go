package assets

import (
	"fmt"
	"image"
	"log/slog"

	"storegen/raster"

	"golang.org/x/image/draw"
)

// IconVariant scales src down to a size x size square. Non-square sources are
// centre-cropped first.
func IconVariant(logger *slog.Logger, src image.Image, size int) (*raster.Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size: %d", size)
	}

	srcBounds := src.Bounds()
	if dw := srcBounds.Dx() - srcBounds.Dy(); dw > 0 {
		srcBounds.Min.X += dw / 2
		srcBounds.Max.X -= dw - dw/2
	} else if dh := -dw; dh > 0 {
		srcBounds.Min.Y += dh / 2
		srcBounds.Max.Y -= dh - dh/2
	}

	logger.Debug("scaling icon", "from", srcBounds.Dx(), "to", size)
	dest := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dest, dest.Bounds(), src, srcBounds, draw.Src, nil)

	return raster.FromImage(dest), nil
}

func VariantName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}
