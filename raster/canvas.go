package raster

import (
	"image"
	"image/color"
)

// Color is an opaque 8-bit per channel RGB color.
type Color struct {
	R, G, B uint8
}

func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	r, g, b := uint32(c.R), uint32(c.G), uint32(c.B)
	return r | r<<8, g | g<<8, b | b<<8, 0xFFFF
}

var ColorModel = color.ModelFunc(colorConvert)

func colorConvert(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}

	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

type Canvas struct {
	// Pix holds the pixels in row-major order. The pixel at (x, y) is
	// Pix[y*Width+x]; len(Pix) is always Width*Height.
	Pix    []Color
	Width  int
	Height int
}

var _ image.Image = &Canvas{}

// NewCanvas allocates a w x h canvas filled with bg.
func NewCanvas(w, h int, bg Color) *Canvas {
	pix := make([]Color, w*h)
	for i := range pix {
		pix[i] = bg
	}

	return &Canvas{
		Pix:    pix,
		Width:  w,
		Height: h,
	}
}

// FromImage copies img into a new canvas, dropping alpha.
func FromImage(img image.Image) *Canvas {
	b := img.Bounds()
	c := &Canvas{
		Pix:    make([]Color, b.Dx()*b.Dy()),
		Width:  b.Dx(),
		Height: b.Dy(),
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c.Pix[(y-b.Min.Y)*c.Width+(x-b.Min.X)] = colorConvert(img.At(x, y)).(Color)
		}
	}

	return c
}

// SetPixel writes c at (x, y). The caller guarantees the coordinates are
// inside the canvas.
func (cv *Canvas) SetPixel(x, y int, c Color) {
	cv.Pix[y*cv.Width+x] = c
}

func (cv *Canvas) Pixel(x, y int) Color {
	return cv.Pix[y*cv.Width+x]
}

func (cv *Canvas) ColorModel() color.Model {
	return ColorModel
}

func (cv *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, cv.Width, cv.Height)
}

// Opaque reports true; canvases carry no alpha.
func (cv *Canvas) Opaque() bool {
	return true
}

func (cv *Canvas) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(cv.Bounds())) {
		return Color{}
	}
	return cv.Pix[y*cv.Width+x]
}

// Lerp interpolates each channel as c1 + (c2-c1)*t, truncated toward zero.
// The result is undefined for t outside [0, 1].
func Lerp(c1, c2 Color, t float64) Color {
	ch := func(a, b uint8) uint8 {
		return uint8(int(float64(a) + (float64(b)-float64(a))*t))
	}

	return Color{
		R: ch(c1.R, c2.R),
		G: ch(c1.G, c2.G),
		B: ch(c1.B, c2.B),
	}
}
