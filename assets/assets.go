package assets

import (
	"fmt"

	"storegen/palette"
	"storegen/raster"
)

type Asset struct {
	Name   string
	Width  int
	Height int
	Draw   func() *raster.Canvas
	// Icon marks the store icon, the source of the scaled icon variants.
	Icon bool
}

// Catalogue lists the store listing assets in generation order.
func Catalogue() []Asset {
	return []Asset{
		{Name: "icon128.png", Width: 128, Height: 128, Draw: storeIcon, Icon: true},
		{Name: "screenshot_1280x800.png", Width: 1280, Height: 800, Draw: screenshot},
		{Name: "promo_small_440x280.png", Width: 440, Height: 280, Draw: smallPromo},
		{Name: "promo_marquee_1400x560.png", Width: 1400, Height: 560, Draw: marqueePromo},
	}
}

func Names() []string {
	var res []string
	for _, a := range Catalogue() {
		res = append(res, a.Name)
	}
	return res
}

func Lookup(name string) (Asset, error) {
	for _, a := range Catalogue() {
		if a.Name == name {
			return a, nil
		}
	}
	return Asset{}, fmt.Errorf("unknown asset %q", name)
}

// textBlock stands in for a line of text: a pill of the given size.
func textBlock(cv *raster.Canvas, x, y, w, h int, c raster.Color) {
	cv.FillRoundedRect(float64(x), float64(y), float64(x+w), float64(y+h), float64(h/2), c)
}

func rect(cv *raster.Canvas, x1, y1, x2, y2 int, c raster.Color) {
	cv.FillRect(float64(x1), float64(y1), float64(x2), float64(y2), c)
}

func roundedRect(cv *raster.Canvas, x1, y1, x2, y2, r int, c raster.Color) {
	cv.FillRoundedRect(float64(x1), float64(y1), float64(x2), float64(y2), float64(r), c)
}

func circle(cv *raster.Canvas, cx, cy, r int, c raster.Color) {
	cv.FillCircle(float64(cx), float64(cy), float64(r), c)
}

func hline(cv *raster.Canvas, x1, x2, y int, c raster.Color) {
	cv.HLine(float64(x1), float64(x2), float64(y), c, 1)
}

func storeIcon() *raster.Canvas {
	cv := raster.NewCanvas(128, 128, palette.White)
	cv.Icon(64, 64, 56)
	return cv
}

func screenshot() *raster.Canvas {
	const w, h = 1280, 800
	cv := raster.NewCanvas(w, h, palette.LightGray)

	// header bar
	rect(cv, 0, 0, w, 60, palette.LinkedInBlue)

	const cardX, cardW, cardY, cardH = 200, 500, 100, 640
	roundedRect(cv, cardX, cardY, cardX+cardW, cardY+cardH, 12, palette.White)
	textBlock(cv, cardX+30, cardY+25, 160, 16, palette.TextDark)

	for i := range 5 {
		rowY := cardY + 70 + i*110
		circle(cv, cardX+55, rowY+30, 22, palette.Gray)
		textBlock(cv, cardX+90, rowY+15, 140, 12, palette.TextDark)
		textBlock(cv, cardX+90, rowY+35, 200, 10, palette.DarkGray)
		roundedRect(cv, cardX+350, rowY+15, cardX+440, rowY+45, 15, palette.LinkedInBlue)
		roundedRect(cv, cardX+290, rowY+15, cardX+340, rowY+45, 15, palette.Gray)
	}

	const popX, popW, popY, popH = 780, 320, 80, 480
	roundedRect(cv, popX+4, popY+4, popX+popW+4, popY+popH+4, 12, palette.Shadow)
	roundedRect(cv, popX, popY, popX+popW, popY+popH, 12, palette.White)

	textBlock(cv, popX+20, popY+20, 180, 16, palette.LinkedInBlue)
	textBlock(cv, popX+20, popY+55, 220, 10, palette.DarkGray)
	roundedRect(cv, popX+20, popY+85, popX+popW-20, popY+125, 22, palette.LinkedInBlue)

	// stats
	hline(cv, popX+20, popX+popW-20, popY+150, palette.Divider)
	textBlock(cv, popX+20, popY+165, 50, 11, palette.DarkGray)
	textBlock(cv, popX+20, popY+190, 70, 10, palette.TextDark)
	textBlock(cv, popX+250, popY+190, 30, 10, palette.LinkedInBlue)
	textBlock(cv, popX+20, popY+210, 60, 10, palette.TextDark)
	textBlock(cv, popX+250, popY+210, 25, 10, palette.LinkedInBlue)

	// recent
	textBlock(cv, popX+20, popY+240, 60, 11, palette.DarkGray)
	for i := range 6 {
		ry := popY + 265 + i*30
		textBlock(cv, popX+20, ry, 120, 10, palette.LinkedInBlue)
		textBlock(cv, popX+240, ry, 40, 8, palette.Timestamp)
		hline(cv, popX+20, popX+popW-20, ry+20, palette.RowDivider)
	}

	// toolbar icon
	cv.Icon(popX+popW/2, popY-15, 14)

	return cv
}

func smallPromo() *raster.Canvas {
	const w, h = 440, 280
	cv := raster.NewCanvas(w, h, palette.White)
	for y := range h {
		c := raster.Lerp(palette.LinkedInBlue, palette.DarkBlue, float64(y)/h)
		cv.HLine(0, w, float64(y), c, 1)
	}

	cv.Icon(220, 100, 50)

	textBlock(cv, 110, 175, 220, 16, palette.White)
	textBlock(cv, 100, 205, 240, 10, palette.Subtitle)
	textBlock(cv, 130, 225, 180, 10, palette.Subtitle)

	return cv
}

func marqueePromo() *raster.Canvas {
	const w, h = 1400, 560
	cv := raster.NewCanvas(w, h, palette.White)
	for y := range h {
		t := float64(y) / h
		left := raster.Lerp(palette.LinkedInBlue, palette.DarkBlue, t)
		right := raster.Lerp(palette.BrightBlue, palette.DarkBlue, t)
		for x := range w {
			cv.SetPixel(x, y, raster.Lerp(left, right, float64(x)/w))
		}
	}

	cv.Icon(350, 280, 120)

	textBlock(cv, 550, 180, 450, 28, palette.White)
	textBlock(cv, 550, 230, 520, 14, palette.Subtitle)
	textBlock(cv, 550, 260, 400, 14, palette.Subtitle)

	const bulletY = 310
	for i := range 3 {
		by := bulletY + i*40
		circle(cv, 565, by+6, 5, palette.White)
		textBlock(cv, 580, by, 300-i*30, 12, palette.Bullet)
	}

	return cv
}
