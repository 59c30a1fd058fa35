package raster

import "math"

var (
	Accent = Color{10, 102, 194}
	White  = Color{255, 255, 255}
)

func dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

// DistToSegment returns the distance from (px, py) to the closed segment
// between (x1, y1) and (x2, y2).
func DistToSegment(px, py, x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	if dx == 0 && dy == 0 {
		return dist(px, py, x1, y1)
	}

	t := ((px-x1)*dx + (py-y1)*dy) / (dx*dx + dy*dy)
	t = max(0, min(1, t))
	return dist(px, py, x1+t*dx, y1+t*dy)
}

// span clips the half-open interval [int(lo), int(hi)) to [0, limit).
func span(lo, hi float64, limit int) (int, int) {
	return max(0, int(lo)), min(limit, int(hi))
}

func (cv *Canvas) FillCircle(cx, cy, radius float64, c Color) {
	r2 := radius * radius
	y0, y1 := span(cy-radius-1, cy+radius+2, cv.Height)
	x0, x1 := span(cx-radius-1, cx+radius+2, cv.Width)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r2 {
				cv.Pix[y*cv.Width+x] = c
			}
		}
	}
}

// FillRect paints x in [x1, x2) and y in [y1, y2).
func (cv *Canvas) FillRect(x1, y1, x2, y2 float64, c Color) {
	ys, ye := span(y1, y2, cv.Height)
	xs, xe := span(x1, x2, cv.Width)

	for y := ys; y < ye; y++ {
		row := cv.Pix[y*cv.Width : (y+1)*cv.Width]
		for x := xs; x < xe; x++ {
			row[x] = c
		}
	}
}

// FillRoundedRect is FillRect with the corners cut to quarter circles. A cell
// outside the inner cross is dropped as soon as any of the four corner
// centres is farther than radius from it.
func (cv *Canvas) FillRoundedRect(x1, y1, x2, y2, radius float64, c Color) {
	centres := [4][2]float64{
		{x1 + radius, y1 + radius},
		{x2 - radius, y1 + radius},
		{x1 + radius, y2 - radius},
		{x2 - radius, y2 - radius},
	}

	ys, ye := span(y1, y2, cv.Height)
	xs, xe := span(x1, x2, cv.Width)

	for y := ys; y < ye; y++ {
		fy := float64(y)
		for x := xs; x < xe; x++ {
			fx := float64(x)
			corner := (fx < x1+radius || fx > x2-radius) && (fy < y1+radius || fy > y2-radius)

			inside := true
			if corner {
				for _, cc := range centres {
					if dist(fx, fy, cc[0], cc[1]) > radius {
						inside = false
						break
					}
				}
			}

			if inside {
				cv.Pix[y*cv.Width+x] = c
			}
		}
	}
}

// HLine paints a band thickness rows tall starting at row y, from x1 up to
// but excluding x2.
func (cv *Canvas) HLine(x1, x2, y float64, c Color, thickness int) {
	xs, xe := span(x1, x2, cv.Width)
	for dy := range thickness {
		yy := int(y) + dy
		if yy < 0 || yy >= cv.Height {
			continue
		}
		for x := xs; x < xe; x++ {
			cv.Pix[yy*cv.Width+x] = c
		}
	}
}

// Checkmark draws a two-stroke tick centred on (cx, cy), scaled by size.
func (cv *Canvas) Checkmark(cx, cy, size float64, c Color, thickness float64) {
	lx, ly := cx-size*0.22, cy+size*0.02
	bx, by := cx-size*0.05, cy+size*0.22
	rx, ry := cx+size*0.28, cy-size*0.2

	for y := int(cy - size*0.3); y < int(cy+size*0.35); y++ {
		if y < 0 || y >= cv.Height {
			continue
		}
		for x := int(cx - size*0.35); x < int(cx+size*0.4); x++ {
			if x < 0 || x >= cv.Width {
				continue
			}

			fx, fy := float64(x), float64(y)
			d1 := DistToSegment(fx, fy, lx, ly, bx, by)
			d2 := DistToSegment(fx, fy, bx, by, rx, ry)
			if min(d1, d2) < thickness {
				cv.Pix[y*cv.Width+x] = c
			}
		}
	}
}

// Icon draws the extension logo: an accent disc with a white tick.
func (cv *Canvas) Icon(cx, cy, radius float64) {
	cv.FillCircle(cx, cy, radius, Accent)
	cv.Checkmark(cx, cy, radius*1.1, White, radius*0.12)
}
