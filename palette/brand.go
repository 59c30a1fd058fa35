package palette

import "storegen/raster"

var (
	LinkedInBlue = raster.Accent
	DarkBlue     = raster.Color{R: 0, G: 65, B: 130}
	BrightBlue   = raster.Color{R: 20, G: 120, B: 210}
	White        = raster.White
	LightGray    = raster.Color{R: 245, G: 245, B: 245}
	Gray         = raster.Color{R: 200, G: 200, B: 200}
	DarkGray     = raster.Color{R: 100, G: 100, B: 100}
	TextDark     = raster.Color{R: 51, G: 51, B: 51}
	Shadow       = raster.Color{R: 210, G: 210, B: 210}
	Divider      = raster.Color{R: 224, G: 224, B: 224}
	RowDivider   = raster.Color{R: 240, G: 240, B: 240}
	Timestamp    = raster.Color{R: 153, G: 153, B: 153}
	Subtitle     = raster.Color{R: 180, G: 210, B: 240}
	Bullet       = raster.Color{R: 220, G: 235, B: 250}
)

type Entry struct {
	Name  string
	Color raster.Color
}

// Brand lists every color the store assets paint with.
func Brand() []Entry {
	return []Entry{
		{"linkedin-blue", LinkedInBlue},
		{"dark-blue", DarkBlue},
		{"bright-blue", BrightBlue},
		{"white", White},
		{"light-gray", LightGray},
		{"gray", Gray},
		{"dark-gray", DarkGray},
		{"text-dark", TextDark},
		{"shadow", Shadow},
		{"divider", Divider},
		{"row-divider", RowDivider},
		{"timestamp", Timestamp},
		{"subtitle", Subtitle},
		{"bullet", Bullet},
	}
}

func Colors(entries []Entry) []raster.Color {
	res := make([]raster.Color, len(entries))
	for i, e := range entries {
		res[i] = e.Color
	}
	return res
}
