package display

import (
	"image"
	"image/color"

	"github.com/openmatrix/ledweather/internal/render"
)

// Icon sprites are 8x8 tiles standing in for the classic 16x16 bitmap icon
// sheet. '.' is transparent, '*' the primary color, '+' the accent.
type sprite struct {
	primary color.RGBA
	accent  color.RGBA
	rows    [8]string
}

var (
	sunYellow  = color.RGBA{0xFF, 0xD7, 0x00, 0xFF}
	moonBlue   = color.RGBA{0xB0, 0xC4, 0xDE, 0xFF}
	cloudGray  = color.RGBA{0xAA, 0xAA, 0xAA, 0xFF}
	rainBlue   = color.RGBA{0x40, 0x80, 0xFF, 0xFF}
	snowWhite  = color.RGBA{0xF0, 0xF8, 0xFF, 0xFF}
	boltYellow = color.RGBA{0xFF, 0xFF, 0x33, 0xFF}
	mistGray   = color.RGBA{0x88, 0x88, 0x99, 0xFF}
	darkGray   = color.RGBA{0x55, 0x55, 0x55, 0xFF}
)

var sprites = map[render.Icon]sprite{
	render.IconClearDay: {
		primary: sunYellow,
		rows: [8]string{
			"..*..*..",
			".*....*.",
			"..****..",
			".******.",
			".******.",
			"..****..",
			".*....*.",
			"..*..*..",
		},
	},
	render.IconClearNight: {
		primary: moonBlue,
		rows: [8]string{
			"...***..",
			"..**....",
			".**.....",
			".**.....",
			".**.....",
			".**.....",
			"..**....",
			"...***..",
		},
	},
	render.IconPartlyCloudyDay: {
		primary: cloudGray,
		accent:  sunYellow,
		rows: [8]string{
			".....++.",
			"....++++",
			".....++.",
			"..***...",
			".*****..",
			"********",
			"********",
			".******.",
		},
	},
	render.IconPartlyCloudyNight: {
		primary: cloudGray,
		accent:  moonBlue,
		rows: [8]string{
			"......++",
			".....++.",
			".....++.",
			"..***.++",
			".*****..",
			"********",
			"********",
			".******.",
		},
	},
	render.IconCloudy: {
		primary: cloudGray,
		accent:  darkGray,
		rows: [8]string{
			"........",
			"..***...",
			".*****..",
			"********",
			"********",
			".++++++.",
			"..++++..",
			"........",
		},
	},
	render.IconRain: {
		primary: cloudGray,
		accent:  rainBlue,
		rows: [8]string{
			"..***...",
			".*****..",
			"********",
			".******.",
			"........",
			".+..+..+",
			"+..+..+.",
			".+..+..+",
		},
	},
	render.IconSnow: {
		primary: cloudGray,
		accent:  snowWhite,
		rows: [8]string{
			"..***...",
			".*****..",
			"********",
			".******.",
			"........",
			".+.+.+..",
			"..+.+.+.",
			".+.+.+..",
		},
	},
	render.IconThunderstorm: {
		primary: darkGray,
		accent:  boltYellow,
		rows: [8]string{
			"..***...",
			".*****..",
			"********",
			".******.",
			"...++...",
			"..++....",
			"...++...",
			"..++....",
		},
	},
	render.IconMist: {
		primary: mistGray,
		rows: [8]string{
			"........",
			".******.",
			"........",
			"..******",
			"........",
			"******..",
			"........",
			".******.",
		},
	},
	render.IconUnknown: {
		primary: darkGray,
		rows: [8]string{
			"..****..",
			".*....*.",
			"......*.",
			".....*..",
			"....*...",
			"....*...",
			"........",
			"....*...",
		},
	},
}

func drawSprite(img *image.RGBA, x, y int, ic render.Icon) {
	sp, ok := sprites[ic]
	if !ok {
		sp = sprites[render.IconUnknown]
	}
	for dy, row := range sp.rows {
		for dx := 0; dx < len(row); dx++ {
			switch row[dx] {
			case '*':
				setPixel(img, x+dx, y+dy, sp.primary)
			case '+':
				setPixel(img, x+dx, y+dy, sp.accent)
			}
		}
	}
}
