package render

import "image/color"

// Op identifies a primitive draw instruction.
type Op uint8

const (
	// OpPixel sets a single pixel.
	OpPixel Op = iota
	// OpText draws a text string anchored at X,Y.
	OpText
	// OpIcon draws a weather icon tile anchored at X,Y.
	OpIcon
)

// Instruction is one primitive visual operation consumed by the display
// surface. Later instructions paint over earlier ones at the same pixel.
type Instruction struct {
	Op    Op
	X, Y  int
	Color color.RGBA
	Text  string
	Icon  Icon
}

// DrawPlan is the ordered sequence of instructions for one redraw. It is
// produced fresh each redraw and never retained.
type DrawPlan []Instruction

func pixel(x, y int, c color.RGBA) Instruction {
	return Instruction{Op: OpPixel, X: x, Y: y, Color: c}
}

func text(x, y int, s string, c color.RGBA) Instruction {
	return Instruction{Op: OpText, X: x, Y: y, Text: s, Color: c}
}

func icon(x, y int, ic Icon) Instruction {
	return Instruction{Op: OpIcon, X: x, Y: y, Icon: ic}
}

// Geometry fixes the pixel layout of the panel. Values mirror the 64x32
// HUB75 layout the display was designed around.
type Geometry struct {
	Width  int
	Height int

	IconX, IconY   int
	ClockX, ClockY int
	TempX, TempY   int

	// Temperature range bar: a BarWidth-wide column whose gradient rows run
	// from BarTop to BarBottom inclusive, anchored at BarX,BarY.
	BarX, BarY        int
	BarWidth          int
	BarTop, BarBottom int

	// Sun arc box, anchored at ArcX,ArcY.
	ArcX, ArcY          int
	ArcWidth, ArcHeight int
}

// DefaultGeometry returns the layout for a 64x32 matrix.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:  64,
		Height: 32,

		IconX:  44,
		IconY:  0,
		ClockX: 2,
		ClockY: 6,
		TempX:  5,
		TempY:  23,

		BarX:      2,
		BarY:      16,
		BarWidth:  2,
		BarTop:    2,
		BarBottom: 13,

		ArcX:      42,
		ArcY:      22,
		ArcWidth:  20,
		ArcHeight: 16,
	}
}
