package render

import (
	"fmt"
	"image/color"

	"github.com/openmatrix/ledweather/internal/weather"
)

var (
	white     = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	arcGray   = color.RGBA{0x44, 0x44, 0x44, 0xFF}
	sunOrange = color.RGBA{0xFF, 0xAA, 0x00, 0xFF}
)

// Composer turns weather state and clock state into a draw plan.
type Composer struct {
	Geometry Geometry
	Gradient Gradient
}

// NewComposer builds a composer with the given geometry and the default
// temperature gradient.
func NewComposer(geo Geometry) *Composer {
	return &Composer{Geometry: geo, Gradient: DefaultGradient}
}

// Compose is a pure function from (reading, clock, geometry) to a DrawPlan.
// A nil reading is the no-data-yet sentinel: the plan contains a single
// "Loading..." instruction and nothing else.
func (c *Composer) Compose(r *weather.Reading, clock weather.ClockState) DrawPlan {
	geo := c.Geometry

	if r == nil {
		return DrawPlan{text(geo.ClockX, geo.Height/2, "Loading...", white)}
	}

	rd := r.Normalize()
	night := clock.IsNight(rd)

	var plan DrawPlan

	// Weather icon at its fixed anchor.
	plan = append(plan, icon(geo.IconX, geo.IconY, IconFor(rd.Condition, night)))

	// Temperature text, colored along the gradient.
	tempColor := c.Gradient.At(rd.TemperatureF)
	plan = append(plan, text(geo.TempX, geo.TempY, fmt.Sprintf("%d°F", rd.TemperatureF), tempColor))

	// Vertical min..max range bar with the current-temp marker.
	plan = append(plan, c.rangeBar(rd)...)

	// Sun arc path, then the glow point so it paints over the path.
	plan = append(plan, c.sunPath(rd, clock)...)

	// Clock.
	plan = append(plan, text(geo.ClockX, geo.ClockY, clock.Text(), white))

	return plan
}

// rangeBar emits the gradient column spanning the daily min..max band with a
// white marker row at the current temperature's proportional position.
func (c *Composer) rangeBar(r weather.Reading) DrawPlan {
	geo := c.Geometry

	span := r.MaxF - r.MinF
	if span <= 0 {
		span = 1
	}
	rows := geo.BarBottom - geo.BarTop
	if rows <= 0 {
		rows = 1
	}
	scale := float64(rows) / float64(span)

	var plan DrawPlan
	for y := geo.BarTop; y <= geo.BarBottom; y++ {
		// Top row is the daily max, bottom row the daily min.
		rowTemp := float64(r.MaxF) - float64(y-geo.BarTop)/scale
		rowColor := c.Gradient.At(int(rowTemp + 0.5))
		for x := 0; x < geo.BarWidth; x++ {
			plan = append(plan, pixel(geo.BarX+x, geo.BarY+y, rowColor))
		}
	}

	markerY := geo.BarBottom - int(float64(r.TemperatureF-r.MinF)*scale+0.5)
	if markerY < geo.BarTop {
		markerY = geo.BarTop
	}
	if markerY > geo.BarBottom {
		markerY = geo.BarBottom
	}
	for x := 0; x < geo.BarWidth; x++ {
		plan = append(plan, pixel(geo.BarX+x, geo.BarY+markerY, white))
	}
	return plan
}

// sunPath emits the static arc followed by a 3x3 glow block at the computed
// sun position, its brightness scaled by proximity to solar noon.
func (c *Composer) sunPath(r weather.Reading, clock weather.ClockState) DrawPlan {
	geo := c.Geometry

	var plan DrawPlan
	for x := 0; x < geo.ArcWidth; x++ {
		y := ArcPathY(x, geo.ArcWidth)
		if y >= 0 && y < geo.ArcHeight {
			plan = append(plan, pixel(geo.ArcX+x, geo.ArcY+y, arcGray))
		}
	}

	arc := ComputeSunArc(clock.Epoch, r.Sunrise, r.Sunset, geo.ArcWidth)
	if !arc.Active {
		return plan
	}

	glow := scaleColor(sunOrange, 0.4+0.6*arc.Intensity)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := arc.X+dx, arc.Y+dy
			if x >= 0 && x < geo.ArcWidth && y >= 0 && y < geo.ArcHeight {
				plan = append(plan, pixel(geo.ArcX+x, geo.ArcY+y, glow))
			}
		}
	}
	plan = append(plan, pixel(geo.ArcX+arc.X, geo.ArcY+arc.Y, sunOrange))
	return plan
}

func scaleColor(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R)*f + 0.5),
		G: uint8(float64(c.G)*f + 0.5),
		B: uint8(float64(c.B)*f + 0.5),
		A: 0xFF,
	}
}
