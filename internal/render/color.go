package render

import "image/color"

// ColorStop pairs a temperature threshold (°F) with the color the gradient
// passes through at that temperature. Stops must be ordered by ascending
// threshold.
type ColorStop struct {
	ThresholdF int
	Color      color.RGBA
}

// Gradient is an ordered sequence of color stops.
type Gradient []ColorStop

// DefaultGradient runs purple -> blue -> green -> yellow -> dark red across
// the 20..90°F band the panel was tuned for.
var DefaultGradient = Gradient{
	{20, color.RGBA{0x80, 0x00, 0x80, 0xFF}},
	{35, color.RGBA{0x00, 0x00, 0xFF, 0xFF}},
	{50, color.RGBA{0x00, 0xFF, 0x00, 0xFF}},
	{70, color.RGBA{0xFF, 0xFF, 0x00, 0xFF}},
	{90, color.RGBA{0x80, 0x00, 0x00, 0xFF}},
}

// At maps a temperature to a color by linear interpolation between the two
// bounding stops. Temperatures outside the stop range clamp to the first or
// last stop's color. It never fails.
func (g Gradient) At(tempF int) color.RGBA {
	if len(g) == 0 {
		return color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	}
	if tempF <= g[0].ThresholdF {
		return g[0].Color
	}
	last := g[len(g)-1]
	if tempF >= last.ThresholdF {
		return last.Color
	}

	for i := 0; i < len(g)-1; i++ {
		lo, hi := g[i], g[i+1]
		if tempF >= lo.ThresholdF && tempF < hi.ThresholdF {
			ratio := float64(tempF-lo.ThresholdF) / float64(hi.ThresholdF-lo.ThresholdF)
			return color.RGBA{
				R: lerp(lo.Color.R, hi.Color.R, ratio),
				G: lerp(lo.Color.G, hi.Color.G, ratio),
				B: lerp(lo.Color.B, hi.Color.B, ratio),
				A: 0xFF,
			}
		}
	}
	return last.Color
}

func lerp(a, b uint8, ratio float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*ratio + 0.5)
}
