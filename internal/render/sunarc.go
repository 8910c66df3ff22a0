package render

import "math"

// SunArc is the computed sun position between sunrise and sunset.
type SunArc struct {
	// Progress is the normalized [0,1] position between sunrise and sunset.
	Progress float64
	// Active is false when the sunrise/sunset window is malformed or the
	// sun is outside it; the sun point is not drawn then.
	Active bool
	// X, Y is the sun pixel inside the arc box.
	X, Y int
	// Intensity peaks at solar noon and feeds the glow brightness.
	Intensity float64
}

const (
	arcBaseY = 8
	arcAmp   = 6
	arcRaise = 2
	arcMinY  = 2
)

// ComputeSunArc maps (now, sunrise, sunset) onto a half-ellipse spanning
// width pixels. A window with sunset <= sunrise is malformed; it yields
// progress 0 and an inactive arc instead of a division by zero.
func ComputeSunArc(now, sunrise, sunset int64, width int) SunArc {
	if width < 2 {
		width = 2
	}
	if sunset <= sunrise {
		return SunArc{Progress: 0, Active: false}
	}

	p := float64(now-sunrise) / float64(sunset-sunrise)
	inWindow := p >= 0 && p <= 1
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	x := int(p*float64(width-1) + 0.5)
	theta := math.Pi * (1 - p)
	y := arcBaseY - int(float64(arcAmp)*math.Sin(theta)+0.5)
	// Lift the sun above the arc path, keeping clear of the box top.
	y -= arcRaise
	if y < arcMinY {
		y = arcMinY
	}

	return SunArc{
		Progress:  p,
		Active:    inWindow,
		X:         x,
		Y:         y,
		Intensity: math.Sin(math.Pi * p),
	}
}

// ArcPathY returns the arc row for column x of a width-wide arc box.
func ArcPathY(x, width int) int {
	if width < 2 {
		width = 2
	}
	return arcBaseY - int(float64(arcAmp)*math.Sin(math.Pi*float64(x)/float64(width-1))+0.5)
}
