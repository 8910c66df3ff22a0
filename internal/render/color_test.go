package render

import (
	"image/color"
	"testing"
)

func TestGradientClampsBelowAndAbove(t *testing.T) {
	lowest := DefaultGradient[0].Color
	highest := DefaultGradient[len(DefaultGradient)-1].Color

	for _, temp := range []int{-40, 0, 19, 20} {
		if got := DefaultGradient.At(temp); got != lowest {
			t.Errorf("At(%d) = %v, want lowest stop %v", temp, got, lowest)
		}
	}
	for _, temp := range []int{90, 91, 120} {
		if got := DefaultGradient.At(temp); got != highest {
			t.Errorf("At(%d) = %v, want highest stop %v", temp, got, highest)
		}
	}
}

func TestGradientRoundTripsAtStops(t *testing.T) {
	for _, stop := range DefaultGradient {
		if got := DefaultGradient.At(stop.ThresholdF); got != stop.Color {
			t.Errorf("At(%d) = %v, want exact stop color %v", stop.ThresholdF, got, stop.Color)
		}
	}
}

func TestGradientInterpolatesLinearly(t *testing.T) {
	// 60°F is halfway between the green (50) and yellow (70) stops.
	want := color.RGBA{0x80, 0xFF, 0x00, 0xFF}
	if got := DefaultGradient.At(60); got != want {
		t.Errorf("At(60) = %v, want %v", got, want)
	}

	// 40°F sits a third of the way from blue (35) to green (50).
	got := DefaultGradient.At(40)
	if got.R != 0 {
		t.Errorf("At(40).R = %d, want 0", got.R)
	}
	if got.G <= 0 || got.G >= 0xFF {
		t.Errorf("At(40).G = %d, want strictly between bounds", got.G)
	}
	if got.B <= 0 || got.B >= 0xFF {
		t.Errorf("At(40).B = %d, want strictly between bounds", got.B)
	}
}

func TestEmptyGradientFallsBackToWhite(t *testing.T) {
	var g Gradient
	if got := g.At(50); got != (color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Errorf("empty gradient should return white, got %v", got)
	}
}
