package render

import (
	"strings"
	"testing"

	"github.com/openmatrix/ledweather/internal/weather"
)

func testReading() weather.Reading {
	return weather.Reading{
		TemperatureF: 45,
		Condition:    weather.ConditionSnow,
		MinF:         40,
		MaxF:         60,
		Sunrise:      1000,
		Sunset:       2000,
	}
}

func TestComposeLoadingSentinel(t *testing.T) {
	c := NewComposer(DefaultGeometry())
	plan := c.Compose(nil, weather.ClockState{Epoch: 1500})

	if len(plan) != 1 {
		t.Fatalf("sentinel plan should have exactly 1 instruction, got %d", len(plan))
	}
	if plan[0].Op != OpText || plan[0].Text != "Loading..." {
		t.Errorf("sentinel instruction = %+v, want Loading... text", plan[0])
	}
}

func TestComposeFullPlan(t *testing.T) {
	c := NewComposer(DefaultGeometry())
	r := testReading()
	plan := c.Compose(&r, weather.ClockState{Epoch: 1500})

	var icons, texts, pixels int
	var sawTemp, sawClock bool
	for _, in := range plan {
		switch in.Op {
		case OpIcon:
			icons++
			if in.Icon != IconSnow {
				t.Errorf("icon = %q, want %q", in.Icon, IconSnow)
			}
		case OpText:
			texts++
			if strings.Contains(in.Text, "°F") {
				sawTemp = true
				if in.Color != DefaultGradient.At(45) {
					t.Errorf("temperature text color = %v, want gradient color %v", in.Color, DefaultGradient.At(45))
				}
			}
			if in.Text == "12:25" {
				sawClock = true
			}
		case OpPixel:
			pixels++
		}
	}

	if icons != 1 {
		t.Errorf("plan has %d icon instructions, want 1", icons)
	}
	if !sawTemp {
		t.Error("plan missing temperature text")
	}
	if !sawClock {
		t.Error("plan missing clock text (epoch 1500 -> 12:25)")
	}
	if pixels == 0 {
		t.Error("plan missing range bar / arc pixels")
	}
}

func TestComposeNightIcon(t *testing.T) {
	c := NewComposer(DefaultGeometry())
	r := testReading()
	r.Condition = weather.ConditionClear

	plan := c.Compose(&r, weather.ClockState{Epoch: 5000}) // past sunset
	for _, in := range plan {
		if in.Op == OpIcon && in.Icon != IconClearNight {
			t.Errorf("icon after sunset = %q, want %q", in.Icon, IconClearNight)
		}
	}
}

func TestComposeMalformedSunWindowOmitsGlow(t *testing.T) {
	geo := DefaultGeometry()
	c := NewComposer(geo)
	r := testReading()
	r.Sunrise, r.Sunset = 2000, 1000

	plan := c.Compose(&r, weather.ClockState{Epoch: 1500})
	for _, in := range plan {
		if in.Op == OpPixel && in.Color == sunOrange {
			t.Error("malformed sun window should not draw a sun point")
		}
	}
}

func TestComposeMarkerClampsToBar(t *testing.T) {
	geo := DefaultGeometry()
	c := NewComposer(geo)
	r := testReading()
	r.TemperatureF = 200 // Normalize clamps to MaxF

	plan := c.Compose(&r, weather.ClockState{Epoch: 1500})
	for _, in := range plan {
		if in.Op == OpPixel && in.Color == white {
			y := in.Y - geo.BarY
			if y < geo.BarTop || y > geo.BarBottom {
				t.Errorf("marker row %d outside bar rows %d..%d", y, geo.BarTop, geo.BarBottom)
			}
		}
	}
}

func TestComposePlanIsFreshEachCall(t *testing.T) {
	c := NewComposer(DefaultGeometry())
	r := testReading()

	a := c.Compose(&r, weather.ClockState{Epoch: 1500})
	b := c.Compose(&r, weather.ClockState{Epoch: 1500})
	if len(a) != len(b) {
		t.Fatalf("plans differ in length: %d vs %d", len(a), len(b))
	}
	a[0] = Instruction{}
	if b[0] == (Instruction{}) {
		t.Error("plans share backing storage; Compose must produce fresh output")
	}
}
