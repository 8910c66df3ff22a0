package weather

import (
	"testing"
	"time"
)

func TestNormalizeClampsIntoDailyRange(t *testing.T) {
	r := Reading{TemperatureF: 95, MinF: 40, MaxF: 60}.Normalize()
	if r.TemperatureF != 60 {
		t.Errorf("expected temperature clamped to 60, got %d", r.TemperatureF)
	}

	r = Reading{TemperatureF: 12, MinF: 40, MaxF: 60}.Normalize()
	if r.TemperatureF != 40 {
		t.Errorf("expected temperature clamped to 40, got %d", r.TemperatureF)
	}
}

func TestNormalizeSwapsInvertedRange(t *testing.T) {
	r := Reading{TemperatureF: 50, MinF: 60, MaxF: 40}.Normalize()
	if r.MinF != 40 || r.MaxF != 60 {
		t.Errorf("expected min/max swapped to 40/60, got %d/%d", r.MinF, r.MaxF)
	}
	if r.TemperatureF != 50 {
		t.Errorf("in-range temperature should be untouched, got %d", r.TemperatureF)
	}
}

func TestNormalizeLeavesUnknownRangeAlone(t *testing.T) {
	r := Reading{TemperatureF: -20}.Normalize()
	if r.TemperatureF != -20 {
		t.Errorf("no bounds known: temperature should pass through, got %d", r.TemperatureF)
	}
}

func TestClockText(t *testing.T) {
	tests := []struct {
		name   string
		epoch  int64
		offset time.Duration
		want   string
	}{
		{"midnight shows 12", 0, 0, "12:00"},
		{"noon shows 12", 12 * 3600, 0, "12:00"},
		{"afternoon wraps", 15*3600 + 42*60, 0, "03:42"},
		{"offset applied", 20 * 3600, -5 * time.Hour, "03:00"},
		{"negative local wraps to previous day", 2 * 3600, -5 * time.Hour, "09:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ClockState{Epoch: tt.epoch, Offset: tt.offset}
			if got := c.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsNight(t *testing.T) {
	r := Reading{Sunrise: 1000, Sunset: 2000}

	if (ClockState{Epoch: 1500}).IsNight(r) {
		t.Error("epoch inside sunrise..sunset should be day")
	}
	if !(ClockState{Epoch: 500}).IsNight(r) {
		t.Error("epoch before sunrise should be night")
	}
	if !(ClockState{Epoch: 2500}).IsNight(r) {
		t.Error("epoch after sunset should be night")
	}

	// Malformed window defaults to day rather than guessing.
	bad := Reading{Sunrise: 2000, Sunset: 1000}
	if (ClockState{Epoch: 0}).IsNight(bad) {
		t.Error("inverted sunrise/sunset should count as day")
	}
}
