package weather

import (
	"fmt"
	"time"
)

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown      Condition = "unknown"
	ConditionClear        Condition = "clear"
	ConditionPartlyCloudy Condition = "partly-cloudy"
	ConditionCloudy       Condition = "cloudy"
	ConditionRain         Condition = "rain"
	ConditionSnow         Condition = "snow"
	ConditionStorm        Condition = "thunderstorm"
	ConditionMist         Condition = "mist"
)

// Reading is one fetched snapshot of weather fields. It is immutable once
// constructed and replaced wholesale on each successful fetch.
type Reading struct {
	TemperatureF int       `json:"temperatureF"`
	Condition    Condition `json:"condition"`
	MinF         int       `json:"minF"`
	MaxF         int       `json:"maxF"`
	Sunrise      int64     `json:"sunrise"` // epoch seconds
	Sunset       int64     `json:"sunset"`  // epoch seconds
	FetchedAt    time.Time `json:"fetchedAt"`
}

// Normalize repairs malformed field combinations instead of failing:
// an inverted min/max pair is swapped, and the current temperature is
// clamped into [MinF, MaxF] when both bounds are set.
func (r Reading) Normalize() Reading {
	if r.MinF > r.MaxF {
		r.MinF, r.MaxF = r.MaxF, r.MinF
	}
	if r.MinF != 0 || r.MaxF != 0 {
		if r.TemperatureF < r.MinF {
			r.TemperatureF = r.MinF
		}
		if r.TemperatureF > r.MaxF {
			r.TemperatureF = r.MaxF
		}
	}
	return r
}

// ClockState is the output of the time collaborator: current epoch seconds
// plus the fixed UTC offset applied by configuration.
type ClockState struct {
	Epoch  int64
	Offset time.Duration
}

// LocalEpoch returns the epoch shifted into the configured local zone.
func (c ClockState) LocalEpoch() int64 {
	return c.Epoch + int64(c.Offset/time.Second)
}

// HourMinute returns the local 24-hour clock components.
func (c ClockState) HourMinute() (int, int) {
	secOfDay := c.LocalEpoch() % 86400
	if secOfDay < 0 {
		secOfDay += 86400
	}
	return int(secOfDay / 3600), int(secOfDay % 3600 / 60)
}

// Text formats the local time as a 12-hour "hh:mm" string.
func (c ClockState) Text() string {
	hour, minute := c.HourMinute()
	display := hour
	if display > 12 {
		display -= 12
	}
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%02d:%02d", display, minute)
}

// IsNight reports whether the clock sits outside the reading's
// sunrise..sunset window. A reading without a valid window counts as day.
func (c ClockState) IsNight(r Reading) bool {
	if r.Sunset <= r.Sunrise {
		return false
	}
	return c.Epoch < r.Sunrise || c.Epoch > r.Sunset
}

// Clock abstracts the time source so the control loop can be driven
// deterministically in tests.
type Clock interface {
	Now() ClockState
}

// SystemClock reads the wall clock and applies a fixed UTC offset.
type SystemClock struct {
	Offset time.Duration
}

func (s SystemClock) Now() ClockState {
	return ClockState{Epoch: time.Now().Unix(), Offset: s.Offset}
}
