package scheduler

import "time"

// Due reports which channels fired on an Advance. Weather is always
// evaluated before display within the same tick, so a redraw in the same
// tick as a fetch sees the fresh data.
type Due struct {
	Weather bool
	Display bool
}

// Scheduler tracks two independent countdown channels: time since the last
// weather fetch and time since the last display redraw. Each fires when its
// elapsed time reaches the configured interval and resets to zero on firing,
// regardless of whether the fired action succeeds.
type Scheduler struct {
	weatherEvery time.Duration
	displayEvery time.Duration

	sinceWeather time.Duration
	sinceDisplay time.Duration
}

// New builds a Scheduler. Both channels start freshly reset, as if the
// startup fetch and redraw had just happened.
func New(weatherEvery, displayEvery time.Duration) *Scheduler {
	return &Scheduler{
		weatherEvery: weatherEvery,
		displayEvery: displayEvery,
	}
}

// Advance accumulates elapsed time on both channels and reports which fired.
// The channels are fully independent: a weather fire never disturbs the
// display channel's schedule and vice versa.
func (s *Scheduler) Advance(elapsed time.Duration) Due {
	s.sinceWeather += elapsed
	s.sinceDisplay += elapsed

	var due Due
	if s.sinceWeather >= s.weatherEvery {
		due.Weather = true
		s.sinceWeather = 0
	}
	if s.sinceDisplay >= s.displayEvery {
		due.Display = true
		s.sinceDisplay = 0
	}
	return due
}
