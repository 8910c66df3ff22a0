package scheduler

import (
	"context"
	"time"

	"github.com/openmatrix/ledweather/internal/display"
	"github.com/openmatrix/ledweather/internal/logger"
	"github.com/openmatrix/ledweather/internal/render"
	"github.com/openmatrix/ledweather/internal/weather"
)

// Loop is the single-threaded controller that owns the panel's only mutable
// state: the current reading and the refresh timers. Everything it calls is
// a collaborator passed in at construction.
type Loop struct {
	sched    *Scheduler
	provider weather.Provider
	clock    weather.Clock
	composer *render.Composer
	surface  display.Surface

	tick time.Duration

	// reading is nil until the first successful fetch; the composer renders
	// the "Loading..." sentinel for it.
	reading *weather.Reading

	// OnReading, when set, observes every successful fetch. Used to feed the
	// history store and the MQTT publisher without coupling them in here.
	OnReading func(weather.Reading)
}

// NewLoop wires the control loop. tick is the granularity of the scheduler;
// update cadences are owned by sched.
func NewLoop(sched *Scheduler, provider weather.Provider, clock weather.Clock, composer *render.Composer, surface display.Surface, tick time.Duration) *Loop {
	return &Loop{
		sched:    sched,
		provider: provider,
		clock:    clock,
		composer: composer,
		surface:  surface,
		tick:     tick,
	}
}

// Run performs the startup fetch and redraw, then ticks until the context is
// cancelled. The fetch call may block for as long as the provider allows;
// the redraw channel simply waits its turn, there is no concurrency here.
func (l *Loop) Run(ctx context.Context) {
	l.fetch(ctx)
	l.redraw()

	ticker := time.NewTicker(l.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("loop: shutting down")
			return
		case <-ticker.C:
			l.Tick(ctx, l.tick)
		}
	}
}

// Tick advances the refresh timers by elapsed and performs whatever became
// due. Weather is handled before display so a same-tick redraw composes
// from fresh data.
func (l *Loop) Tick(ctx context.Context, elapsed time.Duration) {
	due := l.sched.Advance(elapsed)
	if due.Weather {
		l.fetch(ctx)
	}
	if due.Display {
		l.redraw()
	}
}

// Reading returns a copy of the current reading, or nil before the first
// successful fetch.
func (l *Loop) Reading() *weather.Reading {
	if l.reading == nil {
		return nil
	}
	r := *l.reading
	return &r
}

// fetch replaces the current reading on success. On failure the prior
// reading is kept (stale-but-valid beats blank) and the next attempt waits
// for the normal cadence; the timer was already reset by Advance.
func (l *Loop) fetch(ctx context.Context) {
	r, err := l.provider.Fetch(ctx)
	if err != nil {
		logger.Warn("loop: %s fetch failed, keeping previous reading: %v", l.provider.Name(), err)
		return
	}

	r = r.Normalize()
	l.reading = &r
	logger.Info("loop: reading updated: %d°F %s", r.TemperatureF, r.Condition)

	if l.OnReading != nil {
		l.OnReading(r)
	}
}

func (l *Loop) redraw() {
	plan := l.composer.Compose(l.reading, l.clock.Now())
	if err := l.surface.Render(plan); err != nil {
		logger.Error("loop: render failed: %v", err)
	}
}
