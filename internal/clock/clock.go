// Package clock paces the painter's update loop toward a fixed frame time.
//
// The clock keeps the last two observed tick deltas and sleeps for whatever is
// left of the frame target after their average. It is a best-effort throttle:
// scheduler jitter and the cost of the sleep itself are not compensated, so
// the observed cadence drifts from the nominal target.
package clock

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Defaults for New.
const (
	DefaultFrameTarget = 30 * time.Millisecond
	DefaultReportEvery = 15
)

// Clock tracks lifetime since creation and the delta between ticks.
// It is not safe for concurrent use; one clock belongs to one loop.
type Clock struct {
	created  time.Time
	lifetime time.Duration
	deltas   [2]time.Duration
	ticks    uint64

	target      time.Duration
	reportEvery uint64
	logger      *log.Logger
	now         func() time.Time
	sleep       func(time.Duration)
}

// Option configures a Clock.
type Option func(*Clock)

// WithFrameTarget sets the frame time Pace aims for.
func WithFrameTarget(d time.Duration) Option {
	return func(c *Clock) {
		if d > 0 {
			c.target = d
		}
	}
}

// WithLogger sets the logger used for the periodic lifetime report.
func WithLogger(l *log.Logger) Option {
	return func(c *Clock) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithReportEvery sets how many ticks pass between lifetime reports. Zero disables them.
func WithReportEvery(n uint64) Option {
	return func(c *Clock) {
		c.reportEvery = n
	}
}

// WithNow replaces the time source.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

// WithSleep replaces the function used to suspend the caller.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Clock) {
		c.sleep = sleep
	}
}

// New creates a clock whose lifetime starts now.
func New(opts ...Option) *Clock {
	c := &Clock{
		target:      DefaultFrameTarget,
		reportEvery: DefaultReportEvery,
		logger:      log.New(io.Discard),
		now:         time.Now,
		sleep:       time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.created = c.now()
	return c
}

// Tick records one cycle and returns the delta since the previous tick
// (or since creation for the first one).
func (c *Clock) Tick() time.Duration {
	c.ticks++

	now := c.now()
	delta := now.Sub(c.created.Add(c.lifetime))
	c.lifetime = now.Sub(c.created)

	c.deltas[1] = c.deltas[0]
	c.deltas[0] = delta

	if c.reportEvery > 0 && c.ticks%c.reportEvery == 0 {
		c.logger.Debug("clock", "tick", c.ticks, "lifetime", c.lifetime, "delta", delta)
	}
	return delta
}

// Average returns the mean of the last two deltas.
func (c *Clock) Average() time.Duration {
	return (c.deltas[0] + c.deltas[1]) / 2
}

// SleepFor returns how long Pace would suspend given the current average.
func (c *Clock) SleepFor() time.Duration {
	avg := c.Average()
	if avg < c.target {
		return c.target - avg
	}
	return 0
}

// Pace ticks the clock and suspends the caller for the rest of the frame
// target, if any. The sleep always runs to completion. It returns the
// duration slept.
func (c *Clock) Pace() time.Duration {
	c.Tick()

	d := c.SleepFor()
	if d > 0 {
		c.sleep(d)
	}
	return d
}

// Lifetime returns the time between creation and the last tick.
func (c *Clock) Lifetime() time.Duration {
	return c.lifetime
}

// Deltas returns the last two deltas, most recent first.
func (c *Clock) Deltas() [2]time.Duration {
	return c.deltas
}

// Ticks returns the number of ticks recorded.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Target returns the frame target.
func (c *Clock) Target() time.Duration {
	return c.target
}
