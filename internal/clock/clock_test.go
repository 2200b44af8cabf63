package clock

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

// fakeTime is a manually advanced time source that also records sleeps.
type fakeTime struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeTime() *fakeTime {
	return &fakeTime{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeTime) Now() time.Time { return f.now }

func (f *fakeTime) Advance(d time.Duration) { f.now = f.now.Add(d) }

func (f *fakeTime) Sleep(d time.Duration) {
	f.sleeps = append(f.sleeps, d)
}

func newTestClock(ft *fakeTime, opts ...Option) *Clock {
	base := []Option{WithNow(ft.Now), WithSleep(ft.Sleep)}
	return New(append(base, opts...)...)
}

func TestTickTracksLifetimeAndDeltas(t *testing.T) {
	ft := newFakeTime()
	c := newTestClock(ft)

	ft.Advance(10 * time.Millisecond)
	if d := c.Tick(); d != 10*time.Millisecond {
		t.Errorf("first Tick() = %v, expected 10ms", d)
	}

	ft.Advance(25 * time.Millisecond)
	if d := c.Tick(); d != 25*time.Millisecond {
		t.Errorf("second Tick() = %v, expected 25ms", d)
	}

	if c.Lifetime() != 35*time.Millisecond {
		t.Errorf("Lifetime() = %v, expected 35ms", c.Lifetime())
	}
	if c.Ticks() != 2 {
		t.Errorf("Ticks() = %d, expected 2", c.Ticks())
	}

	deltas := c.Deltas()
	if deltas[0] != 25*time.Millisecond || deltas[1] != 10*time.Millisecond {
		t.Errorf("Deltas() = %v, expected [25ms 10ms]", deltas)
	}
}

func TestTickShiftsHistory(t *testing.T) {
	ft := newFakeTime()
	c := newTestClock(ft)

	for _, d := range []time.Duration{5, 7, 11} {
		ft.Advance(d * time.Millisecond)
		c.Tick()
	}

	deltas := c.Deltas()
	if deltas[0] != 11*time.Millisecond || deltas[1] != 7*time.Millisecond {
		t.Errorf("Deltas() = %v, expected [11ms 7ms]", deltas)
	}
}

func TestPaceAverage(t *testing.T) {
	tests := []struct {
		name      string
		d1, d2    time.Duration
		wantAvg   time.Duration
		wantSleep time.Duration
	}{
		{"fast frames sleep the remainder", 10 * time.Millisecond, 20 * time.Millisecond, 15 * time.Millisecond, 15 * time.Millisecond},
		{"exactly on target does not sleep", 30 * time.Millisecond, 30 * time.Millisecond, 30 * time.Millisecond, 0},
		{"slow frames do not sleep", 40 * time.Millisecond, 50 * time.Millisecond, 45 * time.Millisecond, 0},
		{"one slow frame averages out", 2 * time.Millisecond, 40 * time.Millisecond, 21 * time.Millisecond, 9 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ft := newFakeTime()
			c := newTestClock(ft)

			ft.Advance(tc.d1)
			c.Tick()
			ft.Advance(tc.d2)
			c.Tick()

			if avg := c.Average(); avg != tc.wantAvg {
				t.Errorf("Average() = %v, expected %v", avg, tc.wantAvg)
			}
			if got := c.SleepFor(); got != tc.wantSleep {
				t.Errorf("SleepFor() = %v, expected %v", got, tc.wantSleep)
			}
		})
	}
}

func TestPaceSleeps(t *testing.T) {
	ft := newFakeTime()
	c := newTestClock(ft)

	// First pace: one 10ms delta, the empty slot counts as zero.
	ft.Advance(10 * time.Millisecond)
	if slept := c.Pace(); slept != 25*time.Millisecond {
		t.Errorf("Pace() = %v, expected 25ms", slept)
	}

	// Sleeping does not advance the fake clock; the next delta is what we advance.
	ft.Advance(50 * time.Millisecond)
	if slept := c.Pace(); slept != 0 {
		t.Errorf("Pace() = %v, expected 0", slept)
	}

	if len(ft.sleeps) != 1 || ft.sleeps[0] != 25*time.Millisecond {
		t.Errorf("sleeps = %v, expected [25ms]", ft.sleeps)
	}
	if c.Ticks() != 2 {
		t.Errorf("Ticks() = %d, expected 2", c.Ticks())
	}
}

func TestFrameTargetOption(t *testing.T) {
	ft := newFakeTime()
	c := newTestClock(ft, WithFrameTarget(16*time.Millisecond))

	if c.Target() != 16*time.Millisecond {
		t.Errorf("Target() = %v, expected 16ms", c.Target())
	}

	ft.Advance(4 * time.Millisecond)
	c.Tick()
	ft.Advance(4 * time.Millisecond)
	if slept := c.Pace(); slept != 12*time.Millisecond {
		t.Errorf("Pace() = %v, expected 12ms", slept)
	}

	// Non-positive targets are ignored
	if New(WithFrameTarget(0)).Target() != DefaultFrameTarget {
		t.Error("zero frame target should keep the default")
	}
}

func TestReportEvery(t *testing.T) {
	ft := newFakeTime()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	c := newTestClock(ft, WithLogger(logger))

	for i := 0; i < 14; i++ {
		ft.Advance(time.Millisecond)
		c.Tick()
	}
	if buf.Len() != 0 {
		t.Errorf("no report expected before tick 15, got %q", buf.String())
	}

	ft.Advance(time.Millisecond)
	c.Tick()
	out := buf.String()
	if !strings.Contains(out, "lifetime") || !strings.Contains(out, "tick=15") {
		t.Errorf("report on tick 15 = %q", out)
	}

	buf.Reset()
	c2 := newTestClock(ft, WithLogger(logger), WithReportEvery(0))
	for i := 0; i < 30; i++ {
		c2.Tick()
	}
	if buf.Len() != 0 {
		t.Errorf("reports disabled, got %q", buf.String())
	}
}
