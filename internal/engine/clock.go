package engine

import "time"

// Timer is a handle to an armed repeating callback.
type Timer interface {
	Stop()
}

// Scheduler arms repeating callbacks at a fixed interval.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Timer
}

// FrameClock is a deterministic Scheduler driven by explicit elapsed time.
// Front ends advance it once per frame; tests advance it by exact intervals.
// Callbacks run synchronously inside Advance, and a callback may stop its
// own timer or arm new ones. Timers armed during Advance start counting on
// the next call.
type FrameClock struct {
	timers []*frameTimer
	now    time.Duration
}

type frameTimer struct {
	interval time.Duration
	elapsed  time.Duration
	fn       func()
	stopped  bool
}

func (t *frameTimer) Stop() {
	t.stopped = true
}

// NewFrameClock returns an empty clock at t=0.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Every arms fn to run each interval of advanced time.
func (c *FrameClock) Every(interval time.Duration, fn func()) Timer {
	if interval <= 0 {
		interval = time.Millisecond
	}
	t := &frameTimer{interval: interval, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by dt and fires every due callback.
func (c *FrameClock) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	c.now += dt
	due := append([]*frameTimer(nil), c.timers...)
	for _, t := range due {
		if t.stopped {
			continue
		}
		t.elapsed += dt
		for t.elapsed >= t.interval && !t.stopped {
			t.elapsed -= t.interval
			t.fn()
		}
	}
	c.prune()
}

// Now returns the total advanced time.
func (c *FrameClock) Now() time.Duration {
	return c.now
}

// Active returns the number of armed, unstopped timers.
func (c *FrameClock) Active() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (c *FrameClock) prune() {
	kept := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = kept
}
