package sim

import "time"

// IntervalTimer accumulates elapsed real time and reports completion once
// per configured interval. Finished is true for exactly one update cycle per
// interval: a single trigger per check, no catch-up burst. Under heavy delay
// the leftover accumulation drains across subsequent cycles instead.
type IntervalTimer struct {
	interval time.Duration
	acc      time.Duration
	finished bool
}

// NewIntervalTimer creates a repeating timer with the given interval.
func NewIntervalTimer(interval time.Duration) *IntervalTimer {
	return &IntervalTimer{interval: interval}
}

// Tick advances the timer by dt and updates the finished flag for this cycle.
func (t *IntervalTimer) Tick(dt time.Duration) {
	t.acc += dt
	if t.acc >= t.interval {
		t.acc -= t.interval
		t.finished = true
		return
	}
	t.finished = false
}

// Finished reports whether the interval elapsed on the most recent Tick.
func (t *IntervalTimer) Finished() bool {
	return t.finished
}

// Interval returns the configured interval.
func (t *IntervalTimer) Interval() time.Duration {
	return t.interval
}
