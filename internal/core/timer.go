package core

import "time"

// Interval reports when a fixed period has elapsed, e.g. to cycle seeds in the viewer.
type Interval struct {
	every       time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewInterval constructs an Interval firing every period. Non-positive periods
// default to one second.
func NewInterval(every time.Duration) *Interval {
	iv := &Interval{now: time.Now}
	iv.SetEvery(every)
	return iv
}

// SetEvery changes the period. It is safe to call from the main loop.
func (i *Interval) SetEvery(every time.Duration) {
	if every <= 0 {
		every = time.Second
	}
	i.every = every
}

// Every returns the current period.
func (i *Interval) Every() time.Duration { return i.every }

// Due reports whether a full period has elapsed since the previous firing.
func (i *Interval) Due() bool {
	now := i.now()
	if i.last.IsZero() {
		i.last = now
	}
	i.accumulator += now.Sub(i.last)
	i.last = now
	if i.accumulator >= i.every {
		i.accumulator -= i.every
		return true
	}
	return false
}
