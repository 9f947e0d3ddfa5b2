package wordreel

import "sort"

// Clock runs delayed callbacks on the stage goroutine. Time only moves when
// Update is called, so tests control it exactly.
type Clock struct {
	now    float64
	seq    uint64
	timers []*Timer
}

// Timer is a callback scheduled on a Clock.
type Timer struct {
	at      float64
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// Stop prevents the timer from firing. Reports whether it was still pending.
func (t *Timer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Now returns the clock's current time in seconds.
func (c *Clock) Now() float64 {
	return c.now
}

// AfterFunc schedules fn to run once delay seconds from now.
func (c *Clock) AfterFunc(delay float64, fn func()) *Timer {
	if delay < 0 {
		delay = 0
	}
	c.seq++
	t := &Timer{at: c.now + delay, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Update advances time by dt and fires every due timer, earliest first.
// Timers scheduled by a callback fire in the same Update if already due.
func (c *Clock) Update(dt float64) {
	c.now += dt
	for {
		due := c.popDue()
		if len(due) == 0 {
			return
		}
		for _, t := range due {
			if t.stopped {
				continue
			}
			t.fired = true
			t.fn()
		}
	}
}

// Pending returns the number of timers that have neither fired nor stopped.
func (c *Clock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (c *Clock) popDue() []*Timer {
	var due []*Timer
	keep := c.timers[:0]
	for _, t := range c.timers {
		switch {
		case t.stopped:
		case t.at <= c.now:
			due = append(due, t)
		default:
			keep = append(keep, t)
		}
	}
	clear(c.timers[len(keep):])
	c.timers = keep
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	return due
}
