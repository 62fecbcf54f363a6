package core

import "time"

// Timer is a single-slot deferred action. An engine arms it with an absolute
// target time and polls it from Advance with whatever clock the driver
// supplies. Engines never sleep and never hold OS timers, so a simulated
// clock in tests behaves exactly like the real one.
type Timer struct {
	target time.Time
	armed  bool
}

// Arm schedules the timer to fire at the given time, replacing any pending
// target.
func (t *Timer) Arm(at time.Time) {
	t.target = at
	t.armed = true
}

// Disarm cancels the pending target, if any.
func (t *Timer) Disarm() {
	t.armed = false
}

// Armed reports whether a target is pending.
func (t *Timer) Armed() bool {
	return t.armed
}

// Target returns the pending fire time. Only meaningful while Armed.
func (t *Timer) Target() time.Time {
	return t.target
}

// Fire disarms the timer and reports it fired if it is due at now.
// The returned time is the scheduled target rather than now, so arming a
// follow-up relative to it keeps a chain of schedules exact no matter how
// late the poll arrived.
func (t *Timer) Fire(now time.Time) (time.Time, bool) {
	if !t.armed || now.Before(t.target) {
		return time.Time{}, false
	}
	t.armed = false
	return t.target, true
}

// Shift moves a pending target by d. Engines call it on resume to credit
// the span spent suspended.
func (t *Timer) Shift(d time.Duration) {
	if t.armed {
		t.target = t.target.Add(d)
	}
}

// tickerMaxLag is how many whole intervals a Ticker may fall behind before
// it re-anchors to the caller's clock instead of replaying the backlog.
const tickerMaxLag = 4

// Ticker fires at a fixed interval. Like Timer it is driven entirely by the
// times passed to Fire, one tick per call; callers drain it in a loop when
// they want catch-up ticks after a late poll.
type Ticker struct {
	interval time.Duration
	next     time.Time
	running  bool
}

// Start begins ticking. The first fire is due one interval after now.
func (t *Ticker) Start(now time.Time, interval time.Duration) {
	t.interval = interval
	t.next = now.Add(interval)
	t.running = true
}

// Stop cancels the ticker.
func (t *Ticker) Stop() {
	t.running = false
}

// Running reports whether the ticker is active.
func (t *Ticker) Running() bool {
	return t.running
}

// Interval returns the configured tick interval.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Fire reports whether a tick was due at now and schedules the next one.
// Each target is derived from the previous target, not from now, so tick N
// stays exactly N intervals after Start regardless of poll jitter. If the
// caller has fallen more than tickerMaxLag intervals behind, the schedule
// re-anchors at now and the backlog is dropped.
func (t *Ticker) Fire(now time.Time) bool {
	if !t.running || now.Before(t.next) {
		return false
	}
	if now.Sub(t.next) > time.Duration(tickerMaxLag)*t.interval {
		t.next = now.Add(t.interval)
		return true
	}
	t.next = t.next.Add(t.interval)
	return true
}

// Shift moves the schedule by d. Engines call it on resume to credit the
// span spent suspended.
func (t *Ticker) Shift(d time.Duration) {
	if t.running {
		t.next = t.next.Add(d)
	}
}
