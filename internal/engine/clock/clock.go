// Package clock turns frame deltas into fixed-period ticks.
package clock

import "time"

// DeltaTimer measures the time between successive calls to Next.
type DeltaTimer struct {
	last time.Time
	now  func() time.Time
}

// Next returns the time since the previous call, or 0 on the first call.
func (d *DeltaTimer) Next() time.Duration {
	// read the clock exactly once so rounding never accumulates
	var now time.Time
	if d.now != nil {
		now = d.now()
	} else {
		now = time.Now()
	}

	defer func() { d.last = now }()
	if d.last.IsZero() {
		return 0
	}
	return now.Sub(d.last)
}

// Ticker emits ticks at a fixed period from elapsed frame time.
type Ticker struct {
	Period time.Duration
	// MaxPerAdvance caps the ticks returned by a single Advance; owed ticks
	// beyond the cap are dropped. Zero means no cap.
	MaxPerAdvance int

	pending time.Duration
	total   uint64
}

// NewTicker creates a ticker with the given period and catch-up cap.
func NewTicker(period time.Duration, maxPerAdvance int) *Ticker {
	return &Ticker{Period: period, MaxPerAdvance: maxPerAdvance}
}

// Advance adds elapsed time and returns how many ticks are now due.
func (t *Ticker) Advance(elapsed time.Duration) int {
	if t.Period <= 0 || elapsed <= 0 {
		return 0
	}

	t.pending += elapsed
	n := int(t.pending / t.Period)
	t.pending -= time.Duration(n) * t.Period

	if t.MaxPerAdvance > 0 && n > t.MaxPerAdvance {
		n = t.MaxPerAdvance
	}
	t.total += uint64(n)
	return n
}

// Total returns the number of ticks emitted so far.
func (t *Ticker) Total() uint64 {
	return t.total
}
