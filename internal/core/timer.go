package core

import "time"

// FrameTimer measures the wall-clock time between successive frames and
// clamps it so a stalled host does not produce a huge step on resume.
type FrameTimer struct {
	max  time.Duration
	last time.Time
	now  func() time.Time
}

// NewFrameTimer constructs a FrameTimer that never reports more than max.
// A non-positive max falls back to 100ms.
func NewFrameTimer(max time.Duration) *FrameTimer {
	return NewFrameTimerWithClock(max, time.Now)
}

// NewFrameTimerWithClock is NewFrameTimer with an injectable clock.
func NewFrameTimerWithClock(max time.Duration, now func() time.Time) *FrameTimer {
	if max <= 0 {
		max = 100 * time.Millisecond
	}
	if now == nil {
		now = time.Now
	}
	return &FrameTimer{max: max, now: now}
}

// Elapsed returns the time since the previous call. The first call
// returns zero.
func (f *FrameTimer) Elapsed() time.Duration {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		return 0
	}
	if delta > f.max {
		return f.max
	}
	return delta
}

// Restart forgets the previous timestamp so the next Elapsed returns zero.
// Used when leaving the paused state.
func (f *FrameTimer) Restart() { f.last = time.Time{} }
