package sidebar

import (
	"sync"
	"time"
)

// throttler bounds how often sidebar recomputation runs.
//
// The leading edge runs synchronously on the caller's goroutine, so a
// first notification after a quiet period still renders immediately.
// Calls inside the interval arm a trailing-edge timer, so the last
// notification in a burst always produces a render.
type throttler struct {
	mu       sync.Mutex
	interval time.Duration
	lastCall time.Time
	pending  bool
	seq      uint64 // invalidates stale timer callbacks
	timer    *time.Timer
	callback func()
}

// newThrottler creates a throttler with the given minimum interval.
func newThrottler(interval time.Duration, callback func()) *throttler {
	return &throttler{
		interval: interval,
		callback: callback,
	}
}

// Call runs the callback now if the interval has passed, otherwise
// schedules a single trailing-edge run.
func (t *throttler) Call() {
	t.mu.Lock()

	now := time.Now()
	if now.Sub(t.lastCall) >= t.interval {
		t.lastCall = now
		t.pending = false
		t.mu.Unlock()
		t.callback()
		return
	}

	t.pending = true
	if t.timer == nil {
		remaining := t.interval - now.Sub(t.lastCall)
		t.seq++
		currentSeq := t.seq
		t.timer = time.AfterFunc(remaining, func() {
			t.mu.Lock()
			if t.pending && t.seq == currentSeq {
				t.pending = false
				t.lastCall = time.Now()
				t.timer = nil
				t.mu.Unlock()
				t.callback()
				return
			}
			t.timer = nil
			t.mu.Unlock()
		})
	}
	t.mu.Unlock()
}

// Cancel drops any scheduled trailing-edge run.
func (t *throttler) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.seq++
	t.pending = false
}

// IsPending reports whether a trailing-edge run is scheduled.
func (t *throttler) IsPending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}
