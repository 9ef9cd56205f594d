// Package autoadvance runs a deferred action once, with re-arming and
// cancellation. The play service uses it to move to the next question a
// short while after an answer is recorded.
package autoadvance

import (
	"sync"
	"time"
)

// Timer holds at most one pending run. The zero value is not usable; call New.
type Timer struct {
	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	stopped bool
	after   func(time.Duration, func()) *time.Timer
}

// New returns an idle Timer.
func New() *Timer {
	return &Timer{after: time.AfterFunc}
}

// Schedule runs fn once after delay, superseding any pending run. It
// reports false when the timer has been stopped.
func (t *Timer) Schedule(delay time.Duration, fn func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return false
	}
	t.cancelLocked()
	gen := t.gen
	t.timer = t.after(delay, func() {
		t.mu.Lock()
		if t.stopped || t.gen != gen {
			t.mu.Unlock()
			return
		}
		t.gen++
		t.timer = nil
		t.mu.Unlock()
		fn()
	})
	return true
}

// Cancel drops the pending run, if any.
func (t *Timer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
}

// Pending reports whether a run is scheduled and has not started.
func (t *Timer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}

// Stop cancels the pending run and makes every later Schedule a no-op.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
	t.stopped = true
}

// cancelLocked bumps the generation so a callback that already fired but
// is waiting on mu sees it was superseded.
func (t *Timer) cancelLocked() {
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
