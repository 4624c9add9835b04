// Package debounce delays a function call until triggers pause for a fixed
// interval, collapsing bursts of triggers into a single invocation.
package debounce

import (
	"sync"
	"time"
)

// Debouncer holds at most one pending invocation. Each Trigger cancels the
// previously scheduled one and restarts the interval, so only the function
// from the last Trigger in a burst runs.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func New(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules fn to run after the interval, replacing any pending
// invocation. fn runs on its own goroutine (the timer's).
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// Stop cancels the pending invocation, if any, and reports whether one was
// cancelled. An invocation that has already started is not interrupted.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}
