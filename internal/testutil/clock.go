// Package testutil provides deterministic clocks and recording collaborators
// for tests.
package testutil

import (
	"sync"
	"time"

	"workrest/internal/core/countdown"
)

// ManualClock is a countdown.Clock whose callbacks only run when the test
// fires them. Time advances by the delay of each fired timer.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*ManualTimer
}

// NewManualClock returns a clock starting at a fixed instant.
func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)}
}

// ManualTimer is a callback registered with ManualClock.
type ManualTimer struct {
	clock   *ManualClock
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

// AfterFunc records f without running it.
func (clock *ManualClock) AfterFunc(d time.Duration, f func()) countdown.Timer {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	timer := &ManualTimer{clock: clock, delay: d, fn: f}
	clock.timers = append(clock.timers, timer)
	return timer
}

// Now returns the manual time.
func (clock *ManualClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

// Pending returns timers that are neither stopped nor fired.
func (clock *ManualClock) Pending() []*ManualTimer {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	var pending []*ManualTimer
	for _, timer := range clock.timers {
		if !timer.stopped && !timer.fired {
			pending = append(pending, timer)
		}
	}
	return pending
}

// Tick fires the oldest pending timer. It reports false when none is pending.
func (clock *ManualClock) Tick() bool {
	pending := clock.Pending()
	if len(pending) == 0 {
		return false
	}
	pending[0].Fire()
	return true
}

// TickN fires up to n pending timers in order and returns how many ran.
func (clock *ManualClock) TickN(n int) int {
	fired := 0
	for fired < n && clock.Tick() {
		fired++
	}
	return fired
}

// Stop cancels the timer.
func (timer *ManualTimer) Stop() bool {
	timer.clock.mu.Lock()
	defer timer.clock.mu.Unlock()
	wasActive := !timer.stopped && !timer.fired
	timer.stopped = true
	return wasActive
}

// Fire runs the callback even if the timer was stopped, the way a callback
// that already left the runtime's queue would.
func (timer *ManualTimer) Fire() {
	timer.clock.mu.Lock()
	timer.fired = true
	timer.clock.now = timer.clock.now.Add(timer.delay)
	fn := timer.fn
	timer.clock.mu.Unlock()
	fn()
}
