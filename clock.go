// Copyright (c) the tickset-go authors. All rights reserved.
// Licensed under the MIT License.

package tickset

import "time"

// A Tick is a reading of a monotonically increasing millisecond counter. The
// counter is 32 bits wide and wraps modulo 2^32 (roughly every 49.7 days at
// millisecond resolution, matching the legacy clock). All elapsed-time
// arithmetic in this package uses modular unsigned subtraction, so wraparound
// between two readings does not disturb scheduling as long as the true
// elapsed time stays under one full counter period.
type Tick uint32

// A Duration is a non-negative span of ticks, used as a timer's period.
type Duration uint32

// A ClockFunc returns the current Tick. The function must be monotonic
// modulo the counter width; it is never expected to block.
type ClockFunc func() Tick

// SystemClock is the default [ClockFunc]: the wall clock in milliseconds,
// truncated to the counter width.
func SystemClock() Tick {
	return Tick(time.Now().UnixMilli())
}

// A ManualClock is a [ClockFunc] source under explicit caller control, for
// deterministic tests and simulations. Pass the [ManualClock.Now] method to
// [New] and advance time with [ManualClock.Advance] or [ManualClock.Set].
//
// Like a [Set], a ManualClock performs no locking.
type ManualClock struct {
	now Tick
}

// NewManualClock creates a [ManualClock] whose current reading is start.
func NewManualClock(start Tick) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current reading.
func (c *ManualClock) Now() Tick {
	return c.now
}

// Advance moves the clock forward by d ticks, wrapping modulo the counter
// width like any other clock source.
func (c *ManualClock) Advance(d Duration) {
	c.now += Tick(d)
}

// Set moves the clock to an absolute reading.
func (c *ManualClock) Set(t Tick) {
	c.now = t
}
