// Copyright (c) the tickset-go authors. All rights reserved.
// Licensed under the MIT License.

package sim

import (
	"cmp"
	"fmt"

	"github.com/addrummond/heap"
	"pgregory.net/rapid"
)

// A TimerSpec describes one timer registered at plan time zero.
type TimerSpec struct {
	// Period is the spacing between fires, in ticks. Zero is legal and means
	// the timer is due on every poll.
	Period uint64

	// RunLimit is the maximum number of fires; zero means unbounded.
	RunLimit int

	// StartDisabled registers the timer and immediately disables it. Its
	// schedule still advances; it just never fires.
	StartDisabled bool
}

// A Plan is a generated workload: a set of timers all registered at time
// zero, and the strictly increasing times at which the host polls.
type Plan struct {
	Capacity int
	Timers   []TimerSpec
	Polls    []uint64
}

// Config bounds plan generation.
type Config struct {
	MaxTimers   int
	MaxPeriod   uint64
	MaxRunLimit int
	MaxPolls    int

	// MaxStep bounds the gap between consecutive polls when the generator
	// chooses a random instant instead of a due boundary.
	MaxStep uint64
}

var DefaultConfig = Config{
	MaxTimers:   10,
	MaxPeriod:   5000,
	MaxRunLimit: 5,
	MaxPolls:    60,
	MaxStep:     1500,
}

// dueEvent is an upcoming instant at which a timer's ideal schedule comes
// due, ordered by time.
type dueEvent struct {
	At    uint64
	Timer int
}

func (a *dueEvent) Cmp(b *dueEvent) int {
	return cmp.Compare(a.At, b.At)
}

// NewPlan draws a workload from the given bounds. Poll times are biased
// toward timer due boundaries: most steps land exactly on, just before, or
// just after the earliest upcoming due instant.
func NewPlan(t *rapid.T, config *Config) *Plan {
	plan := &Plan{}

	timerCount := rapid.IntRange(1, config.MaxTimers).Draw(t, "TimerCount")
	plan.Capacity = rapid.IntRange(timerCount, config.MaxTimers).Draw(t, "Capacity")
	plan.Timers = make([]TimerSpec, timerCount)

	var dueHeap heap.Heap[dueEvent, heap.Min]
	for i := range plan.Timers {
		name := fmt.Sprintf("Timer#%d", i)
		plan.Timers[i] = TimerSpec{
			Period:        rapid.Uint64Range(0, config.MaxPeriod).Draw(t, name+".Period"),
			RunLimit:      rapid.IntRange(0, config.MaxRunLimit).Draw(t, name+".RunLimit"),
			StartDisabled: rapid.Float64Range(0, 1).Draw(t, name+".StartDisabled") < 0.2,
		}
		if p := plan.Timers[i].Period; p > 0 {
			heap.PushOrderable(&dueHeap, dueEvent{At: p, Timer: i})
		}
	}

	pollCount := rapid.IntRange(1, config.MaxPolls).Draw(t, "PollCount")
	plan.Polls = make([]uint64, 0, pollCount)
	var now uint64
	for i := range pollCount {
		name := fmt.Sprintf("Poll#%d", i)
		var at uint64
		event, ok := heap.Peek(&dueHeap)
		if ok && rapid.Float64Range(0, 1).Draw(t, name+".AtBoundary") < 0.7 {
			event, _ = heap.PopOrderable(&dueHeap)
			heap.PushOrderable(&dueHeap, dueEvent{
				At:    event.At + plan.Timers[event.Timer].Period,
				Timer: event.Timer,
			})
			// Land on the boundary or one tick to either side.
			at = event.At
			switch rapid.IntRange(-1, 1).Draw(t, name+".Jitter") {
			case -1:
				if at > 0 {
					at--
				}
			case 1:
				at++
			}
		} else {
			at = now + rapid.Uint64Range(1, config.MaxStep).Draw(t, name+".Step")
		}
		if at <= now {
			at = now + 1
		}
		now = at
		plan.Polls = append(plan.Polls, at)
	}
	return plan
}
