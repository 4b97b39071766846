// Copyright (c) the tickset-go authors. All rights reserved.
// Licensed under the MIT License.

package sim

import "github.com/gammazero/deque"

// An Event is one expected callback fire: the timer at slot Timer fires
// during poll number Poll of the plan's schedule.
type Event struct {
	Poll  int
	Timer int
}

// Expect evaluates the plan in unbounded integer arithmetic and returns the
// expected fire sequence as a queue, along with the number of timers still
// occupying slots after the final poll. Fires within one poll are ordered by
// slot index, matching the scheduler's phase-two order.
//
// The model mirrors the published scheduling contract: a timer's baseline
// advances by exactly one period per poll in which it is due, at most one
// fire is delivered per timer per poll, disabled timers advance without
// firing, and a bounded timer frees its slot after its final fire.
func Expect(plan *Plan) (*deque.Deque[Event], int) {
	type state struct {
		occupied bool
		enabled  bool
		baseline uint64
		runs     int
	}
	timers := make([]state, len(plan.Timers))
	for i := range timers {
		timers[i] = state{occupied: true, enabled: !plan.Timers[i].StartDisabled}
	}

	expected := new(deque.Deque[Event])
	active := len(timers)
	for p, now := range plan.Polls {
		for i := range timers {
			st := &timers[i]
			if !st.occupied {
				continue
			}
			spec := &plan.Timers[i]
			if now-st.baseline < spec.Period {
				continue
			}
			st.baseline += spec.Period
			if !st.enabled {
				continue
			}
			switch {
			case spec.RunLimit == 0:
				expected.PushBack(Event{Poll: p, Timer: i})
			case st.runs < spec.RunLimit:
				st.runs++
				expected.PushBack(Event{Poll: p, Timer: i})
				if st.runs >= spec.RunLimit {
					st.occupied = false
					active--
				}
			}
		}
	}
	return expected, active
}
