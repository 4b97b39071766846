// Copyright (c) the tickset-go authors. All rights reserved.
// Licensed under the MIT License.

package tickset

// slot is one fixed storage unit in a [Set]. The occupied flag is the
// authoritative free/in-use tag; a freed slot is reset to the zero value.
type slot struct {
	occupied bool
	enabled  bool

	// lastFire is the baseline from which the next due time is measured. It
	// advances by exactly one period per poll in which the slot comes due,
	// never snapping to the poll time, so repeated fires do not accumulate
	// drift from poll-call jitter.
	lastFire Tick

	period  Duration
	fn      Callback
	maxRuns int
	runs    int
}

// firing is one frozen phase-one decision. The callback value is captured at
// decision time so that the decision survives mutation of the slot by an
// earlier callback in the same pass.
type firing struct {
	index       int
	fn          Callback
	deleteAfter bool
}
