// Copyright (c) the tickset-go authors. All rights reserved.
// Licensed under the MIT License.

package tickset

// DefaultCapacity is the number of slots a [Set] holds when [New] is called
// with a non-positive capacity. It matches the legacy fixed pool size.
const DefaultCapacity = 10

// Run-limit values for [Set.Schedule]. RunForever requests an unbounded
// timer; RunOnce requests a single fire followed by automatic deletion.
const (
	RunForever = 0
	RunOnce    = 1
)

// A Callback is invoked each time its timer fires. It receives no arguments
// and returns nothing; callers needing context must capture it via [lexical
// closure]. A Callback runs synchronously within [Set.PollAt] and may call
// any control operation on the same [Set], including on its own slot.
//
// The Set makes no aliasing guarantees about captured variables beyond what
// the caller arranges; since everything runs on the single polling context,
// no synchronization is required unless the caller introduces goroutines of
// its own.
//
// [lexical closure]: https://go.dev/ref/spec#Function_literals
type Callback func()

// A Set is a fixed-capacity pool of timer slots driven by polling. It must
// be created with [New]. All state lives in the Set; callers hold only the
// integer slot indices returned by registration.
//
// A Set is not safe for concurrent use. Every method, including the
// callbacks invoked by [Set.PollAt], is expected to run on one logical
// execution context.
type Set struct {
	clock  ClockFunc
	slots  []slot
	active int
}

// New creates a [Set] with the given capacity and clock source. A
// non-positive capacity selects [DefaultCapacity]. A nil clock selects
// [SystemClock]; tests typically inject a [ManualClock] instead. Capacity is
// fixed for the lifetime of the Set.
func New(capacity int, clock ClockFunc) *Set {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if clock == nil {
		clock = SystemClock
	}
	return &Set{
		clock: clock,
		slots: make([]slot, capacity),
	}
}

// Schedule registers fn to fire every period ticks, starting one period from
// the current clock reading, for at most runs fires. A runs value of
// [RunForever] (or any non-positive value) means the timer never expires; a
// positive value means exactly that many fires followed by automatic
// deletion of the slot.
//
// The timer occupies the lowest-indexed free slot and the returned index is
// the handle for all subsequent control operations. The index is stable
// until the slot is deleted, after which a future registration may reuse it;
// callers must not address an index they have deleted.
//
// Returns [ErrNilCallback] if fn is nil and [ErrCapacityExceeded] if no slot
// is free.
func (s *Set) Schedule(period Duration, fn Callback, runs int) (int, error) {
	if fn == nil {
		return -1, ErrNilCallback
	}
	i := s.findFreeSlot()
	if i < 0 {
		return -1, ErrCapacityExceeded
	}
	if runs < 0 {
		runs = RunForever
	}
	s.slots[i] = slot{
		occupied: true,
		enabled:  true,
		lastFire: s.clock(),
		period:   period,
		fn:       fn,
		maxRuns:  runs,
	}
	s.active++
	return i, nil
}

// Every registers fn to fire every period ticks until the slot is deleted.
// Equivalent to [Set.Schedule] with [RunForever].
func (s *Set) Every(period Duration, fn Callback) (int, error) {
	return s.Schedule(period, fn, RunForever)
}

// Once registers fn to fire a single time, period ticks from now, after
// which the slot is freed automatically. Equivalent to [Set.Schedule] with
// [RunOnce].
func (s *Set) Once(period Duration, fn Callback) (int, error) {
	return s.Schedule(period, fn, RunOnce)
}

// Poll runs one scheduling pass at the current reading of the Set's clock.
// See [Set.PollAt].
func (s *Set) Poll() int {
	return s.PollAt(s.clock())
}

// PollAt runs one scheduling pass at the given time and returns the number
// of callbacks fired. The host loop must call Poll or PollAt repeatedly and
// unboundedly; infrequent polling delays fires but never double-counts them.
//
// A pass has two phases. Phase one examines every occupied slot: if at least
// one period has elapsed since the slot's baseline (modular arithmetic, so
// clock wraparound is harmless), the baseline advances by exactly one period
// and a decision is frozen for the slot. Disabled slots advance without
// firing. At most one fire is decided per slot per pass even if several
// periods have elapsed; a late poll instead leaves the slot still due, so it
// catches up across subsequent passes rather than bursting. Phase two
// invokes the frozen callbacks in slot order, freeing each bounded timer
// that has just delivered its final run.
//
// Because every decision is frozen before the first callback runs, callbacks
// may delete, disable, restart, or register timers on the same Set without
// corrupting the pass. Such mutations are not reflected until the next pass:
// in particular, a decision already frozen for another slot is still
// executed even if a callback deletes or reconfigures that slot mid-pass.
func (s *Set) PollAt(now Tick) int {
	// Phase one: freeze decisions. The buffer is local to this pass; it
	// holds at most one entry per slot.
	due := make([]firing, 0, len(s.slots))
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.occupied {
			continue
		}
		if Duration(now-sl.lastFire) < sl.period {
			continue
		}
		sl.lastFire += Tick(sl.period)
		if !sl.enabled {
			continue
		}
		switch {
		case sl.maxRuns == RunForever:
			due = append(due, firing{index: i, fn: sl.fn})
		case sl.runs < sl.maxRuns:
			sl.runs++
			due = append(due, firing{
				index:       i,
				fn:          sl.fn,
				deleteAfter: sl.runs >= sl.maxRuns,
			})
		}
	}

	// Phase two: act on the frozen decisions.
	for _, f := range due {
		f.fn()
		if f.deleteAfter {
			s.freeSlot(f.index)
		}
	}
	return len(due)
}

// Delete frees the slot at index i, stopping its timer. Deleting a free slot
// is a no-op. Returns [ErrIndexOutOfRange] if i is not a valid index.
func (s *Set) Delete(i int) error {
	if i < 0 || i >= len(s.slots) {
		return ErrIndexOutOfRange
	}
	s.freeSlot(i)
	return nil
}

// Restart resets the slot's fire baseline to the current clock reading,
// deferring its next fire to one full period from now. Enabled state, run
// counts, and period are untouched. Restarting a free slot is a no-op; it
// does not revive a deleted timer. Returns [ErrIndexOutOfRange] if i is not
// a valid index.
func (s *Set) Restart(i int) error {
	if i < 0 || i >= len(s.slots) {
		return ErrIndexOutOfRange
	}
	if s.slots[i].occupied {
		s.slots[i].lastFire = s.clock()
	}
	return nil
}

// IsEnabled reports whether the slot at index i is enabled. Returns false
// for an out-of-range index.
func (s *Set) IsEnabled(i int) bool {
	if i < 0 || i >= len(s.slots) {
		return false
	}
	return s.slots[i].enabled
}

// Enable allows the slot's callback to fire again. While a slot is disabled
// its due time still advances each period, so re-enabling does not trigger a
// catch-up fire unless a full period has already elapsed since the last
// advance. Returns [ErrIndexOutOfRange] if i is not a valid index.
func (s *Set) Enable(i int) error {
	if i < 0 || i >= len(s.slots) {
		return ErrIndexOutOfRange
	}
	s.slots[i].enabled = true
	return nil
}

// Disable suppresses the slot's callback without stopping its schedule. See
// [Set.Enable]. Returns [ErrIndexOutOfRange] if i is not a valid index.
func (s *Set) Disable(i int) error {
	if i < 0 || i >= len(s.slots) {
		return ErrIndexOutOfRange
	}
	s.slots[i].enabled = false
	return nil
}

// Toggle flips the slot's enabled state. Like the legacy scheduler it makes
// no distinction for free slots; callers are expected not to address indices
// they have not registered. Returns [ErrIndexOutOfRange] if i is not a valid
// index.
func (s *Set) Toggle(i int) error {
	if i < 0 || i >= len(s.slots) {
		return ErrIndexOutOfRange
	}
	s.slots[i].enabled = !s.slots[i].enabled
	return nil
}

// Active returns the number of occupied slots.
func (s *Set) Active() int {
	return s.active
}

// Available returns the number of free slots.
func (s *Set) Available() int {
	return len(s.slots) - s.active
}

// Capacity returns the fixed slot count chosen at construction.
func (s *Set) Capacity() int {
	return len(s.slots)
}

// findFreeSlot returns the lowest-indexed free slot, or -1 if the set is
// full. The search is the authoritative capacity check.
func (s *Set) findFreeSlot() int {
	for i := range s.slots {
		if !s.slots[i].occupied {
			return i
		}
	}
	return -1
}

func (s *Set) freeSlot(i int) {
	if !s.slots[i].occupied {
		return
	}
	s.slots[i] = slot{}
	s.active--
}
