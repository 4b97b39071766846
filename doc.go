// Copyright (c) the tickset-go authors. All rights reserved.
// Licensed under the MIT License.

// Package tickset provides a fixed-capacity cooperative timer scheduler for
// loop-driven environments. A [Set] owns a small, fixed pool of timer slots,
// each of which fires a zero-argument callback at a caller-supplied period:
// forever, once, or a bounded number of times. Nothing runs in the
// background; the host drives all scheduling by calling [Set.Poll] (or
// [Set.PollAt]) repeatedly from its own loop, against a monotonically
// increasing millisecond [Tick] counter.
//
// The scheduler is built for environments where dynamic allocation, threads,
// and an operating system may all be absent: capacity is fixed at
// construction, memory use is static, and no operation blocks or spawns a
// goroutine. Elapsed time is computed with modular unsigned subtraction, so
// behavior is unaffected when the tick counter wraps past its maximum value.
// Fire baselines advance by exactly one period per poll rather than snapping
// to the current time, which keeps long-running periodic timers free of
// cumulative drift from poll-call jitter and prevents catch-up bursts when a
// poll arrives late.
//
// Each poll pass runs in two phases. The first phase freezes a decision
// (fire, fire then delete, or nothing) for every slot before any callback
// runs. The second phase invokes the frozen callbacks in slot order. Because
// decisions are frozen up front, a callback may safely call any control
// operation on the same Set, including deleting or re-registering its own
// slot; side effects of one callback never change which timers fire in the
// pass that is already underway.
//
// Callbacks execute synchronously on the polling context. A Set performs no
// locking and must not be shared across goroutines without external
// synchronization; the intended host is a single logical execution context.
package tickset
