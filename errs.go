// Copyright (c) the tickset-go authors. All rights reserved.
// Licensed under the MIT License.

package tickset

type constError string

func (e constError) Error() string {
	return string(e)
}

// ErrCapacityExceeded is returned by [Set.Schedule], [Set.Every], and
// [Set.Once] when every slot in the set is already occupied.
const ErrCapacityExceeded = constError("timer set capacity exceeded")

// ErrNilCallback is returned by registration when the callback is nil.
const ErrNilCallback = constError("timer callback must be non-nil")

// ErrIndexOutOfRange is returned by index-addressed control operations when
// the index is negative or not less than the set's capacity. The operation
// has no effect; callers that only want the legacy silent no-op behavior may
// ignore the error.
const ErrIndexOutOfRange = constError("timer index out of range")
