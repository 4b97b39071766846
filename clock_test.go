// Copyright (c) the tickset-go authors. All rights reserved.
// Licensed under the MIT License.

package tickset_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tickset "github.com/tickset/tickset-go"
)

func TestManualClock(t *testing.T) {
	chk := require.New(t)

	clock := tickset.NewManualClock(40)
	chk.Equal(tickset.Tick(40), clock.Now())

	clock.Advance(2)
	chk.Equal(tickset.Tick(42), clock.Now())

	clock.Set(math.MaxUint32)
	clock.Advance(5)
	chk.Equal(tickset.Tick(4), clock.Now())
}

func TestSystemClockTracksWallClock(t *testing.T) {
	chk := require.New(t)

	before := tickset.Tick(time.Now().UnixMilli())
	got := tickset.SystemClock()
	after := tickset.Tick(time.Now().UnixMilli())

	chk.LessOrEqual(uint32(got-before), uint32(after-before))
}
