// Copyright (c) the tickset-go authors. All rights reserved.
// Licensed under the MIT License.

// Package sim generates and evaluates simulated timer workloads for testing.
// A plan pairs a pool of timer specifications with a polling schedule. Poll
// times are drawn with a bias toward the instants at which some timer comes
// due, since off-by-one behavior around due boundaries is where scheduling
// bugs live. The package also provides a reference evaluation of a plan in
// unbounded integer arithmetic, against which the fixed-width wraparound
// implementation can be checked fire for fire.
package sim
