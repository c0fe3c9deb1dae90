// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "time"

// Clock is a monotonic media clock. All begin times shared between
// animations must come from the same clock.
type Clock interface {

	// Now returns the current media time.
	Now() time.Duration
}

// MonotonicClock is a [Clock] measuring the monotonic time elapsed since
// it was created.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a new [MonotonicClock] starting at zero now.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (mc *MonotonicClock) Now() time.Duration {
	return time.Since(mc.start)
}

// DefaultClock is the clock used when none is given.
var DefaultClock Clock = NewMonotonicClock()

// ManualClock is a [Clock] that only moves when told to, for tests
// and for rendering frames at exact times.
type ManualClock struct {
	Time time.Duration
}

func (mc *ManualClock) Now() time.Duration {
	return mc.Time
}

// Set sets the current time.
func (mc *ManualClock) Set(t time.Duration) {
	mc.Time = t
}

// Advance moves the clock forward by d.
func (mc *ManualClock) Advance(d time.Duration) {
	mc.Time += d
}
