// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim describes declarative, fire-and-forget animations of named
// point properties, and provides a reference evaluator that computes the
// animated values at any media time. Animations are never ticked by the
// code that builds them; whatever draws them samples them when it draws.
package anim

import (
	"fmt"
	"math"
	"time"
)

// Forever is the [Timing.RepeatCount] of an animation that never ends.
var Forever = float32(math.Inf(1))

// FillModes determine what value an animation contributes outside of
// its active time window.
type FillModes int32

const (
	// FillRemoved contributes nothing outside of the active window.
	FillRemoved FillModes = iota

	// FillForwards holds the final value after the active window.
	FillForwards

	// FillBackwards holds the initial value before the active window.
	FillBackwards

	// FillBoth holds the initial value before and the final value after
	// the active window.
	FillBoth
)

var fillNames = [...]string{"removed", "forwards", "backwards", "both"}

func (fm FillModes) String() string {
	if fm < 0 || int(fm) >= len(fillNames) {
		return fmt.Sprintf("FillModes(%d)", int32(fm))
	}
	return fillNames[fm]
}

// MarshalText implements [encoding.TextMarshaler].
func (fm FillModes) MarshalText() ([]byte, error) {
	return []byte(fm.String()), nil
}

func (fm FillModes) holdsBefore() bool {
	return fm == FillBackwards || fm == FillBoth
}

func (fm FillModes) holdsAfter() bool {
	return fm == FillForwards || fm == FillBoth
}

// Timing contains the timing properties common to all animations.
// Times of a top-level animation are on the media clock; times of a
// child animation are relative to the local time of its parent.
type Timing struct {

	// BeginTime is the time, in parent time, at which the animation starts.
	BeginTime time.Duration

	// Duration is the length of one repetition. A zero duration on a
	// child animation inherits the duration of its parent.
	Duration time.Duration

	// TimeOffset is added to the local time of the animation.
	TimeOffset time.Duration

	// RepeatCount is the number of repetitions; zero means once and
	// [Forever] means indefinitely.
	RepeatCount float32

	// Fill determines the contribution outside of the active window.
	Fill FillModes

	// RemovedOnCompletion is whether the animation should be removed from
	// its sink once its active window has passed. It is informational
	// for sinks and has no effect on evaluation.
	RemovedOnCompletion bool
}

// AsTiming returns the [Timing] itself, so that every type embedding
// a Timing satisfies part of [Animation].
func (tm *Timing) AsTiming() *Timing {
	return tm
}

// IsForever returns whether the animation repeats indefinitely.
func (tm *Timing) IsForever() bool {
	return math.IsInf(float64(tm.RepeatCount), 1)
}

// ActiveDuration returns the length of the active window, which is the
// duration times the repeat count; it returns false if the animation
// repeats forever.
func (tm *Timing) ActiveDuration(dur time.Duration) (time.Duration, bool) {
	if tm.IsForever() {
		return 0, false
	}
	rc := tm.RepeatCount
	if rc <= 0 {
		rc = 1
	}
	return time.Duration(float64(dur) * float64(rc)), true
}

// sampleTime maps the given parent time into the local time of one
// repetition, in [0, dur]. It returns false if the animation contributes
// nothing at that time.
func (tm *Timing) sampleTime(parent, dur time.Duration) (time.Duration, bool) {
	if dur <= 0 {
		return 0, false
	}
	local := parent - tm.BeginTime + tm.TimeOffset
	if local < 0 {
		return 0, tm.Fill.holdsBefore()
	}
	if active, ok := tm.ActiveDuration(dur); ok && local >= active {
		if !tm.Fill.holdsAfter() {
			return 0, false
		}
		end := active % dur
		if end == 0 {
			end = dur
		}
		return end, true
	}
	return local % dur, true
}
