// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"time"

	"cogentcore.org/core/math32"
)

// Standard key paths of the point properties of a gradient.
const (
	KeyStartPoint = "startPoint"
	KeyEndPoint   = "endPoint"
)

// Values are animated point values by key path.
type Values map[string]math32.Vector2

// Animation is the interface that all animation types satisfy.
type Animation interface {

	// AsTiming returns the [Timing] of the animation.
	AsTiming() *Timing

	// apply records the values of the animation at the given local time
	// of one repetition, which has the given duration.
	apply(t, dur time.Duration, v Values)
}

// Evaluate returns the values of the given top-level animation at the
// given media time. It returns an empty map if the animation contributes
// nothing at that time.
func Evaluate(a Animation, now time.Duration) Values {
	v := Values{}
	evaluate(a, now, 0, v)
	return v
}

func evaluate(a Animation, parent, inherited time.Duration, v Values) {
	tm := a.AsTiming()
	dur := tm.Duration
	if dur <= 0 {
		dur = inherited
	}
	t, ok := tm.sampleTime(parent, dur)
	if !ok {
		return
	}
	a.apply(t, dur, v)
}

// Basic animates a single point property from one value to another.
type Basic struct {
	Timing

	// KeyPath is the name of the animated property.
	KeyPath string

	// From is the value at the start of each repetition.
	From math32.Vector2

	// To is the value at the end of each repetition.
	To math32.Vector2

	// TimingFunction maps linear progress to eased progress.
	TimingFunction TimingFunction
}

// NewBasic returns a new [Basic] animation of the given property
// with the [EaseInEaseOut] timing function.
func NewBasic(keyPath string, from, to math32.Vector2) *Basic {
	return &Basic{KeyPath: keyPath, From: from, To: to, TimingFunction: EaseInEaseOut}
}

// ValueAt returns the value at the given progress in [0, 1].
func (b *Basic) ValueAt(progress float32) math32.Vector2 {
	p := b.TimingFunction.Value(progress)
	return math32.Vec2(math32.Lerp(b.From.X, b.To.X, p), math32.Lerp(b.From.Y, b.To.Y, p))
}

func (b *Basic) apply(t, dur time.Duration, v Values) {
	v[b.KeyPath] = b.ValueAt(float32(float64(t) / float64(dur)))
}

// Group runs several animations together in a shared local time.
// Children are evaluated in order, so later children win on the same key.
type Group struct {
	Timing

	// Animations are the children of the group.
	Animations []Animation
}

// NewGroup returns a new [Group] of the given animations.
func NewGroup(animations ...Animation) *Group {
	return &Group{Animations: animations}
}

func (g *Group) apply(t, dur time.Duration, v Values) {
	for _, a := range g.Animations {
		evaluate(a, t, dur, v)
	}
}
