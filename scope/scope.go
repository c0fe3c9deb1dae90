// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scope provides shimmer elements bound to a shared state owned
// by a scope node, for declaratively built screens: the scope is the only
// writer of the style, the animating flag, and the begin time, and every
// element created from it follows them.
package scope

import (
	"image"
	"image/draw"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/shimmer"
	"cogentcore.org/shimmer/anim"
	"cogentcore.org/shimmer/style"
	"cogentcore.org/shimmer/viewtree"
)

// State is the state shared by the elements of a [Scope].
type State struct {

	// Style is the style of the effect.
	Style style.Style

	// Animating is whether the elements are animating.
	Animating bool

	// BeginTime is the media time at which Animating last became true.
	BeginTime time.Duration
}

// Scope is a node owning a [State] that the elements created from it
// are bound to. Its bounds are the reference rectangle of the elements.
type Scope struct {
	viewtree.NodeBase

	// Clock is the media clock used to stamp the begin time.
	// If it is nil, [anim.DefaultClock] is used.
	Clock anim.Clock

	state    State
	elements []*Element
}

// New returns a new idle [Scope] with the given frame and style, added as
// a child of parent if it is non-nil.
func New(parent viewtree.Node, frame math32.Box2, s style.Style) *Scope {
	sc := &Scope{state: State{Style: s}}
	sc.Frame = frame
	if parent != nil {
		viewtree.AddChild(parent, sc)
	}
	return sc
}

// State returns the current shared state.
func (sc *Scope) State() State {
	return sc.state
}

func (sc *Scope) Style() style.Style { return sc.state.Style }

func (sc *Scope) EffectBeginTime() time.Duration { return sc.state.BeginTime }

func (sc *Scope) SyncTargetView() viewtree.Node { return sc }

// Elements returns the elements bound to the scope.
func (sc *Scope) Elements() []*Element {
	return sc.elements
}

// SetStyle sets the style of all of the elements.
func (sc *Scope) SetStyle(s style.Style) {
	sc.state.Style = s
	sc.notify()
}

// SetAnimating starts or stops all of the elements. The begin time is
// stamped only when the flag goes from false to true.
func (sc *Scope) SetAnimating(on bool) {
	if on && !sc.state.Animating {
		clock := sc.Clock
		if clock == nil {
			clock = anim.DefaultClock
		}
		sc.state.BeginTime = clock.Now()
	}
	sc.state.Animating = on
	sc.notify()
}

func (sc *Scope) notify() {
	for _, e := range sc.elements {
		e.update()
	}
}

// NewElement returns a new [Element] bound to the scope with the given
// frame in the coordinate space of parent, which must be the scope or
// one of its descendants. The element immediately follows the state.
func (sc *Scope) NewElement(parent viewtree.Node, frame math32.Box2) *Element {
	e := &Element{scope: sc, core: shimmer.NewCore()}
	e.Frame = frame
	viewtree.AddChild(parent, e)
	sc.elements = append(sc.elements, e)
	e.update()
	return e
}

// Remove unbinds the element from the scope, stops it, and removes it
// from its parent.
func (sc *Scope) Remove(e *Element) {
	for i, el := range sc.elements {
		if el == e {
			sc.elements = append(sc.elements[:i], sc.elements[i+1:]...)
			break
		}
	}
	e.core.Stop()
	if p := e.Parent(); p != nil {
		viewtree.RemoveChild(p, e)
	}
}

// Element is a shimmer element bound to the state of a [Scope].
type Element struct {
	viewtree.NodeBase

	scope *Scope
	core  *shimmer.Core
}

// Scope returns the scope the element is bound to.
func (e *Element) Scope() *Scope {
	return e.scope
}

// Core returns the drawing core of the element.
func (e *Element) Core() *shimmer.Core {
	return e.core
}

// IsAnimating returns whether the element is animating.
func (e *Element) IsAnimating() bool {
	return e.core.IsAnimating()
}

// Layout updates the element after its geometry or that of its scope
// has changed.
func (e *Element) Layout() {
	e.update()
}

// update pushes the geometry and the state of the scope into the core,
// and starts or stops it to match.
func (e *Element) update() {
	st := e.scope.state
	e.core.Layout(e.Size())
	e.core.Update(
		shimmer.WithBaseBounds(e.scope.Bounds()),
		shimmer.WithElementFrame(viewtree.FrameIn(e, e.scope)),
		shimmer.WithStyle(st.Style),
		shimmer.WithBeginTime(st.BeginTime),
	)
	if e.core.IsAnimating() == st.Animating {
		return
	}
	if st.Animating {
		e.core.Start()
	} else {
		e.core.Stop()
	}
}

// Draw draws the effect at media time now, with the element placed at
// box in dst coordinates.
func (e *Element) Draw(dst draw.Image, box math32.Box2, clip image.Rectangle, now time.Duration) {
	e.core.Draw(dst, box, clip, now)
}
