// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shimmer

import (
	"image"
	"image/draw"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/shimmer/anim"
	"cogentcore.org/shimmer/style"
	"cogentcore.org/shimmer/viewtree"
)

// View is a shimmer element in a view tree. It is synchronized to the
// nearest [SyncTarget] ancestor, and acts as its own sync target when
// there is none.
type View struct {
	viewtree.NodeBase

	// Clock is the media clock used to stamp the begin time.
	// If it is nil, [anim.DefaultClock] is used.
	Clock anim.Clock

	core      *Core
	style     style.Style
	beginTime time.Duration
}

// NewView returns a new idle [View] with the given frame in the coordinate
// space of parent, added as a child of parent if it is non-nil.
func NewView(parent viewtree.Node, frame math32.Box2) *View {
	v := &View{core: NewCore(), style: style.Default()}
	v.Frame = frame
	if parent != nil {
		viewtree.AddChild(parent, v)
	}
	return v
}

func (v *View) Style() style.Style { return v.style }

func (v *View) EffectBeginTime() time.Duration { return v.beginTime }

func (v *View) SyncTargetView() viewtree.Node { return v }

// Core returns the drawing core of the view.
func (v *View) Core() *Core {
	return v.core
}

// IsAnimating returns whether the view is animating.
func (v *View) IsAnimating() bool {
	return v.core.IsAnimating()
}

func (v *View) clock() anim.Clock {
	if v.Clock != nil {
		return v.Clock
	}
	return anim.DefaultClock
}

// geometry returns the reference bounds and the frame of the view
// relative to the given sync target.
func (v *View) geometry(st SyncTarget) (base, elem math32.Box2) {
	tv := st.SyncTargetView()
	return tv.AsNode().Bounds(), viewtree.FrameIn(v, tv)
}

// StartAnimating stamps the begin time of the view, resolves its sync
// target, and starts the effect with the style of the view and the
// geometry and begin time of the target. Calling it while animating
// refreshes the effect.
func (v *View) StartAnimating() {
	v.beginTime = v.clock().Now()
	st := ResolveSyncTarget(v, v)
	base, elem := v.geometry(st)
	v.core.Layout(v.Size())
	v.core.Update(WithBaseBounds(base), WithElementFrame(elem), WithStyle(v.style), WithBeginTime(st.EffectBeginTime()))
	v.core.Start()
}

// StopAnimating stops the effect.
func (v *View) StopAnimating() {
	v.core.Stop()
}

// ApplyStyle sets the style of the view. The effect is rebuilt with it
// only if the view is animating.
func (v *View) ApplyStyle(s style.Style) {
	v.style = s
	v.core.Update(WithStyle(s))
}

// Layout updates the geometry of the effect after the frame of the
// view or of its sync target has changed.
func (v *View) Layout() {
	base, elem := v.geometry(ResolveSyncTarget(v, v))
	v.core.Layout(v.Size())
	v.core.Update(WithBaseBounds(base), WithElementFrame(elem))
}

// Draw draws the effect at media time now, with the view placed at box
// in dst coordinates.
func (v *View) Draw(dst draw.Image, box math32.Box2, clip image.Rectangle, now time.Duration) {
	v.core.Draw(dst, box, clip, now)
}
