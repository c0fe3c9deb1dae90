// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shimmer

import (
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/shimmer/anim"
	"cogentcore.org/shimmer/style"
	"cogentcore.org/shimmer/viewtree"
)

// animator is implemented by the nodes that a [Group] starts and stops.
type animator interface {
	StartAnimating()
	StopAnimating()
}

// Group is a container that is the [SyncTarget] of the shimmer elements
// below it, such as the placeholders of one list cell. Starting a group
// starts all of them with one shared begin time.
type Group struct {
	viewtree.NodeBase

	// Clock is the media clock used to stamp the begin time.
	// If it is nil, [anim.DefaultClock] is used.
	Clock anim.Clock

	style     style.Style
	beginTime time.Duration
	animating bool
}

// NewGroup returns a new [Group] with the default style and the given
// frame, added as a child of parent if it is non-nil.
func NewGroup(parent viewtree.Node, frame math32.Box2) *Group {
	g := &Group{style: style.Default()}
	g.Frame = frame
	if parent != nil {
		viewtree.AddChild(parent, g)
	}
	return g
}

func (g *Group) Style() style.Style { return g.style }

func (g *Group) EffectBeginTime() time.Duration { return g.beginTime }

func (g *Group) SyncTargetView() viewtree.Node { return g }

// IsAnimating returns whether the group is animating.
func (g *Group) IsAnimating() bool {
	return g.animating
}

// SetStyle sets the style of the group and applies it to the elements
// and nested groups below it.
func (g *Group) SetStyle(s style.Style) {
	g.style = s
	g.each(func(a animator) {
		switch a := a.(type) {
		case *View:
			a.ApplyStyle(s)
		case interface{ SetStyle(s style.Style) }:
			a.SetStyle(s)
		}
	})
}

// StartAnimating stamps the begin time of the group and starts the
// elements below it.
func (g *Group) StartAnimating() {
	g.animating = true
	if g.Clock != nil {
		g.beginTime = g.Clock.Now()
	} else {
		g.beginTime = anim.DefaultClock.Now()
	}
	g.each(animator.StartAnimating)
}

// StopAnimating stops the elements below the group.
func (g *Group) StopAnimating() {
	g.animating = false
	g.each(animator.StopAnimating)
}

// each calls fun on the nearest descendants implementing animator,
// without descending into them: nested groups handle their own.
func (g *Group) each(fun func(a animator)) {
	for _, k := range g.Children() {
		viewtree.WalkDown(k, func(n viewtree.Node) bool {
			if a, ok := n.(animator); ok {
				fun(a)
				return viewtree.Break
			}
			return viewtree.Continue
		})
	}
}
