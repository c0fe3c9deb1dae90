// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sample builds demo skeleton screens for the shimmer tools.
package sample

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/shimmer"
	"cogentcore.org/shimmer/anim"
	"cogentcore.org/shimmer/geom"
	"cogentcore.org/shimmer/render"
	"cogentcore.org/shimmer/replicate"
	"cogentcore.org/shimmer/scope"
	"cogentcore.org/shimmer/style"
	"cogentcore.org/shimmer/viewtree"
)

// Background is the background color of the screens.
var Background = color.RGBA{255, 255, 255, 255}

// Kinds are the names of the available screens.
var Kinds = []string{"list", "scope"}

// Screen is a demo skeleton screen.
type Screen struct {

	// Root is the root of the tree of the screen.
	Root *render.Fill

	// Kind is the kind of the screen.
	Kind string

	style        style.Style
	animating    bool
	setAnimating func(on bool)
	setStyle     func(s style.Style)
}

// New returns a new idle screen of the given kind and size, whose begin
// times are stamped with the given clock.
func New(kind string, width, height float32, clock anim.Clock, s style.Style) (*Screen, error) {
	sc := &Screen{Kind: kind, style: s}
	sc.Root = render.NewFill(nil, geom.Rect(0, 0, width, height), Background)
	switch kind {
	case "list":
		sc.buildList(clock)
	case "scope":
		sc.buildScope(clock)
	default:
		return nil, fmt.Errorf("unknown screen %q (want one of %v)", kind, Kinds)
	}
	viewtree.Layout(sc.Root)
	return sc, nil
}

// Style returns the style of the screen.
func (sc *Screen) Style() style.Style {
	return sc.style
}

// IsAnimating returns whether the screen is animating.
func (sc *Screen) IsAnimating() bool {
	return sc.animating
}

// SetAnimating starts or stops the effect.
func (sc *Screen) SetAnimating(on bool) {
	sc.animating = on
	sc.setAnimating(on)
}

// SetStyle sets the style of the effect.
func (sc *Screen) SetStyle(s style.Style) {
	sc.style = s
	sc.setStyle(s)
}

// Elements returns the shimmer elements of the screen that are drawn,
// in tree order.
func (sc *Screen) Elements() []render.Drawer {
	var ds []render.Drawer
	viewtree.WalkDown(sc.Root, func(n viewtree.Node) bool {
		if d, ok := n.(render.Drawer); ok && n != viewtree.Node(sc.Root) {
			ds = append(ds, d)
		}
		return viewtree.Continue
	})
	return ds
}

// listCell is a list row placeholder: a thumbnail and three lines of
// decreasing length, all synchronized to the row.
type listCell struct {
	shimmer.Group
	thumb *shimmer.View
	lines [3]*shimmer.View
}

var lineLengths = [3]float32{1, 0.7, 0.4}

func newListCell(clock anim.Clock, s style.Style) *listCell {
	c := &listCell{}
	c.Clock = clock
	c.thumb = shimmer.NewView(c, geom.Rect(16, 10, 60, 60))
	for i := range c.lines {
		c.lines[i] = shimmer.NewView(c, math32.Box2{})
	}
	c.SetStyle(s)
	return c
}

// Layout sizes the lines to the width of the row.
func (c *listCell) Layout() {
	w := max(c.Size().X-108, 0)
	for i, l := range c.lines {
		l.Frame = geom.Rect(92, 14+20*float32(i), w*lineLengths[i], 12)
	}
}

func (sc *Screen) buildList(clock anim.Clock) {
	rep := replicate.New(sc.Root, geom.Bounds(sc.Root.Frame), replicate.FixedHeight(80), func() replicate.Cell {
		return newListCell(clock, sc.style)
	})
	rep.Set(replicate.WithLineSpacing(1))
	sc.setAnimating = func(on bool) {
		if on {
			rep.StartAnimating()
		} else {
			rep.StopAnimating()
		}
	}
	sc.setStyle = func(s style.Style) {
		for _, c := range rep.Cells() {
			c.(*listCell).SetStyle(s)
		}
	}
}

func (sc *Screen) buildScope(clock anim.Clock) {
	w, h := sc.Root.Size().X, sc.Root.Size().Y
	sp := scope.New(sc.Root, geom.Bounds(sc.Root.Frame), sc.style)
	sp.Clock = clock

	sp.NewElement(sp, geom.Rect(16, 16, 100, 12))
	sp.NewElement(sp, geom.Rect(16, 44, w-32, 60))
	sp.NewElement(sp, geom.Rect(16, 128, 100, 12))
	side := (w - 32 - 8) / 3
	for y := float32(156); side > 0 && y < h; y += side + 4 {
		row := &viewtree.NodeBase{Name: "row", Frame: geom.Rect(16, y, w-32, side)}
		viewtree.AddChild(sp, row)
		for i := range 3 {
			sp.NewElement(row, geom.Rect(float32(i)*(side+4), 0, side, side))
		}
	}
	sc.setAnimating = sp.SetAnimating
	sc.setStyle = sp.SetStyle
}
