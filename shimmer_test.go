// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shimmer

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/shimmer/anim"
	"cogentcore.org/shimmer/geom"
	"cogentcore.org/shimmer/style"
	"cogentcore.org/shimmer/viewtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSyncTarget(t *testing.T) {
	root := &viewtree.NodeBase{Name: "root"}
	g := NewGroup(root, geom.Rect(0, 0, 300, 100))
	inner := &viewtree.NodeBase{Name: "inner", Frame: geom.Rect(10, 10, 200, 50)}
	viewtree.AddChild(g, inner)
	inGroup := NewView(inner, geom.Rect(0, 0, 40, 10))
	alone := NewView(root, geom.Rect(0, 200, 40, 10))

	assert.Same(t, g, ResolveSyncTarget(inGroup, inGroup), "transitive ancestor")
	assert.Same(t, alone, ResolveSyncTarget(alone, alone), "sibling group is not used")

	_, ok := FindSyncTarget(alone)
	assert.False(t, ok)
	_, ok = FindSyncTarget(g)
	assert.False(t, ok, "never the node itself")
}

func TestStartIdempotent(t *testing.T) {
	v := NewView(nil, geom.Rect(0, 0, 100, 20))
	start(v)
	first := v.Core().Layer.Animation(AnimationKey)
	colors := v.Core().Layer.Colors()
	require.NotNil(t, first)
	require.NotEmpty(t, colors)

	start(v)
	assert.True(t, v.IsAnimating())
	second := v.Core().Layer.Animation(AnimationKey)
	require.NotNil(t, second)
	assert.Equal(t, first, second, "equivalent animation")
	assert.Equal(t, []string{AnimationKey}, v.Core().Layer.AnimationKeys())
	assert.Same(t, &colors[0], &v.Core().Layer.Colors()[0], "same ramp is not reinstalled")

	v.StopAnimating()
	v.StopAnimating()
	assert.False(t, v.IsAnimating())
	assert.Nil(t, v.Core().Layer.Animation(AnimationKey))
	assert.Empty(t, v.Core().Layer.Colors())
}

// start starts v with a fixed clock, so its animations compare equal.
func start(v *View) {
	if v.Clock == nil {
		v.Clock = &anim.ManualClock{}
	}
	v.StartAnimating()
}

func TestApplyStyleIdle(t *testing.T) {
	v := NewView(nil, geom.Rect(0, 0, 100, 20))
	s := style.Default()
	s.Duration = 3 * time.Second
	v.ApplyStyle(s)
	assert.Equal(t, s, v.Style())
	assert.Equal(t, s, v.Core().Style())
	assert.False(t, v.IsAnimating())
	assert.Nil(t, v.Core().Layer.Animation(AnimationKey))
	assert.Empty(t, v.Core().Layer.Colors())
}

func TestApplyStyleAnimating(t *testing.T) {
	v := NewView(nil, geom.Rect(0, 0, 100, 20))
	start(v)
	s := style.Default()
	s.BaseColor = color.RGBA{200, 0, 0, 255}
	s.Duration = 2 * time.Second
	v.ApplyStyle(s)
	assert.True(t, v.IsAnimating())
	assert.Equal(t, s.BaseColor, v.Core().Layer.Colors()[0], "new ramp is installed")
	a := v.Core().Layer.Animation(AnimationKey)
	require.NotNil(t, a)
	assert.Equal(t, s.CycleDuration(), a.AsTiming().Duration)
}

func TestGroupSharesBeginTime(t *testing.T) {
	clock := &anim.ManualClock{Time: 2 * time.Second}
	g := NewGroup(nil, geom.Rect(0, 0, 300, 100))
	g.Clock = clock
	a := NewView(g, geom.Rect(0, 0, 100, 100))
	b := NewView(g, geom.Rect(200, 0, 100, 100))
	b.Clock = &anim.ManualClock{Time: 5 * time.Second}

	g.StartAnimating()
	assert.True(t, g.IsAnimating())
	assert.True(t, a.IsAnimating())
	assert.True(t, b.IsAnimating())
	assert.Equal(t, 2*time.Second, g.EffectBeginTime())

	da := a.Core().Describe(3 * time.Second)
	db := b.Core().Describe(3 * time.Second)
	assert.Equal(t, 2*time.Second, da.BeginTime)
	assert.Equal(t, 2*time.Second, db.BeginTime)
	assert.Equal(t, time.Second, da.TimeOffset)

	// the band is in the same place in reference coordinates: b is
	// 200 to the right, and both gradients are 100 wide
	assert.InDelta(t, da.StartFrom.X-2, db.StartFrom.X, 1e-4)
	assert.InDelta(t, da.StartFrom.Y, db.StartFrom.Y, 1e-4)

	g.StopAnimating()
	assert.False(t, a.IsAnimating())
	assert.False(t, b.IsAnimating())
}

func TestGroupSetStyle(t *testing.T) {
	g := NewGroup(nil, geom.Rect(0, 0, 300, 100))
	v := NewView(g, geom.Rect(0, 0, 100, 100))
	g.StartAnimating()
	s := style.Default()
	s.HighlightColor = color.RGBA{255, 0, 0, 255}
	g.SetStyle(s)
	assert.Equal(t, s, v.Style())
	assert.Equal(t, s, v.Core().Style())
	assert.Equal(t, s.Colors(), v.Core().Layer.Colors())
}

func TestApplyStyleInGroup(t *testing.T) {
	g := NewGroup(nil, geom.Rect(0, 0, 300, 100))
	g.Clock = &anim.ManualClock{Time: time.Second}
	v := NewView(g, geom.Rect(100, 0, 100, 100))
	g.StartAnimating()

	s := style.Default()
	s.BaseColor = color.RGBA{200, 0, 0, 255}
	v.ApplyStyle(s)
	assert.Equal(t, s, v.Core().Style())
	assert.Equal(t, s.BaseColor, v.Core().Layer.Colors()[0], "new ramp is installed")
	assert.Equal(t, time.Second, v.Core().Describe(0).BeginTime, "begin time still comes from the group")
	assert.Equal(t, geom.Rect(0, 0, 300, 100), v.Core().Animator().ReferenceBounds)

	v.StopAnimating()
	v.StartAnimating()
	assert.Equal(t, s.BaseColor, v.Core().Layer.Colors()[0], "restarting keeps the style of the view")
}

func TestNestedGroupSetStyle(t *testing.T) {
	outer := NewGroup(nil, geom.Rect(0, 0, 300, 300))
	inner := NewGroup(outer, geom.Rect(0, 0, 300, 100))
	v := NewView(inner, geom.Rect(0, 0, 100, 100))
	s := style.Default()
	s.EffectAngle = 1
	outer.SetStyle(s)
	assert.Equal(t, s, inner.Style())
	assert.Equal(t, s, v.Style())
}

func TestNestedGroups(t *testing.T) {
	outer := NewGroup(nil, geom.Rect(0, 0, 300, 300))
	inner := NewGroup(outer, geom.Rect(0, 0, 300, 100))
	v := NewView(inner, geom.Rect(0, 0, 100, 100))
	outer.StartAnimating()
	assert.True(t, inner.IsAnimating())
	assert.True(t, v.IsAnimating())
	assert.Same(t, inner, ResolveSyncTarget(v, v))
}

func TestLayout(t *testing.T) {
	g := NewGroup(nil, geom.Rect(0, 0, 300, 100))
	v := NewView(g, geom.Rect(0, 0, 100, 50))
	v.Layout()
	assert.Equal(t, geom.Rect(0, -25, 100, 100), v.Core().Layer.Frame)
	assert.Nil(t, v.Core().Layer.Animation(AnimationKey), "layout while idle")

	g.StartAnimating()
	before := v.Core().Describe(0)
	v.Frame = geom.Rect(100, 0, 100, 50)
	v.Layout()
	after := v.Core().Describe(0)
	assert.InDelta(t, before.StartFrom.X-1, after.StartFrom.X, 1e-4, "geometry is refreshed")
	assert.Equal(t, after.Animation, v.Core().Layer.Animation(AnimationKey))
}

func TestCoreUpdateIdle(t *testing.T) {
	c := NewCore()
	c.Update(WithBaseBounds(geom.Rect(0, 0, 10, 10)), WithBeginTime(time.Second))
	assert.False(t, c.IsAnimating())
	assert.Empty(t, c.Layer.AnimationKeys())
	assert.Equal(t, time.Second, c.Animator().BeginTime)
	assert.Equal(t, geom.Rect(0, 0, 10, 10), c.Animator().ReferenceBounds)
}

func TestDraw(t *testing.T) {
	bg := color.RGBA{0, 0, 255, 255}
	newImage := func() *image.RGBA {
		img := image.NewRGBA(image.Rect(0, 0, 60, 30))
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
		return img
	}
	v := NewView(nil, geom.Rect(0, 0, 40, 20))
	box := math32.B2(10, 5, 50, 25)

	img := newImage()
	v.Draw(img, box, img.Bounds(), 0)
	assert.Equal(t, bg, img.RGBAAt(20, 10), "idle draws nothing")

	start(v)
	img = newImage()
	v.Draw(img, box, img.Bounds(), 0)
	assert.NotEqual(t, bg, img.RGBAAt(20, 10))
	assert.Equal(t, bg, img.RGBAAt(5, 10), "clipped to the element")
	assert.Equal(t, bg, img.RGBAAt(20, 27), "clipped to the element")
}
