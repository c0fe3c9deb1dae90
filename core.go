// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shimmer

import (
	"image"
	"image/draw"
	"log/slog"
	"slices"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/shimmer/geom"
	"cogentcore.org/shimmer/layer"
	"cogentcore.org/shimmer/style"
	"cogentcore.org/shimmer/sweep"
)

// AnimationKey is the key under which a [Core] installs its animation
// on its gradient.
const AnimationKey = "ShimmerEffect"

// Core is the drawing core of a shimmer element: it owns the gradient
// and keeps its animation in line with the geometry, style, and begin
// time it is given. It is idle until [Core.Start] is called.
type Core struct {

	// Layer is the gradient that the effect is drawn with. Its frame is
	// a square covering the element, set by [Core.Layout].
	Layer *layer.Gradient

	animating    bool
	baseBounds   math32.Box2
	elementFrame math32.Box2
	style        style.Style
	beginTime    time.Duration
}

// NewCore returns a new idle [Core] with the default style.
func NewCore() *Core {
	return &Core{Layer: layer.NewGradient(), style: style.Default()}
}

// Option is an option for [Core.Update].
type Option func(c *Core)

// WithBaseBounds sets the bounds of the sync target.
func WithBaseBounds(b math32.Box2) Option {
	return func(c *Core) { c.baseBounds = b }
}

// WithElementFrame sets the frame of the element in the coordinate
// space of the sync target.
func WithElementFrame(f math32.Box2) Option {
	return func(c *Core) { c.elementFrame = f }
}

// WithStyle sets the style of the effect.
func WithStyle(s style.Style) Option {
	return func(c *Core) { c.style = s }
}

// WithBeginTime sets the begin time of the sync target.
func WithBeginTime(t time.Duration) Option {
	return func(c *Core) { c.beginTime = t }
}

// IsAnimating returns whether the core has its animation installed.
func (c *Core) IsAnimating() bool {
	return c.animating
}

// Style returns the current style of the core.
func (c *Core) Style() style.Style {
	return c.style
}

// Start installs the animation, or refreshes it in place if it is
// already animating.
func (c *Core) Start() {
	c.animating = true
	c.setupAnimation()
}

// Stop removes the animation and the colors, so that nothing is drawn.
func (c *Core) Stop() {
	c.animating = false
	c.Layer.RemoveAnimation(AnimationKey)
	c.Layer.SetColors(nil)
}

// Update applies the given options, and rebuilds the animation if the
// core is animating. While idle it only stores them.
func (c *Core) Update(opts ...Option) {
	for _, o := range opts {
		o(c)
	}
	if c.animating {
		c.setupAnimation()
	}
}

// Layout sets the size of the element, fitting the gradient frame to a
// square covering it, and rebuilds the animation if the core is animating.
func (c *Core) Layout(size math32.Vector2) {
	c.Layer.Frame = geom.AspectFillSquare(size)
	if geom.Width(c.Layer.Frame) == 0 {
		slog.Debug("shimmer: zero-size gradient frame", "size", size)
	}
	if c.animating {
		c.setupAnimation()
	}
}

// Animator returns the sweep computation for the current inputs.
func (c *Core) Animator() *sweep.Animator {
	return &sweep.Animator{
		ReferenceBounds: c.baseBounds,
		ElementFrame:    c.elementFrame,
		GradientFrame:   c.Layer.Frame,
		Style:           c.style,
		BeginTime:       c.beginTime,
	}
}

// Describe returns the sweep description for the current inputs at
// media time now.
func (c *Core) Describe(now time.Duration) *sweep.Description {
	return c.Animator().Describe(now)
}

func (c *Core) setupAnimation() {
	c.Layer.RemoveAnimation(AnimationKey)
	a := c.Animator()
	// the installed ramp is only replaced by a different one
	if cs := a.Colors(); !slices.Equal(c.Layer.Colors(), cs) {
		c.Layer.SetColors(cs)
	}
	c.Layer.AddAnimation(AnimationKey, a.Animation())
}

// Draw draws the effect at media time now onto dst, with the element
// placed at box in dst coordinates. Drawing is clipped to the element
// and to clip. An idle core draws nothing.
func (c *Core) Draw(dst draw.Image, box math32.Box2, clip image.Rectangle, now time.Duration) {
	if !c.animating {
		return
	}
	gb := geom.Translate(c.Layer.Frame, box.Min)
	c.Layer.Draw(dst, gb, clip.Intersect(box.ToRect()), now)
}
