// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layer provides the drawable animated-gradient sink that shimmer
// elements install their colors and animations on, and a software
// implementation of it based on [gradient.Linear].
package layer

import (
	"image"
	"image/color"
	"image/draw"
	"slices"
	"time"

	"cogentcore.org/core/colors/gradient"
	"cogentcore.org/core/math32"
	"cogentcore.org/shimmer/anim"
)

// Sink is a drawable gradient whose start and end points can be animated.
type Sink interface {

	// SetColors sets the ordered, evenly spaced colors of the gradient.
	// A nil slice clears them, after which nothing is drawn.
	SetColors(colors []color.RGBA)

	// Colors returns the current colors of the gradient.
	Colors() []color.RGBA

	// AddAnimation installs the animation under the given key,
	// replacing any animation already installed under it.
	AddAnimation(key string, a anim.Animation)

	// Animation returns the animation installed under the given key, or nil.
	Animation(key string) anim.Animation

	// RemoveAnimation removes the animation installed under the given key.
	RemoveAnimation(key string)
}

// Default point values of a gradient with no animation, which is a
// vertical gradient from the top to the bottom of its frame.
var (
	DefaultStartPoint = math32.Vec2(0.5, 0)
	DefaultEndPoint   = math32.Vec2(0.5, 1)
)

// Gradient is a software [Sink]. Its start and end points are in the
// unit coordinates of its frame: (0, 0) is the top-left corner and
// (1, 1) the bottom-right corner.
type Gradient struct {

	// Frame is the frame of the gradient in the coordinate space of its
	// owner. It is used by owners to place the gradient when drawing.
	Frame math32.Box2

	// StartPoint is the start point of the gradient when not animated.
	StartPoint math32.Vector2

	// EndPoint is the end point of the gradient when not animated.
	EndPoint math32.Vector2

	colors     []color.RGBA
	animations map[string]anim.Animation
	keys       []string
}

// NewGradient returns a new [Gradient] with the default points.
func NewGradient() *Gradient {
	return &Gradient{StartPoint: DefaultStartPoint, EndPoint: DefaultEndPoint}
}

func (g *Gradient) SetColors(colors []color.RGBA) {
	g.colors = slices.Clone(colors)
}

func (g *Gradient) Colors() []color.RGBA {
	return g.colors
}

func (g *Gradient) AddAnimation(key string, a anim.Animation) {
	if g.animations == nil {
		g.animations = map[string]anim.Animation{}
	}
	if _, has := g.animations[key]; !has {
		g.keys = append(g.keys, key)
	}
	g.animations[key] = a
}

func (g *Gradient) Animation(key string) anim.Animation {
	return g.animations[key]
}

func (g *Gradient) RemoveAnimation(key string) {
	if _, has := g.animations[key]; !has {
		return
	}
	delete(g.animations, key)
	g.keys = slices.DeleteFunc(g.keys, func(k string) bool { return k == key })
}

// AnimationKeys returns the keys of the installed animations in the
// order they were installed.
func (g *Gradient) AnimationKeys() []string {
	return slices.Clone(g.keys)
}

// Points returns the start and end points of the gradient at the given
// media time, applying the installed animations in installation order.
func (g *Gradient) Points(now time.Duration) (start, end math32.Vector2) {
	start, end = g.StartPoint, g.EndPoint
	for _, k := range g.keys {
		v := anim.Evaluate(g.animations[k], now)
		if p, ok := v[anim.KeyStartPoint]; ok {
			start = p
		}
		if p, ok := v[anim.KeyEndPoint]; ok {
			end = p
		}
	}
	return
}

// Image returns the gradient at the given media time as an image of
// unbounded extent, placing the frame at the given box in image space.
// It returns nil if the gradient has no colors.
func (g *Gradient) Image(box math32.Box2, now time.Duration) image.Image {
	n := len(g.colors)
	if n == 0 {
		return nil
	}
	lin := gradient.NewLinear()
	for i, c := range g.colors {
		pos := float32(0)
		if n > 1 {
			pos = float32(i) / float32(n-1)
		}
		lin.AddStop(c, pos)
	}
	lin.Start, lin.End = g.Points(now)
	if lin.Start == lin.End {
		// a degenerate axis has no direction; show the first color
		return image.NewUniform(g.colors[0])
	}
	lin.Update(1, box, math32.Identity2())
	return lin
}

// Draw draws the gradient at the given media time onto dst, with its
// frame placed at box in dst coordinates, limited to clip.
func (g *Gradient) Draw(dst draw.Image, box math32.Box2, clip image.Rectangle, now time.Duration) {
	img := g.Image(box, now)
	if img == nil {
		return
	}
	r := box.ToRect().Intersect(clip).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, img, r.Min, draw.Over)
}
