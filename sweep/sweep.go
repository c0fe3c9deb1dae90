// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sweep computes the animation of a shimmer effect: where the
// gradient band starts and ends, in the normalized coordinates of one
// element's gradient, so that every element measured against the same
// reference rectangle appears to be lit by one continuous sweep.
package sweep

import (
	"image/color"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/shimmer/anim"
	"cogentcore.org/shimmer/geom"
	"cogentcore.org/shimmer/style"
)

// Animator computes the sweep of one element. All of its inputs are
// plain values read fresh whenever the animation is (re)built; it keeps
// no state of its own.
//
// The style must satisfy [style.Style.Validate]; non-finite durations
// or angles produce unspecified (but non-panicking) results.
type Animator struct {

	// ReferenceBounds are the bounds of the sync target, in its own
	// coordinate space. The sweep crosses this rectangle.
	ReferenceBounds math32.Box2

	// ElementFrame is the frame of the element, in the coordinate space
	// of ReferenceBounds.
	ElementFrame math32.Box2

	// GradientFrame is the drawable area of the gradient, in the
	// coordinate space of the element. It must be square, since one
	// denominator (its width) normalizes both axes.
	GradientFrame math32.Box2

	// Style is the style of the effect.
	Style style.Style

	// BeginTime is the media time at which the sync target's sweep began.
	BeginTime time.Duration
}

// EffectDiameter is the diagonal of the reference rectangle.
func (a *Animator) EffectDiameter() float32 {
	return geom.Diagonal(a.ReferenceBounds)
}

// EffectWidth is the width of the gradient band along the sweep axis.
func (a *Animator) EffectWidth() float32 {
	return a.Style.EffectSpan.Width(a.EffectDiameter())
}

// Colors returns the color ramp of the gradient.
func (a *Animator) Colors() []color.RGBA {
	return a.Style.Colors()
}

// NormalizeAngle reduces the given angle in radians into [0, π). A sweep
// is symmetric about its own axis, so angles differing by π give the same
// effect radius.
func NormalizeAngle(angle float32) float32 {
	angle = math32.Mod(angle, math32.Pi)
	for angle < 0 {
		angle += 2 * math32.Pi
	}
	angle = math32.Mod(angle, math32.Pi)
	if angle >= math32.Pi { // float rounding just under a multiple of π
		angle = 0
	}
	return angle
}

// baseAngle is the tilt of the diagonal of the reference rectangle.
// Atan2 makes zero widths give π/2 and empty rectangles give 0.
func (a *Animator) baseAngle() float32 {
	sz := geom.Size(a.ReferenceBounds)
	return math32.Atan2(math32.Abs(sz.Y), math32.Abs(sz.X))
}

// EffectRadius is the distance from the center of the reference rectangle
// to the projection of its farthest corner onto the sweep axis, which is
// how far the band must travel from the center to clear the rectangle.
// It equals half of [Animator.EffectDiameter] only when the sweep is
// aligned with a diagonal of the rectangle.
//
// Below π/2 the farthest corner is the one on the main diagonal (tilted
// by the base angle); from π/2 on it is the one on the other diagonal
// (tilted by -base angle), which keeps the radius continuous at π/2
// for every aspect ratio.
func (a *Animator) EffectRadius() float32 {
	base := a.baseAngle()
	angle := NormalizeAngle(a.Style.EffectAngle)
	radius := a.EffectDiameter() / 2
	if angle < math32.Pi/2 {
		return math32.Abs(math32.Cos(base-angle)) * radius
	}
	return math32.Abs(math32.Cos(base+angle)) * radius
}

// direction returns the unit vector of the sweep axis, using the
// unnormalized angle so that the sweep direction is preserved.
func (a *Animator) direction() math32.Vector2 {
	s, c := math32.Sincos(a.Style.EffectAngle)
	return math32.Vec2(c, s)
}

// StartPointFromVector is the vector from the center of the reference
// rectangle to the start point of the gradient before the sweep.
func (a *Animator) StartPointFromVector() math32.Vector2 {
	return a.direction().MulScalar(-(a.EffectRadius() + a.EffectWidth()))
}

// StartPointToVector is the vector from the center of the reference
// rectangle to the start point of the gradient after the sweep.
func (a *Animator) StartPointToVector() math32.Vector2 {
	return a.direction().MulScalar(a.EffectRadius())
}

// EndPointFromVector is the vector from the center of the reference
// rectangle to the end point of the gradient before the sweep.
func (a *Animator) EndPointFromVector() math32.Vector2 {
	return a.direction().MulScalar(-a.EffectRadius())
}

// EndPointToVector is the vector from the center of the reference
// rectangle to the end point of the gradient after the sweep.
func (a *Animator) EndPointToVector() math32.Vector2 {
	return a.direction().MulScalar(a.EffectRadius() + a.EffectWidth())
}

// TargetPoint converts the point at the given vector from the center of
// the reference rectangle into the normalized coordinates of the gradient,
// where (0, 0) and (1, 1) are the corners of a square gradient frame.
// A gradient frame of zero width gives the zero point.
func (a *Animator) TargetPoint(fromCenter math32.Vector2) math32.Vector2 {
	onReference := geom.AddVector(geom.Mid(a.ReferenceBounds), fromCenter)
	referenceToElement := geom.VectorBetween(geom.Origin(a.ReferenceBounds), geom.Origin(a.ElementFrame))
	onElement := geom.SubtractVector(onReference, referenceToElement)
	elementToGradient := geom.VectorBetween(math32.Vector2{}, geom.Origin(a.GradientFrame))
	onGradient := geom.SubtractVector(onElement, elementToGradient)

	w := geom.Width(a.GradientFrame)
	if w == 0 {
		return math32.Vector2{}
	}
	return math32.Vec2(onGradient.X/w, onGradient.Y/w)
}

// StartPointFrom is the normalized start point before the sweep.
func (a *Animator) StartPointFrom() math32.Vector2 {
	return a.TargetPoint(a.StartPointFromVector())
}

// StartPointTo is the normalized start point after the sweep.
func (a *Animator) StartPointTo() math32.Vector2 {
	return a.TargetPoint(a.StartPointToVector())
}

// EndPointFrom is the normalized end point before the sweep.
func (a *Animator) EndPointFrom() math32.Vector2 {
	return a.TargetPoint(a.EndPointFromVector())
}

// EndPointTo is the normalized end point after the sweep.
func (a *Animator) EndPointTo() math32.Vector2 {
	return a.TargetPoint(a.EndPointToVector())
}

// Pass returns the animation of a single sweep: the start and end points
// of the gradient moving across with an ease-in-ease-out curve over
// [style.Style.Duration], holding their values outside of it.
func (a *Animator) Pass() *anim.Group {
	start := anim.NewBasic(anim.KeyStartPoint, a.StartPointFrom(), a.StartPointTo())
	start.Fill = anim.FillBoth
	end := anim.NewBasic(anim.KeyEndPoint, a.EndPointFrom(), a.EndPointTo())
	end.Fill = anim.FillBoth

	pass := anim.NewGroup(start, end)
	pass.Duration = a.Style.Duration
	pass.Fill = anim.FillBoth
	return pass
}

// Animation returns the full animation to install on the gradient: the
// [Animator.Pass] nested in a container of length duration + interval,
// so that the final state holds during the interval, repeated forever
// from the begin time of the sync target. The phase comes from BeginTime
// alone; [Description.TimeOffset] is reported, not applied again here.
func (a *Animator) Animation() *anim.Group {
	cycle := anim.NewGroup(a.Pass())
	cycle.Duration = a.Style.CycleDuration()
	cycle.RepeatCount = anim.Forever
	cycle.Fill = anim.FillBoth
	cycle.RemovedOnCompletion = false
	cycle.BeginTime = a.BeginTime
	return cycle
}

// TimeOffset returns the phase of a sweep of the given duration that
// began at begin, at media time now. It is always in [0, duration),
// including when now is before begin; it is zero for a non-positive
// duration.
func TimeOffset(now, begin, duration time.Duration) time.Duration {
	if duration <= 0 {
		return 0
	}
	off := (now - begin) % duration
	if off < 0 {
		off += duration
	}
	return off
}

// Description is everything needed to draw the shimmer of one element.
type Description struct {

	// Colors is the color ramp of the gradient.
	Colors []color.RGBA

	// StartFrom, StartTo, EndFrom, and EndTo are the normalized start and
	// end points of the gradient before and after a sweep.
	StartFrom, StartTo, EndFrom, EndTo math32.Vector2

	// Duration is the length of one sweep.
	Duration time.Duration

	// CycleDuration is the length of one repetition, including the interval.
	CycleDuration time.Duration

	// BeginTime is the media time at which the sync target's sweep began.
	BeginTime time.Duration

	// TimeOffset is the phase of the sweep when the description was made.
	TimeOffset time.Duration

	// Animation is the animation to install on the gradient.
	Animation *anim.Group
}

// Describe returns the [Description] of the sweep at media time now.
func (a *Animator) Describe(now time.Duration) *Description {
	return &Description{
		Colors:        a.Colors(),
		StartFrom:     a.StartPointFrom(),
		StartTo:       a.StartPointTo(),
		EndFrom:       a.EndPointFrom(),
		EndTo:         a.EndPointTo(),
		Duration:      a.Style.Duration,
		CycleDuration: a.Style.CycleDuration(),
		BeginTime:     a.BeginTime,
		TimeOffset:    TimeOffset(now, a.BeginTime, a.Style.Duration),
		Animation:     a.Animation(),
	}
}
