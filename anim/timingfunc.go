// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "cogentcore.org/core/math32"

// TimingFunction is a cubic Bézier easing curve from (0, 0) to (1, 1)
// with the two given control points, as used by CSS and most
// compositing runtimes.
type TimingFunction struct {
	P1, P2 math32.Vector2
}

// Standard timing functions.
var (
	Linear        = TimingFunction{math32.Vec2(0, 0), math32.Vec2(1, 1)}
	EaseIn        = TimingFunction{math32.Vec2(0.42, 0), math32.Vec2(1, 1)}
	EaseOut       = TimingFunction{math32.Vec2(0, 0), math32.Vec2(0.58, 1)}
	EaseInEaseOut = TimingFunction{math32.Vec2(0.42, 0), math32.Vec2(0.58, 1)}
)

// IsZero returns whether the timing function is unset, which is treated as [Linear].
func (tf TimingFunction) IsZero() bool {
	return tf == TimingFunction{}
}

func bezier(a, b, t float32) float32 {
	u := 1 - t
	return 3*u*u*t*a + 3*u*t*t*b + t*t*t
}

func bezierSlope(a, b, t float32) float32 {
	u := 1 - t
	return 3*u*u*a + 6*u*t*(b-a) + 3*t*t*(1-b)
}

// Value returns the eased progress for the given linear progress x,
// which is clamped to [0, 1].
func (tf TimingFunction) Value(x float32) float32 {
	x = math32.Clamp(x, 0, 1)
	if tf.IsZero() || tf == Linear || x == 0 || x == 1 {
		return x
	}
	// Newton's method, falling back to bisection on a flat slope.
	t := x
	for range 8 {
		err := bezier(tf.P1.X, tf.P2.X, t) - x
		if math32.Abs(err) < 1e-6 {
			return bezier(tf.P1.Y, tf.P2.Y, t)
		}
		d := bezierSlope(tf.P1.X, tf.P2.X, t)
		if math32.Abs(d) < 1e-6 {
			break
		}
		t -= err / d
	}
	lo, hi := float32(0), float32(1)
	t = x
	for range 30 {
		xt := bezier(tf.P1.X, tf.P2.X, t)
		if math32.Abs(xt-x) < 1e-6 {
			break
		}
		if xt < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bezier(tf.P1.Y, tf.P2.Y, t)
}
