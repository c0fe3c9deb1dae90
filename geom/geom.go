// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the small set of rectangle, point, and vector
// helpers used by the shimmer effect, operating on [math32.Box2] and
// [math32.Vector2] values in whatever coordinate space the caller uses.
package geom

import "cogentcore.org/core/math32"

// Rect returns a [math32.Box2] with the given origin and size.
func Rect(x, y, width, height float32) math32.Box2 {
	return math32.B2(x, y, x+width, y+height)
}

// Origin returns the minimum corner of the given box.
func Origin(b math32.Box2) math32.Vector2 {
	return b.Min
}

// Size returns the width and height of the given box.
func Size(b math32.Box2) math32.Vector2 {
	return b.Max.Sub(b.Min)
}

// Width returns the width of the given box.
func Width(b math32.Box2) float32 {
	return b.Max.X - b.Min.X
}

// Height returns the height of the given box.
func Height(b math32.Box2) float32 {
	return b.Max.Y - b.Min.Y
}

// Bounds returns a box with the same size as b and a zero origin,
// which is the box expressed in its own local coordinate space.
func Bounds(b math32.Box2) math32.Box2 {
	return math32.Box2{Max: Size(b)}
}

// Diagonal returns the length of the diagonal of the given box.
func Diagonal(b math32.Box2) float32 {
	sz := Size(b)
	return math32.Sqrt(sz.X*sz.X + sz.Y*sz.Y)
}

// Mid returns the center point of the given box.
func Mid(b math32.Box2) math32.Vector2 {
	sz := Size(b)
	return math32.Vec2(b.Min.X+sz.X/2, b.Min.Y+sz.Y/2)
}

// Translate returns the box moved by the given offset.
func Translate(b math32.Box2, offset math32.Vector2) math32.Box2 {
	return math32.Box2{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// AddVector returns the point p moved by the vector v.
func AddVector(p, v math32.Vector2) math32.Vector2 {
	return math32.Vec2(p.X+v.X, p.Y+v.Y)
}

// SubtractVector returns the point p moved by the inverse of the vector v.
func SubtractVector(p, v math32.Vector2) math32.Vector2 {
	return math32.Vec2(p.X-v.X, p.Y-v.Y)
}

// VectorBetween returns the vector from p1 to p2.
func VectorBetween(p1, p2 math32.Vector2) math32.Vector2 {
	return math32.Vec2(p2.X-p1.X, p2.Y-p1.Y)
}

// AspectFillSquare returns the smallest square that covers a box of the
// given size at the origin, centered on it.
func AspectFillSquare(size math32.Vector2) math32.Box2 {
	side := max(size.X, size.Y)
	return Rect((size.X-side)/2, (size.Y-side)/2, side, side)
}
