// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestRect(t *testing.T) {
	r := Rect(10, 20, 30, 40)
	assert.Equal(t, math32.Vec2(10, 20), Origin(r))
	assert.Equal(t, math32.Vec2(30, 40), Size(r))
	assert.Equal(t, float32(30), Width(r))
	assert.Equal(t, float32(40), Height(r))
	assert.Equal(t, Rect(0, 0, 30, 40), Bounds(r))
	assert.Equal(t, Rect(15, 15, 30, 40), Translate(r, math32.Vec2(5, -5)))
}

func TestDiagonal(t *testing.T) {
	assert.Equal(t, float32(50), Diagonal(Rect(3, 4, 30, 40)))
	assert.InDelta(t, 300*math32.Sqrt2, Diagonal(Rect(0, 0, 300, 300)), 1e-3)
	assert.Equal(t, float32(0), Diagonal(Rect(5, 5, 0, 0)))
}

func TestMid(t *testing.T) {
	assert.Equal(t, math32.Vec2(150, 150), Mid(Rect(0, 0, 300, 300)))
	assert.Equal(t, math32.Vec2(25, 40), Mid(Rect(10, 20, 30, 40)))
}

func TestVectors(t *testing.T) {
	p := math32.Vec2(1, 2)
	v := math32.Vec2(10, -4)
	assert.Equal(t, math32.Vec2(11, -2), AddVector(p, v))
	assert.Equal(t, math32.Vec2(-9, 6), SubtractVector(p, v))
	assert.Equal(t, math32.Vec2(9, -6), VectorBetween(p, math32.Vec2(10, -4)))
	assert.Equal(t, p, SubtractVector(AddVector(p, v), v))
}

func TestAspectFillSquare(t *testing.T) {
	assert.Equal(t, Rect(0, -25, 100, 100), AspectFillSquare(math32.Vec2(100, 50)))
	assert.Equal(t, Rect(-10, 0, 40, 40), AspectFillSquare(math32.Vec2(20, 40)))
	assert.Equal(t, Rect(0, 0, 30, 30), AspectFillSquare(math32.Vec2(30, 30)))
	assert.Equal(t, math32.Box2{}, AspectFillSquare(math32.Vector2{}))
}
