// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replicate

import (
	"fmt"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/shimmer/geom"
	"cogentcore.org/shimmer/viewtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCell struct {
	viewtree.NodeBase
	starts, stops int
	animating     bool
}

func (c *testCell) StartAnimating() { c.starts++; c.animating = true }

func (c *testCell) StopAnimating() { c.stops++; c.animating = false }

func newTestCell() Cell { return &testCell{} }

func TestCount(t *testing.T) {
	tests := []struct {
		available, item, spacing float32
		mode                     EdgeModes
		want                     int
	}{
		{100, 30, 0, Within, 3},
		{100, 30, 0, Beyond, 4},
		{90, 30, 0, Within, 3},
		{90, 30, 0, Beyond, 3},
		{100, 30, 5, Within, 3},
		{100, 30, 5, Beyond, 3},
		{100, 30, 10, Within, 2},
		{100, 30, 10, Beyond, 3},
		{20, 30, 0, Within, 0},
		{20, 30, 0, Beyond, 1},
		{100, 0, 0, Beyond, 0},
		{0, 30, 10, Beyond, 0},
		{-5, 30, 0, Within, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v/%v/%v/%v", tt.available, tt.item, tt.spacing, tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.want, Count(tt.available, tt.item, tt.spacing, tt.mode))
		})
	}
}

func TestEdgeModesString(t *testing.T) {
	assert.Equal(t, "beyond", Beyond.String())
	assert.Equal(t, "within", Within.String())
	assert.Equal(t, "EdgeModes(7)", EdgeModes(7).String())
	var em EdgeModes
	require.NoError(t, em.SetString("within"))
	assert.Equal(t, Within, em)
	assert.Error(t, em.SetString("outside"))
}

func TestItemSize(t *testing.T) {
	assert.Equal(t, math32.Vec2(10, 20), FixedSize(10, 20).Resolve(300))
	assert.Equal(t, math32.Vec2(300, 20), FixedHeight(20).Resolve(300))
}

func TestLayoutFixedHeight(t *testing.T) {
	r := New(nil, geom.Rect(0, 0, 320, 300), FixedHeight(80), newTestCell)
	r.Set(WithInset(10), WithLineSpacing(10))
	require.Len(t, r.Cells(), 1)
	assert.Equal(t, geom.Rect(10, 10, 300, 80), r.Cells()[0].AsNode().Frame)
	// 280 high: floor(290/90) = 3 rows reach 260, so beyond adds one
	assert.Equal(t, 4, r.InstanceCount())
	assert.Equal(t, math32.Vec2(0, 90), r.InstanceOffset())
	assert.Equal(t, 1, r.NumChildren())

	r.Set(WithEdgeModes(Beyond, Within))
	assert.Equal(t, 3, r.InstanceCount())
}

func TestLayoutColumns(t *testing.T) {
	r := New(nil, geom.Rect(0, 0, 100, 40), FixedSize(30, 40), newTestCell)
	require.Len(t, r.Cells(), 4)
	for i, c := range r.Cells() {
		assert.Equal(t, geom.Rect(float32(30*i), 0, 30, 40), c.AsNode().Frame)
		assert.Same(t, r, c.AsNode().Parent())
	}

	first := r.Cells()
	r.Set(WithEdgeModes(Within, Within))
	cells := r.Cells()
	require.Len(t, cells, 3)
	assert.Equal(t, first[:3], cells, "cells are removed from the end")
	assert.Nil(t, first[3].AsNode().Parent())
	// 100 - 3*30 = 10 is shared by 2 gaps
	assert.Equal(t, geom.Rect(0, 0, 30, 40), cells[0].AsNode().Frame)
	assert.Equal(t, geom.Rect(35, 0, 30, 40), cells[1].AsNode().Frame)
	assert.Equal(t, geom.Rect(70, 0, 30, 40), cells[2].AsNode().Frame)
}

func TestAnimating(t *testing.T) {
	r := New(nil, geom.Rect(0, 0, 60, 40), FixedSize(30, 40), newTestCell)
	require.Len(t, r.Cells(), 2)
	r.StartAnimating()
	assert.True(t, r.IsAnimating())
	for _, c := range r.Cells() {
		assert.True(t, c.(*testCell).animating)
	}

	r.Frame = geom.Rect(0, 0, 90, 40)
	r.Layout()
	cells := r.Cells()
	require.Len(t, cells, 3)
	assert.Equal(t, 2, cells[0].(*testCell).starts, "existing cells restart")
	assert.Equal(t, 1, cells[2].(*testCell).starts, "new cells start")

	r.Frame = geom.Rect(0, 0, 30, 40)
	r.Layout()
	assert.False(t, cells[2].(*testCell).animating, "removed cells stop")

	r.StopAnimating()
	assert.False(t, r.IsAnimating())
	assert.False(t, r.Cells()[0].(*testCell).animating)
}

func TestLayoutNilFactory(t *testing.T) {
	r := New(nil, geom.Rect(0, 0, 100, 100), FixedSize(10, 10), nil)
	assert.Empty(t, r.Cells())
	assert.Equal(t, 10, r.InstanceCount())
}
