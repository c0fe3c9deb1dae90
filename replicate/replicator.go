// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replicate

import (
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles/sides"
	"cogentcore.org/shimmer/geom"
	"cogentcore.org/shimmer/viewtree"
)

// Replicator is a node that fills its frame with cells. It keeps one row
// of cells as its children and reports how many times, and with which
// offset, that row is repeated downward; see [Replicated].
type Replicator struct {
	viewtree.NodeBase

	// ItemSize is the size policy of the cells.
	ItemSize ItemSize

	// InteritemSpacing is the spacing between the cells of a row.
	InteritemSpacing float32

	// LineSpacing is the spacing between rows.
	LineSpacing float32

	// Inset is the inset of the cells from the edges of the frame.
	Inset sides.Floats

	// HorizontalEdgeMode is the edge mode of the columns.
	HorizontalEdgeMode EdgeModes

	// VerticalEdgeMode is the edge mode of the rows.
	VerticalEdgeMode EdgeModes

	// NewCell returns a new cell when the row needs one more.
	NewCell func() Cell

	cells          []Cell
	instanceCount  int
	instanceOffset math32.Vector2
	animating      bool
}

// Replicated is implemented by nodes whose children are drawn repeatedly,
// each time translated by a further offset.
type Replicated interface {
	viewtree.Node

	// InstanceCount returns how many times the children are drawn.
	InstanceCount() int

	// InstanceOffset returns the translation between two instances.
	InstanceOffset() math32.Vector2
}

// New returns a new [Replicator] with the given frame, item size and
// cell factory, added as a child of parent if it is non-nil. Both edge
// modes are [Beyond]. It is laid out once.
func New(parent viewtree.Node, frame math32.Box2, itemSize ItemSize, newCell func() Cell) *Replicator {
	r := &Replicator{ItemSize: itemSize, NewCell: newCell}
	r.Frame = frame
	if parent != nil {
		viewtree.AddChild(parent, r)
	}
	r.Layout()
	return r
}

// Option is an option for [Replicator.Set].
type Option func(r *Replicator)

// WithItemSize sets the item size.
func WithItemSize(is ItemSize) Option {
	return func(r *Replicator) { r.ItemSize = is }
}

// WithInteritemSpacing sets the spacing between the cells of a row.
func WithInteritemSpacing(s float32) Option {
	return func(r *Replicator) { r.InteritemSpacing = s }
}

// WithLineSpacing sets the spacing between rows.
func WithLineSpacing(s float32) Option {
	return func(r *Replicator) { r.LineSpacing = s }
}

// WithInset sets the inset, using the CSS order of [sides.NewFloats].
func WithInset(vals ...float32) Option {
	return func(r *Replicator) { r.Inset = sides.NewFloats(vals...) }
}

// WithEdgeModes sets the horizontal and vertical edge modes.
func WithEdgeModes(horizontal, vertical EdgeModes) Option {
	return func(r *Replicator) {
		r.HorizontalEdgeMode = horizontal
		r.VerticalEdgeMode = vertical
	}
}

// Set applies the given options and lays out the replicator again.
func (r *Replicator) Set(opts ...Option) {
	for _, o := range opts {
		o(r)
	}
	r.Layout()
}

// Cells returns the cells of the row.
func (r *Replicator) Cells() []Cell {
	return slices.Clone(r.cells)
}

func (r *Replicator) InstanceCount() int { return r.instanceCount }

func (r *Replicator) InstanceOffset() math32.Vector2 { return r.instanceOffset }

// IsAnimating returns whether the replicator is animating.
func (r *Replicator) IsAnimating() bool {
	return r.animating
}

// Layout computes the number of columns and rows that fit in the frame,
// adds or removes cells at the end of the row to match, and places them.
// Cells are restarted while animating so that they follow the new
// geometry.
func (r *Replicator) Layout() {
	area := r.Size().Sub(r.Inset.Size())
	item := r.ItemSize.Resolve(area.X)

	cols := Count(area.X, item.X, r.InteritemSpacing, r.HorizontalEdgeMode)
	rows := Count(area.Y, item.Y, r.LineSpacing, r.VerticalEdgeMode)
	r.instanceCount = rows
	r.instanceOffset = math32.Vec2(0, item.Y+r.LineSpacing)

	for len(r.cells) > cols {
		last := r.cells[len(r.cells)-1]
		r.cells = r.cells[:len(r.cells)-1]
		last.StopAnimating()
		viewtree.RemoveChild(r, last)
	}
	for len(r.cells) < cols && r.NewCell != nil {
		c := r.NewCell()
		viewtree.AddChild(r, c)
		r.cells = append(r.cells, c)
	}

	spacing := r.InteritemSpacing
	if r.HorizontalEdgeMode == Within && cols > 1 {
		spacing = (area.X - float32(cols)*item.X) / float32(cols-1)
	}
	pos := r.Inset.Pos()
	for _, c := range r.cells {
		c.AsNode().Frame = geom.Rect(pos.X, pos.Y, item.X, item.Y)
		pos.X += item.X + spacing
		viewtree.Layout(c)
		if r.animating {
			c.StartAnimating()
		}
	}
}

// StartAnimating starts every cell.
func (r *Replicator) StartAnimating() {
	r.animating = true
	for _, c := range r.cells {
		c.StartAnimating()
	}
}

// StopAnimating stops every cell.
func (r *Replicator) StopAnimating() {
	r.animating = false
	for _, c := range r.cells {
		c.StopAnimating()
	}
}
