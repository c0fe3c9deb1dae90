// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package replicate tiles a template cell over a rectangle, for list and
// grid shaped loading placeholders. One row of cells is laid out as
// children, and the rows below it are drawn as translated instances of
// that row.
package replicate

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/shimmer/viewtree"
)

// Cell is a replicated unit, typically a group of shimmer elements.
type Cell interface {
	viewtree.Node

	// StartAnimating starts the effect of the cell.
	StartAnimating()

	// StopAnimating stops the effect of the cell.
	StopAnimating()
}

// EdgeModes are the ways of handling the last cell along an axis that
// would not fully fit within the container.
type EdgeModes int32

const (
	// Beyond adds the partial cell, so that the cells cover the whole
	// container and the last one is clipped at its edge.
	Beyond EdgeModes = iota

	// Within only places cells that fully fit within the container.
	Within
)

var edgeModeNames = [...]string{Beyond: "beyond", Within: "within"}

func (em EdgeModes) String() string {
	if em >= 0 && int(em) < len(edgeModeNames) {
		return edgeModeNames[em]
	}
	return fmt.Sprintf("EdgeModes(%d)", int32(em))
}

// SetString sets the edge mode from its name.
func (em *EdgeModes) SetString(s string) error {
	for i, n := range edgeModeNames {
		if n == s {
			*em = EdgeModes(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type EdgeModes", s)
}

// ItemSize is the size policy of the cells.
type ItemSize struct {

	// Size is the size of a cell. Its width is ignored if FillWidth is set.
	Size math32.Vector2

	// FillWidth makes cells as wide as the container minus its insets.
	FillWidth bool
}

// FixedSize returns an [ItemSize] of the given width and height.
func FixedSize(width, height float32) ItemSize {
	return ItemSize{Size: math32.Vec2(width, height)}
}

// FixedHeight returns an [ItemSize] of the given height that fills the
// available width.
func FixedHeight(height float32) ItemSize {
	return ItemSize{Size: math32.Vec2(0, height), FillWidth: true}
}

// Resolve returns the size of a cell given the available width.
func (is ItemSize) Resolve(width float32) math32.Vector2 {
	if is.FillWidth {
		return math32.Vec2(width, is.Size.Y)
	}
	return is.Size
}

// Count returns the number of items of the given length, separated by
// spacing, placed along an axis of the given available length.
func Count(available, item, spacing float32, mode EdgeModes) int {
	pitch := item + spacing
	if pitch <= 0 || available <= 0 {
		return 0
	}
	n := math32.Floor((available + spacing) / pitch)
	if mode == Beyond && (n-1)*pitch+item < available {
		n++
	}
	return max(int(n), 0)
}
