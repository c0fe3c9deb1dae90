// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shimmer provides skeleton loading placeholders with an animated
// shimmer: a soft band of highlight color sweeping diagonally across
// placeholder shapes. Elements sharing a [SyncTarget] ancestor are
// measured against its rectangle and begin time, so the band appears to
// pass continuously across all of them.
package shimmer

import (
	"log/slog"
	"time"

	"cogentcore.org/shimmer/style"
	"cogentcore.org/shimmer/viewtree"
)

// SyncTarget is implemented by nodes that act as a shared timing source
// for the shimmer elements below them.
type SyncTarget interface {

	// Style returns the style of the effect for all of the elements
	// synchronized to the target.
	Style() style.Style

	// EffectBeginTime returns the media time at which the target last
	// started animating.
	EffectBeginTime() time.Duration

	// SyncTargetView returns the node whose bounds are the reference
	// rectangle that the elements are measured against.
	SyncTargetView() viewtree.Node
}

// FindSyncTarget returns the nearest ancestor of n implementing
// [SyncTarget], and whether there is one. The node itself is never
// considered.
func FindSyncTarget(n viewtree.Node) (SyncTarget, bool) {
	return viewtree.Nearest[SyncTarget](n)
}

// ResolveSyncTarget returns the nearest [SyncTarget] ancestor of n,
// or self if there is none.
func ResolveSyncTarget(n viewtree.Node, self SyncTarget) SyncTarget {
	if st, ok := FindSyncTarget(n); ok {
		return st
	}
	slog.Debug("shimmer: no sync target ancestor, using self", "node", n.AsNode().Name)
	return self
}
