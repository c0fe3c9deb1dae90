// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
This file provides the tree walking functions: upward over the
parent back-references, and downward over the children.
*/

package viewtree

const (
	// Continue = true can be returned from tree walking functions
	// to continue walking down and across the tree.
	Continue = true

	// Break = false can be returned from tree walking functions
	// to stop walking the current branch of the tree.
	Break = false
)

// WalkUpParent calls the given function on all of the node's ancestors
// (but not the node itself), from the parent outward. It stops walking if
// the function returns [Break]. It returns whether walking was finished.
func WalkUpParent(n Node, fun func(n Node) bool) bool {
	for cur := n.AsNode().parent; cur != nil; cur = cur.AsNode().parent {
		if !fun(cur) {
			return false
		}
	}
	return true
}

// Nearest returns the nearest ancestor of n (never n itself) that
// implements T, and whether there is one. The walk is bounded by the
// depth of the tree.
func Nearest[T any](n Node) (T, bool) {
	var res T
	found := false
	WalkUpParent(n, func(p Node) bool {
		if t, ok := p.(T); ok {
			res, found = t, true
			return Break
		}
		return Continue
	})
	return res, found
}

// WalkDown calls the given function on the node and all of its
// descendants in depth-first order. It does not walk into the children
// of a node for which the function returns [Break].
func WalkDown(n Node, fun func(n Node) bool) {
	if !fun(n) {
		return
	}
	// children can change during the walk, so iterate over a snapshot
	kids := append([]Node(nil), n.AsNode().children...)
	for _, k := range kids {
		WalkDown(k, fun)
	}
}

// Layouter is implemented by nodes that update their content when
// their geometry may have changed.
type Layouter interface {

	// Layout is called on the node during a layout pass, after the
	// frame of the node is final and before its children are laid out.
	Layout()
}

// Layout runs a layout pass over the tree rooted at n, calling
// [Layouter.Layout] on every node implementing it, parents first.
func Layout(n Node) {
	WalkDown(n, func(k Node) bool {
		if l, ok := k.(Layouter); ok {
			l.Layout()
		}
		return Continue
	})
}
