// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewtree provides a minimal tree of rectangular views with
// parent back-references, frames in parent coordinates, and layout passes.
// Parents reference their children; a child's reference to its parent
// is a back-reference used for upward traversal and coordinate
// conversion, not ownership.
package viewtree

import (
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/shimmer/geom"
)

// Node is the interface that all view tree nodes satisfy.
// Types implement it by embedding [NodeBase].
type Node interface {

	// AsNode returns the [NodeBase] of the node.
	AsNode() *NodeBase
}

// NodeBase implements the tree structure of a [Node].
type NodeBase struct {

	// Name is an optional name of the node, used in messages.
	Name string

	// Frame is the frame of the node in the coordinate space of its parent.
	Frame math32.Box2

	parent   Node
	children []Node
}

// AsNode returns the node base itself.
func (n *NodeBase) AsNode() *NodeBase {
	return n
}

// Parent returns the parent of the node, or nil if it is a root.
func (n *NodeBase) Parent() Node {
	return n.parent
}

// Children returns the children of the node. The slice must not be modified.
func (n *NodeBase) Children() []Node {
	return n.children
}

// NumChildren returns the number of children of the node.
func (n *NodeBase) NumChildren() int {
	return len(n.children)
}

// Bounds returns the frame of the node in its own coordinate space,
// which has a zero origin.
func (n *NodeBase) Bounds() math32.Box2 {
	return geom.Bounds(n.Frame)
}

// Size returns the size of the frame of the node.
func (n *NodeBase) Size() math32.Vector2 {
	return geom.Size(n.Frame)
}

// AddChild adds the given child to the end of the children of parent,
// first removing it from any previous parent.
func AddChild(parent, child Node) {
	if old := child.AsNode().parent; old != nil {
		RemoveChild(old, child)
	}
	pb := parent.AsNode()
	pb.children = append(pb.children, child)
	child.AsNode().parent = parent
}

// RemoveChild removes the given child from parent. It reports whether
// the child was found.
func RemoveChild(parent, child Node) bool {
	pb := parent.AsNode()
	i := slices.Index(pb.children, child)
	if i < 0 {
		return false
	}
	pb.children = slices.Delete(pb.children, i, i+1)
	child.AsNode().parent = nil
	return true
}

// IsRoot returns whether the node has no parent.
func IsRoot(n Node) bool {
	return n.AsNode().parent == nil
}

// Root returns the root of the tree containing n.
func Root(n Node) Node {
	for n.AsNode().parent != nil {
		n = n.AsNode().parent
	}
	return n
}

// AbsoluteOrigin returns the origin of the node in the coordinate space
// of the root of its tree.
func AbsoluteOrigin(n Node) math32.Vector2 {
	var o math32.Vector2
	for ; n != nil; n = n.AsNode().parent {
		o = o.Add(n.AsNode().Frame.Min)
	}
	return o
}

// Convert converts the given rectangle from the coordinate space of
// node from into the coordinate space of node to. Both nodes must be
// in the same tree.
func Convert(r math32.Box2, from, to Node) math32.Box2 {
	return geom.Translate(r, AbsoluteOrigin(from).Sub(AbsoluteOrigin(to)))
}

// FrameIn returns the bounds of n in the coordinate space of node to.
func FrameIn(n, to Node) math32.Box2 {
	return Convert(n.AsNode().Bounds(), n, to)
}
