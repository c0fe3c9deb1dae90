// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewtree

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

type marker struct {
	NodeBase
}

func (m *marker) Mark() {}

type marked interface {
	Node
	Mark()
}

type layoutCounter struct {
	NodeBase
	order *[]string
}

func (l *layoutCounter) Layout() {
	*l.order = append(*l.order, l.Name)
}

func newNode(name string, x, y, w, h float32) *NodeBase {
	return &NodeBase{Name: name, Frame: math32.B2(x, y, x+w, y+h)}
}

func TestAddRemoveChild(t *testing.T) {
	a := newNode("a", 0, 0, 100, 100)
	b := newNode("b", 0, 0, 100, 100)
	c := newNode("c", 0, 0, 10, 10)

	AddChild(a, c)
	assert.Same(t, a, c.Parent())
	assert.Equal(t, 1, a.NumChildren())

	AddChild(b, c)
	assert.Same(t, b, c.Parent())
	assert.Equal(t, 0, a.NumChildren(), "reparenting removes from old parent")
	assert.Equal(t, 1, b.NumChildren())

	assert.True(t, RemoveChild(b, c))
	assert.False(t, RemoveChild(b, c))
	assert.Nil(t, c.Parent())
	assert.True(t, IsRoot(c))
}

func TestCoordinates(t *testing.T) {
	root := newNode("root", 0, 0, 400, 400)
	mid := newNode("mid", 10, 20, 200, 200)
	leaf := newNode("leaf", 5, 5, 50, 30)
	AddChild(root, mid)
	AddChild(mid, leaf)

	assert.Same(t, root, Root(leaf))
	assert.Equal(t, math32.Vec2(15, 25), AbsoluteOrigin(leaf))
	assert.Equal(t, math32.B2(0, 0, 50, 30), leaf.Bounds())
	assert.Equal(t, math32.Vec2(50, 30), leaf.Size())
	assert.Equal(t, math32.B2(15, 25, 65, 55), FrameIn(leaf, root))
	assert.Equal(t, math32.B2(5, 5, 55, 35), FrameIn(leaf, mid))
	assert.Equal(t, math32.B2(-15, -25, 385, 375), FrameIn(root, leaf))
}

func TestNearest(t *testing.T) {
	outer := &marker{NodeBase: *newNode("outer", 0, 0, 100, 100)}
	inner := &marker{NodeBase: *newNode("inner", 0, 0, 100, 100)}
	plain := newNode("plain", 0, 0, 100, 100)
	leaf := &marker{NodeBase: *newNode("leaf", 0, 0, 10, 10)}
	AddChild(outer, inner)
	AddChild(inner, plain)
	AddChild(plain, leaf)

	m, ok := Nearest[marked](leaf)
	assert.True(t, ok)
	assert.Same(t, inner, m, "nearest ancestor, never self")

	m, ok = Nearest[marked](inner)
	assert.True(t, ok)
	assert.Same(t, outer, m)

	_, ok = Nearest[marked](outer)
	assert.False(t, ok)

	sibling := &marker{NodeBase: *newNode("sibling", 0, 0, 10, 10)}
	AddChild(plain, sibling)
	m, _ = Nearest[marked](leaf)
	assert.Same(t, inner, m, "siblings are not ancestors")
}

func TestWalkUpParentBreak(t *testing.T) {
	a := newNode("a", 0, 0, 1, 1)
	b := newNode("b", 0, 0, 1, 1)
	c := newNode("c", 0, 0, 1, 1)
	AddChild(a, b)
	AddChild(b, c)

	var names []string
	done := WalkUpParent(c, func(n Node) bool {
		names = append(names, n.AsNode().Name)
		return Continue
	})
	assert.True(t, done)
	assert.Equal(t, []string{"b", "a"}, names)

	names = nil
	done = WalkUpParent(c, func(n Node) bool {
		names = append(names, n.AsNode().Name)
		return Break
	})
	assert.False(t, done)
	assert.Equal(t, []string{"b"}, names)
}

func TestWalkDownAndLayout(t *testing.T) {
	var order []string
	mk := func(name string) *layoutCounter {
		return &layoutCounter{NodeBase: NodeBase{Name: name}, order: &order}
	}
	root := mk("root")
	a := mk("a")
	b := mk("b")
	a1 := mk("a1")
	AddChild(root, a)
	AddChild(root, b)
	AddChild(a, a1)

	Layout(root)
	assert.Equal(t, []string{"root", "a", "a1", "b"}, order)

	var visited []string
	WalkDown(root, func(n Node) bool {
		visited = append(visited, n.AsNode().Name)
		return n.AsNode().Name != "a"
	})
	assert.Equal(t, []string{"root", "a", "b"}, visited, "break skips children")
}
