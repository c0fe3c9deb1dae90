// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render composites a view tree of shimmer elements into images
// at given media times, for previews, snapshots, and tests.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/shimmer/geom"
	"cogentcore.org/shimmer/replicate"
	"cogentcore.org/shimmer/viewtree"
	xdraw "golang.org/x/image/draw"
)

// Drawer is implemented by nodes that draw themselves.
type Drawer interface {
	viewtree.Node

	// Draw draws the node at media time now onto dst, with the node placed
	// at box in dst coordinates, limited to clip.
	Draw(dst draw.Image, box math32.Box2, clip image.Rectangle, now time.Duration)
}

// Fill is a node drawn as a solid color, such as the background of a
// placeholder screen.
type Fill struct {
	viewtree.NodeBase

	// Color is the color of the node.
	Color color.RGBA
}

// NewFill returns a new [Fill] with the given frame and color, added as
// a child of parent if it is non-nil.
func NewFill(parent viewtree.Node, frame math32.Box2, c color.RGBA) *Fill {
	f := &Fill{Color: c}
	f.Frame = frame
	if parent != nil {
		viewtree.AddChild(parent, f)
	}
	return f
}

func (f *Fill) Draw(dst draw.Image, box math32.Box2, clip image.Rectangle, now time.Duration) {
	r := box.ToRect().Intersect(clip)
	draw.Draw(dst, r, image.NewUniform(f.Color), r.Min, draw.Over)
}

// Scene draws the tree rooted at root onto dst at media time now, with
// the frame of root in dst coordinates. Parents are drawn before their
// children. The children of a [replicate.Replicated] node are drawn once
// per instance and clipped to its frame.
func Scene(dst draw.Image, root viewtree.Node, now time.Duration) {
	drawNode(dst, root, math32.Vector2{}, dst.Bounds(), now)
}

func drawNode(dst draw.Image, n viewtree.Node, origin math32.Vector2, clip image.Rectangle, now time.Duration) {
	if clip.Empty() {
		return
	}
	box := geom.Translate(n.AsNode().Frame, origin)
	if d, ok := n.(Drawer); ok {
		d.Draw(dst, box, clip, now)
	}
	kids := n.AsNode().Children()
	rep, ok := n.(replicate.Replicated)
	if !ok {
		for _, k := range kids {
			drawNode(dst, k, box.Min, clip, now)
		}
		return
	}
	rclip := clip.Intersect(box.ToRect())
	off := rep.InstanceOffset()
	for i := range rep.InstanceCount() {
		io := box.Min.Add(off.MulScalar(float32(i)))
		for _, k := range kids {
			drawNode(dst, k, io, rclip, now)
		}
	}
}

// Image returns a new image the size of the frame of root, filled with
// the given background, with the tree drawn on it at media time now.
// The root is drawn at the origin of the image.
func Image(root viewtree.Node, bg color.Color, now time.Duration) *image.RGBA {
	sz := root.AsNode().Size()
	img := image.NewRGBA(image.Rect(0, 0, int(math32.Ceil(sz.X)), int(math32.Ceil(sz.Y))))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	drawNode(img, root, root.AsNode().Frame.Min.Negate(), img.Bounds(), now)
	return img
}

// Frames returns n images of the tree at the media times start,
// start+step, and so on. See [Image].
func Frames(root viewtree.Node, bg color.Color, start, step time.Duration, n int) []*image.RGBA {
	frames := make([]*image.RGBA, n)
	for i := range n {
		frames[i] = Image(root, bg, start+time.Duration(i)*step)
	}
	return frames
}

// Scale returns the given image scaled by the given factor with
// bilinear interpolation. A factor of 1 returns src itself.
func Scale(src *image.RGBA, factor float32) *image.RGBA {
	if factor == 1 || factor <= 0 {
		return src
	}
	sb := src.Bounds()
	w := max(int(math32.Round(float32(sb.Dx())*factor)), 1)
	h := max(int(math32.Round(float32(sb.Dy())*factor)), 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst
}
