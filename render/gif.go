// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"cogentcore.org/shimmer/ramp"
)

// Palette returns a GIF palette containing the given colors followed by
// as many of the Plan 9 palette as fit. Shimmer ramps are very close
// shades, so their own colors must be in the palette to avoid banding.
func Palette(colors ...color.RGBA) color.Palette {
	p := make(color.Palette, 0, 256)
	seen := map[color.RGBA]bool{}
	for _, c := range colors {
		if len(p) == 256 {
			break
		}
		if !seen[c] {
			seen[c] = true
			p = append(p, c)
		}
	}
	for _, c := range palette.Plan9 {
		if len(p) == 256 {
			break
		}
		if rc := color.RGBAModel.Convert(c).(color.RGBA); !seen[rc] {
			seen[rc] = true
			p = append(p, c)
		}
	}
	return p
}

// EncodeGIF writes the given frames to w as a looping animated GIF with
// the given delay between frames, using the given palette.
func EncodeGIF(w io.Writer, frames []*image.RGBA, delay time.Duration, pal color.Palette) error {
	if len(frames) == 0 {
		return fmt.Errorf("render: no frames to encode")
	}
	if len(pal) == 0 {
		pal = palette.Plan9
	}
	cs := max(int(delay/(10*time.Millisecond)), 1)
	g := &gif.GIF{LoopCount: 0}
	for _, f := range frames {
		pm := image.NewPaletted(f.Bounds(), pal)
		draw.Draw(pm, pm.Bounds(), f, f.Bounds().Min, draw.Src)
		g.Image = append(g.Image, pm)
		g.Delay = append(g.Delay, cs)
	}
	if err := gif.EncodeAll(w, g); err != nil {
		return fmt.Errorf("render: encoding gif: %w", err)
	}
	return nil
}

// RampPalette returns a [Palette] for scenes drawn with the given ramp
// endpoints and background.
func RampPalette(base, highlight color.RGBA, bg color.RGBA) color.Palette {
	return Palette(append(ramp.Build(base, highlight, ramp.DefaultSteps), bg)...)
}
