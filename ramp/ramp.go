// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ramp builds the discretized color ramps used by the shimmer
// gradient: base color to highlight color and back again, eased with
// a smoothstep curve.
package ramp

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultSteps is the number of samples taken on each leg of a ramp.
const DefaultSteps = 30

// Blends are the color spaces in which ramp colors can be interpolated.
type Blends int32

const (
	// RGB interpolates linearly on each sRGB channel. This is the default.
	RGB Blends = iota

	// LinearRGB interpolates in linear light RGB.
	LinearRGB

	// HCL interpolates in the polar CIE-L*C*h° space.
	HCL

	// Lab interpolates in the CIE-L*a*b* space.
	Lab
)

var blendNames = [...]string{"rgb", "linear-rgb", "hcl", "lab"}

// String returns the lowercase name of the blend.
func (b Blends) String() string {
	if b < 0 || int(b) >= len(blendNames) {
		return fmt.Sprintf("Blends(%d)", int32(b))
	}
	return blendNames[b]
}

// SetString sets the blend from its name, as returned by [Blends.String].
func (b *Blends) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		*b = RGB
		return nil
	}
	for i, nm := range blendNames {
		if nm == s {
			*b = Blends(i)
			return nil
		}
	}
	return fmt.Errorf("ramp: unknown blend %q", s)
}

// SmoothStep is the cubic Hermite ease t*t*(3-2t) applied to t clamped to [0, 1].
func SmoothStep(t float32) float32 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

func clamp01(t float32) float32 {
	if t != t { // NaN
		return 0
	}
	return math32.Max(0, math32.Min(1, t))
}

func lerp8(a, b uint8, t float32) uint8 {
	v := (1-t)*float32(a) + t*float32(b)
	return uint8(math32.Max(0, math32.Min(255, math32.Floor(v+0.5))))
}

// Interpolate returns the color at t between a (t = 0) and b (t = 1),
// interpolating every RGBA channel linearly. t is clamped to [0, 1].
func Interpolate(a, b color.RGBA, t float32) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerp8(a.R, b.R, t),
		G: lerp8(a.G, b.G, t),
		B: lerp8(a.B, b.B, t),
		A: lerp8(a.A, b.A, t),
	}
}

// InterpolateIn is like [Interpolate], but blends the color channels in the
// given color space. Alpha is always interpolated linearly. Fully transparent
// colors have no defined hue, so they fall back to [RGB].
func InterpolateIn(blend Blends, a, b color.RGBA, t float32) color.RGBA {
	if blend == RGB || a.A == 0 || b.A == 0 {
		return Interpolate(a, b, t)
	}
	t = clamp01(t)
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	tt := float64(t)
	var c colorful.Color
	switch blend {
	case LinearRGB:
		c = ca.BlendLinearRgb(cb, tt)
	case HCL:
		c = ca.BlendHcl(cb, tt)
	case Lab:
		c = ca.BlendLab(cb, tt)
	default:
		return Interpolate(a, b, t)
	}
	r, g, bl := c.Clamped().RGB255()
	nc := color.NRGBA{R: r, G: g, B: bl, A: lerp8(a.A, b.A, t)}
	return color.RGBAModel.Convert(nc).(color.RGBA)
}

// Build returns the ramp from base to highlight and back to base, with
// each leg sampled at steps evenly spaced points eased by [SmoothStep].
// The result always has 2*steps+1 colors and ends exactly on base.
func Build(base, highlight color.RGBA, steps int) []color.RGBA {
	return BuildIn(RGB, base, highlight, steps)
}

// BuildIn is like [Build], but interpolates in the given color space.
func BuildIn(blend Blends, base, highlight color.RGBA, steps int) []color.RGBA {
	if steps <= 0 {
		return []color.RGBA{base}
	}
	legs := [...]color.RGBA{base, highlight, base}
	colors := make([]color.RGBA, 0, 2*steps+1)
	for i := 0; i < len(legs)-1; i++ {
		for k := 0; k < steps; k++ {
			t := SmoothStep(float32(k) / float32(steps))
			colors = append(colors, InterpolateIn(blend, legs[i], legs[i+1], t))
		}
	}
	colors = append(colors, base)
	return colors
}
