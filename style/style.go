// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package style defines the immutable [Style] value describing how a
// shimmer effect looks and moves, and its on-disk configuration format.
package style

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/shimmer/ramp"
)

// SpanKinds are the ways an [EffectSpan] can be specified.
type SpanKinds int32

const (
	// SpanPoints specifies the span as an absolute length in the
	// reference rectangle's units.
	SpanPoints SpanKinds = iota

	// SpanRatio specifies the span as a fraction of the diagonal
	// of the reference rectangle.
	SpanRatio
)

// String returns the lowercase name of the span kind.
func (k SpanKinds) String() string {
	switch k {
	case SpanPoints:
		return "points"
	case SpanRatio:
		return "ratio"
	}
	return fmt.Sprintf("SpanKinds(%d)", int32(k))
}

// SetString sets the span kind from its name.
func (k *SpanKinds) SetString(s string) error {
	switch s {
	case "points", "":
		*k = SpanPoints
	case "ratio":
		*k = SpanRatio
	default:
		return fmt.Errorf("style: unknown effect span kind %q", s)
	}
	return nil
}

// EffectSpan is the length of the gradation of the shimmer effect,
// which is the width of the moving color band along the sweep axis.
type EffectSpan struct {
	Kind  SpanKinds
	Value float32
}

// Ratio returns an [EffectSpan] of the given fraction of the reference diagonal.
func Ratio(fraction float32) EffectSpan {
	return EffectSpan{Kind: SpanRatio, Value: fraction}
}

// Points returns an [EffectSpan] with the given absolute length.
func Points(length float32) EffectSpan {
	return EffectSpan{Kind: SpanPoints, Value: length}
}

// Width returns the span length for a reference rectangle with the given diagonal.
func (es EffectSpan) Width(diagonal float32) float32 {
	if es.Kind == SpanRatio {
		return diagonal * es.Value
	}
	return es.Value
}

func (es EffectSpan) String() string {
	if es.Kind == SpanRatio {
		return fmt.Sprintf("ratio(%g)", es.Value)
	}
	return fmt.Sprintf("points(%g)", es.Value)
}

// ParseEffectSpan parses an [EffectSpan] from its [EffectSpan.String]
// form, or from the shorthands "120pt" (points) and "40%" (ratio).
// A bare number is a length in points.
func ParseEffectSpan(s string) (EffectSpan, error) {
	s = strings.TrimSpace(s)
	var es EffectSpan
	var num string
	switch {
	case strings.HasPrefix(s, "ratio(") && strings.HasSuffix(s, ")"):
		es.Kind, num = SpanRatio, s[len("ratio("):len(s)-1]
	case strings.HasPrefix(s, "points(") && strings.HasSuffix(s, ")"):
		es.Kind, num = SpanPoints, s[len("points("):len(s)-1]
	case strings.HasSuffix(s, "%"):
		es.Kind, num = SpanRatio, strings.TrimSuffix(s, "%")
	default:
		es.Kind, num = SpanPoints, strings.TrimSuffix(s, "pt")
	}
	v, err := strconv.ParseFloat(num, 32)
	if err != nil {
		return es, fmt.Errorf("style: invalid effect span %q", s)
	}
	es.Value = float32(v)
	if strings.HasSuffix(s, "%") {
		es.Value /= 100
	}
	return es, nil
}

// Style is the look and timing of a shimmer effect. It is a plain value:
// styles are compared with == and replaced wholesale, never mutated in place
// by the effect.
type Style struct {

	// BaseColor is the color of the skeleton outside of the highlight band.
	BaseColor color.RGBA

	// HighlightColor is the color at the center of the highlight band.
	HighlightColor color.RGBA

	// Duration is the length of one sweep across the reference rectangle.
	// It must be positive.
	Duration time.Duration

	// Interval is the pause after each sweep, so one repetition lasts
	// Duration + Interval. It must not be negative.
	Interval time.Duration

	// EffectSpan is the width of the highlight band.
	EffectSpan EffectSpan

	// EffectAngle is the tilt of the sweep direction in radians.
	EffectAngle float32

	// Blend is the color space used to build the color ramp.
	Blend ramp.Blends
}

// Default returns the default shimmer style: a light gray skeleton with a
// slightly lighter highlight sweeping horizontally every 1.6 seconds.
func Default() Style {
	return Style{
		BaseColor:      color.RGBA{239, 239, 239, 255},
		HighlightColor: color.RGBA{247, 247, 247, 255},
		Duration:       1200 * time.Millisecond,
		Interval:       400 * time.Millisecond,
		EffectSpan:     Points(120),
		EffectAngle:    0,
	}
}

// CycleDuration returns the length of one full repetition of the effect.
func (s Style) CycleDuration() time.Duration {
	return s.Duration + s.Interval
}

// Colors returns the color ramp for the style with [ramp.DefaultSteps] steps.
func (s Style) Colors() []color.RGBA {
	return ramp.BuildIn(s.Blend, s.BaseColor, s.HighlightColor, ramp.DefaultSteps)
}

// Validate reports every violated precondition of the style. The effect
// itself never checks these; a style failing Validate is a programming error.
func (s Style) Validate() error {
	var errs []error
	if s.Duration <= 0 {
		errs = append(errs, fmt.Errorf("style: duration must be positive, got %v", s.Duration))
	}
	if s.Interval < 0 {
		errs = append(errs, fmt.Errorf("style: interval must not be negative, got %v", s.Interval))
	}
	if !finite(s.EffectSpan.Value) {
		errs = append(errs, fmt.Errorf("style: effect span must be finite, got %v", s.EffectSpan.Value))
	} else if s.EffectSpan.Value < 0 {
		errs = append(errs, fmt.Errorf("style: effect span must not be negative, got %v", s.EffectSpan))
	}
	if !finite(s.EffectAngle) {
		errs = append(errs, fmt.Errorf("style: effect angle must be finite, got %v", s.EffectAngle))
	}
	return errors.Join(errs...)
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
