// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"strings"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/shimmer"
	"cogentcore.org/shimmer/anim"
	"cogentcore.org/shimmer/geom"
	"cogentcore.org/shimmer/style"
	"cogentcore.org/shimmer/sweep"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type describeOptions struct {
	refWidth, refHeight float32
	x, y                float32
	width, height       float32
	at                  float64
	format              string
	swatches            bool
}

// point is a normalized gradient point.
type point struct {
	X float32 `json:"x" yaml:"x" toml:"x"`
	Y float32 `json:"y" yaml:"y" toml:"y"`
}

func pointOf(v math32.Vector2) point {
	return point{X: v.X, Y: v.Y}
}

// description is the printed form of a [sweep.Description], with times in
// seconds and colors as hex strings.
type description struct {
	Span          string   `json:"span" yaml:"span" toml:"span"`
	Radius        float32  `json:"radius" yaml:"radius" toml:"radius"`
	Width         float32  `json:"width" yaml:"width" toml:"width"`
	StartFrom     point    `json:"start_from" yaml:"start_from" toml:"start_from"`
	StartTo       point    `json:"start_to" yaml:"start_to" toml:"start_to"`
	EndFrom       point    `json:"end_from" yaml:"end_from" toml:"end_from"`
	EndTo         point    `json:"end_to" yaml:"end_to" toml:"end_to"`
	Duration      float64  `json:"duration" yaml:"duration" toml:"duration"`
	CycleDuration float64  `json:"cycle_duration" yaml:"cycle_duration" toml:"cycle_duration"`
	BeginTime     float64  `json:"begin_time" yaml:"begin_time" toml:"begin_time"`
	TimeOffset    float64  `json:"time_offset" yaml:"time_offset" toml:"time_offset"`
	Colors        []string `json:"colors" yaml:"colors" toml:"colors"`
}

func newDescribeCmd(o *options) *cobra.Command {
	do := &describeOptions{}
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the sweep of one element measured against a reference rectangle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.loadStyle(cmd.Flags())
			if err != nil {
				return err
			}
			a, d := describe(s, do)
			return writeDescription(cmd.OutOrStdout(), do, a, d)
		},
	}
	fs := cmd.Flags()
	fs.Float32Var(&do.refWidth, "ref-width", 300, "width of the reference rectangle")
	fs.Float32Var(&do.refHeight, "ref-height", 300, "height of the reference rectangle")
	fs.Float32Var(&do.x, "x", 0, "x of the element in the reference rectangle")
	fs.Float32Var(&do.y, "y", 0, "y of the element in the reference rectangle")
	fs.Float32Var(&do.width, "width", 300, "width of the element")
	fs.Float32Var(&do.height, "height", 300, "height of the element")
	fs.Float64Var(&do.at, "at", 0, "seconds since the effect began")
	fs.StringVarP(&do.format, "format", "f", "yaml", "output format: yaml, json, or toml")
	fs.BoolVar(&do.swatches, "swatches", true, "print the ramp as color swatches on color terminals")
	return cmd
}

// describe builds an element in a group of the reference size, starts
// it at media time zero, and describes it at the requested time.
func describe(s style.Style, do *describeOptions) (*sweep.Animator, *sweep.Description) {
	g := shimmer.NewGroup(nil, geom.Rect(0, 0, do.refWidth, do.refHeight))
	g.Clock = &anim.ManualClock{}
	v := shimmer.NewView(g, geom.Rect(do.x, do.y, do.width, do.height))
	v.Clock = g.Clock
	g.SetStyle(s)
	g.StartAnimating()
	return v.Core().Animator(), v.Core().Describe(seconds(do.at))
}

func writeDescription(w io.Writer, do *describeOptions, a *sweep.Animator, d *sweep.Description) error {
	pd := description{
		Span:          a.Style.EffectSpan.String(),
		Radius:        a.EffectRadius(),
		Width:         a.EffectWidth(),
		StartFrom:     pointOf(d.StartFrom),
		StartTo:       pointOf(d.StartTo),
		EndFrom:       pointOf(d.EndFrom),
		EndTo:         pointOf(d.EndTo),
		Duration:      d.Duration.Seconds(),
		CycleDuration: d.CycleDuration.Seconds(),
		BeginTime:     d.BeginTime.Seconds(),
		TimeOffset:    d.TimeOffset.Seconds(),
	}
	for _, c := range d.Colors {
		pd.Colors = append(pd.Colors, colors.AsHex(c))
	}

	var err error
	switch strings.ToLower(do.format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(pd); err == nil {
			err = enc.Close()
		}
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(pd)
	case "toml":
		err = toml.NewEncoder(w).Encode(pd)
	default:
		return fmt.Errorf("unknown format %q", do.format)
	}
	if err != nil {
		return err
	}
	if do.swatches {
		writeSwatches(w, d.Colors)
	}
	return nil
}

// writeSwatches prints the colors as a row of colored blocks, if w is a
// terminal that supports colors.
func writeSwatches(w io.Writer, cs []color.RGBA) {
	out := termenv.NewOutput(w)
	if out.Profile == termenv.Ascii {
		return
	}
	var b strings.Builder
	for _, c := range cs {
		b.WriteString(out.String(" ").Background(out.Color(colors.AsHex(c))).String())
	}
	fmt.Fprintln(out, b.String())
}
