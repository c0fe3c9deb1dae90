// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"cogentcore.org/core/colors"
	"cogentcore.org/shimmer/internal/logx"
	"cogentcore.org/shimmer/internal/sample"
	"cogentcore.org/shimmer/ramp"
	"cogentcore.org/shimmer/style"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options are the global options of all of the commands.
type options struct {

	// config is the style file that the style flags override.
	config string

	vv, v, q bool

	base, highlight string
	duration        float64
	interval        float64
	span            string
	angle           float32
	blend           string
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "shimmer",
		Short:         "Describe, render, and preview shimmer loading effects",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.Setup(cmd.ErrOrStderr(), o.vv, o.v, o.q)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&o.config, "config", "c", "", "style file (.toml, .yaml, or .yml)")
	pf.BoolVar(&o.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&o.v, "verbose", "v", false, "show informational messages")
	pf.BoolVarP(&o.q, "quiet", "q", false, "only show errors")
	o.addStyleFlags(pf)

	root.AddCommand(newDescribeCmd(o), newRenderCmd(o), newPreviewCmd(o))
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	return root
}

func (o *options) addStyleFlags(fs *pflag.FlagSet) {
	d := style.Default()
	fs.StringVar(&o.base, "base", colors.AsHex(d.BaseColor), "base color")
	fs.StringVar(&o.highlight, "highlight", colors.AsHex(d.HighlightColor), "highlight color")
	fs.Float64Var(&o.duration, "duration", d.Duration.Seconds(), "length of one sweep in seconds")
	fs.Float64Var(&o.interval, "interval", d.Interval.Seconds(), "pause between sweeps in seconds")
	fs.StringVar(&o.span, "span", d.EffectSpan.String(), `width of the band: "120pt", "40%", "points(120)" or "ratio(0.4)"`)
	fs.Float32Var(&o.angle, "angle", d.EffectAngle, "angle of the sweep in radians")
	fs.StringVar(&o.blend, "blend", ramp.RGB.String(), "color space of the ramp: rgb, linear-rgb, hcl, or lab")
}

// loadStyle returns the style of the config file, or the default style
// without one, with the style flags that were set applied on top.
func (o *options) loadStyle(fs *pflag.FlagSet) (style.Style, error) {
	s := style.Default()
	if o.config != "" {
		var err error
		if s, err = style.Open(o.config); err != nil {
			return s, err
		}
	}
	var err error
	set := func(name string, fun func() error) {
		if err == nil && fs.Changed(name) {
			if ferr := fun(); ferr != nil {
				err = fmt.Errorf("--%s: %w", name, ferr)
			}
		}
	}
	set("base", func() (err error) { s.BaseColor, err = colors.FromHex(o.base); return })
	set("highlight", func() (err error) { s.HighlightColor, err = colors.FromHex(o.highlight); return })
	set("duration", func() error { s.Duration = seconds(o.duration); return nil })
	set("interval", func() error { s.Interval = seconds(o.interval); return nil })
	set("span", func() (err error) { s.EffectSpan, err = style.ParseEffectSpan(o.span); return })
	set("angle", func() error { s.EffectAngle = o.angle; return nil })
	set("blend", func() error { return s.Blend.SetString(o.blend) })
	if err != nil {
		return s, err
	}
	return s, s.Validate()
}

func seconds(v float64) time.Duration {
	return time.Duration(math.Round(v * float64(time.Second)))
}

// screenFlag adds the --screen flag to the given command.
func screenFlag(cmd *cobra.Command, screen *string) {
	cmd.Flags().StringVar(screen, "screen", sample.Kinds[0], fmt.Sprintf("demo screen, one of %v", sample.Kinds))
}
