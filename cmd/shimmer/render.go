// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/shimmer/anim"
	"cogentcore.org/shimmer/internal/sample"
	"cogentcore.org/shimmer/render"
	"cogentcore.org/shimmer/style"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	out           string
	screen        string
	width, height float32
	frames        int
	fps           float64
	at            float64
	scale         float32
}

func newRenderCmd(o *options) *cobra.Command {
	ro := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a demo skeleton screen to a PNG or an animated GIF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.loadStyle(cmd.Flags())
			if err != nil {
				return err
			}
			return renderScreen(s, ro)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&ro.out, "out", "o", "shimmer.gif", "output file; .gif writes an animation, anything else PNG frames")
	screenFlag(cmd, &ro.screen)
	fs.Float32Var(&ro.width, "width", 360, "width of the screen")
	fs.Float32Var(&ro.height, "height", 640, "height of the screen")
	fs.IntVar(&ro.frames, "frames", 0, "number of frames (default: one cycle for .gif, 1 otherwise)")
	fs.Float64Var(&ro.fps, "fps", 25, "frames per second")
	fs.Float64Var(&ro.at, "at", 0, "seconds since the effect began of the first frame")
	fs.Float32Var(&ro.scale, "scale", 1, "scale factor of the output")
	return cmd
}

func renderScreen(s style.Style, ro *renderOptions) error {
	if ro.fps <= 0 {
		return fmt.Errorf("--fps must be positive")
	}
	sc, err := sample.New(ro.screen, ro.width, ro.height, &anim.ManualClock{}, s)
	if err != nil {
		return err
	}
	sc.SetAnimating(true)

	isGIF := strings.EqualFold(filepath.Ext(ro.out), ".gif")
	step := time.Duration(float64(time.Second) / ro.fps)
	n := ro.frames
	if n <= 0 {
		n = 1
		if isGIF {
			n = max(int(s.CycleDuration()/step), 1)
		}
	}
	frames := render.Frames(sc.Root, sample.Background, seconds(ro.at), step, n)
	for i, f := range frames {
		frames[i] = render.Scale(f, ro.scale)
	}
	slog.Info("rendered", "screen", ro.screen, "frames", n, "step", step)

	if isGIF {
		fp, err := os.Create(ro.out)
		if err != nil {
			return err
		}
		err = render.EncodeGIF(fp, frames, step, render.RampPalette(s.BaseColor, s.HighlightColor, sample.Background))
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
		return err
	}
	if len(frames) == 1 {
		return imagex.Save(frames[0], ro.out)
	}
	ext := filepath.Ext(ro.out)
	stem := strings.TrimSuffix(ro.out, ext)
	for i, f := range frames {
		if err := imagex.Save(f, fmt.Sprintf("%s_%03d%s", stem, i, ext)); err != nil {
			return err
		}
	}
	return nil
}
