// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/shimmer/anim"
	"cogentcore.org/shimmer/internal/sample"
	"cogentcore.org/shimmer/render"
	"cogentcore.org/shimmer/style"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// pointsPerPixel is the number of screen points per half-block pixel.
// Screens are laid out in points and scaled down, so that the demo
// layouts keep their proportions in a small terminal.
const pointsPerPixel = 3

// angleStep is the change of the sweep angle per arrow key press.
const angleStep = math32.Pi / 12

type previewOptions struct {
	screen string
	watch  bool
	fps    float64
}

func newPreviewCmd(o *options) *cobra.Command {
	po := &previewOptions{}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a demo skeleton screen in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if po.fps <= 0 {
				return fmt.Errorf("--fps must be positive")
			}
			p := &previewer{opts: o, flags: cmd.Flags(), kind: po.screen, clock: anim.NewMonotonicClock(), animating: true}
			var err error
			if p.style, err = o.loadStyle(cmd.Flags()); err != nil {
				return err
			}
			var changed <-chan struct{}
			if po.watch {
				if o.config == "" {
					return fmt.Errorf("--watch needs a style file given with --config")
				}
				w, err := newStyleWatcher(o.config, 200*time.Millisecond)
				if err != nil {
					return err
				}
				defer w.Close()
				changed = w.Changed
			}
			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()
			p.screen = screen
			return p.run(changed, time.Duration(float64(time.Second)/po.fps))
		},
	}
	screenFlag(cmd, &po.screen)
	cmd.Flags().BoolVarP(&po.watch, "watch", "w", false, "reload the style file given with --config when it changes")
	cmd.Flags().Float64Var(&po.fps, "fps", 30, "frames per second")
	return cmd
}

// previewer draws a demo screen in a terminal, two pixels per cell.
type previewer struct {
	opts      *options
	flags     *pflag.FlagSet
	kind      string
	clock     anim.Clock
	screen    tcell.Screen
	sc        *sample.Screen
	style     style.Style
	animating bool
	tickers   anim.Tickers
	status    string
}

func (p *previewer) run(changed <-chan struct{}, frame time.Duration) error {
	if err := p.rebuild(); err != nil {
		return err
	}
	p.tickers.Add(func(tk *anim.Ticker) {
		p.draw(tk.Now)
	})

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			quit, err := p.handleEvent(ev)
			if quit || err != nil {
				return err
			}
		case <-changed:
			p.reload()
		case <-ticker.C:
			p.tickers.Step(p.clock.Now())
		}
	}
}

// handleEvent handles a terminal event and returns whether to quit.
func (p *previewer) handleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return true, nil
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true, nil
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			p.animating = !p.animating
			p.sc.SetAnimating(p.animating)
		case ev.Key() == tcell.KeyLeft:
			p.turn(-angleStep)
		case ev.Key() == tcell.KeyRight:
			p.turn(angleStep)
		}
	case *tcell.EventResize:
		p.screen.Sync()
		return false, p.rebuild()
	}
	return false, nil
}

func (p *previewer) turn(delta float32) {
	s := p.style
	s.EffectAngle += delta
	p.style = s
	p.sc.SetStyle(s)
	p.status = fmt.Sprintf("angle %.2f rad", s.EffectAngle)
}

// reload reads the style file again. The current style is kept if the
// file is invalid.
func (p *previewer) reload() {
	s, err := p.opts.loadStyle(p.flags)
	if errors.Log(err) != nil {
		p.status = "invalid style file: " + err.Error()
		return
	}
	p.style = s
	p.sc.SetStyle(s)
	p.status = "reloaded " + p.opts.config
}

// rebuild builds the screen for the current terminal size.
func (p *previewer) rebuild() error {
	cols, rows := p.screen.Size()
	rows = max(rows-1, 1) // status line
	sc, err := sample.New(p.kind, float32(cols*pointsPerPixel), float32(rows*2*pointsPerPixel), p.clock, p.style)
	if err != nil {
		return err
	}
	if p.animating {
		sc.SetAnimating(true)
	}
	p.sc = sc
	return nil
}

func (p *previewer) draw(now time.Duration) {
	img := render.Scale(render.Image(p.sc.Root, sample.Background, now), 1.0/pointsPerPixel)
	halfBlocks(img, func(x, y int, top, bottom color.RGBA) {
		st := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
		p.screen.SetContent(x, y, '▀', nil, st)
	})
	_, rows := p.screen.Size()
	help := "space: start/stop  ←/→: angle  q: quit"
	if p.status != "" {
		help += "  |  " + p.status
	}
	x := 0
	for _, r := range help {
		p.screen.SetContent(x, rows-1, r, nil, tcell.StyleDefault)
		x++
	}
	p.screen.Show()
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// halfBlocks calls set for each terminal cell covering img, with the
// colors of the two pixels of the cell. The bottom pixel of a last odd
// row repeats the top one.
func halfBlocks(img *image.RGBA, set func(x, y int, top, bottom color.RGBA)) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			set(x-b.Min.X, (y-b.Min.Y)/2, top, bottom)
		}
	}
}
