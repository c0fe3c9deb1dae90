// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"image/color"
	"testing"
	"time"

	"cogentcore.org/shimmer/anim"
	"cogentcore.org/shimmer/render"
	"cogentcore.org/shimmer/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type animated interface {
	IsAnimating() bool
}

func TestUnknownKind(t *testing.T) {
	_, err := New("grid", 100, 100, &anim.ManualClock{}, style.Default())
	assert.ErrorContains(t, err, "grid")
}

func TestScreens(t *testing.T) {
	for kind, n := range map[string]int{"list": 4, "scope": 12} {
		t.Run(kind, func(t *testing.T) {
			clock := &anim.ManualClock{}
			sc, err := New(kind, 320, 400, clock, style.Default())
			require.NoError(t, err)
			els := sc.Elements()
			assert.Len(t, els, n)

			idle := render.Image(sc.Root, color.Black, 0)
			assert.Equal(t, Background, idle.RGBAAt(40, 60))

			sc.SetAnimating(true)
			assert.True(t, sc.IsAnimating())
			for _, e := range els {
				assert.True(t, e.(animated).IsAnimating())
			}
			img := render.Image(sc.Root, color.Black, 600*time.Millisecond)
			assert.NotEqual(t, Background, img.RGBAAt(40, 60), "a placeholder covers (40, 60)")

			s := style.Default()
			s.BaseColor = color.RGBA{200, 200, 200, 255}
			sc.SetStyle(s)
			assert.Equal(t, s, sc.Style())
			img = render.Image(sc.Root, color.Black, 0)
			assert.InDelta(t, 200, int(img.RGBAAt(40, 60).R), 1)

			sc.SetAnimating(false)
			for _, e := range els {
				assert.False(t, e.(animated).IsAnimating())
			}
		})
	}
}
