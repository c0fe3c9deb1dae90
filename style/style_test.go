// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"bytes"
	"image/color"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/shimmer/ramp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectSpanWidth(t *testing.T) {
	assert.Equal(t, float32(100), Points(100).Width(500))
	assert.Equal(t, float32(250), Ratio(0.5).Width(500))
	assert.Equal(t, float32(0), Ratio(0.5).Width(0))
	assert.Equal(t, "points(120)", Points(120).String())
	assert.Equal(t, "ratio(0.25)", Ratio(0.25).String())
}

func TestParseEffectSpan(t *testing.T) {
	for in, want := range map[string]EffectSpan{
		"points(120)": Points(120),
		"ratio(0.25)": Ratio(0.25),
		"80pt":        Points(80),
		" 64 ":        Points(64),
		"50%":         Ratio(0.5),
	} {
		got, err := ParseEffectSpan(in)
		require.NoError(t, err, in)
		assert.Equal(t, want.Kind, got.Kind, in)
		assert.InDelta(t, want.Value, got.Value, 1e-6, in)
	}
	got, err := ParseEffectSpan(Ratio(0.3).String())
	require.NoError(t, err)
	assert.Equal(t, Ratio(0.3), got)

	for _, in := range []string{"", "wide", "ratio(x)", "pt"} {
		_, err := ParseEffectSpan(in)
		assert.Error(t, err, in)
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, 1600*time.Millisecond, s.CycleDuration())
	assert.Equal(t, Points(120), s.EffectSpan)
	assert.Len(t, s.Colors(), 2*ramp.DefaultSteps+1)
}

func TestEquality(t *testing.T) {
	a := Default()
	b := Default()
	assert.True(t, a == b)
	b.EffectSpan = Ratio(120)
	assert.False(t, a == b, "span kind is part of equality")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *Style)
		errs   []string
	}{
		{"zero duration", func(s *Style) { s.Duration = 0 }, []string{"duration"}},
		{"negative interval", func(s *Style) { s.Interval = -time.Second }, []string{"interval"}},
		{"negative span", func(s *Style) { s.EffectSpan = Ratio(-1) }, []string{"span"}},
		{"nan span", func(s *Style) { s.EffectSpan = Points(float32(math.NaN())) }, []string{"span"}},
		{"inf angle", func(s *Style) { s.EffectAngle = float32(math.Inf(1)) }, []string{"angle"}},
		{"several", func(s *Style) { s.Duration = -1; s.Interval = -1 }, []string{"duration", "interval"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.modify(&s)
			err := s.Validate()
			require.Error(t, err)
			for _, e := range tt.errs {
				assert.Contains(t, err.Error(), e)
			}
		})
	}
	s := Default()
	s.Interval = 0
	assert.NoError(t, s.Validate(), "zero interval is allowed")
}

func testStyle() Style {
	return Style{
		BaseColor:      color.RGBA{10, 20, 30, 255},
		HighlightColor: color.RGBA{100, 105, 110, 128},
		Duration:       2500 * time.Millisecond,
		Interval:       750 * time.Millisecond,
		EffectSpan:     Ratio(0.25),
		EffectAngle:    0.5,
		Blend:          ramp.HCL,
	}
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Formats{TOML, YAML} {
		var b bytes.Buffer
		s := testStyle()
		require.NoError(t, Write(&b, format, s))
		got, err := Read(&b, format, Default())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestReadPartial(t *testing.T) {
	got, err := Read(strings.NewReader("duration = 3.0\n[span]\nkind = \"ratio\"\nvalue = 0.5\n"), TOML, Default())
	require.NoError(t, err)
	want := Default()
	want.Duration = 3 * time.Second
	want.EffectSpan = Ratio(0.5)
	assert.Equal(t, want, got)

	got, err = Read(strings.NewReader("interval: 0\nangle: 0.75\n"), YAML, Default())
	require.NoError(t, err)
	want = Default()
	want.Interval = 0
	want.EffectAngle = 0.75
	assert.Equal(t, want, got)

	got, err = Read(strings.NewReader(""), YAML, Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("base_color = \"#12\"\n"), TOML, Default())
	assert.ErrorContains(t, err, "base_color")
	_, err = Read(strings.NewReader("[span]\nkind = \"miles\"\n"), TOML, Default())
	assert.ErrorContains(t, err, "miles")
	_, err = Read(strings.NewReader("blend = \"cmyk\"\n"), TOML, Default())
	assert.ErrorContains(t, err, "blend")
	_, err = Read(strings.NewReader("duration = [\n"), TOML, Default())
	assert.ErrorContains(t, err, "decoding")
}

func TestOpenSave(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"style.toml", "style.yaml", "style.yml"} {
		fn := filepath.Join(dir, name)
		s := testStyle()
		require.NoError(t, Save(fn, s))
		got, err := Open(fn)
		require.NoError(t, err)
		assert.Equal(t, s, got, name)
	}
	_, err := Open(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, TOML, FormatFor("a.toml"))
	assert.Equal(t, YAML, FormatFor("a.YAML"))
	assert.Equal(t, YAML, FormatFor("dir/a.yml"))
	assert.Equal(t, TOML, FormatFor("noext"))
}
