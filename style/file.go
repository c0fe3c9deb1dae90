// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/core/colors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported style file formats.
type Formats int32

const (
	// TOML is the default style file format.
	TOML Formats = iota

	// YAML is used for files ending in .yaml or .yml.
	YAML
)

// FormatFor returns the file format implied by the extension of filename.
func FormatFor(filename string) Formats {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	}
	return TOML
}

// File is the serialized form of a [Style]. Colors are hex strings and
// durations are in seconds, so that files are easy to write by hand.
type File struct {
	BaseColor      string   `toml:"base_color" yaml:"base_color"`
	HighlightColor string   `toml:"highlight_color" yaml:"highlight_color"`
	Duration       float64  `toml:"duration" yaml:"duration"`
	Interval       float64  `toml:"interval" yaml:"interval"`
	Span           SpanFile `toml:"span" yaml:"span"`
	Angle          float32  `toml:"angle" yaml:"angle"`
	Blend          string   `toml:"blend,omitempty" yaml:"blend,omitempty"`
}

// SpanFile is the serialized form of an [EffectSpan].
type SpanFile struct {
	Kind  string  `toml:"kind" yaml:"kind"`
	Value float32 `toml:"value" yaml:"value"`
}

// File returns the serialized form of the style.
func (s Style) File() File {
	f := File{
		BaseColor:      colors.AsHex(s.BaseColor),
		HighlightColor: colors.AsHex(s.HighlightColor),
		Duration:       s.Duration.Seconds(),
		Interval:       s.Interval.Seconds(),
		Span:           SpanFile{Kind: s.EffectSpan.Kind.String(), Value: s.EffectSpan.Value},
		Angle:          s.EffectAngle,
	}
	if s.Blend != 0 {
		f.Blend = s.Blend.String()
	}
	return f
}

// Style converts the file back into a [Style]. It does not call
// [Style.Validate]; callers that load untrusted input should.
func (f File) Style() (Style, error) {
	var s Style
	var err error
	if s.BaseColor, err = colors.FromHex(f.BaseColor); err != nil {
		return s, fmt.Errorf("style: base_color: %w", err)
	}
	if s.HighlightColor, err = colors.FromHex(f.HighlightColor); err != nil {
		return s, fmt.Errorf("style: highlight_color: %w", err)
	}
	if err = s.EffectSpan.Kind.SetString(f.Span.Kind); err != nil {
		return s, err
	}
	if err = s.Blend.SetString(f.Blend); err != nil {
		return s, fmt.Errorf("style: blend: %w", err)
	}
	s.EffectSpan.Value = f.Span.Value
	s.Duration = seconds(f.Duration)
	s.Interval = seconds(f.Interval)
	s.EffectAngle = f.Angle
	return s, nil
}

func seconds(v float64) time.Duration {
	return time.Duration(math.Round(v * float64(time.Second)))
}

// Read reads a style in the given format from r. Fields missing from the
// input keep the values of base.
func Read(r io.Reader, format Formats, base Style) (Style, error) {
	f := base.File()
	var err error
	switch format {
	case YAML:
		err = yaml.NewDecoder(r).Decode(&f)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		err = toml.NewDecoder(r).Decode(&f)
	}
	if err != nil {
		return base, fmt.Errorf("style: decoding: %w", err)
	}
	return f.Style()
}

// Write writes the style in the given format to w.
func Write(w io.Writer, format Formats, s Style) error {
	f := s.File()
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	default:
		return toml.NewEncoder(w).Encode(f)
	}
}

// Open reads the style file with the given name, starting from [Default]
// for any fields the file omits. The format is chosen by [FormatFor].
func Open(filename string) (Style, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return Default(), err
	}
	defer fp.Close()
	s, err := Read(fp, FormatFor(filename), Default())
	if err != nil {
		return s, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// Save writes the style to the file with the given name, in the format
// chosen by [FormatFor].
func Save(filename string, s Style) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = Write(fp, FormatFor(filename), s)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}
