// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up structured logging for the shimmer tools.
package logx

import (
	"io"
	"log/slog"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging messages should be shown. Messages at levels at or above
// this level will be shown. It is set from the command line flags by
// [Setup], and defaults to a level that depends on the build tags.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [UserLevel])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return UserLevel
	}
}

// Setup sets [UserLevel] from the given flags and installs a text
// handler writing to w at that level as the default [slog.Logger].
func Setup(w io.Writer, vv, v, q bool) *slog.Logger {
	UserLevel = LevelFromFlags(vv, v, q)
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel}))
	slog.SetDefault(l)
	return l
}
