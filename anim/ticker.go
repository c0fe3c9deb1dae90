// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "time"

// Ticker represents a per-frame callback used by things that redraw
// animated content, such as a preview window. The animations themselves
// are never ticked; a Ticker only tells a drawer when to sample them.
type Ticker struct {

	// Func is run on every [Tickers.Step]. It receives the Ticker so
	// that it can reference [Ticker.Delta] and set [Ticker.Done].
	Func func(tk *Ticker)

	// Now is the media time of the current frame.
	Now time.Duration

	// Delta is the amount of time that has passed since the previous frame.
	Delta time.Duration

	// Done can be set to true to permanently stop the ticker; it is
	// removed at the next step.
	Done bool

	started bool
}

// Tickers is an ordered list of running tickers.
type Tickers []*Ticker

// Add adds a new [Ticker] running the given function and returns it.
func (ts *Tickers) Add(f func(tk *Ticker)) *Ticker {
	tk := &Ticker{Func: f}
	*ts = append(*ts, tk)
	return tk
}

// Step runs every ticker for a frame at the given media time and removes
// the tickers that are done. It returns whether any tickers remain.
func (ts *Tickers) Step(now time.Duration) bool {
	live := (*ts)[:0]
	for _, tk := range *ts {
		if tk.Done {
			continue
		}
		if tk.started {
			tk.Delta = now - tk.Now
		}
		tk.started = true
		tk.Now = now
		tk.Func(tk)
		if !tk.Done {
			live = append(live, tk)
		}
	}
	clear((*ts)[len(live):])
	*ts = live
	return len(live) > 0
}
