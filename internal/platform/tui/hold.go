package tui

import (
	"time"

	"github.com/vovakirdan/tui-starfield/internal/config"
	"github.com/vovakirdan/tui-starfield/internal/core"
)

// HoldTracker rebuilds held-key state from a stream of key presses.
// A press holds its action for RepeatDelay; each auto-repeat that follows
// extends the hold by Hold. Releasing the key stops the repeats and the
// hold lapses.
type HoldTracker struct {
	hold        time.Duration
	repeatDelay time.Duration
	until       map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given timings.
func NewHoldTracker(cfg config.InputConfig) *HoldTracker {
	return &HoldTracker{
		hold:        time.Duration(cfg.HoldMS) * time.Millisecond,
		repeatDelay: time.Duration(cfg.RepeatDelayMS) * time.Millisecond,
		until:       make(map[core.Action]time.Time),
	}
}

// Press records a key press at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	d := h.repeatDelay
	if h.held(a, now) {
		d = h.hold
	}
	if until := now.Add(d); until.After(h.until[a]) {
		h.until[a] = until
	}
}

// Frame returns the actions held at now and forgets lapsed ones.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, until := range h.until {
		if now.Before(until) {
			f.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	return f
}

// Release drops every hold.
func (h *HoldTracker) Release() {
	clear(h.until)
}

func (h *HoldTracker) held(a core.Action, now time.Time) bool {
	until, ok := h.until[a]
	return ok && now.Before(until)
}
