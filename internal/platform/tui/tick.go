// Package tui hosts the starfield in a terminal with Bubble Tea, locally or
// over SSH. It owns the frame clock, key mapping and rendering; the game
// itself stays free of terminal dependencies.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// maxFrameDelta caps a single step after a stall (suspend, slow SSH link).
const maxFrameDelta = 250 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// frameClock turns tick timestamps into elapsed time per frame.
type frameClock struct {
	nominal time.Duration
	last    time.Time
}

func newFrameClock(tickRate int) *frameClock {
	return &frameClock{nominal: tickInterval(tickRate)}
}

// Delta returns the time since the previous tick. The first tick, and any
// tick whose clock went backwards, counts as one nominal interval.
func (c *frameClock) Delta(now time.Time) time.Duration {
	prev := c.last
	c.last = now
	if prev.IsZero() {
		return c.nominal
	}
	dt := now.Sub(prev)
	switch {
	case dt <= 0:
		return c.nominal
	case dt > maxFrameDelta:
		return maxFrameDelta
	}
	return dt
}
