// Package tui provides the Bubble Tea integration for the racer.
// It handles the terminal UI loop, input mapping, and run bookkeeping.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns tick timestamps into frame deltas.
type frameClock struct {
	last time.Time
}

// advance returns the time since the previous tick. The first tick after a
// reset yields zero.
func (c *frameClock) advance(now time.Time) time.Duration {
	if c.last.IsZero() || now.Before(c.last) {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	return dt
}

// reset forgets the previous tick.
func (c *frameClock) reset() {
	c.last = time.Time{}
}
