// Package tui hosts the breakout game loop in a Bubble Tea program.
// It maps terminal input to the game's directive surface, forwards focus
// changes to the loop lifecycle and draws the latest rendered frame.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a redraw of the latest frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultRedrawRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// releaseMsg ends a key press once no newer press has superseded it.
type releaseMsg struct {
	seq uint64
}

// releaseCmd schedules the auto-release for press number seq.
func releaseCmd(seq uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return releaseMsg{seq: seq}
	})
}
