// Package tui provides the Bubble Tea integration for gridsnake.
// It handles the terminal loop, input mapping and screen rendering; the
// simulation itself lives in internal/sim and never sees the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per platform frame. The simulation runs on real
// elapsed time between frames, not on frame count, so the movement interval
// stays wall-clock accurate regardless of the frame rate.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// specified rate.
func frameCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
