// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// framesPerSecond is the redraw rate. Engines keep their own schedules;
// frames only decide how often they are polled with Advance.
const framesPerSecond = 30

// FrameMsg is sent to trigger an engine poll and redraw.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that emits frame messages.
func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/framesPerSecond, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
