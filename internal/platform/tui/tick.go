// Package tui provides the Bubble Tea integration for the game platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
// The next tick is only scheduled once the current one has been handled.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(1, tickRate))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
