// Package tui provides the Bubble Tea integration for the snake engine.
// It owns the terminal loop, input mapping, score entry and the
// leaderboard screen; the simulation itself lives in internal/engine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is a frame heartbeat. The simulation does not run per message:
// each frame feeds its real elapsed time to the engine's fixed-step clock,
// which decides how many logical ticks to drain.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends frame messages at the
// specified rate.
func tickCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
