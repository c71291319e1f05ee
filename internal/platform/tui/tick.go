// Package tui runs games in a terminal with Bubble Tea: it turns key
// presses into actions, paces frames, presents the cell buffer and, for
// SSH sessions, shows the scoreboard afterwards.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to simulate one frame.
type TickMsg time.Time

// finishedMsg ends the game-over hold.
type finishedMsg struct{}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func holdCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return finishedMsg{} })
}
