// Package tui provides the Bubble Tea host for Chillguy Runner.
// It handles the terminal UI loop, input mapping, persistence hooks and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// ID ties the tick to the game model whose loop scheduled it.
type TickMsg struct {
	Time time.Time
	ID   int64
}

var lastLoopID atomic.Int64

// nextLoopID returns a new tick loop identifier.
func nextLoopID() int64 {
	return lastLoopID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, id int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
