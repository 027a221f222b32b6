// Package tui provides the Bubble Tea front end for term2048.
// It decodes keys into moves, drives the engine and renders the board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FlashDoneMsg ends the merge highlight started by move Seq.
type FlashDoneMsg struct {
	Seq int
}

// flashCmd returns a command that ends the highlight for seq after d.
func flashCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return FlashDoneMsg{Seq: seq}
	})
}
