// Package tui provides the Bubble Tea host for the block breaker: the frame
// scheduler, pointer and key input, the blocking notification and reload,
// the records screen, and SSH serving via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is the host's frame callback. Exactly one is in flight while a
// session is running.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that delivers the next frame at the
// specified rate.
func frameCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
