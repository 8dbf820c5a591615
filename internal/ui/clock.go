package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Clock supplies the current time and one-shot timers. The real clock uses
// tea.Tick; tests substitute a manual clock driven by the Harness.
type Clock interface {
	Now() time.Time
	After(d time.Duration, msg tea.Msg) tea.Cmd
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) After(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// frameMsg advances running scroll animations.
type frameMsg struct{}

// suppressionExpiredMsg is the one-shot timer armed by a jump.
type suppressionExpiredMsg struct {
	until time.Time
}
