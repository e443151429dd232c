package alert

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Clock supplies time and timers to a Presenter.
type Clock interface {
	Now() time.Time
	// Tick returns a command that delivers fn's message after d.
	Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return tea.Tick(d, fn)
}
