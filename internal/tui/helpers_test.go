package tui

import (
	"sort"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/alertkit/internal/config"
)

// stepClock records alert timers so tests can fire them without sleeping.
type stepClock struct {
	now    time.Time
	timers []stepTimer
}

type stepTimer struct {
	at time.Time
	fn func(time.Time) tea.Msg
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	return c.now
}

func (c *stepClock) Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	c.timers = append(c.timers, stepTimer{at: c.now.Add(d), fn: fn})
	return nil
}

// advance fires every timer due within d, in order.
func (c *stepClock) advance(d time.Duration, deliver func(tea.Msg)) {
	target := c.now.Add(d)
	for {
		sort.SliceStable(c.timers, func(i, j int) bool {
			return c.timers[i].at.Before(c.timers[j].at)
		})
		if len(c.timers) == 0 || c.timers[0].at.After(target) {
			break
		}
		next := c.timers[0]
		c.timers = c.timers[1:]
		c.now = next.at
		deliver(next.fn(next.at))
	}
	c.now = target
}

func newTestModel(t *testing.T, opts ...ModelOption) Model {
	t.Helper()
	m := New(config.Default(), opts...)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// execCmd runs cmd and flattens batches. Only use it on commands that do
// not sleep.
func execCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, execCmd(c)...)
	}
	return out
}
