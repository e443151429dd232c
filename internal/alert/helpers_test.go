package alert

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fakeClock records timers instead of sleeping. advance fires them in order.
type fakeClock struct {
	now    time.Time
	timers []fakeTimer
	seq    int
}

type fakeTimer struct {
	at  time.Time
	seq int
	fn  func(time.Time) tea.Msg
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	c.seq++
	c.timers = append(c.timers, fakeTimer{at: c.now.Add(d), seq: c.seq, fn: fn})
	return nil
}

// advance moves time forward by d, delivering every timer that comes due to
// deliver. Timers scheduled while delivering fire too if they fall inside d.
func (c *fakeClock) advance(d time.Duration, deliver func(tea.Msg)) {
	target := c.now.Add(d)
	for {
		sort.SliceStable(c.timers, func(i, j int) bool {
			if c.timers[i].at.Equal(c.timers[j].at) {
				return c.timers[i].seq < c.timers[j].seq
			}
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

func (c *fakeClock) pending() int {
	return len(c.timers)
}

// stubContent records what the presenter routes to it.
type stubContent struct {
	view    string
	msgs    []tea.Msg
	focused bool
	blurs   int
	width   int
	height  int
}

func (s *stubContent) Update(msg tea.Msg) tea.Cmd {
	s.msgs = append(s.msgs, msg)
	return nil
}

func (s *stubContent) View() string {
	return s.view
}

func (s *stubContent) Focus() tea.Cmd {
	s.focused = true
	return nil
}

func (s *stubContent) Blur() {
	s.focused = false
	s.blurs++
}

func (s *stubContent) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// stubHost is a minimal host model.
type stubHost struct {
	view string
	msgs []tea.Msg
}

func (h *stubHost) Init() tea.Cmd {
	return nil
}

func (h *stubHost) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	h.msgs = append(h.msgs, msg)
	return h, nil
}

func (h *stubHost) View() string {
	return h.view
}
