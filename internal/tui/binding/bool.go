// Package binding provides observable state cells shared between TUI models.
package binding

import tea "github.com/charmbracelet/bubbletea"

// Bool is an observable boolean cell. Models that share a *Bool see the same
// value, and subscribers are told about every change.
//
// A Bool is not safe for concurrent use. It is meant to be read and written
// from bubbletea Update functions, which all run on the program's event loop.
type Bool struct {
	value  bool
	subs   []subscription
	nextID int
}

type subscription struct {
	id int
	fn func(bool) tea.Cmd
}

// NewBool returns a cell holding the initial value.
func NewBool(initial bool) *Bool {
	return &Bool{value: initial}
}

// Get returns the current value.
func (b *Bool) Get() bool {
	return b.value
}

// Set stores v and notifies subscribers when the value changed. The returned
// command batches whatever the subscribers returned. Setting the current
// value again is a no-op and returns nil.
func (b *Bool) Set(v bool) tea.Cmd {
	if b.value == v {
		return nil
	}
	b.value = v

	// Copy so a subscriber may cancel itself while being notified.
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)

	cmds := make([]tea.Cmd, 0, len(subs))
	for _, s := range subs {
		if cmd := s.fn(v); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Toggle flips the value.
func (b *Bool) Toggle() tea.Cmd {
	return b.Set(!b.value)
}

// Subscribe registers fn to run after every change. The returned function
// removes the subscription; calling it more than once is harmless.
func (b *Bool) Subscribe(fn func(bool) tea.Cmd) (cancel func()) {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, fn: fn})

	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers reports how many subscriptions are active.
func (b *Bool) Subscribers() int {
	return len(b.subs)
}
