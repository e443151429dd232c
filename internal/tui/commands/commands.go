// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusDuration is how long a status message stays on screen.
const StatusDuration = 3 * time.Second

// FolderSavedMsg is sent when the folder dialog's save button is activated.
type FolderSavedMsg struct {
	Name string
}

// FoldersClearedMsg is sent when the clear confirmation is accepted.
type FoldersClearedMsg struct{}

// AlertCancelledMsg is sent when an alert is closed without acting.
type AlertCancelledMsg struct {
	Alert string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// SaveFolder reports a folder name typed into the folder dialog. Surrounding
// whitespace is trimmed; an empty name is reported as an error.
func SaveFolder(input string) tea.Cmd {
	return func() tea.Msg {
		name := strings.TrimSpace(input)
		if name == "" {
			return ErrMsg{Err: fmt.Errorf("folder name is empty")}
		}
		return FolderSavedMsg{Name: name}
	}
}

// ClearFolders reports that the clear confirmation was accepted.
func ClearFolders() tea.Cmd {
	return func() tea.Msg {
		return FoldersClearedMsg{}
	}
}

// Cancelled reports that the named alert was closed without acting.
func Cancelled(alert string) tea.Cmd {
	return func() tea.Msg {
		return AlertCancelledMsg{Alert: alert}
	}
}

// Status shows msg in the status line.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfter schedules a ClearStatusMsg.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
