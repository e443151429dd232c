package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/alertkit/internal/tui/commands"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// handleKeyMsg handles keys for the list screen. Keys only reach it while no
// alert is mounted.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.actions)-1 {
			m.cursor++
		}
		return m, nil
	case "enter", " ":
		return m.activate(m.cursor)
	case "n":
		return m.activate(0)
	case "c":
		return m.activate(1)
	case "y":
		return m.handleYank()
	}
	return m, nil
}

// activate presents the alert of the given row.
func (m Model) activate(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(m.actions) {
		return m, nil
	}
	a := m.actions[index]
	m.cursor = index
	if a.flag == m.clearAlert && len(m.folders) == 0 {
		return m, commands.Status("Nothing to clear")
	}
	m.logger.Debug("presenting alert", slog.String("action", a.label))
	return m, a.flag.Set(true)
}

// handleYank copies the folder list to the system clipboard.
func (m Model) handleYank() (tea.Model, tea.Cmd) {
	if len(m.folders) == 0 {
		return m, commands.Status("No folders to copy")
	}
	if err := writeClipboard(strings.Join(m.folders, "\n")); err != nil {
		m.logger.Warn("copy failed", slog.String("error", err.Error()))
		return m, func() tea.Msg { return commands.ErrMsg{Err: fmt.Errorf("copy failed: %w", err)} }
	}
	return m, commands.Status(fmt.Sprintf("Copied %d folders", len(m.folders)))
}
