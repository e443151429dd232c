package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/alertkit/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.FolderSavedMsg:
		m.folders = append(m.folders, msg.Name)
		m.logger.Info("folder saved", slog.String("name", msg.Name), slog.Int("count", len(m.folders)))
		return m, commands.Status(fmt.Sprintf("Saved %q", msg.Name))

	case commands.FoldersClearedMsg:
		n := len(m.folders)
		m.folders = nil
		m.logger.Info("folders cleared", slog.Int("count", n))
		return m, commands.Status("Folders cleared")

	case commands.AlertCancelledMsg:
		m.logger.Debug("alert cancelled", slog.String("alert", msg.Alert))
		return m, commands.Status("Cancelled")

	case commands.ErrMsg:
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusErr = true
		m.statusTime = m.now()
		return m, commands.ClearStatusAfter(commands.StatusDuration)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusErr = false
		m.statusTime = m.now()
		return m, commands.ClearStatusAfter(commands.StatusDuration)

	case commands.ClearStatusMsg:
		// A newer status restarts the timer; only clear once it has expired.
		if m.now().Sub(m.statusTime) >= commands.StatusDuration {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	return m, nil
}

// handleMouseMsg activates a list row on left click.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	row := msg.Y - m.listTop()
	if row < 0 || row >= len(m.actions) {
		return m, nil
	}
	return m.activate(row)
}
