package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/alertkit/internal/alert"
	"github.com/javiermolinar/alertkit/internal/tui/commands"
)

// folderDialog builds the folder name dialog. Each presentation gets a fresh
// dialog, so the text field always starts empty.
func (m Model) folderDialog() alert.Content {
	palette := m.styles.Palette()
	flag := m.folderAlert

	spec := alert.DialogSpec{
		Title: "Folder Name",
		Body:  alert.Text("Enter a file Name"),
		Icon: alert.IconSpec{
			Symbol:     "folder.fill.badge.plus",
			Tint:       palette.Accent,
			Foreground: palette.TextOnAccent,
		},
		Primary: alert.ActionSpec{
			Label:      "Save Folder",
			Tint:       palette.Accent,
			Foreground: palette.TextOnAccent,
			OnActivate: func(input string) tea.Cmd {
				return tea.Batch(flag.Set(false), commands.SaveFolder(input))
			},
		},
		Secondary: &alert.ActionSpec{
			Label:      "Cancel",
			Tint:       palette.Danger,
			Foreground: palette.TextOnDanger,
			OnActivate: func(string) tea.Cmd {
				return tea.Batch(flag.Set(false), commands.Cancelled("folder"))
			},
		},
		TextField: &alert.TextFieldSpec{Placeholder: "Personal Documents"},
	}
	return alert.NewDialog(spec, m.styles.Dialog())
}

// clearDialog builds the confirmation shown before the folder list is emptied.
func (m Model) clearDialog() alert.Content {
	palette := m.styles.Palette()
	flag := m.clearAlert

	spec := alert.DialogSpec{
		Title: "Clear Folders?",
		Body:  alert.Text("Every saved folder will be removed from the list. This cannot be undone."),
		Icon: alert.IconSpec{
			Symbol:     "trash",
			Tint:       palette.Danger,
			Foreground: palette.TextOnDanger,
		},
		Primary: alert.ActionSpec{
			Label:      "Clear",
			Tint:       palette.Danger,
			Foreground: palette.TextOnDanger,
			OnActivate: func(string) tea.Cmd {
				return tea.Batch(flag.Set(false), commands.ClearFolders())
			},
		},
		Secondary: &alert.ActionSpec{
			Label:      "Keep",
			Tint:       palette.Accent,
			Foreground: palette.TextOnAccent,
			OnActivate: func(string) tea.Cmd {
				return tea.Batch(flag.Set(false), commands.Cancelled("clear"))
			},
		},
	}
	return alert.NewDialog(spec, m.styles.Dialog())
}
