// Package tui provides the terminal user interface for the alertkit demo.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/alertkit/internal/tui/theme"
	"github.com/javiermolinar/alertkit/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Screen
	AppStyle     lipgloss.Style
	TitleStyle   lipgloss.Style
	SectionStyle lipgloss.Style
	RowStyle     lipgloss.Style
	RowSelected  lipgloss.Style
	HintStyle    lipgloss.Style
	EmptyStyle   lipgloss.Style
	StatusStyle  lipgloss.Style
	ErrorStyle   lipgloss.Style
	HelpStyle    lipgloss.Style
	colorBg      lipgloss.Color
	colorSurface lipgloss.Color

	// Alert card
	DialogFrameStyle        lipgloss.Style
	DialogTitleStyle        lipgloss.Style
	DialogBodyStyle         lipgloss.Style
	DialogInputStyle        lipgloss.Style
	DialogInputFocusedStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	palette := theme.NewPalette(t)
	s := &Styles{
		palette:      palette,
		colorBg:      palette.Bg,
		colorSurface: palette.Modal.Bg,
	}

	s.AppStyle = lipgloss.NewStyle().
		Background(palette.Bg).
		Foreground(palette.Fg).
		Padding(1, 2)

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Fg).
		Background(palette.Bg)

	s.SectionStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg)

	s.RowStyle = lipgloss.NewStyle().
		Foreground(palette.Fg).
		Background(palette.BgHighlight)

	s.RowSelected = s.RowStyle.
		Foreground(palette.Accent).
		Background(palette.BgSelection).
		Bold(true)

	s.HintStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted)

	s.EmptyStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg).
		Italic(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(palette.Success).
		Background(palette.Bg)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(palette.Danger).
		Background(palette.Bg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg)

	modal := palette.Modal
	s.DialogFrameStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		BorderBackground(modal.Bg).
		Background(modal.Bg).
		Padding(1, 2)

	s.DialogTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modal.Bg)

	s.DialogBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modal.Bg)

	s.DialogInputStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Panel).
		Padding(0, 1)

	s.DialogInputFocusedStyle = s.DialogInputStyle.
		Background(modal.Highlight)

	return s
}

// Palette returns the colors the styles were built from.
func (s *Styles) Palette() *theme.Palette {
	return s.palette
}

// Dialog returns the styles of the alert card.
func (s *Styles) Dialog() view.DialogStyles {
	return view.DialogStyles{
		FrameStyle:        s.DialogFrameStyle,
		TitleStyle:        s.DialogTitleStyle,
		BodyStyle:         s.DialogBodyStyle,
		InputStyle:        s.DialogInputStyle,
		InputFocusedStyle: s.DialogInputFocusedStyle,
		Surface:           s.colorSurface,
	}
}

// List returns the styles of the action list.
func (s *Styles) List() view.ListStyles {
	return view.ListStyles{
		Row:         s.RowStyle,
		RowSelected: s.RowSelected,
		Hint:        s.HintStyle,
		Section:     s.SectionStyle,
		Empty:       s.EmptyStyle,
	}
}
