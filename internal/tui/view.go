package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/alertkit/internal/tui/view"
)

const (
	headerHeight = 2
	footerHeight = 2
	helpText     = "↑/↓ move • enter show • n new • c clear • y copy • q quit"
)

// View renders the list screen. Alerts are drawn over it by the decorators.
func (m Model) View() string {
	return view.Render(view.ViewState{
		Width:            m.width,
		Height:           m.height,
		Content:          m.renderAppContent(),
		EmptyPlaceholder: "Loading...",
	})
}

func (m Model) renderAppContent() string {
	innerW, innerH := m.innerSize()
	if innerW <= 0 || innerH < headerHeight+footerHeight+len(m.actions) {
		return "Terminal too small"
	}

	header := view.RenderHeader(Title, innerW, m.styles.TitleStyle, m.styles.colorBg)
	list := view.RenderList(m.listViewState(innerW), m.styles.List())
	body := m.placeBox(innerW, innerH-headerHeight-footerHeight, lipgloss.Top, list)
	footer := view.RenderFooter(m.footerViewState(innerW))

	content := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) listViewState(width int) view.ListModel {
	items := make([]view.ListItem, len(m.actions))
	for i, a := range m.actions {
		items[i] = view.ListItem{Label: a.label, Hint: a.hint}
	}
	return view.ListModel{
		Items:        items,
		Cursor:       m.cursor,
		SectionTitle: "Folders",
		Details:      m.folders,
		EmptyText:    "No folders yet",
		Width:        width,
	}
}

func (m Model) footerViewState(width int) view.FooterModel {
	statusStyle := m.styles.StatusStyle
	if m.statusErr {
		statusStyle = m.styles.ErrorStyle
	}
	return view.FooterModel{
		InnerW:      width,
		StatusText:  m.statusMsg,
		HelpText:    helpText,
		StatusStyle: statusStyle,
		HelpStyle:   m.styles.HelpStyle,
		Bg:          m.styles.colorBg,
	}
}

// innerSize is the space left inside the app padding.
func (m Model) innerSize() (int, int) {
	frameW, frameH := m.styles.AppStyle.GetFrameSize()
	return m.width - frameW, m.height - frameH
}

// listTop is the screen row of the first list item.
func (m Model) listTop() int {
	return m.styles.AppStyle.GetBorderTopSize() + m.styles.AppStyle.GetPaddingTop() + headerHeight
}

// placeBox is a helper to render content in an explicit lipgloss box.
func (m Model) placeBox(w, h int, vAlign lipgloss.Position, content string) string {
	return view.PlaceBox(w, h, vAlign, content, m.styles.colorBg)
}
