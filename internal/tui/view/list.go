package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ListItem is one tappable row.
type ListItem struct {
	Label string
	Hint  string
}

// ListStyles groups the styles of a grouped list.
type ListStyles struct {
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	Hint        lipgloss.Style
	Section     lipgloss.Style
	Empty       lipgloss.Style
}

// ListModel contains the rows and detail lines of the demo list.
type ListModel struct {
	Items        []ListItem
	Cursor       int
	SectionTitle string
	Details      []string
	EmptyText    string
	Width        int
}

// RenderList renders action rows followed by a detail section.
func RenderList(model ListModel, styles ListStyles) string {
	if model.Width <= 0 {
		return ""
	}

	var lines []string
	for i, item := range model.Items {
		style := styles.Row
		marker := "  "
		if i == model.Cursor {
			style = styles.RowSelected
			marker = "› "
		}
		label := marker + item.Label
		if item.Hint != "" {
			label += "  " + styles.Hint.Render(item.Hint)
		}
		lines = append(lines, style.Width(model.Width).Render(ansi.Truncate(label, model.Width, "…")))
	}

	if model.SectionTitle != "" {
		lines = append(lines, "", styles.Section.Render(strings.ToUpper(model.SectionTitle)))
		if len(model.Details) == 0 {
			lines = append(lines, styles.Empty.Render(model.EmptyText))
		}
		for _, d := range model.Details {
			lines = append(lines, styles.Row.Width(model.Width).Render(ansi.Truncate("  "+d, model.Width, "…")))
		}
	}

	return strings.Join(lines, "\n")
}
