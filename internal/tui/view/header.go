package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderHeader renders the large navigation title above the list.
func RenderHeader(title string, width int, style lipgloss.Style, bg lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	line := style.Render(ansi.Truncate(title, width, "…"))
	return PlaceBox(width, 2, lipgloss.Top, line, bg)
}
