package alert

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Content is what an overlay shows. A fresh Content is built for every
// presentation and dropped when the overlay unmounts.
type Content interface {
	// Update receives input routed to the overlay while it is interactable.
	// Mouse coordinates are relative to the content's top-left corner.
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// Sizer is implemented by content that wants the terminal size.
type Sizer interface {
	SetSize(width, height int)
}

// Focuser is implemented by content that holds keyboard focus while the
// overlay is interactable.
type Focuser interface {
	Focus() tea.Cmd
	Blur()
}

// ContentFunc builds the overlay content.
type ContentFunc func() Content

// Scrim describes the layer drawn between the host view and the content.
type Scrim struct {
	Color   lipgloss.Color
	Opacity float64
}

// BackgroundFunc builds the scrim.
type BackgroundFunc func() Scrim

// DefaultScrim tints the host view with color at 35% opacity.
func DefaultScrim(color lipgloss.Color) BackgroundFunc {
	return func() Scrim {
		return Scrim{Color: color, Opacity: 0.35}
	}
}

func (s Scrim) strength(progress float64) float64 {
	o := s.Opacity
	if o < 0 {
		o = 0
	}
	if o > 1 {
		o = 1
	}
	return clamp01(o * progress)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
