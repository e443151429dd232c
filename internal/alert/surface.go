package alert

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/alertkit/internal/tui/view"
)

// Overlay surface strategies.
const (
	StrategyAuto     = "auto"
	StrategyNative   = "native"
	StrategyFallback = "fallback"
)

// Strategies lists the accepted strategy names.
func Strategies() []string {
	return []string{StrategyAuto, StrategyNative, StrategyFallback}
}

// Rect is a screen region in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Surface draws mounted overlay content and its scrim above the host view.
// Surfaces only draw; the Presenter owns timing and state.
type Surface interface {
	Render(base string, width, height int, content string, scrim Scrim, progress float64) string
	// ContentBounds reports where content lands for the given progress.
	ContentBounds(width, height int, content string, progress float64) Rect
}

// Backdrop holds the host's base colors, the starting point of scrim blends.
type Backdrop struct {
	Bg lipgloss.Color
	Fg lipgloss.Color
}

// NegotiateSurface picks a surface for the strategy and the terminal's color
// profile. "auto" uses the layered surface unless the terminal has no color.
func NegotiateSurface(strategy string, profile termenv.Profile, backdrop Backdrop) Surface {
	switch strategy {
	case StrategyNative:
		return NewLayerSurface(backdrop)
	case StrategyFallback:
		return NewContainerSurface()
	}
	if profile == termenv.Ascii {
		return NewContainerSurface()
	}
	return NewLayerSurface(backdrop)
}

// DetectProfile returns the color profile of stdout, honoring NO_COLOR and
// CLICOLOR_FORCE.
func DetectProfile() termenv.Profile {
	return termenv.EnvColorProfile()
}

// placement centers content horizontally and slides it up from the bottom
// edge as progress goes from 0 to 1.
func placement(width, height int, content string, progress float64) Rect {
	lines := contentLines(content)
	w, h := contentSize(lines)
	if width <= 0 || height <= 0 || w == 0 || h == 0 {
		return Rect{}
	}
	if w > width {
		w = width
	}

	left := (width - w) / 2
	rest := (height - h) / 2
	if rest < 0 {
		rest = 0
	}
	progress = clamp01(progress)
	top := rest + int(math.Round((1-progress)*float64(height-rest)))

	visible := h
	if top+visible > height {
		visible = height - top
	}
	if visible < 0 {
		visible = 0
	}
	return Rect{X: left, Y: top, Width: w, Height: visible}
}

func contentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func contentSize(lines []string) (int, int) {
	if len(lines) == 0 {
		return 0, 0
	}
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth, len(lines)
}

// normalizeBase pads or clips base to exactly width x height cells.
func normalizeBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}

// composite writes content lines into base at r.
func composite(lines []string, content string, r Rect, width int) []string {
	if r.Width == 0 || r.Height == 0 {
		return lines
	}
	for i, line := range contentLines(content) {
		if i >= r.Height {
			break
		}
		row := r.Y + i
		if row < 0 || row >= len(lines) {
			continue
		}
		lineWidth := lipgloss.Width(line)
		if lineWidth > r.Width {
			line = ansi.Cut(line, 0, r.Width)
			lineWidth = r.Width
		}
		if lineWidth < r.Width {
			line += strings.Repeat(" ", r.Width-lineWidth)
		}
		leftSlice := ansi.Cut(lines[row], 0, r.X)
		rightSlice := ansi.Cut(lines[row], r.X+r.Width, width)
		lines[row] = leftSlice + line + ansi.ResetStyle + rightSlice
	}
	return lines
}

// layerSurface is the native strategy: the host view keeps its text while
// its colors blend toward the scrim color.
type layerSurface struct {
	backdrop Backdrop
}

// NewLayerSurface returns the color-blending surface.
func NewLayerSurface(backdrop Backdrop) Surface {
	if backdrop.Bg == "" {
		backdrop.Bg = lipgloss.Color("#000000")
	}
	if backdrop.Fg == "" {
		backdrop.Fg = lipgloss.Color("#ffffff")
	}
	return layerSurface{backdrop: backdrop}
}

func (s layerSurface) ContentBounds(width, height int, content string, progress float64) Rect {
	return placement(width, height, content, progress)
}

func (s layerSurface) Render(base string, width, height int, content string, scrim Scrim, progress float64) string {
	if width <= 0 || height <= 0 {
		return base
	}

	lines := normalizeBase(base, width, height)
	if strength := scrim.strength(progress); strength > 0 && scrim.Color != "" {
		bg := view.BlendHex(string(s.backdrop.Bg), string(scrim.Color), strength)
		fg := view.BlendHex(string(s.backdrop.Fg), string(scrim.Color), strength)
		seq := ansi.Style{}.BackgroundColor(ansi.HexColor(bg)).ForegroundColor(ansi.HexColor(fg)).String()
		for i, line := range lines {
			lines[i] = seq + ansi.Strip(line) + ansi.ResetStyle
		}
	}

	if progress > 0 {
		lines = composite(lines, content, s.ContentBounds(width, height, content, progress), width)
	}
	return strings.Join(lines, "\n")
}

// containerSurface is the fallback strategy for terminals without color: a
// full-screen container that shades the host view with block characters.
type containerSurface struct{}

// NewContainerSurface returns the monochrome surface.
func NewContainerSurface() Surface {
	return containerSurface{}
}

var shades = []rune{'░', '▒', '▓'}

func (containerSurface) ContentBounds(width, height int, content string, progress float64) Rect {
	return placement(width, height, content, progress)
}

func (c containerSurface) Render(base string, width, height int, content string, scrim Scrim, progress float64) string {
	if width <= 0 || height <= 0 {
		return base
	}

	lines := normalizeBase(base, width, height)
	if strength := scrim.strength(progress); strength > 0 {
		idx := int(strength * float64(len(shades)))
		if idx >= len(shades) {
			idx = len(shades) - 1
		}
		shade := string(shades[idx])
		for i, line := range lines {
			lines[i] = strings.ReplaceAll(ansi.Strip(line), " ", shade)
		}
	}

	if progress > 0 {
		lines = composite(lines, content, c.ContentBounds(width, height, content, progress), width)
	}
	return strings.Join(lines, "\n")
}
