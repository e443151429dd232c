package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// DialogMaxBodyLines caps the body text of an alert dialog.
const DialogMaxBodyLines = 2

// DialogBadge is the round icon badge at the top of a dialog.
type DialogBadge struct {
	Glyph      string
	Tint       lipgloss.Color
	Foreground lipgloss.Color
}

// DialogButton is one full-width action button.
type DialogButton struct {
	Label      string
	Tint       lipgloss.Color
	Foreground lipgloss.Color
	Focused    bool
}

// DialogModel contains the fields needed to render an alert dialog.
type DialogModel struct {
	Badge    DialogBadge
	Title    string
	Body     string
	HasBody  bool
	Input    string // rendered text input
	HasInput bool
	Focused  bool // text input has focus
	Buttons  []DialogButton
	Width    int // inner width in cells
}

// DialogStyles groups styles for the alert dialog.
type DialogStyles struct {
	FrameStyle        lipgloss.Style
	TitleStyle        lipgloss.Style
	BodyStyle         lipgloss.Style
	InputStyle        lipgloss.Style
	InputFocusedStyle lipgloss.Style
	Surface           lipgloss.Color
}

// DialogLayout is a rendered dialog plus the rows its buttons occupy, so
// callers can hit-test mouse clicks.
type DialogLayout struct {
	View       string
	ButtonRows []int
	InnerLeft  int
	InnerWidth int
}

// ButtonAt returns the index of the button drawn at (x, y), or -1.
func (l DialogLayout) ButtonAt(x, y int) int {
	if x < l.InnerLeft || x >= l.InnerLeft+l.InnerWidth {
		return -1
	}
	for i, row := range l.ButtonRows {
		if row == y {
			return i
		}
	}
	return -1
}

// RenderDialog renders the alert dialog card.
func RenderDialog(model DialogModel, styles DialogStyles) DialogLayout {
	width := model.Width
	if width < 8 {
		width = 8
	}

	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s, lipgloss.WithWhitespaceBackground(styles.Surface))
	}

	var lines []string
	lines = append(lines, RenderBadge(model.Badge)...)
	for i := range lines {
		lines[i] = center(lines[i])
	}
	lines = append(lines, center(""))
	lines = append(lines, center(styles.TitleStyle.Render(ansi.Truncate(model.Title, width, "…"))))

	if model.HasBody {
		for _, line := range DialogBodyLines(model.Body, width) {
			lines = append(lines, center(styles.BodyStyle.Render(line)))
		}
	}
	lines = append(lines, center(""))

	if model.HasInput {
		inputStyle := styles.InputStyle
		if model.Focused {
			inputStyle = styles.InputFocusedStyle
		}
		inner := width - inputStyle.GetHorizontalFrameSize()
		if inner < 1 {
			inner = 1
		}
		input := ansi.Truncate(model.Input, inner, "")
		lines = append(lines, inputStyle.Width(width-inputStyle.GetHorizontalBorderSize()).Render(input))
		lines = append(lines, center(""))
	}

	top := styles.FrameStyle.GetBorderTopSize() + styles.FrameStyle.GetPaddingTop()
	rows := make([]int, 0, len(model.Buttons))
	for _, b := range model.Buttons {
		rows = append(rows, top+len(lines))
		lines = append(lines, RenderDialogButton(b, width))
	}

	// Unstyled gaps between styled runs would show the terminal background.
	if seq := ModalBackgroundSeq(styles.Surface); seq != "" {
		for i, line := range lines {
			lines[i] = seq + ApplyModalBackgroundResets(line, styles.Surface)
		}
	}

	return DialogLayout{
		View:       styles.FrameStyle.Render(strings.Join(lines, "\n")),
		ButtonRows: rows,
		InnerLeft:  styles.FrameStyle.GetBorderLeftSize() + styles.FrameStyle.GetPaddingLeft(),
		InnerWidth: width,
	}
}

// DialogBodyLines wraps body to width and keeps at most two lines, ending the
// last kept line with an ellipsis when text was cut.
func DialogBodyLines(body string, width int) []string {
	if body == "" || width <= 0 {
		return nil
	}
	wrapped := strings.Split(ansi.Wrap(body, width, " -"), "\n")
	for i, line := range wrapped {
		wrapped[i] = strings.TrimRight(line, " ")
	}
	if len(wrapped) <= DialogMaxBodyLines {
		return wrapped
	}

	kept := wrapped[:DialogMaxBodyLines]
	rest := strings.Join(wrapped[DialogMaxBodyLines-1:], " ")
	last := ansi.Truncate(rest, width, "…")
	if !strings.HasSuffix(last, "…") {
		last = ansi.Truncate(last, width-1, "") + "…"
	}
	kept[DialogMaxBodyLines-1] = last
	return kept
}

// RenderBadge draws a glyph inside a filled round badge. The top cap is a
// lighter shade of the tint.
func RenderBadge(b DialogBadge) []string {
	glyph := b.Glyph
	if glyph == "" {
		glyph = " "
	}
	tint := lipgloss.NewStyle().Foreground(b.Tint)
	highlight := lipgloss.NewStyle().Foreground(lipgloss.Color(Lighten(string(b.Tint), 0.3)))
	fill := lipgloss.NewStyle().Background(b.Tint).Foreground(b.Foreground).Bold(true)

	return []string{
		highlight.Render("▄▄▄▄▄"),
		tint.Render("█") + fill.Render(" "+glyph+" ") + tint.Render("█"),
		tint.Render("▀▀▀▀▀"),
	}
}

// RenderDialogButton draws a full-width button. Its fill runs from a lighter
// shade of the tint on the left to the tint itself on the right.
func RenderDialogButton(b DialogButton, width int) string {
	label := b.Label
	if b.Focused {
		label = "▸ " + label + " ◂"
	}
	label = ansi.Truncate(label, width, "…")
	padded := []rune(lipgloss.PlaceHorizontal(width, lipgloss.Center, label))

	from := Lighten(string(b.Tint), 0.2)
	var out strings.Builder
	for i, r := range padded {
		t := 0.0
		if len(padded) > 1 {
			t = float64(i) / float64(len(padded)-1)
		}
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(BlendHex(from, string(b.Tint), t))).
			Foreground(b.Foreground).
			Bold(true)
		out.WriteString(style.Render(string(r)))
	}
	return out.String()
}

// BlendHex mixes two hex colors. Unparseable input returns the other color.
func BlendHex(a, b string, t float64) string {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	switch {
	case errA != nil && errB != nil:
		return a
	case errA != nil:
		return b
	case errB != nil:
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}

// Lighten blends a hex color toward white.
func Lighten(hex string, amount float64) string {
	return BlendHex(hex, "#ffffff", amount)
}
