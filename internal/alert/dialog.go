package alert

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/alertkit/internal/tui/view"
)

// DialogMaxWidth is the widest a dialog card grows, in cells.
const DialogMaxWidth = 40

// IconSpec is the badge icon of a dialog.
type IconSpec struct {
	Symbol     string
	Tint       lipgloss.Color
	Foreground lipgloss.Color
}

// ActionSpec is one dialog button. OnActivate receives the text field
// contents, or "" when the dialog has no text field. The callback is
// responsible for clearing the presentation flag.
type ActionSpec struct {
	Label      string
	Tint       lipgloss.Color
	Foreground lipgloss.Color
	OnActivate func(input string) tea.Cmd
}

// TextFieldSpec adds a single-line text field to a dialog.
type TextFieldSpec struct {
	Placeholder string
}

// DialogSpec describes one dialog. Build a new one for every presentation.
type DialogSpec struct {
	Title     string
	Body      *string
	Icon      IconSpec
	Primary   ActionSpec
	Secondary *ActionSpec
	TextField *TextFieldSpec
}

// Text returns a pointer to s, for optional DialogSpec fields.
func Text(s string) *string {
	return &s
}

type focusTarget int

const (
	focusInput focusTarget = iota
	focusPrimary
	focusSecondary
)

// Dialog renders a DialogSpec and reports button activations. It owns the
// text buffer for one presentation.
type Dialog struct {
	spec   DialogSpec
	styles view.DialogStyles
	input  textinput.Model
	focus  focusTarget
	active bool
	width  int
	layout view.DialogLayout
}

// NewDialog builds dialog content from spec.
func NewDialog(spec DialogSpec, styles view.DialogStyles) *Dialog {
	d := &Dialog{
		spec:   spec,
		styles: styles,
		width:  DialogMaxWidth,
		focus:  focusPrimary,
	}
	if spec.TextField != nil {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = spec.TextField.Placeholder
		ti.CharLimit = 256
		ti.TextStyle = styles.InputStyle.UnsetPadding().UnsetBorderStyle()
		ti.PlaceholderStyle = styles.BodyStyle
		d.input = ti
		d.focus = focusInput
	}
	d.layout = d.render()
	return d
}

// Spec returns the dialog's spec.
func (d *Dialog) Spec() DialogSpec {
	return d.spec
}

// InputValue returns the current text buffer.
func (d *Dialog) InputValue() string {
	if d.spec.TextField == nil {
		return ""
	}
	return d.input.Value()
}

// SetSize clamps the card width to the terminal.
func (d *Dialog) SetSize(width, _ int) {
	frame := d.styles.FrameStyle.GetHorizontalFrameSize()
	w := width - frame - 2
	if w > DialogMaxWidth {
		w = DialogMaxWidth
	}
	if w < 8 {
		w = 8
	}
	d.width = w
	d.input.Width = w - d.styles.InputStyle.GetHorizontalFrameSize() - 1
	d.layout = d.render()
}

// Focus gives the dialog keyboard focus.
func (d *Dialog) Focus() tea.Cmd {
	d.active = true
	var cmd tea.Cmd
	if d.focus == focusInput {
		cmd = d.input.Focus()
	}
	d.layout = d.render()
	return cmd
}

// Blur drops keyboard focus.
func (d *Dialog) Blur() {
	d.active = false
	d.input.Blur()
	d.layout = d.render()
}

// Activate runs the primary (0) or secondary (1) button's callback.
func (d *Dialog) Activate(button int) tea.Cmd {
	action, ok := d.action(button)
	if !ok || action.OnActivate == nil {
		return nil
	}
	return action.OnActivate(d.InputValue())
}

func (d *Dialog) action(button int) (ActionSpec, bool) {
	switch button {
	case 0:
		return d.spec.Primary, true
	case 1:
		if d.spec.Secondary != nil {
			return *d.spec.Secondary, true
		}
	}
	return ActionSpec{}, false
}

func (d *Dialog) targets() []focusTarget {
	targets := make([]focusTarget, 0, 3)
	if d.spec.TextField != nil {
		targets = append(targets, focusInput)
	}
	targets = append(targets, focusPrimary)
	if d.spec.Secondary != nil {
		targets = append(targets, focusSecondary)
	}
	return targets
}

func (d *Dialog) moveFocus(delta int) tea.Cmd {
	targets := d.targets()
	idx := 0
	for i, t := range targets {
		if t == d.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(targets)) % len(targets)
	d.focus = targets[idx]

	if d.focus == focusInput {
		return d.input.Focus()
	}
	d.input.Blur()
	return nil
}

// Update handles keys and clicks routed by the presenter.
func (d *Dialog) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = d.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if b := d.layout.ButtonAt(msg.X, msg.Y); b >= 0 {
				cmd = d.Activate(b)
			}
		}
	default:
		if d.spec.TextField != nil {
			d.input, cmd = d.input.Update(msg)
		}
	}
	d.layout = d.render()
	return cmd
}

func (d *Dialog) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return d.moveFocus(1)
	case "shift+tab", "up":
		return d.moveFocus(-1)
	case "enter":
		switch d.focus {
		case focusSecondary:
			return d.Activate(1)
		default:
			return d.Activate(0)
		}
	}

	if d.focus == focusInput {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return cmd
	}
	return nil
}

// View renders the dialog card.
func (d *Dialog) View() string {
	return d.layout.View
}

func (d *Dialog) render() view.DialogLayout {
	model := view.DialogModel{
		Badge: view.DialogBadge{
			Glyph:      SymbolGlyph(d.spec.Icon.Symbol),
			Tint:       d.spec.Icon.Tint,
			Foreground: d.spec.Icon.Foreground,
		},
		Title: d.spec.Title,
		Width: d.width,
	}
	if d.spec.Body != nil {
		model.Body = *d.spec.Body
		model.HasBody = true
	}
	if d.spec.TextField != nil {
		model.HasInput = true
		model.Input = d.input.View()
		model.Focused = d.active && d.focus == focusInput
	}

	model.Buttons = append(model.Buttons, d.button(d.spec.Primary, focusPrimary))
	if d.spec.Secondary != nil {
		model.Buttons = append(model.Buttons, d.button(*d.spec.Secondary, focusSecondary))
	}
	return view.RenderDialog(model, d.styles)
}

func (d *Dialog) button(a ActionSpec, target focusTarget) view.DialogButton {
	return view.DialogButton{
		Label:      a.Label,
		Tint:       a.Tint,
		Foreground: a.Foreground,
		Focused:    d.active && d.focus == target,
	}
}
