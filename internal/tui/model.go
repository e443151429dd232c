package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/alertkit/internal/alert"
	"github.com/javiermolinar/alertkit/internal/config"
	"github.com/javiermolinar/alertkit/internal/logging"
	"github.com/javiermolinar/alertkit/internal/tui/binding"
	"github.com/javiermolinar/alertkit/internal/tui/theme"
)

// Title is the navigation title of the demo screen.
const Title = "Custom Alert"

// action is one row of the demo list. Activating it presents its alert.
type action struct {
	label string
	hint  string
	flag  *binding.Bool
}

// Model is the demo host: a list of rows that each present an alert.
type Model struct {
	config *config.Config
	logger *slog.Logger

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Presentation flags, shared with the decorating alerts
	folderAlert *binding.Bool
	clearAlert  *binding.Bool

	// State
	actions []action
	cursor  int
	folders []string

	// Messages
	statusMsg  string
	statusErr  bool
	statusTime time.Time

	// Terminal dimensions
	width  int
	height int

	now func() time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithNow replaces the wall clock used for status expiry.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithFolders seeds the folder list.
func WithFolders(names ...string) ModelOption {
	return func(m *Model) {
		m.folders = append([]string(nil), names...)
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}

	m := Model{
		config:      cfg,
		logger:      logging.ForComponent(logging.CompUI),
		theme:       t,
		styles:      NewStyles(t),
		folderAlert: binding.NewBool(false),
		clearAlert:  binding.NewBool(false),
		now:         time.Now,
	}
	m.actions = []action{
		{label: "Show Alert", hint: "folder name", flag: m.folderAlert},
		{label: "Clear Folders", hint: "confirmation", flag: m.clearAlert},
	}

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Folders returns the saved folder names.
func (m Model) Folders() []string {
	return m.folders
}

// Status returns the current status line.
func (m Model) Status() string {
	return m.statusMsg
}

// FolderAlert returns the flag that presents the folder dialog.
func (m Model) FolderAlert() *binding.Bool {
	return m.folderAlert
}

// ClearAlert returns the flag that presents the clear confirmation.
func (m Model) ClearAlert() *binding.Bool {
	return m.clearAlert
}

// AlertOptions builds presenter options from the config.
func (m Model) AlertOptions(surface alert.Surface) []alert.Option {
	return []alert.Option{
		alert.WithTimings(alert.Timings{
			Delay:         m.config.Delay(),
			Duration:      m.config.Duration(),
			FrameInterval: m.config.FrameInterval(),
		}),
		alert.WithSurface(surface),
		alert.WithBackdropDismiss(m.config.Overlay.DismissOnBackdrop),
	}
}

// Surface negotiates the overlay surface for the current terminal.
func (m Model) Surface() alert.Surface {
	palette := m.styles.Palette()
	return alert.NegotiateSurface(m.config.Overlay.Strategy, alert.DetectProfile(), alert.Backdrop{
		Bg: palette.Modal.Backdrop,
		Fg: palette.Fg,
	})
}

// Decorate stacks the demo's alerts above the list screen. The clear
// confirmation sits outermost so it wins if both flags are set.
func Decorate(m Model, opts ...alert.Option) *alert.Decorated {
	scrim := alert.DefaultScrim(m.styles.Palette().Modal.Scrim)
	folder := alert.Attach(m, m.folderAlert, m.folderDialog, scrim, opts...)
	return alert.Attach(folder, m.clearAlert, m.clearDialog, scrim, opts...)
}

// Run starts the TUI.
func Run(cfg *config.Config) error {
	m := New(cfg)
	root := Decorate(m, m.AlertOptions(m.Surface())...)

	m.logger.Info("starting demo",
		slog.String("theme", m.theme.Name),
		slog.String("strategy", cfg.Overlay.Strategy))

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
