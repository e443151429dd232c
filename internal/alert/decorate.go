package alert

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/alertkit/internal/tui/binding"
)

// Decorated wraps a host model and shows an alert overlay above it whenever
// the bound flag is true.
type Decorated struct {
	host      tea.Model
	presenter *Presenter
}

// Attach decorates host with an overlay bound to flag. content and
// background are called on every mount to build that presentation's views.
func Attach(host tea.Model, flag *binding.Bool, content ContentFunc, background BackgroundFunc, opts ...Option) *Decorated {
	return &Decorated{
		host:      host,
		presenter: NewPresenter(flag, content, background, opts...),
	}
}

// Host returns the wrapped model.
func (d *Decorated) Host() tea.Model {
	return d.host
}

// Presenter returns the overlay's presenter.
func (d *Decorated) Presenter() *Presenter {
	return d.presenter
}

// Init initializes the host and presents immediately if the flag is set.
func (d *Decorated) Init() tea.Cmd {
	return tea.Batch(d.host.Init(), d.presenter.Init())
}

// Update routes msg to the presenter, the overlay content, and the host.
func (d *Decorated) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := d.presenter.Update(msg); handled {
		return d, cmd
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		d.presenter.SetSize(size.Width, size.Height)
	}

	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		if cmd, consumed := d.presenter.HandleInput(msg); consumed {
			return d, cmd
		}
		return d, d.updateHost(msg)
	}

	var cmds []tea.Cmd
	if content := d.presenter.Content(); content != nil {
		cmds = append(cmds, content.Update(msg))
	}
	cmds = append(cmds, d.updateHost(msg))
	return d, tea.Batch(cmds...)
}

func (d *Decorated) updateHost(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.host, cmd = d.host.Update(msg)
	return cmd
}

// View draws the host with the overlay on top.
func (d *Decorated) View() string {
	return d.presenter.View(d.host.View())
}
